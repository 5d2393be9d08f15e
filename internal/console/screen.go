package console

import (
	"html/template"
	"sync"
)

// Display texts
const (
	OperatorLoggedOut = "No conectado"
	OperatorConnected = "Conectado"
)

// DialogKind distinguishes a value prompt from a yes/no confirmation
type DialogKind int

const (
	DialogPrompt DialogKind = iota
	DialogConfirm
)

// OpenDialog is a question waiting for the operator
type OpenDialog struct {
	ID      string
	Kind    DialogKind
	Message string
	Path    string
}

// SearchValues are the values shown in the search form
type SearchValues struct {
	Name       string
	NationalID string
	TaxID      string
}

// Screen is the view state of one console page
type Screen struct {
	mu sync.Mutex

	operator      string
	pinStatus     string
	pinInput      string
	search        SearchValues
	searchVisible bool

	internal       template.HTML
	external       template.HTML
	resultsVisible bool
	history        template.HTML
	historyVisible bool
	records        template.HTML
	recordsVisible bool

	loading int
	alerts  []string
	dialog  *OpenDialog
}

func NewScreen() *Screen {
	return &Screen{operator: OperatorLoggedOut, searchVisible: true}
}

// Snapshot is a copy of the screen taken for rendering
type Snapshot struct {
	Operator       string
	PINStatus      string
	PINInput       string
	Search         SearchValues
	SearchVisible  bool
	Internal       template.HTML
	External       template.HTML
	ResultsVisible bool
	History        template.HTML
	HistoryVisible bool
	Records        template.HTML
	RecordsVisible bool
	Loading        bool
	Alerts         []string
	Dialog         *OpenDialog
}

// Snapshot copies the screen and drains the alert queue
func (s *Screen) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Operator:       s.operator,
		PINStatus:      s.pinStatus,
		PINInput:       s.pinInput,
		Search:         s.search,
		SearchVisible:  s.searchVisible,
		Internal:       s.internal,
		External:       s.external,
		ResultsVisible: s.resultsVisible,
		History:        s.history,
		HistoryVisible: s.historyVisible,
		Records:        s.records,
		RecordsVisible: s.recordsVisible,
		Loading:        s.loading > 0,
		Alerts:         s.alerts,
	}
	if s.dialog != nil {
		d := *s.dialog
		snap.Dialog = &d
	}
	s.alerts = nil
	return snap
}

func (s *Screen) Alert(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append(s.alerts, msg)
}

// BeginLoading shows the loading indicator until the returned func is called
func (s *Screen) BeginLoading() func() {
	s.mu.Lock()
	s.loading++
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.loading--
			s.mu.Unlock()
		})
	}
}

func (s *Screen) SetOperator(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.operator = name
}

func (s *Screen) SetPINStatus(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pinStatus = msg
}

func (s *Screen) SetPINInput(pin string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pinInput = pin
}

func (s *Screen) SetSearchValues(v SearchValues) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = v
}

func (s *Screen) ShowSearchForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchVisible = true
}

// ShowResults fills and shows the search result area
func (s *Screen) ShowResults(internal, external template.HTML) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.internal = internal
	s.external = external
	s.resultsVisible = true
}

func (s *Screen) ShowHistory(html template.HTML) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = html
	s.historyVisible = true
}

func (s *Screen) ShowRecords(html template.HTML) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = html
	s.recordsVisible = true
}

// ClearResults empties and hides every result region; the form is kept
func (s *Screen) ClearResults() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearResultsLocked()
}

// ClearForm empties the search form
func (s *Screen) ClearForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = SearchValues{}
}

// ClearAll empties the result regions and the search form
func (s *Screen) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearResultsLocked()
	s.search = SearchValues{}
}

func (s *Screen) clearResultsLocked() {
	s.internal, s.external, s.history, s.records = "", "", "", ""
	s.resultsVisible, s.historyVisible, s.recordsVisible = false, false, false
}

// OpenDialog displays d, replacing any dialog already open
func (s *Screen) OpenDialog(d OpenDialog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialog = &d
}

// TakeDialog closes the open dialog and returns it when its id matches
func (s *Screen) TakeDialog(id string) (OpenDialog, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dialog == nil || s.dialog.ID != id {
		return OpenDialog{}, false
	}
	d := *s.dialog
	s.dialog = nil
	return d, true
}

func (s *Screen) CloseDialog() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialog = nil
}
