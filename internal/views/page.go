package views

import "html/template"

// Control is one console button
type Control struct {
	ID     string
	Label  string
	Method string
	Path   string
}

// SearchForm is the echoed search form
type SearchForm struct {
	Visible    bool
	Name       string
	NationalID string
	TaxID      string
}

// ResultsRegion holds the internal and external fragments of a search
type ResultsRegion struct {
	Visible  bool
	Internal template.HTML
	External template.HTML
}

// Region is a single-fragment result area
type Region struct {
	Visible bool
	HTML    template.HTML
}

// Dialog is an open prompt or confirmation
type Dialog struct {
	ID      string
	Message string
	Prompt  bool
	Path    string
}

// Page is everything the console page template needs
type Page struct {
	Handle    string
	Operator  string
	PINStatus string
	PINInput  string
	Loading   bool
	Alerts    []string
	Search    SearchForm
	Results   ResultsRegion
	History   Region
	Records   Region
	Dialog    *Dialog
	Controls  map[string]Control
}

// ErrorPage is rendered for infrastructure failures on browser requests
type ErrorPage struct {
	Status  int
	Message string
	TraceID string
}
