package console

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"strconv"
	"strings"
	"time"

	apperrors "lookup-console/internal/errors"
	"lookup-console/internal/logger"
	"lookup-console/internal/models"
	"lookup-console/internal/services"
	"lookup-console/internal/validation"
)

// Operator-facing messages
const (
	MsgLoginOK       = "Login correcto"
	MsgConnected     = "Conectado ✔"
	MsgLoginNetwork  = "Error al conectar con el servidor (login)."
	MsgSearchFailed  = "Error en la búsqueda."
	MsgNetwork       = "Error al conectar con el servidor."
	MsgPartialPrompt = "Ingrese valor para búsqueda parcial:"
	MsgReloadConfirm = "¿Recargar la base desde Excel?"
	MsgReloaded      = "Base recargada: %s filas"
	MsgReloadFailed  = "Error al recargar la base."
	MsgExportFailed  = "Error al exportar."
	MsgExportNetwork = "Error al exportar CSV."
	MsgHistoryFailed = "Error cargando historial"
	MsgRecordsFailed = "Error cargando base"
	MsgLoggedOut     = "Sesión cerrada."
)

// Export download
const (
	ExportFilename    = "resultado.csv"
	ExportContentType = "text/csv;charset=utf-8"
)

// Command names that have no audit action
const (
	CommandModuleSelect = "module_select"
	OutcomePending      = "pending"
)

// Renderer turns backend data into page fragments
type Renderer interface {
	Internal(records []models.InternalRecord) (template.HTML, error)
	External(summary models.ExternalSummary) (template.HTML, error)
	History(entries []models.HistoryEntry) (template.HTML, error)
	Records(rows []models.RawRecord) (template.HTML, error)
}

// Download is a file handed to the browser instead of a page
type Download struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Commands runs the console actions. Every action reports its failures as
// alerts on the console screen and returns the audit outcome.
type Commands struct {
	backend   services.BackendClientInterface
	renderer  Renderer
	audit     services.AuditServiceInterface
	metrics   services.MetricsRecorderInterface
	events    services.ConsoleLoggerInterface
	logger    *slog.Logger
	validator *validation.Validator
}

func NewCommands(
	backend services.BackendClientInterface,
	renderer Renderer,
	audit services.AuditServiceInterface,
	metrics services.MetricsRecorderInterface,
	events services.ConsoleLoggerInterface,
	logger *slog.Logger,
) *Commands {
	return &Commands{
		backend:   backend,
		renderer:  renderer,
		audit:     audit,
		metrics:   metrics,
		events:    events,
		logger:    logger,
		validator: validation.GetValidator(),
	}
}

type commandRun struct {
	outcome  string
	detail   string
	metadata map[string]interface{}
	audited  bool
}

func (r *commandRun) set(key string, value interface{}) {
	if r.metadata == nil {
		r.metadata = make(map[string]interface{})
	}
	r.metadata[key] = value
}

func (cm *Commands) run(ctx context.Context, con *Console, action string, fn func(ctx context.Context, run *commandRun) error) string {
	start := time.Now()
	operator := con.Session.OperatorName()
	cm.events.LogCommandStarted(ctx, con.ID, action)

	run := &commandRun{outcome: models.AuditOutcomeSuccess, audited: true}
	err := fn(ctx, run)
	elapsedMs := time.Since(start).Milliseconds()

	ce, isConsoleErr := apperrors.AsConsoleError(err)
	switch {
	case err == nil:
		cm.events.LogCommandCompleted(ctx, con.ID, action, elapsedMs)
	case errors.Is(err, ErrDialogPending):
		run.outcome = OutcomePending
		run.audited = false
	case isConsoleErr && ce.Kind == apperrors.KindPrecondition:
		run.outcome = models.AuditOutcomeBlocked
		run.detail = string(ce.Code)
		cm.events.LogPreconditionFailed(ctx, con.ID, action, string(ce.Code))
	case isConsoleErr:
		run.outcome = models.AuditOutcomeFailed
		if ce.Kind == apperrors.KindRejection {
			run.outcome = models.AuditOutcomeRejected
		}
		run.detail = string(ce.Code)
		run.set("kind", ce.Kind.String())
		if ce.Status != 0 {
			run.set("status", ce.Status)
		}
		cm.events.LogCommandFailed(ctx, con.ID, action, ce.Kind.String(), ce.Error(), elapsedMs)
	default:
		run.outcome = models.AuditOutcomeFailed
		run.detail = string(apperrors.SystemInternalError)
		cm.events.LogCommandFailed(ctx, con.ID, action, "internal", err.Error(), elapsedMs)
	}

	tags := map[string]string{"command": action, "outcome": run.outcome}
	cm.metrics.IncrementCounter(services.MetricCommand, tags)
	cm.metrics.RecordProcessingTime(services.MetricCommand, time.Since(start), tags)

	if after := con.Session.OperatorName(); after != "" {
		operator = after
	}
	cm.record(ctx, con, action, operator, run)

	return run.outcome
}

func (cm *Commands) record(ctx context.Context, con *Console, action, operator string, run *commandRun) {
	if cm.audit == nil || !run.audited {
		return
	}

	client := clientFrom(ctx)
	entry := &models.AuditLog{
		ConsoleID: con.ID,
		Operator:  operator,
		Action:    action,
		Outcome:   run.outcome,
		Detail:    run.detail,
		IPAddress: client.IP,
		UserAgent: client.UserAgent,
	}
	for k, v := range run.metadata {
		entry.SetMetadata(k, v)
	}

	// the audit entry outlives a browser that went away
	if err := cm.audit.Record(context.WithoutCancel(ctx), entry); err != nil {
		cm.metrics.IncrementCounter(services.MetricAuditWriteError, nil)
		logger.FromContext(ctx, cm.logger).Warn("failed to write audit entry",
			"console_id", con.ID,
			"action", action,
			"error", err,
		)
	}
}

// requireSession alerts and fails when no operator is logged in
func (cm *Commands) requireSession(con *Console) (string, error) {
	token, ok := con.Session.Token()
	if !ok {
		err := apperrors.NewPrecondition(apperrors.AuthMissingSession)
		con.Screen.Alert(err.Detail)
		return "", err
	}
	return token, nil
}

// failWith alerts the backend detail or fallback for HTTP errors and
// networkMsg for connectivity errors
func failWith(con *Console, err error, fallback, networkMsg string) error {
	ce, ok := apperrors.AsConsoleError(err)
	switch {
	case !ok || ce.Kind == apperrors.KindNetwork:
		con.Screen.Alert(networkMsg)
	case ce.Kind == apperrors.KindPrecondition:
		con.Screen.Alert(ce.Detail)
	default:
		con.Screen.Alert(ce.Message(fallback))
	}
	return err
}

func (cm *Commands) renderFailed(ctx context.Context, con *Console, fragment string, err error) error {
	logger.FromContext(ctx, cm.logger).Error("failed to render fragment",
		"console_id", con.ID,
		"fragment", fragment,
		"error", err,
	)
	con.Screen.Alert(apperrors.GetErrorMessage(apperrors.SystemInternalError))
	return fmt.Errorf("render %s: %w", fragment, err)
}

// discard drops a response that a newer request for the same region superseded
func (cm *Commands) discard(ctx context.Context, con *Console, run *commandRun, region Region, seq uint64) {
	run.outcome = models.AuditOutcomeStale
	cm.metrics.IncrementCounter(services.MetricStaleResponse, map[string]string{"region": string(region)})
	cm.events.LogStaleResponse(ctx, con.ID, string(region), seq, con.seq.Latest(region))
}

// Login exchanges the PIN for a session
func (cm *Commands) Login(ctx context.Context, con *Console, pin string) string {
	return cm.run(ctx, con, models.AuditActionLogin, func(ctx context.Context, run *commandRun) error {
		pin = strings.TrimSpace(pin)
		con.Screen.SetPINInput(pin)

		if err := cm.validator.ValidatePIN(pin); err != nil {
			return failWith(con, err, "", "")
		}

		done := con.Screen.BeginLoading()
		defer done()

		result, err := cm.backend.Login(ctx, pin)
		if err != nil {
			if ce, ok := apperrors.AsConsoleError(err); ok && ce.Kind == apperrors.KindRejection {
				invalid := apperrors.GetErrorMessage(apperrors.AuthInvalidPIN)
				con.Screen.SetPINStatus(ce.Message(invalid))
				con.Screen.Alert(invalid)
				cm.events.LogLogin(ctx, con.ID, "", false, ce.Message(invalid))
				return err
			}
			return failWith(con, err, MsgLoginNetwork, MsgLoginNetwork)
		}

		operator := result.Operator
		if operator == "" {
			operator = OperatorConnected
		}

		con.Session.SetSession(result.Token, operator)
		con.Screen.SetOperator(operator)
		con.Screen.SetPINStatus(MsgConnected)
		con.Screen.Alert(MsgLoginOK)
		cm.events.LogLogin(ctx, con.ID, operator, true, "")
		return nil
	})
}

// Search runs a field search with the three form values
func (cm *Commands) Search(ctx context.Context, con *Console, criteria models.SearchCriteria) string {
	return cm.run(ctx, con, models.AuditActionSearch, func(ctx context.Context, run *commandRun) error {
		con.Screen.SetSearchValues(SearchValues{
			Name:       criteria.Name,
			NationalID: criteria.NationalID,
			TaxID:      criteria.TaxID,
		})

		token, err := cm.requireSession(con)
		if err != nil {
			return err
		}

		cm.clearResults(con)
		done := con.Screen.BeginLoading()
		defer done()

		if err := cm.validator.ValidateSearch(criteria); err != nil {
			return failWith(con, err, "", "")
		}

		return cm.search(ctx, con, run, token, criteria)
	})
}

// PartialSearch asks for a value and searches by it. A cancelled or blank
// prompt does nothing.
func (cm *Commands) PartialSearch(ctx context.Context, con *Console, dialogs Dialogs) string {
	return cm.run(ctx, con, models.AuditActionPartialSearch, func(ctx context.Context, run *commandRun) error {
		token, err := cm.requireSession(con)
		if err != nil {
			return err
		}

		value, ok, err := dialogs.Prompt(MsgPartialPrompt)
		if err != nil {
			return err
		}

		criteria := models.NewValueCriteria(value)
		if !ok || criteria.Value == "" {
			run.outcome = models.AuditOutcomeCancelled
			return nil
		}

		cm.clearResults(con)
		done := con.Screen.BeginLoading()
		defer done()

		return cm.search(ctx, con, run, token, criteria)
	})
}

func (cm *Commands) search(ctx context.Context, con *Console, run *commandRun, token string, criteria models.SearchCriteria) error {
	run.set("search_type", string(criteria.Type()))
	run.set("fields", criteria.UsedFields())
	cm.events.LogSearchSubmitted(ctx, con.ID, criteria.Type(), criteria.UsedFields())

	seq := con.seq.Next(RegionResults)
	var result *models.SearchResult
	var err error
	if criteria.Type() == models.SearchTypeValue {
		result, err = cm.backend.SearchByValue(ctx, token, criteria.Value)
	} else {
		result, err = cm.backend.Search(ctx, token, criteria)
	}
	if !con.seq.IsLatest(RegionResults, seq) {
		cm.discard(ctx, con, run, RegionResults, seq)
		return nil
	}
	if err != nil {
		return failWith(con, err, MsgSearchFailed, MsgNetwork)
	}

	internal, err := cm.renderer.Internal(result.Internal)
	if err != nil {
		return cm.renderFailed(ctx, con, "internal", err)
	}
	external, err := cm.renderer.External(result.External)
	if err != nil {
		return cm.renderFailed(ctx, con, "external", err)
	}

	con.Screen.ShowResults(internal, external)
	run.set("internal_count", len(result.Internal))
	return nil
}

// Reload asks the backend to reload its data store after a confirmation
func (cm *Commands) Reload(ctx context.Context, con *Console, dialogs Dialogs) string {
	return cm.run(ctx, con, models.AuditActionReload, func(ctx context.Context, run *commandRun) error {
		token, err := cm.requireSession(con)
		if err != nil {
			return err
		}

		confirmed, err := dialogs.Confirm(MsgReloadConfirm)
		if err != nil {
			return err
		}
		if !confirmed {
			run.outcome = models.AuditOutcomeCancelled
			return nil
		}

		done := con.Screen.BeginLoading()
		defer done()

		rows, err := cm.backend.Reload(ctx, token)
		if err != nil {
			return failWith(con, err, MsgReloadFailed, MsgReloadFailed)
		}

		con.Screen.Alert(fmt.Sprintf(MsgReloaded, rows))
		if n, convErr := strconv.Atoi(rows); convErr == nil {
			run.set("rows_loaded", n)
		}
		return nil
	})
}

// Export fetches the CSV of the last result. The download is nil when the
// export failed; the failure is then on the screen.
func (cm *Commands) Export(ctx context.Context, con *Console) (*Download, string) {
	var download *Download

	outcome := cm.run(ctx, con, models.AuditActionExport, func(ctx context.Context, run *commandRun) error {
		token, err := cm.requireSession(con)
		if err != nil {
			return err
		}

		done := con.Screen.BeginLoading()
		defer done()

		csv, err := cm.backend.Export(ctx, token)
		if err != nil {
			if apperrors.IsKind(err, apperrors.KindHTTP) {
				con.Screen.Alert(MsgExportFailed)
				return err
			}
			return failWith(con, err, MsgExportFailed, MsgExportNetwork)
		}

		download = &Download{
			Filename:    ExportFilename,
			ContentType: ExportContentType,
			Body:        []byte(csv),
		}
		run.set("bytes", len(csv))
		return nil
	})

	return download, outcome
}

// History clears the page and shows past queries
func (cm *Commands) History(ctx context.Context, con *Console) string {
	return cm.run(ctx, con, models.AuditActionHistory, func(ctx context.Context, run *commandRun) error {
		token, err := cm.requireSession(con)
		if err != nil {
			return err
		}

		cm.clearAll(con)
		done := con.Screen.BeginLoading()
		defer done()

		seq := con.seq.Next(RegionHistory)
		entries, err := cm.backend.History(ctx, token)
		if !con.seq.IsLatest(RegionHistory, seq) {
			cm.discard(ctx, con, run, RegionHistory, seq)
			return nil
		}
		if err != nil {
			return failWith(con, err, MsgHistoryFailed, MsgHistoryFailed)
		}

		html, err := cm.renderer.History(entries)
		if err != nil {
			return cm.renderFailed(ctx, con, "history", err)
		}

		con.Screen.ShowHistory(html)
		run.set("rows", len(entries))
		return nil
	})
}

// Records clears the page and shows the first rows of the backend store
func (cm *Commands) Records(ctx context.Context, con *Console) string {
	return cm.run(ctx, con, models.AuditActionRecords, func(ctx context.Context, run *commandRun) error {
		token, err := cm.requireSession(con)
		if err != nil {
			return err
		}

		cm.clearAll(con)
		done := con.Screen.BeginLoading()
		defer done()

		seq := con.seq.Next(RegionRecords)
		rows, err := cm.backend.Records(ctx, token, models.RecordsPageSize)
		if !con.seq.IsLatest(RegionRecords, seq) {
			cm.discard(ctx, con, run, RegionRecords, seq)
			return nil
		}
		if err != nil {
			return failWith(con, err, MsgRecordsFailed, MsgRecordsFailed)
		}

		html, err := cm.renderer.Records(rows)
		if err != nil {
			return cm.renderFailed(ctx, con, "records", err)
		}

		con.Screen.ShowRecords(html)
		run.set("rows", len(rows))
		return nil
	})
}

// Logout drops the session and resets the page
func (cm *Commands) Logout(ctx context.Context, con *Console) string {
	return cm.run(ctx, con, models.AuditActionLogout, func(ctx context.Context, run *commandRun) error {
		operator := con.Session.OperatorName()

		con.Session.ClearSession()
		cm.clearAll(con)
		con.Screen.CloseDialog()
		con.Screen.SetOperator(OperatorLoggedOut)
		con.Screen.SetPINInput("")
		con.Screen.SetPINStatus("")
		con.Screen.Alert(MsgLoggedOut)

		cm.events.LogLogout(ctx, con.ID, operator)
		return nil
	})
}

// SelectSearchModule clears the page and shows the search form
func (cm *Commands) SelectSearchModule(ctx context.Context, con *Console) string {
	return cm.run(ctx, con, CommandModuleSelect, func(ctx context.Context, run *commandRun) error {
		run.audited = false
		cm.clearAll(con)
		con.Screen.ShowSearchForm()
		return nil
	})
}

// clearAll empties the page; responses still in flight are discarded
func (cm *Commands) clearAll(con *Console) {
	con.seq.Invalidate(AllRegions...)
	con.Screen.ClearAll()
}

// clearResults empties every result region but keeps the form; responses
// still in flight for those regions are discarded
func (cm *Commands) clearResults(con *Console) {
	con.seq.Invalidate(AllRegions...)
	con.Screen.ClearResults()
}
