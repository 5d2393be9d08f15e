package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"lookup-console/internal/console"
	"lookup-console/internal/dto"
	"lookup-console/internal/errors"
	"lookup-console/internal/logger"
	"lookup-console/internal/models"
	"lookup-console/internal/views"

	"github.com/labstack/echo/v4"
)

// ConsoleHandler serves the console page and its controls
type ConsoleHandler struct {
	registry     *console.Registry
	commands     *console.Commands
	logger       *slog.Logger
	controls     []Control
	viewControls map[string]views.Control
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(registry *console.Registry, commands *console.Commands, logger *slog.Logger) *ConsoleHandler {
	h := &ConsoleHandler{
		registry: registry,
		commands: commands,
		logger:   logger,
	}
	h.controls = h.buildControls()
	h.viewControls = toViewControls(h.controls)
	return h
}

// Index creates a console instance and renders its empty page
func (h *ConsoleHandler) Index(c echo.Context) error {
	con, handle, err := h.registry.Create(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	con.Screen.ClearAll()
	con.Screen.ClearForm()

	return h.renderPage(c, con, handle)
}

// Login handles pin-btn
func (h *ConsoleHandler) Login(c echo.Context) error {
	var form dto.LoginForm
	con, handle, ok := h.bind(c, &form)
	if !ok {
		return nil
	}

	h.commands.Login(commandContext(c), con, form.PIN)
	return h.renderPage(c, con, handle)
}

// Search handles buscar-btn
func (h *ConsoleHandler) Search(c echo.Context) error {
	var form dto.SearchForm
	con, handle, ok := h.bind(c, &form)
	if !ok {
		return nil
	}

	h.commands.Search(commandContext(c), con, models.NewFieldCriteria(form.Name, form.NationalID, form.TaxID))
	return h.renderPage(c, con, handle)
}

// PartialSearch handles buscar-valor-btn; the value comes from a prompt
func (h *ConsoleHandler) PartialSearch(c echo.Context) error {
	var form dto.DialogForm
	con, handle, ok := h.bind(c, &form)
	if !ok {
		return nil
	}

	h.commands.PartialSearch(commandContext(c), con, h.dialogs(con, ControlPartialSearch, form))
	return h.renderPage(c, con, handle)
}

// Reload handles reload-btn after a confirmation
func (h *ConsoleHandler) Reload(c echo.Context) error {
	var form dto.DialogForm
	con, handle, ok := h.bind(c, &form)
	if !ok {
		return nil
	}

	h.commands.Reload(commandContext(c), con, h.dialogs(con, ControlReload, form))
	return h.renderPage(c, con, handle)
}

// Export handles export-btn. A successful export is sent as a CSV
// attachment; a failed one re-renders the page with the alert.
func (h *ConsoleHandler) Export(c echo.Context) error {
	var form dto.ConsoleForm
	con, handle, ok := h.bind(c, &form)
	if !ok {
		return nil
	}

	download, _ := h.commands.Export(commandContext(c), con)
	if download == nil {
		return h.renderPage(c, con, handle)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", download.Filename))
	return c.Blob(http.StatusOK, download.ContentType, download.Body)
}

// History handles menu-historial
func (h *ConsoleHandler) History(c echo.Context) error {
	var form dto.ConsoleForm
	con, handle, ok := h.bind(c, &form)
	if !ok {
		return nil
	}

	h.commands.History(commandContext(c), con)
	return h.renderPage(c, con, handle)
}

// Records handles menu-numeros
func (h *ConsoleHandler) Records(c echo.Context) error {
	var form dto.ConsoleForm
	con, handle, ok := h.bind(c, &form)
	if !ok {
		return nil
	}

	h.commands.Records(commandContext(c), con)
	return h.renderPage(c, con, handle)
}

// Logout handles logout-btn
func (h *ConsoleHandler) Logout(c echo.Context) error {
	var form dto.ConsoleForm
	con, handle, ok := h.bind(c, &form)
	if !ok {
		return nil
	}

	h.commands.Logout(commandContext(c), con)
	return h.renderPage(c, con, handle)
}

// SelectModule handles menu-buscar
func (h *ConsoleHandler) SelectModule(c echo.Context) error {
	var form dto.ConsoleForm
	con, handle, ok := h.bind(c, &form)
	if !ok {
		return nil
	}

	h.commands.SelectSearchModule(commandContext(c), con)
	return h.renderPage(c, con, handle)
}

// bind decodes the posted form and returns the console resolved by the
// middleware. When ok is false the error response has already been written.
func (h *ConsoleHandler) bind(c echo.Context, form interface{}) (*console.Console, string, bool) {
	con, handle, err := consoleFromContext(c)
	if err != nil {
		h.reject(c, SendSystemError(c, err))
		return nil, "", false
	}

	if err := c.Bind(form); err != nil {
		logger.FromContext(c.Request().Context(), h.logger).Warn("failed to bind console form",
			"console_id", con.ID,
			"error", err,
		)
		h.reject(c, SendError(c, errors.ValidationGeneral))
		return nil, "", false
	}

	return con, handle, true
}

func (h *ConsoleHandler) reject(c echo.Context, err error) {
	if err != nil {
		logger.FromContext(c.Request().Context(), h.logger).Error("failed to write error response",
			"path", c.Path(),
			"error", err,
		)
	}
}

func (h *ConsoleHandler) dialogs(con *console.Console, controlID string, form dto.DialogForm) console.Dialogs {
	return console.NewFormDialogs(con.Screen, h.path(controlID), console.Answer{
		DialogID: form.DialogID,
		Response: form.Answer,
		Value:    form.Value,
	})
}

func (h *ConsoleHandler) renderPage(c echo.Context, con *console.Console, handle string) error {
	snap := con.Screen.Snapshot()

	page := views.Page{
		Handle:    handle,
		Operator:  snap.Operator,
		PINStatus: snap.PINStatus,
		PINInput:  snap.PINInput,
		Loading:   snap.Loading,
		Alerts:    snap.Alerts,
		Search: views.SearchForm{
			Visible:    snap.SearchVisible,
			Name:       snap.Search.Name,
			NationalID: snap.Search.NationalID,
			TaxID:      snap.Search.TaxID,
		},
		Results: views.ResultsRegion{
			Visible:  snap.ResultsVisible,
			Internal: snap.Internal,
			External: snap.External,
		},
		History:  views.Region{Visible: snap.HistoryVisible, HTML: snap.History},
		Records:  views.Region{Visible: snap.RecordsVisible, HTML: snap.Records},
		Controls: h.viewControls,
	}

	if snap.Dialog != nil {
		page.Dialog = &views.Dialog{
			ID:      snap.Dialog.ID,
			Message: snap.Dialog.Message,
			Prompt:  snap.Dialog.Kind == console.DialogPrompt,
			Path:    snap.Dialog.Path,
		}
	}

	if err := c.Render(http.StatusOK, views.PageTemplate, page); err != nil {
		logger.FromContext(c.Request().Context(), h.logger).Error("failed to render console page",
			"console_id", con.ID,
			"error", err,
		)
		return SendSystemError(c, err)
	}
	return nil
}
