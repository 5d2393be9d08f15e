package handlers

import (
	"net/http"

	"lookup-console/internal/views"

	"github.com/labstack/echo/v4"
)

// Control ids
const (
	ControlLogin         = "pin-btn"
	ControlSearch        = "buscar-btn"
	ControlPartialSearch = "buscar-valor-btn"
	ControlReload        = "reload-btn"
	ControlExport        = "export-btn"
	ControlHistory       = "menu-historial"
	ControlRecords       = "menu-numeros"
	ControlLogout        = "logout-btn"
	ControlSearchModule  = "menu-buscar"
)

// Control binds a page button to its route and command
type Control struct {
	ID          string
	Label       string
	Method      string
	Path        string
	Handler     echo.HandlerFunc
	RateLimited bool
}

// buildControls is the single table behind both the routes and the page buttons
func (h *ConsoleHandler) buildControls() []Control {
	return []Control{
		{ID: ControlLogin, Label: "Entrar", Method: http.MethodPost, Path: "/console/login", Handler: h.Login, RateLimited: true},
		{ID: ControlSearch, Label: "Buscar", Method: http.MethodPost, Path: "/console/search", Handler: h.Search},
		{ID: ControlPartialSearch, Label: "Búsqueda parcial", Method: http.MethodPost, Path: "/console/search/partial", Handler: h.PartialSearch},
		{ID: ControlReload, Label: "Recargar base", Method: http.MethodPost, Path: "/console/reload", Handler: h.Reload},
		{ID: ControlExport, Label: "Exportar CSV", Method: http.MethodPost, Path: "/console/export", Handler: h.Export},
		{ID: ControlHistory, Label: "Historial", Method: http.MethodPost, Path: "/console/history", Handler: h.History},
		{ID: ControlRecords, Label: "Base de números", Method: http.MethodPost, Path: "/console/records", Handler: h.Records},
		{ID: ControlLogout, Label: "Cerrar sesión", Method: http.MethodPost, Path: "/console/logout", Handler: h.Logout},
		{ID: ControlSearchModule, Label: "Buscar", Method: http.MethodPost, Path: "/console/module/search", Handler: h.SelectModule},
	}
}

// Controls returns the control table
func (h *ConsoleHandler) Controls() []Control {
	return h.controls
}

func (h *ConsoleHandler) path(id string) string {
	return h.viewControls[id].Path
}

// RegisterRoutes mounts the page and every control. resolve runs on every
// control route; loginLimit only on rate limited ones.
func (h *ConsoleHandler) RegisterRoutes(e *echo.Echo, resolve, loginLimit echo.MiddlewareFunc) {
	e.GET("/", h.Index)

	for _, ctl := range h.controls {
		mws := []echo.MiddlewareFunc{}
		if ctl.RateLimited && loginLimit != nil {
			mws = append(mws, loginLimit)
		}
		mws = append(mws, resolve)
		e.Add(ctl.Method, ctl.Path, ctl.Handler, mws...)
	}
}

func toViewControls(controls []Control) map[string]views.Control {
	out := make(map[string]views.Control, len(controls))
	for _, ctl := range controls {
		out[ctl.ID] = views.Control{
			ID:     ctl.ID,
			Label:  ctl.Label,
			Method: ctl.Method,
			Path:   ctl.Path,
		}
	}
	return out
}
