package middleware

import (
	"lookup-console/internal/console"
	"lookup-console/internal/dto"
	"lookup-console/internal/errors"
	"lookup-console/internal/handlers"

	"github.com/labstack/echo/v4"
)

// ResolveConsole looks up the console named by the posted handle and stores
// it in the context for the control handlers
func ResolveConsole(registry *console.Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			form := dto.ConsoleForm{Handle: c.FormValue("console")}
			if err := c.Validate(&form); err != nil {
				return handlers.SendError(c, errors.AuthInvalidConsole)
			}

			con, err := registry.Resolve(form.Handle)
			if err != nil {
				if ce, ok := errors.AsConsoleError(err); ok {
					return handlers.SendError(c, ce.Code)
				}
				return handlers.SendSystemError(c, err)
			}

			c.Set(handlers.ConsoleContextKey, con)
			c.Set(handlers.HandleContextKey, form.Handle)
			return next(c)
		}
	}
}
