package handlers

import (
	"context"
	"fmt"
	"strings"

	"lookup-console/internal/console"

	"github.com/labstack/echo/v4"
)

// Context keys set by the console resolver middleware
const (
	ConsoleContextKey = "console"
	HandleContextKey  = "console_handle"
)

// ErrNoConsole is returned when the resolver middleware did not run
var ErrNoConsole = fmt.Errorf("console not resolved")

// consoleFromContext returns the console and handle set by the resolver middleware
func consoleFromContext(c echo.Context) (*console.Console, string, error) {
	con, ok := c.Get(ConsoleContextKey).(*console.Console)
	if !ok || con == nil {
		return nil, "", ErrNoConsole
	}

	handle, _ := c.Get(HandleContextKey).(string)
	return con, handle, nil
}

// commandContext carries the request context plus the caller for the audit trail
func commandContext(c echo.Context) context.Context {
	return console.WithClient(c.Request().Context(), console.Client{
		IP:        getClientIP(c),
		UserAgent: c.Request().UserAgent(),
	})
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.RealIP()
}
