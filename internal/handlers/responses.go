package handlers

import (
	"net/http"
	"strings"

	"lookup-console/internal/errors"
	"lookup-console/internal/views"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// Console commands never fail at the HTTP level: their errors become alerts
// on the re-rendered page. Everything else uses:
//
// 1. SendError - unknown console, rate limit, bad form (4xx responses)
// 2. SendSystemError - unexpected internal errors (500 responses)
//
// Browsers get the HTML error page, API clients the JSON ErrorResponse.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return SendErrorResponse(c, errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return SendErrorResponse(c, http.StatusInternalServerError, errorResponse)
}

// SendErrorResponse writes errorResponse as an HTML page for browsers and as JSON otherwise
func SendErrorResponse(c echo.Context, status int, errorResponse *errors.ErrorResponse) error {
	if WantsHTML(c) && c.Echo().Renderer != nil {
		return c.Render(status, views.ErrorTemplate, views.ErrorPage{
			Status:  status,
			Message: errorResponse.Error.Message,
			TraceID: errorResponse.Error.TraceID,
		})
	}
	return c.JSON(status, errorResponse)
}

// WantsHTML reports whether the client asked for an HTML document
func WantsHTML(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}
