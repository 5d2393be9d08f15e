package services

import (
	"context"
	"log/slog"
	"time"

	"lookup-console/internal/logger"
	"lookup-console/internal/models"
)

const (
	// RedactedValue is used to mask sensitive information in logs to avoid logging PII
	RedactedValue = "***REDACTED***"
)

// ConsoleLogger provides structured logging for console operations
type ConsoleLogger struct {
	logger *slog.Logger
}

// NewConsoleLogger creates a new console logger
func NewConsoleLogger(logger *slog.Logger) ConsoleLoggerInterface {
	return &ConsoleLogger{
		logger: logger,
	}
}

// LogConsoleCreated logs a new console instance for a page load
func (cl *ConsoleLogger) LogConsoleCreated(ctx context.Context, consoleID string) {
	cl.logger.InfoContext(ctx, "console created",
		slog.String("event_type", "console_created"),
		slog.String("console_id", consoleID),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogConsoleEvicted logs an idle console being dropped by the janitor
func (cl *ConsoleLogger) LogConsoleEvicted(ctx context.Context, consoleID string, idle time.Duration) {
	cl.logger.InfoContext(ctx, "console evicted",
		slog.String("event_type", "console_evicted"),
		slog.String("console_id", consoleID),
		slog.Duration("idle", idle),
		slog.Time("timestamp", time.Now()),
	)
}

func (cl *ConsoleLogger) LogCommandStarted(ctx context.Context, consoleID, command string) {
	cl.logger.DebugContext(ctx, "command started",
		slog.String("event_type", "command_started"),
		slog.String("console_id", consoleID),
		slog.String("command", command),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *ConsoleLogger) LogCommandCompleted(ctx context.Context, consoleID, command string, durationMs int64) {
	cl.logger.InfoContext(ctx, "command completed",
		slog.String("event_type", "command_completed"),
		slog.String("console_id", consoleID),
		slog.String("command", command),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogCommandFailed logs a command that ended in a network, http or rejection error
func (cl *ConsoleLogger) LogCommandFailed(ctx context.Context, consoleID, command, kind, errorMsg string, durationMs int64) {
	cl.logger.WarnContext(ctx, "command failed",
		slog.String("event_type", "command_failed"),
		slog.String("console_id", consoleID),
		slog.String("command", command),
		slog.String("kind", kind),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *ConsoleLogger) LogPreconditionFailed(ctx context.Context, consoleID, command, reason string) {
	cl.logger.InfoContext(ctx, "command precondition failed",
		slog.String("event_type", "precondition_failed"),
		slog.String("console_id", consoleID),
		slog.String("command", command),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogSearchSubmitted logs which criteria were used; the values themselves are masked
func (cl *ConsoleLogger) LogSearchSubmitted(ctx context.Context, consoleID string, searchType models.SearchType, fields []string) {
	cl.logger.InfoContext(ctx, "search submitted",
		slog.String("event_type", "search_submitted"),
		slog.String("console_id", consoleID),
		slog.String("search_type", string(searchType)),
		slog.Any("fields", fields),
		slog.String("query", RedactedValue),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *ConsoleLogger) LogStaleResponse(ctx context.Context, consoleID, region string, seq, latest uint64) {
	cl.logger.InfoContext(ctx, "stale response discarded",
		slog.String("event_type", "stale_response_discarded"),
		slog.String("console_id", consoleID),
		slog.String("region", region),
		slog.Uint64("sequence", seq),
		slog.Uint64("latest", latest),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *ConsoleLogger) LogLogin(ctx context.Context, consoleID, operator string, success bool, reason string) {
	if success {
		cl.logger.InfoContext(ctx, "operator logged in",
			slog.String("event_type", "login_succeeded"),
			slog.String("console_id", consoleID),
			slog.String("operator", operator),
			slog.Time("timestamp", time.Now()),
			slog.String("request_id", getRequestID(ctx)),
		)
		return
	}

	cl.logger.WarnContext(ctx, "operator login rejected",
		slog.String("event_type", "login_rejected"),
		slog.String("console_id", consoleID),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *ConsoleLogger) LogLogout(ctx context.Context, consoleID, operator string) {
	cl.logger.InfoContext(ctx, "operator logged out",
		slog.String("event_type", "logout"),
		slog.String("console_id", consoleID),
		slog.String("operator", operator),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// Helper functions

func getRequestID(ctx context.Context) string {
	return logger.TraceID(ctx)
}
