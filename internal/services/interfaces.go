package services

import (
	"context"
	"time"

	"lookup-console/internal/models"
)

// LoginResult is a successful PIN login
type LoginResult struct {
	Token    string
	Operator string
}

// BackendClientInterface is the typed contract of the record-lookup backend.
// Every error is an *errors.ConsoleError.
type BackendClientInterface interface {
	Request(ctx context.Context, method, path string, opts RequestOptions, out any) error
	Login(ctx context.Context, pin string) (*LoginResult, error)
	Search(ctx context.Context, token string, criteria models.SearchCriteria) (*models.SearchResult, error)
	SearchByValue(ctx context.Context, token, value string) (*models.SearchResult, error)
	Reload(ctx context.Context, token string) (string, error)
	Export(ctx context.Context, token string) (string, error)
	History(ctx context.Context, token string) ([]models.HistoryEntry, error)
	Records(ctx context.Context, token string, limit int) ([]models.RawRecord, error)
}

// AuditServiceInterface defines the contract for the console audit trail
type AuditServiceInterface interface {
	Record(ctx context.Context, entry *models.AuditLog) error
	List(filter models.AuditFilter) ([]*models.AuditLog, int64, error)
	Purge(retention time.Duration) (int64, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration, tags map[string]string)
	RecordGauge(name string, value float64, tags map[string]string)
}

// TokenServiceInterface issues and verifies the signed handles that identify a console instance
type TokenServiceInterface interface {
	IssueConsoleHandle(consoleID string) (string, time.Time, error)
	ValidateConsoleHandle(tokenString string) (*models.ConsoleClaims, error)
}

// ConsoleLoggerInterface provides structured logging for console events
type ConsoleLoggerInterface interface {
	LogConsoleCreated(ctx context.Context, consoleID string)
	LogConsoleEvicted(ctx context.Context, consoleID string, idle time.Duration)
	LogCommandStarted(ctx context.Context, consoleID, command string)
	LogCommandCompleted(ctx context.Context, consoleID, command string, durationMs int64)
	LogCommandFailed(ctx context.Context, consoleID, command, kind, errorMsg string, durationMs int64)
	LogPreconditionFailed(ctx context.Context, consoleID, command, reason string)
	LogSearchSubmitted(ctx context.Context, consoleID string, searchType models.SearchType, fields []string)
	LogStaleResponse(ctx context.Context, consoleID, region string, seq, latest uint64)
	LogLogin(ctx context.Context, consoleID, operator string, success bool, reason string)
	LogLogout(ctx context.Context, consoleID, operator string)
}
