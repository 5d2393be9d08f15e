package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	apperrors "lookup-console/internal/errors"
	"lookup-console/internal/services"

	"github.com/google/uuid"
)

// Registry owns the live console instances, one per page load
type Registry struct {
	mu       sync.RWMutex
	consoles map[string]*Console

	tokens  services.TokenServiceInterface
	events  services.ConsoleLoggerInterface
	metrics services.MetricsRecorderInterface
	idleTTL time.Duration
	logger  *slog.Logger
	now     func() time.Time
}

func NewRegistry(
	tokens services.TokenServiceInterface,
	events services.ConsoleLoggerInterface,
	metrics services.MetricsRecorderInterface,
	idleTTL time.Duration,
) *Registry {
	return &Registry{
		consoles: make(map[string]*Console),
		tokens:   tokens,
		events:   events,
		metrics:  metrics,
		idleTTL:  idleTTL,
		logger:   slog.Default(),
		now:      time.Now,
	}
}

// Create registers a fresh console and returns it with its signed handle
func (r *Registry) Create(ctx context.Context) (*Console, string, error) {
	id := uuid.NewString()

	handle, _, err := r.tokens.IssueConsoleHandle(id)
	if err != nil {
		return nil, "", fmt.Errorf("issue console handle: %w", err)
	}

	con := New(id, r.now())
	con.Screen.ClearAll()

	r.mu.Lock()
	r.consoles[id] = con
	count := len(r.consoles)
	r.mu.Unlock()

	r.metrics.RecordGauge(services.MetricActiveConsoles, float64(count), nil)
	r.events.LogConsoleCreated(ctx, id)

	return con, handle, nil
}

// Resolve returns the console a handle was issued for. Forged handles fail
// with AUTH_003; expired handles and evicted consoles with AUTH_004.
func (r *Registry) Resolve(handle string) (*Console, error) {
	claims, err := r.tokens.ValidateConsoleHandle(handle)
	if err != nil {
		if errors.Is(err, services.ErrExpiredToken) {
			return nil, apperrors.NewPrecondition(apperrors.AuthExpiredConsole)
		}
		return nil, apperrors.NewPrecondition(apperrors.AuthInvalidConsole)
	}

	r.mu.RLock()
	con, ok := r.consoles[claims.ConsoleID]
	r.mu.RUnlock()

	if !ok {
		return nil, apperrors.NewPrecondition(apperrors.AuthExpiredConsole)
	}

	con.Touch(r.now())
	return con, nil
}

// Len returns the number of live consoles
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.consoles)
}

// Evict drops every console idle for longer than the TTL
func (r *Registry) Evict(ctx context.Context) int {
	now := r.now()

	type evicted struct {
		id   string
		idle time.Duration
	}
	var dropped []evicted

	r.mu.Lock()
	for id, con := range r.consoles {
		if idle := con.IdleFor(now); idle > r.idleTTL {
			delete(r.consoles, id)
			dropped = append(dropped, evicted{id: id, idle: idle})
		}
	}
	count := len(r.consoles)
	r.mu.Unlock()

	for _, d := range dropped {
		r.events.LogConsoleEvicted(ctx, d.id, d.idle)
	}
	if len(dropped) > 0 {
		r.metrics.RecordGauge(services.MetricActiveConsoles, float64(count), nil)
	}

	return len(dropped)
}

// StartJanitor evicts idle consoles until ctx is done
func (r *Registry) StartJanitor(ctx context.Context) {
	interval := janitorInterval(r.idleTTL)
	r.logger.Info("starting console janitor",
		slog.Duration("idle_ttl", r.idleTTL),
		slog.Duration("interval", interval),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("console janitor stopped")
			return
		case <-ticker.C:
			if n := r.Evict(ctx); n > 0 {
				r.logger.Debug("evicted idle consoles", slog.Int("count", n))
			}
		}
	}
}

func janitorInterval(ttl time.Duration) time.Duration {
	interval := ttl / 4
	if interval > time.Minute {
		interval = time.Minute
	}
	if interval < time.Second {
		interval = time.Second
	}
	return interval
}
