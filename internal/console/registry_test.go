package console

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lookup-console/internal/config"
	apperrors "lookup-console/internal/errors"
	"lookup-console/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, handleTTL, idleTTL time.Duration) *Registry {
	t.Helper()
	secret, err := config.GenerateSecret()
	require.NoError(t, err)

	tokens := services.NewTokenService(&config.ConsoleConfig{
		HandleSecret: secret,
		HandleTTL:    handleTTL,
		Issuer:       "lookup-console",
	})
	events := services.NewConsoleLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewRegistry(tokens, events, services.NewPrometheusMetrics(prometheus.NewRegistry()), idleTTL)
}

func TestRegistry_CreateAndResolve(t *testing.T) {
	r := newTestRegistry(t, time.Hour, time.Hour)

	con, handle, err := r.Create(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())

	got, err := r.Resolve(handle)
	require.NoError(t, err)
	assert.Same(t, con, got)
	assert.False(t, got.Session.IsAuthenticated())
	assert.Equal(t, OperatorLoggedOut, got.Screen.Snapshot().Operator)
}

func TestRegistry_EachPageLoadIsFresh(t *testing.T) {
	r := newTestRegistry(t, time.Hour, time.Hour)

	first, _, err := r.Create(context.Background())
	require.NoError(t, err)
	first.Session.SetSession("abc", "Juan")

	second, _, err := r.Create(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, second.Session.IsAuthenticated())
}

func TestRegistry_ForgedHandle(t *testing.T) {
	r := newTestRegistry(t, time.Hour, time.Hour)
	other := newTestRegistry(t, time.Hour, time.Hour)

	_, foreign, err := other.Create(context.Background())
	require.NoError(t, err)

	_, err = r.Resolve(foreign)
	ce, ok := apperrors.AsConsoleError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.AuthInvalidConsole, ce.Code)
}

func TestRegistry_ExpiredHandle(t *testing.T) {
	r := newTestRegistry(t, -time.Minute, time.Hour)

	_, handle, err := r.Create(context.Background())
	require.NoError(t, err)

	_, err = r.Resolve(handle)
	ce, ok := apperrors.AsConsoleError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.AuthExpiredConsole, ce.Code)
}

func TestRegistry_EvictIdle(t *testing.T) {
	r := newTestRegistry(t, time.Hour, 10*time.Minute)
	now := time.Now()
	r.now = func() time.Time { return now }

	_, staleHandle, err := r.Create(context.Background())
	require.NoError(t, err)

	now = now.Add(8 * time.Minute)
	_, freshHandle, err := r.Create(context.Background())
	require.NoError(t, err)

	now = now.Add(5 * time.Minute)
	assert.Equal(t, 1, r.Evict(context.Background()))
	assert.Equal(t, 1, r.Len())

	_, err = r.Resolve(staleHandle)
	assert.True(t, apperrors.IsKind(err, apperrors.KindPrecondition))

	_, err = r.Resolve(freshHandle)
	assert.NoError(t, err)
}

func TestRegistry_ResolveKeepsConsoleAlive(t *testing.T) {
	r := newTestRegistry(t, time.Hour, 10*time.Minute)
	now := time.Now()
	r.now = func() time.Time { return now }

	_, handle, err := r.Create(context.Background())
	require.NoError(t, err)

	now = now.Add(9 * time.Minute)
	_, err = r.Resolve(handle)
	require.NoError(t, err)

	now = now.Add(9 * time.Minute)
	assert.Equal(t, 0, r.Evict(context.Background()))
}

func TestRegistry_JanitorStopsWithContext(t *testing.T) {
	r := newTestRegistry(t, time.Hour, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.StartJanitor(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestJanitorInterval(t *testing.T) {
	assert.Equal(t, time.Minute, janitorInterval(8*time.Hour))
	assert.Equal(t, 15*time.Second, janitorInterval(time.Minute))
	assert.Equal(t, time.Second, janitorInterval(time.Millisecond))
}
