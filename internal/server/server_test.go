package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"lookup-console/internal/config"
	"lookup-console/internal/database"
	"lookup-console/internal/middleware"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

func TestServer(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

type ServerSuite struct {
	suite.Suite
	db     *database.DB
	cfg    *config.Config
	server *Server
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            "0",
			Environment:     "testing",
			ShutdownTimeout: time.Second,
		},
		Backend: config.BackendConfig{URL: "http://127.0.0.1:1"},
		Database: config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			AuditRetention: time.Hour,
		},
		Console: config.ConsoleConfig{
			IdleTTL:      time.Hour,
			HandleTTL:    time.Hour,
			HandleSecret: []byte("0123456789abcdef0123456789abcdef"),
			Issuer:       "lookup-console-test",
			PhoneRegion:  "GT",
		},
		Security: config.SecurityConfig{
			RateLimitPerSecond:      1000,
			RateLimitBurst:          1000,
			LoginRateLimitPerSecond: 0.001,
			LoginRateLimitBurst:     2,
		},
	}
}

func (s *ServerSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.cfg = testConfig()

	srv, err := New(s.cfg, s.db, slog.New(slog.NewTextHandler(io.Discard, nil)), prometheus.NewRegistry())
	s.Require().NoError(err)
	s.server = srv
}

func (s *ServerSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *ServerSuite) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.server.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (s *ServerSuite) TestIndexPage() {
	rec := s.get("/")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `id="console-form"`)
	s.NotEmpty(rec.Header().Get(middleware.TraceIDHeader))
	s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func (s *ServerSuite) TestHealth() {
	rec := s.get("/health")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "healthy")
}

func (s *ServerSuite) TestStaticStylesheet() {
	rec := s.get("/static/console.css")

	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Body.String())
}

func (s *ServerSuite) TestMetricsExposed() {
	s.get("/")

	rec := s.get("/metrics")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "console_active_instances 1")
}

func (s *ServerSuite) TestUnknownRouteIsCounted() {
	rec := s.get("/nope")
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.get("/metrics")
	s.Contains(rec.Body.String(), "console_http_errors_total")
}

func (s *ServerSuite) TestControlWithoutConsole() {
	req := httptest.NewRequest(http.MethodPost, "/console/history", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.server.Echo().ServeHTTP(rec, req)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_003")
}

func (s *ServerSuite) TestLoginIsRateLimited() {
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		form := url.Values{"console": {"a.b.c"}, "pin": {"1"}}
		req := httptest.NewRequest(http.MethodPost, "/console/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("X-Real-IP", "10.1.1.1")
		rec := httptest.NewRecorder()
		s.server.Echo().ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	s.Equal([]int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
}

func (s *ServerSuite) TestRunStopsWithContext() {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.server.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(3 * time.Second):
		s.Fail("server did not stop")
	}
}
