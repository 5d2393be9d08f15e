package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"lookup-console/internal/config"
	"lookup-console/internal/console"
	"lookup-console/internal/handlers"
	"lookup-console/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

func TestResolveConsole(t *testing.T) {
	suite.Run(t, new(ResolveConsoleSuite))
}

type ResolveConsoleSuite struct {
	suite.Suite
	e        *echo.Echo
	cfg      *config.ConsoleConfig
	registry *console.Registry
}

func (s *ResolveConsoleSuite) SetupTest() {
	s.e = echo.New()
	s.e.Validator = handlers.NewValidator()

	s.cfg = &config.ConsoleConfig{
		IdleTTL:      time.Hour,
		HandleTTL:    time.Hour,
		HandleSecret: []byte("0123456789abcdef0123456789abcdef"),
		Issuer:       "lookup-console-test",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.registry = console.NewRegistry(
		services.NewTokenService(s.cfg),
		services.NewConsoleLogger(logger),
		services.NewPrometheusMetrics(prometheus.NewRegistry()),
		s.cfg.IdleTTL,
	)
}

func (s *ResolveConsoleSuite) post(handle string) (*httptest.ResponseRecorder, *console.Console) {
	form := url.Values{"console": {handle}}
	req := httptest.NewRequest(http.MethodPost, "/console/history", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	var resolved *console.Console
	handler := ResolveConsole(s.registry)(func(c echo.Context) error {
		resolved, _ = c.Get(handlers.ConsoleContextKey).(*console.Console)
		s.Equal(handle, c.Get(handlers.HandleContextKey))
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))
	return rec, resolved
}

func (s *ResolveConsoleSuite) TestKnownHandle() {
	con, handle, err := s.registry.Create(s.T().Context())
	s.Require().NoError(err)

	rec, resolved := s.post(handle)

	s.Equal(http.StatusOK, rec.Code)
	s.Same(con, resolved)
}

func (s *ResolveConsoleSuite) TestMissingHandle() {
	rec, resolved := s.post("")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_003")
	s.Nil(resolved)
}

func (s *ResolveConsoleSuite) TestMalformedHandle() {
	rec, _ := s.post("not-a-handle")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_003")
}

func (s *ResolveConsoleSuite) TestForeignSignature() {
	other := *s.cfg
	other.HandleSecret = []byte("ffffffffffffffffffffffffffffffff")
	handle, _, err := services.NewTokenService(&other).IssueConsoleHandle("some-id")
	s.Require().NoError(err)

	rec, _ := s.post(handle)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_003")
}

func (s *ResolveConsoleSuite) TestUnknownConsole() {
	handle, _, err := services.NewTokenService(s.cfg).IssueConsoleHandle("evicted-id")
	s.Require().NoError(err)

	rec, _ := s.post(handle)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_004")
}
