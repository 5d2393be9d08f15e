package services

import (
	"strings"
	"testing"
	"time"

	"lookup-console/internal/config"
	"lookup-console/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	secret  []byte
	cfg     *config.ConsoleConfig
	service TokenServiceInterface
}

// SetupTest runs before each test
func (s *TokenServiceTestSuite) SetupTest() {
	var err error
	s.secret, err = config.GenerateSecret()
	s.Require().NoError(err)

	s.cfg = &config.ConsoleConfig{
		HandleSecret: s.secret,
		HandleTTL:    time.Hour,
		Issuer:       "test-issuer",
	}
	s.service = NewTokenService(s.cfg)
}

// TestTokenServiceSuite runs the test suite
func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) TestIssueAndValidate() {
	handle, expiresAt, err := s.service.IssueConsoleHandle("console-123")
	s.Require().NoError(err)
	s.NotEmpty(handle)
	s.True(expiresAt.After(time.Now()))

	claims, err := s.service.ValidateConsoleHandle(handle)
	s.Require().NoError(err)
	s.Equal("console-123", claims.ConsoleID)
	s.Equal(TokenTypeConsole, claims.TokenType)
	s.Equal("test-issuer", claims.Issuer)
}

func (s *TokenServiceTestSuite) TestIssue_EmptyID() {
	_, _, err := s.service.IssueConsoleHandle("")
	s.Error(err)
}

func (s *TokenServiceTestSuite) TestValidate_Empty() {
	_, err := s.service.ValidateConsoleHandle("")
	s.ErrorIs(err, ErrEmptyToken)
}

func (s *TokenServiceTestSuite) TestValidate_TamperedSignature() {
	handle, _, err := s.service.IssueConsoleHandle("console-123")
	s.Require().NoError(err)

	parts := strings.Split(handle, ".")
	forged := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	_, err = s.service.ValidateConsoleHandle(forged)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidate_OtherSecret() {
	other, err := config.GenerateSecret()
	s.Require().NoError(err)

	foreign := NewTokenService(&config.ConsoleConfig{HandleSecret: other, HandleTTL: time.Hour, Issuer: "test-issuer"})
	handle, _, err := foreign.IssueConsoleHandle("console-123")
	s.Require().NoError(err)

	_, err = s.service.ValidateConsoleHandle(handle)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidate_Expired() {
	expired := NewTokenService(&config.ConsoleConfig{HandleSecret: s.secret, HandleTTL: -time.Minute, Issuer: "test-issuer"})
	handle, _, err := expired.IssueConsoleHandle("console-123")
	s.Require().NoError(err)

	_, err = s.service.ValidateConsoleHandle(handle)
	s.ErrorIs(err, ErrExpiredToken)
}

func (s *TokenServiceTestSuite) TestValidate_WrongIssuer() {
	other := NewTokenService(&config.ConsoleConfig{HandleSecret: s.secret, HandleTTL: time.Hour, Issuer: "someone-else"})
	handle, _, err := other.IssueConsoleHandle("console-123")
	s.Require().NoError(err)

	_, err = s.service.ValidateConsoleHandle(handle)
	s.ErrorIs(err, ErrInvalidIssuer)
}

func (s *TokenServiceTestSuite) TestValidate_WrongType() {
	claims := models.ConsoleClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		ConsoleID: "console-123",
		TokenType: "access",
	}
	handle, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	s.Require().NoError(err)

	_, err = s.service.ValidateConsoleHandle(handle)
	s.ErrorIs(err, ErrInvalidTokenType)
}

func (s *TokenServiceTestSuite) TestValidate_NoneAlgorithmRejected() {
	claims := models.ConsoleClaims{ConsoleID: "console-123", TokenType: TokenTypeConsole}
	handle, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	s.Require().NoError(err)

	_, err = s.service.ValidateConsoleHandle(handle)
	s.ErrorIs(err, ErrInvalidToken)
}
