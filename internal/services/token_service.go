package services

import (
	"errors"
	"fmt"
	"time"

	"lookup-console/internal/config"
	"lookup-console/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const TokenTypeConsole = "console"

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token is expired")
	ErrInvalidIssuer    = errors.New("invalid issuer")
	ErrInvalidTokenType = errors.New("invalid token type")
	ErrEmptyToken       = errors.New("empty token")
)

// TokenService signs and verifies console handles with HS256
type TokenService struct {
	secret   []byte
	issuer   string
	duration time.Duration
}

// NewTokenService creates a new token service from console configuration
func NewTokenService(cfg *config.ConsoleConfig) TokenServiceInterface {
	return &TokenService{
		secret:   cfg.HandleSecret,
		issuer:   cfg.Issuer,
		duration: cfg.HandleTTL,
	}
}

// IssueConsoleHandle signs a handle for consoleID
func (ts *TokenService) IssueConsoleHandle(consoleID string) (string, time.Time, error) {
	if consoleID == "" {
		return "", time.Time{}, errors.New("console ID cannot be empty")
	}

	now := time.Now()
	expiresAt := now.Add(ts.duration)

	claims := models.ConsoleClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.issuer,
			Subject:   consoleID,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
		},
		ConsoleID: consoleID,
		TokenType: TokenTypeConsole,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(ts.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign console handle: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ValidateConsoleHandle verifies signature, expiry, issuer and type
func (ts *TokenService) ValidateConsoleHandle(tokenString string) (*models.ConsoleClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.ConsoleClaims{}, ts.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ts.mapTokenError(err)
	}

	claims, ok := token.Claims.(*models.ConsoleClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Issuer != ts.issuer {
		return nil, ErrInvalidIssuer
	}

	if claims.TokenType != TokenTypeConsole || claims.ConsoleID == "" {
		return nil, ErrInvalidTokenType
	}

	return claims, nil
}

func (ts *TokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return ts.secret, nil
}

func (ts *TokenService) mapTokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrExpiredToken
	}
	return fmt.Errorf("%w: %v", ErrInvalidToken, err)
}
