package models

import "github.com/golang-jwt/jwt/v5"

// ConsoleClaims are the claims of a signed console handle
type ConsoleClaims struct {
	jwt.RegisteredClaims
	ConsoleID string `json:"cid"`
	TokenType string `json:"token_type"`
}
