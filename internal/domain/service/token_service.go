package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the session claims the engine relies on. Tokens are issued
// elsewhere; sub carries the user id.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Email  string    `json:"email,omitempty"`
	Type   string    `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier validates access tokens presented by API and websocket sessions.
type TokenVerifier interface {
	// VerifyAccessToken parses and validates tokenString and returns its claims.
	VerifyAccessToken(tokenString string) (*Claims, error)
}
