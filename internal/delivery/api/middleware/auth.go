package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"pawtrack/config"
	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	keyUserID = "userID"

	// HeaderAPIKey carries the shared key of tracker devices.
	HeaderAPIKey = "X-Api-Key"
)

// AuthMiddleware authenticates user sessions with bearer access tokens.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the access token and stores the user id on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := BearerToken(c.Request())
		if !ok {
			return domainerrors.ErrUnauthorized
		}

		userID, err := m.Verify(tokenString)
		if err != nil {
			return err
		}

		c.Set(keyUserID, userID)

		return next(c)
	}
}

// Verify resolves the user id of an access token.
func (m *AuthMiddleware) Verify(tokenString string) (uuid.UUID, error) {
	claims, err := m.verifier.VerifyAccessToken(tokenString)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidToken
	}

	return claims.UserID, nil
}

// BearerToken extracts the token of an "Authorization: Bearer" header.
func BearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get(echo.HeaderAuthorization)
	tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || strings.TrimSpace(tokenString) == "" {
		return "", false
	}

	return strings.TrimSpace(tokenString), true
}

// GetUserID returns the user id set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(keyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// APIKeyMiddleware guards the device ingest endpoint with a shared key.
type APIKeyMiddleware struct {
	apiKey string
}

// APIKeyParams holds dependencies for APIKeyMiddleware, injected by Fx.
type APIKeyParams struct {
	fx.In

	Config *config.Config
}

// NewAPIKeyMiddleware is the constructor for APIKeyMiddleware.
func NewAPIKeyMiddleware(params APIKeyParams) *APIKeyMiddleware {
	var apiKey string
	if params.Config.Ingest != nil {
		apiKey = params.Config.Ingest.APIKey
	}

	return &APIKeyMiddleware{apiKey: apiKey}
}

// Guard rejects requests whose X-Api-Key does not match. Without a
// configured key every request passes.
func (m *APIKeyMiddleware) Guard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.apiKey == "" {
			return next(c)
		}

		provided := c.Request().Header.Get(HeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(m.apiKey)) != 1 {
			return domainerrors.ErrInvalidAPIKey
		}

		return next(c)
	}
}
