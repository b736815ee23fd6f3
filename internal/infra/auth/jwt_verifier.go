// Package auth verifies the session tokens presented by API and websocket clients.
package auth

import (
	"time"

	"pawtrack/config"
	"pawtrack/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	tokenTypeAccess = "access"
	clockLeeway     = 30 * time.Second
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid access token")

// jwtVerifier checks HMAC-signed access tokens. Issuing them is not its job.
type jwtVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtVerifier{
		secret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{
				jwt.SigningMethodHS256.Alg(),
				jwt.SigningMethodHS384.Alg(),
				jwt.SigningMethodHS512.Alg(),
			}),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(clockLeeway),
		),
	}, nil
}

// VerifyAccessToken validates the signature and expiry, then resolves sub to a user id.
func (v *jwtVerifier) VerifyAccessToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	// Tokens without a type come from issuers that only mint access tokens.
	if claims.Type != "" && claims.Type != tokenTypeAccess {
		return nil, errors.Wrapf(ErrInvalidToken, "unexpected token type %q", claims.Type)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, "subject is not a user id")
	}
	claims.UserID = userID

	return claims, nil
}
