// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"keygate/config"
	"keygate/internal/domain/service"
	"keygate/internal/errors"
)

const defaultTokenTTL = 15 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using
// the JWT standard. Tokens are self-contained: no server-side session state
// exists, and expiry is enforced solely by the embedded timestamp.
type jwtService struct {
	secret string        // Secret key for signing access tokens. Required, no default.
	ttl    time.Duration // Time-to-live stamped into every issued token.
}

// NewJWTService is the constructor for jwtService. The signing secret and TTL
// are injected from configuration; an empty secret is a construction error,
// not a runtime fallback.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.Token == nil || strings.TrimSpace(cfg.Token.Secret) == "" {
		return nil, errors.New("token signing secret must be provided")
	}

	ttl := cfg.Token.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &jwtService{
		secret: cfg.Token.Secret,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed, time-bound token over the given identity claims.
// Any claim named like a password field is rejected outright; the caller is
// responsible for stripping secrets, and this check backstops it.
func (s *jwtService) Issue(claims service.IdentityClaims) (string, error) {
	mapClaims := jwt.MapClaims{}
	for name, value := range claims {
		if looksLikePasswordField(name) {
			return "", errors.Errorf("refusing to embed claim %q in token", name)
		}
		mapClaims[name] = value
	}

	now := time.Now()
	mapClaims["iat"] = now.Unix()
	mapClaims["exp"] = now.Add(s.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks the signature and embedded expiry of a token string and
// returns its claims.
func (s *jwtService) Validate(tokenString string) (service.IdentityClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected token claims format")
	}

	claims := make(service.IdentityClaims, len(mapClaims))
	for name, value := range mapClaims {
		claims[name] = value
	}

	return claims, nil
}

func looksLikePasswordField(name string) bool {
	lowered := strings.ToLower(name)

	return strings.Contains(lowered, "password") || strings.Contains(lowered, "passwd")
}
