// Package middleware contains the HTTP middleware of the delivery layer.
package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"keygate/internal/delivery/http/response"
	"keygate/internal/domain/service"
)

// AuthMiddleware provides middleware for access-token authentication.
type AuthMiddleware struct {
	tokens service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokens service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate validates the Bearer access token and puts the caller's
// identity on the request context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokens.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		sub, ok := claims["sub"].(string)
		if !ok {
			return response.Unauthorized(c, "User ID missing from token")
		}
		userID, err := uuid.Parse(sub)
		if err != nil {
			return response.Unauthorized(c, "Invalid user ID format in token")
		}

		email, _ := claims["email"].(string)

		c.Set("userID", userID)
		c.Set("email", email)

		return next(c)
	}
}
