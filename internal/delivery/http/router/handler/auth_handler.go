// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"keygate/internal/delivery/http/response"
	"keygate/internal/usecase"
)

// AuthHandler holds dependencies for the authentication handlers. It binds
// the request body and relays the service's envelope; all error translation
// happens inside the service.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// SignUp handles the account registration request.
func (h *AuthHandler) SignUp(c echo.Context) error {
	input := new(usecase.RegisterInput)
	if err := c.Bind(input); err != nil {
		return response.BadRequest(c, "Invalid registration input")
	}

	return response.Envelope(c, h.uc.Register(c.Request().Context(), input))
}

// SignIn handles the sign-in request.
func (h *AuthHandler) SignIn(c echo.Context) error {
	input := new(usecase.SignInInput)
	if err := c.Bind(input); err != nil {
		return response.BadRequest(c, "Invalid sign-in input")
	}

	return response.Envelope(c, h.uc.SignIn(c.Request().Context(), input))
}

// Profile returns the identity established by the auth middleware.
func (h *AuthHandler) Profile(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}
	email, _ := c.Get("email").(string)

	return response.OK(c, "Profile retrieved successfully", map[string]string{
		"user_id": userID.String(),
		"email":   email,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, "Service is healthy", map[string]string{"status": "ok"})
}
