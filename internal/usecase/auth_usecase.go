// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"keygate/internal/domain/entity"
)

// --- Input DTOs ---

// SignInInput defines the data required for a user to sign in. The schema
// validator enforces the tags before any side effect.
type SignInInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=15"`
}

// RegisterInput defines the data required to register a new account.
// Birthday travels as a string and is parsed after validation.
type RegisterInput struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Birthday    string `json:"birthday" validate:"required,datetime=2006-01-02"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	City        string `json:"city" validate:"required"`
	Password    string `json:"password" validate:"required,min=8,max=15"`
}

// --- Result envelope ---

// Result is the uniform return shape of every operation, success or failure.
// The HTTP layer maps Status directly onto the transport status code and
// performs no error translation of its own.
type Result struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// NewResult builds a result envelope.
func NewResult(status int, message string, data any) *Result {
	return &Result{Status: status, Message: message, Data: data}
}

// AuthPayload is the success payload of both operations: the sanitized user
// and a signed access token.
type AuthPayload struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

// AuthUsecase defines the interface for the authentication operations.
// Both operations always return an envelope and never an error; failures of
// any kind are folded into the envelope's status and message.
type AuthUsecase interface {
	// SignIn authenticates an email/password pair and issues an access token.
	SignIn(ctx context.Context, input *SignInInput) *Result

	// Register creates a new account and issues an access token for it.
	Register(ctx context.Context, input *RegisterInput) *Result
}
