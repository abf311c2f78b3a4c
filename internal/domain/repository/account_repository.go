// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"keygate/internal/domain/entity"
)

// Domain-specific errors for account persistence. The application layer
// handles specific outcomes without depending on database-specific errors.
var (
	// ErrAccountNotFound is returned when no account exists for an email.
	ErrAccountNotFound = errors.New("account not found")

	// ErrEmailTaken is returned when an insert violates the unique-email
	// constraint. The store-level constraint, not the pre-insert existence
	// check, is the authoritative guard against duplicate registration.
	ErrEmailTaken = errors.New("email already registered")
)

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete
// implementation. Implementations must enforce email uniqueness atomically
// at the storage layer; inserts are all-or-nothing.
type AccountRepository interface {
	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new account. The caller supplies the generated ID
	// and the password hash; plaintext passwords never reach this layer.
	Create(ctx context.Context, user *entity.User) error
}
