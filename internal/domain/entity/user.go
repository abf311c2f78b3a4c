// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity of the system, representing one registered account.
// The ID is generated by the registration flow, never supplied by callers,
// and the email is unique across all accounts.
type User struct {
	ID          uuid.UUID `json:"user_id"`    // The unique identifier for this account, generated at registration.
	FirstName   string    `json:"first_name"` // The account holder's given name.
	LastName    string    `json:"last_name"`  // The account holder's family name.
	Birthday    time.Time `json:"birthday"`   // The account holder's date of birth.
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	Email       string    `json:"email"` // The login identifier; exactly one account exists per email.
	City        string    `json:"city"`
	// PasswordHash is the only representation of the password ever stored or
	// read back. It is excluded from JSON and must be stripped before the
	// entity leaves the authentication service.
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// WithoutSecrets returns a copy of the user with the password hash cleared,
// safe to embed in responses and token claims.
func (u *User) WithoutSecrets() *User {
	sanitized := *u
	sanitized.PasswordHash = ""

	return &sanitized
}
