package service

import (
	"keygate/internal/domain/entity"
)

// IdentityClaims is the set of identity fields embedded in an access token.
// It must never contain any password-derived value; implementations of
// TokenService reject password-named claims as a defense-in-depth check on
// top of the caller stripping them.
type IdentityClaims map[string]any

// IdentityFromUser builds the claim set for a user. The password hash is
// excluded by construction: only named identity fields are copied.
func IdentityFromUser(u *entity.User) IdentityClaims {
	return IdentityClaims{
		"sub":        u.ID.String(),
		"email":      u.Email,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
	}
}

// TokenService defines the interface for issuing and validating signed,
// self-contained access tokens. The signing secret and time-to-live are
// injected at construction, never read from ambient process state.
type TokenService interface {
	// Issue produces a signed, time-bound token over the given identity
	// claims. It fails if any claim name looks like a password field.
	Issue(claims IdentityClaims) (string, error)

	// Validate checks the signature and embedded expiry of a token and
	// returns its claims.
	Validate(tokenString string) (IdentityClaims, error)
}
