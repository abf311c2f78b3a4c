package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keygate/internal/usecase"
)

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Birthday:    "1990-12-10",
		PhoneNumber: "+15550100",
		Address:     "1 Analytical Way",
		Email:       "a@b.com",
		City:        "London",
		Password:    "longenough",
	}
}

func TestValidate_ValidPayloads(t *testing.T) {
	sv := New()

	assert.Nil(t, sv.Validate(validRegisterInput()))
	assert.Nil(t, sv.Validate(&usecase.SignInInput{Email: "a@b.com", Password: "longenough"}))
}

func TestValidate_PasswordLengthBoundaries(t *testing.T) {
	sv := New()

	tests := []struct {
		password string
		valid    bool
	}{
		{password: strings.Repeat("x", 7), valid: false},
		{password: strings.Repeat("x", 8), valid: true},
		{password: strings.Repeat("x", 15), valid: true},
		{password: strings.Repeat("x", 16), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			violations := sv.Validate(&usecase.SignInInput{Email: "a@b.com", Password: tt.password})
			if tt.valid {
				assert.Nil(t, violations)
			} else {
				assert.NotNil(t, violations)
			}
		})
	}
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	sv := New()

	// Every field missing: the validator must report them all, not stop at
	// the first.
	violations := sv.Validate(&usecase.RegisterInput{})
	require.Len(t, violations, 8)

	joined := strings.Join(violations, "; ")
	for _, field := range []string{"first_name", "last_name", "birthday", "phone_number", "address", "email", "city", "password"} {
		assert.Contains(t, joined, field)
	}
}

func TestValidate_EmailFormat(t *testing.T) {
	sv := New()

	input := validRegisterInput()
	input.Email = "not-an-email"

	violations := sv.Validate(input)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "email must be a valid email address")
}

func TestValidate_BirthdayFormat(t *testing.T) {
	sv := New()

	input := validRegisterInput()
	input.Birthday = "10/12/1990"

	violations := sv.Validate(input)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "birthday must be a valid date in format 2006-01-02")
}

func TestValidate_SignInEmailOnlyRequired(t *testing.T) {
	sv := New()

	// The sign-in schema requires an email but does not check its shape;
	// shape checking belongs to registration.
	assert.Nil(t, sv.Validate(&usecase.SignInInput{Email: "whatever", Password: "longenough"}))

	violations := sv.Validate(&usecase.SignInInput{Password: "longenough"})
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "email is a required field")
}
