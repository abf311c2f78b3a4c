// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"keygate/internal/domain/entity"
	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/domain/repository"
	"keygate/internal/domain/service"
	"keygate/internal/errors"
	"keygate/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const birthdayLayout = "2006-01-02"

// authService implements the AuthUsecase interface. It holds no mutable
// state of its own; the account store is the only shared resource, accessed
// through its own concurrency-safe interface.
type authService struct {
	accounts repository.AccountRepository
	hasher   service.PasswordHasher
	tokens   service.TokenService
	schemas  service.SchemaValidator
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for the auth service, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Accounts repository.AccountRepository
	Hasher   service.PasswordHasher
	Tokens   service.TokenService
	Schemas  service.SchemaValidator
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all
// dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accounts: params.Accounts,
		hasher:   params.Hasher,
		tokens:   params.Tokens,
		schemas:  params.Schemas,
		logger:   params.Logger,
	}
}

// SignIn authenticates an email/password pair.
//
// Sequence: schema check, account lookup, constant-time password
// verification, token issuance. Each step short-circuits to a failure
// envelope; "email absent" and "wrong password" produce the same envelope so
// callers cannot enumerate registered accounts.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) *usecase.Result {
	if violations := srv.schemas.Validate(input); violations != nil {
		return failureWithData(domainerrors.ErrValidationFailed, violations)
	}

	account, err := srv.accounts.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Deliberately indistinguishable from a wrong password.
			return failure(domainerrors.ErrInvalidCredentials)
		}
		srv.logger.Error("Account lookup failed during sign-in", slog.String("email", input.Email), slog.Any("error", err))

		return failure(domainerrors.ErrAccountLookupFailed)
	}

	matches, err := srv.hasher.Verify(input.Password, account.PasswordHash)
	if err != nil {
		// Hashing-subsystem failure, not a wrong password; the message must
		// not suggest otherwise.
		srv.logger.Error("Password verification failed during sign-in", slog.String("email", input.Email), slog.Any("error", err))

		return failure(domainerrors.ErrCredentialProcessing)
	}
	if !matches {
		srv.logger.Warn("Password mismatch during sign-in", slog.String("email", input.Email))

		return failure(domainerrors.ErrInvalidCredentials)
	}

	token, err := srv.tokens.Issue(service.IdentityFromUser(account))
	if err != nil {
		srv.logger.Error("Token issuance failed during sign-in", slog.Any("userID", account.ID), slog.Any("error", err))

		return failure(domainerrors.ErrTokenIssueFailed)
	}

	srv.logger.Debug("User signed in", slog.Any("userID", account.ID))

	return usecase.NewResult(http.StatusOK, "User successfully signed in", &usecase.AuthPayload{
		User:  account.WithoutSecrets(),
		Token: token,
	})
}

// Register creates a new account.
//
// The pre-insert existence check is an optimization for a friendly conflict
// message; the store's unique constraint is the authoritative guard, so a
// duplicate surfacing from the insert itself is a normal, expected outcome
// of two racing registrations, not a bug.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) *usecase.Result {
	if violations := srv.schemas.Validate(input); violations != nil {
		return failureWithData(domainerrors.ErrValidationFailed, violations)
	}

	if _, err := srv.accounts.FindByEmail(ctx, input.Email); err == nil {
		return failure(domainerrors.ErrUserAlreadyExists)
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		srv.logger.Error("Account lookup failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return failure(domainerrors.ErrRegistrationFailed)
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Password hashing failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return failure(domainerrors.ErrCredentialProcessing)
	}

	account, err := buildAccount(input, hash)
	if err != nil {
		// The schema check already verified the date format; reaching this
		// indicates a validator/parser disagreement.
		srv.logger.Error("Failed to build account from validated input", slog.Any("error", err))

		return failureWithData(domainerrors.ErrValidationFailed, []string{"birthday must be a valid date in format " + birthdayLayout})
	}

	if err := srv.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return failure(domainerrors.ErrUserAlreadyExists)
		}
		srv.logger.Error("Account insert failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return failure(domainerrors.ErrRegistrationFailed)
	}

	token, err := srv.tokens.Issue(service.IdentityFromUser(account))
	if err != nil {
		srv.logger.Error("Token issuance failed during registration", slog.Any("userID", account.ID), slog.Any("error", err))

		return failure(domainerrors.ErrTokenIssueFailed)
	}

	srv.logger.Info("User registered", slog.Any("userID", account.ID))

	return usecase.NewResult(http.StatusCreated, "User created successfully", &usecase.AuthPayload{
		User:  account.WithoutSecrets(),
		Token: token,
	})
}

// buildAccount assembles the user entity from validated input. The ID is
// generated here, never taken from the caller, and the password only enters
// the entity as its hash.
func buildAccount(input *usecase.RegisterInput, passwordHash string) (*entity.User, error) {
	birthday, err := time.Parse(birthdayLayout, input.Birthday)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse birthday")
	}

	return &entity.User{
		ID:           uuid.New(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Birthday:     birthday,
		PhoneNumber:  input.PhoneNumber,
		Address:      input.Address,
		Email:        input.Email,
		City:         input.City,
		PasswordHash: passwordHash,
	}, nil
}

func failure(kind domainerrors.AppError) *usecase.Result {
	return usecase.NewResult(kind.HTTPCode(), kind.Message(), nil)
}

func failureWithData(kind domainerrors.AppError, data any) *usecase.Result {
	return usecase.NewResult(kind.HTTPCode(), kind.Message(), data)
}
