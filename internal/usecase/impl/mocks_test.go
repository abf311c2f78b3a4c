package impl

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"keygate/internal/domain/entity"
	"keygate/internal/domain/repository"
	"keygate/internal/domain/service"
)

// mockAccountRepository is a testify mock of the account store.
type mockAccountRepository struct {
	mock.Mock
}

func (m *mockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAccountRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

// mockPasswordHasher stands in for the hasher in failure-path tests.
type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Verify(password, hash string) (bool, error) {
	args := m.Called(password, hash)

	return args.Bool(0), args.Error(1)
}

// mockTokenService stands in for the issuer in failure-path tests.
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(claims service.IdentityClaims) (string, error) {
	args := m.Called(claims)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Validate(tokenString string) (service.IdentityClaims, error) {
	args := m.Called(tokenString)
	if claims := args.Get(0); claims != nil {
		return claims.(service.IdentityClaims), args.Error(1)
	}

	return nil, args.Error(1)
}

// memoryAccountStore is a concurrency-safe in-memory account store with an
// atomic unique-email guard, used for end-to-end scenarios.
type memoryAccountStore struct {
	mu       sync.Mutex
	accounts map[string]*entity.User
}

func newMemoryAccountStore() *memoryAccountStore {
	return &memoryAccountStore{accounts: make(map[string]*entity.User)}
}

func (s *memoryAccountStore) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.accounts[email]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	copied := *user

	return &copied, nil
}

func (s *memoryAccountStore) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[user.Email]; ok {
		return repository.ErrEmailTaken
	}
	copied := *user
	s.accounts[user.Email] = &copied

	return nil
}

func (s *memoryAccountStore) count(email string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[email]; ok {
		return 1
	}

	return 0
}
