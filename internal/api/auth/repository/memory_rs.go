package authRepository

import (
	"FinanceTracker/internal/api/auth"
	"FinanceTracker/internal/entity"
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// NewMemory keeps users in process memory, for STORE_DRIVER=memory and tests.
func NewMemory(log *logrus.Logger) Repository {
	return &memoryRepository{
		store: &memoryUsers{
			byID:    make(map[string]entity.User),
			byEmail: make(map[string]string),
			log:     log,
		},
	}
}

type memoryRepository struct {
	store *memoryUsers
}

func (r *memoryRepository) NewClient(bool) (Client, error) {
	noop := func() error { return nil }
	return Client{
		Users:    r.store,
		Commit:   noop,
		Rollback: noop,
	}, nil
}

type memoryUsers struct {
	mu      sync.RWMutex
	byID    map[string]entity.User
	byEmail map[string]string
	log     *logrus.Logger
}

func (m *memoryUsers) CreateUser(c context.Context, user entity.User) error {
	if err := c.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, exists := m.byEmail[email]; exists {
		return auth.ErrEmailAlreadyExists
	}

	user.Email = email
	m.byID[user.ID] = user
	m.byEmail[email] = user.ID
	return nil
}

func (m *memoryUsers) GetByID(c context.Context, id string) (entity.User, error) {
	if err := c.Err(); err != nil {
		return entity.User{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.byID[id]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

func (m *memoryUsers) GetByEmail(c context.Context, email string) (entity.User, error) {
	if err := c.Err(); err != nil {
		return entity.User{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[strings.ToLower(email)]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return m.byID[id], nil
}
