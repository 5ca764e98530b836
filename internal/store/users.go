package store

import (
	"errors"
	"strings"
	"sync"

	"bookstore/internal/models"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
)

// UserStore keeps registered accounts in memory, keyed by lowercased email.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]*models.User)}
}

// Register adds a new account. Identity is case-insensitive, so a conflicting
// email in any casing is rejected.
func (s *UserStore) Register(user *models.User) error {
	if user == nil {
		return ErrUserNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := user.Key()
	if _, exists := s.users[key]; exists {
		return ErrEmailTaken
	}
	s.users[key] = user
	return nil
}

// FindByEmail looks an account up by email in any casing.
func (s *UserStore) FindByEmail(email string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[strings.ToLower(strings.TrimSpace(email))]
	return user, ok
}

// Count reports the number of registered accounts.
func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
