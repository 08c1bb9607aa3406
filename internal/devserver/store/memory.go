package store

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MemoryUsers is an in-memory UserStore with bcrypt-hashed passwords.
type MemoryUsers struct {
	mu    sync.RWMutex
	users map[string][]byte
}

// NewMemoryUsers creates an empty in-memory user store.
func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{users: make(map[string][]byte)}
}

// Create registers a new account.
func (s *MemoryUsers) Create(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; exists {
		return ErrUserExists
	}
	s.users[username] = hash
	return nil
}

// Authenticate reports whether the credentials match a stored account.
func (s *MemoryUsers) Authenticate(ctx context.Context, username, password string) (bool, error) {
	s.mu.RLock()
	hash, ok := s.users[username]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil, nil
}

// MemoryUsage is an in-memory UsageStore.
type MemoryUsage struct {
	mu     sync.RWMutex
	counts map[string]int
}

// NewMemoryUsage creates an empty in-memory usage store.
func NewMemoryUsage() *MemoryUsage {
	return &MemoryUsage{counts: make(map[string]int)}
}

// UsedToday returns the count consumed by username on day.
func (s *MemoryUsage) UsedToday(ctx context.Context, username, day string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counts[usageKey(username, day)], nil
}

// Increment consumes one generation and returns the new count.
func (s *MemoryUsage) Increment(ctx context.Context, username, day string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := usageKey(username, day)
	s.counts[key]++
	return s.counts[key], nil
}

func usageKey(username, day string) string {
	return fmt.Sprintf("usage:%s:%s", username, day)
}
