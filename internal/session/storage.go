// Package session keeps the authenticated user's bearer token and identity
// between requests and between process runs. The Manager works on top of a
// small key/value Storage so the same session can live in memory, in a local
// file, or in a SQL table.
package session

import (
	"context"
	"errors"
	"sync"
)

// Keys used for the session values.
const (
	KeyAuthToken = "auth_token"
	KeyUserID    = "user_id"
	KeyUserType  = "user_type"
	KeyUserName  = "user_name"
	KeyUser      = "user"
)

// Keys lists every key Clear removes.
var Keys = []string{KeyAuthToken, KeyUserID, KeyUserType, KeyUserName, KeyUser}

var (
	// ErrNotFound is returned by Storage.Get for a key that was never set or
	// has been removed.
	ErrNotFound = errors.New("session: key not found")
	// ErrNoToken is returned by operations that need a stored bearer token.
	ErrNoToken = errors.New("session: no auth token")
)

//go:generate mockgen -destination=mocks/storage_mock.go -package=mocks . Storage

// Storage is a string key/value store.
type Storage interface {
	// Get returns the value stored under key or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// MemoryStore is a Storage kept in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
