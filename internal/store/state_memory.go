package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// memoryStateStorage keeps values in a process-local map. Everything in it is
// gone when the process exits.
type memoryStateStorage struct {
	mu     sync.RWMutex
	values map[uuid.UUID]map[string]string
}

// NewMemoryStateStorage returns the memory tier.
func NewMemoryStateStorage() StateStorage {
	return &memoryStateStorage{values: make(map[uuid.UUID]map[string]string)}
}

func (m *memoryStateStorage) Get(_ context.Context, userID uuid.UUID, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[userID][key]
	if !ok {
		return "", ErrStateNotFound
	}
	return value, nil
}

func (m *memoryStateStorage) Set(_ context.Context, userID uuid.UUID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.values[userID]
	if !ok {
		user = make(map[string]string)
		m.values[userID] = user
	}
	user[key] = value
	return nil
}

func (m *memoryStateStorage) Delete(_ context.Context, userID uuid.UUID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values[userID], key)
	return nil
}

func (m *memoryStateStorage) DeleteUser(_ context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, userID)
	return nil
}
