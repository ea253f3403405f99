package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/awnumar/memguard"
	"github.com/google/uuid"
)

// secureStateStorage seals every value in its own memguard enclave. Values are
// encrypted while at rest in memory and only exposed in a locked buffer for
// the duration of a Get.
type secureStateStorage struct {
	mu       sync.Mutex
	enclaves map[uuid.UUID]map[string]*memguard.Enclave
}

// NewSecureStateStorage returns the secure tier.
func NewSecureStateStorage() StateStorage {
	return &secureStateStorage{enclaves: make(map[uuid.UUID]map[string]*memguard.Enclave)}
}

func (s *secureStateStorage) Get(_ context.Context, userID uuid.UUID, key string) (string, error) {
	s.mu.Lock()
	enclave, ok := s.enclaves[userID][key]
	s.mu.Unlock()
	if !ok {
		return "", ErrStateNotFound
	}

	buf, err := enclave.Open()
	if err != nil {
		return "", fmt.Errorf("error opening enclave: %w", err)
	}
	defer buf.Destroy()

	// buf.String aliases the locked memory, which Destroy unmaps.
	return string(buf.Bytes()), nil
}

func (s *secureStateStorage) Set(_ context.Context, userID uuid.UUID, key, value string) error {
	if value == "" {
		return ErrEmptySecureValue
	}

	// NewEnclave wipes its input.
	enclave := memguard.NewEnclave([]byte(value))

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.enclaves[userID]
	if !ok {
		user = make(map[string]*memguard.Enclave)
		s.enclaves[userID] = user
	}
	user[key] = enclave
	return nil
}

func (s *secureStateStorage) Delete(_ context.Context, userID uuid.UUID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.enclaves[userID], key)
	return nil
}

func (s *secureStateStorage) DeleteUser(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.enclaves, userID)
	return nil
}
