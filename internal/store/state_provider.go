// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Tier selects where a value is kept.
type Tier int

const (
	// TierMemory values live in process memory and are lost on exit.
	TierMemory Tier = iota
	// TierDisk values are persisted in the database.
	TierDisk
	// TierSecure values live in process memory sealed in enclaves.
	TierSecure
)

func (t Tier) String() string {
	switch t {
	case TierMemory:
		return "memory"
	case TierDisk:
		return "disk"
	case TierSecure:
		return "secure"
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// ClearEvent is a bit set of account events after which a value must be
// removed.
type ClearEvent uint8

const (
	ClearOnLock ClearEvent = 1 << iota
	ClearOnLogout
)

// KeyDefinition names a piece of per-user state and where it lives.
type KeyDefinition struct {
	Name    string
	Tier    Tier
	ClearOn ClearEvent
}

// StateProvider routes key definitions to the storage of their tier and
// remembers every definition it has seen so that ClearOn can find them.
type StateProvider struct {
	tiers map[Tier]StateStorage

	mu          sync.RWMutex
	definitions map[string]KeyDefinition
}

// NewStateProvider returns a provider over the three tiers. definitions are
// registered up front.
func NewStateProvider(memory, disk, secure StateStorage, definitions ...KeyDefinition) *StateProvider {
	p := &StateProvider{
		tiers: map[Tier]StateStorage{
			TierMemory: memory,
			TierDisk:   disk,
			TierSecure: secure,
		},
		definitions: make(map[string]KeyDefinition),
	}
	p.Register(definitions...)
	return p
}

// Register adds definitions to the set consulted by [StateProvider.ClearOn].
func (p *StateProvider) Register(definitions ...KeyDefinition) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, def := range definitions {
		p.definitions[def.Tier.String()+"/"+def.Name] = def
	}
}

// Get returns the value of def, or [ErrStateNotFound].
func (p *StateProvider) Get(ctx context.Context, userID uuid.UUID, def KeyDefinition) (string, error) {
	storage, err := p.storage(def)
	if err != nil {
		return "", err
	}
	return storage.Get(ctx, userID, def.Name)
}

// Set stores value under def and registers def.
func (p *StateProvider) Set(ctx context.Context, userID uuid.UUID, def KeyDefinition, value string) error {
	storage, err := p.storage(def)
	if err != nil {
		return err
	}
	p.Register(def)
	return storage.Set(ctx, userID, def.Name, value)
}

// Delete removes the value of def.
func (p *StateProvider) Delete(ctx context.Context, userID uuid.UUID, def KeyDefinition) error {
	storage, err := p.storage(def)
	if err != nil {
		return err
	}
	return storage.Delete(ctx, userID, def.Name)
}

// ClearOn deletes every registered value whose ClearOn set intersects event.
// All deletions are attempted; the errors are joined.
func (p *StateProvider) ClearOn(ctx context.Context, userID uuid.UUID, event ClearEvent) error {
	p.mu.RLock()
	var matched []KeyDefinition
	for _, def := range p.definitions {
		if def.ClearOn&event != 0 {
			matched = append(matched, def)
		}
	}
	p.mu.RUnlock()

	var errs []error
	for _, def := range matched {
		if err := p.Delete(ctx, userID, def); err != nil {
			errs = append(errs, fmt.Errorf("clearing %s/%s: %w", def.Tier, def.Name, err))
		}
	}
	return errors.Join(errs...)
}

// ClearUser removes all state of the user from every tier.
func (p *StateProvider) ClearUser(ctx context.Context, userID uuid.UUID) error {
	var errs []error
	for tier, storage := range p.tiers {
		if storage == nil {
			continue
		}
		if err := storage.DeleteUser(ctx, userID); err != nil {
			errs = append(errs, fmt.Errorf("clearing %s tier: %w", tier, err))
		}
	}
	return errors.Join(errs...)
}

func (p *StateProvider) storage(def KeyDefinition) (StateStorage, error) {
	storage, ok := p.tiers[def.Tier]
	if !ok || storage == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTier, def.Tier)
	}
	return storage, nil
}

// GetJSON reads def and decodes it into a T.
func GetJSON[T any](ctx context.Context, p *StateProvider, userID uuid.UUID, def KeyDefinition) (T, error) {
	var v T

	raw, err := p.Get(ctx, userID, def)
	if err != nil {
		return v, err
	}
	if err = json.Unmarshal([]byte(raw), &v); err != nil {
		return v, fmt.Errorf("error decoding %s: %w", def.Name, err)
	}
	return v, nil
}

// SetJSON encodes v and stores it under def.
func SetJSON[T any](ctx context.Context, p *StateProvider, userID uuid.UUID, def KeyDefinition, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", def.Name, err)
	}
	return p.Set(ctx, userID, def, string(raw))
}
