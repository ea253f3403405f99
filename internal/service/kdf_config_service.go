package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
	"github.com/MKhiriev/go-pass-keycore/internal/store"
)

type kdfConfigService struct {
	state *store.StateProvider
}

// NewKdfConfigService returns a [KdfConfigService] persisting to the disk tier.
func NewKdfConfigService(state *store.StateProvider) KdfConfigService {
	return &kdfConfigService{state: state}
}

func (k *kdfConfigService) GetKdfConfig(ctx context.Context, userID uuid.UUID) (crypto.KdfConfig, error) {
	if userID == uuid.Nil {
		return crypto.KdfConfig{}, ErrUserIDRequired
	}

	kdf, err := store.GetJSON[crypto.KdfConfig](ctx, k.state, userID, stateKdfConfig)
	if errors.Is(err, store.ErrStateNotFound) {
		return crypto.KdfConfig{}, ErrKdfConfigNotFound
	}
	if err != nil {
		return crypto.KdfConfig{}, fmt.Errorf("error reading kdf config: %w", err)
	}
	return kdf, nil
}

// SetKdfConfig implements [KdfConfigService]. Configs below the derivation
// floor are rejected.
func (k *kdfConfigService) SetKdfConfig(ctx context.Context, userID uuid.UUID, kdf crypto.KdfConfig) error {
	if userID == uuid.Nil {
		return ErrUserIDRequired
	}
	if err := kdf.ValidateForDerivation(); err != nil {
		return err
	}

	if err := store.SetJSON(ctx, k.state, userID, stateKdfConfig, kdf); err != nil {
		return fmt.Errorf("error storing kdf config: %w", err)
	}
	return nil
}
