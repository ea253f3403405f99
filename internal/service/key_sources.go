package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
	"github.com/MKhiriev/go-pass-keycore/internal/logger"
)

// KeySource supplies a key for user encryption. Key returns nil, nil when
// the source has nothing to offer so the next source can be tried.
type KeySource interface {
	Key(ctx context.Context, userID uuid.UUID) (*crypto.SymmetricCryptoKey, error)
}

// userKeySource offers the User Key.
type userKeySource struct {
	keys KeyService
}

func (s userKeySource) Key(ctx context.Context, userID uuid.UUID) (*crypto.SymmetricCryptoKey, error) {
	key, err := s.keys.GetUserKey(ctx, userID)
	if errors.Is(err, crypto.ErrNoKey) {
		return nil, nil
	}
	return key, err
}

// legacyMasterKeySource offers the Master Key of accounts whose data was
// encrypted before User Keys existed.
type legacyMasterKeySource struct {
	keys KeyService
}

func (s legacyMasterKeySource) Key(ctx context.Context, userID uuid.UUID) (*crypto.SymmetricCryptoKey, error) {
	key, err := s.keys.GetMasterKey(ctx, userID)
	if errors.Is(err, crypto.ErrNoKey) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Warn().
		Str("func", "legacyMasterKeySource.Key").
		Str("user_id", userID.String()).
		Msg("no user key found, using master key for encryption")
	return key, nil
}
