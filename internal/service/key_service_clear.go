package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-keycore/internal/store"
)

// Every clear is idempotent: clearing what is not there is not an error.

func (s *keyService) ClearKey(ctx context.Context, userID uuid.UUID, clearStored bool) error {
	if sess := s.existingSession(userID); sess != nil {
		sess.clearUserKey()
	}
	if clearStored {
		return s.ClearStoredUserKey(ctx, userID)
	}
	return nil
}

func (s *keyService) ClearStoredUserKey(ctx context.Context, userID uuid.UUID) error {
	return s.deleteState(ctx, userID, stateUserKeyAuto)
}

func (s *keyService) ClearKeyHash(ctx context.Context, userID uuid.UUID) error {
	return s.deleteState(ctx, userID, stateKeyHash)
}

func (s *keyService) ClearEncKey(ctx context.Context, userID uuid.UUID, memoryOnly bool) error {
	if sess := s.existingSession(userID); sess != nil {
		sess.clearUserKey()
	}
	if memoryOnly {
		return nil
	}
	return s.deleteState(ctx, userID, stateMasterKeyEncryptedUserKey)
}

func (s *keyService) ClearKeyPair(ctx context.Context, userID uuid.UUID, memoryOnly bool) error {
	if sess := s.existingSession(userID); sess != nil {
		sess.clearKeyPair()
	}
	if memoryOnly {
		return nil
	}
	return s.deleteState(ctx, userID, stateEncPrivateKey)
}

func (s *keyService) ClearOrgKeys(ctx context.Context, userID uuid.UUID, memoryOnly bool) error {
	if sess := s.existingSession(userID); sess != nil {
		sess.clearOrgKeys()
	}
	if memoryOnly {
		return nil
	}
	return s.deleteState(ctx, userID, stateEncOrgKeys)
}

func (s *keyService) ClearProviderKeys(ctx context.Context, userID uuid.UUID, memoryOnly bool) error {
	if sess := s.existingSession(userID); sess != nil {
		sess.clearProviderKeys()
	}
	if memoryOnly {
		return nil
	}
	return s.deleteState(ctx, userID, stateEncProviderKeys)
}

func (s *keyService) ClearPinProtectedKey(ctx context.Context, userID uuid.UUID) error {
	return errors.Join(
		s.clearPinKeyEncryptedUserKeys(ctx, userID),
		s.deleteState(ctx, userID, stateUserKeyEncryptedPin),
		s.deleteState(ctx, userID, statePinKeyEncryptedMasterKey),
	)
}

func (s *keyService) clearPinKeyEncryptedUserKeys(ctx context.Context, userID uuid.UUID) error {
	return errors.Join(
		s.deleteState(ctx, userID, statePinKeyEncryptedUserKeyPersistent),
		s.deleteState(ctx, userID, statePinKeyEncryptedUserKeyEphemeral),
	)
}

// ClearKeys implements [KeyService]. All clears are attempted; the errors
// are joined.
func (s *keyService) ClearKeys(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUserIDRequired
	}

	err := errors.Join(
		s.ClearKeyHash(ctx, userID),
		s.ClearKey(ctx, userID, true),
		s.ClearEncKey(ctx, userID, false),
		s.ClearOrgKeys(ctx, userID, false),
		s.ClearProviderKeys(ctx, userID, false),
		s.ClearKeyPair(ctx, userID, false),
		s.ClearPinProtectedKey(ctx, userID),
		s.state.ClearOn(ctx, userID, store.ClearOnLogout),
	)
	s.dropSession(userID)
	return err
}

// Lock implements [KeyService]. Persisted wrapped keys are kept so the user
// can unlock again.
func (s *keyService) Lock(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUserIDRequired
	}

	s.dropSession(userID)
	if err := s.state.ClearOn(ctx, userID, store.ClearOnLock); err != nil {
		return fmt.Errorf("error clearing lock scoped state: %w", err)
	}
	return nil
}

func (s *keyService) deleteState(ctx context.Context, userID uuid.UUID, def store.KeyDefinition) error {
	if err := s.state.Delete(ctx, userID, def); err != nil {
		return fmt.Errorf("error clearing %s: %w", def.Name, err)
	}
	return nil
}
