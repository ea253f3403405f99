package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"

	"github.com/awnumar/memguard"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
	"github.com/MKhiriev/go-pass-keycore/internal/logger"
	"github.com/MKhiriev/go-pass-keycore/internal/store"
	"github.com/MKhiriev/go-pass-keycore/models"
)

const (
	sendKeySalt    = "keycore-send"
	sendKeyPurpose = "send"
)

// storeAdditionalKeys refreshes the copies of the User Key that are kept
// outside the session: the auto-unlock copy and the pin-protected copy.
func (s *keyService) storeAdditionalKeys(ctx context.Context, userID uuid.UUID, key *crypto.SymmetricCryptoKey) error {
	autoUnlock, err := s.autoUnlockEnabled(ctx, userID)
	if err != nil {
		return err
	}
	if autoUnlock {
		if err = s.state.Set(ctx, userID, stateUserKeyAuto, key.KeyB64()); err != nil {
			return fmt.Errorf("error storing auto unlock key: %w", err)
		}
	} else if err = s.ClearStoredUserKey(ctx, userID); err != nil {
		return err
	}

	return s.storePinKey(ctx, userID, key)
}

func (s *keyService) autoUnlockEnabled(ctx context.Context, userID uuid.UUID) (bool, error) {
	raw, err := s.state.Get(ctx, userID, stateAutoUnlockEnabled)
	if errors.Is(err, store.ErrStateNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error reading auto unlock setting: %w", err)
	}
	return strconv.ParseBool(raw)
}

// storePinKey rewraps the User Key under the pin key when a protected pin is
// stored. Without one, any pin-protected copy is stale and removed.
func (s *keyService) storePinKey(ctx context.Context, userID uuid.UUID, key *crypto.SymmetricCryptoKey) error {
	raw, err := s.state.Get(ctx, userID, stateUserKeyEncryptedPin)
	if errors.Is(err, store.ErrStateNotFound) {
		return s.clearPinKeyEncryptedUserKeys(ctx, userID)
	}
	if err != nil {
		return fmt.Errorf("error reading protected pin: %w", err)
	}

	protectedPin, err := crypto.ParseEncString(raw)
	if err != nil {
		return err
	}
	pin, err := s.encrypt.Decrypt(protectedPin, key)
	if err != nil {
		return fmt.Errorf("error decrypting protected pin: %w", err)
	}

	account, err := store.GetJSON[models.AccountInfo](ctx, s.state, userID, stateAccount)
	if err != nil {
		return fmt.Errorf("error reading account for pin key: %w", err)
	}
	kdf, err := store.GetJSON[crypto.KdfConfig](ctx, s.state, userID, stateKdfConfig)
	if err != nil {
		return fmt.Errorf("error reading kdf config for pin key: %w", err)
	}

	pinKey, err := s.MakePinKey(ctx, string(pin), string(crypto.EmailToSalt(account.Email)), kdf)
	if err != nil {
		return err
	}
	defer pinKey.Destroy()

	wrapped, err := s.encrypt.WrapSymmetricKey(key, pinKey)
	if err != nil {
		return err
	}

	_, err = s.state.Get(ctx, userID, statePinKeyEncryptedUserKeyPersistent)
	persistent := err == nil

	logger.FromContext(ctx).Debug().
		Str("func", "*keyService.storePinKey").
		Bool("persistent", persistent).
		Msg("refreshing pin protected user key")
	return s.SetPinProtectedUserKey(ctx, userID, wrapped, persistent)
}

func (s *keyService) SetAutoUnlock(ctx context.Context, userID uuid.UUID, enabled bool) error {
	if userID == uuid.Nil {
		return ErrUserIDRequired
	}

	if err := s.state.Set(ctx, userID, stateAutoUnlockEnabled, strconv.FormatBool(enabled)); err != nil {
		return fmt.Errorf("error storing auto unlock setting: %w", err)
	}
	if !enabled {
		return s.ClearStoredUserKey(ctx, userID)
	}

	userKey, err := s.cachedUserKey(userID)
	if err != nil || userKey == nil {
		return err
	}
	defer userKey.Destroy()

	if err = s.state.Set(ctx, userID, stateUserKeyAuto, userKey.KeyB64()); err != nil {
		return fmt.Errorf("error storing auto unlock key: %w", err)
	}
	return nil
}

// ── Key hash ────────────────────────────────────────────────────────────────

// HashMasterKey implements [KeyService]. The hash is one PBKDF2-SHA256
// iteration over the Master Key for the server and two for local checks.
func (s *keyService) HashMasterKey(password string, key *crypto.SymmetricCryptoKey, purpose HashPurpose) (string, error) {
	if key == nil {
		return "", fmt.Errorf("%w: master key is required", crypto.ErrNoKey)
	}
	if key.IsDestroyed() {
		return "", crypto.ErrKeyDestroyed
	}
	if password == "" {
		return "", ErrMasterPasswordRequired
	}

	var iterations int
	switch purpose {
	case HashPurposeServerAuthorization:
		iterations = 1
	case HashPurposeLocalAuthorization:
		iterations = 2
	default:
		return "", fmt.Errorf("%w: unknown hash purpose %d", crypto.ErrPrecondition, purpose)
	}

	material := key.Key()
	defer memguard.WipeBytes(material)

	hash, err := s.fn.Pbkdf2(material, []byte(password), crypto.SHA256, iterations, 32)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(hash), nil
}

func (s *keyService) CompareAndUpdateKeyHash(ctx context.Context, userID uuid.UUID, password string, key *crypto.SymmetricCryptoKey) (bool, error) {
	stored, err := s.GetKeyHash(ctx, userID)
	if errors.Is(err, store.ErrStateNotFound) || password == "" {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	localHash, err := s.HashMasterKey(password, key, HashPurposeLocalAuthorization)
	if err != nil {
		return false, err
	}
	if s.fn.Compare([]byte(stored), []byte(localHash)) {
		return true, nil
	}

	// hashes stored by older versions used the server purpose
	serverHash, err := s.HashMasterKey(password, key, HashPurposeServerAuthorization)
	if err != nil {
		return false, err
	}
	if s.fn.Compare([]byte(stored), []byte(serverHash)) {
		if err = s.SetKeyHash(ctx, userID, localHash); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func (s *keyService) SetKeyHash(ctx context.Context, userID uuid.UUID, hash string) error {
	if userID == uuid.Nil {
		return ErrUserIDRequired
	}
	if err := s.state.Set(ctx, userID, stateKeyHash, hash); err != nil {
		return fmt.Errorf("error storing key hash: %w", err)
	}
	return nil
}

// GetKeyHash returns [store.ErrStateNotFound] when no hash is stored.
func (s *keyService) GetKeyHash(ctx context.Context, userID uuid.UUID) (string, error) {
	return s.state.Get(ctx, userID, stateKeyHash)
}

// ── Send and pin keys ───────────────────────────────────────────────────────

func (s *keyService) MakeSendKey(material []byte) (*crypto.SymmetricCryptoKey, error) {
	return s.keyGen.DeriveFromKeyMaterial(material, sendKeySalt, sendKeyPurpose)
}

func (s *keyService) MakePinKey(ctx context.Context, pin, salt string, kdf crypto.KdfConfig) (*crypto.SymmetricCryptoKey, error) {
	if pin == "" {
		return nil, fmt.Errorf("%w: pin is required", crypto.ErrPrecondition)
	}

	pinKey, err := s.keyGen.DeriveKeyFromPassword(ctx, pin, salt, kdf)
	if err != nil {
		return nil, err
	}
	defer pinKey.Destroy()

	return s.keyGen.StretchKey(pinKey)
}

func (s *keyService) SetPinProtectedUserKey(ctx context.Context, userID uuid.UUID, enc *crypto.EncString, persistent bool) error {
	if userID == uuid.Nil {
		return ErrUserIDRequired
	}
	if enc == nil {
		return fmt.Errorf("%w: pin protected user key is required", crypto.ErrPrecondition)
	}

	def := statePinKeyEncryptedUserKeyEphemeral
	if persistent {
		def = statePinKeyEncryptedUserKeyPersistent
	}
	if err := s.state.Set(ctx, userID, def, enc.String()); err != nil {
		return fmt.Errorf("error storing pin protected user key: %w", err)
	}
	return nil
}

func (s *keyService) SetProtectedPin(ctx context.Context, userID uuid.UUID, enc *crypto.EncString) error {
	if userID == uuid.Nil {
		return ErrUserIDRequired
	}
	if enc == nil {
		return fmt.Errorf("%w: protected pin is required", crypto.ErrPrecondition)
	}

	if err := s.state.Set(ctx, userID, stateUserKeyEncryptedPin, enc.String()); err != nil {
		return fmt.Errorf("error storing protected pin: %w", err)
	}
	return nil
}

// DecryptUserKeyWithPin implements [KeyService]. The persistent copy is
// preferred over the ephemeral one.
func (s *keyService) DecryptUserKeyWithPin(ctx context.Context, userID uuid.UUID, pin, salt string, kdf crypto.KdfConfig) (*crypto.SymmetricCryptoKey, error) {
	legacy, err := s.pinProtectedMasterKey(ctx, userID)
	if err != nil {
		return nil, err
	}
	if legacy != nil {
		return s.migratePinProtectedMasterKey(ctx, userID, pin, salt, kdf, legacy)
	}

	enc, err := s.pinProtectedUserKey(ctx, userID)
	if err != nil {
		return nil, err
	}

	pinKey, err := s.MakePinKey(ctx, pin, salt, kdf)
	if err != nil {
		return nil, err
	}
	defer pinKey.Destroy()

	return s.encrypt.UnwrapSymmetricKey(enc, pinKey)
}

// DecryptMasterKeyWithPin implements [KeyService].
func (s *keyService) DecryptMasterKeyWithPin(
	ctx context.Context,
	userID uuid.UUID,
	pin, salt string,
	kdf crypto.KdfConfig,
	enc *crypto.EncString,
) (*crypto.SymmetricCryptoKey, error) {
	if enc == nil {
		var err error
		if enc, err = s.pinProtectedMasterKey(ctx, userID); err != nil {
			return nil, err
		}
		if enc == nil {
			return nil, ErrPinProtectedKeyNotFound
		}
	}

	pinKey, err := s.MakePinKey(ctx, pin, salt, kdf)
	if err != nil {
		return nil, err
	}
	defer pinKey.Destroy()

	material, err := s.encrypt.Decrypt(enc, pinKey)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(material)

	return crypto.NewSymmetricCryptoKey(material)
}

func (s *keyService) SetPinProtectedMasterKey(ctx context.Context, userID uuid.UUID, enc *crypto.EncString) error {
	if userID == uuid.Nil {
		return ErrUserIDRequired
	}
	if enc == nil {
		return fmt.Errorf("%w: pin protected master key is required", crypto.ErrPrecondition)
	}

	if err := s.state.Set(ctx, userID, statePinKeyEncryptedMasterKey, enc.String()); err != nil {
		return fmt.Errorf("error storing pin protected master key: %w", err)
	}
	return nil
}

// pinProtectedMasterKey returns nil when the account has none.
func (s *keyService) pinProtectedMasterKey(ctx context.Context, userID uuid.UUID) (*crypto.EncString, error) {
	raw, err := s.state.Get(ctx, userID, statePinKeyEncryptedMasterKey)
	if errors.Is(err, store.ErrStateNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading pin protected master key: %w", err)
	}
	return crypto.ParseEncString(raw)
}

// migratePinProtectedMasterKey unwraps the User Key through the legacy
// pin-protected Master Key and replaces it with a persistent pin-protected
// User Key and a protected pin.
func (s *keyService) migratePinProtectedMasterKey(
	ctx context.Context,
	userID uuid.UUID,
	pin, salt string,
	kdf crypto.KdfConfig,
	legacy *crypto.EncString,
) (*crypto.SymmetricCryptoKey, error) {
	log := logger.FromContext(ctx)

	masterKey, err := s.DecryptMasterKeyWithPin(ctx, userID, pin, salt, kdf, legacy)
	if err != nil {
		return nil, err
	}
	defer masterKey.Destroy()

	wrapped, err := s.masterKeyEncryptedUserKey(ctx, userID)
	if err != nil {
		return nil, err
	}
	userKey, err := unwrapUserKeyWithMasterKey(s.encrypt, s.keyGen, masterKey, wrapped)
	if err != nil {
		return nil, err
	}

	if err = s.storeMigratedPinKeys(ctx, userID, pin, salt, kdf, userKey); err != nil {
		userKey.Destroy()
		return nil, err
	}

	log.Info().Str("func", "*keyService.migratePinProtectedMasterKey").Str("user_id", userID.String()).Msg("pin protected master key migrated")
	return userKey, nil
}

func (s *keyService) storeMigratedPinKeys(
	ctx context.Context,
	userID uuid.UUID,
	pin, salt string,
	kdf crypto.KdfConfig,
	userKey *crypto.SymmetricCryptoKey,
) error {
	pinKey, err := s.MakePinKey(ctx, pin, salt, kdf)
	if err != nil {
		return err
	}
	defer pinKey.Destroy()

	pinProtected, err := s.encrypt.WrapSymmetricKey(userKey, pinKey)
	if err != nil {
		return err
	}
	protectedPin, err := s.encrypt.Encrypt([]byte(pin), userKey)
	if err != nil {
		return err
	}

	if err = s.SetPinProtectedUserKey(ctx, userID, pinProtected, true); err != nil {
		return err
	}
	if err = s.SetProtectedPin(ctx, userID, protectedPin); err != nil {
		return err
	}
	return s.deleteState(ctx, userID, statePinKeyEncryptedMasterKey)
}

func (s *keyService) pinProtectedUserKey(ctx context.Context, userID uuid.UUID) (*crypto.EncString, error) {
	for _, def := range []store.KeyDefinition{statePinKeyEncryptedUserKeyPersistent, statePinKeyEncryptedUserKeyEphemeral} {
		raw, err := s.state.Get(ctx, userID, def)
		if errors.Is(err, store.ErrStateNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("error reading pin protected user key: %w", err)
		}
		return crypto.ParseEncString(raw)
	}
	return nil, ErrPinProtectedKeyNotFound
}
