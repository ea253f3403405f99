// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
	"github.com/MKhiriev/go-pass-keycore/internal/logger"
	"github.com/MKhiriev/go-pass-keycore/internal/store"
)

// masterPasswordService implements [MasterPasswordService].
type masterPasswordService struct {
	state      *store.StateProvider
	keys       KeyService
	keyGen     crypto.KeyGenerationService
	encrypt    crypto.EncryptService
	kdfConfigs KdfConfigService
	accounts   AccountService
}

// NewMasterPasswordService constructs a [MasterPasswordService]. kdfConfigs
// and accounts are used to unlock accounts synced before unlock data was
// stored as one record.
func NewMasterPasswordService(
	state *store.StateProvider,
	keys KeyService,
	keyGen crypto.KeyGenerationService,
	encrypt crypto.EncryptService,
	kdfConfigs KdfConfigService,
	accounts AccountService,
) MasterPasswordService {
	return &masterPasswordService{
		state:      state,
		keys:       keys,
		keyGen:     keyGen,
		encrypt:    encrypt,
		kdfConfigs: kdfConfigs,
		accounts:   accounts,
	}
}

func (m *masterPasswordService) EmailToSalt(email string) crypto.MasterPasswordSalt {
	return crypto.EmailToSalt(email)
}

func (m *masterPasswordService) SaltForUser(ctx context.Context, userID uuid.UUID) (crypto.MasterPasswordSalt, error) {
	if userID == uuid.Nil {
		return "", ErrUserIDRequired
	}

	account, err := m.accounts.Account(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("error reading account: %w", err)
	}
	return m.EmailToSalt(account.Email), nil
}

func (m *masterPasswordService) MakeMasterPasswordAuthenticationData(
	ctx context.Context,
	password string,
	kdf crypto.KdfConfig,
	salt crypto.MasterPasswordSalt,
) (crypto.MasterPasswordAuthenticationData, error) {
	masterKey, err := m.deriveMasterKey(ctx, password, kdf, salt)
	if err != nil {
		return crypto.MasterPasswordAuthenticationData{}, err
	}
	defer masterKey.Destroy()

	hash, err := m.keys.HashMasterKey(password, masterKey, HashPurposeServerAuthorization)
	if err != nil {
		return crypto.MasterPasswordAuthenticationData{}, err
	}

	return crypto.MasterPasswordAuthenticationData{
		Salt:                             salt,
		Kdf:                              kdf,
		MasterPasswordAuthenticationHash: hash,
	}, nil
}

func (m *masterPasswordService) MakeMasterPasswordUnlockData(
	ctx context.Context,
	password string,
	kdf crypto.KdfConfig,
	salt crypto.MasterPasswordSalt,
	userKey *crypto.SymmetricCryptoKey,
) (crypto.MasterPasswordUnlockData, error) {
	if userKey == nil {
		return crypto.MasterPasswordUnlockData{}, fmt.Errorf("%w: user key is required", crypto.ErrPrecondition)
	}

	masterKey, err := m.deriveMasterKey(ctx, password, kdf, salt)
	if err != nil {
		return crypto.MasterPasswordUnlockData{}, err
	}
	defer masterKey.Destroy()

	wrapped, err := wrapWithMasterKey(m.encrypt, m.keyGen, userKey, masterKey)
	if err != nil {
		return crypto.MasterPasswordUnlockData{}, err
	}

	return crypto.MasterPasswordUnlockData{
		Salt:                    salt,
		Kdf:                     kdf,
		MasterKeyWrappedUserKey: wrapped,
	}, nil
}

func (m *masterPasswordService) UnwrapUserKeyFromMasterPasswordUnlockData(
	ctx context.Context,
	password string,
	data crypto.MasterPasswordUnlockData,
) (*crypto.SymmetricCryptoKey, error) {
	userKey, masterKey, err := m.unwrap(ctx, password, data)
	if err != nil {
		return nil, err
	}
	masterKey.Destroy()
	return userKey, nil
}

// unwrap returns the User Key and the Master Key it was unwrapped with.
func (m *masterPasswordService) unwrap(
	ctx context.Context,
	password string,
	data crypto.MasterPasswordUnlockData,
) (*crypto.SymmetricCryptoKey, *crypto.SymmetricCryptoKey, error) {
	if password == "" {
		return nil, nil, ErrMasterPasswordRequired
	}
	if data.MasterKeyWrappedUserKey == nil {
		return nil, nil, ErrUnlockDataNotFound
	}
	switch encType := data.MasterKeyWrappedUserKey.EncryptionType(); encType {
	case crypto.AesCbc256B64, crypto.AesCbc256HmacSha256B64:
	default:
		return nil, nil, fmt.Errorf("%w: user key wrapped as %s", crypto.ErrUnsupportedEncoding, encType)
	}

	masterKey, err := m.deriveMasterKey(ctx, password, data.Kdf, data.Salt)
	if err != nil {
		return nil, nil, err
	}

	userKey, err := unwrapUserKeyWithMasterKey(m.encrypt, m.keyGen, masterKey, data.MasterKeyWrappedUserKey)
	if err != nil {
		masterKey.Destroy()
		if errors.Is(err, crypto.ErrDecryption) {
			return nil, nil, fmt.Errorf("%w: %w", ErrWrongMasterPassword, err)
		}
		return nil, nil, err
	}
	return userKey, masterKey, nil
}

func (m *masterPasswordService) deriveMasterKey(
	ctx context.Context,
	password string,
	kdf crypto.KdfConfig,
	salt crypto.MasterPasswordSalt,
) (*crypto.SymmetricCryptoKey, error) {
	if password == "" {
		return nil, ErrMasterPasswordRequired
	}
	if salt == "" {
		return nil, fmt.Errorf("%w: salt is required", crypto.ErrPrecondition)
	}

	return m.keyGen.DeriveKeyFromPassword(ctx, password, string(salt), kdf)
}

func (m *masterPasswordService) SetMasterPasswordUnlockData(ctx context.Context, userID uuid.UUID, data crypto.MasterPasswordUnlockData) error {
	if userID == uuid.Nil {
		return ErrUserIDRequired
	}
	if data.MasterKeyWrappedUserKey == nil {
		return fmt.Errorf("%w: wrapped user key is required", crypto.ErrPrecondition)
	}

	if err := store.SetJSON(ctx, m.state, userID, stateMasterPasswordUnlock, data); err != nil {
		return fmt.Errorf("error storing master password unlock data: %w", err)
	}
	return nil
}

func (m *masterPasswordService) GetMasterPasswordUnlockData(ctx context.Context, userID uuid.UUID) (crypto.MasterPasswordUnlockData, error) {
	if userID == uuid.Nil {
		return crypto.MasterPasswordUnlockData{}, ErrUserIDRequired
	}

	data, err := store.GetJSON[crypto.MasterPasswordUnlockData](ctx, m.state, userID, stateMasterPasswordUnlock)
	if errors.Is(err, store.ErrStateNotFound) {
		return m.legacyUnlockData(ctx, userID)
	}
	if err != nil {
		return crypto.MasterPasswordUnlockData{}, fmt.Errorf("error reading master password unlock data: %w", err)
	}
	return data, nil
}

// legacyUnlockData assembles unlock data from the separately stored KDF
// config, account email and wrapped User Key.
func (m *masterPasswordService) legacyUnlockData(ctx context.Context, userID uuid.UUID) (crypto.MasterPasswordUnlockData, error) {
	raw, err := m.state.Get(ctx, userID, stateMasterKeyEncryptedUserKey)
	if err != nil {
		return crypto.MasterPasswordUnlockData{}, ErrUnlockDataNotFound
	}
	wrapped, err := crypto.ParseEncString(raw)
	if err != nil {
		return crypto.MasterPasswordUnlockData{}, err
	}

	kdf, err := m.kdfConfigs.GetKdfConfig(ctx, userID)
	if err != nil {
		return crypto.MasterPasswordUnlockData{}, fmt.Errorf("%w: %w", ErrUnlockDataNotFound, err)
	}
	salt, err := m.SaltForUser(ctx, userID)
	if err != nil {
		return crypto.MasterPasswordUnlockData{}, fmt.Errorf("%w: %w", ErrUnlockDataNotFound, err)
	}

	return crypto.MasterPasswordUnlockData{Salt: salt, Kdf: kdf, MasterKeyWrappedUserKey: wrapped}, nil
}

// UnlockWithMasterPassword implements [MasterPasswordService]. The session
// keeps its own copies of the keys; the returned User Key belongs to the
// caller. A failure after the session was touched locks it again.
func (m *masterPasswordService) UnlockWithMasterPassword(ctx context.Context, userID uuid.UUID, password string) (userKey *crypto.SymmetricCryptoKey, err error) {
	log := logger.FromContext(ctx)

	if userID == uuid.Nil {
		return nil, ErrUserIDRequired
	}
	if password == "" {
		return nil, ErrMasterPasswordRequired
	}

	data, err := m.GetMasterPasswordUnlockData(ctx, userID)
	if err != nil {
		return nil, err
	}

	userKey, masterKey, err := m.unwrap(ctx, password, data)
	if err != nil {
		log.Err(err).Str("func", "*masterPasswordService.UnlockWithMasterPassword").Msg("error unwrapping user key")
		return nil, err
	}
	defer masterKey.Destroy()
	defer func() {
		if err != nil {
			userKey.Destroy()
			userKey = nil
		}
	}()

	localHash, err := m.keys.HashMasterKey(password, masterKey, HashPurposeLocalAuthorization)
	if err != nil {
		return nil, err
	}

	if err = m.storeUnlockedKeys(ctx, userID, masterKey, userKey, localHash); err != nil {
		log.Err(err).Str("func", "*masterPasswordService.UnlockWithMasterPassword").Msg("error storing unlocked keys")
		return nil, errors.Join(err, m.keys.Lock(ctx, userID))
	}

	log.Info().Str("func", "*masterPasswordService.UnlockWithMasterPassword").Str("user_id", userID.String()).Msg("unlocked with master password")
	return userKey, nil
}

func (m *masterPasswordService) storeUnlockedKeys(
	ctx context.Context,
	userID uuid.UUID,
	masterKey, userKey *crypto.SymmetricCryptoKey,
	localHash string,
) error {
	if err := m.keys.SetMasterKey(ctx, userID, masterKey); err != nil {
		return err
	}
	if err := m.keys.SetKeyHash(ctx, userID, localHash); err != nil {
		return err
	}
	return m.keys.SetUserKey(ctx, userID, userKey)
}

func (m *masterPasswordService) DecryptUserKeyWithMasterKey(
	ctx context.Context,
	userID uuid.UUID,
	masterKey *crypto.SymmetricCryptoKey,
	wrapped *crypto.EncString,
) (*crypto.SymmetricCryptoKey, error) {
	var err error
	if masterKey == nil {
		if masterKey, err = m.keys.GetMasterKey(ctx, userID); err != nil {
			return nil, err
		}
		defer masterKey.Destroy()
	}
	if wrapped == nil {
		raw, err := m.state.Get(ctx, userID, stateMasterKeyEncryptedUserKey)
		if errors.Is(err, store.ErrStateNotFound) {
			return nil, fmt.Errorf("%w: no wrapped user key stored", crypto.ErrNoKey)
		}
		if err != nil {
			return nil, fmt.Errorf("error reading wrapped user key: %w", err)
		}
		if wrapped, err = crypto.ParseEncString(raw); err != nil {
			return nil, err
		}
	}

	return unwrapUserKeyWithMasterKey(m.encrypt, m.keyGen, masterKey, wrapped)
}
