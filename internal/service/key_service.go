// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/awnumar/memguard"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
	"github.com/MKhiriev/go-pass-keycore/internal/logger"
	"github.com/MKhiriev/go-pass-keycore/internal/store"
)

// keyService implements [KeyService]. Decrypted keys are cached per user in
// a keySession; wrapped keys go through the state provider.
type keyService struct {
	state   *store.StateProvider
	fn      crypto.CryptoFunctionService
	encrypt crypto.EncryptService
	keyGen  crypto.KeyGenerationService
	sources []KeySource

	mu       sync.Mutex
	sessions map[uuid.UUID]*keySession

	group singleflight.Group
}

// NewKeyService constructs the key hierarchy manager. Keys for user
// encryption are looked up in the User Key first and the legacy Master Key
// second.
func NewKeyService(
	state *store.StateProvider,
	fn crypto.CryptoFunctionService,
	encrypt crypto.EncryptService,
	keyGen crypto.KeyGenerationService,
) KeyService {
	s := &keyService{
		state:    state,
		fn:       fn,
		encrypt:  encrypt,
		keyGen:   keyGen,
		sessions: make(map[uuid.UUID]*keySession),
	}
	s.sources = []KeySource{userKeySource{keys: s}, legacyMasterKeySource{keys: s}}
	return s
}

// session returns the session of userID, creating it when missing.
func (s *keyService) session(userID uuid.UUID) *keySession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		sess = &keySession{}
		s.sessions[userID] = sess
	}
	return sess
}

// existingSession returns the session of userID or nil.
func (s *keyService) existingSession(userID uuid.UUID) *keySession {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions[userID]
}

// dropSession removes and wipes the session of userID.
func (s *keyService) dropSession(userID uuid.UUID) {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	delete(s.sessions, userID)
	s.mu.Unlock()

	if ok {
		sess.destroy()
	}
}

// ── Master Key ──────────────────────────────────────────────────────────────

func (s *keyService) DeriveMasterKey(ctx context.Context, password, email string, kdf crypto.KdfConfig) (*crypto.SymmetricCryptoKey, error) {
	if password == "" {
		return nil, ErrMasterPasswordRequired
	}

	return s.keyGen.DeriveKeyFromPassword(ctx, password, string(crypto.EmailToSalt(email)), kdf)
}

// SetMasterKey implements [KeyService]. The session keeps its own copy; the
// caller still owns key.
func (s *keyService) SetMasterKey(_ context.Context, userID uuid.UUID, key *crypto.SymmetricCryptoKey) error {
	if userID == uuid.Nil {
		return ErrUserIDRequired
	}
	if key == nil {
		return fmt.Errorf("%w: master key is required", crypto.ErrPrecondition)
	}

	return s.session(userID).setMasterKey(key)
}

// GetMasterKey implements [KeyService]. The returned key is a copy owned by
// the caller.
func (s *keyService) GetMasterKey(_ context.Context, userID uuid.UUID) (*crypto.SymmetricCryptoKey, error) {
	sess := s.existingSession(userID)
	if sess == nil {
		return nil, crypto.ErrNoKey
	}
	return sess.masterKeyCopy()
}

func (s *keyService) HasMasterKey(_ context.Context, userID uuid.UUID) bool {
	sess := s.existingSession(userID)
	return sess != nil && sess.hasMasterKey()
}

// ── User Key ────────────────────────────────────────────────────────────────

func (s *keyService) SetMasterKeyEncryptedUserKey(ctx context.Context, userID uuid.UUID, enc *crypto.EncString) error {
	if userID == uuid.Nil {
		return ErrUserIDRequired
	}
	if enc == nil {
		return fmt.Errorf("%w: wrapped user key is required", crypto.ErrPrecondition)
	}

	if err := s.state.Set(ctx, userID, stateMasterKeyEncryptedUserKey, enc.String()); err != nil {
		return fmt.Errorf("error storing wrapped user key: %w", err)
	}
	return nil
}

// SetUserKey implements [KeyService]. The session keeps its own copy, and
// every key decrypted with a previous User Key is dropped.
func (s *keyService) SetUserKey(ctx context.Context, userID uuid.UUID, key *crypto.SymmetricCryptoKey) error {
	if userID == uuid.Nil {
		return ErrUserIDRequired
	}
	if key == nil {
		return fmt.Errorf("%w: user key is required", crypto.ErrPrecondition)
	}

	if err := s.session(userID).setUserKey(key); err != nil {
		return err
	}
	return s.storeAdditionalKeys(ctx, userID, key)
}

// GetUserKey implements [KeyService]. The returned key is a copy owned by the
// caller: a lock destroys the session's key, not this one.
func (s *keyService) GetUserKey(ctx context.Context, userID uuid.UUID) (*crypto.SymmetricCryptoKey, error) {
	if userID == uuid.Nil {
		return nil, ErrUserIDRequired
	}
	if key, err := s.cachedUserKey(userID); key != nil || err != nil {
		return key, err
	}

	if _, err, _ := s.group.Do("userKey/"+userID.String(), func() (any, error) {
		return nil, s.loadUserKey(ctx, userID)
	}); err != nil {
		return nil, err
	}

	key, err := s.cachedUserKey(userID)
	if err == nil && key == nil {
		err = errSessionDropped
	}
	return key, err
}

func (s *keyService) cachedUserKey(userID uuid.UUID) (*crypto.SymmetricCryptoKey, error) {
	sess := s.existingSession(userID)
	if sess == nil {
		return nil, nil
	}
	return sess.userKeyCopy()
}

// loadUserKey tries the auto-unlock copy, then unwraps the stored User Key
// with the Master Key of the session. The result is kept in the session the
// load started with, unless that session was dropped meanwhile.
func (s *keyService) loadUserKey(ctx context.Context, userID uuid.UUID) error {
	sess := s.session(userID)

	key, err := s.userKeyFromAutoUnlock(ctx, userID)
	if err != nil {
		return err
	}

	if key == nil {
		masterKey, err := sess.masterKeyCopy()
		if err != nil {
			return err
		}
		defer masterKey.Destroy()

		wrapped, err := s.masterKeyEncryptedUserKey(ctx, userID)
		if err != nil {
			return err
		}

		if key, err = unwrapUserKeyWithMasterKey(s.encrypt, s.keyGen, masterKey, wrapped); err != nil {
			return err
		}
	}
	defer key.Destroy()

	return sess.setUserKey(key)
}

func (s *keyService) userKeyFromAutoUnlock(ctx context.Context, userID uuid.UUID) (*crypto.SymmetricCryptoKey, error) {
	raw, err := s.state.Get(ctx, userID, stateUserKeyAuto)
	if errors.Is(err, store.ErrStateNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading auto unlock key: %w", err)
	}

	key, err := crypto.SymmetricCryptoKeyFromB64(raw)
	if err == nil && s.ValidateKey(ctx, userID, key) {
		return key, nil
	}

	logger.FromContext(ctx).Warn().
		Str("func", "*keyService.userKeyFromAutoUnlock").
		Str("user_id", userID.String()).
		Msg("stored auto unlock key is invalid, discarding it")
	if err = s.ClearStoredUserKey(ctx, userID); err != nil {
		return nil, err
	}
	return nil, nil
}

func (s *keyService) masterKeyEncryptedUserKey(ctx context.Context, userID uuid.UUID) (*crypto.EncString, error) {
	raw, err := s.state.Get(ctx, userID, stateMasterKeyEncryptedUserKey)
	if errors.Is(err, store.ErrStateNotFound) {
		return nil, fmt.Errorf("%w: no wrapped user key stored", crypto.ErrNoKey)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading wrapped user key: %w", err)
	}

	return crypto.ParseEncString(raw)
}

func (s *keyService) HasUserKey(_ context.Context, userID uuid.UUID) bool {
	sess := s.existingSession(userID)
	return sess != nil && sess.hasUserKey()
}

func (s *keyService) MakeUserKey(_ context.Context, masterKey *crypto.SymmetricCryptoKey) (*crypto.SymmetricCryptoKey, *crypto.EncString, error) {
	if masterKey == nil {
		return nil, nil, fmt.Errorf("%w: master key is required", crypto.ErrNoKey)
	}

	userKey, err := s.keyGen.CreateKey(512)
	if err != nil {
		return nil, nil, err
	}

	wrapped, err := wrapWithMasterKey(s.encrypt, s.keyGen, userKey, masterKey)
	if err != nil {
		userKey.Destroy()
		return nil, nil, err
	}
	return userKey, wrapped, nil
}

// ValidateKey implements [KeyService]. Any failure, including a missing
// private key, makes the candidate invalid.
func (s *keyService) ValidateKey(ctx context.Context, userID uuid.UUID, candidate *crypto.SymmetricCryptoKey) bool {
	if candidate == nil {
		return false
	}

	raw, err := s.state.Get(ctx, userID, stateEncPrivateKey)
	if err != nil {
		return false
	}
	enc, err := crypto.ParseEncString(raw)
	if err != nil {
		return false
	}

	privateKey, err := s.encrypt.Decrypt(enc, candidate)
	if err != nil {
		return false
	}
	defer memguard.WipeBytes(privateKey)

	_, err = s.fn.RsaExtractPublicKey(privateKey)
	return err == nil
}

// ── Encryption ──────────────────────────────────────────────────────────────

func (s *keyService) KeyForUserEncryption(ctx context.Context, userID uuid.UUID, key *crypto.SymmetricCryptoKey) (*crypto.SymmetricCryptoKey, error) {
	if key != nil {
		return key, nil
	}

	for _, source := range s.sources {
		found, err := source.Key(ctx, userID)
		if err != nil {
			return nil, err
		}
		if found != nil {
			return found, nil
		}
	}
	return nil, crypto.ErrNoKey
}

// userEncryptionKey resolves the key like [keyService.KeyForUserEncryption].
// release destroys the key when it is a copy taken from the session.
func (s *keyService) userEncryptionKey(ctx context.Context, userID uuid.UUID, key *crypto.SymmetricCryptoKey) (*crypto.SymmetricCryptoKey, func(), error) {
	if key != nil {
		return key, func() {}, nil
	}

	found, err := s.KeyForUserEncryption(ctx, userID, nil)
	if err != nil {
		return nil, nil, err
	}
	return found, found.Destroy, nil
}

func (s *keyService) EncryptForUser(ctx context.Context, userID uuid.UUID, plain []byte, key *crypto.SymmetricCryptoKey) (*crypto.EncString, error) {
	key, release, err := s.userEncryptionKey(ctx, userID, key)
	if err != nil {
		return nil, err
	}
	defer release()

	return s.encrypt.Encrypt(plain, key)
}

func (s *keyService) DecryptForUser(ctx context.Context, userID uuid.UUID, enc *crypto.EncString, key *crypto.SymmetricCryptoKey) ([]byte, error) {
	if enc == nil {
		return nil, fmt.Errorf("%w: nothing to decrypt", crypto.ErrPrecondition)
	}

	key, release, err := s.userEncryptionKey(ctx, userID, key)
	if err != nil {
		return nil, err
	}
	defer release()

	return s.encrypt.Decrypt(enc, key)
}

func (s *keyService) DecryptToUTF8(ctx context.Context, userID uuid.UUID, enc *crypto.EncString, key *crypto.SymmetricCryptoKey) (string, error) {
	if enc == nil {
		return "", fmt.Errorf("%w: nothing to decrypt", crypto.ErrPrecondition)
	}

	plain, err := enc.Decrypt(ctx, s.encrypt, key, s, userID, "")
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "*keyService.DecryptToUTF8").
			Msg("error decrypting value")
	}
	return plain, err
}

func (s *keyService) EncryptToBytes(ctx context.Context, userID uuid.UUID, plain []byte, key *crypto.SymmetricCryptoKey) (*crypto.EncArrayBuffer, error) {
	key, release, err := s.userEncryptionKey(ctx, userID, key)
	if err != nil {
		return nil, err
	}
	defer release()

	return s.encrypt.EncryptToBytes(plain, key)
}

func (s *keyService) DecryptFromBytes(ctx context.Context, userID uuid.UUID, enc *crypto.EncArrayBuffer, key *crypto.SymmetricCryptoKey) ([]byte, error) {
	if enc == nil {
		return nil, fmt.Errorf("%w: nothing to decrypt", crypto.ErrPrecondition)
	}

	key, release, err := s.userEncryptionKey(ctx, userID, key)
	if err != nil {
		return nil, err
	}
	defer release()

	return s.encrypt.DecryptToBytes(enc, key)
}

// ResolveKey implements [crypto.KeyResolver].
func (s *keyService) ResolveKey(ctx context.Context, userID uuid.UUID, orgID string) (*crypto.SymmetricCryptoKey, error) {
	if orgID == "" {
		return s.KeyForUserEncryption(ctx, userID, nil)
	}
	return s.GetOrgKey(ctx, userID, orgID)
}

// unwrapUserKeyWithMasterKey unwraps a User Key wrapped directly under a
// 32-byte Master Key (type 0) or under its stretched form (type 2).
func unwrapUserKeyWithMasterKey(
	encrypt crypto.EncryptService,
	keyGen crypto.KeyGenerationService,
	masterKey *crypto.SymmetricCryptoKey,
	wrapped *crypto.EncString,
) (*crypto.SymmetricCryptoKey, error) {
	if masterKey == nil {
		return nil, fmt.Errorf("%w: master key is required", crypto.ErrNoKey)
	}
	if wrapped == nil {
		return nil, fmt.Errorf("%w: no wrapped user key", crypto.ErrNoKey)
	}

	switch wrapped.EncryptionType() {
	case crypto.AesCbc256B64:
		return encrypt.UnwrapSymmetricKey(wrapped, masterKey)
	case crypto.AesCbc256HmacSha256B64:
		stretched, err := keyGen.StretchKey(masterKey)
		if err != nil {
			return nil, err
		}
		defer stretched.Destroy()

		return encrypt.UnwrapSymmetricKey(wrapped, stretched)
	}
	return nil, fmt.Errorf("%w: user key wrapped as %s", crypto.ErrUnsupportedEncoding, wrapped.EncryptionType())
}

// MakeDataEncKey implements [KeyService]. A 32-byte key is stretched before
// it wraps the new key.
func (s *keyService) MakeDataEncKey(key *crypto.SymmetricCryptoKey) (*crypto.SymmetricCryptoKey, *crypto.EncString, error) {
	if key == nil {
		return nil, nil, fmt.Errorf("%w: wrapping key is required", crypto.ErrNoKey)
	}

	dataKey, err := s.keyGen.CreateKey(512)
	if err != nil {
		return nil, nil, err
	}

	wrapped, err := wrapWithMasterKey(s.encrypt, s.keyGen, dataKey, key)
	if err != nil {
		dataKey.Destroy()
		return nil, nil, err
	}
	return dataKey, wrapped, nil
}

// MakeCipherKey creates the per-item key of a vault item.
func (s *keyService) MakeCipherKey() (*crypto.SymmetricCryptoKey, error) {
	return s.keyGen.CreateKey(512)
}

// wrapWithMasterKey wraps key under the stretched Master Key. A 64-byte
// Master Key is already stretched.
func wrapWithMasterKey(
	encrypt crypto.EncryptService,
	keyGen crypto.KeyGenerationService,
	key, masterKey *crypto.SymmetricCryptoKey,
) (*crypto.EncString, error) {
	switch masterKey.Len() {
	case 32:
		stretched, err := keyGen.StretchKey(masterKey)
		if err != nil {
			return nil, err
		}
		defer stretched.Destroy()

		return encrypt.WrapSymmetricKey(key, stretched)
	case 64:
		return encrypt.WrapSymmetricKey(key, masterKey)
	}
	return nil, fmt.Errorf("%w: master key must be 32 or 64 bytes, got %d", crypto.ErrInvalidKeyLength, masterKey.Len())
}
