// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
	"github.com/MKhiriev/go-pass-keycore/models"
)

//go:generate mockgen -source=key_interfaces.go -destination=../mock/key_service_mock.go -package=mock

// HashPurpose selects the iteration count of [KeyService.HashMasterKey].
type HashPurpose int

const (
	// HashPurposeServerAuthorization produces the hash sent to the server.
	HashPurposeServerAuthorization HashPurpose = 1
	// HashPurposeLocalAuthorization produces the hash kept on this device to
	// verify the password offline.
	HashPurposeLocalAuthorization HashPurpose = 2
)

// KeyService owns the key hierarchy of every user:
//
//	password --KDF--> Master Key --stretch--> wraps User Key
//	User Key --> private key --> organization and provider keys
//
// Decrypted keys only live in memory. Wrapped keys are persisted through the
// state provider.
type KeyService interface {
	crypto.KeyResolver

	// DeriveMasterKey derives the Master Key from the password and the
	// canonicalized email.
	DeriveMasterKey(ctx context.Context, password, email string, kdf crypto.KdfConfig) (*crypto.SymmetricCryptoKey, error)
	SetMasterKey(ctx context.Context, userID uuid.UUID, key *crypto.SymmetricCryptoKey) error
	GetMasterKey(ctx context.Context, userID uuid.UUID) (*crypto.SymmetricCryptoKey, error)
	HasMasterKey(ctx context.Context, userID uuid.UUID) bool

	// SetMasterKeyEncryptedUserKey persists the User Key wrapped under the
	// stretched Master Key.
	SetMasterKeyEncryptedUserKey(ctx context.Context, userID uuid.UUID, enc *crypto.EncString) error
	// SetUserKey installs a decrypted User Key and refreshes the keys derived
	// from it (auto-unlock copy, pin-protected copy).
	SetUserKey(ctx context.Context, userID uuid.UUID, key *crypto.SymmetricCryptoKey) error
	// GetUserKey returns the in-memory User Key, loading it from the
	// auto-unlock copy or unwrapping it with the Master Key when needed.
	GetUserKey(ctx context.Context, userID uuid.UUID) (*crypto.SymmetricCryptoKey, error)
	HasUserKey(ctx context.Context, userID uuid.UUID) bool
	// MakeUserKey creates a new User Key and wraps it under masterKey.
	MakeUserKey(ctx context.Context, masterKey *crypto.SymmetricCryptoKey) (*crypto.SymmetricCryptoKey, *crypto.EncString, error)
	// MakeDataEncKey creates a 64-byte key and wraps it under key.
	MakeDataEncKey(key *crypto.SymmetricCryptoKey) (*crypto.SymmetricCryptoKey, *crypto.EncString, error)
	MakeCipherKey() (*crypto.SymmetricCryptoKey, error)
	// ValidateKey reports whether candidate decrypts the stored private key.
	ValidateKey(ctx context.Context, userID uuid.UUID, candidate *crypto.SymmetricCryptoKey) bool

	// KeyForUserEncryption returns key when it is not nil, otherwise the first
	// key the configured sources can provide.
	KeyForUserEncryption(ctx context.Context, userID uuid.UUID, key *crypto.SymmetricCryptoKey) (*crypto.SymmetricCryptoKey, error)
	EncryptForUser(ctx context.Context, userID uuid.UUID, plain []byte, key *crypto.SymmetricCryptoKey) (*crypto.EncString, error)
	DecryptForUser(ctx context.Context, userID uuid.UUID, enc *crypto.EncString, key *crypto.SymmetricCryptoKey) ([]byte, error)
	// DecryptToUTF8 returns [crypto.DecryptErrorValue] together with the error
	// when the envelope cannot be decrypted.
	DecryptToUTF8(ctx context.Context, userID uuid.UUID, enc *crypto.EncString, key *crypto.SymmetricCryptoKey) (string, error)
	EncryptToBytes(ctx context.Context, userID uuid.UUID, plain []byte, key *crypto.SymmetricCryptoKey) (*crypto.EncArrayBuffer, error)
	DecryptFromBytes(ctx context.Context, userID uuid.UUID, enc *crypto.EncArrayBuffer, key *crypto.SymmetricCryptoKey) ([]byte, error)

	SetOrgKeys(ctx context.Context, userID uuid.UUID, orgs []models.ProfileOrganization, providerOrgs []models.ProfileProviderOrganization) error
	GetOrgKeys(ctx context.Context, userID uuid.UUID) (map[string]*crypto.SymmetricCryptoKey, error)
	GetOrgKey(ctx context.Context, userID uuid.UUID, orgID string) (*crypto.SymmetricCryptoKey, error)
	SetProviderKeys(ctx context.Context, userID uuid.UUID, providers []models.ProfileProvider) error
	GetProviderKeys(ctx context.Context, userID uuid.UUID) (map[string]*crypto.SymmetricCryptoKey, error)
	GetProviderKey(ctx context.Context, userID uuid.UUID, providerID string) (*crypto.SymmetricCryptoKey, error)

	// MakeUserKeyPair generates an RSA-2048 key pair. It returns the SPKI
	// public key in base64 and the PKCS#8 private key wrapped under key.
	MakeUserKeyPair(ctx context.Context, userID uuid.UUID, key *crypto.SymmetricCryptoKey) (string, *crypto.EncString, error)
	SetPrivateKey(ctx context.Context, userID uuid.UUID, encPrivateKey *crypto.EncString) error
	GetPrivateKey(ctx context.Context, userID uuid.UUID) ([]byte, error)
	GetPublicKey(ctx context.Context, userID uuid.UUID) ([]byte, error)
	// MakeShareKey creates a 64-byte key and encrypts it to the user's
	// public key.
	MakeShareKey(ctx context.Context, userID uuid.UUID) (*crypto.EncString, *crypto.SymmetricCryptoKey, error)
	MakeOrgKey(ctx context.Context, userID uuid.UUID) (*crypto.EncString, *crypto.SymmetricCryptoKey, error)
	// Fingerprint returns the five-word phrase users compare to verify a
	// public key. material is usually the user id.
	Fingerprint(ctx context.Context, userID uuid.UUID, material string, publicKey []byte) ([]string, error)
	RsaEncrypt(data, publicKey []byte) (*crypto.EncString, error)
	// RsaDecrypt decrypts with privateKey, or with the user's private key
	// when privateKey is nil.
	RsaDecrypt(ctx context.Context, userID uuid.UUID, enc *crypto.EncString, privateKey []byte) ([]byte, error)

	HashMasterKey(password string, key *crypto.SymmetricCryptoKey, purpose HashPurpose) (string, error)
	// CompareAndUpdateKeyHash verifies password against the stored local
	// hash. A match against the server hash upgrades the stored hash.
	CompareAndUpdateKeyHash(ctx context.Context, userID uuid.UUID, password string, key *crypto.SymmetricCryptoKey) (bool, error)
	SetKeyHash(ctx context.Context, userID uuid.UUID, hash string) error
	GetKeyHash(ctx context.Context, userID uuid.UUID) (string, error)

	MakeSendKey(material []byte) (*crypto.SymmetricCryptoKey, error)
	MakePinKey(ctx context.Context, pin, salt string, kdf crypto.KdfConfig) (*crypto.SymmetricCryptoKey, error)
	// SetPinProtectedUserKey stores the User Key wrapped under a pin key.
	// Persistent keys survive restarts, ephemeral ones are dropped on lock.
	SetPinProtectedUserKey(ctx context.Context, userID uuid.UUID, enc *crypto.EncString, persistent bool) error
	// SetProtectedPin stores the pin encrypted under the User Key so the pin
	// copies can be rebuilt whenever the User Key is installed.
	SetProtectedPin(ctx context.Context, userID uuid.UUID, enc *crypto.EncString) error
	// DecryptUserKeyWithPin unwraps the pin-protected User Key. An account
	// that still holds a pin-protected Master Key is migrated on the way.
	DecryptUserKeyWithPin(ctx context.Context, userID uuid.UUID, pin, salt string, kdf crypto.KdfConfig) (*crypto.SymmetricCryptoKey, error)
	// DecryptMasterKeyWithPin decrypts a pin-protected Master Key, the format
	// used before the User Key existed. A nil enc reads the stored one.
	DecryptMasterKeyWithPin(ctx context.Context, userID uuid.UUID, pin, salt string, kdf crypto.KdfConfig, enc *crypto.EncString) (*crypto.SymmetricCryptoKey, error)
	// SetPinProtectedMasterKey stores a legacy pin-protected Master Key.
	SetPinProtectedMasterKey(ctx context.Context, userID uuid.UUID, enc *crypto.EncString) error

	// SetAutoUnlock enables or disables keeping a sealed copy of the User
	// Key in the secure tier.
	SetAutoUnlock(ctx context.Context, userID uuid.UUID, enabled bool) error

	// ClearKey drops the in-memory User Key. With clearStored it also drops
	// the auto-unlock copy.
	ClearKey(ctx context.Context, userID uuid.UUID, clearStored bool) error
	ClearStoredUserKey(ctx context.Context, userID uuid.UUID) error
	ClearKeyHash(ctx context.Context, userID uuid.UUID) error
	ClearEncKey(ctx context.Context, userID uuid.UUID, memoryOnly bool) error
	ClearKeyPair(ctx context.Context, userID uuid.UUID, memoryOnly bool) error
	ClearOrgKeys(ctx context.Context, userID uuid.UUID, memoryOnly bool) error
	ClearProviderKeys(ctx context.Context, userID uuid.UUID, memoryOnly bool) error
	ClearPinProtectedKey(ctx context.Context, userID uuid.UUID) error
	// ClearKeys removes every key of the user, in memory and persisted.
	ClearKeys(ctx context.Context, userID uuid.UUID) error
	// Lock drops all decrypted keys of the user and the lock-scoped state.
	Lock(ctx context.Context, userID uuid.UUID) error
}

// MasterPasswordService derives the authentication and unlock data of the
// master password and unlocks the User Key with it.
type MasterPasswordService interface {
	EmailToSalt(email string) crypto.MasterPasswordSalt
	SaltForUser(ctx context.Context, userID uuid.UUID) (crypto.MasterPasswordSalt, error)

	MakeMasterPasswordAuthenticationData(ctx context.Context, password string, kdf crypto.KdfConfig, salt crypto.MasterPasswordSalt) (crypto.MasterPasswordAuthenticationData, error)
	MakeMasterPasswordUnlockData(ctx context.Context, password string, kdf crypto.KdfConfig, salt crypto.MasterPasswordSalt, userKey *crypto.SymmetricCryptoKey) (crypto.MasterPasswordUnlockData, error)
	UnwrapUserKeyFromMasterPasswordUnlockData(ctx context.Context, password string, data crypto.MasterPasswordUnlockData) (*crypto.SymmetricCryptoKey, error)

	SetMasterPasswordUnlockData(ctx context.Context, userID uuid.UUID, data crypto.MasterPasswordUnlockData) error
	GetMasterPasswordUnlockData(ctx context.Context, userID uuid.UUID) (crypto.MasterPasswordUnlockData, error)

	// UnlockWithMasterPassword unwraps the stored User Key with password and
	// installs it together with the Master Key and the local key hash.
	UnlockWithMasterPassword(ctx context.Context, userID uuid.UUID, password string) (*crypto.SymmetricCryptoKey, error)
	// DecryptUserKeyWithMasterKey unwraps a legacy wrapped User Key. A nil
	// wrapped key is loaded from state.
	DecryptUserKeyWithMasterKey(ctx context.Context, userID uuid.UUID, masterKey *crypto.SymmetricCryptoKey, wrapped *crypto.EncString) (*crypto.SymmetricCryptoKey, error)
}
