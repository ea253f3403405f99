// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"

	"github.com/google/uuid"
)

// CryptoFunctionService exposes the raw primitives. It knows nothing about
// keys, envelopes or users; it only transforms bytes.
type CryptoFunctionService interface {
	// Pbkdf2 derives keyLen bytes with PBKDF2 over the given hash.
	Pbkdf2(password, salt []byte, alg HashAlgorithm, iterations, keyLen int) ([]byte, error)

	// Argon2 derives a 32-byte key with Argon2id. memoryKiB is in KiB.
	Argon2(password, salt []byte, iterations, memoryKiB uint32, parallelism uint8) ([]byte, error)

	// Hkdf runs extract and expand.
	Hkdf(ikm, salt, info []byte, outputSize int, alg HashAlgorithm) ([]byte, error)

	// HkdfExpand runs the expand step only, using prk as the pseudorandom key.
	HkdfExpand(prk, info []byte, outputSize int, alg HashAlgorithm) ([]byte, error)

	// Hash returns the digest of value.
	Hash(value []byte, alg HashAlgorithm) ([]byte, error)

	// Hmac returns the MAC of value under key.
	Hmac(value, key []byte, alg HashAlgorithm) ([]byte, error)

	// Compare reports whether a and b are equal in constant time.
	Compare(a, b []byte) bool

	// AesEncrypt encrypts data with AES-CBC and PKCS#7 padding.
	AesEncrypt(data, iv, key []byte) ([]byte, error)

	// AesDecrypt decrypts AES-CBC data and strips PKCS#7 padding.
	AesDecrypt(data, iv, key []byte) ([]byte, error)

	// RsaEncrypt encrypts with RSA-OAEP. publicKey is SPKI DER.
	RsaEncrypt(data, publicKey []byte, alg HashAlgorithm) ([]byte, error)

	// RsaDecrypt decrypts RSA-OAEP. privateKey is PKCS#8 DER.
	RsaDecrypt(data, privateKey []byte, alg HashAlgorithm) ([]byte, error)

	// RsaExtractPublicKey returns the SPKI DER public key of a PKCS#8 private key.
	RsaExtractPublicKey(privateKey []byte) ([]byte, error)

	// RsaGenerateKeyPair returns (SPKI public, PKCS#8 private) DER keys.
	RsaGenerateKeyPair(bits int) ([]byte, []byte, error)

	// RandomBytes returns n bytes from the OS CSPRNG.
	RandomBytes(n int) ([]byte, error)
}

// EncryptService performs envelope encryption with symmetric keys.
type EncryptService interface {
	// Encrypt encrypts plain into a text envelope of the key's type.
	Encrypt(plain []byte, key *SymmetricCryptoKey) (*EncString, error)

	// Decrypt verifies and decrypts a text envelope.
	Decrypt(enc *EncString, key *SymmetricCryptoKey) ([]byte, error)

	// EncryptToBytes encrypts plain into a binary envelope.
	EncryptToBytes(plain []byte, key *SymmetricCryptoKey) (*EncArrayBuffer, error)

	// DecryptToBytes verifies and decrypts a binary envelope.
	DecryptToBytes(enc *EncArrayBuffer, key *SymmetricCryptoKey) ([]byte, error)

	// WrapSymmetricKey encrypts the material of keyToWrap under wrappingKey.
	WrapSymmetricKey(keyToWrap, wrappingKey *SymmetricCryptoKey) (*EncString, error)

	// UnwrapSymmetricKey decrypts a wrapped key.
	UnwrapSymmetricKey(wrapped *EncString, wrappingKey *SymmetricCryptoKey) (*SymmetricCryptoKey, error)
}

// KeyGenerationService derives and generates keys.
//
//	MasterKey  = DeriveKeyFromPassword(password, salt, kdf)   (32 bytes)
//	Stretched  = StretchKey(MasterKey)                        (64 bytes, enc||mac)
//	UserKey    = CreateKey(512)
//	SendKey    = DeriveFromKeyMaterial(material, salt, "send")
type KeyGenerationService interface {
	// DeriveKeyFromPassword runs the configured KDF and returns a 32-byte key.
	DeriveKeyFromPassword(ctx context.Context, password, salt string, kdf KdfConfig) (*SymmetricCryptoKey, error)

	// StretchKey expands a 32-byte key into separate enc and mac halves.
	StretchKey(key *SymmetricCryptoKey) (*SymmetricCryptoKey, error)

	// CreateKey returns a random key of 256 or 512 bits.
	CreateKey(bits int) (*SymmetricCryptoKey, error)

	// DeriveFromKeyMaterial expands material into a 64-byte key for purpose.
	DeriveFromKeyMaterial(material []byte, salt, purpose string) (*SymmetricCryptoKey, error)
}

// KeyResolver supplies the key an envelope should be decrypted with when the
// caller does not pass one explicitly. An empty orgID means the user's own key.
type KeyResolver interface {
	ResolveKey(ctx context.Context, userID uuid.UUID, orgID string) (*SymmetricCryptoKey, error)
}
