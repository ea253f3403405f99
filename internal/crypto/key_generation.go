// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"fmt"
	"math"

	"github.com/awnumar/memguard"
)

// keyGenerationService is the private implementation of [KeyGenerationService].
type keyGenerationService struct {
	fn CryptoFunctionService
}

// NewKeyGenerationService constructs a [KeyGenerationService] on top of fn.
func NewKeyGenerationService(fn CryptoFunctionService) KeyGenerationService {
	return &keyGenerationService{fn: fn}
}

// DeriveKeyFromPassword implements [KeyGenerationService]. The config is
// checked against the derivation floors first; an unknown KDF type is an
// error, never a fallback.
//
// For Argon2id the salt is hashed with SHA-256 before use and the memory
// cost is converted from MiB to KiB.
func (k *keyGenerationService) DeriveKeyFromPassword(ctx context.Context, password, salt string, kdf KdfConfig) (*SymmetricCryptoKey, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrPrecondition)
	}
	if salt == "" {
		return nil, fmt.Errorf("%w: salt is required", ErrPrecondition)
	}
	if err := kdf.ValidateForDerivation(); err != nil {
		return nil, err
	}
	// a derivation that has started runs to completion
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		raw []byte
		err error
	)
	switch kdf.KdfType {
	case PBKDF2SHA256:
		raw, err = k.fn.Pbkdf2([]byte(password), []byte(salt), SHA256, kdf.Iterations, 32)
	case Argon2id:
		parallelism := kdf.parallelism()
		if parallelism > math.MaxUint8 {
			return nil, fmt.Errorf("%w: argon2 parallelism %d", ErrKdfBelowMinimum, parallelism)
		}

		var saltHash []byte
		saltHash, err = k.fn.Hash([]byte(salt), SHA256)
		if err != nil {
			return nil, err
		}
		raw, err = k.fn.Argon2(
			[]byte(password),
			saltHash,
			uint32(kdf.Iterations),
			uint32(kdf.memoryMiB())*1024,
			uint8(parallelism),
		)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKdfType, int(kdf.KdfType))
	}
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer memguard.WipeBytes(raw)

	return NewSymmetricCryptoKey(raw)
}

// StretchKey implements [KeyGenerationService]. Two HKDF-Expand calls with
// info "enc" and "mac" produce the halves of the 64-byte result.
func (k *keyGenerationService) StretchKey(key *SymmetricCryptoKey) (*SymmetricCryptoKey, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: no key to stretch", ErrPrecondition)
	}
	if key.IsDestroyed() {
		return nil, ErrKeyDestroyed
	}
	if key.Len() != 32 {
		return nil, fmt.Errorf("%w: only 32 byte keys can be stretched, got %d", ErrInvalidKeyLength, key.Len())
	}

	enc, err := k.fn.HkdfExpand(key.key, []byte("enc"), 32, SHA256)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(enc)

	mac, err := k.fn.HkdfExpand(key.key, []byte("mac"), 32, SHA256)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(mac)

	stretched := make([]byte, 0, 64)
	stretched = append(stretched, enc...)
	stretched = append(stretched, mac...)
	defer memguard.WipeBytes(stretched)

	return NewSymmetricCryptoKey(stretched)
}

// CreateKey implements [KeyGenerationService].
func (k *keyGenerationService) CreateKey(bits int) (*SymmetricCryptoKey, error) {
	if bits != 256 && bits != 512 {
		return nil, fmt.Errorf("%w: key size must be 256 or 512 bits", ErrInvalidKeyLength)
	}

	raw, err := k.fn.RandomBytes(bits / 8)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(raw)

	return NewSymmetricCryptoKey(raw)
}

// DeriveFromKeyMaterial implements [KeyGenerationService].
func (k *keyGenerationService) DeriveFromKeyMaterial(material []byte, salt, purpose string) (*SymmetricCryptoKey, error) {
	if len(material) == 0 {
		return nil, fmt.Errorf("%w: key material is required", ErrPrecondition)
	}

	raw, err := k.fn.Hkdf(material, []byte(salt), []byte(purpose), 64, SHA256)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(raw)

	return NewSymmetricCryptoKey(raw)
}
