// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"sync/atomic"

	"github.com/awnumar/memguard"
)

// SymmetricCryptoKey holds raw key material and its split into an encryption
// and a MAC sub-key. The value is immutable until [SymmetricCryptoKey.Destroy];
// accessors return copies. A destroyed key refuses every operation with
// [ErrKeyDestroyed].
//
// A 32-byte key is used directly for AES-256-CBC without a MAC. A 64-byte key
// is split into enc = [:32] and mac = [32:].
type SymmetricCryptoKey struct {
	key     []byte
	encKey  []byte
	macKey  []byte
	encType EncryptionType

	destroyed atomic.Bool
}

// NewSymmetricCryptoKey builds a key from 32 or 64 bytes of material. The
// input is copied.
func NewSymmetricCryptoKey(key []byte) (*SymmetricCryptoKey, error) {
	switch len(key) {
	case 32:
		return NewSymmetricCryptoKeyWithType(key, AesCbc256B64)
	case 64:
		return NewSymmetricCryptoKeyWithType(key, AesCbc256HmacSha256B64)
	}
	return nil, fmt.Errorf("%w: got %d bytes, want 32 or 64", ErrInvalidKeyLength, len(key))
}

// NewSymmetricCryptoKeyWithType builds a key for an explicit envelope type.
// It is needed for the legacy AesCbc128_HmacSha256_B64 keys, which are 32
// bytes split 16/16.
func NewSymmetricCryptoKeyWithType(key []byte, encType EncryptionType) (*SymmetricCryptoKey, error) {
	buf := make([]byte, len(key))
	copy(buf, key)

	k := &SymmetricCryptoKey{key: buf, encType: encType}
	switch {
	case encType == AesCbc256B64 && len(buf) == 32:
		k.encKey = buf
	case encType == AesCbc128HmacSha256B64 && len(buf) == 32:
		k.encKey = buf[:16]
		k.macKey = buf[16:]
	case encType == AesCbc256HmacSha256B64 && len(buf) == 64:
		k.encKey = buf[:32]
		k.macKey = buf[32:]
	default:
		memguard.WipeBytes(buf)
		return nil, fmt.Errorf("%w: %d bytes for %s", ErrInvalidKeyLength, len(key), encType)
	}

	return k, nil
}

// SymmetricCryptoKeyFromB64 decodes a standard base64 key.
func SymmetricCryptoKeyFromB64(s string) (*SymmetricCryptoKey, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: decode key: %w", ErrPrecondition, err)
	}
	defer memguard.WipeBytes(raw)

	return NewSymmetricCryptoKey(raw)
}

// Key returns a copy of the full key material.
func (k *SymmetricCryptoKey) Key() []byte { return clone(k.key) }

// EncKey returns a copy of the encryption sub-key.
func (k *SymmetricCryptoKey) EncKey() []byte { return clone(k.encKey) }

// MacKey returns a copy of the MAC sub-key, or nil when the key has none.
func (k *SymmetricCryptoKey) MacKey() []byte { return clone(k.macKey) }

// HasMacKey reports whether the key carries a MAC sub-key.
func (k *SymmetricCryptoKey) HasMacKey() bool { return len(k.macKey) > 0 }

// EncryptionType returns the envelope type produced by this key.
func (k *SymmetricCryptoKey) EncryptionType() EncryptionType { return k.encType }

// Len returns the length of the key material in bytes.
func (k *SymmetricCryptoKey) Len() int { return len(k.key) }

// KeyB64 returns the key material in standard base64. Only used to hand the
// key to a sealed storage tier.
func (k *SymmetricCryptoKey) KeyB64() string {
	return base64.StdEncoding.EncodeToString(k.key)
}

// Equal compares two keys in constant time.
func (k *SymmetricCryptoKey) Equal(other *SymmetricCryptoKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.encType == other.encType && subtle.ConstantTimeCompare(k.key, other.key) == 1
}

// Destroy zeroes the key material and marks the key unusable. It is safe to
// call more than once.
func (k *SymmetricCryptoKey) Destroy() {
	if k == nil {
		return
	}
	if k.destroyed.Swap(true) {
		return
	}
	memguard.WipeBytes(k.key)
}

// IsDestroyed reports whether [SymmetricCryptoKey.Destroy] was called.
func (k *SymmetricCryptoKey) IsDestroyed() bool {
	return k != nil && k.destroyed.Load()
}

// Clone returns an independent copy that can be destroyed without affecting
// k. Cloning a destroyed key fails with [ErrKeyDestroyed].
func (k *SymmetricCryptoKey) Clone() (*SymmetricCryptoKey, error) {
	if k == nil {
		return nil, ErrNoKey
	}
	if k.IsDestroyed() {
		return nil, ErrKeyDestroyed
	}

	out, err := NewSymmetricCryptoKeyWithType(k.key, k.encType)
	if err != nil {
		return nil, err
	}
	// Destroy may have raced the copy.
	if k.IsDestroyed() {
		out.Destroy()
		return nil, ErrKeyDestroyed
	}
	return out, nil
}

// String never prints key material.
func (k *SymmetricCryptoKey) String() string {
	if k == nil {
		return "SymmetricCryptoKey(nil)"
	}
	return fmt.Sprintf("SymmetricCryptoKey(%s, %d bytes)", k.encType, len(k.key))
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
