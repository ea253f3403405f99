// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/awnumar/memguard"
)

// encryptService implements [EncryptService] with AES-CBC and an
// encrypt-then-MAC HMAC-SHA256 over iv||data.
type encryptService struct {
	fn CryptoFunctionService
}

// NewEncryptService constructs an [EncryptService] on top of fn.
func NewEncryptService(fn CryptoFunctionService) EncryptService {
	return &encryptService{fn: fn}
}

func (s *encryptService) Encrypt(plain []byte, key *SymmetricCryptoKey) (*EncString, error) {
	iv, data, mac, err := s.encryptParts(plain, key)
	if err != nil {
		return nil, err
	}

	return NewEncString(key.EncryptionType(), data, iv, mac)
}

func (s *encryptService) Decrypt(enc *EncString, key *SymmetricCryptoKey) ([]byte, error) {
	if enc == nil {
		return nil, fmt.Errorf("%w: nothing to decrypt", ErrPrecondition)
	}

	return s.decryptParts(enc.encryptionType, enc.iv, enc.data, enc.mac, key)
}

func (s *encryptService) EncryptToBytes(plain []byte, key *SymmetricCryptoKey) (*EncArrayBuffer, error) {
	iv, data, mac, err := s.encryptParts(plain, key)
	if err != nil {
		return nil, err
	}

	return NewEncArrayBuffer(key.EncryptionType(), data, iv, mac)
}

func (s *encryptService) DecryptToBytes(enc *EncArrayBuffer, key *SymmetricCryptoKey) ([]byte, error) {
	if enc == nil {
		return nil, fmt.Errorf("%w: nothing to decrypt", ErrPrecondition)
	}

	return s.decryptParts(enc.encryptionType, enc.iv, enc.data, enc.mac, key)
}

func (s *encryptService) WrapSymmetricKey(keyToWrap, wrappingKey *SymmetricCryptoKey) (*EncString, error) {
	if keyToWrap == nil {
		return nil, fmt.Errorf("%w: no key to wrap", ErrPrecondition)
	}
	if keyToWrap.IsDestroyed() {
		return nil, ErrKeyDestroyed
	}

	material := keyToWrap.Key()
	defer memguard.WipeBytes(material)
	if keyToWrap.IsDestroyed() {
		return nil, ErrKeyDestroyed
	}

	return s.Encrypt(material, wrappingKey)
}

func (s *encryptService) UnwrapSymmetricKey(wrapped *EncString, wrappingKey *SymmetricCryptoKey) (*SymmetricCryptoKey, error) {
	material, err := s.Decrypt(wrapped, wrappingKey)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(material)

	key, err := NewSymmetricCryptoKey(material)
	if err != nil {
		return nil, fmt.Errorf("%w: unwrapped material is not a key: %w", ErrDecryption, err)
	}
	return key, nil
}

func (s *encryptService) encryptParts(plain []byte, key *SymmetricCryptoKey) (iv, data, mac []byte, err error) {
	if key == nil {
		return nil, nil, nil, ErrNoKey
	}
	if key.IsDestroyed() {
		return nil, nil, nil, ErrKeyDestroyed
	}
	if plain == nil {
		return nil, nil, nil, fmt.Errorf("%w: nothing to encrypt", ErrPrecondition)
	}

	iv, err = s.fn.RandomBytes(ivLength)
	if err != nil {
		return nil, nil, nil, err
	}

	data, err = s.fn.AesEncrypt(plain, iv, key.encKey)
	if err != nil {
		return nil, nil, nil, err
	}

	if key.HasMacKey() {
		mac, err = s.fn.Hmac(append(clone(iv), data...), key.macKey, SHA256)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	// A key wiped while in use produced output under zeroed material.
	if key.IsDestroyed() {
		return nil, nil, nil, ErrKeyDestroyed
	}

	return iv, data, mac, nil
}

func (s *encryptService) decryptParts(encType EncryptionType, iv, data, mac []byte, key *SymmetricCryptoKey) ([]byte, error) {
	if key == nil {
		return nil, ErrNoKey
	}
	if key.IsDestroyed() {
		return nil, ErrKeyDestroyed
	}
	if encType.IsRSA() {
		return nil, fmt.Errorf("%w: %s needs a private key", ErrKeyTypeMismatch, encType)
	}
	if key.HasMacKey() && len(mac) == 0 {
		return nil, fmt.Errorf("%w: key requires a mac", ErrKeyTypeMismatch)
	}
	if key.EncryptionType() != encType {
		return nil, fmt.Errorf("%w: key is %s, envelope is %s", ErrKeyTypeMismatch, key.EncryptionType(), encType)
	}

	if key.HasMacKey() {
		if len(mac) != macLength {
			return nil, fmt.Errorf("%w: mac is %d bytes, want %d", ErrMalformedEnvelope, len(mac), macLength)
		}

		computed, err := s.fn.Hmac(append(clone(iv), data...), key.macKey, SHA256)
		if err != nil {
			return nil, err
		}
		if !s.fn.Compare(computed, mac) {
			return nil, ErrMacMismatch
		}
	}

	return s.fn.AesDecrypt(data, iv, key.encKey)
}
