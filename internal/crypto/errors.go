// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

// Root error classes. Every error produced by this package wraps exactly one
// of them, so callers can branch on the class with [errors.Is].
var (
	// ErrPrecondition is returned when a required argument is missing or
	// empty. It is raised before any cryptographic work is performed.
	ErrPrecondition = errors.New("precondition failed")

	// ErrUnsupportedEncoding is returned for an unknown encryption type,
	// KDF type or a structurally invalid envelope.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrDecryption is returned when a MAC check, padding check or RSA
	// decryption fails, i.e. the key is wrong or the data is corrupted.
	ErrDecryption = errors.New("decryption failed")

	// ErrConfiguration is returned when KDF parameters are below the
	// accepted minimums.
	ErrConfiguration = errors.New("invalid crypto configuration")
)

var (
	// ErrInvalidKeyLength is returned when key material has a length that no
	// symmetric key type accepts.
	ErrInvalidKeyLength = fmt.Errorf("%w: invalid key length", ErrPrecondition)

	// ErrNoKey is returned when no key could be resolved for an operation.
	ErrNoKey = fmt.Errorf("%w: no key available", ErrPrecondition)

	// ErrKeyDestroyed is returned when a key is used after it was destroyed,
	// for example by a lock that raced the operation.
	ErrKeyDestroyed = fmt.Errorf("%w: key destroyed", ErrNoKey)

	// ErrMalformedEnvelope is returned when an envelope cannot be split into
	// the pieces its type requires.
	ErrMalformedEnvelope = fmt.Errorf("%w: malformed envelope", ErrUnsupportedEncoding)

	// ErrUnknownEncryptionType is returned for an unrecognized type tag.
	ErrUnknownEncryptionType = fmt.Errorf("%w: unknown encryption type", ErrUnsupportedEncoding)

	// ErrUnknownKdfType is returned for an unrecognized KDF type.
	ErrUnknownKdfType = fmt.Errorf("%w: unknown kdf type", ErrUnsupportedEncoding)

	// ErrMacMismatch means the key is wrong or the ciphertext was tampered with.
	ErrMacMismatch = fmt.Errorf("%w: mac mismatch", ErrDecryption)

	// ErrInvalidPadding means the ciphertext decrypted to garbage.
	ErrInvalidPadding = fmt.Errorf("%w: invalid padding", ErrDecryption)

	// ErrKeyTypeMismatch means the key cannot decrypt envelopes of this type.
	ErrKeyTypeMismatch = fmt.Errorf("%w: key type does not match envelope type", ErrDecryption)

	// ErrKdfBelowMinimum is returned when KDF parameters are under the floor.
	ErrKdfBelowMinimum = fmt.Errorf("%w: kdf parameters below minimum", ErrConfiguration)
)

// DecryptErrorValue is the display-safe value returned in place of a
// plaintext that could not be decrypted.
const DecryptErrorValue = "[error: cannot decrypt]"
