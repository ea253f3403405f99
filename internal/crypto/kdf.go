// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
)

// KdfType selects the password KDF.
type KdfType int

const (
	PBKDF2SHA256 KdfType = 0
	Argon2id     KdfType = 1
)

func (t KdfType) String() string {
	switch t {
	case PBKDF2SHA256:
		return "PBKDF2_SHA256"
	case Argon2id:
		return "Argon2id"
	}
	return fmt.Sprintf("KdfType(%d)", int(t))
}

// RangeWithDefault is an inclusive range plus the value used for new keys.
type RangeWithDefault struct {
	Min     int
	Max     int
	Default int
}

// InRange reports whether v lies in [Min, Max].
func (r RangeWithDefault) InRange(v int) bool {
	return v >= r.Min && v <= r.Max
}

var (
	PBKDF2Iterations  = RangeWithDefault{Min: 600_000, Max: 2_000_000, Default: 600_000}
	Argon2Iterations  = RangeWithDefault{Min: 2, Max: 10, Default: 3}
	Argon2Memory      = RangeWithDefault{Min: 16, Max: 1024, Default: 64}
	Argon2Parallelism = RangeWithDefault{Min: 1, Max: 16, Default: 4}
)

// PBKDF2LegacyMinIterations is the hard floor below which a PBKDF2 config is
// never used, not even to decrypt existing data.
const PBKDF2LegacyMinIterations = 5000

// KdfConfig is the password KDF configuration of an account. Memory is in
// MiB. Memory and Parallelism are only meaningful for Argon2id.
type KdfConfig struct {
	KdfType     KdfType `json:"kdfType"`
	Iterations  int     `json:"iterations"`
	Memory      int     `json:"memory,omitempty"`
	Parallelism int     `json:"parallelism,omitempty"`
}

// NewPBKDF2KdfConfig returns a PBKDF2-SHA256 config. Zero iterations selects
// the default.
func NewPBKDF2KdfConfig(iterations int) KdfConfig {
	if iterations == 0 {
		iterations = PBKDF2Iterations.Default
	}
	return KdfConfig{KdfType: PBKDF2SHA256, Iterations: iterations}
}

// NewArgon2KdfConfig returns an Argon2id config. Zero values select the
// defaults.
func NewArgon2KdfConfig(iterations, memory, parallelism int) KdfConfig {
	if iterations == 0 {
		iterations = Argon2Iterations.Default
	}
	if memory == 0 {
		memory = Argon2Memory.Default
	}
	if parallelism == 0 {
		parallelism = Argon2Parallelism.Default
	}
	return KdfConfig{KdfType: Argon2id, Iterations: iterations, Memory: memory, Parallelism: parallelism}
}

// ValidateForDerivation checks the floors that apply to every derivation,
// including unlocking keys created under older minimums.
func (k KdfConfig) ValidateForDerivation() error {
	switch k.KdfType {
	case PBKDF2SHA256:
		if k.Iterations < PBKDF2LegacyMinIterations {
			return fmt.Errorf("%w: pbkdf2 iterations %d < %d", ErrKdfBelowMinimum, k.Iterations, PBKDF2LegacyMinIterations)
		}
	case Argon2id:
		if k.Iterations < Argon2Iterations.Min {
			return fmt.Errorf("%w: argon2 iterations %d < %d", ErrKdfBelowMinimum, k.Iterations, Argon2Iterations.Min)
		}
		if k.Memory != 0 && k.Memory < Argon2Memory.Min {
			return fmt.Errorf("%w: argon2 memory %d MiB < %d MiB", ErrKdfBelowMinimum, k.Memory, Argon2Memory.Min)
		}
		if k.Parallelism < 0 {
			return fmt.Errorf("%w: argon2 parallelism %d", ErrKdfBelowMinimum, k.Parallelism)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKdfType, int(k.KdfType))
	}
	return nil
}

// ValidateForNewKey checks the stricter ranges required before creating or
// re-wrapping key material. minPBKDF2 overrides the PBKDF2 minimum when
// greater than zero.
func (k KdfConfig) ValidateForNewKey(minPBKDF2 int) error {
	if err := k.ValidateForDerivation(); err != nil {
		return err
	}

	switch k.KdfType {
	case PBKDF2SHA256:
		r := PBKDF2Iterations
		if minPBKDF2 > 0 {
			r.Min = minPBKDF2
		}
		if !r.InRange(k.Iterations) {
			return fmt.Errorf("%w: pbkdf2 iterations must be between %d and %d", ErrKdfBelowMinimum, r.Min, r.Max)
		}
	case Argon2id:
		if !Argon2Iterations.InRange(k.Iterations) {
			return fmt.Errorf("%w: argon2 iterations must be between %d and %d",
				ErrKdfBelowMinimum, Argon2Iterations.Min, Argon2Iterations.Max)
		}
		if !Argon2Memory.InRange(k.memoryMiB()) {
			return fmt.Errorf("%w: argon2 memory must be between %d and %d MiB",
				ErrKdfBelowMinimum, Argon2Memory.Min, Argon2Memory.Max)
		}
		if !Argon2Parallelism.InRange(k.parallelism()) {
			return fmt.Errorf("%w: argon2 parallelism must be between %d and %d",
				ErrKdfBelowMinimum, Argon2Parallelism.Min, Argon2Parallelism.Max)
		}
	}
	return nil
}

// memoryMiB treats an unset memory cost as the historical default.
func (k KdfConfig) memoryMiB() int {
	if k.Memory == 0 {
		return Argon2Memory.Default
	}
	return k.Memory
}

// parallelism treats an unset parallelism as the historical default.
func (k KdfConfig) parallelism() int {
	if k.Parallelism == 0 {
		return Argon2Parallelism.Default
	}
	return k.Parallelism
}
