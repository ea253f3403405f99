// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"strconv"
)

// EncryptionType is the one-byte tag that prefixes every envelope. It
// identifies the cipher and whether a MAC is present.
type EncryptionType uint8

const (
	AesCbc256B64                   EncryptionType = 0
	AesCbc128HmacSha256B64         EncryptionType = 1
	AesCbc256HmacSha256B64         EncryptionType = 2
	Rsa2048OaepSha256B64           EncryptionType = 3
	Rsa2048OaepSha1B64             EncryptionType = 4
	Rsa2048OaepSha256HmacSha256B64 EncryptionType = 5
	Rsa2048OaepSha1HmacSha256B64   EncryptionType = 6
)

const (
	ivLength  = 16
	macLength = 32
)

var encryptionTypeNames = map[EncryptionType]string{
	AesCbc256B64:                   "AesCbc256_B64",
	AesCbc128HmacSha256B64:         "AesCbc128_HmacSha256_B64",
	AesCbc256HmacSha256B64:         "AesCbc256_HmacSha256_B64",
	Rsa2048OaepSha256B64:           "Rsa2048_OaepSha256_B64",
	Rsa2048OaepSha1B64:             "Rsa2048_OaepSha1_B64",
	Rsa2048OaepSha256HmacSha256B64: "Rsa2048_OaepSha256_HmacSha256_B64",
	Rsa2048OaepSha1HmacSha256B64:   "Rsa2048_OaepSha1_HmacSha256_B64",
}

// String returns the canonical name of the type.
func (t EncryptionType) String() string {
	if name, ok := encryptionTypeNames[t]; ok {
		return name
	}
	return "EncryptionType(" + strconv.Itoa(int(t)) + ")"
}

// Valid reports whether t is a known encryption type.
func (t EncryptionType) Valid() bool {
	_, ok := encryptionTypeNames[t]
	return ok
}

// IsRSA reports whether t is one of the asymmetric types.
func (t EncryptionType) IsRSA() bool {
	return t >= Rsa2048OaepSha256B64 && t <= Rsa2048OaepSha1HmacSha256B64
}

// HasMAC reports whether envelopes of this type carry a MAC.
func (t EncryptionType) HasMAC() bool {
	switch t {
	case AesCbc128HmacSha256B64, AesCbc256HmacSha256B64,
		Rsa2048OaepSha256HmacSha256B64, Rsa2048OaepSha1HmacSha256B64:
		return true
	}
	return false
}

// HasIV reports whether envelopes of this type carry an initialization vector.
func (t EncryptionType) HasIV() bool {
	return t.Valid() && !t.IsRSA()
}

// pieceCount is the number of pipe-delimited segments of the text form.
func (t EncryptionType) pieceCount() int {
	n := 1
	if t.HasIV() {
		n++
	}
	if t.HasMAC() {
		n++
	}
	return n
}

// RSAHashAlgorithm returns the OAEP hash used by an RSA type.
func (t EncryptionType) RSAHashAlgorithm() (HashAlgorithm, error) {
	switch t {
	case Rsa2048OaepSha256B64, Rsa2048OaepSha256HmacSha256B64:
		return SHA256, nil
	case Rsa2048OaepSha1B64, Rsa2048OaepSha1HmacSha256B64:
		return SHA1, nil
	}
	return "", fmt.Errorf("%w: %s is not an RSA type", ErrUnsupportedEncoding, t)
}
