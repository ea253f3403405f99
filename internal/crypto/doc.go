// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the cryptographic building blocks of the key core:
// the password KDFs, key stretching, symmetric keys and the versioned
// ciphertext envelopes.
//
// Layers, leaves first:
//
//	CryptoFunctionService   raw primitives (pbkdf2, argon2, hkdf, aes, rsa, hmac)
//	KeyGenerationService    password -> Master Key, stretch, random keys
//	EncryptService          encrypt-then-MAC envelopes under a SymmetricCryptoKey
//	EncString / EncArrayBuffer   "<type>.<iv>|<data>|<mac>" text and binary forms
//
// Nothing here knows about users, storage or the network.
package crypto
