// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "strings"

// MasterPasswordSalt is the canonical salt fed to the KDF together with the
// master password. By default it is derived from the account email.
type MasterPasswordSalt string

// EmailToSalt canonicalizes an email address into a salt.
func EmailToSalt(email string) MasterPasswordSalt {
	return MasterPasswordSalt(strings.ToLower(strings.TrimSpace(email)))
}

// MasterPasswordAuthenticationData proves knowledge of the master password
// to the server. The hash is derived from the Master Key but is never the
// Master Key itself.
type MasterPasswordAuthenticationData struct {
	Salt                             MasterPasswordSalt `json:"salt"`
	Kdf                              KdfConfig          `json:"kdf"`
	MasterPasswordAuthenticationHash string             `json:"masterPasswordAuthenticationHash"`
}

// MasterPasswordUnlockData is everything needed to re-derive the Master Key
// and unwrap the User Key locally.
type MasterPasswordUnlockData struct {
	Salt                    MasterPasswordSalt `json:"salt"`
	Kdf                     KdfConfig          `json:"kdf"`
	MasterKeyWrappedUserKey *EncString         `json:"masterKeyWrappedUserKey"`
}
