// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/MKhiriev/go-pass-keycore/internal/crypto"

// SyncResponse is the subset of GET /api/sync the key core consumes. Vault
// items are ignored; only the key material and account metadata are read.
type SyncResponse struct {
	Profile        ProfileResponse         `json:"profile"`
	UserDecryption *UserDecryptionResponse `json:"userDecryption,omitempty"`
}

// ProfileResponse carries the account's wrapped keys.
type ProfileResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name,omitempty"`
	SecurityStamp string `json:"securityStamp"`

	// Key is the User Key wrapped under the stretched Master Key.
	Key string `json:"key,omitempty"`
	// PrivateKey is the PKCS#8 private key wrapped under the User Key.
	PrivateKey string `json:"privateKey,omitempty"`

	Organizations         []ProfileOrganization         `json:"organizations,omitempty"`
	ProviderOrganizations []ProfileProviderOrganization `json:"providerOrganizations,omitempty"`
	Providers             []ProfileProvider             `json:"providers,omitempty"`
}

// ProfileOrganization is an organization membership. Key is RSA-encrypted to
// the user's public key.
type ProfileOrganization struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

// ProfileProviderOrganization is an organization reached through a provider.
// Key is encrypted under the provider key.
type ProfileProviderOrganization struct {
	ID         string `json:"id"`
	Key        string `json:"key"`
	ProviderID string `json:"providerId"`
}

// ProfileProvider is a provider membership. Key is RSA-encrypted to the
// user's public key.
type ProfileProvider struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

// UserDecryptionResponse lists the unlock methods of the account.
type UserDecryptionResponse struct {
	MasterPasswordUnlock *MasterPasswordUnlockResponse `json:"masterPasswordUnlock,omitempty"`
}

// MasterPasswordUnlockResponse is the server form of
// [crypto.MasterPasswordUnlockData].
type MasterPasswordUnlockResponse struct {
	Kdf                       crypto.KdfConfig `json:"kdf"`
	MasterKeyEncryptedUserKey string           `json:"masterKeyEncryptedUserKey"`
	Salt                      string           `json:"salt"`
}
