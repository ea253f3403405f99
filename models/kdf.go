package models

import "github.com/MKhiriev/go-pass-keycore/internal/crypto"

// KdfRequest is sent to POST /api/accounts/kdf to change the KDF of an
// account. The old authentication hash proves knowledge of the password;
// the new authentication and unlock data replace the stored ones.
type KdfRequest struct {
	AuthenticationData    crypto.MasterPasswordAuthenticationData `json:"authenticationData"`
	UnlockData            crypto.MasterPasswordUnlockData         `json:"unlockData"`
	MasterPasswordHash    string                                  `json:"masterPasswordHash"`
	NewMasterPasswordHash string                                  `json:"newMasterPasswordHash"`
	Key                   string                                  `json:"key"`
	Kdf                   crypto.KdfConfig                        `json:"kdf"`
}

// PreloginRequest is sent to POST /api/accounts/prelogin before login to
// learn how the master key of an account is derived.
type PreloginRequest struct {
	Email string `json:"email"`
}

// PreloginResponse carries the KDF of the account. Servers that predate
// Argon2id omit memory and parallelism.
type PreloginResponse struct {
	Kdf            crypto.KdfType `json:"kdf"`
	KdfIterations  int            `json:"kdfIterations"`
	KdfMemory      int            `json:"kdfMemory,omitempty"`
	KdfParallelism int            `json:"kdfParallelism,omitempty"`
}

// KdfConfig returns the response as a [crypto.KdfConfig].
func (p PreloginResponse) KdfConfig() crypto.KdfConfig {
	return crypto.KdfConfig{
		KdfType:     p.Kdf,
		Iterations:  p.KdfIterations,
		Memory:      p.KdfMemory,
		Parallelism: p.KdfParallelism,
	}
}
