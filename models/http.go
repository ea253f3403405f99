package models

import "github.com/google/uuid"

// LoginTokenRequest hands the agent the access token obtained at login.
type LoginTokenRequest struct {
	AccessToken string `json:"accessToken"`
}

// MasterPasswordRequest carries the master password for unlock and
// migration requests.
type MasterPasswordRequest struct {
	MasterPassword string `json:"masterPassword"`
}

// StatusResponse describes the active account as seen by the agent.
type StatusResponse struct {
	UserID    uuid.UUID `json:"userId"`
	Email     string    `json:"email"`
	Unlocked  bool      `json:"unlocked"`
	Migrating bool      `json:"migrating"`
}

// FingerprintResponse carries the fingerprint phrase of the active account's
// public key.
type FingerprintResponse struct {
	Phrase []string `json:"phrase"`
}

// ErrorResponse is the body of every non-2xx local API response.
type ErrorResponse struct {
	Error string `json:"error"`
}
