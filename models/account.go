package models

import "github.com/google/uuid"

// AccountInfo is the locally stored identity of a logged-in account.
type AccountInfo struct {
	UserID        uuid.UUID `json:"userId"`
	Email         string    `json:"email"`
	Name          string    `json:"name,omitempty"`
	EmailVerified bool      `json:"emailVerified"`
}
