package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenClaims are the claims of the identity server access token the
// agent receives at login.
//
// The token is parsed without verifying its signature: the agent only reads
// its own identity from it, the server verifies it on every request.
type AccessTokenClaims struct {
	jwt.RegisteredClaims

	Email         string `json:"email"`
	Name          string `json:"name,omitempty"`
	EmailVerified bool   `json:"email_verified"`
}

// UserID parses the "sub" claim as a UUID.
func (c *AccessTokenClaims) UserID() (uuid.UUID, error) {
	sub, err := c.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("error extracting subject from token: %w", err)
	}

	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("error converting subject to user id: %w", err)
	}
	return id, nil
}

// Account converts the claims to an [AccountInfo].
func (c *AccessTokenClaims) Account() (AccountInfo, error) {
	id, err := c.UserID()
	if err != nil {
		return AccountInfo{}, err
	}
	return AccountInfo{UserID: id, Email: c.Email, Name: c.Name, EmailVerified: c.EmailVerified}, nil
}
