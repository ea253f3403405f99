// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the local API itself. Callers can match against them
// with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrEmptyAccessToken is returned by the login route when neither the
	// body nor the "Authorization" header carries a token.
	ErrEmptyAccessToken = errors.New("empty access token")

	// ErrTooManyUnlockAttempts is returned when the unlock limiter rejects a
	// request.
	ErrTooManyUnlockAttempts = errors.New("too many unlock attempts")

	// ErrNoUserIDInContext means a route of the active account was reached
	// without passing through withActiveAccount.
	ErrNoUserIDInContext = errors.New("no user id in request context")
)
