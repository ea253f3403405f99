package adapter

import "errors"

// Errors returned for non-2xx responses of the vault server. The server's
// message is appended to the wrapped error.
var (
	ErrBadRequest      = errors.New("bad request")
	ErrUnauthorized    = errors.New("client unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrTooManyRequests = errors.New("too many requests")
	// ErrServerUnavailable covers every 5xx status.
	ErrServerUnavailable = errors.New("vault server unavailable")
)
