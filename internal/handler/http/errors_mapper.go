package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-keycore/internal/adapter"
	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
	"github.com/MKhiriev/go-pass-keycore/internal/service"
	"github.com/MKhiriev/go-pass-keycore/models"
)

// errorStatuses is checked in order. Several service errors wrap crypto
// errors, so the service errors come first. Vault server rejections that the
// caller can act on are matched before the generic server failure.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrEmptyAccessToken, http.StatusBadRequest},
	{ErrTooManyUnlockAttempts, http.StatusTooManyRequests},
	{ErrNoUserIDInContext, http.StatusInternalServerError},

	{service.ErrWrongMasterPassword, http.StatusUnauthorized},
	{service.ErrMasterPasswordRequired, http.StatusBadRequest},
	{service.ErrUserIDRequired, http.StatusBadRequest},
	{service.ErrUnlockDataNotFound, http.StatusNotFound},
	{service.ErrKdfConfigNotFound, http.StatusNotFound},
	{service.ErrAccountNotFound, http.StatusNotFound},
	{service.ErrNoActiveAccount, http.StatusUnauthorized},
	{service.ErrInvalidAccessToken, http.StatusBadRequest},
	{service.ErrAccountDeleted, http.StatusGone},
	{service.ErrSecurityStampChanged, http.StatusConflict},
	{adapter.ErrUnauthorized, http.StatusUnauthorized},
	{adapter.ErrTooManyRequests, http.StatusTooManyRequests},
	{service.ErrServerRequestFailed, http.StatusBadGateway},

	{crypto.ErrKdfBelowMinimum, http.StatusBadRequest},
	{crypto.ErrNoKey, http.StatusLocked},
	{crypto.ErrPrecondition, http.StatusBadRequest},
	{crypto.ErrDecryption, http.StatusUnprocessableEntity},
	{crypto.ErrUnsupportedEncoding, http.StatusUnprocessableEntity},

	{context.DeadlineExceeded, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError writes err as an [models.ErrorResponse] with the mapped status.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, models.ErrorResponse{Error: err.Error()}, statusFromError(err))
}
