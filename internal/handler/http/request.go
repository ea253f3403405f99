package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-keycore/internal/utils"
)

// decodeJSON decodes the request body into v. An empty body leaves v as is.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// writeJSON encodes v with the given status. Responses may carry account
// state, so they are never cached.
func writeJSON(w http.ResponseWriter, v any, status int) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "error encoding response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func userIDFromRequest(r *http.Request) (uuid.UUID, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, ErrNoUserIDInContext
	}
	return userID, nil
}
