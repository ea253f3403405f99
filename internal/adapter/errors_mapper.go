package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:      ErrBadRequest,
	http.StatusUnauthorized:    ErrUnauthorized,
	http.StatusForbidden:       ErrForbidden,
	http.StatusNotFound:        ErrNotFound,
	http.StatusConflict:        ErrConflict,
	http.StatusTooManyRequests: ErrTooManyRequests,
}

// errorEnvelope is the JSON error body of the vault server.
type errorEnvelope struct {
	Message          string              `json:"message"`
	ValidationErrors map[string][]string `json:"validationErrors"`
}

// mapHTTPError returns nil for a 2xx response. Otherwise it returns the
// sentinel for the status wrapped with the server's message.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	msg := errorMessage(resp)

	sentinel, ok := statusErrors[resp.StatusCode()]
	if !ok && resp.StatusCode() >= http.StatusInternalServerError {
		sentinel, ok = ErrServerUnavailable, true
	}
	if !ok {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}

// errorMessage prefers the envelope's message and validation errors and falls
// back to the raw body, then to the status text.
func errorMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var envelope errorEnvelope
	if json.Unmarshal(resp.Body(), &envelope) == nil && (envelope.Message != "" || len(envelope.ValidationErrors) > 0) {
		return envelope.describe()
	}
	if body != "" {
		return body
	}
	return http.StatusText(resp.StatusCode())
}

func (e errorEnvelope) describe() string {
	fields := make([]string, 0, len(e.ValidationErrors))
	for field := range e.ValidationErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields)+1)
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e.ValidationErrors[field], ", "))
	}
	return strings.Join(parts, "; ")
}
