// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-keycore/internal/config"
	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
	"github.com/MKhiriev/go-pass-keycore/internal/logger"
	"github.com/MKhiriev/go-pass-keycore/models"
)

// newTestAdapter returns an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	assert.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Token ───────────────────────────────────────────────────────────────────

func TestSetToken_Trims(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")

	a.SetToken("  abc.def  ")
	assert.Equal(t, "abc.def", a.Token())

	a.SetToken("")
	assert.Empty(t, a.Token())
}

// ── GetSync ─────────────────────────────────────────────────────────────────

func TestGetSync_Success(t *testing.T) {
	want := models.SyncResponse{
		Profile: models.ProfileResponse{
			ID:            "0195f3a4-8e6c-7a2b-9d41-3c5e7f0a1b2c",
			Email:         "alice@example.com",
			SecurityStamp: "stamp-1",
			Key:           "2.AAAA|BBBB|CCCC",
			Organizations: []models.ProfileOrganization{{ID: "org-1", Key: "4.ZZZZ"}},
		},
		UserDecryption: &models.UserDecryptionResponse{
			MasterPasswordUnlock: &models.MasterPasswordUnlockResponse{
				Kdf:                       crypto.NewPBKDF2KdfConfig(0),
				MasterKeyEncryptedUserKey: "2.AAAA|BBBB|CCCC",
				Salt:                      "alice@example.com",
			},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/sync", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("excludeDomains"))
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		writeTestJSON(t, w, want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("token-1")

	got, err := a.GetSync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetSync_NoTokenHeaderWhenUnset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetSync(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetSync_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetSync(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode sync response")
}

// ── GetAccountRevisionDate ──────────────────────────────────────────────────

func TestGetAccountRevisionDate_Success(t *testing.T) {
	revision := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/accounts/revision-date", r.URL.Path)
		writeTestJSON(t, w, revision.UnixMilli())
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetAccountRevisionDate(context.Background())
	require.NoError(t, err)
	assert.True(t, revision.Equal(got))
}

func TestGetAccountRevisionDate_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no such account"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetAccountRevisionDate(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "no such account")
}

// ── PostKdf ─────────────────────────────────────────────────────────────────

func TestPostKdf_Success(t *testing.T) {
	req := models.KdfRequest{
		MasterPasswordHash:    "old-hash",
		NewMasterPasswordHash: "new-hash",
		Key:                   "2.AAAA|BBBB|CCCC",
		Kdf:                   crypto.NewPBKDF2KdfConfig(0),
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/accounts/kdf", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got models.KdfRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "old-hash", got.MasterPasswordHash)
		assert.Equal(t, "new-hash", got.NewMasterPasswordHash)
		assert.Equal(t, crypto.PBKDF2Iterations.Default, got.Kdf.Iterations)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("token-1")
	require.NoError(t, a.PostKdf(context.Background(), req))
}

func TestPostKdf_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("invalid master password"))
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).PostKdf(context.Background(), models.KdfRequest{})
	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── GetServerConfig ─────────────────────────────────────────────────────────

func TestGetServerConfig_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/config", r.URL.Path)
		writeTestJSON(t, w, map[string]any{
			"version":       "2026.3.0",
			"featureStates": map[string]bool{"pm-18021-force-update-kdf-settings": true},
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetServerConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2026.3.0", got.Version)
	assert.True(t, got.FeatureStates["pm-18021-force-update-kdf-settings"])
}

// ── PostPrelogin ────────────────────────────────────────────────────────────

func TestPostPrelogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/accounts/prelogin", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var req models.PreloginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.com", req.Email)

		writeTestJSON(t, w, map[string]any{"kdf": 1, "kdfIterations": 3, "kdfMemory": 64, "kdfParallelism": 4})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("token-1")
	a.SetToken("")

	got, err := a.PostPrelogin(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, crypto.NewArgon2KdfConfig(3, 64, 4), got.KdfConfig())
}

func TestPostPrelogin_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).PostPrelogin(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── mapHTTPError ────────────────────────────────────────────────────────────

func TestMapHTTPError_Statuses(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusTooManyRequests, ErrTooManyRequests},
		{http.StatusBadGateway, ErrServerUnavailable},
		{http.StatusInternalServerError, ErrServerUnavailable},
		{http.StatusServiceUnavailable, ErrServerUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).PostKdf(context.Background(), models.KdfRequest{})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).PostKdf(context.Background(), models.KdfRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestMapHTTPError_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"The model state is invalid.","validationErrors":{"kdfIterations":["Must be at least 600000."],"email":["Required."]}}`))
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).PostKdf(context.Background(), models.KdfRequest{})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "bad request: The model state is invalid.; email: Required.; kdfIterations: Must be at least 600000.", err.Error())
}

func TestMapHTTPError_PlainBodyAndEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/accounts/kdf" {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("  not allowed \n"))
			return
		}
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	err := a.PostKdf(context.Background(), models.KdfRequest{})
	require.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, "forbidden: not allowed", err.Error())

	_, err = a.PostPrelogin(context.Background(), "alice@example.com")
	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "conflict: Conflict", err.Error())
}

// ── client ──────────────────────────────────────────────────────────────────

func TestNewRestyClient_Settings(t *testing.T) {
	c, err := newRestyClient(config.Adapter{HTTPAddress: "vault.example.com/", RequestTimeout: 7 * time.Second, RetryCount: 3})
	require.NoError(t, err)

	assert.Equal(t, "http://vault.example.com", c.BaseURL)
	assert.Equal(t, 3, c.RetryCount)
	assert.Equal(t, userAgent, c.Header.Get("User-Agent"))
	assert.Equal(t, "application/json", c.Header.Get("Accept"))
}

func TestHTTPServerAdapter_SendsUserAgent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		writeTestJSON(t, w, map[string]any{"version": "2026.1.0"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetServerConfig(context.Background())
	require.NoError(t, err)
}

func TestHTTPServerAdapter_RetriesOnlyGets(t *testing.T) {
	var gets, posts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if gets.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			writeTestJSON(t, w, 1767225600000)
		default:
			posts.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	defer srv.Close()

	a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second, RetryCount: 2}, logger.Nop())
	require.NoError(t, err)

	revision, err := a.GetAccountRevisionDate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, time.UnixMilli(1767225600000).UTC(), revision)
	assert.Equal(t, int32(3), gets.Load())

	err = a.PostKdf(context.Background(), models.KdfRequest{})
	require.ErrorIs(t, err, ErrServerUnavailable)
	assert.Equal(t, int32(1), posts.Load(), "writes are sent once")
}

func TestShouldRetry(t *testing.T) {
	assert.False(t, shouldRetry(nil, errors.New("dial")))

	getReq := resty.New().R()
	getReq.Method = http.MethodGet
	assert.True(t, shouldRetry(&resty.Response{Request: getReq}, errors.New("connection reset")))

	postReq := resty.New().R()
	postReq.Method = http.MethodPost
	assert.False(t, shouldRetry(&resty.Response{Request: postReq}, errors.New("connection reset")))
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.Adapter{}, logger.Nop())
	require.Error(t, err)
}
