package keyctl

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
	"github.com/MKhiriev/go-pass-keycore/models"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand(models.NewAppBuildInfo("1.4.0", "2026-10-01", "abc123"))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func testEnvelope(t *testing.T) string {
	t.Helper()
	enc, err := crypto.NewEncString(crypto.AesCbc256HmacSha256B64, bytes.Repeat([]byte{1}, 48), bytes.Repeat([]byte{2}, 16), bytes.Repeat([]byte{3}, 32))
	require.NoError(t, err)
	return enc.String()
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.4.0 (built 2026-10-01, commit abc123)")
}

// ── envelope inspect ────────────────────────────────────────────────────────

func TestEnvelopeInspect(t *testing.T) {
	out, err := execute(t, "envelope", "inspect", testEnvelope(t))
	require.NoError(t, err)

	assert.Contains(t, out, "type: 2 (AesCbc256_HmacSha256_B64)")
	assert.Contains(t, out, "iv: 16 bytes")
	assert.Contains(t, out, "data: 48 bytes")
	assert.Contains(t, out, "mac: 32 bytes")
}

func TestEnvelopeInspect_JSON(t *testing.T) {
	out, err := execute(t, "envelope", "inspect", "--json", testEnvelope(t))
	require.NoError(t, err)

	var info envelopeInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, envelopeInfo{Type: 2, TypeName: "AesCbc256_HmacSha256_B64", IVLen: 16, DataLen: 48, MACLen: 32}, info)
}

func TestEnvelopeInspect_Malformed(t *testing.T) {
	_, err := execute(t, "envelope", "inspect", "2.not base64|x|y")
	assert.ErrorIs(t, err, crypto.ErrMalformedEnvelope)

	_, err = execute(t, "envelope", "inspect")
	assert.Error(t, err)
}

// ── derive ──────────────────────────────────────────────────────────────────

func TestDerive_PrintsFingerprintsNotKeys(t *testing.T) {
	out, err := execute(t, "derive", "--email", " Alice@Example.com ", "--password", "correct horse", "--iterations", "5000")
	require.NoError(t, err)

	fn := crypto.NewCryptoFunctionService()
	masterKey, err := crypto.NewKeyGenerationService(fn).DeriveKeyFromPassword(
		context.Background(), "correct horse", "alice@example.com", crypto.NewPBKDF2KdfConfig(5000))
	require.NoError(t, err)

	sum, err := fn.Hash(masterKey.Key(), crypto.SHA256)
	require.NoError(t, err)
	serverHash, err := fn.Pbkdf2(masterKey.Key(), []byte("correct horse"), crypto.SHA256, 1, 32)
	require.NoError(t, err)

	assert.Contains(t, out, "salt: alice@example.com")
	assert.Contains(t, out, "kdf: PBKDF2_SHA256 iterations=5000")
	assert.Contains(t, out, "master key fingerprint: "+base64.StdEncoding.EncodeToString(sum))
	assert.Contains(t, out, "server authorization hash: "+base64.StdEncoding.EncodeToString(serverHash))
	assert.Contains(t, out, "stretched key fingerprint: ")
	assert.NotContains(t, out, base64.StdEncoding.EncodeToString(masterKey.Key()))
}

func TestDerive_KdfFromServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/accounts/prelogin", r.URL.Path)

		var req models.PreloginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.com", req.Email)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.PreloginResponse{Kdf: crypto.PBKDF2SHA256, KdfIterations: 7000})
	}))
	defer srv.Close()

	out, err := execute(t, "derive", "--email", "Alice@Example.com", "--password", "pw", "--iterations", "5000", "--server", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "kdf: PBKDF2_SHA256 iterations=7000")
}

func TestDerive_ServerUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := execute(t, "derive", "--email", "a@b.c", "--password", "pw", "--server", srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prelogin")
}

func TestDerive_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"no password", []string{"derive", "--email", "a@b.c"}, errPasswordRequired},
		{"unknown kdf", []string{"derive", "--email", "a@b.c", "--password", "pw", "--kdf", "scrypt"}, crypto.ErrUnknownKdfType},
		{"below derivation floor", []string{"derive", "--email", "a@b.c", "--password", "pw", "--iterations", "10"}, crypto.ErrKdfBelowMinimum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── kdf validate ────────────────────────────────────────────────────────────

func TestKdfValidate(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantErr      error
		wantContains []string
	}{
		{
			name:         "pbkdf2 default",
			args:         []string{"kdf", "validate"},
			wantContains: []string{"PBKDF2_SHA256 iterations=600000: allowed for new keys"},
		},
		{
			name:         "argon2id default",
			args:         []string{"kdf", "validate", "--kdf", "argon2id"},
			wantContains: []string{"Argon2id iterations=3 memory=64MiB parallelism=4: allowed for new keys"},
		},
		{
			name:         "legacy pbkdf2 only usable for derivation",
			args:         []string{"kdf", "validate", "--iterations", "5000"},
			wantErr:      crypto.ErrKdfBelowMinimum,
			wantContains: []string{"usable for derivation"},
		},
		{
			name:    "below the derivation floor",
			args:    []string{"kdf", "validate", "--iterations", "100"},
			wantErr: crypto.ErrKdfBelowMinimum,
		},
		{
			name:    "raised minimum",
			args:    []string{"kdf", "validate", "--iterations", "600000", "--min-pbkdf2", "700000"},
			wantErr: crypto.ErrKdfBelowMinimum,
		},
		{
			name:    "argon2id memory out of range",
			args:    []string{"kdf", "validate", "--kdf", "argon2id", "--memory", "4096"},
			wantErr: crypto.ErrKdfBelowMinimum,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			for _, want := range tt.wantContains {
				assert.Contains(t, out, want)
			}
		})
	}
}
