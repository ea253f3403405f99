// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const typedEnvelope = "2.AAAAAAAAAAAAAAAAAAAAAA==|ZGF0YQ==|bWFjbWFjbWFjbWFjbWFjbWFjbWFjbWFjbWFjbWFjbWFjbWFjbWFjMA=="

// ─────────────────────────────────────────────────────────────────────────────
// ParseEncString
// ─────────────────────────────────────────────────────────────────────────────

func TestParseEncString_TypedEnvelope(t *testing.T) {
	e, err := ParseEncString(typedEnvelope)
	require.NoError(t, err)

	assert.Equal(t, AesCbc256HmacSha256B64, e.EncryptionType())
	assert.Equal(t, make([]byte, 16), e.IV())
	assert.Equal(t, []byte("data"), e.Data())
	assert.Len(t, e.MAC(), 40)
	assert.Equal(t, typedEnvelope, e.String())
}

func TestParseEncString_LegacyInference(t *testing.T) {
	iv := "AAAAAAAAAAAAAAAAAAAAAA=="

	tests := []struct {
		name  string
		input string
		want  EncryptionType
	}{
		{name: "three pieces", input: iv + "|ZGF0YQ==|bWFj", want: AesCbc128HmacSha256B64},
		{name: "two pieces", input: iv + "|ZGF0YQ==", want: AesCbc256B64},
		{name: "one piece", input: "ZGF0YQ==", want: Rsa2048OaepSha256B64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := ParseEncString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.EncryptionType())
			assert.Equal(t, []byte("data"), e.Data())
		})
	}
}

func TestParseEncString_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty", input: "", wantErr: ErrPrecondition},
		{name: "unknown type", input: "9.AAAA|AAAA", wantErr: ErrUnknownEncryptionType},
		{name: "non numeric type", input: "x.AAAA|AAAA", wantErr: ErrUnknownEncryptionType},
		{name: "too few pieces", input: "2.AAAAAAAAAAAAAAAAAAAAAA==|ZGF0YQ==", wantErr: ErrMalformedEnvelope},
		{name: "too many pieces", input: "0.AAAAAAAAAAAAAAAAAAAAAA==|ZGF0YQ==|bWFj", wantErr: ErrMalformedEnvelope},
		{name: "bad base64", input: "0.AAAAAAAAAAAAAAAAAAAAAA==|!!!", wantErr: ErrMalformedEnvelope},
		{name: "short iv", input: "0.AAAA|ZGF0YQ==", wantErr: ErrMalformedEnvelope},
		{name: "empty data", input: "0.AAAAAAAAAAAAAAAAAAAAAA==|", wantErr: ErrMalformedEnvelope},
		{name: "legacy four pieces", input: "a|b|c|d", wantErr: ErrMalformedEnvelope},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEncString(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, IsEncString(tt.input))
		})
	}
}

func TestParseEncString_ErrorClasses(t *testing.T) {
	_, err := ParseEncString("9.AAAA")
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)

	_, err = ParseEncString("")
	assert.ErrorIs(t, err, ErrPrecondition)
	assert.False(t, errors.Is(err, ErrUnsupportedEncoding))
}

// ─────────────────────────────────────────────────────────────────────────────
// NewEncString
// ─────────────────────────────────────────────────────────────────────────────

func TestNewEncString_RoundTripsThroughParse(t *testing.T) {
	iv := bytes.Repeat([]byte{1}, 16)
	data := []byte("ciphertext")
	mac := bytes.Repeat([]byte{2}, 32)

	e, err := NewEncString(AesCbc256HmacSha256B64, data, iv, mac)
	require.NoError(t, err)
	assert.Equal(t, byte('2'), e.String()[0])

	parsed, err := ParseEncString(e.String())
	require.NoError(t, err)
	assert.Equal(t, e.EncryptionType(), parsed.EncryptionType())
	assert.Equal(t, iv, parsed.IV())
	assert.Equal(t, data, parsed.Data())
	assert.Equal(t, mac, parsed.MAC())
}

func TestNewEncString_RSAHasNoIV(t *testing.T) {
	e, err := NewEncString(Rsa2048OaepSha1B64, []byte("rsa"), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "4.cnNh", e.String())
	assert.Nil(t, e.IV())
	assert.Nil(t, e.MAC())
}

func TestNewEncString_MissingCompanions(t *testing.T) {
	iv := make([]byte, 16)
	mac := make([]byte, 32)

	_, err := NewEncString(AesCbc256HmacSha256B64, []byte("d"), iv, nil)
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = NewEncString(AesCbc256HmacSha256B64, []byte("d"), nil, mac)
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = NewEncString(AesCbc256B64, []byte("d"), iv, mac)
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = NewEncString(AesCbc256B64, nil, iv, nil)
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestEncString_JSON(t *testing.T) {
	type wrapper struct {
		Key *EncString `json:"key"`
	}

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"key":"`+typedEnvelope+`"}`), &w))
	require.NotNil(t, w.Key)
	assert.Equal(t, AesCbc256HmacSha256B64, w.Key.EncryptionType())

	out, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"`+typedEnvelope+`"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"key":"9.AAAA"}`), &w))
}

// ─────────────────────────────────────────────────────────────────────────────
// EncString.Decrypt
// ─────────────────────────────────────────────────────────────────────────────

type staticResolver struct {
	key *SymmetricCryptoKey
	err error
}

func (r staticResolver) ResolveKey(context.Context, uuid.UUID, string) (*SymmetricCryptoKey, error) {
	return r.key, r.err
}

func TestEncString_Decrypt(t *testing.T) {
	svc := NewEncryptService(NewCryptoFunctionService())
	key := mustKey(t, 64, 0x11)
	other := mustKey(t, 64, 0x22)

	enc, err := svc.Encrypt([]byte("hello"), key)
	require.NoError(t, err)

	ctx := context.Background()
	userID := uuid.New()

	t.Run("explicit key", func(t *testing.T) {
		got, err := enc.Decrypt(ctx, svc, key, nil, userID, "")
		require.NoError(t, err)
		assert.Equal(t, "hello", got)
	})

	t.Run("resolved key", func(t *testing.T) {
		got, err := enc.Decrypt(ctx, svc, nil, staticResolver{key: key}, userID, "")
		require.NoError(t, err)
		assert.Equal(t, "hello", got)
	})

	t.Run("resolver fails", func(t *testing.T) {
		_, err := enc.Decrypt(ctx, svc, nil, staticResolver{err: errors.New("locked")}, userID, "org")
		assert.ErrorIs(t, err, ErrNoKey)
	})

	t.Run("no resolver", func(t *testing.T) {
		_, err := enc.Decrypt(ctx, svc, nil, nil, userID, "")
		assert.ErrorIs(t, err, ErrNoKey)
	})

	t.Run("wrong key", func(t *testing.T) {
		got, err := enc.Decrypt(ctx, svc, other, nil, userID, "")
		assert.ErrorIs(t, err, ErrMacMismatch)
		assert.Equal(t, DecryptErrorValue, got)
	})
}

func mustKey(t *testing.T, size int, fill byte) *SymmetricCryptoKey {
	t.Helper()

	k, err := NewSymmetricCryptoKey(bytes.Repeat([]byte{fill}, size))
	require.NoError(t, err)
	return k
}
