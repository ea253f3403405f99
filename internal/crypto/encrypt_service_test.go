// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptService_RoundTrip(t *testing.T) {
	svc := NewEncryptService(NewCryptoFunctionService())

	legacy, err := NewSymmetricCryptoKeyWithType(bytes.Repeat([]byte{7}, 32), AesCbc128HmacSha256B64)
	require.NoError(t, err)

	tests := []struct {
		name     string
		key      *SymmetricCryptoKey
		wantType EncryptionType
		wantMAC  bool
	}{
		{name: "aes256 no mac", key: mustKey(t, 32, 1), wantType: AesCbc256B64},
		{name: "aes128 hmac", key: legacy, wantType: AesCbc128HmacSha256B64, wantMAC: true},
		{name: "aes256 hmac", key: mustKey(t, 64, 2), wantType: AesCbc256HmacSha256B64, wantMAC: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plain := []byte("the quick brown fox jumps over the lazy dog")

			enc, err := svc.Encrypt(plain, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, enc.EncryptionType())
			assert.Len(t, enc.IV(), 16)
			assert.Equal(t, tt.wantMAC, len(enc.MAC()) == 32)

			parsed, err := ParseEncString(enc.String())
			require.NoError(t, err)

			got, err := svc.Decrypt(parsed, tt.key)
			require.NoError(t, err)
			assert.Equal(t, plain, got)
		})
	}
}

func TestEncryptService_FreshIVPerCall(t *testing.T) {
	svc := NewEncryptService(NewCryptoFunctionService())
	key := mustKey(t, 64, 3)

	a, err := svc.Encrypt([]byte("same"), key)
	require.NoError(t, err)
	b, err := svc.Encrypt([]byte("same"), key)
	require.NoError(t, err)

	assert.NotEqual(t, a.IV(), b.IV())
	assert.NotEqual(t, a.String(), b.String())
}

func TestEncryptService_WrongKeyIsMacMismatch(t *testing.T) {
	svc := NewEncryptService(NewCryptoFunctionService())

	enc, err := svc.Encrypt([]byte("secret"), mustKey(t, 64, 1))
	require.NoError(t, err)

	_, err = svc.Decrypt(enc, mustKey(t, 64, 2))
	assert.ErrorIs(t, err, ErrMacMismatch)
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestEncryptService_TamperedDataIsMacMismatch(t *testing.T) {
	svc := NewEncryptService(NewCryptoFunctionService())
	key := mustKey(t, 64, 1)

	enc, err := svc.Encrypt([]byte("secret"), key)
	require.NoError(t, err)

	data := enc.Data()
	data[0] ^= 0xff
	tampered, err := NewEncString(enc.EncryptionType(), data, enc.IV(), enc.MAC())
	require.NoError(t, err)

	_, err = svc.Decrypt(tampered, key)
	assert.ErrorIs(t, err, ErrMacMismatch)
}

func TestEncryptService_NonCanonicalMacLength(t *testing.T) {
	svc := NewEncryptService(NewCryptoFunctionService())

	enc, err := ParseEncString(typedEnvelope)
	require.NoError(t, err)

	_, err = svc.Decrypt(enc, mustKey(t, 64, 1))
	assert.ErrorIs(t, err, ErrMalformedEnvelope)
}

func TestEncryptService_KeyTypeMismatch(t *testing.T) {
	svc := NewEncryptService(NewCryptoFunctionService())

	noMac, err := svc.Encrypt([]byte("x"), mustKey(t, 32, 1))
	require.NoError(t, err)

	_, err = svc.Decrypt(noMac, mustKey(t, 64, 1))
	assert.ErrorIs(t, err, ErrKeyTypeMismatch)

	withMac, err := svc.Encrypt([]byte("x"), mustKey(t, 64, 1))
	require.NoError(t, err)

	_, err = svc.Decrypt(withMac, mustKey(t, 32, 1))
	assert.ErrorIs(t, err, ErrKeyTypeMismatch)

	rsa, err := NewEncString(Rsa2048OaepSha256B64, []byte("x"), nil, nil)
	require.NoError(t, err)

	_, err = svc.Decrypt(rsa, mustKey(t, 64, 1))
	assert.ErrorIs(t, err, ErrKeyTypeMismatch)
}

func TestEncryptService_Preconditions(t *testing.T) {
	svc := NewEncryptService(NewCryptoFunctionService())

	_, err := svc.Encrypt([]byte("x"), nil)
	assert.ErrorIs(t, err, ErrNoKey)

	_, err = svc.Encrypt(nil, mustKey(t, 64, 1))
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = svc.Decrypt(nil, mustKey(t, 64, 1))
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = svc.WrapSymmetricKey(nil, mustKey(t, 64, 1))
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestEncryptService_Bytes(t *testing.T) {
	svc := NewEncryptService(NewCryptoFunctionService())
	key := mustKey(t, 64, 9)
	plain := bytes.Repeat([]byte("attachment"), 100)

	enc, err := svc.EncryptToBytes(plain, key)
	require.NoError(t, err)
	assert.Equal(t, byte(AesCbc256HmacSha256B64), enc.Bytes()[0])

	parsed, err := ParseEncArrayBuffer(enc.Bytes())
	require.NoError(t, err)

	got, err := svc.DecryptToBytes(parsed, key)
	require.NoError(t, err)
	assert.Equal(t, plain, got)

	_, err = svc.DecryptToBytes(parsed, mustKey(t, 64, 8))
	assert.ErrorIs(t, err, ErrMacMismatch)
}

func TestEncryptService_WrapUnwrap(t *testing.T) {
	svc := NewEncryptService(NewCryptoFunctionService())
	gen := NewKeyGenerationService(NewCryptoFunctionService())

	userKey, err := gen.CreateKey(512)
	require.NoError(t, err)
	wrapping := mustKey(t, 64, 5)

	wrapped, err := svc.WrapSymmetricKey(userKey, wrapping)
	require.NoError(t, err)

	unwrapped, err := svc.UnwrapSymmetricKey(wrapped, wrapping)
	require.NoError(t, err)
	assert.True(t, userKey.Equal(unwrapped))

	_, err = svc.UnwrapSymmetricKey(wrapped, mustKey(t, 64, 6))
	assert.ErrorIs(t, err, ErrMacMismatch)
}

func TestEncryptService_UnwrapRejectsNonKeyMaterial(t *testing.T) {
	svc := NewEncryptService(NewCryptoFunctionService())
	wrapping := mustKey(t, 64, 5)

	enc, err := svc.Encrypt([]byte("not a key"), wrapping)
	require.NoError(t, err)

	_, err = svc.UnwrapSymmetricKey(enc, wrapping)
	assert.ErrorIs(t, err, ErrDecryption)
}

// ─────────────────────────────────────────────────────────────────────────────
// SymmetricCryptoKey
// ─────────────────────────────────────────────────────────────────────────────

func TestSymmetricCryptoKey_Split(t *testing.T) {
	raw := make([]byte, 64)
	for i := range raw {
		raw[i] = byte(i)
	}

	k, err := NewSymmetricCryptoKey(raw)
	require.NoError(t, err)
	assert.Equal(t, AesCbc256HmacSha256B64, k.EncryptionType())
	assert.Equal(t, raw[:32], k.EncKey())
	assert.Equal(t, raw[32:], k.MacKey())

	short, err := NewSymmetricCryptoKey(raw[:32])
	require.NoError(t, err)
	assert.Equal(t, AesCbc256B64, short.EncryptionType())
	assert.False(t, short.HasMacKey())

	_, err = NewSymmetricCryptoKey(raw[:48])
	assert.ErrorIs(t, err, ErrInvalidKeyLength)
}

func TestSymmetricCryptoKey_FromB64AndDestroy(t *testing.T) {
	raw := bytes.Repeat([]byte{0xAB}, 64)

	k, err := SymmetricCryptoKeyFromB64(base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString(raw), k.KeyB64())
	assert.NotContains(t, k.String(), k.KeyB64())

	k.Destroy()
	assert.Equal(t, make([]byte, 64), k.Key())

	_, err = SymmetricCryptoKeyFromB64("%%%")
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestSymmetricCryptoKey_DestroyedKeyIsRefused(t *testing.T) {
	svc := NewEncryptService(NewCryptoFunctionService())
	gen := NewKeyGenerationService(NewCryptoFunctionService())

	wrapping := mustKey(t, 64, 5)
	userKey := mustKey(t, 64, 9)
	sealed, err := svc.Encrypt([]byte("secret"), userKey)
	require.NoError(t, err)

	userKey.Destroy()
	userKey.Destroy()
	assert.True(t, userKey.IsDestroyed())

	_, err = svc.Encrypt([]byte("secret"), userKey)
	assert.ErrorIs(t, err, ErrKeyDestroyed)
	_, err = svc.EncryptToBytes([]byte("secret"), userKey)
	assert.ErrorIs(t, err, ErrKeyDestroyed)
	_, err = svc.Decrypt(sealed, userKey)
	assert.ErrorIs(t, err, ErrKeyDestroyed)

	// a wiped key must never be persisted under a live wrapping key
	_, err = svc.WrapSymmetricKey(userKey, wrapping)
	assert.ErrorIs(t, err, ErrKeyDestroyed)
	assert.ErrorIs(t, err, ErrNoKey)

	_, err = svc.WrapSymmetricKey(mustKey(t, 64, 1), userKey)
	assert.ErrorIs(t, err, ErrKeyDestroyed)

	_, err = gen.StretchKey(func() *SymmetricCryptoKey {
		k := mustKey(t, 32, 3)
		k.Destroy()
		return k
	}())
	assert.ErrorIs(t, err, ErrKeyDestroyed)
}

func TestSymmetricCryptoKey_Clone(t *testing.T) {
	svc := NewEncryptService(NewCryptoFunctionService())
	original := mustKey(t, 64, 4)

	copied, err := original.Clone()
	require.NoError(t, err)
	assert.True(t, original.Equal(copied))
	assert.NotSame(t, original, copied)

	original.Destroy()
	assert.False(t, copied.IsDestroyed())

	enc, err := svc.Encrypt([]byte("still usable"), copied)
	require.NoError(t, err)
	plain, err := svc.Decrypt(enc, copied)
	require.NoError(t, err)
	assert.Equal(t, []byte("still usable"), plain)

	_, err = original.Clone()
	assert.ErrorIs(t, err, ErrKeyDestroyed)

	var missing *SymmetricCryptoKey
	_, err = missing.Clone()
	assert.ErrorIs(t, err, ErrNoKey)
	assert.False(t, missing.IsDestroyed())
}
