package service

import (
	"context"
	"encoding/base64"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
	"github.com/MKhiriev/go-pass-keycore/internal/store"
	"github.com/MKhiriev/go-pass-keycore/models"
)

const (
	testEmail    = "Alice@Example.com"
	testPassword = "correct horse battery staple"
)

var (
	testUserID = uuid.MustParse("0195f3a4-8e6c-7a2b-9d41-3c5e7f0a1b2c")
	// the legacy floor keeps derivations fast
	testKdf = crypto.NewPBKDF2KdfConfig(crypto.PBKDF2LegacyMinIterations)

	rsaOnce       sync.Once
	rsaPublicKey  []byte
	rsaPrivateKey []byte
	rsaErr        error
)

// testRSAKeyPair returns one RSA key pair shared by the whole package.
func testRSAKeyPair(t *testing.T) ([]byte, []byte) {
	t.Helper()
	rsaOnce.Do(func() {
		rsaPublicKey, rsaPrivateKey, rsaErr = crypto.NewCryptoFunctionService().RsaGenerateKeyPair(rsaKeyBits)
	})
	require.NoError(t, rsaErr)
	return rsaPublicKey, rsaPrivateKey
}

func newTestState() *store.StateProvider {
	return store.NewStateProvider(
		store.NewMemoryStateStorage(),
		store.NewMemoryStateStorage(),
		store.NewSecureStateStorage(),
		StateDefinitions()...,
	)
}

type testCrypto struct {
	fn      crypto.CryptoFunctionService
	encrypt crypto.EncryptService
	keyGen  crypto.KeyGenerationService
}

func newTestCrypto() testCrypto {
	fn := crypto.NewCryptoFunctionService()
	return testCrypto{fn: fn, encrypt: crypto.NewEncryptService(fn), keyGen: crypto.NewKeyGenerationService(fn)}
}

func newTestKeyService(t *testing.T) (*keyService, *store.StateProvider, testCrypto) {
	t.Helper()
	state := newTestState()
	c := newTestCrypto()
	return NewKeyService(state, c.fn, c.encrypt, c.keyGen).(*keyService), state, c
}

// storeTestPrivateKey wraps the shared RSA private key under userKey and
// stores it for testUserID.
func storeTestPrivateKey(t *testing.T, keys KeyService, c testCrypto, userKey *crypto.SymmetricCryptoKey) []byte {
	t.Helper()
	publicKey, privateKey := testRSAKeyPair(t)

	enc, err := c.encrypt.Encrypt(privateKey, userKey)
	require.NoError(t, err)
	require.NoError(t, keys.SetPrivateKey(context.Background(), testUserID, enc))
	return publicKey
}

func storeTestAccount(t *testing.T, state *store.StateProvider) {
	t.Helper()
	account := models.AccountInfo{UserID: testUserID, Email: testEmail}
	require.NoError(t, store.SetJSON(context.Background(), state, testUserID, stateAccount, account))
}

func mustCreateKey(t *testing.T, c testCrypto) *crypto.SymmetricCryptoKey {
	t.Helper()
	key, err := c.keyGen.CreateKey(512)
	require.NoError(t, err)
	return key
}

func b64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
