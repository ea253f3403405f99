package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
	"github.com/MKhiriev/go-pass-keycore/internal/mock"
	"github.com/MKhiriev/go-pass-keycore/internal/service"
	"github.com/MKhiriev/go-pass-keycore/internal/store"
	"github.com/MKhiriev/go-pass-keycore/models"
)

const (
	testEmail    = "bob@example.com"
	testPassword = "tr0ub4dor&3"
)

var (
	testUserID = uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")
	testKdf    = crypto.NewPBKDF2KdfConfig(crypto.PBKDF2LegacyMinIterations)
)

// fixture wires the real key services on in-memory tiers around a mocked
// server adapter.
type fixture struct {
	state   *store.StateProvider
	adapter *mock.MockServerAdapter

	fn      crypto.CryptoFunctionService
	encrypt crypto.EncryptService
	keyGen  crypto.KeyGenerationService

	keys            service.KeyService
	masterPasswords service.MasterPasswordService
	kdfConfigs      service.KdfConfigService
	accounts        service.AccountService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		state: store.NewStateProvider(
			store.NewMemoryStateStorage(),
			store.NewMemoryStateStorage(),
			store.NewSecureStateStorage(),
			service.StateDefinitions()...,
		),
		adapter: mock.NewMockServerAdapter(ctrl),
		fn:      crypto.NewCryptoFunctionService(),
	}
	f.encrypt = crypto.NewEncryptService(f.fn)
	f.keyGen = crypto.NewKeyGenerationService(f.fn)
	f.keys = service.NewKeyService(f.state, f.fn, f.encrypt, f.keyGen)
	f.kdfConfigs = service.NewKdfConfigService(f.state)
	f.accounts = service.NewAccountService(f.state, f.adapter)
	f.masterPasswords = service.NewMasterPasswordService(f.state, f.keys, f.keyGen, f.encrypt, f.kdfConfigs, f.accounts)
	return f
}

// testAccessToken builds an access token for the test account. The
// signature is never checked by the agent.
func testAccessToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	claims := models.AccessTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: email,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// login stores the test account as the active account.
func (f *fixture) login(t *testing.T) {
	t.Helper()
	token := testAccessToken(t, testUserID, testEmail)
	f.adapter.EXPECT().SetToken(token)

	_, err := f.accounts.SetActiveAccountFromToken(context.Background(), token)
	require.NoError(t, err)
}

// serverKeys is the key material the server holds for the test account.
type serverKeys struct {
	userKey       *crypto.SymmetricCryptoKey
	wrappedKey    *crypto.EncString
	publicKey     []byte
	encPrivateKey *crypto.EncString
}

func (f *fixture) newServerKeys(t *testing.T, kdf crypto.KdfConfig) serverKeys {
	t.Helper()

	masterKey, err := f.keys.DeriveMasterKey(context.Background(), testPassword, testEmail, kdf)
	require.NoError(t, err)
	userKey, wrapped, err := f.keys.MakeUserKey(context.Background(), masterKey)
	require.NoError(t, err)

	publicKey, privateKey, err := f.fn.RsaGenerateKeyPair(2048)
	require.NoError(t, err)
	encPrivateKey, err := f.encrypt.Encrypt(privateKey, userKey)
	require.NoError(t, err)

	return serverKeys{userKey: userKey, wrappedKey: wrapped, publicKey: publicKey, encPrivateKey: encPrivateKey}
}

// unlock installs unlock data derived with kdf and unlocks the account.
func (f *fixture) unlock(t *testing.T, kdf crypto.KdfConfig) *crypto.SymmetricCryptoKey {
	t.Helper()
	ctx := context.Background()

	userKey, err := f.keyGen.CreateKey(512)
	require.NoError(t, err)
	data, err := f.masterPasswords.MakeMasterPasswordUnlockData(ctx, testPassword, kdf, crypto.EmailToSalt(testEmail), userKey)
	require.NoError(t, err)

	require.NoError(t, f.kdfConfigs.SetKdfConfig(ctx, testUserID, kdf))
	require.NoError(t, f.masterPasswords.SetMasterPasswordUnlockData(ctx, testUserID, data))

	unlocked, err := f.masterPasswords.UnlockWithMasterPassword(ctx, testUserID, testPassword)
	require.NoError(t, err)
	return unlocked
}
