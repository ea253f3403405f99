package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
	"github.com/MKhiriev/go-pass-keycore/internal/service"
	"github.com/MKhiriev/go-pass-keycore/models"
)

func (f *fixture) newSyncService() service.SyncService {
	return service.NewSyncService(f.state, f.adapter, f.keys, f.masterPasswords, f.kdfConfigs, f.accounts)
}

func (f *fixture) syncResponse(t *testing.T, keys serverKeys, stamp string) (models.SyncResponse, *crypto.SymmetricCryptoKey) {
	t.Helper()

	orgKey, err := f.keyGen.CreateKey(512)
	require.NoError(t, err)
	encOrgKey, err := f.keys.RsaEncrypt(orgKey.Key(), keys.publicKey)
	require.NoError(t, err)

	return models.SyncResponse{
		Profile: models.ProfileResponse{
			ID:            testUserID.String(),
			Email:         testEmail,
			SecurityStamp: stamp,
			Key:           keys.wrappedKey.String(),
			PrivateKey:    keys.encPrivateKey.String(),
			Organizations: []models.ProfileOrganization{{ID: "org-1", Key: encOrgKey.String()}},
		},
		UserDecryption: &models.UserDecryptionResponse{
			MasterPasswordUnlock: &models.MasterPasswordUnlockResponse{
				Kdf:                       testKdf,
				MasterKeyEncryptedUserKey: keys.wrappedKey.String(),
				Salt:                      string(crypto.EmailToSalt(testEmail)),
			},
		},
	}, orgKey
}

// ── FullSync ────────────────────────────────────────────────────────────────

func TestFullSync_AppliesKeyMaterial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	syncService := f.newSyncService()

	keys := f.newServerKeys(t, testKdf)
	resp, orgKey := f.syncResponse(t, keys, "stamp-1")
	f.adapter.EXPECT().GetSync(gomock.Any()).Return(resp, nil)

	require.NoError(t, syncService.FullSync(ctx, testUserID, false))

	kdf, err := f.kdfConfigs.GetKdfConfig(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, testKdf, kdf)

	userKey, err := f.masterPasswords.UnlockWithMasterPassword(ctx, testUserID, testPassword)
	require.NoError(t, err)
	assert.True(t, keys.userKey.Equal(userKey))

	got, err := f.keys.GetOrgKey(ctx, testUserID, "org-1")
	require.NoError(t, err)
	assert.True(t, orgKey.Equal(got))

	lastSync, err := syncService.LastSync(ctx, testUserID)
	require.NoError(t, err)
	assert.False(t, lastSync.IsZero())
}

func TestFullSync_SkipsWhenUpToDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	syncService := f.newSyncService()

	f.adapter.EXPECT().GetSync(gomock.Any()).Return(models.SyncResponse{}, nil)
	require.NoError(t, syncService.FullSync(ctx, testUserID, true))

	// revision older than the last sync: GetSync is not called again
	f.adapter.EXPECT().GetAccountRevisionDate(gomock.Any()).Return(time.Now().Add(-time.Hour), nil)
	require.NoError(t, syncService.FullSync(ctx, testUserID, false))
}

func TestFullSync_SyncsWhenRevisionIsNewer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	syncService := f.newSyncService()

	f.adapter.EXPECT().GetSync(gomock.Any()).Return(models.SyncResponse{}, nil).Times(2)
	require.NoError(t, syncService.FullSync(ctx, testUserID, true))

	f.adapter.EXPECT().GetAccountRevisionDate(gomock.Any()).Return(time.Now().Add(time.Hour), nil)
	require.NoError(t, syncService.FullSync(ctx, testUserID, false))
}

func TestFullSync_AccountDeletedLogsOut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	syncService := f.newSyncService()
	f.login(t)
	f.unlock(t, testKdf)

	f.adapter.EXPECT().GetSync(gomock.Any()).Return(models.SyncResponse{}, nil)
	require.NoError(t, syncService.FullSync(ctx, testUserID, true))

	f.adapter.EXPECT().GetAccountRevisionDate(gomock.Any()).Return(time.UnixMilli(-1), nil)
	f.adapter.EXPECT().SetToken("")
	assert.ErrorIs(t, syncService.FullSync(ctx, testUserID, false), service.ErrAccountDeleted)

	assertLoggedOut(t, f, syncService)
}

func TestFullSync_SecurityStampChangedLogsOut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	syncService := f.newSyncService()
	f.login(t)
	f.unlock(t, testKdf)

	f.adapter.EXPECT().GetSync(gomock.Any()).Return(models.SyncResponse{Profile: models.ProfileResponse{SecurityStamp: "a"}}, nil)
	require.NoError(t, syncService.FullSync(ctx, testUserID, true))

	f.adapter.EXPECT().GetSync(gomock.Any()).Return(models.SyncResponse{Profile: models.ProfileResponse{SecurityStamp: "b"}}, nil)
	f.adapter.EXPECT().SetToken("")
	assert.ErrorIs(t, syncService.FullSync(ctx, testUserID, true), service.ErrSecurityStampChanged)

	assertLoggedOut(t, f, syncService)

	// the next login starts from the new stamp
	f.adapter.EXPECT().GetSync(gomock.Any()).Return(models.SyncResponse{Profile: models.ProfileResponse{SecurityStamp: "b"}}, nil)
	require.NoError(t, syncService.FullSync(ctx, testUserID, true))
}

func TestFullSync_SameStampKeepsSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	syncService := f.newSyncService()
	f.login(t)
	f.unlock(t, testKdf)

	f.adapter.EXPECT().GetSync(gomock.Any()).Return(models.SyncResponse{Profile: models.ProfileResponse{SecurityStamp: "a"}}, nil).Times(2)
	require.NoError(t, syncService.FullSync(ctx, testUserID, true))
	require.NoError(t, syncService.FullSync(ctx, testUserID, true))

	assert.True(t, f.keys.HasUserKey(ctx, testUserID))
	_, err := f.accounts.Account(ctx, testUserID)
	require.NoError(t, err)
}

func assertLoggedOut(t *testing.T, f *fixture, syncService service.SyncService) {
	t.Helper()
	ctx := context.Background()

	assert.False(t, f.keys.HasUserKey(ctx, testUserID))
	assert.False(t, f.keys.HasMasterKey(ctx, testUserID))

	_, err := f.accounts.ActiveAccount(ctx)
	assert.ErrorIs(t, err, service.ErrNoActiveAccount)
	_, err = f.accounts.Account(ctx, testUserID)
	assert.ErrorIs(t, err, service.ErrAccountNotFound)

	lastSync, err := syncService.LastSync(ctx, testUserID)
	require.NoError(t, err)
	assert.True(t, lastSync.IsZero())
}

func TestFullSync_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	syncService := f.newSyncService()

	assert.ErrorIs(t, syncService.FullSync(ctx, uuid.Nil, true), service.ErrUserIDRequired)

	boom := errors.New("connection refused")
	f.adapter.EXPECT().GetSync(gomock.Any()).Return(models.SyncResponse{}, boom)
	err := syncService.FullSync(ctx, testUserID, true)
	assert.ErrorIs(t, err, service.ErrServerRequestFailed)
	assert.ErrorIs(t, err, boom)

	f.adapter.EXPECT().GetSync(gomock.Any()).Return(models.SyncResponse{
		Profile: models.ProfileResponse{ID: "00000000-0000-0000-0000-000000000001"},
	}, nil)
	require.Error(t, syncService.FullSync(ctx, testUserID, true))

	f.adapter.EXPECT().GetSync(gomock.Any()).Return(models.SyncResponse{
		Profile: models.ProfileResponse{Key: "not an envelope"},
	}, nil)
	assert.ErrorIs(t, syncService.FullSync(ctx, testUserID, true), crypto.ErrUnsupportedEncoding)

	lastSync, err := syncService.LastSync(ctx, testUserID)
	require.NoError(t, err)
	assert.True(t, lastSync.IsZero(), "failed syncs are not recorded")
}

func TestFullSync_RevisionDateError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	syncService := f.newSyncService()

	f.adapter.EXPECT().GetSync(gomock.Any()).Return(models.SyncResponse{}, nil)
	require.NoError(t, syncService.FullSync(ctx, testUserID, true))

	f.adapter.EXPECT().GetAccountRevisionDate(gomock.Any()).Return(time.Time{}, errors.New("timeout"))
	assert.ErrorIs(t, syncService.FullSync(ctx, testUserID, false), service.ErrServerRequestFailed)
}
