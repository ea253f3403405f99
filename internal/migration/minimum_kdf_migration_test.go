package migration_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
	"github.com/MKhiriev/go-pass-keycore/internal/migration"
	"github.com/MKhiriev/go-pass-keycore/internal/mock"
	"github.com/MKhiriev/go-pass-keycore/internal/service"
)

type kdfMigrationMocks struct {
	kdfConfigs *mock.MockKdfConfigService
	changeKdf  *mock.MockChangeKdfService
	configs    *mock.MockConfigService
}

func newKdfMigration(t *testing.T) (migration.Migration, kdfMigrationMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mocks := kdfMigrationMocks{
		kdfConfigs: mock.NewMockKdfConfigService(ctrl),
		changeKdf:  mock.NewMockChangeKdfService(ctrl),
		configs:    mock.NewMockConfigService(ctrl),
	}
	return migration.NewMinimumKdfMigration(mocks.kdfConfigs, mocks.changeKdf, mocks.configs), mocks
}

// ── NeedsMigration ──────────────────────────────────────────────────────────

func TestMinimumKdf_NeedsMigration(t *testing.T) {
	weak := crypto.KdfConfig{KdfType: crypto.PBKDF2SHA256, Iterations: 100_000}

	tests := []struct {
		name    string
		kdf     crypto.KdfConfig
		kdfErr  error
		flag    *bool
		want    migration.MigrationRequirement
		wantErr bool
	}{
		{name: "weak pbkdf2 with flag on", kdf: weak, flag: ptr(true), want: migration.NeedsMigrationWithMasterPassword},
		{name: "weak pbkdf2 with flag off", kdf: weak, flag: ptr(false), want: migration.NoMigrationNeeded},
		{name: "pbkdf2 at minimum", kdf: crypto.NewPBKDF2KdfConfig(crypto.PBKDF2Iterations.Min), want: migration.NoMigrationNeeded},
		{name: "argon2id", kdf: crypto.NewArgon2KdfConfig(0, 0, 0), want: migration.NoMigrationNeeded},
		{name: "no kdf config", kdfErr: service.ErrKdfConfigNotFound, want: migration.NoMigrationNeeded},
		{name: "kdf read error", kdfErr: errors.New("disk"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, mocks := newKdfMigration(t)
			mocks.kdfConfigs.EXPECT().GetKdfConfig(gomock.Any(), testUserID).Return(tt.kdf, tt.kdfErr)
			if tt.flag != nil {
				mocks.configs.EXPECT().
					FeatureFlag(gomock.Any(), service.FeatureFlagForceUpdateKdfSettings).
					Return(*tt.flag, nil)
			}

			got, err := m.NeedsMigration(context.Background(), testUserID)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinimumKdf_NeedsMigration_FlagError(t *testing.T) {
	m, mocks := newKdfMigration(t)
	boom := errors.New("server down")

	mocks.kdfConfigs.EXPECT().GetKdfConfig(gomock.Any(), testUserID).
		Return(crypto.KdfConfig{KdfType: crypto.PBKDF2SHA256, Iterations: 5000}, nil)
	mocks.configs.EXPECT().FeatureFlag(gomock.Any(), service.FeatureFlagForceUpdateKdfSettings).Return(false, boom)

	got, err := m.NeedsMigration(context.Background(), testUserID)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, migration.NoMigrationNeeded, got)
}

// ── RunMigration ────────────────────────────────────────────────────────────

func TestMinimumKdf_RunMigration(t *testing.T) {
	m, mocks := newKdfMigration(t)
	want := crypto.NewPBKDF2KdfConfig(crypto.PBKDF2Iterations.Default)

	gomock.InOrder(
		mocks.changeKdf.EXPECT().UpdateUserKdfParams(gomock.Any(), testUserID, "pw", want).Return(nil),
		mocks.kdfConfigs.EXPECT().SetKdfConfig(gomock.Any(), testUserID, want).Return(nil),
	)

	require.NoError(t, m.RunMigration(context.Background(), testUserID, "pw"))
	assert.Equal(t, "minimum-kdf", m.Name())
}

func TestMinimumKdf_RunMigration_ChangeFails(t *testing.T) {
	m, mocks := newKdfMigration(t)
	boom := errors.New("rejected")

	mocks.changeKdf.EXPECT().UpdateUserKdfParams(gomock.Any(), testUserID, "pw", gomock.Any()).Return(boom)

	assert.ErrorIs(t, m.RunMigration(context.Background(), testUserID, "pw"), boom)
}

func ptr[T any](v T) *T { return &v }
