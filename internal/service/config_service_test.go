package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-keycore/internal/config"
	"github.com/MKhiriev/go-pass-keycore/internal/mock"
	"github.com/MKhiriev/go-pass-keycore/internal/service"
	"github.com/MKhiriev/go-pass-keycore/models"
)

func serverConfigWith(flag service.FeatureFlag, on bool) models.ServerConfig {
	return models.ServerConfig{Version: "2026.3.0", FeatureStates: map[string]bool{string(flag): on}}
}

// ── FeatureFlag ─────────────────────────────────────────────────────────────

func TestFeatureFlag_LocalOverride(t *testing.T) {
	// the adapter must not be called
	adapter := mock.NewMockServerAdapter(gomock.NewController(t))
	configs := service.NewConfigService(adapter, config.Features{ForceUpdateKdfSettings: true, RefreshInterval: time.Hour})

	on, err := configs.FeatureFlag(context.Background(), service.FeatureFlagForceUpdateKdfSettings)
	require.NoError(t, err)
	assert.True(t, on)
}

func TestFeatureFlag_ServerValueIsCached(t *testing.T) {
	adapter := mock.NewMockServerAdapter(gomock.NewController(t))
	configs := service.NewConfigService(adapter, config.Features{RefreshInterval: time.Hour})

	adapter.EXPECT().GetServerConfig(gomock.Any()).
		Return(serverConfigWith(service.FeatureFlagForceUpdateKdfSettings, true), nil).
		Times(1)

	for range 3 {
		on, err := configs.FeatureFlag(context.Background(), service.FeatureFlagForceUpdateKdfSettings)
		require.NoError(t, err)
		assert.True(t, on)
	}

	on, err := configs.FeatureFlag(context.Background(), "unknown-flag")
	require.NoError(t, err)
	assert.False(t, on)
}

func TestFeatureFlag_StaleConfigOnRefreshError(t *testing.T) {
	adapter := mock.NewMockServerAdapter(gomock.NewController(t))
	configs := service.NewConfigService(adapter, config.Features{RefreshInterval: time.Nanosecond})

	gomock.InOrder(
		adapter.EXPECT().GetServerConfig(gomock.Any()).Return(serverConfigWith(service.FeatureFlagForceUpdateKdfSettings, true), nil),
		adapter.EXPECT().GetServerConfig(gomock.Any()).Return(models.ServerConfig{}, errors.New("offline")),
	)

	on, err := configs.FeatureFlag(context.Background(), service.FeatureFlagForceUpdateKdfSettings)
	require.NoError(t, err)
	assert.True(t, on)

	time.Sleep(time.Millisecond)
	on, err = configs.FeatureFlag(context.Background(), service.FeatureFlagForceUpdateKdfSettings)
	require.NoError(t, err)
	assert.True(t, on)
}

func TestFeatureFlag_NoConfigAndServerDown(t *testing.T) {
	adapter := mock.NewMockServerAdapter(gomock.NewController(t))
	configs := service.NewConfigService(adapter, config.Features{RefreshInterval: time.Hour})

	adapter.EXPECT().GetServerConfig(gomock.Any()).Return(models.ServerConfig{}, errors.New("offline"))

	on, err := configs.FeatureFlag(context.Background(), service.FeatureFlagForceUpdateKdfSettings)
	assert.ErrorIs(t, err, service.ErrServerRequestFailed)
	assert.False(t, on)
}
