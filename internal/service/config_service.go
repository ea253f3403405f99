package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-pass-keycore/internal/adapter"
	"github.com/MKhiriev/go-pass-keycore/internal/config"
	"github.com/MKhiriev/go-pass-keycore/internal/logger"
	"github.com/MKhiriev/go-pass-keycore/models"
)

type configService struct {
	adapter   adapter.ServerAdapter
	overrides map[FeatureFlag]bool
	refresh   time.Duration
	now       func() time.Time

	mu        sync.Mutex
	cached    *models.ServerConfig
	fetchedAt time.Time

	group singleflight.Group
}

// NewConfigService returns a [ConfigService]. Flags enabled in cfg are on
// regardless of the server; server flags are cached for cfg.RefreshInterval.
func NewConfigService(serverAdapter adapter.ServerAdapter, cfg config.Features) ConfigService {
	return &configService{
		adapter: serverAdapter,
		overrides: map[FeatureFlag]bool{
			FeatureFlagForceUpdateKdfSettings: cfg.ForceUpdateKdfSettings,
		},
		refresh: cfg.RefreshInterval,
		now:     time.Now,
	}
}

func (c *configService) FeatureFlag(ctx context.Context, flag FeatureFlag) (bool, error) {
	if c.overrides[flag] {
		return true, nil
	}

	serverConfig, err := c.serverConfig(ctx)
	if err != nil {
		return false, err
	}
	return serverConfig.FeatureStates[string(flag)], nil
}

// serverConfig returns the cached server config, refreshing it when it is
// older than the refresh interval. A stale config is served when the refresh
// fails.
func (c *configService) serverConfig(ctx context.Context) (models.ServerConfig, error) {
	c.mu.Lock()
	cached, fetchedAt := c.cached, c.fetchedAt
	c.mu.Unlock()

	if cached != nil && c.now().Sub(fetchedAt) < c.refresh {
		return *cached, nil
	}

	v, err, _ := c.group.Do("serverConfig", func() (any, error) {
		return c.adapter.GetServerConfig(ctx)
	})
	if err != nil {
		if cached != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "*configService.serverConfig").Msg("using stale server config")
			return *cached, nil
		}
		return models.ServerConfig{}, fmt.Errorf("%w: %w", ErrServerRequestFailed, err)
	}

	fetched := v.(models.ServerConfig)
	c.mu.Lock()
	c.cached = &fetched
	c.fetchedAt = c.now()
	c.mu.Unlock()
	return fetched, nil
}
