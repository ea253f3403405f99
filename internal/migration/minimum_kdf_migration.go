package migration

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
	"github.com/MKhiriev/go-pass-keycore/internal/logger"
	"github.com/MKhiriev/go-pass-keycore/internal/service"
)

// minimumKdfMigration raises a PBKDF2 iteration count below the current
// minimum to the default, when the server enables it.
type minimumKdfMigration struct {
	kdfConfigs service.KdfConfigService
	changeKdf  service.ChangeKdfService
	configs    service.ConfigService
}

// NewMinimumKdfMigration returns the migration that upgrades weak PBKDF2
// settings.
func NewMinimumKdfMigration(
	kdfConfigs service.KdfConfigService,
	changeKdf service.ChangeKdfService,
	configs service.ConfigService,
) Migration {
	return &minimumKdfMigration{kdfConfigs: kdfConfigs, changeKdf: changeKdf, configs: configs}
}

func (m *minimumKdfMigration) Name() string {
	return "minimum-kdf"
}

func (m *minimumKdfMigration) NeedsMigration(ctx context.Context, userID uuid.UUID) (MigrationRequirement, error) {
	kdf, err := m.kdfConfigs.GetKdfConfig(ctx, userID)
	if errors.Is(err, service.ErrKdfConfigNotFound) {
		return NoMigrationNeeded, nil
	}
	if err != nil {
		return NoMigrationNeeded, err
	}

	if kdf.KdfType != crypto.PBKDF2SHA256 || kdf.Iterations >= crypto.PBKDF2Iterations.Min {
		return NoMigrationNeeded, nil
	}

	enabled, err := m.configs.FeatureFlag(ctx, service.FeatureFlagForceUpdateKdfSettings)
	if err != nil {
		return NoMigrationNeeded, err
	}
	if !enabled {
		return NoMigrationNeeded, nil
	}
	return NeedsMigrationWithMasterPassword, nil
}

func (m *minimumKdfMigration) RunMigration(ctx context.Context, userID uuid.UUID, masterPassword string) error {
	kdf := crypto.NewPBKDF2KdfConfig(crypto.PBKDF2Iterations.Default)

	if err := m.changeKdf.UpdateUserKdfParams(ctx, userID, masterPassword, kdf); err != nil {
		return err
	}
	if err := m.kdfConfigs.SetKdfConfig(ctx, userID, kdf); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Str("func", "*minimumKdfMigration.RunMigration").
		Int("iterations", kdf.Iterations).
		Msg("kdf raised to the current minimum")
	return nil
}
