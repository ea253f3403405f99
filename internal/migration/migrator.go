package migration

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-keycore/internal/logger"
	"github.com/MKhiriev/go-pass-keycore/internal/service"
)

// Migrator runs migrations sequentially in registration order. A failed
// migration stops the run.
type Migrator struct {
	migrations  []Migration
	syncService service.SyncService

	running atomic.Bool

	mu sync.Mutex
	// done is closed when the current or last run returns.
	done chan struct{}
}

// NewMigrator returns a [Migrator]. syncService is forced to sync once after
// any migration ran, so the local state reflects what was uploaded.
func NewMigrator(syncService service.SyncService, migrations ...Migration) *Migrator {
	return &Migrator{migrations: migrations, syncService: syncService}
}

func (m *Migrator) NeedsMigrations(ctx context.Context, userID uuid.UUID) (MigrationRequirement, error) {
	needed := NoMigrationNeeded
	for _, migration := range m.migrations {
		requirement, err := migration.NeedsMigration(ctx, userID)
		if err != nil {
			return NoMigrationNeeded, fmt.Errorf("error checking migration %s: %w", migration.Name(), err)
		}
		needed = max(needed, requirement)
	}
	return needed, nil
}

func (m *Migrator) RunMigrations(ctx context.Context, userID uuid.UUID, masterPassword string) error {
	log := logger.FromContext(ctx)

	if !m.running.CompareAndSwap(false, true) {
		log.Debug().Str("func", "*Migrator.RunMigrations").Msg("migrations already running")
		return nil
	}
	done := make(chan struct{})
	m.mu.Lock()
	m.done = done
	m.mu.Unlock()
	defer func() {
		m.running.Store(false)
		close(done)
	}()

	needed, err := m.NeedsMigrations(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Migrator.RunMigrations").Msg("error checking migrations")
		return err
	}
	switch {
	case needed == NoMigrationNeeded:
		return nil
	case needed == NeedsMigrationWithMasterPassword && masterPassword == "":
		log.Debug().Str("func", "*Migrator.RunMigrations").Msg("migrations need the master password, skipping")
		return nil
	}

	ran := false
	for _, migration := range m.migrations {
		requirement, err := migration.NeedsMigration(ctx, userID)
		if err != nil {
			log.Err(err).Str("func", "*Migrator.RunMigrations").Str("migration", migration.Name()).Msg("error checking migration")
			return fmt.Errorf("error checking migration %s: %w", migration.Name(), err)
		}
		if requirement == NoMigrationNeeded {
			continue
		}

		log.Info().Str("migration", migration.Name()).Msg("migration started")
		if err = migration.RunMigration(ctx, userID, masterPassword); err != nil {
			log.Err(err).Str("func", "*Migrator.RunMigrations").Str("migration", migration.Name()).Msg("migration failed")
			return fmt.Errorf("migration %s: %w", migration.Name(), err)
		}
		log.Info().Str("migration", migration.Name()).Msg("migration finished")
		ran = true
	}

	if ran {
		if err = m.syncService.FullSync(ctx, userID, true); err != nil {
			return fmt.Errorf("error syncing after migrations: %w", err)
		}
	}
	return nil
}

func (m *Migrator) IsRunningMigrations() bool {
	return m.running.Load()
}

// WaitForMigrations blocks until the run in progress, if any, has returned or
// ctx is done. Keys must not be dropped under a running migration: it holds
// the User Key and may be halfway through re-wrapping it.
func (m *Migrator) WaitForMigrations(ctx context.Context) error {
	m.mu.Lock()
	done := m.done
	m.mu.Unlock()

	if done == nil {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		logger.FromContext(ctx).Warn().Str("func", "*Migrator.WaitForMigrations").Msg("gave up waiting for migrations")
		return fmt.Errorf("error waiting for migrations: %w", ctx.Err())
	}
}
