package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-keycore/internal/adapter"
	"github.com/MKhiriev/go-pass-keycore/internal/config"
	"github.com/MKhiriev/go-pass-keycore/internal/handler"
	"github.com/MKhiriev/go-pass-keycore/internal/logger"
	"github.com/MKhiriev/go-pass-keycore/internal/migration"
	"github.com/MKhiriev/go-pass-keycore/internal/server"
	"github.com/MKhiriev/go-pass-keycore/internal/service"
	"github.com/MKhiriev/go-pass-keycore/internal/store"
	"github.com/MKhiriev/go-pass-keycore/internal/workers"
)

type App struct {
	storages *store.Storages
	services *service.Services
	migrator *migration.Migrator
	workers  *workers.Workers
	server   server.Server

	logger *logger.Logger
}

func NewApp(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	app, err := newApp(storages, cfg, log)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}
	return app, nil
}

func newApp(storages *store.Storages, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	services := service.NewServices(storages, serverAdapter, *cfg, log)

	migrator := migration.NewMigrator(
		services.SyncService,
		migration.NewMinimumKdfMigration(services.KdfConfigService, services.ChangeKdfService, services.ConfigService),
	)

	background := workers.NewWorkers(
		workers.NewSyncWorker(services.SyncJob, cfg.Workers.SyncInterval),
	)

	handlers, err := handler.NewHandlers(services, migrator, cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, background.Stop)
	if err != nil {
		return nil, fmt.Errorf("create server: %w", err)
	}

	return &App{
		storages: storages,
		services: services,
		migrator: migrator,
		workers:  background,
		server:   srv,
		logger:   log,
	}, nil
}

// Run restores the active account, starts the background workers and serves
// the local API until a stop signal arrives. The storages are closed on
// return.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Msg("error closing storages")
		}
	}()

	account, err := a.services.AccountService.ActiveAccount(ctx)
	switch {
	case errors.Is(err, service.ErrNoActiveAccount):
		a.logger.Info().Msg("no active account, waiting for login")
	case err != nil:
		return fmt.Errorf("restore active account: %w", err)
	default:
		a.logger.Info().Str("user_id", account.UserID.String()).Msg("active account restored")
	}

	a.workers.Start(ctx)
	a.server.RunServer()
	return nil
}
