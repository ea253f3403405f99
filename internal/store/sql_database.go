// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-keycore/internal/config"
	"github.com/MKhiriev/go-pass-keycore/internal/logger"
	"github.com/MKhiriev/go-pass-keycore/migrations"
)

// DB is a database/sql handle tagged with the driver it was opened with.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the disk tier database selected by cfg.Driver.
func NewDB(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	}

	log.Error().Str("func", "NewDB").Str("driver", cfg.Driver).Msg("unsupported driver")
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
}

// Migrate brings the schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// placeholder returns the bind-variable format of the driver.
func (db *DB) placeholder() sq.PlaceholderFormat {
	if db.driver == config.DriverPostgres {
		return sq.Dollar
	}
	return sq.Question
}
