package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-keycore/internal/config"
	"github.com/MKhiriev/go-pass-keycore/internal/logger"
)

// Storages bundles the opened database and the state provider built on it.
type Storages struct {
	DB            *DB
	StateProvider *StateProvider
}

// NewStorages opens and migrates the disk tier and wires it together with the
// memory and secure tiers.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error opening state database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating state database")
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		DB: db,
		StateProvider: NewStateProvider(
			NewMemoryStateStorage(),
			NewSQLStateStorage(db),
			NewSecureStateStorage(),
		),
	}, nil
}

// Close closes the database.
func (s *Storages) Close() error {
	return s.DB.Close()
}
