// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// An empty builder (no sources at all) yields a zero config which is
// accepted as-is; every populated group must be complete.
func (cfg *StructuredConfig) validate() error {
	if *cfg == (StructuredConfig{}) {
		return nil
	}

	if cfg.Crypto.MinPBKDF2Iterations < crypto.PBKDF2LegacyMinIterations {
		return ErrInvalidCryptoConfigs
	}

	switch cfg.Storage.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.UnlockRatePerMinute <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RetryCount < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
