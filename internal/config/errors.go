// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidCryptoConfigs indicates a KDF policy below the legacy floor.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, missing vault server address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid local API settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

// ErrInvalidEnv is returned when an environment variable holds a value that
// cannot be converted to its config field.
var ErrInvalidEnv = errors.New("invalid environment variable")
