// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migration runs one-off upgrades of an account's encrypted data
// after unlock, such as raising a KDF below the current minimum.
package migration

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/migration_mock.go -package=mock

// MigrationRequirement tells whether a migration has to run and what it
// needs. Requirements are ordered: the larger one wins when aggregating.
type MigrationRequirement int

const (
	NoMigrationNeeded MigrationRequirement = iota
	NeedsMigration
	NeedsMigrationWithMasterPassword
)

func (r MigrationRequirement) String() string {
	switch r {
	case NoMigrationNeeded:
		return "no_migration_needed"
	case NeedsMigration:
		return "needs_migration"
	case NeedsMigrationWithMasterPassword:
		return "needs_migration_with_master_password"
	}
	return fmt.Sprintf("MigrationRequirement(%d)", int(r))
}

// Migration is a single upgrade step.
type Migration interface {
	// Name identifies the migration in logs.
	Name() string
	NeedsMigration(ctx context.Context, userID uuid.UUID) (MigrationRequirement, error)
	// RunMigration performs the upgrade. masterPassword is empty unless the
	// migration asked for it.
	RunMigration(ctx context.Context, userID uuid.UUID, masterPassword string) error
}

// Runner runs the registered migrations of an account.
type Runner interface {
	// RunMigrations runs every migration that is needed. It is a no-op when a
	// run is already in progress or when a migration needs the master
	// password and none was given.
	RunMigrations(ctx context.Context, userID uuid.UUID, masterPassword string) error
	// NeedsMigrations returns the largest requirement of all migrations.
	NeedsMigrations(ctx context.Context, userID uuid.UUID) (MigrationRequirement, error)
	IsRunningMigrations() bool
	// WaitForMigrations blocks until a run in progress has returned or ctx is
	// done.
	WaitForMigrations(ctx context.Context) error
}
