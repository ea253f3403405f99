package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
	"github.com/MKhiriev/go-pass-keycore/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// FeatureFlag names a server-controlled feature switch.
type FeatureFlag string

// FeatureFlagForceUpdateKdfSettings makes accounts with a PBKDF2 iteration
// count below the current minimum upgrade their KDF on the next unlock.
const FeatureFlagForceUpdateKdfSettings FeatureFlag = "pm-18021-force-update-kdf-settings"

// KdfConfigService reads and writes the KDF configuration of an account.
type KdfConfigService interface {
	// GetKdfConfig returns [ErrKdfConfigNotFound] when none is stored.
	GetKdfConfig(ctx context.Context, userID uuid.UUID) (crypto.KdfConfig, error)
	SetKdfConfig(ctx context.Context, userID uuid.UUID, kdf crypto.KdfConfig) error
}

// AccountService tracks the logged-in accounts and which one is active.
type AccountService interface {
	// SetActiveAccountFromToken reads the account identity from an access
	// token, stores it and makes it the active account.
	SetActiveAccountFromToken(ctx context.Context, accessToken string) (models.AccountInfo, error)
	// ActiveAccount returns [ErrNoActiveAccount] when nobody is logged in.
	ActiveAccount(ctx context.Context) (models.AccountInfo, error)
	Account(ctx context.Context, userID uuid.UUID) (models.AccountInfo, error)
	// ClearAccount forgets the account and, if it was active, the active
	// account.
	ClearAccount(ctx context.Context, userID uuid.UUID) error
}

// ChangeKdfService re-derives the Master Key under a new KDF.
type ChangeKdfService interface {
	// UpdateUserKdfParams rewraps the User Key under a Master Key derived
	// with kdf and pushes the new authentication and unlock data to the
	// server.
	UpdateUserKdfParams(ctx context.Context, userID uuid.UUID, masterPassword string, kdf crypto.KdfConfig) error
}

// SyncService pulls the account's key material from the server.
type SyncService interface {
	// FullSync fetches and applies the server state. Without force it is
	// skipped when the server revision is not newer than the last sync.
	FullSync(ctx context.Context, userID uuid.UUID, force bool) error
	LastSync(ctx context.Context, userID uuid.UUID) (time.Time, error)
}

// SyncJob periodically syncs the active account.
type SyncJob interface {
	// Start launches the background sync. Any previously running job is
	// stopped first.
	Start(ctx context.Context, interval time.Duration)
	// Stop stops the background sync and waits for it to exit.
	Stop()
}

// ConfigService answers feature flag queries.
type ConfigService interface {
	FeatureFlag(ctx context.Context, flag FeatureFlag) (bool, error)
}
