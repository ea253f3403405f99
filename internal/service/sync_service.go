// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-pass-keycore/internal/adapter"
	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
	"github.com/MKhiriev/go-pass-keycore/internal/logger"
	"github.com/MKhiriev/go-pass-keycore/internal/store"
	"github.com/MKhiriev/go-pass-keycore/models"
)

type syncService struct {
	state           *store.StateProvider
	adapter         adapter.ServerAdapter
	keys            KeyService
	masterPasswords MasterPasswordService
	kdfConfigs      KdfConfigService
	accounts        AccountService

	group singleflight.Group
	now   func() time.Time
}

// NewSyncService returns a [SyncService] that applies the server's key
// material to the key services. An account whose security stamp changed or
// that was deleted on the server is logged out through accounts.
func NewSyncService(
	state *store.StateProvider,
	serverAdapter adapter.ServerAdapter,
	keys KeyService,
	masterPasswords MasterPasswordService,
	kdfConfigs KdfConfigService,
	accounts AccountService,
) SyncService {
	return &syncService{
		state:           state,
		adapter:         serverAdapter,
		keys:            keys,
		masterPasswords: masterPasswords,
		kdfConfigs:      kdfConfigs,
		accounts:        accounts,
		now:             time.Now,
	}
}

// FullSync implements [SyncService]. Concurrent syncs of the same user share
// one request.
func (s *syncService) FullSync(ctx context.Context, userID uuid.UUID, force bool) error {
	if userID == uuid.Nil {
		return ErrUserIDRequired
	}

	_, err, _ := s.group.Do("sync/"+userID.String(), func() (any, error) {
		err := s.fullSync(ctx, userID, force)
		if errors.Is(err, ErrSecurityStampChanged) || errors.Is(err, ErrAccountDeleted) {
			return nil, errors.Join(err, s.logout(ctx, userID))
		}
		return nil, err
	})
	return err
}

// logout drops every key and the account record. The user has to log in
// again.
func (s *syncService) logout(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContext(ctx)

	err := errors.Join(
		s.keys.ClearKeys(ctx, userID),
		s.accounts.ClearAccount(ctx, userID),
	)
	if err != nil {
		log.Err(err).Str("func", "*syncService.logout").Str("user_id", userID.String()).Msg("error logging out")
		return err
	}
	log.Warn().Str("func", "*syncService.logout").Str("user_id", userID.String()).Msg("account logged out by the server")
	return nil
}

func (s *syncService) fullSync(ctx context.Context, userID uuid.UUID, force bool) error {
	log := logger.FromContext(ctx)

	needed, err := s.needsSyncing(ctx, userID, force)
	if err != nil {
		return err
	}
	if !needed {
		log.Debug().Str("func", "*syncService.fullSync").Str("user_id", userID.String()).Msg("account up to date, skipping sync")
		return nil
	}

	resp, err := s.adapter.GetSync(ctx)
	if err != nil {
		log.Err(err).Str("func", "*syncService.fullSync").Msg("error fetching sync data")
		return fmt.Errorf("%w: %w", ErrServerRequestFailed, err)
	}

	if err = s.syncProfile(ctx, userID, resp.Profile); err != nil {
		return err
	}
	if err = s.syncUserDecryption(ctx, userID, resp.UserDecryption); err != nil {
		return err
	}

	if err = store.SetJSON(ctx, s.state, userID, stateLastSync, s.now().UTC()); err != nil {
		return fmt.Errorf("error storing last sync time: %w", err)
	}

	log.Info().Str("func", "*syncService.fullSync").Str("user_id", userID.String()).Msg("sync finished")
	return nil
}

// needsSyncing reports whether the server has changes newer than the last
// sync. A negative revision date means the account was deleted.
func (s *syncService) needsSyncing(ctx context.Context, userID uuid.UUID, force bool) (bool, error) {
	if force {
		return true, nil
	}

	lastSync, err := s.LastSync(ctx, userID)
	if err != nil {
		return false, err
	}
	if lastSync.IsZero() {
		return true, nil
	}

	revision, err := s.adapter.GetAccountRevisionDate(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrServerRequestFailed, err)
	}
	if revision.UnixMilli() < 0 {
		return false, ErrAccountDeleted
	}
	return revision.After(lastSync), nil
}

func (s *syncService) syncProfile(ctx context.Context, userID uuid.UUID, profile models.ProfileResponse) error {
	if profile.ID != "" && profile.ID != userID.String() {
		return fmt.Errorf("sync response is for user %s, not %s", profile.ID, userID)
	}

	stamp, err := s.state.Get(ctx, userID, stateSecurityStamp)
	switch {
	case err == nil && stamp != profile.SecurityStamp:
		return ErrSecurityStampChanged
	case err != nil && !errors.Is(err, store.ErrStateNotFound):
		return fmt.Errorf("error reading security stamp: %w", err)
	}
	if err = s.state.Set(ctx, userID, stateSecurityStamp, profile.SecurityStamp); err != nil {
		return fmt.Errorf("error storing security stamp: %w", err)
	}

	if profile.Key != "" {
		wrapped, err := crypto.ParseEncString(profile.Key)
		if err != nil {
			return fmt.Errorf("error parsing user key: %w", err)
		}
		if err = s.keys.SetMasterKeyEncryptedUserKey(ctx, userID, wrapped); err != nil {
			return err
		}
	}
	if profile.PrivateKey != "" {
		encPrivateKey, err := crypto.ParseEncString(profile.PrivateKey)
		if err != nil {
			return fmt.Errorf("error parsing private key: %w", err)
		}
		if err = s.keys.SetPrivateKey(ctx, userID, encPrivateKey); err != nil {
			return err
		}
	}

	if err = s.keys.SetProviderKeys(ctx, userID, profile.Providers); err != nil {
		return err
	}
	return s.keys.SetOrgKeys(ctx, userID, profile.Organizations, profile.ProviderOrganizations)
}

func (s *syncService) syncUserDecryption(ctx context.Context, userID uuid.UUID, decryption *models.UserDecryptionResponse) error {
	if decryption == nil || decryption.MasterPasswordUnlock == nil {
		return nil
	}
	unlock := decryption.MasterPasswordUnlock

	wrapped, err := crypto.ParseEncString(unlock.MasterKeyEncryptedUserKey)
	if err != nil {
		return fmt.Errorf("error parsing master password unlock key: %w", err)
	}

	if err = s.kdfConfigs.SetKdfConfig(ctx, userID, unlock.Kdf); err != nil {
		return err
	}
	return s.masterPasswords.SetMasterPasswordUnlockData(ctx, userID, crypto.MasterPasswordUnlockData{
		Salt:                    crypto.MasterPasswordSalt(unlock.Salt),
		Kdf:                     unlock.Kdf,
		MasterKeyWrappedUserKey: wrapped,
	})
}

// LastSync implements [SyncService]. It returns the zero time when the
// account was never synced.
func (s *syncService) LastSync(ctx context.Context, userID uuid.UUID) (time.Time, error) {
	lastSync, err := store.GetJSON[time.Time](ctx, s.state, userID, stateLastSync)
	if errors.Is(err, store.ErrStateNotFound) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("error reading last sync time: %w", err)
	}
	return lastSync, nil
}
