package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-keycore/internal/adapter"
	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
	"github.com/MKhiriev/go-pass-keycore/internal/logger"
	"github.com/MKhiriev/go-pass-keycore/internal/store"
	"github.com/MKhiriev/go-pass-keycore/models"
)

type changeKdfService struct {
	state           *store.StateProvider
	keys            KeyService
	masterPasswords MasterPasswordService
	kdfConfigs      KdfConfigService
	keyGen          crypto.KeyGenerationService
	encrypt         crypto.EncryptService
	adapter         adapter.ServerAdapter
	minPBKDF2       int
}

// NewChangeKdfService returns a [ChangeKdfService]. minPBKDF2 is the lowest
// PBKDF2 iteration count accepted for the new KDF.
func NewChangeKdfService(
	state *store.StateProvider,
	keys KeyService,
	masterPasswords MasterPasswordService,
	kdfConfigs KdfConfigService,
	keyGen crypto.KeyGenerationService,
	encrypt crypto.EncryptService,
	serverAdapter adapter.ServerAdapter,
	minPBKDF2 int,
) ChangeKdfService {
	return &changeKdfService{
		state:           state,
		keys:            keys,
		masterPasswords: masterPasswords,
		kdfConfigs:      kdfConfigs,
		keyGen:          keyGen,
		encrypt:         encrypt,
		adapter:         serverAdapter,
		minPBKDF2:       minPBKDF2,
	}
}

// UpdateUserKdfParams implements [ChangeKdfService]. The server is updated
// first; local unlock data and the session's Master Key are only replaced
// after it accepted the change.
func (c *changeKdfService) UpdateUserKdfParams(ctx context.Context, userID uuid.UUID, masterPassword string, kdf crypto.KdfConfig) error {
	log := logger.FromContext(ctx)

	if userID == uuid.Nil {
		return ErrUserIDRequired
	}
	if masterPassword == "" {
		return ErrMasterPasswordRequired
	}

	userKey, err := c.keys.GetUserKey(ctx, userID)
	if err != nil {
		return fmt.Errorf("user key is required to change kdf: %w", err)
	}
	defer userKey.Destroy()
	if err = kdf.ValidateForNewKey(c.minPBKDF2); err != nil {
		return err
	}

	oldKdf, err := c.kdfConfigs.GetKdfConfig(ctx, userID)
	if err != nil {
		return err
	}
	salt, err := c.masterPasswords.SaltForUser(ctx, userID)
	if err != nil {
		return err
	}

	oldAuth, err := c.masterPasswords.MakeMasterPasswordAuthenticationData(ctx, masterPassword, oldKdf, salt)
	if err != nil {
		return fmt.Errorf("error deriving current authentication data: %w", err)
	}

	newMasterKey, err := c.keyGen.DeriveKeyFromPassword(ctx, masterPassword, string(salt), kdf)
	if err != nil {
		return fmt.Errorf("error deriving new master key: %w", err)
	}
	defer newMasterKey.Destroy()

	newAuthHash, err := c.keys.HashMasterKey(masterPassword, newMasterKey, HashPurposeServerAuthorization)
	if err != nil {
		return err
	}
	localHash, err := c.keys.HashMasterKey(masterPassword, newMasterKey, HashPurposeLocalAuthorization)
	if err != nil {
		return err
	}
	wrapped, err := wrapWithMasterKey(c.encrypt, c.keyGen, userKey, newMasterKey)
	if err != nil {
		return fmt.Errorf("error wrapping user key: %w", err)
	}

	newAuth := crypto.MasterPasswordAuthenticationData{
		Salt:                             salt,
		Kdf:                              kdf,
		MasterPasswordAuthenticationHash: newAuthHash,
	}
	newUnlock := crypto.MasterPasswordUnlockData{
		Salt:                    salt,
		Kdf:                     kdf,
		MasterKeyWrappedUserKey: wrapped,
	}

	req := models.KdfRequest{
		AuthenticationData:    newAuth,
		UnlockData:            newUnlock,
		MasterPasswordHash:    oldAuth.MasterPasswordAuthenticationHash,
		NewMasterPasswordHash: newAuthHash,
		Key:                   wrapped.String(),
		Kdf:                   kdf,
	}
	if err = c.adapter.PostKdf(ctx, req); err != nil {
		log.Err(err).Str("func", "*changeKdfService.UpdateUserKdfParams").Msg("server rejected kdf change")
		return fmt.Errorf("%w: %w", ErrServerRequestFailed, err)
	}

	if err = c.masterPasswords.SetMasterPasswordUnlockData(ctx, userID, newUnlock); err != nil {
		return err
	}
	if err = c.keys.SetMasterKeyEncryptedUserKey(ctx, userID, wrapped); err != nil {
		return err
	}
	if err = c.keys.SetMasterKey(ctx, userID, newMasterKey); err != nil {
		return err
	}
	if err = c.keys.SetKeyHash(ctx, userID, localHash); err != nil {
		return err
	}

	// the server rotates the security stamp with the KDF; the next sync
	// adopts the new one instead of logging this device out
	if err = c.state.Delete(ctx, userID, stateSecurityStamp); err != nil {
		return fmt.Errorf("error clearing security stamp: %w", err)
	}

	log.Info().Str("func", "*changeKdfService.UpdateUserKdfParams").Str("kdf", kdf.KdfType.String()).Int("iterations", kdf.Iterations).Msg("kdf updated")
	return nil
}
