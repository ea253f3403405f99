package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/awnumar/memguard"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
	"github.com/MKhiriev/go-pass-keycore/internal/logger"
	"github.com/MKhiriev/go-pass-keycore/internal/store"
	"github.com/MKhiriev/go-pass-keycore/models"
)

const rsaKeyBits = 2048

// ── Organization keys ───────────────────────────────────────────────────────

func (s *keyService) SetOrgKeys(
	ctx context.Context,
	userID uuid.UUID,
	orgs []models.ProfileOrganization,
	providerOrgs []models.ProfileProviderOrganization,
) error {
	if userID == uuid.Nil {
		return ErrUserIDRequired
	}

	encOrgKeys := make(map[string]models.EncryptedOrganizationKeyData, len(orgs)+len(providerOrgs))
	for _, org := range orgs {
		encOrgKeys[org.ID] = models.EncryptedOrganizationKeyData{
			Type: models.OrganizationKeyTypeOrganization,
			Key:  org.Key,
		}
	}
	for _, org := range providerOrgs {
		// a direct membership wins over access through a provider
		if _, ok := encOrgKeys[org.ID]; ok {
			continue
		}
		encOrgKeys[org.ID] = models.EncryptedOrganizationKeyData{
			Type:       models.OrganizationKeyTypeProvider,
			Key:        org.Key,
			ProviderID: org.ProviderID,
		}
	}

	if err := store.SetJSON(ctx, s.state, userID, stateEncOrgKeys, encOrgKeys); err != nil {
		return fmt.Errorf("error storing organization keys: %w", err)
	}
	s.session(userID).clearOrgKeys()
	return nil
}

// GetOrgKeys implements [KeyService]. Keys that cannot be decrypted are
// logged and left out. The returned keys are copies owned by the caller.
func (s *keyService) GetOrgKeys(ctx context.Context, userID uuid.UUID) (map[string]*crypto.SymmetricCryptoKey, error) {
	if userID == uuid.Nil {
		return nil, ErrUserIDRequired
	}
	if sess := s.existingSession(userID); sess != nil {
		if keys, err := sess.orgKeysCopy(); keys != nil || err != nil {
			return keys, err
		}
	}

	v, err, _ := s.group.Do("orgKeys/"+userID.String(), func() (any, error) {
		return s.loadOrgKeys(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	return cloneKeys(v.(map[string]*crypto.SymmetricCryptoKey))
}

// loadOrgKeys decrypts the stored organization keys. The result is cached
// only when it is complete and the session is still unlocked; a lookup while
// locked fails without leaving anything behind.
func (s *keyService) loadOrgKeys(ctx context.Context, userID uuid.UUID) (map[string]*crypto.SymmetricCryptoKey, error) {
	log := logger.FromContext(ctx)
	sess := s.session(userID)

	encOrgKeys, err := store.GetJSON[map[string]models.EncryptedOrganizationKeyData](ctx, s.state, userID, stateEncOrgKeys)
	if err != nil && !errors.Is(err, store.ErrStateNotFound) {
		return nil, fmt.Errorf("error reading organization keys: %w", err)
	}

	orgKeys := make(map[string]*crypto.SymmetricCryptoKey, len(encOrgKeys))
	if len(encOrgKeys) == 0 {
		sess.cacheOrgKeys(orgKeys)
		return orgKeys, nil
	}

	privateKey, err := s.GetPrivateKey(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(privateKey)

	complete := true
	var providerKeys map[string]*crypto.SymmetricCryptoKey
	providersLoaded := false
	for orgID, data := range encOrgKeys {
		parsed, err := parseEncryptedOrganizationKey(data)
		if err != nil {
			log.Warn().Err(err).Str("func", "*keyService.loadOrgKeys").Str("org_id", orgID).Msg("skipping unreadable organization key")
			continue
		}

		var key *crypto.SymmetricCryptoKey
		switch k := parsed.(type) {
		case organizationEncryptedKey:
			key, err = s.decryptRsaKey(ctx, userID, k.key, privateKey)
		case providerEncryptedKey:
			if !providersLoaded {
				providersLoaded = true
				if providerKeys, err = s.GetProviderKeys(ctx, userID); err != nil {
					log.Warn().Err(err).Str("func", "*keyService.loadOrgKeys").Msg("error loading provider keys, skipping provider organizations")
					complete = false
				}
			}
			providerKey, ok := providerKeys[k.providerID]
			if !ok {
				// the provider key is not available to this account
				continue
			}
			key, err = s.encrypt.UnwrapSymmetricKey(k.key, providerKey)
		default:
			err = fmt.Errorf("%w: organization key variant %T", crypto.ErrUnsupportedEncoding, parsed)
		}
		if err != nil {
			log.Warn().Err(err).Str("func", "*keyService.loadOrgKeys").Str("org_id", orgID).Msg("error decrypting organization key")
			continue
		}

		orgKeys[orgID] = key
	}
	destroyKeys(providerKeys)

	if complete {
		sess.cacheOrgKeys(orgKeys)
	}
	return orgKeys, nil
}

func (s *keyService) GetOrgKey(ctx context.Context, userID uuid.UUID, orgID string) (*crypto.SymmetricCryptoKey, error) {
	if orgID == "" {
		return nil, fmt.Errorf("%w: organization id is required", crypto.ErrPrecondition)
	}

	orgKeys, err := s.GetOrgKeys(ctx, userID)
	if err != nil {
		return nil, err
	}
	key, ok := orgKeys[orgID]
	delete(orgKeys, orgID)
	destroyKeys(orgKeys)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOrganizationKeyNotFound, orgID)
	}
	return key, nil
}

// ── Provider keys ───────────────────────────────────────────────────────────

func (s *keyService) SetProviderKeys(ctx context.Context, userID uuid.UUID, providers []models.ProfileProvider) error {
	if userID == uuid.Nil {
		return ErrUserIDRequired
	}

	encProviderKeys := make(map[string]string, len(providers))
	for _, provider := range providers {
		encProviderKeys[provider.ID] = provider.Key
	}

	if err := store.SetJSON(ctx, s.state, userID, stateEncProviderKeys, encProviderKeys); err != nil {
		return fmt.Errorf("error storing provider keys: %w", err)
	}

	s.session(userID).clearProviderKeys()
	return nil
}

// GetProviderKeys implements [KeyService]. The returned keys are copies
// owned by the caller.
func (s *keyService) GetProviderKeys(ctx context.Context, userID uuid.UUID) (map[string]*crypto.SymmetricCryptoKey, error) {
	if userID == uuid.Nil {
		return nil, ErrUserIDRequired
	}
	if sess := s.existingSession(userID); sess != nil {
		if keys, err := sess.providerKeysCopy(); keys != nil || err != nil {
			return keys, err
		}
	}

	v, err, _ := s.group.Do("providerKeys/"+userID.String(), func() (any, error) {
		return s.loadProviderKeys(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	return cloneKeys(v.(map[string]*crypto.SymmetricCryptoKey))
}

func (s *keyService) loadProviderKeys(ctx context.Context, userID uuid.UUID) (map[string]*crypto.SymmetricCryptoKey, error) {
	sess := s.session(userID)

	encProviderKeys, err := store.GetJSON[map[string]string](ctx, s.state, userID, stateEncProviderKeys)
	if err != nil && !errors.Is(err, store.ErrStateNotFound) {
		return nil, fmt.Errorf("error reading provider keys: %w", err)
	}

	providerKeys := make(map[string]*crypto.SymmetricCryptoKey, len(encProviderKeys))
	if len(encProviderKeys) == 0 {
		sess.cacheProviderKeys(providerKeys)
		return providerKeys, nil
	}

	privateKey, err := s.GetPrivateKey(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(privateKey)

	for providerID, raw := range encProviderKeys {
		key, err := s.decryptRsaKeyString(ctx, userID, raw, privateKey)
		if err != nil {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "*keyService.loadProviderKeys").
				Str("provider_id", providerID).
				Msg("error decrypting provider key")
			continue
		}
		providerKeys[providerID] = key
	}

	sess.cacheProviderKeys(providerKeys)
	return providerKeys, nil
}

func (s *keyService) GetProviderKey(ctx context.Context, userID uuid.UUID, providerID string) (*crypto.SymmetricCryptoKey, error) {
	if providerID == "" {
		return nil, fmt.Errorf("%w: provider id is required", crypto.ErrPrecondition)
	}

	providerKeys, err := s.GetProviderKeys(ctx, userID)
	if err != nil {
		return nil, err
	}
	key, ok := providerKeys[providerID]
	delete(providerKeys, providerID)
	destroyKeys(providerKeys)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderKeyNotFound, providerID)
	}
	return key, nil
}

func (s *keyService) decryptRsaKeyString(ctx context.Context, userID uuid.UUID, raw string, privateKey []byte) (*crypto.SymmetricCryptoKey, error) {
	enc, err := crypto.ParseEncString(raw)
	if err != nil {
		return nil, err
	}
	return s.decryptRsaKey(ctx, userID, enc, privateKey)
}

// decryptRsaKey decrypts a symmetric key encrypted to the user's public key.
func (s *keyService) decryptRsaKey(ctx context.Context, userID uuid.UUID, enc *crypto.EncString, privateKey []byte) (*crypto.SymmetricCryptoKey, error) {
	material, err := s.RsaDecrypt(ctx, userID, enc, privateKey)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(material)

	return crypto.NewSymmetricCryptoKey(material)
}

// ── Key pair ────────────────────────────────────────────────────────────────

func (s *keyService) MakeUserKeyPair(ctx context.Context, userID uuid.UUID, key *crypto.SymmetricCryptoKey) (string, *crypto.EncString, error) {
	key, release, err := s.userEncryptionKey(ctx, userID, key)
	if err != nil {
		return "", nil, err
	}
	defer release()

	publicKey, privateKey, err := s.fn.RsaGenerateKeyPair(rsaKeyBits)
	if err != nil {
		return "", nil, err
	}
	defer memguard.WipeBytes(privateKey)

	encPrivateKey, err := s.encrypt.Encrypt(privateKey, key)
	if err != nil {
		return "", nil, err
	}
	return base64.StdEncoding.EncodeToString(publicKey), encPrivateKey, nil
}

func (s *keyService) SetPrivateKey(ctx context.Context, userID uuid.UUID, encPrivateKey *crypto.EncString) error {
	if userID == uuid.Nil {
		return ErrUserIDRequired
	}
	if encPrivateKey == nil {
		return fmt.Errorf("%w: private key is required", crypto.ErrPrecondition)
	}

	if err := s.state.Set(ctx, userID, stateEncPrivateKey, encPrivateKey.String()); err != nil {
		return fmt.Errorf("error storing private key: %w", err)
	}

	sess := s.session(userID)
	sess.clearKeyPair()
	sess.clearProviderKeys()
	return nil
}

// GetPrivateKey implements [KeyService]. The returned slice is a copy the
// caller may wipe.
func (s *keyService) GetPrivateKey(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	if userID == uuid.Nil {
		return nil, ErrUserIDRequired
	}
	if sess := s.existingSession(userID); sess != nil {
		if privateKey := sess.privateKeyCopy(); privateKey != nil {
			return privateKey, nil
		}
	}

	raw, err := s.state.Get(ctx, userID, stateEncPrivateKey)
	if errors.Is(err, store.ErrStateNotFound) {
		return nil, ErrPrivateKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading private key: %w", err)
	}
	enc, err := crypto.ParseEncString(raw)
	if err != nil {
		return nil, err
	}

	userKey, err := s.GetUserKey(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer userKey.Destroy()

	privateKey, err := s.encrypt.Decrypt(enc, userKey)
	if err != nil {
		return nil, fmt.Errorf("error decrypting private key: %w", err)
	}

	s.session(userID).cachePrivateKey(privateKey)
	return privateKey, nil
}

// GetPublicKey implements [KeyService]. The returned slice is a copy.
func (s *keyService) GetPublicKey(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	if sess := s.existingSession(userID); sess != nil {
		if publicKey := sess.publicKeyCopy(); publicKey != nil {
			return publicKey, nil
		}
	}

	privateKey, err := s.GetPrivateKey(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(privateKey)

	publicKey, err := s.fn.RsaExtractPublicKey(privateKey)
	if err != nil {
		return nil, err
	}

	s.session(userID).cachePublicKey(publicKey)
	return publicKey, nil
}

func (s *keyService) MakeShareKey(ctx context.Context, userID uuid.UUID) (*crypto.EncString, *crypto.SymmetricCryptoKey, error) {
	publicKey, err := s.GetPublicKey(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	shareKey, err := s.keyGen.CreateKey(512)
	if err != nil {
		return nil, nil, err
	}

	material := shareKey.Key()
	defer memguard.WipeBytes(material)

	enc, err := s.RsaEncrypt(material, publicKey)
	if err != nil {
		shareKey.Destroy()
		return nil, nil, err
	}
	return enc, shareKey, nil
}

// MakeOrgKey implements [KeyService]. The key of a new organization or
// provider is encrypted to the user's public key like a share key.
func (s *keyService) MakeOrgKey(ctx context.Context, userID uuid.UUID) (*crypto.EncString, *crypto.SymmetricCryptoKey, error) {
	if userID == uuid.Nil {
		return nil, nil, ErrUserIDRequired
	}
	return s.MakeShareKey(ctx, userID)
}

// RsaEncrypt implements [KeyService]. The envelope is always
// [crypto.Rsa2048OaepSha1B64].
func (s *keyService) RsaEncrypt(data, publicKey []byte) (*crypto.EncString, error) {
	if len(publicKey) == 0 {
		return nil, fmt.Errorf("%w: public key is required", crypto.ErrPrecondition)
	}

	encrypted, err := s.fn.RsaEncrypt(data, publicKey, crypto.SHA1)
	if err != nil {
		return nil, err
	}
	return crypto.NewEncString(crypto.Rsa2048OaepSha1B64, encrypted, nil, nil)
}

func (s *keyService) RsaDecrypt(ctx context.Context, userID uuid.UUID, enc *crypto.EncString, privateKey []byte) ([]byte, error) {
	if enc == nil {
		return nil, fmt.Errorf("%w: nothing to decrypt", crypto.ErrPrecondition)
	}

	alg, err := enc.EncryptionType().RSAHashAlgorithm()
	if err != nil {
		return nil, err
	}

	if privateKey == nil {
		if privateKey, err = s.GetPrivateKey(ctx, userID); err != nil {
			return nil, err
		}
		defer memguard.WipeBytes(privateKey)
	}
	return s.fn.RsaDecrypt(enc.Data(), privateKey, alg)
}
