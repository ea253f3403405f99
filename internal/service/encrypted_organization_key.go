package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
	"github.com/MKhiriev/go-pass-keycore/models"
)

// encryptedOrganizationKey is the parsed form of a stored organization key.
// It is one of organizationEncryptedKey or providerEncryptedKey.
type encryptedOrganizationKey interface {
	organizationKeyVariant()
}

// organizationEncryptedKey is RSA-encrypted to the user's public key.
type organizationEncryptedKey struct {
	key *crypto.EncString
}

// providerEncryptedKey is encrypted under the key of a provider.
type providerEncryptedKey struct {
	key        *crypto.EncString
	providerID string
}

func (organizationEncryptedKey) organizationKeyVariant() {}
func (providerEncryptedKey) organizationKeyVariant()     {}

// parseEncryptedOrganizationKey parses stored key data. An empty type is the
// format written before provider keys existed.
func parseEncryptedOrganizationKey(data models.EncryptedOrganizationKeyData) (encryptedOrganizationKey, error) {
	enc, err := crypto.ParseEncString(data.Key)
	if err != nil {
		return nil, err
	}

	switch data.Type {
	case models.OrganizationKeyTypeOrganization, "":
		return organizationEncryptedKey{key: enc}, nil
	case models.OrganizationKeyTypeProvider:
		if data.ProviderID == "" {
			return nil, fmt.Errorf("%w: provider key without provider id", crypto.ErrMalformedEnvelope)
		}
		return providerEncryptedKey{key: enc, providerID: data.ProviderID}, nil
	}
	return nil, fmt.Errorf("%w: unknown organization key type %q", crypto.ErrUnsupportedEncoding, data.Type)
}
