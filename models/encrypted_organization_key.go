package models

// Organization key sources stored in [EncryptedOrganizationKeyData.Type].
const (
	OrganizationKeyTypeOrganization = "organization"
	OrganizationKeyTypeProvider     = "provider"
)

// EncryptedOrganizationKeyData is the persisted form of an organization key
// before it is decrypted.
type EncryptedOrganizationKeyData struct {
	Type       string `json:"type"`
	Key        string `json:"key"`
	ProviderID string `json:"providerId,omitempty"`
}
