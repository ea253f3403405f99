package service

import "github.com/MKhiriev/go-pass-keycore/internal/store"

// Per-user state owned by the services.
var (
	stateMasterKeyEncryptedUserKey = store.KeyDefinition{Name: "masterKeyEncryptedUserKey", Tier: store.TierDisk, ClearOn: store.ClearOnLogout}
	stateUserKeyAuto               = store.KeyDefinition{Name: "userKeyAutoUnlock", Tier: store.TierSecure, ClearOn: store.ClearOnLogout}
	stateAutoUnlockEnabled         = store.KeyDefinition{Name: "autoUnlockEnabled", Tier: store.TierDisk, ClearOn: store.ClearOnLogout}
	stateEncPrivateKey             = store.KeyDefinition{Name: "encPrivateKey", Tier: store.TierDisk, ClearOn: store.ClearOnLogout}
	stateEncOrgKeys                = store.KeyDefinition{Name: "encOrgKeys", Tier: store.TierDisk, ClearOn: store.ClearOnLogout}
	stateEncProviderKeys           = store.KeyDefinition{Name: "encProviderKeys", Tier: store.TierDisk, ClearOn: store.ClearOnLogout}
	stateKeyHash                   = store.KeyDefinition{Name: "masterKeyHash", Tier: store.TierDisk, ClearOn: store.ClearOnLogout}

	statePinKeyEncryptedUserKeyPersistent = store.KeyDefinition{Name: "pinKeyEncryptedUserKeyPersistent", Tier: store.TierDisk, ClearOn: store.ClearOnLogout}
	statePinKeyEncryptedUserKeyEphemeral  = store.KeyDefinition{Name: "pinKeyEncryptedUserKeyEphemeral", Tier: store.TierMemory, ClearOn: store.ClearOnLock | store.ClearOnLogout}
	stateUserKeyEncryptedPin              = store.KeyDefinition{Name: "userKeyEncryptedPin", Tier: store.TierDisk, ClearOn: store.ClearOnLogout}
	statePinKeyEncryptedMasterKey         = store.KeyDefinition{Name: "pinKeyEncryptedMasterKey", Tier: store.TierDisk, ClearOn: store.ClearOnLogout}

	stateKdfConfig            = store.KeyDefinition{Name: "kdfConfig", Tier: store.TierDisk, ClearOn: store.ClearOnLogout}
	stateMasterPasswordUnlock = store.KeyDefinition{Name: "masterPasswordUnlockData", Tier: store.TierDisk, ClearOn: store.ClearOnLogout}

	stateAccount       = store.KeyDefinition{Name: "account", Tier: store.TierDisk, ClearOn: store.ClearOnLogout}
	stateAccessToken   = store.KeyDefinition{Name: "accessToken", Tier: store.TierSecure, ClearOn: store.ClearOnLogout}
	stateLastSync      = store.KeyDefinition{Name: "lastSync", Tier: store.TierDisk, ClearOn: store.ClearOnLogout}
	stateSecurityStamp = store.KeyDefinition{Name: "securityStamp", Tier: store.TierDisk, ClearOn: store.ClearOnLogout}
)

// Global state is stored under uuid.Nil.
var (
	stateActiveUserID = store.KeyDefinition{Name: "activeUserId", Tier: store.TierDisk}
)

// StateDefinitions lists every definition the services use, for registration
// with [store.NewStateProvider].
func StateDefinitions() []store.KeyDefinition {
	return []store.KeyDefinition{
		stateMasterKeyEncryptedUserKey,
		stateUserKeyAuto,
		stateAutoUnlockEnabled,
		stateEncPrivateKey,
		stateEncOrgKeys,
		stateEncProviderKeys,
		stateKeyHash,
		statePinKeyEncryptedUserKeyPersistent,
		statePinKeyEncryptedUserKeyEphemeral,
		stateUserKeyEncryptedPin,
		statePinKeyEncryptedMasterKey,
		stateKdfConfig,
		stateMasterPasswordUnlock,
		stateAccount,
		stateAccessToken,
		stateLastSync,
		stateSecurityStamp,
		stateActiveUserID,
	}
}
