package service

import (
	"github.com/MKhiriev/go-pass-keycore/internal/adapter"
	"github.com/MKhiriev/go-pass-keycore/internal/config"
	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
	"github.com/MKhiriev/go-pass-keycore/internal/logger"
	"github.com/MKhiriev/go-pass-keycore/internal/store"
)

// Services bundles every service of the agent.
type Services struct {
	KeyService            KeyService
	MasterPasswordService MasterPasswordService
	KdfConfigService      KdfConfigService
	AccountService        AccountService
	ChangeKdfService      ChangeKdfService
	SyncService           SyncService
	SyncJob               SyncJob
	ConfigService         ConfigService
}

// NewServices wires the services on top of the state provider and the
// server adapter.
func NewServices(storages *store.Storages, serverAdapter adapter.ServerAdapter, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	state := storages.StateProvider
	state.Register(StateDefinitions()...)

	fn := crypto.NewCryptoFunctionService()
	encrypt := crypto.NewEncryptService(fn)
	keyGen := crypto.NewKeyGenerationService(fn)

	keys := NewKeyService(state, fn, encrypt, keyGen)
	kdfConfigs := NewKdfConfigService(state)
	accounts := NewAccountService(state, serverAdapter)
	masterPasswords := NewMasterPasswordService(state, keys, keyGen, encrypt, kdfConfigs, accounts)
	syncService := NewSyncService(state, serverAdapter, keys, masterPasswords, kdfConfigs, accounts)

	return &Services{
		KeyService:            keys,
		MasterPasswordService: masterPasswords,
		KdfConfigService:      kdfConfigs,
		AccountService:        accounts,
		ChangeKdfService:      NewChangeKdfService(state, keys, masterPasswords, kdfConfigs, keyGen, encrypt, serverAdapter, cfg.Crypto.MinPBKDF2Iterations),
		SyncService:           syncService,
		SyncJob:               NewSyncJob(accounts, syncService, logger),
		ConfigService:         NewConfigService(serverAdapter, cfg.Features),
	}
}
