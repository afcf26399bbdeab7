package service

import (
	"github.com/MKhiriev/keypass/internal/config"
	"github.com/MKhiriev/keypass/internal/crypto"
	"github.com/MKhiriev/keypass/internal/logger"
	"github.com/MKhiriev/keypass/internal/store"
)

type Services struct {
	VaultService  VaultService
	HealthService HealthService
}

// NewServices wires the service layer: the vault facade over the credential
// repository and the process-wide cipher, wrapped with request validation,
// plus the storage health probe.
func NewServices(storages *store.Storages, db *store.DB, cipher crypto.RecordCipher, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	vault := NewVaultService(storages.CredentialRepository, cipher, crypto.NewPasswordGenerator(), cfg.Vault, logger)

	return &Services{
		VaultService:  NewVaultValidationService().Wrap(vault),
		HealthService: NewHealthService(db, logger),
	}
}
