package store

import "github.com/MKhiriev/keypass/internal/logger"

// Storages groups all repository implementations behind their interfaces.
type Storages struct {
	CredentialRepository   CredentialRepository
	MasterRecordRepository MasterRecordRepository
}

// NewStorages constructs every repository on top of the shared database
// connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		CredentialRepository:   NewCredentialRepository(db, logger),
		MasterRecordRepository: NewMasterRecordRepository(db, logger),
	}
}
