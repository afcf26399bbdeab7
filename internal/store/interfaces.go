package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/keypass/models"
)

// CredentialRepository is the persistence contract for encrypted credential
// records. Password values cross this boundary already encrypted; the
// repository never sees plaintext.
type CredentialRepository interface {
	CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error)
	FindCredentialsByTitle(ctx context.Context, title string) ([]models.Credential, error)
	FindCredential(ctx context.Context, title string, username string) (models.Credential, error)
	UpdateCredential(ctx context.Context, title string, username string, url *string, password *string) (models.Credential, error)
	DeleteCredential(ctx context.Context, title string, username string) error
	GetAllTitles(ctx context.Context) ([]string, error)
}

// MasterRecordRepository is the persistence contract for the single vault
// master record (password hash plus key-derivation parameters).
type MasterRecordRepository interface {
	GetMasterRecord(ctx context.Context) (models.MasterRecord, error)
	SaveMasterRecord(ctx context.Context, record models.MasterRecord) (models.MasterRecord, error)
}
