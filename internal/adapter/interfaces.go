package adapter

import (
	"context"

	"github.com/MKhiriev/keypass/models"
)

// VaultClient is the programmatic client of the vault's HTTP API. It is
// consumed by cmd/healthcheck and by integrations that talk to a running
// vault process over loopback.
type VaultClient interface {
	CreateEntry(ctx context.Context, entry models.PasswordEntry) (models.Credential, error)
	GetEntriesByTitle(ctx context.Context, title string) ([]models.Credential, error)
	GetEntry(ctx context.Context, title string, username string) (models.Credential, error)
	UpdateEntry(ctx context.Context, entry models.UpdateEntry) (models.Credential, error)
	DeleteEntry(ctx context.Context, title string, username string) error
	GetAllTitles(ctx context.Context) ([]string, error)
	Health(ctx context.Context) error
}
