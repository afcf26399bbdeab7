package service

import (
	"context"

	"github.com/MKhiriev/keypass/models"
)

// VaultService is the application facade over the credential store and the
// record cipher. Plaintext passwords exist only on this side of the boundary:
// they are encrypted before reaching the repository and decrypted on the way
// back out.
type VaultService interface {
	CreateEntry(ctx context.Context, entry models.PasswordEntry) (models.Credential, error)

	GetEntriesByTitle(ctx context.Context, title string) ([]models.Credential, error)
	GetEntry(ctx context.Context, title string, username string) (models.Credential, error)
	GetAllTitles(ctx context.Context) ([]string, error)

	UpdateEntry(ctx context.Context, entry models.UpdateEntry) (models.Credential, error)
	DeleteEntry(ctx context.Context, title string, username string) error
}

// HealthService reports whether the vault's backing storage is reachable.
type HealthService interface {
	Ping(ctx context.Context) error
}

// VaultServiceWrapper defines middleware composition for VaultService.
// Implementations wrap an existing VaultService to add behavior such as
// logging or validating.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService // returns a decorated VaultService applying additional behavior
}
