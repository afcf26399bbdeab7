package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/keypass/internal/validators"
	"github.com/MKhiriev/keypass/models"
)

// VaultValidationService decorates a [VaultService] with request validation.
// Path parameters (title, username) and request bodies are checked before the
// inner service is reached; validator sentinel errors stay unwrappable so the
// handler layer can map them to client errors.
type VaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

// NewVaultValidationService constructs the validation decorator. Call Wrap to
// attach the service being decorated.
func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewCredentialValidator(),
	}
}

func (v *VaultValidationService) CreateEntry(ctx context.Context, entry models.PasswordEntry) (models.Credential, error) {
	if err := v.validator.Validate(ctx, entry); err != nil {
		return models.Credential{}, fmt.Errorf("error during password entry validation: %w", err)
	}

	return v.inner.CreateEntry(ctx, entry)
}

func (v *VaultValidationService) GetEntriesByTitle(ctx context.Context, title string) ([]models.Credential, error) {
	if title == "" {
		return nil, fmt.Errorf("error during title validation: %w", validators.ErrEmptyTitle)
	}

	return v.inner.GetEntriesByTitle(ctx, title)
}

func (v *VaultValidationService) GetEntry(ctx context.Context, title string, username string) (models.Credential, error) {
	if title == "" {
		return models.Credential{}, fmt.Errorf("error during title validation: %w", validators.ErrEmptyTitle)
	}
	if username == "" {
		return models.Credential{}, fmt.Errorf("error during username validation: %w", validators.ErrEmptyUsername)
	}

	return v.inner.GetEntry(ctx, title, username)
}

func (v *VaultValidationService) GetAllTitles(ctx context.Context) ([]string, error) {
	return v.inner.GetAllTitles(ctx)
}

func (v *VaultValidationService) UpdateEntry(ctx context.Context, entry models.UpdateEntry) (models.Credential, error) {
	if err := v.validator.Validate(ctx, entry); err != nil {
		return models.Credential{}, fmt.Errorf("error during update entry validation: %w", err)
	}

	return v.inner.UpdateEntry(ctx, entry)
}

func (v *VaultValidationService) DeleteEntry(ctx context.Context, title string, username string) error {
	if title == "" {
		return fmt.Errorf("error during title validation: %w", validators.ErrEmptyTitle)
	}
	if username == "" {
		return fmt.Errorf("error during username validation: %w", validators.ErrEmptyUsername)
	}

	return v.inner.DeleteEntry(ctx, title, username)
}

// Wrap attaches the decorated service and returns the decorator as a
// [VaultService].
func (v *VaultValidationService) Wrap(inner VaultService) VaultService {
	v.inner = inner
	return v
}
