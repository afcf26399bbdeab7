// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/keypass/internal/config"
	"github.com/MKhiriev/keypass/internal/crypto"
	"github.com/MKhiriev/keypass/internal/logger"
	"github.com/MKhiriev/keypass/internal/store"
	"github.com/MKhiriev/keypass/models"
)

// vaultService implements [VaultService] on top of the credential repository
// and the process-wide record cipher built after gate success.
//
// Decryption failures are deliberately lazy: a wrong master password is only
// discovered when a record fails to decrypt, and any such failure aborts the
// whole read rather than returning partial results.
type vaultService struct {
	credentials store.CredentialRepository
	cipher      crypto.RecordCipher
	generator   crypto.PasswordGenerator

	generatorLength int

	logger *logger.Logger
}

// NewVaultService constructs a [VaultService]. cfg supplies the default
// length used when a request asks for a generated password.
func NewVaultService(credentials store.CredentialRepository, cipher crypto.RecordCipher, generator crypto.PasswordGenerator, cfg config.Vault, logger *logger.Logger) VaultService {
	return &vaultService{
		credentials:     credentials,
		cipher:          cipher,
		generator:       generator,
		generatorLength: cfg.GeneratorLength,
		logger:          logger,
	}
}

// CreateEntry encrypts the password (generating one first when requested) and
// inserts a new credential record. The returned credential echoes the
// plaintext password so the operator sees a generated value exactly once.
func (s *vaultService) CreateEntry(ctx context.Context, entry models.PasswordEntry) (models.Credential, error) {
	log := logger.FromContext(ctx)

	plaintext := entry.Password
	if entry.Generate {
		generated, err := s.generator.Generate(s.generatorLength)
		if err != nil {
			log.Err(err).Str("func", "vaultService.CreateEntry").Msg("failed to generate password")
			return models.Credential{}, err
		}
		plaintext = generated
	}

	encrypted, err := s.cipher.Encrypt(plaintext)
	if err != nil {
		log.Err(err).Str("func", "vaultService.CreateEntry").Msg("failed to encrypt password")
		return models.Credential{}, err
	}

	url := entry.URL
	if url == "" {
		url = models.DefaultURL
	}

	saved, err := s.credentials.CreateCredential(ctx, models.Credential{
		Title:    entry.Title,
		Username: entry.Username,
		URL:      url,
		Password: encrypted,
	})
	if err != nil {
		return models.Credential{}, err
	}

	saved.Password = plaintext

	return saved, nil
}

// GetEntriesByTitle returns every credential stored under title with
// passwords decrypted. A single record that fails to decrypt aborts the whole
// read with [crypto.ErrInvalidCredentials].
func (s *vaultService) GetEntriesByTitle(ctx context.Context, title string) ([]models.Credential, error) {
	credentials, err := s.credentials.FindCredentialsByTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	for i := range credentials {
		plaintext, decryptErr := s.cipher.Decrypt(credentials[i].Password)
		if decryptErr != nil {
			logger.FromContext(ctx).Err(decryptErr).
				Str("func", "vaultService.GetEntriesByTitle").
				Str("title", title).
				Int64("id", credentials[i].ID).
				Msg("failed to decrypt credential, aborting read")
			return nil, decryptErr
		}
		credentials[i].Password = plaintext
	}

	return credentials, nil
}

// GetEntry returns the single credential identified by (title, username)
// with the password decrypted.
func (s *vaultService) GetEntry(ctx context.Context, title string, username string) (models.Credential, error) {
	credential, err := s.credentials.FindCredential(ctx, title, username)
	if err != nil {
		return models.Credential{}, err
	}

	plaintext, decryptErr := s.cipher.Decrypt(credential.Password)
	if decryptErr != nil {
		logger.FromContext(ctx).Err(decryptErr).
			Str("func", "vaultService.GetEntry").
			Str("title", title).
			Str("username", username).
			Msg("failed to decrypt credential")
		return models.Credential{}, decryptErr
	}
	credential.Password = plaintext

	return credential, nil
}

// GetAllTitles returns the distinct titles currently stored in the vault.
func (s *vaultService) GetAllTitles(ctx context.Context) ([]string, error) {
	return s.credentials.GetAllTitles(ctx)
}

// UpdateEntry applies a partial update to the credential identified by
// (title, username). A nil url or password leaves the stored value untouched;
// the generate flag replaces the password with a fresh random one. The
// returned credential carries the plaintext password.
func (s *vaultService) UpdateEntry(ctx context.Context, entry models.UpdateEntry) (models.Credential, error) {
	log := logger.FromContext(ctx)

	var plaintext string
	var encrypted *string

	switch {
	case entry.Generate:
		generated, err := s.generator.Generate(s.generatorLength)
		if err != nil {
			log.Err(err).Str("func", "vaultService.UpdateEntry").Msg("failed to generate password")
			return models.Credential{}, err
		}
		plaintext = generated
	case entry.Password != nil:
		plaintext = *entry.Password
	}

	if entry.Generate || entry.Password != nil {
		blob, err := s.cipher.Encrypt(plaintext)
		if err != nil {
			log.Err(err).Str("func", "vaultService.UpdateEntry").Msg("failed to encrypt password")
			return models.Credential{}, err
		}
		encrypted = &blob
	}

	updated, err := s.credentials.UpdateCredential(ctx, entry.Title, entry.Username, entry.URL, encrypted)
	if err != nil {
		return models.Credential{}, err
	}

	if encrypted != nil {
		updated.Password = plaintext
		return updated, nil
	}

	// url-only update: the stored ciphertext came back, decrypt it
	stored, decryptErr := s.cipher.Decrypt(updated.Password)
	if decryptErr != nil {
		log.Err(decryptErr).
			Str("func", "vaultService.UpdateEntry").
			Str("title", entry.Title).
			Msg("failed to decrypt credential after update")
		return models.Credential{}, decryptErr
	}
	updated.Password = stored

	return updated, nil
}

// DeleteEntry removes the credential identified by (title, username).
func (s *vaultService) DeleteEntry(ctx context.Context, title string, username string) error {
	return s.credentials.DeleteCredential(ctx, title, username)
}
