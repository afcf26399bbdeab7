// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/keypass/models"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Vault.GeneratorLength <= 0 {
		return ErrInvalidVaultConfigs
	}

	if cfg.Vault.KDF != models.KDFLegacy && cfg.Vault.KDF != models.KDFArgon2id {
		return ErrInvalidVaultConfigs
	}

	return nil
}
