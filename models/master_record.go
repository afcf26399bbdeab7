// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Key-derivation modes recorded in [MasterRecord.KDF]. The mode is fixed at
// vault setup and selects how the symmetric key is derived from the master
// password on every subsequent start, so old vaults keep decrypting after
// the derivation default changes.
const (
	// KDFLegacy repeats the master password up to the cipher key length and
	// truncates. Carried over from the first vault generation.
	KDFLegacy = "legacy"

	// KDFArgon2id derives the key with Argon2id and a stored random salt.
	KDFArgon2id = "argon2id"
)

// MasterRecord is the single durable row gating access to the vault.
//
// It stores a one-way hash of the master password, never the password
// itself. At most one record exists per vault and it is immutable once
// written — there is no change-master-password operation.
type MasterRecord struct {
	ID           int64     `json:"id"`
	PasswordHash string    `json:"password_hash"`
	KDF          string    `json:"kdf"`
	Salt         string    `json:"salt,omitempty"` // hex-encoded, empty for legacy
	CreatedAt    time.Time `json:"created_at,omitempty"`
}
