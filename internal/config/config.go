// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default configuration values applied by [configBuilder.build] when no
// source (environment, flags, JSON file) supplies a value.
const (
	DefaultHTTPAddress     = "localhost:8000"
	DefaultDSN             = ".db"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultGeneratorLength = 16
)

// StructuredConfig is the top-level configuration container for the keypass
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Vault holds vault-level settings: the password generator default
	// length and the key-derivation mode used for newly created vaults.
	Vault Vault `envPrefix:"VAULT_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Vault holds settings of the cryptographic core.
type Vault struct {
	// GeneratorLength is the password length used when a create or update
	// request asks for a generated password without naming a length.
	// Env: VAULT_GENERATOR_LENGTH
	GeneratorLength int `env:"GENERATOR_LENGTH"`

	// KDF selects the key-derivation mode recorded at vault setup:
	// "legacy" (repeat-and-truncate, compatible with the first vault
	// generation) or "argon2id". Existing vaults always keep the mode
	// stored in their master record; this setting only affects new vaults.
	// Env: VAULT_KDF
	KDF string `env:"KDF"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend and carries its connection string. A value
	// starting with "postgres://" or "postgresql://" opens PostgreSQL via
	// pgx; anything else is treated as an SQLite database file path
	// (default ".db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "localhost:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied after the merge for any field still unset.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
