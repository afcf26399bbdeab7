package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/keypass/models"
)

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultGeneratorLength, cfg.Vault.GeneratorLength)
	assert.Equal(t, models.KDFLegacy, cfg.Vault.KDF)
}

func TestBuild_FirstNonZeroValueWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:9001"}},
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:9002", RequestTimeout: time.Minute}},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	// mergo keeps the already-set value from the earlier source
	assert.Equal(t, "localhost:9001", cfg.Server.HTTPAddress)
	// but fills fields the earlier source left empty
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
}

func TestBuild_PropagatesSourceError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	_, err := b.build()

	require.Error(t, err)
}

func TestValidate_RejectsUnknownKDF(t *testing.T) {
	cfg := &StructuredConfig{
		Vault:   Vault{GeneratorLength: 16, KDF: "scrypt"},
		Storage: Storage{DB: DB{DSN: ".db"}},
		Server:  Server{HTTPAddress: "localhost:8000"},
	}

	err := cfg.validate()

	assert.ErrorIs(t, err, ErrInvalidVaultConfigs)
}

func TestValidate_RejectsNonPositiveGeneratorLength(t *testing.T) {
	cfg := &StructuredConfig{
		Vault:   Vault{GeneratorLength: -1, KDF: models.KDFLegacy},
		Storage: Storage{DB: DB{DSN: ".db"}},
		Server:  Server{HTTPAddress: "localhost:8000"},
	}

	err := cfg.validate()

	assert.ErrorIs(t, err, ErrInvalidVaultConfigs)
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	require.NoError(t, cfg.validate())
}
