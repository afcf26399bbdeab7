package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/keypass/internal/config"
	"github.com/MKhiriev/keypass/internal/crypto"
	"github.com/MKhiriev/keypass/internal/gate"
	"github.com/MKhiriev/keypass/internal/handler"
	"github.com/MKhiriev/keypass/internal/logger"
	"github.com/MKhiriev/keypass/internal/server"
	"github.com/MKhiriev/keypass/internal/service"
	"github.com/MKhiriev/keypass/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	ctx := context.Background()

	log := logger.NewLogger("keypass-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing database")
		}
	}()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)

	keychain := crypto.NewKeyChainService()
	masterPassword, masterRecord, err := gate.NewGate(storages.MasterRecordRepository, keychain, cfg.Vault.KDF, log).Unlock(ctx)
	if err != nil {
		// covers gate.ErrVaultLocked after three wrong attempts
		log.Fatal().Err(err).Msg("vault unlock failed")
	}

	key, err := crypto.KeyFromMaster(keychain, masterPassword, masterRecord)
	if err != nil {
		log.Fatal().Err(err).Msg("error deriving vault key")
	}

	cipher, err := crypto.NewRecordCipher(key)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating record cipher")
	}

	services := service.NewServices(storages, db, cipher, *cfg, log)
	handlers := handler.NewHandlers(services, log)

	servers, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	servers.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
