// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-keeper/internal/anchor"
	"github.com/MKhiriev/go-pass-keeper/internal/bundle"
	"github.com/MKhiriev/go-pass-keeper/internal/config"
	"github.com/MKhiriev/go-pass-keeper/internal/crypto"
	"github.com/MKhiriev/go-pass-keeper/internal/engine"
	"github.com/MKhiriev/go-pass-keeper/internal/gate"
	httphandler "github.com/MKhiriev/go-pass-keeper/internal/handler/http"
	"github.com/MKhiriev/go-pass-keeper/internal/logger"
	"github.com/MKhiriev/go-pass-keeper/internal/pastestore"
	"github.com/MKhiriev/go-pass-keeper/internal/persistence"
	"github.com/MKhiriev/go-pass-keeper/internal/server"
	"github.com/MKhiriev/go-pass-keeper/internal/verifier"
	"github.com/MKhiriev/go-pass-keeper/internal/webhook"
	"github.com/MKhiriev/go-pass-keeper/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("copypaste-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Info().Msg("starting a server")
	log.Debug().Any("config", cfg).Msg("received configs")

	adapter, err := newPersistenceAdapter(context.Background(), cfg.Persistence)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating persistence adapter")
	}

	store := pastestore.New(adapter, log)
	cryptoSvc := crypto.NewService()
	webhookDispatcher := webhook.New(log)

	torCfg := gate.TorConfig{
		OnionHost:    cfg.Tor.OnionHost,
		SuppressLogs: cfg.Tor.SuppressLogs,
	}

	eng := engine.New(store, cryptoSvc, webhookDispatcher, torCfg, log)
	bundleOrchestrator := bundle.New(store, cryptoSvc)

	relayer, err := newAnchorRelayer(cfg.Anchor)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating anchor relayer")
	}
	anchorService := anchor.NewService(relayer)

	verifierClient := verifier.New(cfg.Verifier.URL, log)

	handler := httphandler.NewHandler(store, eng, bundleOrchestrator, anchorService, verifierClient, log)
	router := handler.Init()

	srv, err := server.NewServer(router, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newPersistenceAdapter selects and constructs the PersistenceAdapter
// named by cfg.Backend, defaulting to an in-memory adapter when Backend
// is empty or unrecognized.
func newPersistenceAdapter(ctx context.Context, cfg config.Persistence) (persistence.Adapter, error) {
	switch cfg.Backend {
	case "vault":
		return persistence.NewVault(persistence.VaultConfig{
			Addr:      cfg.VaultAddr,
			Token:     cfg.VaultToken,
			Mount:     cfg.VaultMount,
			Namespace: cfg.VaultNamespace,
			KeyPrefix: cfg.VaultPrefix,
		})
	case "redis":
		return persistence.NewRedis(persistence.RedisConfig{
			BaseURL:   cfg.RedisBaseURL,
			Token:     cfg.RedisToken,
			KeyPrefix: cfg.RedisKeyPrefix,
		})
	case "s3":
		return persistence.NewS3(persistence.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Bucket:    cfg.S3Bucket,
			Prefix:    cfg.S3Prefix,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	case "postgres":
		adapter, err := persistence.NewPostgres(ctx, persistence.PostgresConfig{DSN: cfg.PostgresDSN})
		if err != nil {
			return nil, err
		}
		if err := migrations.Migrate(adapter.DB()); err != nil {
			return nil, fmt.Errorf("run postgres migrations: %w", err)
		}
		return adapter, nil
	default:
		return persistence.NewMemory(), nil
	}
}

// newAnchorRelayer constructs the configured anchor.Relayer, falling back
// to a NoopRelayer when no relay endpoint is configured.
func newAnchorRelayer(cfg config.Anchor) (anchor.Relayer, error) {
	if cfg.RelayEndpoint == "" {
		return anchor.NoopRelayer{}, nil
	}
	return anchor.NewHTTPRelayer(anchor.HTTPConfig{
		Endpoint: cfg.RelayEndpoint,
		APIKey:   cfg.RelayAPIKey,
	})
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
