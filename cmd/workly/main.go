// Command workly is the terminal client for the Workly job board.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/workly-labs/workly-cli/internal/adapters/driven/config/file"
	"github.com/workly-labs/workly-cli/internal/adapters/driven/httpapi"
	"github.com/workly-labs/workly-cli/internal/adapters/driven/jwt"
	credfile "github.com/workly-labs/workly-cli/internal/adapters/driven/storage/file"
	"github.com/workly-labs/workly-cli/internal/adapters/driven/storage/sqlite"
	"github.com/workly-labs/workly-cli/internal/adapters/driving/cli"
	"github.com/workly-labs/workly-cli/internal/core/domain"
	"github.com/workly-labs/workly-cli/internal/core/ports/driven"
	"github.com/workly-labs/workly-cli/internal/core/services"
	"github.com/workly-labs/workly-cli/internal/logger"
)

func main() {
	cli.SetBootstrap(bootstrap)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// bootstrap wires adapters to services. It runs once flags are parsed.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.Services, func(), error) {
	configDir := opts.ConfigDir
	if configDir == "" {
		dir, err := file.DefaultConfigDir()
		if err != nil {
			return nil, nil, fmt.Errorf("resolving config directory: %w", err)
		}
		configDir = dir
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("reading settings: %w", err)
	}
	if opts.APIURL != "" {
		settings.API.BaseURL = opts.APIURL
	}
	logger.Debug("Backend: %s", settings.API.BaseURL)

	store, watcher, closeStore, err := openCredentialStore(configDir, settings.Session.Store)
	if err != nil {
		return nil, nil, err
	}

	apiCfg := httpapi.Config{
		BaseURL:   settings.API.BaseURL,
		Timeout:   settings.API.Timeout,
		RateLimit: settings.API.RateLimit,
		Burst:     settings.API.Burst,
	}
	authGateway := httpapi.NewAuthGateway(apiCfg)

	session := services.NewSessionManager(store, authGateway, jwt.NewInspector())
	if watcher != nil {
		session.WithWatcher(watcher)
	}
	if err := session.Reload(ctx); err != nil {
		closeStore()
		return nil, nil, fmt.Errorf("loading session: %w", err)
	}

	client := httpapi.NewClient(apiCfg, session)

	return &cli.Services{
		Session:   session,
		Account:   services.NewAccountService(authGateway, client),
		Jobs:      services.NewJobService(client, settings.Jobs.PageSize),
		Contracts: services.NewContractService(client),
		Reports:   services.NewReportService(client),
		Settings:  settingsService,
	}, closeStore, nil
}

// openCredentialStore opens the configured credential backend.
// Only the file store can report changes made by other processes.
func openCredentialStore(
	configDir string,
	kind domain.CredentialStoreKind,
) (driven.CredentialStore, driven.CredentialWatcher, func(), error) {
	switch kind {
	case domain.CredentialStoreFile:
		store, err := credfile.NewCredentialStore(filepath.Join(configDir, "credentials.json"))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening credential file: %w", err)
		}
		logger.Debug("Session store: %s", store.Path())
		return store, store, func() {}, nil

	default:
		db, err := sqlite.NewStore(filepath.Join(configDir, "data"))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening session database: %w", err)
		}
		logger.Debug("Session store: %s", db.Path())
		return db.CredentialStore(), nil, func() {
			if err := db.Close(); err != nil {
				logger.Warn("closing session database: %v", err)
			}
		}, nil
	}
}
