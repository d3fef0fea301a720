package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-item-sync/internal/adapter"
	"github.com/MKhiriev/go-item-sync/internal/config"
	"github.com/MKhiriev/go-item-sync/internal/crypto"
	"github.com/MKhiriev/go-item-sync/internal/handler"
	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/internal/server"
	"github.com/MKhiriev/go-item-sync/internal/service"
	"github.com/MKhiriev/go-item-sync/internal/snapshot"
	"github.com/MKhiriev/go-item-sync/internal/store"
	"github.com/MKhiriev/go-item-sync/internal/workers"
)

type App struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	services *service.ClientServices

	logger *logger.Logger
}

// NewApp opens the local store and builds every service. A missing remote
// backend is not an error here; sync operations report it when called.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	var sealer crypto.Sealer
	if cfg.Crypto.Passphrase != "" {
		if sealer, err = crypto.NewSealer(cfg.Crypto.Passphrase); err != nil {
			storages.Close()
			return nil, fmt.Errorf("create snapshot sealer: %w", err)
		}
	}
	gateway := snapshot.NewGateway(storages.Items, sealer, logger)

	blobs, err := adapter.NewBlobStore(ctx, cfg.Remote, cfg.App.HashKey, logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create remote blob store: %w", err)
	}
	if blobs == nil {
		logger.Warn().Str("func", "client.NewApp").Msg("no remote backend configured, sync operations will fail")
	}

	services, err := service.NewClientServices(storages, gateway, blobs, cfg, logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create client services: %w", err)
	}

	return &App{
		cfg:      cfg,
		storages: storages,
		services: services,
		logger:   logger,
	}, nil
}

// Sync returns the sync coordinator for one-shot commands.
func (a *App) Sync() service.ClientSyncService {
	return a.services.SyncService
}

// Items returns the local item store.
func (a *App) Items() store.LocalItemStore {
	return a.storages.Items
}

// Version returns the application version.
func (a *App) Version(ctx context.Context) string {
	return a.services.AppInfoService.GetAppVersion(ctx)
}

func (a *App) Serve(ctx context.Context) error {
	handlers, err := handler.NewHandlers(a.services, a.cfg, a.logger)
	if err != nil {
		return fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, a.cfg.Server, a.logger)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	return workers.New(
		srv,
		workers.NewSyncJobWorker(a.services.SyncJob, a.cfg.Sync.Interval),
	).Run(ctx)
}

func (a *App) Close() error {
	return a.storages.Close()
}
