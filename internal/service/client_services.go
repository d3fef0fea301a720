package service

import (
	"github.com/MKhiriev/go-item-sync/internal/adapter"
	"github.com/MKhiriev/go-item-sync/internal/config"
	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/internal/snapshot"
	"github.com/MKhiriev/go-item-sync/internal/store"
)

type ClientServices struct {
	SyncService    ClientSyncService
	SyncJob        ClientSyncJob
	AppInfoService AppInfoService
}

func NewClientServices(
	storages *store.ClientStorages,
	gateway snapshot.Gateway,
	blobs adapter.BlobStore,
	cfg *config.ClientConfig,
	logger *logger.Logger,
) (*ClientServices, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	syncSvc := NewClientSyncService(storages, gateway, blobs, cfg.Remote, cfg.Sync, logger)

	return &ClientServices{
		SyncService:    syncSvc,
		SyncJob:        NewClientSyncJob(syncSvc, logger),
		AppInfoService: appInfo,
	}, nil
}
