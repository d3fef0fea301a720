package http

import (
	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/internal/service"
)

type Handler struct {
	sync    service.ClientSyncService
	appInfo service.AppInfoService

	// hashKey signs responses and verifies signed request bodies. Empty
	// disables both.
	hashKey string

	logger *logger.Logger
}

func NewHandler(services *service.ClientServices, hashKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		sync:    services.SyncService,
		appInfo: services.AppInfoService,
		hashKey: hashKey,
		logger:  logger,
	}
}
