package server

import (
	"time"

	"github.com/MKhiriev/go-item-sync/internal/config"
	"github.com/MKhiriev/go-item-sync/internal/handler"
	"github.com/MKhiriev/go-item-sync/internal/logger"
)

const shutdownTimeout = 10 * time.Second

func NewServer(handlers *handler.Handlers, cfg config.ClientServer, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNothingToServe
	}

	return newHTTPServer(handlers.HTTP.Init(), cfg.HTTPAddress, logger), nil
}
