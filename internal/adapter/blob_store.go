package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-item-sync/internal/config"
	"github.com/MKhiriev/go-item-sync/internal/logger"
)

// NewBlobStore builds the [BlobStore] selected by remoteCfg.Backend. It
// returns nil and no error when no backend is configured; the sync
// coordinator reports that as a configuration error when a remote is
// actually needed.
func NewBlobStore(ctx context.Context, remoteCfg config.ClientRemote, hashKey string, logger *logger.Logger) (BlobStore, error) {
	switch remoteCfg.Backend {
	case "":
		return nil, nil
	case config.BackendHTTP:
		return NewHTTPBlobStore(remoteCfg, hashKey, logger)
	case config.BackendS3:
		return NewS3BlobStore(ctx, remoteCfg, logger)
	case config.BackendLocal:
		return NewLocalBlobStore(remoteCfg, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, remoteCfg.Backend)
	}
}
