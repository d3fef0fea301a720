package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-item-sync/internal/config"
	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/internal/utils"
	"github.com/MKhiriev/go-item-sync/models"
)

const blobExt = ".blob"

// localBlobStore keeps blobs as files under a root directory. Credentials
// are ignored.
type localBlobStore struct {
	root   string
	prefix string
	keys   keyGenerator

	logger *logger.Logger
}

// NewLocalBlobStore constructs a directory backed [BlobStore], creating
// remoteCfg.RootPath when it does not exist.
func NewLocalBlobStore(remoteCfg config.ClientRemote, logger *logger.Logger) (BlobStore, error) {
	if remoteCfg.RootPath == "" {
		return nil, fmt.Errorf("empty root path")
	}
	if err := os.MkdirAll(remoteCfg.RootPath, 0o700); err != nil {
		return nil, fmt.Errorf("create root path: %w", err)
	}

	return &localBlobStore{
		root:   remoteCfg.RootPath,
		prefix: remoteCfg.Prefix,
		keys:   utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

// Upload implements [BlobStore]. The blob is written to a temp file in the
// target directory and renamed into place.
func (l *localBlobStore) Upload(ctx context.Context, blob []byte, _ models.Credentials) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := joinKey(l.prefix, l.keys.Generate())
	target := l.path(key)

	if err := os.MkdirAll(filepath.Dir(target), 0o700); err != nil {
		return "", fmt.Errorf("%w: create directory: %w", ErrUnavailable, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("%w: create temp file: %w", ErrUnavailable, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(blob); err != nil {
		tmp.Close()
		return "", fmt.Errorf("%w: write temp file: %w", ErrUnavailable, err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return "", fmt.Errorf("%w: sync temp file: %w", ErrUnavailable, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: close temp file: %w", ErrUnavailable, err)
	}
	if err = os.Rename(tmpName, target); err != nil {
		return "", fmt.Errorf("%w: rename blob: %w", ErrUnavailable, err)
	}

	l.logger.Debug().Str("func", "localBlobStore.Upload").Str("key", key).Int("bytes", len(blob)).Msg("blob stored")
	return key, nil
}

// Download implements [BlobStore].
func (l *localBlobStore) Download(ctx context.Context, key string, _ models.Credentials) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateKey(key); err != nil {
		return nil, err
	}

	blob, err := os.ReadFile(l.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: key %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read blob: %w", ErrUnavailable, err)
	}

	return blob, nil
}

func (l *localBlobStore) path(key string) string {
	return filepath.Join(l.root, filepath.FromSlash(key)+blobExt)
}
