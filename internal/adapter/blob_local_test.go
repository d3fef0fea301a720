package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-item-sync/internal/config"
	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalStore(t *testing.T, prefix string) (*localBlobStore, string) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "remote")

	s, err := NewLocalBlobStore(config.ClientRemote{Backend: config.BackendLocal, RootPath: root, Prefix: prefix}, logger.Nop())
	require.NoError(t, err)
	return s.(*localBlobStore), root
}

func TestLocal_UploadThenDownload(t *testing.T) {
	s, root := newTestLocalStore(t, "laptop")
	blob := []byte("snapshot")

	key, err := s.Upload(context.Background(), blob, models.Credentials{})
	require.NoError(t, err)
	assert.Contains(t, key, "laptop/")

	onDisk, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(key)+blobExt))
	require.NoError(t, err)
	assert.Equal(t, blob, onDisk)

	got, err := s.Download(context.Background(), key, models.Credentials{})
	require.NoError(t, err)
	assert.Equal(t, blob, got)
}

func TestLocal_UploadProducesFreshKeys(t *testing.T) {
	s, root := newTestLocalStore(t, "")

	first, err := s.Upload(context.Background(), []byte("a"), models.Credentials{})
	require.NoError(t, err)
	second, err := s.Upload(context.Background(), []byte("b"), models.Credentials{})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temp files may be left behind")
}

func TestLocal_DownloadMissing(t *testing.T) {
	s, _ := newTestLocalStore(t, "")

	_, err := s.Download(context.Background(), "0190d1c2-missing", models.Credentials{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocal_DownloadRejectsTraversal(t *testing.T) {
	s, _ := newTestLocalStore(t, "")

	_, err := s.Download(context.Background(), "../../etc/passwd", models.Credentials{})
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestLocal_CanceledContext(t *testing.T) {
	s, _ := newTestLocalStore(t, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Upload(ctx, []byte("a"), models.Credentials{})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.Download(ctx, "k", models.Credentials{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewLocalBlobStore_EmptyRoot(t *testing.T) {
	_, err := NewLocalBlobStore(config.ClientRemote{Backend: config.BackendLocal}, logger.Nop())
	require.Error(t, err)
}
