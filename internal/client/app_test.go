package client

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-item-sync/internal/config"
	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/internal/service"
	"github.com/MKhiriev/go-item-sync/models"
)

func testConfig(t *testing.T) *config.ClientConfig {
	t.Helper()
	dir := t.TempDir()
	return &config.ClientConfig{
		App:     config.ClientApp{Version: "test"},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(dir, "items.db")}},
		Remote:  config.ClientRemote{Backend: config.BackendLocal, RootPath: filepath.Join(dir, "blobs")},
		Server:  config.ClientServer{HTTPAddress: "127.0.0.1:0"},
	}
}

func TestNewApp_PushThroughLocalBackend(t *testing.T) {
	ctx := context.Background()
	app, err := NewApp(ctx, testConfig(t), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })

	assert.Equal(t, "test", app.Version(ctx))

	require.NoError(t, app.Items().InsertMany(ctx, models.NewItem("1", map[string]string{"title": "one"}, time.Now())))

	pushed, err := app.Sync().Push(ctx)
	require.NoError(t, err)
	assert.True(t, pushed)

	status, err := app.Sync().GetSyncStatus(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, status.LastKey)
	assert.False(t, status.HasConflict)
}

func TestNewApp_WithoutRemote(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.Remote = config.ClientRemote{}

	app, err := NewApp(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })

	_, err = app.Sync().Push(ctx)
	assert.ErrorIs(t, err, service.ErrConfiguration)
}

func TestNewApp_UnknownBackend(t *testing.T) {
	cfg := testConfig(t)
	cfg.Remote.Backend = "ftp"

	_, err := NewApp(context.Background(), cfg, logger.Nop())

	assert.Error(t, err)
}

func TestApp_ServeStopsWithContext(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(t), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}

func TestApp_ServeWithoutAddress(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.HTTPAddress = ""
	app, err := NewApp(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })

	assert.Error(t, app.Serve(context.Background()))
}
