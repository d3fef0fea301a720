package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "hash_key": "hmac", "version": "0.3.0" },
		"storage": { "db": { "dsn": "items.db" } },
		"remote": {
			"backend": "http",
			"endpoint": "http://localhost:9000",
			"token": "tok",
			"request_timeout": "5s"
		},
		"sync": {
			"push_timeout": "20s",
			"pull_timeout": 25000000000,
			"merge_timeout": "1m",
			"interval": "10m"
		},
		"server": { "http_address": "localhost:8081" },
		"crypto": { "passphrase": "secret" },
		"log": { "level": "warn", "file": "itemsync.log" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "hmac", cfg.App.HashKey)
	assert.Equal(t, "0.3.0", cfg.App.Version)
	assert.Equal(t, "items.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "http", cfg.Remote.Backend)
	assert.Equal(t, "http://localhost:9000", cfg.Remote.Endpoint)
	assert.Equal(t, "tok", cfg.Remote.Token)
	assert.Equal(t, 5*time.Second, cfg.Remote.RequestTimeout)

	assert.Equal(t, 20*time.Second, cfg.Sync.PushTimeout)
	assert.Equal(t, 25*time.Second, cfg.Sync.PullTimeout)
	assert.Equal(t, time.Minute, cfg.Sync.MergeTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Sync.Interval)

	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "secret", cfg.Crypto.Passphrase)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "itemsync.log", cfg.Log.File)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad-duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"sync":{"interval":"soon"}}`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
