// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_HASH_KEY": "hmac",
		"APP_VERSION":  "1.2.3",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "/var/lib/itemsync/items.db",

		"REMOTE_BACKEND":         "s3",
		"REMOTE_ENDPOINT":        "http://minio:9000",
		"REMOTE_BUCKET":          "snapshots",
		"REMOTE_REGION":          "eu-central-1",
		"REMOTE_PREFIX":          "team-a/",
		"REMOTE_ROOT_PATH":       "/srv/snapshots",
		"REMOTE_ACCESS_KEY":      "ak",
		"REMOTE_SECRET_KEY":      "sk",
		"REMOTE_TOKEN":           "tok",
		"REMOTE_REQUEST_TIMEOUT": "15s",

		"SYNC_PUSH_TIMEOUT":  "20s",
		"SYNC_PULL_TIMEOUT":  "25s",
		"SYNC_MERGE_TIMEOUT": "1m",
		"SYNC_INTERVAL":      "10m",

		"SERVER_ADDRESS":    "localhost:8080",
		"CRYPTO_PASSPHRASE": "secret",
		"LOG_LEVEL":         "debug",
		"LOG_FILE":          "/tmp/itemsync.log",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "hmac", cfg.App.HashKey)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/var/lib/itemsync/items.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "s3", cfg.Remote.Backend)
	assert.Equal(t, "http://minio:9000", cfg.Remote.Endpoint)
	assert.Equal(t, "snapshots", cfg.Remote.Bucket)
	assert.Equal(t, "eu-central-1", cfg.Remote.Region)
	assert.Equal(t, "team-a/", cfg.Remote.Prefix)
	assert.Equal(t, "/srv/snapshots", cfg.Remote.RootPath)
	assert.Equal(t, "ak", cfg.Remote.AccessKey)
	assert.Equal(t, "sk", cfg.Remote.SecretKey)
	assert.Equal(t, "tok", cfg.Remote.Token)
	assert.Equal(t, 15*time.Second, cfg.Remote.RequestTimeout)

	assert.Equal(t, 20*time.Second, cfg.Sync.PushTimeout)
	assert.Equal(t, 25*time.Second, cfg.Sync.PullTimeout)
	assert.Equal(t, time.Minute, cfg.Sync.MergeTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Sync.Interval)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "secret", cfg.Crypto.Passphrase)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/itemsync.log", cfg.Log.File)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{"REMOTE_BACKEND": "local"})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "local", cfg.Remote.Backend)
	assert.Empty(t, cfg.Remote.Bucket)
	assert.Zero(t, cfg.Sync.MergeTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"SYNC_INTERVAL": "forever"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
