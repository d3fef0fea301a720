// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the
// go-item-sync application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the local SQLite item store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Remote holds the remote snapshot store settings.
	Remote Remote `envPrefix:"REMOTE_"`

	// Sync holds per-operation budgets and the background sync interval.
	Sync Sync `envPrefix:"SYNC_"`

	// Server holds the address of the local HTTP API.
	Server Server `envPrefix:"SERVER_"`

	// Crypto holds snapshot sealing settings.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used for blob integrity headers sent to
	// the HTTP remote backend.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local store.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or URI (e.g. "itemsync.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Remote describes where snapshots are published.
type Remote struct {
	// Backend selects the blob store implementation: "s3", "http" or
	// "local". Empty means the remote store is not configured.
	// Env: REMOTE_BACKEND
	Backend string `env:"BACKEND"`

	// Endpoint is the S3 endpoint URL or the HTTP blob service base URL.
	// Env: REMOTE_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Bucket is the S3 bucket holding snapshot objects.
	// Env: REMOTE_BUCKET
	Bucket string `env:"BUCKET"`

	// Region is the S3 region.
	// Env: REMOTE_REGION
	Region string `env:"REGION"`

	// Prefix is prepended to every object key.
	// Env: REMOTE_PREFIX
	Prefix string `env:"PREFIX"`

	// RootPath is the directory used by the "local" backend.
	// Env: REMOTE_ROOT_PATH
	RootPath string `env:"ROOT_PATH"`

	// AccessKey and SecretKey are the S3 static credentials.
	// Env: REMOTE_ACCESS_KEY, REMOTE_SECRET_KEY
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`

	// Token is the bearer token for the HTTP backend.
	// Env: REMOTE_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds a single upload or download request.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds sync engine budgets.
type Sync struct {
	// PushTimeout bounds push, pull, status, conflict listing and
	// resolution.
	// Env: SYNC_PUSH_TIMEOUT
	PushTimeout time.Duration `env:"PUSH_TIMEOUT"`

	// PullTimeout bounds pull. Defaults to PushTimeout.
	// Env: SYNC_PULL_TIMEOUT
	PullTimeout time.Duration `env:"PULL_TIMEOUT"`

	// MergeTimeout bounds merge, which downloads, applies and publishes.
	// Env: SYNC_MERGE_TIMEOUT
	MergeTimeout time.Duration `env:"MERGE_TIMEOUT"`

	// Interval is the period of the background merge job run by "serve".
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`
}

// Server holds network settings for the local HTTP API.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Crypto holds snapshot sealing settings.
type Crypto struct {
	// Passphrase seals snapshots before upload. Empty disables sealing.
	// Env: CRYPTO_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum level ("debug", "info", "warn", "error").
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the rotated log file used by long-running commands.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags (read from fs, which must already be parsed)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}
