package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-item-sync/models"
	"github.com/spf13/pflag"
)

// Default values applied by [GetClientConfig] when a source leaves a field
// unset.
const (
	DefaultDSN          = "itemsync.db"
	DefaultPushTimeout  = 30 * time.Second
	DefaultMergeTimeout = 90 * time.Second
	DefaultSyncInterval = 5 * time.Minute
	DefaultHTTPAddress  = "localhost:8080"
	DefaultLogLevel     = "info"

	defaultRequestTimeout = 10 * time.Second
)

// Remote backend names accepted in Remote.Backend.
const (
	BackendS3    = "s3"
	BackendHTTP  = "http"
	BackendLocal = "local"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used for blob integrity headers.
	HashKey string
	// Version is reported by the version command and endpoint.
	Version string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientRemote holds remote snapshot store settings.
type ClientRemote struct {
	Backend        string
	Endpoint       string
	Bucket         string
	Region         string
	Prefix         string
	RootPath       string
	RequestTimeout time.Duration
	// Credentials are handed to every upload and download call.
	Credentials models.Credentials
}

// Configured reports whether a remote backend has been selected.
func (r ClientRemote) Configured() bool {
	return r.Backend != ""
}

// ClientSync contains per-operation budgets and the background interval.
type ClientSync struct {
	PushTimeout  time.Duration
	PullTimeout  time.Duration
	MergeTimeout time.Duration
	Interval     time.Duration
}

// ClientServer holds the local HTTP API settings.
type ClientServer struct {
	HTTPAddress string
}

// ClientCrypto holds snapshot sealing settings.
type ClientCrypto struct {
	Passphrase string
}

// ClientLog holds logging settings.
type ClientLog struct {
	Level string
	File  string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	Remote  ClientRemote
	Sync    ClientSync
	Server  ClientServer
	Crypto  ClientCrypto
	Log     ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. fs is the parsed flag set populated by
// [RegisterFlags]; nil skips the flags source.
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
			Version: cfg.App.Version,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: orDefault(cfg.Storage.DB.DSN, DefaultDSN),
			},
		},
		Remote: ClientRemote{
			Backend:        cfg.Remote.Backend,
			Endpoint:       cfg.Remote.Endpoint,
			Bucket:         cfg.Remote.Bucket,
			Region:         cfg.Remote.Region,
			Prefix:         cfg.Remote.Prefix,
			RootPath:       cfg.Remote.RootPath,
			RequestTimeout: orDefault(cfg.Remote.RequestTimeout, defaultRequestTimeout),
			Credentials: models.Credentials{
				AccessKey: cfg.Remote.AccessKey,
				SecretKey: cfg.Remote.SecretKey,
				Token:     cfg.Remote.Token,
			},
		},
		Sync: ClientSync{
			PushTimeout:  orDefault(cfg.Sync.PushTimeout, DefaultPushTimeout),
			MergeTimeout: orDefault(cfg.Sync.MergeTimeout, DefaultMergeTimeout),
			Interval:     orDefault(cfg.Sync.Interval, DefaultSyncInterval),
		},
		Server: ClientServer{
			HTTPAddress: orDefault(cfg.Server.HTTPAddress, DefaultHTTPAddress),
		},
		Crypto: ClientCrypto{
			Passphrase: cfg.Crypto.Passphrase,
		},
		Log: ClientLog{
			Level: orDefault(cfg.Log.Level, DefaultLogLevel),
			File:  cfg.Log.File,
		},
	}
	clientCfg.Sync.PullTimeout = orDefault(cfg.Sync.PullTimeout, clientCfg.Sync.PushTimeout)

	return clientCfg, clientCfg.validate()
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
