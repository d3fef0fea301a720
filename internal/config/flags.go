package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flag names shared by RegisterFlags and flagsConfig.
const (
	flagConfig         = "config"
	flagDSN            = "dsn"
	flagAddress        = "address"
	flagRemote         = "remote"
	flagEndpoint       = "endpoint"
	flagBucket         = "bucket"
	flagRegion         = "region"
	flagPrefix         = "prefix"
	flagRootPath       = "root-path"
	flagAccessKey      = "access-key"
	flagSecretKey      = "secret-key"
	flagToken          = "token"
	flagRequestTimeout = "request-timeout"
	flagPushTimeout    = "push-timeout"
	flagPullTimeout    = "pull-timeout"
	flagMergeTimeout   = "merge-timeout"
	flagInterval       = "sync-interval"
	flagHashKey        = "hash-key"
	flagPassphrase     = "passphrase"
	flagLogLevel       = "log-level"
	flagLogFile        = "log-file"
)

// RegisterFlags defines every configuration flag on fs. All defaults are
// zero values so that unset flags never override env or JSON sources.
//
// Flags:
//
//	-c/--config        json file path with configs
//	-d/--dsn           local SQLite database DSN
//	-a/--address       HTTP API address in format [host]:[port]
//	--remote           remote backend: s3, http or local
//	--endpoint         S3 endpoint or HTTP blob service URL
//	--bucket           S3 bucket
//	--region           S3 region
//	--prefix           object key prefix
//	--root-path        directory for the local backend
//	--access-key       S3 access key
//	--secret-key       S3 secret key
//	--token            bearer token for the HTTP backend
//	--request-timeout  single blob request timeout (e.g. "10s")
//	--push-timeout     push budget (e.g. "30s")
//	--pull-timeout     pull budget (e.g. "30s")
//	--merge-timeout    merge budget (e.g. "90s")
//	--sync-interval    background merge interval (e.g. "5m")
//	--hash-key         HMAC key for blob integrity headers
//	--passphrase       snapshot sealing passphrase
//	--log-level        minimum log level
//	--log-file         rotated log file path
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(flagConfig, "c", "", "JSON config file path")
	fs.StringP(flagDSN, "d", "", "Local database DSN")
	fs.VarP(&NetAddress{}, flagAddress, "a", "HTTP API address host:port")
	fs.String(flagRemote, "", "Remote backend: s3, http or local")
	fs.String(flagEndpoint, "", "Remote endpoint URL")
	fs.String(flagBucket, "", "S3 bucket")
	fs.String(flagRegion, "", "S3 region")
	fs.String(flagPrefix, "", "Object key prefix")
	fs.String(flagRootPath, "", "Directory for the local backend")
	fs.String(flagAccessKey, "", "S3 access key")
	fs.String(flagSecretKey, "", "S3 secret key")
	fs.String(flagToken, "", "Bearer token for the HTTP backend")
	fs.Duration(flagRequestTimeout, 0, "Single blob request timeout (e.g., 10s)")
	fs.Duration(flagPushTimeout, 0, "Push budget (e.g., 30s)")
	fs.Duration(flagPullTimeout, 0, "Pull budget (e.g., 30s)")
	fs.Duration(flagMergeTimeout, 0, "Merge budget (e.g., 90s)")
	fs.Duration(flagInterval, 0, "Background merge interval (e.g., 5m)")
	fs.String(flagHashKey, "", "HMAC key for blob integrity headers")
	fs.String(flagPassphrase, "", "Snapshot sealing passphrase")
	fs.String(flagLogLevel, "", "Minimum log level")
	fs.String(flagLogFile, "", "Rotated log file path")
}

// flagsConfig reads the flags defined by [RegisterFlags] from an already
// parsed fs into a [StructuredConfig].
func flagsConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	var errs []error
	str := func(name string) string {
		v, err := fs.GetString(name)
		errs = append(errs, err)
		return v
	}
	dur := func(name string) time.Duration {
		v, err := fs.GetDuration(name)
		errs = append(errs, err)
		return v
	}

	var address string
	if f := fs.Lookup(flagAddress); f != nil {
		address = f.Value.String()
	}

	cfg := &StructuredConfig{
		App: App{
			HashKey: str(flagHashKey),
		},
		Storage: Storage{
			DB: DB{DSN: str(flagDSN)},
		},
		Remote: Remote{
			Backend:        str(flagRemote),
			Endpoint:       str(flagEndpoint),
			Bucket:         str(flagBucket),
			Region:         str(flagRegion),
			Prefix:         str(flagPrefix),
			RootPath:       str(flagRootPath),
			AccessKey:      str(flagAccessKey),
			SecretKey:      str(flagSecretKey),
			Token:          str(flagToken),
			RequestTimeout: dur(flagRequestTimeout),
		},
		Sync: Sync{
			PushTimeout:  dur(flagPushTimeout),
			PullTimeout:  dur(flagPullTimeout),
			MergeTimeout: dur(flagMergeTimeout),
			Interval:     dur(flagInterval),
		},
		Server: Server{
			HTTPAddress: address,
		},
		Crypto: Crypto{
			Passphrase: str(flagPassphrase),
		},
		Log: Log{
			Level: str(flagLogLevel),
			File:  str(flagLogFile),
		},
		JSONFilePath: str(flagConfig),
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "address"
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
