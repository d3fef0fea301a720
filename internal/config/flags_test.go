package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Host: "", Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8080",
			expectedAddr: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:         "any interface",
			input:        ":8080",
			expectedAddr: NetAddress{Port: 8080},
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non-numeric port",
			input:       "localhost:abc",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
			errorMsg:    "port number is a positive integer",
		},
		{
			name:        "invalid IP address",
			input:       "invalid.host:8080",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestFlagsConfig_AllFlags(t *testing.T) {
	fs := newParsedFlagSet(t,
		"-c", "cfg.json",
		"-d", "items.db",
		"-a", "127.0.0.1:8088",
		"--remote", "s3",
		"--endpoint", "http://minio:9000",
		"--bucket", "snapshots",
		"--region", "us-east-1",
		"--prefix", "p/",
		"--root-path", "/srv",
		"--access-key", "ak",
		"--secret-key", "sk",
		"--token", "tok",
		"--request-timeout", "3s",
		"--push-timeout", "10s",
		"--pull-timeout", "11s",
		"--merge-timeout", "40s",
		"--sync-interval", "1m",
		"--hash-key", "hmac",
		"--passphrase", "secret",
		"--log-level", "debug",
		"--log-file", "out.log",
	)

	cfg, err := flagsConfig(fs)
	require.NoError(t, err)

	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "items.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:8088", cfg.Server.HTTPAddress)
	assert.Equal(t, Remote{
		Backend:        "s3",
		Endpoint:       "http://minio:9000",
		Bucket:         "snapshots",
		Region:         "us-east-1",
		Prefix:         "p/",
		RootPath:       "/srv",
		AccessKey:      "ak",
		SecretKey:      "sk",
		Token:          "tok",
		RequestTimeout: 3 * time.Second,
	}, cfg.Remote)
	assert.Equal(t, Sync{
		PushTimeout:  10 * time.Second,
		PullTimeout:  11 * time.Second,
		MergeTimeout: 40 * time.Second,
		Interval:     time.Minute,
	}, cfg.Sync)
	assert.Equal(t, "hmac", cfg.App.HashKey)
	assert.Equal(t, "secret", cfg.Crypto.Passphrase)
	assert.Equal(t, Log{Level: "debug", File: "out.log"}, cfg.Log)
}

func TestFlagsConfig_UnsetFlagsAreZero(t *testing.T) {
	cfg, err := flagsConfig(newParsedFlagSet(t))
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestRegisterFlags_RejectsBadAddress(t *testing.T) {
	fs := newParsedFlagSet(t)
	err := fs.Parse([]string{"--address", "nohost"})
	assert.Error(t, err)
}
