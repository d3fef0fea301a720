// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Only source-independent checks live here; defaults are applied later
// by [GetClientConfig], so empty fields are accepted.
func (cfg *StructuredConfig) validate() error {
	if cfg.Sync.PushTimeout < 0 || cfg.Sync.PullTimeout < 0 ||
		cfg.Sync.MergeTimeout < 0 || cfg.Sync.Interval < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidSyncConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Remote.Backend {
	case "":
	case BackendS3:
		if cfg.Remote.Bucket == "" {
			return fmt.Errorf("%w: s3 backend requires a bucket", ErrInvalidRemoteConfigs)
		}
	case BackendHTTP:
		if cfg.Remote.Endpoint == "" {
			return fmt.Errorf("%w: http backend requires an endpoint", ErrInvalidRemoteConfigs)
		}
	case BackendLocal:
		if cfg.Remote.RootPath == "" {
			return fmt.Errorf("%w: local backend requires a root path", ErrInvalidRemoteConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidRemoteConfigs, cfg.Remote.Backend)
	}

	if cfg.Sync.MergeTimeout < cfg.Sync.PushTimeout {
		return fmt.Errorf("%w: merge timeout shorter than push timeout", ErrInvalidSyncConfigs)
	}

	return nil
}
