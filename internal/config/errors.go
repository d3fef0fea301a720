package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty DSN or an in-memory DSN, which would not survive
	// between commands).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRemoteConfigs indicates an unknown remote backend or a
	// backend missing its required location (bucket, endpoint, root path).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidSyncConfigs indicates non-positive budgets or a merge
	// budget shorter than the push budget.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
