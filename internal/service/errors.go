package service

import "errors"

var (
	// ErrConfiguration means the operation needs a remote blob store and none
	// is configured.
	ErrConfiguration = errors.New("remote store is not configured")
	// ErrNoSyncRecord means pull was asked for before any snapshot key was
	// recorded.
	ErrNoSyncRecord = errors.New("no sync record: nothing has been pushed or merged yet")
	ErrBackup       = errors.New("backup failed")
	ErrRestore      = errors.New("restore failed")
	ErrTransport    = errors.New("transport failed")
	ErrTimeout      = errors.New("sync operation timed out")

	ErrInvalidResolution = errors.New("invalid conflict resolution")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
