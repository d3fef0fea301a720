package server

import "context"

// Server defines the lifecycle contract of the control API server.
type Server interface {
	// Run serves requests until ctx is done, then shuts down gracefully.
	// It returns early if the listener fails.
	Run(ctx context.Context) error

	// Addr is the address the server listens on once Run has started.
	Addr() string
}
