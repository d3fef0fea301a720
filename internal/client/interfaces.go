// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of a runnable sync process.
type Client interface {
	// Serve runs the long-lived parts of the process and blocks until ctx
	// is done or one of them fails.
	Serve(ctx context.Context) error

	// Close releases the local store.
	Close() error
}
