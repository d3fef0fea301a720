// Package server runs the local HTTP control API.
//
// It owns the listener lifecycle: startup, waiting for the caller's context
// and graceful shutdown.
package server
