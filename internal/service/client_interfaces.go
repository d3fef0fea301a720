package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-item-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSyncService synchronises the local item store with snapshots kept in
// the remote blob store.
//
// All methods are serialised: at most one runs at a time, and concurrent
// callers are served in arrival order. Each method runs under its own time
// budget, counted from the moment it is admitted; running out of budget or a
// cancelled ctx fails with ErrTimeout and leaves the sync state untouched.
type ClientSyncService interface {
	// Push publishes a snapshot of the local store when it changed since the
	// last push. It reports whether a snapshot was uploaded; an unchanged
	// store is not an error.
	Push(ctx context.Context) (bool, error)

	// Pull replaces the local store with the last recorded snapshot. It
	// fails with ErrNoSyncRecord before the first push or merge.
	Pull(ctx context.Context) error

	// Merge pulls remote-only and remote-newer items into the local store,
	// then publishes the merged store as a new snapshot.
	Merge(ctx context.Context) (models.MergeResult, error)

	// GetSyncStatus reports the recorded timestamps and whether both sides
	// changed independently since the last sync. It never writes state.
	GetSyncStatus(ctx context.Context) (models.SyncStatus, error)

	// GetConflicts lists the items on which the local store and the last
	// recorded snapshot disagree.
	GetConflicts(ctx context.Context) ([]models.Conflict, error)

	// ResolveConflict applies resolution to conflict and then pushes. It
	// reports whether the push uploaded a snapshot.
	ResolveConflict(ctx context.Context, conflict models.Conflict, resolution models.Resolution) (bool, error)
}

// ClientSyncJob defines the contract for a background worker that
// periodically merges with the remote store.
type ClientSyncJob interface {
	// Start launches the background goroutine. It merges every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
