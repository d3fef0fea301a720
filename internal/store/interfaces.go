package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-item-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalItemStore is the local, mutable item collection.
type LocalItemStore interface {
	// GetAllSnapshot returns every stored item ordered by id.
	GetAllSnapshot(ctx context.Context) ([]models.Item, error)
	// InsertMany stores new items. It fails with [ErrItemAlreadyExists] if
	// any id is already present; nothing is written in that case.
	InsertMany(ctx context.Context, items ...models.Item) error
	// UpdateMany overwrites fields and last_modified of existing items.
	UpdateMany(ctx context.Context, items ...models.Item) error
	// Delete removes a single item.
	Delete(ctx context.Context, id string) error
	// GetMaxLastModified returns the newest last_modified, or nil when the
	// store is empty.
	GetMaxLastModified(ctx context.Context) (*time.Time, error)
	// ReplaceAll atomically replaces the whole collection.
	ReplaceAll(ctx context.Context, items ...models.Item) error
}

// SyncStateStore persists the single [models.SyncState] record.
type SyncStateStore interface {
	// Load returns the stored state, or the zero value before the first sync.
	Load(ctx context.Context) (models.SyncState, error)
	// Save rewrites every state key in one transaction.
	Save(ctx context.Context, state models.SyncState) error
}
