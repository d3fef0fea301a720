package snapshot

import (
	"context"

	"github.com/MKhiriev/go-item-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/snapshot_mock.go -package=mock

// Gateway serializes the local store to a snapshot blob and back.
type Gateway interface {
	// Backup returns a blob of the full local store, or nil when the store
	// is empty.
	Backup(ctx context.Context) ([]byte, error)
	// Restore replaces the local store with the blob's items. It returns
	// false with a nil error when the blob is invalid or corrupt; a non-nil
	// error means the local store could not be written.
	Restore(ctx context.Context, blob []byte) (bool, error)
	// Decode returns the items of blob without touching the local store.
	Decode(blob []byte) ([]models.Item, error)
}
