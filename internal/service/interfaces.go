package service

import (
	"context"

	"github.com/MKhiriev/go-item-sync/models"
)

// SyncService compares two item collections in memory. It owns no state
// and performs no I/O.
type SyncService interface {
	// Merge returns the remote items that must be written over local ones
	// (toUpdate) and the remote items missing locally (toInsert). Local
	// items are never scheduled for removal and ties keep the local value.
	Merge(local, remote []models.Item) (toUpdate, toInsert []models.Item)

	// Diff lists every identifier on which the two collections disagree.
	Diff(local, remote []models.Item) []models.Conflict
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
