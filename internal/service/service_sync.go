package service

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-item-sync/models"
)

// syncService is the concrete implementation of SyncService.
// Both operations are pure in-memory comparisons over identifier-indexed
// maps; no storage layer or logger is required.
type syncService struct{}

// NewSyncService constructs a SyncService ready for use.
func NewSyncService() SyncService {
	return &syncService{}
}

// Merge implements SyncService.
//
// For every identifier in the union of both collections:
//
//   - local only: no action, merge never deletes;
//   - remote only: the remote item goes to toInsert;
//   - both, remote strictly newer: the remote item goes to toUpdate;
//   - both, remote older or equal: no action, ties keep local.
//
// Both slices are sorted by id.
func (s *syncService) Merge(local, remote []models.Item) (toUpdate, toInsert []models.Item) {
	localIndex := indexByID(local)

	for _, r := range remote {
		l, existsLocally := localIndex[r.ID]
		switch {
		case !existsLocally:
			toInsert = append(toInsert, r.Clone())
		case r.LastModified.After(l.LastModified):
			toUpdate = append(toUpdate, r.Clone())
		}
	}

	sortByID(toUpdate)
	sortByID(toInsert)
	return toUpdate, toInsert
}

// Diff implements SyncService. Items present on both sides are compared
// field by field together with LastModified; equal pairs are not reported.
// The result is sorted by id.
func (s *syncService) Diff(local, remote []models.Item) []models.Conflict {
	localIndex := indexByID(local)
	remoteIndex := indexByID(remote)

	conflicts := make([]models.Conflict, 0)

	// ── Pass 1: everything the local side holds ─────────────────────────────
	for id, l := range localIndex {
		r, existsRemotely := remoteIndex[id]
		switch {
		case !existsRemotely:
			conflicts = append(conflicts, models.Conflict{ID: id, Local: itemPtr(l), Kind: models.ConflictLocalOnly})
		case !l.Equal(r):
			conflicts = append(conflicts, models.Conflict{ID: id, Local: itemPtr(l), Remote: itemPtr(r), Kind: models.ConflictModified})
		}
	}

	// ── Pass 2: remote-only items, invisible in pass 1 ──────────────────────
	for id, r := range remoteIndex {
		if _, existsLocally := localIndex[id]; !existsLocally {
			conflicts = append(conflicts, models.Conflict{ID: id, Remote: itemPtr(r), Kind: models.ConflictRemoteOnly})
		}
	}

	slices.SortFunc(conflicts, func(a, b models.Conflict) int {
		return strings.Compare(a.ID, b.ID)
	})
	return conflicts
}

// indexByID builds an O(1) lookup by id. A later duplicate wins.
func indexByID(items []models.Item) map[string]models.Item {
	idx := make(map[string]models.Item, len(items))
	for _, item := range items {
		idx[item.ID] = item
	}
	return idx
}

func sortByID(items []models.Item) {
	slices.SortFunc(items, func(a, b models.Item) int {
		return strings.Compare(a.ID, b.ID)
	})
}

func itemPtr(item models.Item) *models.Item {
	c := item.Clone()
	return &c
}
