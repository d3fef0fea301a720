// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-item-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────────────────────────────────────

var syncT0 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

// it is a shorthand constructor for Item used only in tests. at is an offset
// in minutes from syncT0.
func it(id, title string, at int) models.Item {
	return models.NewItem(id, map[string]string{"title": title}, syncT0.Add(time.Duration(at)*time.Minute))
}

func ids(items []models.Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Merge
// ─────────────────────────────────────────────────────────────────────────────

func TestSyncService_Merge_DecisionMatrix(t *testing.T) {
	tests := []struct {
		name       string
		local      []models.Item
		remote     []models.Item
		wantUpdate []models.Item
		wantInsert []models.Item
	}{
		{
			name:  "LocalOnly → NoAction",
			local: []models.Item{it("1", "l", 0)},
		},
		{
			name:       "RemoteOnly → Insert",
			remote:     []models.Item{it("1", "r", 0)},
			wantInsert: []models.Item{it("1", "r", 0)},
		},
		{
			name:       "Both/RemoteNewer → Update",
			local:      []models.Item{it("1", "l", 0)},
			remote:     []models.Item{it("1", "r", 1)},
			wantUpdate: []models.Item{it("1", "r", 1)},
		},
		{
			name:   "Both/RemoteOlder → NoAction",
			local:  []models.Item{it("1", "l", 1)},
			remote: []models.Item{it("1", "r", 0)},
		},
		{
			name:   "Both/Tie → LocalWins",
			local:  []models.Item{it("1", "l", 0)},
			remote: []models.Item{it("1", "r", 0)},
		},
		{
			name: "Empty → NoAction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toUpdate, toInsert := NewSyncService().Merge(tt.local, tt.remote)

			assert.Equal(t, tt.wantUpdate, toUpdate)
			assert.Equal(t, tt.wantInsert, toInsert)
		})
	}
}

// local {1,2}, remote {2 (newer), 3}.
func TestSyncService_Merge_ScenarioB(t *testing.T) {
	local := []models.Item{it("1", "one", 0), it("2", "two-local", 0)}
	remote := []models.Item{it("2", "two-remote", 5), it("3", "three", 1)}

	toUpdate, toInsert := NewSyncService().Merge(local, remote)

	require.Len(t, toUpdate, 1)
	assert.Equal(t, "two-remote", toUpdate[0].Fields["title"])
	assert.Equal(t, []string{"3"}, ids(toInsert))
}

func TestSyncService_Merge_NeverDeletesAndSorted(t *testing.T) {
	local := []models.Item{it("k", "", 0), it("a", "", 0), it("m", "", 9)}
	remote := []models.Item{it("z", "", 0), it("b", "", 0), it("m", "", 10), it("a", "", 3)}

	toUpdate, toInsert := NewSyncService().Merge(local, remote)

	assert.Equal(t, []string{"a", "m"}, ids(toUpdate))
	assert.Equal(t, []string{"b", "z"}, ids(toInsert))

	// ни одного локального id не пропадает: merge только добавляет или заменяет
	for _, id := range append(ids(toUpdate), ids(toInsert)...) {
		assert.NotEqual(t, "k", id)
	}
}

func TestSyncService_Merge_Idempotent(t *testing.T) {
	svc := NewSyncService()
	local := []models.Item{it("1", "one", 0), it("2", "two-local", 0)}
	remote := []models.Item{it("2", "two-remote", 5), it("3", "three", 1)}

	toUpdate, toInsert := svc.Merge(local, remote)

	merged := applyMerge(local, toUpdate, toInsert)
	toUpdate, toInsert = svc.Merge(merged, remote)

	assert.Empty(t, toUpdate)
	assert.Empty(t, toInsert)
}

func TestSyncService_Merge_DoesNotAliasInput(t *testing.T) {
	remote := []models.Item{it("1", "r", 0)}

	_, toInsert := NewSyncService().Merge(nil, remote)
	toInsert[0].Fields["title"] = "changed"

	assert.Equal(t, "r", remote[0].Fields["title"])
}

func applyMerge(local, toUpdate, toInsert []models.Item) []models.Item {
	idx := indexByID(local)
	for _, item := range toUpdate {
		idx[item.ID] = item
	}
	for _, item := range toInsert {
		idx[item.ID] = item
	}
	out := make([]models.Item, 0, len(idx))
	for _, item := range idx {
		out = append(out, item)
	}
	sortByID(out)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Diff
// ─────────────────────────────────────────────────────────────────────────────

func TestSyncService_Diff_Classification(t *testing.T) {
	local := []models.Item{
		it("same", "x", 0),
		it("changed", "local", 0),
		it("touched", "x", 0),
		it("mine", "x", 0),
	}
	remote := []models.Item{
		it("same", "x", 0),
		it("changed", "remote", 0),
		it("touched", "x", 1),
		it("theirs", "x", 0),
	}

	conflicts := NewSyncService().Diff(local, remote)

	require.Len(t, conflicts, 4)

	byID := make(map[string]models.Conflict, len(conflicts))
	for _, c := range conflicts {
		byID[c.ID] = c
	}
	assert.NotContains(t, byID, "same")

	assert.Equal(t, models.ConflictModified, byID["changed"].Kind)
	assert.Equal(t, "local", byID["changed"].Local.Fields["title"])
	assert.Equal(t, "remote", byID["changed"].Remote.Fields["title"])

	// различие только во времени изменения — тоже Modified
	assert.Equal(t, models.ConflictModified, byID["touched"].Kind)

	assert.Equal(t, models.ConflictLocalOnly, byID["mine"].Kind)
	assert.Nil(t, byID["mine"].Remote)

	assert.Equal(t, models.ConflictRemoteOnly, byID["theirs"].Kind)
	assert.Nil(t, byID["theirs"].Local)

	assert.Equal(t, []string{"changed", "mine", "theirs", "touched"}, []string{
		conflicts[0].ID, conflicts[1].ID, conflicts[2].ID, conflicts[3].ID,
	})
}

func TestSyncService_Diff_IdenticalCollections(t *testing.T) {
	items := []models.Item{it("1", "a", 0), it("2", "b", 1)}

	conflicts := NewSyncService().Diff(items, items)

	assert.NotNil(t, conflicts)
	assert.Empty(t, conflicts)
}

func TestSyncService_Diff_NilVsEmptyFieldsAreEqual(t *testing.T) {
	local := []models.Item{models.NewItem("1", nil, syncT0)}
	remote := []models.Item{models.NewItem("1", map[string]string{}, syncT0)}

	assert.Empty(t, NewSyncService().Diff(local, remote))
}
