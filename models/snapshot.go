// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SnapshotFormatVersion is the current snapshot envelope version.
const SnapshotFormatVersion = 1

// Snapshot is the decoded form of a snapshot blob: the whole local
// collection at one instant.
type Snapshot struct {
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	Items     []Item    `json:"items"`
}
