// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// ConflictKind classifies a per-item disagreement between replicas.
type ConflictKind string

const (
	// ConflictModified means both replicas hold the item but the values differ.
	ConflictModified ConflictKind = "modified"
	// ConflictLocalOnly means only the local replica holds the item.
	ConflictLocalOnly ConflictKind = "local_only"
	// ConflictRemoteOnly means only the remote snapshot holds the item.
	ConflictRemoteOnly ConflictKind = "remote_only"
)

// Conflict is a derived, never persisted, difference for one identifier.
type Conflict struct {
	ID     string       `json:"id"`
	Local  *Item        `json:"local,omitempty"`
	Remote *Item        `json:"remote,omitempty"`
	Kind   ConflictKind `json:"kind"`
}

// Resolution is the caller's decision for a single conflict.
type Resolution string

const (
	KeepLocal  Resolution = "keep_local"
	KeepRemote Resolution = "keep_remote"
)

// ParseResolution converts user input into a Resolution.
func ParseResolution(s string) (Resolution, error) {
	switch Resolution(s) {
	case KeepLocal, KeepRemote:
		return Resolution(s), nil
	case "local":
		return KeepLocal, nil
	case "remote":
		return KeepRemote, nil
	default:
		return "", fmt.Errorf("unknown resolution %q", s)
	}
}

// Valid reports whether r is one of the known resolutions.
func (r Resolution) Valid() bool {
	return r == KeepLocal || r == KeepRemote
}
