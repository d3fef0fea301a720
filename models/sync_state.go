// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncState is the bookkeeping record of the last successful sync boundary.
// There is exactly one SyncState per local store. Its zero value describes
// a store that has never been synchronised.
type SyncState struct {
	// LastKey is the remote key of the most recently published or pulled
	// snapshot. Empty until the first push or merge.
	LastKey string `json:"last_key"`

	// LastPushAt is the time of the last successful push.
	LastPushAt time.Time `json:"last_push_at"`

	// LastPullAt is the time of the last successful pull.
	LastPullAt time.Time `json:"last_pull_at"`

	// LastMergeAt is the time of the last successful merge.
	LastMergeAt time.Time `json:"last_merge_at"`

	// LastSyncHash is the content hash of the local collection recorded at
	// the end of the last successful operation.
	LastSyncHash string `json:"last_sync_hash"`
}

// SyncStatus is what callers see when asking whether the replicas diverged.
type SyncStatus struct {
	LastKey     string    `json:"last_key"`
	LastPushAt  time.Time `json:"last_push_at"`
	LastPullAt  time.Time `json:"last_pull_at"`
	LastMergeAt time.Time `json:"last_merge_at"`

	// HasConflict is true when both the local collection and the remote
	// snapshot changed independently since the last sync boundary.
	HasConflict bool `json:"has_conflict"`
}

// MergeResult summarises one merge run.
type MergeResult struct {
	Updated  int    `json:"updated"`
	Inserted int    `json:"inserted"`
	Key      string `json:"key"`
}

// Credentials authenticate calls to the remote blob store.
// Which fields are used depends on the backend: S3 uses the key pair,
// the HTTP backend sends Token as a bearer token.
type Credentials struct {
	AccessKey string `json:"-"`
	SecretKey string `json:"-"`
	Token     string `json:"-"`
}
