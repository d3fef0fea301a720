// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"maps"
	"time"
)

// Item is a single record of the local collection.
// The sync engine only interprets ID and LastModified; Fields are opaque
// name/value pairs that travel with the item.
type Item struct {
	// ID is the stable identifier of the item. It never changes over the
	// lifetime of the record and is unique within a collection.
	ID string `json:"id"`

	// Fields holds every user-visible value of the item keyed by field name.
	Fields map[string]string `json:"fields,omitempty"`

	// LastModified is the wall-clock time of the last local edit.
	// Stored with millisecond precision in UTC.
	LastModified time.Time `json:"last_modified"`
}

// NewItem builds an Item with LastModified normalised to UTC milliseconds,
// the precision the local store keeps.
func NewItem(id string, fields map[string]string, lastModified time.Time) Item {
	return Item{
		ID:           id,
		Fields:       fields,
		LastModified: NormalizeTime(lastModified),
	}
}

// Equal reports whether both items carry the same identifier, the same
// field set with the same values and the same LastModified instant.
func (i Item) Equal(other Item) bool {
	if i.ID != other.ID || !i.LastModified.Equal(other.LastModified) {
		return false
	}
	return maps.Equal(i.Fields, other.Fields)
}

// Clone returns a deep copy of the item.
func (i Item) Clone() Item {
	c := i
	if i.Fields != nil {
		c.Fields = maps.Clone(i.Fields)
	}
	return c
}

// NormalizeTime truncates t to milliseconds and converts it to UTC.
func NormalizeTime(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return time.UnixMilli(t.UnixMilli()).UTC()
}
