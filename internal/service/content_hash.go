// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-item-sync/models"
)

const (
	tokenSeparator  = 0x1F // ASCII unit separator
	recordSeparator = 0x1E // ASCII record separator
)

// ContentHash returns the hex SHA-256 digest of items. The result does not
// depend on the order of items.
//
// Items are hashed in id order. Each item contributes its id, then every
// field as "name"="value" in ascending name order, then LastModified as unix
// milliseconds. Ids, names and values are written in Go quoted form, so
// neither the separator bytes nor an unescaped '=' can come from the data.
func ContentHash(items []models.Item) string {
	sorted := slices.Clone(items)
	slices.SortFunc(sorted, func(a, b models.Item) int {
		return strings.Compare(a.ID, b.ID)
	})

	h := sha256.New()
	for _, item := range sorted {
		writeItem(h, item)
	}

	return hex.EncodeToString(h.Sum(nil))
}

func writeItem(h hash.Hash, item models.Item) {
	writeToken(h, strconv.Quote(item.ID))

	names := make([]string, 0, len(item.Fields))
	for name := range item.Fields {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		writeToken(h, strconv.Quote(name)+"="+strconv.Quote(item.Fields[name]))
	}

	writeToken(h, strconv.FormatInt(lastModifiedMillis(item), 10))
	h.Write([]byte{recordSeparator})
}

func writeToken(h hash.Hash, token string) {
	h.Write([]byte(token))
	h.Write([]byte{tokenSeparator})
}

func lastModifiedMillis(item models.Item) int64 {
	if item.LastModified.IsZero() {
		return 0
	}
	return item.LastModified.UnixMilli()
}
