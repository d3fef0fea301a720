// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-item-sync/internal/crypto"
	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/internal/store"
	"github.com/MKhiriev/go-item-sync/models"
)

type gateway struct {
	items  store.LocalItemStore
	sealer crypto.Sealer
	now    func() time.Time
	logger *logger.Logger
}

// NewGateway builds a [Gateway] over the local item store. sealer may be
// nil, in which case blobs are written as plain JSON and sealed blobs are
// rejected on read.
func NewGateway(items store.LocalItemStore, sealer crypto.Sealer, logger *logger.Logger) Gateway {
	return &gateway{
		items:  items,
		sealer: sealer,
		now:    time.Now,
		logger: logger,
	}
}

func (g *gateway) Backup(ctx context.Context) ([]byte, error) {
	log := logger.FromContext(ctx)

	items, err := g.items.GetAllSnapshot(ctx)
	if err != nil {
		log.Err(err).Str("func", "gateway.Backup").Msg("failed to read local items")
		return nil, fmt.Errorf("read local items: %w", err)
	}
	if len(items) == 0 {
		log.Debug().Str("func", "gateway.Backup").Msg("local store is empty, nothing to back up")
		return nil, nil
	}

	blob, err := json.Marshal(models.Snapshot{
		Version:   models.SnapshotFormatVersion,
		CreatedAt: models.NormalizeTime(g.now()),
		Items:     items,
	})
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	if g.sealer == nil {
		return blob, nil
	}

	sealed, err := g.sealer.Seal(blob)
	if err != nil {
		log.Err(err).Str("func", "gateway.Backup").Msg("failed to seal snapshot")
		return nil, fmt.Errorf("seal snapshot: %w", err)
	}
	return sealed, nil
}

func (g *gateway) Restore(ctx context.Context, blob []byte) (bool, error) {
	log := logger.FromContext(ctx)

	items, err := g.Decode(blob)
	if err != nil {
		log.Warn().Err(err).Str("func", "gateway.Restore").Msg("refusing to restore invalid snapshot")
		return false, nil
	}

	if err = g.items.ReplaceAll(ctx, items...); err != nil {
		log.Err(err).Str("func", "gateway.Restore").Int("items", len(items)).Msg("failed to replace local items")
		return false, fmt.Errorf("replace local items: %w", err)
	}

	return true, nil
}

func (g *gateway) Decode(blob []byte) ([]models.Item, error) {
	if len(blob) == 0 {
		return nil, fmt.Errorf("%w: empty blob", ErrInvalidSnapshot)
	}

	if crypto.IsSealed(blob) {
		if g.sealer == nil {
			return nil, ErrSealedSnapshot
		}
		plain, err := g.sealer.Open(blob)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
		}
		blob = plain
	}

	var snap models.Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	if snap.Version != models.SnapshotFormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, snap.Version)
	}

	seen := make(map[string]struct{}, len(snap.Items))
	items := make([]models.Item, 0, len(snap.Items))
	for _, item := range snap.Items {
		if item.ID == "" {
			return nil, fmt.Errorf("%w: item with empty id", ErrInvalidSnapshot)
		}
		if _, dup := seen[item.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidSnapshot, item.ID)
		}
		seen[item.ID] = struct{}{}
		if item.Fields == nil {
			item.Fields = map[string]string{}
		}
		item.LastModified = models.NormalizeTime(item.LastModified)
		items = append(items, item)
	}

	return items, nil
}
