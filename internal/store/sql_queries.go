package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-item-sync/models"
)

const (
	itemsTable     = "items"
	syncStateTable = "sync_state"

	// insertBatchSize keeps a multi-row INSERT well below SQLite's host
	// parameter limit (3 parameters per row).
	insertBatchSize = 300
)

var itemColumns = []string{"id", "fields", "last_modified"}

// sync_state keys.
const (
	stateLastKey      = "last_key"
	stateLastPushAt   = "last_push_at"
	stateLastPullAt   = "last_pull_at"
	stateLastMergeAt  = "last_merge_at"
	stateLastSyncHash = "last_sync_hash"
)

func buildSelectAllItemsQuery() (string, []any, error) {
	return psql.Select(itemColumns...).
		From(itemsTable).
		OrderBy("id").
		ToSql()
}

func buildSelectMaxLastModifiedQuery() (string, []any, error) {
	return psql.Select("MAX(last_modified)").
		From(itemsTable).
		ToSql()
}

// buildInsertItemsQuery builds one multi-row INSERT for items.
func buildInsertItemsQuery(items []models.Item) (string, []any, error) {
	if len(items) == 0 {
		return "", nil, fmt.Errorf("%w: no items to insert", ErrBuildingSQLQuery)
	}

	builder := psql.Insert(itemsTable).Columns(itemColumns...)
	for _, item := range items {
		if item.ID == "" {
			return "", nil, fmt.Errorf("%w: empty id", ErrInvalidItem)
		}
		fields, err := encodeFields(item.Fields)
		if err != nil {
			return "", nil, err
		}
		builder = builder.Values(item.ID, fields, toUnixMilli(item.LastModified))
	}

	return builder.ToSql()
}

func buildUpdateItemQuery(item models.Item) (string, []any, error) {
	if item.ID == "" {
		return "", nil, fmt.Errorf("%w: empty id", ErrInvalidItem)
	}
	fields, err := encodeFields(item.Fields)
	if err != nil {
		return "", nil, err
	}

	return psql.Update(itemsTable).
		Set("fields", fields).
		Set("last_modified", toUnixMilli(item.LastModified)).
		Where(sq.Eq{"id": item.ID}).
		ToSql()
}

func buildDeleteItemQuery(id string) (string, []any, error) {
	return psql.Delete(itemsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteAllItemsQuery() (string, []any, error) {
	return psql.Delete(itemsTable).ToSql()
}

func buildSelectSyncStateQuery() (string, []any, error) {
	return psql.Select("key", "value").
		From(syncStateTable).
		ToSql()
}

// buildSaveSyncStateQuery rewrites every sync_state key with a single
// INSERT OR REPLACE statement.
func buildSaveSyncStateQuery(state models.SyncState) (string, []any, error) {
	return psql.Insert(syncStateTable).
		Options("OR REPLACE").
		Columns("key", "value").
		Values(stateLastKey, state.LastKey).
		Values(stateLastPushAt, formatStateTime(state.LastPushAt)).
		Values(stateLastPullAt, formatStateTime(state.LastPullAt)).
		Values(stateLastMergeAt, formatStateTime(state.LastMergeAt)).
		Values(stateLastSyncHash, state.LastSyncHash).
		ToSql()
}

func encodeFields(fields map[string]string) (string, error) {
	if fields == nil {
		fields = map[string]string{}
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("%w: encode fields: %w", ErrInvalidItem, err)
	}
	return string(b), nil
}

func decodeFields(raw string) (map[string]string, error) {
	fields := map[string]string{}
	if raw == "" {
		return fields, nil
	}
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("decode fields: %w", err)
	}
	return fields, nil
}

func toUnixMilli(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromUnixMilli(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

func formatStateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return strconv.FormatInt(t.UnixMilli(), 10)
}

func parseStateTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrCorruptedSyncState, err)
	}
	return time.UnixMilli(ms).UTC(), nil
}
