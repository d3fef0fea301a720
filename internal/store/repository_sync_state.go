package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/models"
)

// syncStateRepository stores [models.SyncState] as rows of the key/value
// "sync_state" table. A missing key reads as its zero value, so an empty
// table yields the zero state.
type syncStateRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncStateRepository constructs a [SyncStateStore] over db.
func NewSyncStateRepository(db *DB, logger *logger.Logger) SyncStateStore {
	return &syncStateRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *syncStateRepository) Load(ctx context.Context) (models.SyncState, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSyncStateQuery()
	if err != nil {
		return models.SyncState{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.Load").
			Msg("failed to execute query for sync state")
		return models.SyncState{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make(map[string]string, 5)
	for rows.Next() {
		var key, value string
		if scanErr := rows.Scan(&key, &value); scanErr != nil {
			log.Err(scanErr).
				Str("func", "syncStateRepository.Load").
				Msg("failed to scan sync state row")
			return models.SyncState{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		values[key] = value
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return models.SyncState{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	state := models.SyncState{
		LastKey:      values[stateLastKey],
		LastSyncHash: values[stateLastSyncHash],
	}
	for _, field := range []struct {
		key string
		dst *time.Time
	}{
		{key: stateLastPushAt, dst: &state.LastPushAt},
		{key: stateLastPullAt, dst: &state.LastPullAt},
		{key: stateLastMergeAt, dst: &state.LastMergeAt},
	} {
		t, parseErr := parseStateTime(values[field.key])
		if parseErr != nil {
			log.Err(parseErr).
				Str("func", "syncStateRepository.Load").
				Str("key", field.key).
				Msg("failed to parse sync state timestamp")
			return models.SyncState{}, parseErr
		}
		*field.dst = t
	}

	return state, nil
}

func (r *syncStateRepository) Save(ctx context.Context, state models.SyncState) error {
	log := logger.FromContext(ctx)

	return r.inTx(ctx, "syncStateRepository.Save", func(tx *sql.Tx) error {
		query, args, err := buildSaveSyncStateQuery(state)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "syncStateRepository.Save").
				Msg("failed to write sync state")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}
