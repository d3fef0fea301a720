package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/models"
)

// localItemRepository is the SQLite-backed implementation of [LocalItemStore].
// Items live in the "items" table; fields are stored as a JSON object and
// last_modified as unix milliseconds.
type localItemRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalItemRepository constructs a [LocalItemStore] over db.
func NewLocalItemRepository(db *DB, logger *logger.Logger) LocalItemStore {
	return &localItemRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *localItemRepository) GetAllSnapshot(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllItemsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localItemRepository.GetAllSnapshot").
			Bool("retryable", r.retryable(err)).
			Msg("failed to execute query for getting all items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var (
			item   models.Item
			fields string
			ms     int64
		)
		if scanErr := rows.Scan(&item.ID, &fields, &ms); scanErr != nil {
			log.Err(scanErr).
				Str("func", "localItemRepository.GetAllSnapshot").
				Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		item.Fields, err = decodeFields(fields)
		if err != nil {
			log.Err(err).
				Str("func", "localItemRepository.GetAllSnapshot").
				Str("id", item.ID).
				Msg("failed to decode item fields")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		item.LastModified = fromUnixMilli(ms)

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localItemRepository.GetAllSnapshot").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (r *localItemRepository) InsertMany(ctx context.Context, items ...models.Item) error {
	if len(items) == 0 {
		return nil
	}

	return r.inTx(ctx, "localItemRepository.InsertMany", func(tx *sql.Tx) error {
		return insertItems(ctx, tx, items)
	})
}

func (r *localItemRepository) UpdateMany(ctx context.Context, items ...models.Item) error {
	if len(items) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	return r.inTx(ctx, "localItemRepository.UpdateMany", func(tx *sql.Tx) error {
		for _, item := range items {
			query, args, err := buildUpdateItemQuery(item)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				log.Err(err).
					Str("func", "localItemRepository.UpdateMany").
					Str("id", item.ID).
					Msg("failed to execute item update")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}

			if err = expectAffected(res, item.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *localItemRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localItemRepository.Delete").
			Str("id", id).
			Msg("failed to execute item delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, id)
}

func (r *localItemRepository) GetMaxLastModified(ctx context.Context) (*time.Time, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMaxLastModifiedQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var ms sql.NullInt64
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&ms); err != nil {
		log.Err(err).
			Str("func", "localItemRepository.GetMaxLastModified").
			Msg("failed to query max last_modified")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if !ms.Valid {
		return nil, nil
	}

	t := fromUnixMilli(ms.Int64)
	return &t, nil
}

func (r *localItemRepository) ReplaceAll(ctx context.Context, items ...models.Item) error {
	log := logger.FromContext(ctx)

	return r.inTx(ctx, "localItemRepository.ReplaceAll", func(tx *sql.Tx) error {
		query, args, err := buildDeleteAllItemsQuery()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "localItemRepository.ReplaceAll").
				Msg("failed to clear items")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if len(items) == 0 {
			return nil
		}
		return insertItems(ctx, tx, items)
	})
}

// insertItems writes items in batches of [insertBatchSize] inside tx.
func insertItems(ctx context.Context, tx *sql.Tx, items []models.Item) error {
	log := logger.FromContext(ctx)

	for start := 0; start < len(items); start += insertBatchSize {
		end := min(start+insertBatchSize, len(items))

		query, args, err := buildInsertItemsQuery(items[start:end])
		if err != nil {
			if errors.Is(err, ErrInvalidItem) {
				return err
			}
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "insertItems").
				Int("batch_size", end-start).
				Msg("failed to execute items insert")
			if isConstraintViolation(err) {
				return ErrItemAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func expectAffected(res sql.Result, id string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%s", ErrItemNotFound, id)
	}
	return nil
}

// inTx runs fn inside a transaction that is committed when fn succeeds and
// rolled back otherwise.
func (db *DB) inTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
