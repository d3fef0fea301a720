// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-item-sync/internal/adapter"
	"github.com/MKhiriev/go-item-sync/internal/config"
	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/internal/metrics"
	"github.com/MKhiriev/go-item-sync/internal/snapshot"
	"github.com/MKhiriev/go-item-sync/internal/store"
	"github.com/MKhiriev/go-item-sync/internal/utils"
	"github.com/MKhiriev/go-item-sync/models"
)

const (
	opPush      = "push"
	opPull      = "pull"
	opMerge     = "merge"
	opStatus    = "status"
	opConflicts = "conflicts"
	opResolve   = "resolve"
)

type clientSyncService struct {
	items   store.LocalItemStore
	state   store.SyncStateStore
	gateway snapshot.Gateway
	blobs   adapter.BlobStore
	planner SyncService

	creds    models.Credentials
	timeouts config.ClientSync

	// lock is a one-slot semaphore. Blocked senders are queued by the
	// runtime in arrival order.
	lock chan struct{}
	now  func() time.Time

	logger *logger.Logger
}

// outcome is what an operation reports for its final log entry.
type outcome struct {
	detail string
	noop   bool
}

// NewClientSyncService builds the sync coordinator. blobs may be nil when no
// remote backend is configured; operations that need it then fail with
// ErrConfiguration.
func NewClientSyncService(
	storages *store.ClientStorages,
	gateway snapshot.Gateway,
	blobs adapter.BlobStore,
	remoteCfg config.ClientRemote,
	syncCfg config.ClientSync,
	logger *logger.Logger,
) ClientSyncService {
	if syncCfg.PushTimeout <= 0 {
		syncCfg.PushTimeout = config.DefaultPushTimeout
	}
	if syncCfg.PullTimeout <= 0 {
		syncCfg.PullTimeout = syncCfg.PushTimeout
	}
	if syncCfg.MergeTimeout <= 0 {
		syncCfg.MergeTimeout = config.DefaultMergeTimeout
	}

	return &clientSyncService{
		items:    storages.Items,
		state:    storages.SyncState,
		gateway:  gateway,
		blobs:    blobs,
		planner:  NewSyncService(),
		creds:    remoteCfg.Credentials,
		timeouts: syncCfg,
		lock:     make(chan struct{}, 1),
		now:      time.Now,
		logger:   logger,
	}
}

// ── Operations ──────────────────────────────────────────────────────────────

func (s *clientSyncService) Push(ctx context.Context) (bool, error) {
	var pushed bool

	err := s.run(ctx, opPush, s.timeouts.PushTimeout, func(ctx context.Context) (outcome, error) {
		if err := s.requireRemote(); err != nil {
			return outcome{}, err
		}

		st, err := s.loadState(ctx)
		if err != nil {
			return outcome{}, err
		}

		var res outcome
		pushed, res, err = s.push(ctx, st)
		return res, err
	})

	return pushed, err
}

func (s *clientSyncService) Pull(ctx context.Context) error {
	return s.run(ctx, opPull, s.timeouts.PullTimeout, func(ctx context.Context) (outcome, error) {
		if err := s.requireRemote(); err != nil {
			return outcome{}, err
		}

		st, err := s.loadState(ctx)
		if err != nil {
			return outcome{}, err
		}
		if st.LastKey == "" {
			return outcome{}, ErrNoSyncRecord
		}

		blob, err := s.download(ctx, st.LastKey)
		if err != nil {
			return outcome{}, err
		}

		if err = checkpoint(ctx); err != nil {
			return outcome{}, err
		}
		ok, err := s.gateway.Restore(ctx, blob)
		if err != nil {
			return outcome{}, fmt.Errorf("%w: %w", ErrRestore, err)
		}
		if !ok {
			return outcome{}, fmt.Errorf("%w: snapshot %s has invalid content", ErrRestore, st.LastKey)
		}

		hash, count, err := s.localHash(ctx)
		if err != nil {
			return outcome{}, err
		}

		st.LastPullAt = s.now()
		st.LastSyncHash = hash
		if err = s.saveState(ctx, st); err != nil {
			return outcome{}, err
		}

		return outcome{detail: fmt.Sprintf("restored %d items from %s", count, st.LastKey)}, nil
	})
}

func (s *clientSyncService) Merge(ctx context.Context) (models.MergeResult, error) {
	var result models.MergeResult

	err := s.run(ctx, opMerge, s.timeouts.MergeTimeout, func(ctx context.Context) (outcome, error) {
		if err := s.requireRemote(); err != nil {
			return outcome{}, err
		}

		st, err := s.loadState(ctx)
		if err != nil {
			return outcome{}, err
		}

		local, err := s.items.GetAllSnapshot(ctx)
		if err != nil {
			return outcome{}, fmt.Errorf("read local items: %w", err)
		}

		remote, err := s.remoteForMerge(ctx, st.LastKey)
		if err != nil {
			return outcome{}, err
		}

		toUpdate, toInsert := s.planner.Merge(local, remote)

		if len(toUpdate) > 0 {
			if err = checkpoint(ctx); err != nil {
				return outcome{}, err
			}
			if err = s.items.UpdateMany(ctx, toUpdate...); err != nil {
				return outcome{}, fmt.Errorf("apply remote updates: %w", err)
			}
		}
		if len(toInsert) > 0 {
			if err = checkpoint(ctx); err != nil {
				return outcome{}, err
			}
			if err = s.items.InsertMany(ctx, toInsert...); err != nil {
				return outcome{}, fmt.Errorf("apply remote inserts: %w", err)
			}
		}

		key, hash, err := s.publish(ctx)
		if err != nil {
			return outcome{}, err
		}

		st.LastKey = key
		st.LastMergeAt = s.now()
		st.LastSyncHash = hash
		if err = s.saveState(ctx, st); err != nil {
			return outcome{}, err
		}

		result = models.MergeResult{Updated: len(toUpdate), Inserted: len(toInsert), Key: key}
		return outcome{detail: fmt.Sprintf("updated %d, inserted %d, published %s", result.Updated, result.Inserted, key)}, nil
	})

	if err != nil {
		return models.MergeResult{}, err
	}
	return result, nil
}

func (s *clientSyncService) GetSyncStatus(ctx context.Context) (models.SyncStatus, error) {
	var status models.SyncStatus

	err := s.run(ctx, opStatus, s.timeouts.PullTimeout, func(ctx context.Context) (outcome, error) {
		st, err := s.loadState(ctx)
		if err != nil {
			return outcome{}, err
		}

		status = models.SyncStatus{
			LastKey:     st.LastKey,
			LastPushAt:  st.LastPushAt,
			LastPullAt:  st.LastPullAt,
			LastMergeAt: st.LastMergeAt,
		}

		if st.LastSyncHash == "" {
			status.HasConflict = st.LastPushAt.After(st.LastPullAt) && st.LastMergeAt.Before(st.LastPushAt)
			return outcome{detail: fmt.Sprintf("no sync hash recorded, timestamp check: conflict=%t", status.HasConflict)}, nil
		}

		localHash, _, err := s.localHash(ctx)
		if err != nil {
			return outcome{}, err
		}
		localChanged := localHash != st.LastSyncHash

		remoteChanged := false
		if st.LastKey != "" {
			if err = s.requireRemote(); err != nil {
				return outcome{}, err
			}
			remote, err := s.downloadItems(ctx, st.LastKey)
			if err != nil {
				return outcome{}, err
			}
			remoteChanged = ContentHash(remote) != st.LastSyncHash
		}

		status.HasConflict = localChanged && remoteChanged
		return outcome{detail: fmt.Sprintf("local changed=%t, remote changed=%t", localChanged, remoteChanged)}, nil
	})

	if err != nil {
		return models.SyncStatus{}, err
	}
	return status, nil
}

func (s *clientSyncService) GetConflicts(ctx context.Context) ([]models.Conflict, error) {
	conflicts := make([]models.Conflict, 0)

	err := s.run(ctx, opConflicts, s.timeouts.PullTimeout, func(ctx context.Context) (outcome, error) {
		st, err := s.loadState(ctx)
		if err != nil {
			return outcome{}, err
		}
		if st.LastKey == "" {
			return outcome{detail: "no snapshot recorded"}, nil
		}
		if err = s.requireRemote(); err != nil {
			return outcome{}, err
		}

		remote, err := s.downloadItems(ctx, st.LastKey)
		if err != nil {
			return outcome{}, err
		}

		local, err := s.items.GetAllSnapshot(ctx)
		if err != nil {
			return outcome{}, fmt.Errorf("read local items: %w", err)
		}

		conflicts = s.planner.Diff(local, remote)
		return outcome{detail: fmt.Sprintf("%d conflicts against %s", len(conflicts), st.LastKey)}, nil
	})

	if err != nil {
		return nil, err
	}
	return conflicts, nil
}

func (s *clientSyncService) ResolveConflict(ctx context.Context, conflict models.Conflict, resolution models.Resolution) (bool, error) {
	var pushed bool

	err := s.run(ctx, opResolve, s.timeouts.PushTimeout, func(ctx context.Context) (outcome, error) {
		id, err := validateConflict(conflict, resolution)
		if err != nil {
			return outcome{}, err
		}
		if err = s.requireRemote(); err != nil {
			return outcome{}, err
		}

		st, err := s.loadState(ctx)
		if err != nil {
			return outcome{}, err
		}

		action := "kept local"
		if resolution == models.KeepRemote {
			if action, err = s.applyRemote(ctx, id, conflict); err != nil {
				return outcome{}, err
			}
		}

		pushed, _, err = s.push(ctx, st)
		if err != nil {
			return outcome{}, err
		}

		return outcome{detail: fmt.Sprintf("%s: %s, pushed=%t", id, action, pushed)}, nil
	})

	return pushed, err
}

// ── Steps ───────────────────────────────────────────────────────────────────

// push uploads a snapshot unless nothing was modified after st.LastPushAt.
func (s *clientSyncService) push(ctx context.Context, st models.SyncState) (bool, outcome, error) {
	if err := checkpoint(ctx); err != nil {
		return false, outcome{}, err
	}

	newest, err := s.items.GetMaxLastModified(ctx)
	if err != nil {
		return false, outcome{}, fmt.Errorf("read newest local change: %w", err)
	}
	if newest == nil || !newest.After(st.LastPushAt) {
		return false, outcome{detail: "no local changes since last push", noop: true}, nil
	}

	key, hash, err := s.publish(ctx)
	if err != nil {
		return false, outcome{}, err
	}

	st.LastKey = key
	st.LastPushAt = s.now()
	st.LastSyncHash = hash
	if err = s.saveState(ctx, st); err != nil {
		return false, outcome{}, err
	}

	return true, outcome{detail: "published " + key}, nil
}

// publish backs up the local store, uploads it and returns the new key with
// the content hash of what was uploaded.
func (s *clientSyncService) publish(ctx context.Context) (key, hash string, err error) {
	if err = checkpoint(ctx); err != nil {
		return "", "", err
	}

	blob, err := s.gateway.Backup(ctx)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrBackup, err)
	}
	if len(blob) == 0 {
		return "", "", fmt.Errorf("%w: local store is empty", ErrBackup)
	}

	if err = checkpoint(ctx); err != nil {
		return "", "", err
	}

	key, err = s.blobs.Upload(ctx, blob, s.creds)
	if err != nil {
		return "", "", fmt.Errorf("%w: upload snapshot: %w", ErrTransport, err)
	}
	if key == "" {
		return "", "", fmt.Errorf("%w: upload returned no key", ErrTransport)
	}
	metrics.RecordBlobUpload(len(blob))

	hash, _, err = s.localHash(ctx)
	if err != nil {
		return "", "", err
	}

	return key, hash, nil
}

// remoteForMerge returns the items of the last recorded snapshot. Download
// and decode failures degrade to an empty collection; only a timeout or a
// cancelled ctx is returned as an error.
func (s *clientSyncService) remoteForMerge(ctx context.Context, key string) ([]models.Item, error) {
	if key == "" {
		return nil, nil
	}

	remote, err := s.downloadItems(ctx, key)
	if err == nil {
		return remote, nil
	}
	if ctxErr := checkpoint(ctx); ctxErr != nil {
		return nil, ctxErr
	}

	s.logger.Warn().Err(err).
		Str("func", "clientSyncService.Merge").
		Str("key", key).
		Msg("remote snapshot unavailable, merging against an empty remote")
	return nil, nil
}

// applyRemote makes the local store hold the remote side of conflict.
func (s *clientSyncService) applyRemote(ctx context.Context, id string, conflict models.Conflict) (string, error) {
	if err := checkpoint(ctx); err != nil {
		return "", err
	}

	switch {
	case conflict.Remote == nil:
		err := s.items.Delete(ctx, id)
		if err != nil && !errors.Is(err, store.ErrItemNotFound) {
			return "", fmt.Errorf("delete local item %s: %w", id, err)
		}
		return "deleted local", nil

	case conflict.Local == nil:
		err := s.items.InsertMany(ctx, *conflict.Remote)
		if errors.Is(err, store.ErrItemAlreadyExists) {
			err = s.items.UpdateMany(ctx, *conflict.Remote)
		}
		if err != nil {
			return "", fmt.Errorf("insert remote item %s: %w", id, err)
		}
		return "inserted remote", nil

	default:
		err := s.items.UpdateMany(ctx, *conflict.Remote)
		if errors.Is(err, store.ErrItemNotFound) {
			err = s.items.InsertMany(ctx, *conflict.Remote)
		}
		if err != nil {
			return "", fmt.Errorf("update local item %s: %w", id, err)
		}
		return "updated to remote", nil
	}
}

func (s *clientSyncService) download(ctx context.Context, key string) ([]byte, error) {
	if err := checkpoint(ctx); err != nil {
		return nil, err
	}

	blob, err := s.blobs.Download(ctx, key, s.creds)
	if err != nil {
		return nil, fmt.Errorf("%w: download snapshot %s: %w", ErrTransport, key, err)
	}
	if len(blob) == 0 {
		return nil, fmt.Errorf("%w: snapshot %s is empty", ErrTransport, key)
	}
	metrics.RecordBlobDownload(len(blob))

	return blob, nil
}

func (s *clientSyncService) downloadItems(ctx context.Context, key string) ([]models.Item, error) {
	blob, err := s.download(ctx, key)
	if err != nil {
		return nil, err
	}

	items, err := s.gateway.Decode(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: decode snapshot %s: %w", ErrTransport, key, err)
	}
	return items, nil
}

func (s *clientSyncService) localHash(ctx context.Context) (string, int, error) {
	items, err := s.items.GetAllSnapshot(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("read local items: %w", err)
	}
	return ContentHash(items), len(items), nil
}

func (s *clientSyncService) loadState(ctx context.Context) (models.SyncState, error) {
	if err := checkpoint(ctx); err != nil {
		return models.SyncState{}, err
	}

	st, err := s.state.Load(ctx)
	if err != nil {
		return models.SyncState{}, fmt.Errorf("load sync state: %w", err)
	}
	return st, nil
}

// saveState is the last step of every mutating operation. Nothing is
// written once ctx is done.
func (s *clientSyncService) saveState(ctx context.Context, st models.SyncState) error {
	if err := checkpoint(ctx); err != nil {
		return err
	}
	if err := s.state.Save(ctx, st); err != nil {
		return fmt.Errorf("save sync state: %w", err)
	}
	return nil
}

func (s *clientSyncService) requireRemote() error {
	if s.blobs == nil {
		return ErrConfiguration
	}
	return nil
}

// ── Serialisation ───────────────────────────────────────────────────────────

// run executes fn under the sync lock with its own time budget, then writes
// the single op/success/detail log entry and the operation metrics.
func (s *clientSyncService) run(ctx context.Context, op string, budget time.Duration, fn func(ctx context.Context) (outcome, error)) error {
	log := s.opLogger(ctx, op)

	waitStart := time.Now()
	if err := s.acquire(ctx); err != nil {
		err = fmt.Errorf("%w: waiting for sync lock: %w", ErrTimeout, err)
		log.Error().Err(err).Bool("success", false).Str("detail", "lock not acquired").Msg("sync operation finished")
		metrics.RecordOperation(op, metrics.StatusError, 0)
		return err
	}
	defer s.release()
	metrics.RecordLockWait(time.Since(waitStart))

	opCtx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	start := time.Now()
	res, err := fn(opCtx)
	if err != nil && opCtx.Err() != nil && !errors.Is(err, ErrTimeout) {
		err = fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	elapsed := time.Since(start)

	if err != nil {
		log.Error().Err(err).Bool("success", false).Str("detail", res.detail).Dur("elapsed", elapsed).Msg("sync operation finished")
		metrics.RecordOperation(op, metrics.StatusError, elapsed)
		return err
	}

	status := metrics.StatusSuccess
	if res.noop {
		status = metrics.StatusNoop
	}
	log.Info().Bool("success", true).Str("detail", res.detail).Dur("elapsed", elapsed).Msg("sync operation finished")
	metrics.RecordOperation(op, status, elapsed)
	return nil
}

func (s *clientSyncService) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case s.lock <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *clientSyncService) release() {
	<-s.lock
}

func (s *clientSyncService) opLogger(ctx context.Context, op string) *logger.Logger {
	l := s.logger.With().Str("op", op)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		l = l.Str("trace_id", traceID)
	}
	return &logger.Logger{Logger: l.Logger()}
}

// checkpoint fails with ErrTimeout once ctx is done.
func checkpoint(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return nil
}

func validateConflict(conflict models.Conflict, resolution models.Resolution) (string, error) {
	if !resolution.Valid() {
		return "", fmt.Errorf("%w: unknown resolution %q", ErrInvalidResolution, resolution)
	}
	if conflict.Local == nil && conflict.Remote == nil {
		return "", fmt.Errorf("%w: conflict carries neither side", ErrInvalidResolution)
	}

	id := conflict.ID
	for _, side := range []*models.Item{conflict.Local, conflict.Remote} {
		if side == nil {
			continue
		}
		if id == "" {
			id = side.ID
		}
		if side.ID != id {
			return "", fmt.Errorf("%w: item %q does not belong to conflict %q", ErrInvalidResolution, side.ID, id)
		}
	}
	if id == "" {
		return "", fmt.Errorf("%w: conflict has no id", ErrInvalidResolution)
	}

	return id, nil
}
