// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lumenplay/levelkeeper/internal/adapter"
	"github.com/lumenplay/levelkeeper/internal/config"
	"github.com/lumenplay/levelkeeper/internal/logger"
	"github.com/lumenplay/levelkeeper/internal/store"
	"github.com/lumenplay/levelkeeper/models"
)

// syncEngine coordinates the full sync pipeline over the persistent store and
// the server adapter. One engine instance owns one local replica.
type syncEngine struct {
	localStore store.PersistentStore
	adapter    adapter.ServerAdapter
	fetcher    *contentFetcher
	queue      MutationQueue

	throttle time.Duration

	// syncing is the idle/syncing state machine: false is idle, true is
	// syncing. All triggers race on a single CAS so at most one pass runs
	// process-wide and losers are dropped, not queued.
	syncing atomic.Bool

	// now is the clock; injectable for tests.
	now func() time.Time

	logger *logger.Logger
}

// NewSyncEngine constructs a [SyncEngine] with the given collaborators and
// sync tunables.
func NewSyncEngine(localStore store.PersistentStore, serverAdapter adapter.ServerAdapter, queue MutationQueue, cfg config.ClientSync, logger *logger.Logger) SyncEngine {
	return &syncEngine{
		localStore: localStore,
		adapter:    serverAdapter,
		fetcher:    newContentFetcher(localStore, serverAdapter, cfg.BatchSize, logger),
		queue:      queue,
		throttle:   cfg.Throttle,
		now:        time.Now,
		logger:     logger,
	}
}

// Sync implements [SyncEngine]. The pass runs to completion or fails at an
// I/O boundary; there is no explicit cancellation beyond ctx.
func (e *syncEngine) Sync(ctx context.Context, forced bool) error {
	if !e.syncing.CompareAndSwap(false, true) {
		e.logger.Debug().Msg("sync trigger dropped, pass already in flight")
		return ErrSyncInFlight
	}
	defer e.syncing.Store(false)

	if !forced {
		if last, ok, err := e.localStore.LastSyncTime(ctx); err == nil && ok {
			if elapsed := e.now().Sub(last); elapsed < e.throttle {
				e.logger.Debug().Dur("elapsed", elapsed).Msg("sync trigger throttled")
				return ErrSyncThrottled
			}
		}
	}

	return e.runPass(ctx)
}

func (e *syncEngine) runPass(ctx context.Context) error {
	// Stage 1: manifest resolve. Failure aborts the pass before any cached
	// state is touched.
	remote, err := e.adapter.FetchManifest(ctx)
	if err != nil {
		return fmt.Errorf("fetch manifest: %w", err)
	}

	cached, haveCached, err := e.localStore.Manifest(ctx)
	if err != nil {
		return fmt.Errorf("load cached manifest: %w", err)
	}

	diff := ResolveManifest(remote, cached, haveCached)

	// Stage 2: content fetch. Per-entity failures are absorbed inside the
	// fetcher; only a store-level commit failure surfaces.
	updated := 0
	if diff.HasWork() {
		if updated, err = e.fetcher.FetchStale(ctx, remote, cached, diff); err != nil {
			return fmt.Errorf("fetch stale content: %w", err)
		}
	}

	// Stage 3+4: player-state fetch and reconcile. A fetch failure aborts
	// only reconciliation — the content progress above is kept.
	if err = e.reconcileRemoteState(ctx); err != nil {
		e.logger.Warn().Err(err).Msg("player state sync failed, keeping local snapshot")
	}

	// Stage 5: commit the sync time; the pass counts even when partial.
	if err = e.localStore.SaveLastSyncTime(ctx, e.now()); err != nil {
		return fmt.Errorf("commit last sync time: %w", err)
	}

	e.logger.Info().
		Int("stale", len(diff.StaleIDs)).
		Int("updated", updated).
		Bool("first_run", diff.FirstRun).
		Msg("sync pass finished")

	return nil
}

func (e *syncEngine) reconcileRemoteState(ctx context.Context) error {
	state, err := e.adapter.FetchPlayerState(ctx)
	if err != nil {
		return fmt.Errorf("fetch player state: %w", err)
	}

	local, err := e.localStore.Progress(ctx)
	if err != nil {
		return fmt.Errorf("load local progress: %w", err)
	}

	merged := MergeProgress(state.Progress, local)
	if err = e.localStore.SaveProgress(ctx, merged); err != nil {
		return fmt.Errorf("save merged progress: %w", err)
	}

	if err = e.localStore.SaveSubscription(ctx, state.Subscription); err != nil {
		return fmt.Errorf("save subscription: %w", err)
	}

	return nil
}

// RecordLocalResult implements [SyncEngine]. The local snapshot is updated
// through the same merge the reconciler uses, so a recorded result can never
// regress the stored best state.
func (e *syncEngine) RecordLocalResult(ctx context.Context, payload models.MutationPayload) error {
	local, err := e.localStore.Progress(ctx)
	if err != nil {
		return fmt.Errorf("load local progress: %w", err)
	}

	merged := MergeProgress([]models.ProgressRecord{progressFromMutation(payload, local)}, local)
	if err = e.localStore.SaveProgress(ctx, merged); err != nil {
		return fmt.Errorf("save local progress: %w", err)
	}

	if _, err = e.queue.Enqueue(ctx, payload); err != nil {
		return err
	}

	return nil
}

// progressFromMutation lifts one gameplay mutation into a progress record so
// it can be folded into the snapshot by MergeProgress. Every play counts as
// one more attempt on its sub-key, even when the result itself is worse than
// the stored best.
func progressFromMutation(payload models.MutationPayload, local []models.ProgressRecord) models.ProgressRecord {
	record := models.ProgressRecord{EntityID: payload.EntityID}

	switch payload.Kind {
	case models.MutationSubKeyResult:
		record.SubKeys = []models.SubKeyProgress{{
			SubKey:    payload.SubKey,
			HighScore: payload.HighScore,
			Passed:    payload.Passed,
			Attempts:  subKeyAttempts(local, payload.EntityID, payload.SubKey) + 1,
		}}
	case models.MutationEntityComplete:
		record.Completed = true
	}

	return record
}

func subKeyAttempts(local []models.ProgressRecord, entityID models.EntityID, subKey string) int {
	for _, record := range local {
		if record.EntityID != entityID {
			continue
		}
		if sk, ok := record.SubKey(subKey); ok {
			return sk.Attempts
		}
		break
	}
	return 0
}

// Status implements [SyncEngine].
func (e *syncEngine) Status(ctx context.Context) (models.SyncStatus, error) {
	last, _, err := e.localStore.LastSyncTime(ctx)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("load last sync time: %w", err)
	}

	count, err := e.localStore.ContentCount(ctx)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("count cached entities: %w", err)
	}

	depth, err := e.queue.Depth(ctx)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("queue depth: %w", err)
	}

	return models.SyncStatus{
		LastSyncTime:      last,
		CachedEntityCount: count,
		QueueDepth:        depth,
		IsSyncing:         e.syncing.Load(),
	}, nil
}

// ClearLocalState implements [SyncEngine].
func (e *syncEngine) ClearLocalState(ctx context.Context) error {
	if err := e.localStore.Clear(ctx); err != nil {
		return fmt.Errorf("clear local state: %w", err)
	}
	return nil
}

// Run implements [SyncEngine]. Sync-in-flight and throttle outcomes are
// normal trigger drops, everything else is logged and the loop keeps going.
func (e *syncEngine) Run(ctx context.Context, triggers Triggers) {
	reachable := true

	for {
		select {
		case <-ctx.Done():
			return

		case <-triggers.Tick:
			e.trigger(ctx, false, false)

		case nowReachable, open := <-triggers.Reachability:
			if !open {
				triggers.Reachability = nil
				continue
			}
			recovered := nowReachable && !reachable
			reachable = nowReachable
			if recovered {
				e.trigger(ctx, true, true)
			}

		case phase, open := <-triggers.Lifecycle:
			if !open {
				triggers.Lifecycle = nil
				continue
			}
			if phase == PhaseForeground {
				e.trigger(ctx, true, false)
			}
		}
	}
}

func (e *syncEngine) trigger(ctx context.Context, drainFirst, forced bool) {
	if drainFirst {
		if _, err := e.queue.Drain(ctx); err != nil {
			e.logger.Warn().Err(err).Msg("queue drain failed")
		}
	}

	if err := e.Sync(ctx, forced); err != nil {
		e.logger.Debug().Err(err).Bool("forced", forced).Msg("sync trigger outcome")
	}
}
