// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/lumenplay/levelkeeper/models"
)

// SyncEngine is the client-side engine that keeps the local content cache and
// progress snapshot converged with the remote service. It owns the
// idle/syncing state machine: at most one sync pass runs at a time and
// concurrent triggers are dropped.
type SyncEngine interface {
	// Sync runs one full sync pass: manifest resolve → content fetch →
	// player-state fetch → progress reconcile → last-sync-time commit.
	// Non-forced calls are throttled against the last recorded sync time;
	// forced calls bypass the throttle. Returns [ErrSyncInFlight] if a pass
	// is already running and [ErrSyncThrottled] if the call was throttled.
	Sync(ctx context.Context, forced bool) error

	// RecordLocalResult applies a gameplay result to the local progress
	// snapshot and enqueues the corresponding mutation for replay. The local
	// write happens regardless of connectivity; the mutation reaches the
	// server on the next drain.
	RecordLocalResult(ctx context.Context, payload models.MutationPayload) error

	// Status returns a read-only snapshot of the engine state. It has no
	// side effects and is safe to poll at any frequency.
	Status(ctx context.Context) (models.SyncStatus, error)

	// ClearLocalState removes every locally cached key (manifest, content,
	// progress, subscription, queue, sync metadata) atomically from the
	// consumer's point of view. Used on logout.
	ClearLocalState(ctx context.Context) error

	// Run consumes trigger channels until ctx is cancelled: periodic ticks
	// and foreground transitions request a throttled sync, network recovery
	// requests a queue drain followed by a forced sync.
	Run(ctx context.Context, triggers Triggers)
}

// MutationQueue is the durable FIFO of progress mutations recorded while the
// remote service was unreachable.
type MutationQueue interface {
	// Enqueue appends one mutation with a strictly increasing sequence
	// number. The item is durable before Enqueue returns.
	Enqueue(ctx context.Context, payload models.MutationPayload) (models.QueueItem, error)

	// Drain replays queued items in ascending sequence order, one at a
	// time: on success the item is removed and the drain continues; on
	// failure the drain stops immediately and the failed item plus
	// everything after it stay queued. A Drain call while another drain is
	// in flight is a no-op returning [ErrDrainInFlight]. Returns the number
	// of items replayed.
	Drain(ctx context.Context) (int, error)

	// Depth reports how many items are currently queued.
	Depth(ctx context.Context) (int, error)
}
