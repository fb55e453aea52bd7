// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/lumenplay/levelkeeper/internal/adapter"
	"github.com/lumenplay/levelkeeper/internal/logger"
	"github.com/lumenplay/levelkeeper/internal/store"
	"github.com/lumenplay/levelkeeper/internal/utils"
	"github.com/lumenplay/levelkeeper/models"
)

// mutationQueue is the durable FIFO of offline mutations. Persistence and
// ordering live in the store; this type adds the replay policy and the
// single-flight drain guard.
type mutationQueue struct {
	localStore store.PersistentStore
	adapter    adapter.ServerAdapter
	ids        *utils.UUIDGenerator

	drainMu sync.Mutex

	logger *logger.Logger
}

// NewMutationQueue constructs a [MutationQueue] over the given store and
// transport.
func NewMutationQueue(localStore store.PersistentStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) MutationQueue {
	return &mutationQueue{
		localStore: localStore,
		adapter:    serverAdapter,
		ids:        utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

// Enqueue implements [MutationQueue]. A missing payload ID is filled with a
// fresh UUID so the server can deduplicate replays whose acknowledgement was
// lost. The append is durable before Enqueue returns.
func (q *mutationQueue) Enqueue(ctx context.Context, payload models.MutationPayload) (models.QueueItem, error) {
	if payload.ID == "" {
		payload.ID = q.ids.Generate()
	}

	item, err := q.localStore.AppendQueueItem(ctx, payload)
	if err != nil {
		return models.QueueItem{}, fmt.Errorf("enqueue mutation: %w", err)
	}

	q.logger.Debug().
		Int64("seq", item.Seq).
		Str("kind", payload.Kind).
		Str("entity_id", string(payload.EntityID)).
		Msg("mutation enqueued")

	return item, nil
}

// Drain implements [MutationQueue]. Items replay strictly in ascending
// sequence order; the first failure stops the drain and leaves the failed
// item and everything after it queued. Concurrent calls are a no-op.
func (q *mutationQueue) Drain(ctx context.Context) (int, error) {
	if !q.drainMu.TryLock() {
		return 0, ErrDrainInFlight
	}
	defer q.drainMu.Unlock()

	items, err := q.localStore.QueueItems(ctx)
	if err != nil {
		return 0, fmt.Errorf("load queue items: %w", err)
	}

	replayed := 0
	for _, item := range items {
		if err = q.adapter.ReplayMutation(ctx, item.Payload); err != nil {
			q.logger.Warn().Err(err).
				Int64("seq", item.Seq).
				Int("remaining", len(items)-replayed).
				Msg("mutation replay failed, halting drain")
			return replayed, fmt.Errorf("replay mutation seq %d: %w", item.Seq, err)
		}

		if err = q.localStore.DeleteQueueItem(ctx, item.Seq); err != nil {
			// The server accepted the mutation but the local delete failed;
			// stop here so the next drain re-replays it (the payload ID lets
			// the server deduplicate).
			return replayed, fmt.Errorf("remove replayed item seq %d: %w", item.Seq, err)
		}
		replayed++
	}

	if replayed > 0 {
		q.logger.Info().Int("replayed", replayed).Msg("mutation queue drained")
	}

	return replayed, nil
}

// Depth implements [MutationQueue].
func (q *mutationQueue) Depth(ctx context.Context) (int, error) {
	return q.localStore.QueueDepth(ctx)
}
