// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lumenplay/levelkeeper/internal/adapter"
	"github.com/lumenplay/levelkeeper/internal/logger"
	"github.com/lumenplay/levelkeeper/internal/store"
	"github.com/lumenplay/levelkeeper/models"
)

// contentFetcher downloads stale entity payloads in bounded-parallel batches
// and commits them to the persistent store.
type contentFetcher struct {
	localStore store.PersistentStore
	adapter    adapter.ServerAdapter
	batchSize  int

	logger *logger.Logger
}

func newContentFetcher(localStore store.PersistentStore, serverAdapter adapter.ServerAdapter, batchSize int, logger *logger.Logger) *contentFetcher {
	if batchSize < 1 {
		batchSize = 1
	}
	return &contentFetcher{
		localStore: localStore,
		adapter:    serverAdapter,
		batchSize:  batchSize,
		logger:     logger,
	}
}

// FetchStale downloads every entity in diff.StaleIDs, at most batchSize at a
// time, and refreshes the descriptor list when the diff says the metadata
// advanced. A failure on one entity is logged and skipped; it never aborts
// the other fetches or the pass.
//
// The manifest is committed only when the pass made progress: at least one
// entity updated, metadata refreshed, or no manifest was cached before.
// Entities that failed are committed at their previously cached version so
// the next resolve marks them stale again.
func (f *contentFetcher) FetchStale(ctx context.Context, remote models.Manifest, cached models.Manifest, diff ManifestDiff) (int, error) {
	metadataRefreshed := false
	if diff.MetadataStale {
		if err := f.refreshMetadata(ctx); err != nil {
			f.logger.Warn().Err(err).Msg("entity metadata refresh failed, keeping cached descriptors")
		} else {
			metadataRefreshed = true
		}
	}

	var (
		mu     sync.Mutex
		failed = make(map[models.EntityID]struct{})
	)

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(f.batchSize)

	for _, id := range diff.StaleIDs {
		g.Go(func() error {
			if err := f.fetchOne(groupCtx, id); err != nil {
				f.logger.Warn().Err(err).Str("entity_id", string(id)).Msg("entity fetch failed, will retry next pass")
				mu.Lock()
				failed[id] = struct{}{}
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait() // per-entity errors are absorbed above

	updated := len(diff.StaleIDs) - len(failed)

	if updated > 0 || metadataRefreshed || diff.FirstRun {
		commit := manifestWithFailuresPinned(remote, cached, failed)
		if err := f.localStore.SaveManifest(ctx, commit); err != nil {
			return updated, fmt.Errorf("commit manifest: %w", err)
		}
	}

	return updated, nil
}

func (f *contentFetcher) refreshMetadata(ctx context.Context) error {
	metas, err := f.adapter.FetchEntityMetas(ctx)
	if err != nil {
		return fmt.Errorf("fetch entity metas: %w", err)
	}
	if err = f.localStore.SaveEntityMetas(ctx, metas); err != nil {
		return fmt.Errorf("save entity metas: %w", err)
	}
	return nil
}

func (f *contentFetcher) fetchOne(ctx context.Context, id models.EntityID) error {
	content, err := f.adapter.FetchEntityContent(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch entity content: %w", err)
	}
	if err = f.localStore.SaveEntityContent(ctx, content); err != nil {
		return fmt.Errorf("save entity content: %w", err)
	}
	return nil
}

// manifestWithFailuresPinned copies remote, reverting the version of every
// failed entity to its previously cached value (or dropping it when it was
// never cached) so the failed set stays stale on the next resolve.
func manifestWithFailuresPinned(remote models.Manifest, cached models.Manifest, failed map[models.EntityID]struct{}) models.Manifest {
	if len(failed) == 0 {
		return remote
	}

	versions := make(map[models.EntityID]int64, len(remote.EntityVersions))
	for id, version := range remote.EntityVersions {
		if _, isFailed := failed[id]; !isFailed {
			versions[id] = version
			continue
		}
		if cachedVersion, ok := cached.EntityVersions[id]; ok {
			versions[id] = cachedVersion
		}
	}

	return models.Manifest{
		PublishedAt:    remote.PublishedAt,
		TotalEntities:  len(versions),
		EntityVersions: versions,
	}
}
