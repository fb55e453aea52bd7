// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sort"

	"github.com/lumenplay/levelkeeper/models"
)

// ManifestDiff is the result of comparing a freshly fetched manifest against
// the locally cached one.
type ManifestDiff struct {
	// StaleIDs lists every entity whose cached content is older than the
	// remote version (or not cached at all), sorted for determinism.
	StaleIDs []models.EntityID

	// MetadataStale reports that the remote publish timestamp advanced, so
	// the entity descriptor list must be re-fetched even if no individual
	// content version changed.
	MetadataStale bool

	// FirstRun reports that no manifest was cached before this pass.
	FirstRun bool
}

// HasWork reports whether the diff requires any fetching at all.
func (d ManifestDiff) HasWork() bool {
	return len(d.StaleIDs) > 0 || d.MetadataStale || d.FirstRun
}

// ResolveManifest diffs remote against cached and returns the stale set. An
// id is stale if it is absent from the cached manifest or the remote version
// is strictly greater than the cached one; a remote version lower than the
// cached one is tolerated by not marking the id stale. With no cached
// manifest every remote id is stale.
//
// The function is pure: it never touches storage or the network, so a failed
// remote fetch aborts the pass before anything here runs and the previous
// cache stands untouched.
func ResolveManifest(remote models.Manifest, cached models.Manifest, haveCached bool) ManifestDiff {
	diff := ManifestDiff{FirstRun: !haveCached}

	if !haveCached {
		diff.MetadataStale = true
		for id := range remote.EntityVersions {
			diff.StaleIDs = append(diff.StaleIDs, id)
		}
		sortEntityIDs(diff.StaleIDs)
		return diff
	}

	diff.MetadataStale = remote.PublishedAt > cached.PublishedAt

	for id, remoteVersion := range remote.EntityVersions {
		cachedVersion, ok := cached.EntityVersions[id]
		if !ok || remoteVersion > cachedVersion {
			diff.StaleIDs = append(diff.StaleIDs, id)
		}
	}
	sortEntityIDs(diff.StaleIDs)

	return diff
}

func sortEntityIDs(ids []models.EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
