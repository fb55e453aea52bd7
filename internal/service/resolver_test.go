// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumenplay/levelkeeper/models"
)

func TestResolveManifest_FirstRun(t *testing.T) {
	remote := models.Manifest{
		PublishedAt:   1000,
		TotalEntities: 3,
		EntityVersions: map[models.EntityID]int64{
			"c": 1,
			"a": 2,
			"b": 1,
		},
	}

	diff := ResolveManifest(remote, models.Manifest{}, false)

	assert.True(t, diff.FirstRun)
	assert.True(t, diff.MetadataStale)
	assert.Equal(t, []models.EntityID{"a", "b", "c"}, diff.StaleIDs)
	assert.True(t, diff.HasWork())
}

func TestResolveManifest(t *testing.T) {
	cached := models.Manifest{
		PublishedAt: 1000,
		EntityVersions: map[models.EntityID]int64{
			"a": 1,
			"b": 2,
			"c": 3,
		},
	}

	tests := []struct {
		name          string
		remote        models.Manifest
		wantStale     []models.EntityID
		wantMetaStale bool
	}{
		{
			name: "no changes",
			remote: models.Manifest{
				PublishedAt:    1000,
				EntityVersions: map[models.EntityID]int64{"a": 1, "b": 2, "c": 3},
			},
		},
		{
			name: "version bump marks stale",
			remote: models.Manifest{
				PublishedAt:    1000,
				EntityVersions: map[models.EntityID]int64{"a": 1, "b": 3, "c": 3},
			},
			wantStale: []models.EntityID{"b"},
		},
		{
			name: "new entity marks stale",
			remote: models.Manifest{
				PublishedAt:    1000,
				EntityVersions: map[models.EntityID]int64{"a": 1, "b": 2, "c": 3, "d": 1},
			},
			wantStale: []models.EntityID{"d"},
		},
		{
			name: "remote version below cached is tolerated",
			remote: models.Manifest{
				PublishedAt:    1000,
				EntityVersions: map[models.EntityID]int64{"a": 1, "b": 1, "c": 3},
			},
		},
		{
			name: "publish timestamp advance marks metadata stale",
			remote: models.Manifest{
				PublishedAt:    2000,
				EntityVersions: map[models.EntityID]int64{"a": 1, "b": 2, "c": 3},
			},
			wantMetaStale: true,
		},
		{
			name: "stale ids come out sorted",
			remote: models.Manifest{
				PublishedAt:    1000,
				EntityVersions: map[models.EntityID]int64{"a": 2, "b": 2, "c": 4, "z": 1, "d": 1},
			},
			wantStale: []models.EntityID{"a", "c", "d", "z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff := ResolveManifest(tt.remote, cached, true)

			assert.False(t, diff.FirstRun)
			assert.Equal(t, tt.wantStale, diff.StaleIDs)
			assert.Equal(t, tt.wantMetaStale, diff.MetadataStale)
			assert.Equal(t, len(tt.wantStale) > 0 || tt.wantMetaStale, diff.HasWork())
		})
	}
}

func TestResolveManifest_EntityRemovedFromRemote(t *testing.T) {
	cached := models.Manifest{
		PublishedAt:    1000,
		EntityVersions: map[models.EntityID]int64{"a": 1, "gone": 5},
	}
	remote := models.Manifest{
		PublishedAt:    1000,
		EntityVersions: map[models.EntityID]int64{"a": 1},
	}

	// an id present only in the cache is not stale: there is nothing to fetch
	diff := ResolveManifest(remote, cached, true)

	assert.Empty(t, diff.StaleIDs)
	assert.False(t, diff.HasWork())
}
