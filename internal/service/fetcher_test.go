// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lumenplay/levelkeeper/internal/logger"
	"github.com/lumenplay/levelkeeper/internal/mock"
	"github.com/lumenplay/levelkeeper/models"
)

func newTestFetcher(t *testing.T, ctrl *gomock.Controller, batchSize int) (*contentFetcher, *mock.MockPersistentStore, *mock.MockServerAdapter) {
	t.Helper()
	mockStore := mock.NewMockPersistentStore(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	f := newContentFetcher(mockStore, mockAdapter, batchSize, logger.NewLogger("test"))
	return f, mockStore, mockAdapter
}

func TestContentFetcher_FetchStale_AllSucceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, mockStore, mockAdapter := newTestFetcher(t, ctrl, 2)
	ctx := context.Background()

	remote := models.Manifest{
		PublishedAt:    2000,
		TotalEntities:  2,
		EntityVersions: map[models.EntityID]int64{"a": 2, "b": 1},
	}
	cached := models.Manifest{
		PublishedAt:    1000,
		TotalEntities:  1,
		EntityVersions: map[models.EntityID]int64{"a": 1},
	}
	diff := ManifestDiff{StaleIDs: []models.EntityID{"a", "b"}, MetadataStale: true}

	metas := []models.EntityMeta{{EntityID: "a", Title: "A"}, {EntityID: "b", Title: "B"}}
	mockAdapter.EXPECT().FetchEntityMetas(ctx).Return(metas, nil)
	mockStore.EXPECT().SaveEntityMetas(ctx, metas).Return(nil)

	for _, id := range diff.StaleIDs {
		content := models.EntityContent{EntityID: id, Version: remote.EntityVersions[id]}
		mockAdapter.EXPECT().FetchEntityContent(gomock.Any(), id).Return(content, nil)
		mockStore.EXPECT().SaveEntityContent(gomock.Any(), content).Return(nil)
	}

	// every fetch landed, so the remote manifest commits as-is
	mockStore.EXPECT().SaveManifest(ctx, remote).Return(nil)

	updated, err := f.FetchStale(ctx, remote, cached, diff)
	require.NoError(t, err)
	assert.Equal(t, 2, updated)
}

func TestContentFetcher_FetchStale_FailedEntityStaysStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, mockStore, mockAdapter := newTestFetcher(t, ctrl, 1)
	ctx := context.Background()

	remote := models.Manifest{
		PublishedAt:    1000,
		TotalEntities:  2,
		EntityVersions: map[models.EntityID]int64{"a": 2, "b": 3},
	}
	cached := models.Manifest{
		PublishedAt:    1000,
		TotalEntities:  2,
		EntityVersions: map[models.EntityID]int64{"a": 1, "b": 1},
	}
	diff := ManifestDiff{StaleIDs: []models.EntityID{"a", "b"}}

	contentA := models.EntityContent{EntityID: "a", Version: 2}
	mockAdapter.EXPECT().FetchEntityContent(gomock.Any(), models.EntityID("a")).Return(contentA, nil)
	mockStore.EXPECT().SaveEntityContent(gomock.Any(), contentA).Return(nil)
	mockAdapter.EXPECT().FetchEntityContent(gomock.Any(), models.EntityID("b")).
		Return(models.EntityContent{}, errors.New("connection reset"))

	var committed models.Manifest
	mockStore.EXPECT().SaveManifest(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, m models.Manifest) error {
			committed = m
			return nil
		})

	updated, err := f.FetchStale(ctx, remote, cached, diff)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	// the failed entity commits at its previously cached version
	assert.Equal(t, int64(2), committed.EntityVersions["a"])
	assert.Equal(t, int64(1), committed.EntityVersions["b"])
	assert.Equal(t, 2, committed.TotalEntities)

	// so the next resolve against the same remote marks only it stale
	next := ResolveManifest(remote, committed, true)
	assert.Equal(t, []models.EntityID{"b"}, next.StaleIDs)
}

func TestContentFetcher_FetchStale_NoProgressNoCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, _, mockAdapter := newTestFetcher(t, ctrl, 1)
	ctx := context.Background()

	remote := models.Manifest{
		PublishedAt:    1000,
		TotalEntities:  1,
		EntityVersions: map[models.EntityID]int64{"a": 2},
	}
	cached := models.Manifest{
		PublishedAt:    1000,
		TotalEntities:  1,
		EntityVersions: map[models.EntityID]int64{"a": 1},
	}
	diff := ManifestDiff{StaleIDs: []models.EntityID{"a"}}

	mockAdapter.EXPECT().FetchEntityContent(gomock.Any(), models.EntityID("a")).
		Return(models.EntityContent{}, errors.New("503"))

	// no SaveManifest expectation: nothing moved, the cached manifest stands
	updated, err := f.FetchStale(ctx, remote, cached, diff)
	require.NoError(t, err)
	assert.Zero(t, updated)
}

func TestContentFetcher_FetchStale_MetadataFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, mockStore, mockAdapter := newTestFetcher(t, ctrl, 1)
	ctx := context.Background()

	remote := models.Manifest{
		PublishedAt:    2000,
		TotalEntities:  1,
		EntityVersions: map[models.EntityID]int64{"a": 2},
	}
	cached := models.Manifest{
		PublishedAt:    1000,
		TotalEntities:  1,
		EntityVersions: map[models.EntityID]int64{"a": 1},
	}
	diff := ManifestDiff{StaleIDs: []models.EntityID{"a"}, MetadataStale: true}

	mockAdapter.EXPECT().FetchEntityMetas(ctx).Return(nil, errors.New("timeout"))

	content := models.EntityContent{EntityID: "a", Version: 2}
	mockAdapter.EXPECT().FetchEntityContent(gomock.Any(), models.EntityID("a")).Return(content, nil)
	mockStore.EXPECT().SaveEntityContent(gomock.Any(), content).Return(nil)
	mockStore.EXPECT().SaveManifest(ctx, remote).Return(nil)

	updated, err := f.FetchStale(ctx, remote, cached, diff)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
}

func TestContentFetcher_FetchStale_FirstRunCommitsEvenWhenFetchesFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, mockStore, mockAdapter := newTestFetcher(t, ctrl, 1)
	ctx := context.Background()

	remote := models.Manifest{
		PublishedAt:    1000,
		TotalEntities:  1,
		EntityVersions: map[models.EntityID]int64{"a": 1},
	}
	diff := ManifestDiff{StaleIDs: []models.EntityID{"a"}, MetadataStale: true, FirstRun: true}

	mockAdapter.EXPECT().FetchEntityMetas(ctx).Return(nil, errors.New("timeout"))
	mockAdapter.EXPECT().FetchEntityContent(gomock.Any(), models.EntityID("a")).
		Return(models.EntityContent{}, errors.New("timeout"))

	var committed models.Manifest
	mockStore.EXPECT().SaveManifest(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, m models.Manifest) error {
			committed = m
			return nil
		})

	updated, err := f.FetchStale(ctx, remote, models.Manifest{}, diff)
	require.NoError(t, err)
	assert.Zero(t, updated)

	// never-cached failures drop out of the committed manifest entirely,
	// so the entity is fetched again on the next pass
	assert.Empty(t, committed.EntityVersions)
	assert.Zero(t, committed.TotalEntities)
	assert.Equal(t, remote.PublishedAt, committed.PublishedAt)
}

func TestContentFetcher_FetchStale_ManifestCommitFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, mockStore, mockAdapter := newTestFetcher(t, ctrl, 1)
	ctx := context.Background()

	remote := models.Manifest{
		PublishedAt:    1000,
		TotalEntities:  1,
		EntityVersions: map[models.EntityID]int64{"a": 1},
	}
	diff := ManifestDiff{StaleIDs: []models.EntityID{"a"}}

	content := models.EntityContent{EntityID: "a", Version: 1}
	mockAdapter.EXPECT().FetchEntityContent(gomock.Any(), models.EntityID("a")).Return(content, nil)
	mockStore.EXPECT().SaveEntityContent(gomock.Any(), content).Return(nil)
	mockStore.EXPECT().SaveManifest(ctx, remote).Return(errors.New("disk full"))

	_, err := f.FetchStale(ctx, remote, models.Manifest{EntityVersions: map[models.EntityID]int64{}}, diff)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit manifest")
}
