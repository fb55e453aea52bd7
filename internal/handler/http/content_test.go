// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lumenplay/levelkeeper/internal/store"
	"github.com/lumenplay/levelkeeper/models"
)

func getPath(router http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestManifest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, m := newTestRouter(t, ctrl)

	manifest := models.Manifest{
		PublishedAt:    1000,
		TotalEntities:  1,
		EntityVersions: map[models.EntityID]int64{"a": 2},
	}
	m.catalog.EXPECT().Manifest(gomock.Any()).Return(manifest, nil)

	rec := getPath(router, "/api/content/manifest")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var got models.Manifest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, manifest, got)
}

func TestEntityMetas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, m := newTestRouter(t, ctrl)

	metas := []models.EntityMeta{
		{EntityID: "a", Title: "Addition", Group: "arithmetic", Position: 1},
	}
	m.catalog.EXPECT().EntityMetas(gomock.Any()).Return(metas, nil)

	rec := getPath(router, "/api/content/entities")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.EntityMeta
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, metas, got)
}

func TestEntityContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, m := newTestRouter(t, ctrl)

	content := models.EntityContent{
		EntityID: "a",
		Version:  2,
		Payload:  map[string]json.RawMessage{"easy": json.RawMessage(`{"questions":[]}`)},
	}
	m.catalog.EXPECT().EntityContent(gomock.Any(), models.EntityID("a")).Return(content, nil)

	rec := getPath(router, "/api/content/entities/a")

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.EntityContent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, content, got)
}

func TestEntityContent_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, m := newTestRouter(t, ctrl)

	m.catalog.EXPECT().EntityContent(gomock.Any(), models.EntityID("nope")).
		Return(models.EntityContent{}, store.ErrEntityNotFound)

	rec := getPath(router, "/api/content/entities/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
