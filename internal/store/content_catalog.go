// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/lumenplay/levelkeeper/internal/logger"
	"github.com/lumenplay/levelkeeper/models"
)

// catalogSeed is the on-disk format of a content seed file: a publish
// timestamp plus the full entity set, each entry carrying metadata, version
// and payload together.
type catalogSeed struct {
	PublishedAt int64         `json:"published_at"`
	Entities    []seedsEntity `json:"entities"`
}

type seedsEntity struct {
	EntityID models.EntityID            `json:"entity_id"`
	Title    string                     `json:"title"`
	Group    string                     `json:"group"`
	Position int                        `json:"position"`
	Version  int64                      `json:"version"`
	Payload  map[string]json.RawMessage `json:"payload"`
}

// memoryContentCatalog is the in-memory [ContentCatalog] implementation. The
// entity set is fixed at construction time, so reads need no locking.
type memoryContentCatalog struct {
	manifest models.Manifest
	metas    []models.EntityMeta
	contents map[models.EntityID]models.EntityContent
}

// NewContentCatalog builds the catalog from the seed file at seedPath. An
// empty path loads a small built-in sample set so the backend is usable
// without any provisioning.
func NewContentCatalog(seedPath string, log *logger.Logger) (ContentCatalog, error) {
	seed, err := loadSeed(seedPath)
	if err != nil {
		return nil, err
	}

	catalog := buildCatalog(seed)
	log.Info().
		Str("seed", seedPath).
		Int("entities", catalog.manifest.TotalEntities).
		Msg("content catalog loaded")

	return catalog, nil
}

func loadSeed(seedPath string) (catalogSeed, error) {
	if seedPath == "" {
		return builtinSeed(), nil
	}

	data, err := os.ReadFile(seedPath)
	if err != nil {
		return catalogSeed{}, fmt.Errorf("reading content seed: %w", err)
	}

	var seed catalogSeed
	if err := json.Unmarshal(data, &seed); err != nil {
		return catalogSeed{}, fmt.Errorf("parsing content seed: %w", err)
	}
	if seed.PublishedAt == 0 {
		seed.PublishedAt = time.Now().UnixMilli()
	}

	return seed, nil
}

func buildCatalog(seed catalogSeed) *memoryContentCatalog {
	catalog := &memoryContentCatalog{
		manifest: models.Manifest{
			PublishedAt:    seed.PublishedAt,
			TotalEntities:  len(seed.Entities),
			EntityVersions: make(map[models.EntityID]int64, len(seed.Entities)),
		},
		metas:    make([]models.EntityMeta, 0, len(seed.Entities)),
		contents: make(map[models.EntityID]models.EntityContent, len(seed.Entities)),
	}

	for _, entity := range seed.Entities {
		catalog.manifest.EntityVersions[entity.EntityID] = entity.Version
		catalog.metas = append(catalog.metas, models.EntityMeta{
			EntityID: entity.EntityID,
			Title:    entity.Title,
			Group:    entity.Group,
			Position: entity.Position,
		})
		catalog.contents[entity.EntityID] = models.EntityContent{
			EntityID: entity.EntityID,
			Version:  entity.Version,
			Payload:  entity.Payload,
		}
	}

	sort.Slice(catalog.metas, func(i, j int) bool {
		if catalog.metas[i].Group != catalog.metas[j].Group {
			return catalog.metas[i].Group < catalog.metas[j].Group
		}
		return catalog.metas[i].Position < catalog.metas[j].Position
	})

	return catalog
}

func (c *memoryContentCatalog) Manifest(_ context.Context) (models.Manifest, error) {
	return c.manifest, nil
}

func (c *memoryContentCatalog) EntityMetas(_ context.Context) ([]models.EntityMeta, error) {
	metas := make([]models.EntityMeta, len(c.metas))
	copy(metas, c.metas)
	return metas, nil
}

func (c *memoryContentCatalog) EntityContent(_ context.Context, id models.EntityID) (models.EntityContent, error) {
	content, ok := c.contents[id]
	if !ok {
		return models.EntityContent{}, ErrEntityNotFound
	}
	return content, nil
}

// builtinSeed is the sample content set used when no seed file is
// configured: two groups of levels with per-difficulty payloads.
func builtinSeed() catalogSeed {
	payload := func(easy, hard string) map[string]json.RawMessage {
		return map[string]json.RawMessage{
			"easy": json.RawMessage(easy),
			"hard": json.RawMessage(hard),
		}
	}

	return catalogSeed{
		PublishedAt: time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC).UnixMilli(),
		Entities: []seedsEntity{
			{
				EntityID: "arithmetic-01",
				Title:    "Addition Basics",
				Group:    "arithmetic",
				Position: 1,
				Version:  1,
				Payload:  payload(`{"questions":["2+2","3+4"]}`, `{"questions":["17+28","39+44"]}`),
			},
			{
				EntityID: "arithmetic-02",
				Title:    "Subtraction Basics",
				Group:    "arithmetic",
				Position: 2,
				Version:  1,
				Payload:  payload(`{"questions":["5-2","9-4"]}`, `{"questions":["52-27","91-46"]}`),
			},
			{
				EntityID: "geometry-01",
				Title:    "Shapes",
				Group:    "geometry",
				Position: 1,
				Version:  2,
				Payload:  payload(`{"questions":["sides of a square"]}`, `{"questions":["angles of a hexagon"]}`),
			},
		},
	}
}
