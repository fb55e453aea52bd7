package service

import (
	"context"
	"fmt"

	"github.com/lumenplay/levelkeeper/internal/logger"
	"github.com/lumenplay/levelkeeper/internal/store"
	"github.com/lumenplay/levelkeeper/models"
)

// contentService is a thin read-only facade over the content catalog.
type contentService struct {
	catalog store.ContentCatalog

	logger *logger.Logger
}

// NewContentService constructs a [ContentService] over the given catalog.
func NewContentService(catalog store.ContentCatalog, logger *logger.Logger) ContentService {
	return &contentService{
		catalog: catalog,
		logger:  logger,
	}
}

func (c *contentService) Manifest(ctx context.Context) (models.Manifest, error) {
	return c.catalog.Manifest(ctx)
}

func (c *contentService) EntityMetas(ctx context.Context) ([]models.EntityMeta, error) {
	return c.catalog.EntityMetas(ctx)
}

func (c *contentService) EntityContent(ctx context.Context, id models.EntityID) (models.EntityContent, error) {
	if id == "" {
		return models.EntityContent{}, ErrInvalidDataProvided
	}

	content, err := c.catalog.EntityContent(ctx, id)
	if err != nil {
		return models.EntityContent{}, fmt.Errorf("load entity content %s: %w", id, err)
	}

	return content, nil
}
