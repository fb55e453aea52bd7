package store

import (
	"context"

	"github.com/lumenplay/levelkeeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_store_mock.go -package=mock

// UserRepository persists registered accounts on the reference backend.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// PlayerStateRepository holds the authoritative per-user progress and
// subscription state on the reference backend. ApplyMutation folds one
// replayed client mutation into the stored state using the same
// best-state-wins rules the client merge uses.
type PlayerStateRepository interface {
	PlayerState(ctx context.Context, userID int64) (models.PlayerState, error)
	ApplyMutation(ctx context.Context, userID int64, payload models.MutationPayload) error
}

// ContentCatalog serves the published content set: the manifest, entity
// metadata and full entity payloads. The catalog is read-only at request
// time; publishing happens out of band.
type ContentCatalog interface {
	Manifest(ctx context.Context) (models.Manifest, error)
	EntityMetas(ctx context.Context) ([]models.EntityMeta, error)
	EntityContent(ctx context.Context, id models.EntityID) (models.EntityContent, error)
}
