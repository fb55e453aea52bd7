package service

import (
	"context"

	"github.com/lumenplay/levelkeeper/models"
)

// AuthService handles account registration, credential verification and JWT
// lifecycle for the reference backend.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ContentService serves the published content set to authenticated clients.
type ContentService interface {
	Manifest(ctx context.Context) (models.Manifest, error)
	EntityMetas(ctx context.Context) ([]models.EntityMeta, error)
	EntityContent(ctx context.Context, id models.EntityID) (models.EntityContent, error)
}

// PlayerService exposes the authoritative per-user progress and subscription
// state and applies replayed client mutations.
type PlayerService interface {
	State(ctx context.Context, userID int64) (models.PlayerState, error)
	ApplyMutation(ctx context.Context, userID int64, payload models.MutationPayload) error
}
