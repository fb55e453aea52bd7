package service

import (
	"context"
	"fmt"

	"github.com/lumenplay/levelkeeper/internal/logger"
	"github.com/lumenplay/levelkeeper/internal/store"
	"github.com/lumenplay/levelkeeper/internal/validators"
	"github.com/lumenplay/levelkeeper/models"
)

// playerService is the concrete implementation of PlayerService. Mutations
// are validated before they reach the repository so a malformed payload is
// rejected rather than silently acknowledged.
type playerService struct {
	repository store.PlayerStateRepository
	validator  validators.Validator

	logger *logger.Logger
}

// NewPlayerService constructs a [PlayerService] over the given repository.
func NewPlayerService(repository store.PlayerStateRepository, logger *logger.Logger) PlayerService {
	return &playerService{
		repository: repository,
		validator:  validators.NewMutationValidator(),
		logger:     logger,
	}
}

// State returns the authoritative progress and subscription snapshot for one
// user.
func (p *playerService) State(ctx context.Context, userID int64) (models.PlayerState, error) {
	state, err := p.repository.PlayerState(ctx, userID)
	if err != nil {
		return models.PlayerState{}, fmt.Errorf("load player state: %w", err)
	}
	return state, nil
}

// ApplyMutation validates and folds one replayed client mutation into the
// stored state. Applying the same mutation twice is harmless: the repository
// fold is best-state-wins, so the second apply cannot regress anything.
func (p *playerService) ApplyMutation(ctx context.Context, userID int64, payload models.MutationPayload) error {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, payload); err != nil {
		log.Warn().Err(err).Str("kind", payload.Kind).Msg("rejected invalid mutation")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := p.repository.ApplyMutation(ctx, userID, payload); err != nil {
		return fmt.Errorf("apply mutation: %w", err)
	}

	return nil
}
