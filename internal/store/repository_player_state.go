// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lumenplay/levelkeeper/internal/logger"
	"github.com/lumenplay/levelkeeper/models"
)

// playerStateRepository is the PostgreSQL-backed implementation of
// [PlayerStateRepository]. Progress lives in two tables: per-sub-key best
// results in "player_sub_keys" and per-entity completion flags in
// "player_entities"; subscriptions in "player_subscriptions".
type playerStateRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPlayerStateRepository constructs a [PlayerStateRepository] backed by the
// provided database connection and logger.
func NewPlayerStateRepository(db *DB, logger *logger.Logger) PlayerStateRepository {
	logger.Debug().Msg("creating player state repository")
	return &playerStateRepository{
		db:     db,
		logger: logger,
	}
}

// PlayerState assembles the authoritative progress and subscription snapshot
// for one user. Users with no recorded rows get an empty progress list and
// an inactive subscription.
func (r *playerStateRepository) PlayerState(ctx context.Context, userID int64) (models.PlayerState, error) {
	log := logger.FromContext(ctx)

	records, err := r.playerProgress(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*playerStateRepository.PlayerState").Msg("error reading player progress")
		return models.PlayerState{}, err
	}

	subscription, err := r.playerSubscription(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*playerStateRepository.PlayerState").Msg("error reading player subscription")
		return models.PlayerState{}, err
	}

	return models.PlayerState{
		Progress:     records,
		Subscription: subscription,
	}, nil
}

func (r *playerStateRepository) playerProgress(ctx context.Context, userID int64) ([]models.ProgressRecord, error) {
	rows, err := r.db.QueryContext(ctx, selectPlayerSubKeys, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	// player_sub_keys is ordered by (entity_id, sub_key), so consecutive rows
	// of one entity can be folded into a single record.
	byEntity := make(map[models.EntityID]*models.ProgressRecord)
	var order []models.EntityID
	for rows.Next() {
		var (
			entityID models.EntityID
			sk       models.SubKeyProgress
		)
		if err := rows.Scan(&entityID, &sk.SubKey, &sk.HighScore, &sk.Passed, &sk.Attempts); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		record, ok := byEntity[entityID]
		if !ok {
			record = &models.ProgressRecord{EntityID: entityID}
			byEntity[entityID] = record
			order = append(order, entityID)
		}
		record.SubKeys = append(record.SubKeys, sk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := r.applyCompletionFlags(ctx, userID, byEntity, &order); err != nil {
		return nil, err
	}

	records := make([]models.ProgressRecord, 0, len(order))
	for _, id := range order {
		records = append(records, *byEntity[id])
	}
	return records, nil
}

func (r *playerStateRepository) applyCompletionFlags(ctx context.Context, userID int64, byEntity map[models.EntityID]*models.ProgressRecord, order *[]models.EntityID) error {
	rows, err := r.db.QueryContext(ctx, selectPlayerEntities, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entityID  models.EntityID
			completed bool
		)
		if err := rows.Scan(&entityID, &completed); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		record, ok := byEntity[entityID]
		if !ok {
			// Entity completed without recorded sub-key results.
			record = &models.ProgressRecord{EntityID: entityID}
			byEntity[entityID] = record
			*order = append(*order, entityID)
		}
		record.Completed = completed
	}
	return rows.Err()
}

func (r *playerStateRepository) playerSubscription(ctx context.Context, userID int64) (models.SubscriptionSnapshot, error) {
	var sub models.SubscriptionSnapshot

	row := r.db.QueryRowContext(ctx, selectPlayerSubscription, userID)
	if err := row.Scan(&sub.IsActive, &sub.ActiveUntil, &sub.PlanID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SubscriptionSnapshot{}, nil
		}
		return models.SubscriptionSnapshot{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return sub, nil
}

// ApplyMutation folds one replayed client mutation into the stored state.
// Sub-key results upsert under best-state-wins rules; completion marks are
// sticky. Each mutation ID is recorded and applies at most once, so a client
// that lost the ack and replays the same item gets an acknowledgement
// without double-counting attempts. Unknown kinds are rejected so a
// malformed item is never silently acknowledged.
func (r *playerStateRepository) ApplyMutation(ctx context.Context, userID int64, payload models.MutationPayload) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*playerStateRepository.ApplyMutation").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, recordAppliedMutation, userID, payload.ID)
	if err != nil {
		log.Err(err).Str("func", "*playerStateRepository.ApplyMutation").Msg("error recording mutation id")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		log.Debug().Str("mutation_id", payload.ID).Msg("mutation already applied, acknowledging replay")
		return nil
	}

	switch payload.Kind {
	case models.MutationSubKeyResult:
		if _, err := tx.ExecContext(ctx, upsertPlayerSubKey, userID, payload.EntityID, payload.SubKey, payload.HighScore, payload.Passed); err != nil {
			log.Err(err).Str("func", "*playerStateRepository.ApplyMutation").Msg("error upserting sub-key result")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if _, err := tx.ExecContext(ctx, ensurePlayerEntity, userID, payload.EntityID); err != nil {
			log.Err(err).Str("func", "*playerStateRepository.ApplyMutation").Msg("error ensuring entity row")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

	case models.MutationEntityComplete:
		if _, err := tx.ExecContext(ctx, markPlayerEntityComplete, userID, payload.EntityID); err != nil {
			log.Err(err).Str("func", "*playerStateRepository.ApplyMutation").Msg("error marking entity complete")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

	default:
		return errUnknownMutationKind(payload.Kind)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*playerStateRepository.ApplyMutation").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
