// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lumenplay/levelkeeper/internal/logger"
	"github.com/lumenplay/levelkeeper/models"
)

func newTestPlayerStateRepo(t *testing.T) (*playerStateRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &playerStateRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestApplyMutation_SubKeyResult(t *testing.T) {
	repo, mock, db := newTestPlayerStateRepo(t)
	defer db.Close()

	payload := models.MutationPayload{
		ID:        "m1",
		Kind:      models.MutationSubKeyResult,
		EntityID:  "a",
		SubKey:    "easy",
		HighScore: 70,
		Passed:    true,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO applied_mutations").
		WithArgs(int64(1), payload.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO player_sub_keys").
		WithArgs(int64(1), payload.EntityID, payload.SubKey, payload.HighScore, payload.Passed).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO player_entities").
		WithArgs(int64(1), payload.EntityID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.ApplyMutation(context.Background(), 1, payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// A replayed mutation ID conflicts in applied_mutations; the apply must stop
// there and acknowledge without touching the progress tables.
func TestApplyMutation_ReplayedIDIsAcknowledgedWithoutApply(t *testing.T) {
	repo, mock, db := newTestPlayerStateRepo(t)
	defer db.Close()

	payload := models.MutationPayload{
		ID:       "m1",
		Kind:     models.MutationSubKeyResult,
		EntityID: "a",
		SubKey:   "easy",
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO applied_mutations").
		WithArgs(int64(1), payload.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	if err := repo.ApplyMutation(context.Background(), 1, payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestApplyMutation_UnknownKindRejected(t *testing.T) {
	repo, mock, db := newTestPlayerStateRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO applied_mutations").
		WithArgs(int64(1), "m1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := repo.ApplyMutation(context.Background(), 1, models.MutationPayload{
		ID:       "m1",
		Kind:     "teleport",
		EntityID: "a",
	})
	if err == nil {
		t.Fatal("expected an unknown-kind error")
	}
}
