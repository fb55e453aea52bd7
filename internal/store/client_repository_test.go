package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lumenplay/levelkeeper/internal/logger"
	"github.com/lumenplay/levelkeeper/models"
)

func newTestClientStore(t *testing.T) (PersistentStore, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	return NewSQLitePersistentStore(&DB{DB: db, logger: l}, l), mock, db
}

func TestClientStore_ManifestMissing(t *testing.T) {
	s, mock, db := newTestClientStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT published_at, total_entities, entity_versions").
		WillReturnRows(sqlmock.NewRows([]string{"published_at", "total_entities", "entity_versions"}))

	_, ok, err := s.Manifest(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected ok=false when no manifest row exists")
	}
}

func TestClientStore_ManifestRoundTrip(t *testing.T) {
	s, mock, db := newTestClientStore(t)
	defer db.Close()

	versions, _ := json.Marshal(map[models.EntityID]int64{"a": 2})

	mock.ExpectExec("INSERT INTO manifest").
		WithArgs(int64(1700000000000), 1, versions).
		WillReturnResult(sqlmock.NewResult(1, 1))

	m := models.Manifest{
		PublishedAt:    1700000000000,
		TotalEntities:  1,
		EntityVersions: map[models.EntityID]int64{"a": 2},
	}
	if err := s.SaveManifest(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectQuery("SELECT published_at, total_entities, entity_versions").
		WillReturnRows(sqlmock.
			NewRows([]string{"published_at", "total_entities", "entity_versions"}).
			AddRow(int64(1700000000000), 1, versions))

	got, ok, err := s.Manifest(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected manifest to be found")
	}
	if got.EntityVersions["a"] != 2 {
		t.Errorf("expected version 2 for entity a, got %d", got.EntityVersions["a"])
	}
}

func TestClientStore_SaveEntityMetas_ReplacesAll(t *testing.T) {
	s, mock, db := newTestClientStore(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM entity_metas").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO entity_metas").
		WithArgs("a", "Alpha", "g1", 1, "b", "Beta", "g1", 2).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	metas := []models.EntityMeta{
		{EntityID: "a", Title: "Alpha", Group: "g1", Position: 1},
		{EntityID: "b", Title: "Beta", Group: "g1", Position: 2},
	}
	if err := s.SaveEntityMetas(context.Background(), metas); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestClientStore_AppendQueueItem(t *testing.T) {
	s, mock, db := newTestClientStore(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO mutation_queue").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(int64(42)))

	item, err := s.AppendQueueItem(context.Background(), models.MutationPayload{
		ID:       "m1",
		Kind:     models.MutationEntityComplete,
		EntityID: "a",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Seq != 42 {
		t.Errorf("expected seq 42, got %d", item.Seq)
	}
}

func TestClientStore_DeleteQueueItem_NotFound(t *testing.T) {
	s, mock, db := newTestClientStore(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM mutation_queue").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.DeleteQueueItem(context.Background(), 7)
	if !errors.Is(err, ErrQueueItemNotFound) {
		t.Fatalf("expected ErrQueueItemNotFound, got %v", err)
	}
}

func TestClientStore_LastSyncTime(t *testing.T) {
	s, mock, db := newTestClientStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT last_sync_time").
		WillReturnRows(sqlmock.NewRows([]string{"last_sync_time"}))

	_, ok, err := s.LastSyncTime(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected ok=false before first sync")
	}

	now := time.Now().UTC()
	mock.ExpectExec("INSERT INTO sync_meta").
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := s.SaveLastSyncTime(context.Background(), now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientStore_Clear(t *testing.T) {
	s, mock, db := newTestClientStore(t)
	defer db.Close()

	mock.ExpectBegin()
	for range clearTables {
		mock.ExpectExec("DELETE FROM").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectCommit()

	if err := s.Clear(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
