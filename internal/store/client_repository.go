package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/lumenplay/levelkeeper/internal/logger"
	"github.com/lumenplay/levelkeeper/models"
)

type sqlitePersistentStore struct {
	*DB
	logger *logger.Logger
}

// NewSQLitePersistentStore wraps an open, migrated client database in a
// [PersistentStore].
func NewSQLitePersistentStore(db *DB, logger *logger.Logger) PersistentStore {
	return &sqlitePersistentStore{
		DB:     db,
		logger: logger,
	}
}

func (s *sqlitePersistentStore) Manifest(ctx context.Context) (models.Manifest, bool, error) {
	var (
		m        models.Manifest
		versions []byte
	)

	row := s.DB.QueryRowContext(ctx, getManifest)
	err := row.Scan(&m.PublishedAt, &m.TotalEntities, &versions)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Manifest{}, false, nil
	}
	if err != nil {
		return models.Manifest{}, false, fmt.Errorf("%w: manifest: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal(versions, &m.EntityVersions); err != nil {
		return models.Manifest{}, false, fmt.Errorf("decode manifest entity versions: %w", err)
	}

	return m, true, nil
}

func (s *sqlitePersistentStore) SaveManifest(ctx context.Context, m models.Manifest) error {
	versions, err := json.Marshal(m.EntityVersions)
	if err != nil {
		return fmt.Errorf("encode manifest entity versions: %w", err)
	}

	if _, err = s.DB.ExecContext(ctx, upsertManifest, m.PublishedAt, m.TotalEntities, versions); err != nil {
		s.logger.Err(err).Str("func", "sqlitePersistentStore.SaveManifest").Msg("failed to upsert manifest")
		return fmt.Errorf("save manifest: %w", err)
	}

	return nil
}

func (s *sqlitePersistentStore) EntityMetas(ctx context.Context) ([]models.EntityMeta, error) {
	rows, err := s.DB.QueryContext(ctx, getEntityMetas)
	if err != nil {
		return nil, fmt.Errorf("%w: entity metas: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var metas []models.EntityMeta
	for rows.Next() {
		var m models.EntityMeta
		if err = rows.Scan(&m.EntityID, &m.Title, &m.Group, &m.Position); err != nil {
			return nil, fmt.Errorf("%w: entity meta: %w", ErrScanningRow, err)
		}
		metas = append(metas, m)
	}

	return metas, rows.Err()
}

func (s *sqlitePersistentStore) SaveEntityMetas(ctx context.Context, metas []models.EntityMeta) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteEntityMetas); err != nil {
		return fmt.Errorf("clear entity metas: %w", err)
	}

	if len(metas) > 0 {
		builder := sq.Insert("entity_metas").Columns("entity_id", "title", "grp", "position")
		for _, m := range metas {
			builder = builder.Values(m.EntityID, m.Title, m.Group, m.Position)
		}
		query, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
		if err != nil {
			return fmt.Errorf("%w: entity metas insert: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert entity metas: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (s *sqlitePersistentStore) EntityContent(ctx context.Context, id models.EntityID) (models.EntityContent, bool, error) {
	var (
		c       models.EntityContent
		payload []byte
	)

	row := s.DB.QueryRowContext(ctx, getEntityContent, id)
	err := row.Scan(&c.EntityID, &c.Version, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.EntityContent{}, false, nil
	}
	if err != nil {
		return models.EntityContent{}, false, fmt.Errorf("%w: entity content: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal(payload, &c.Payload); err != nil {
		return models.EntityContent{}, false, fmt.Errorf("decode entity payload %s: %w", id, err)
	}

	return c, true, nil
}

func (s *sqlitePersistentStore) SaveEntityContent(ctx context.Context, content models.EntityContent) error {
	payload, err := json.Marshal(content.Payload)
	if err != nil {
		return fmt.Errorf("encode entity payload %s: %w", content.EntityID, err)
	}

	// Single upsert statement keeps the write all-or-nothing for the
	// entity; the version guard in the DO UPDATE clause enforces the
	// no-downgrade invariant inside the store so every writer inherits it.
	query, args, err := sq.Insert("entity_contents").
		Columns("entity_id", "version", "payload").
		Values(content.EntityID, content.Version, payload).
		Suffix(`ON CONFLICT (entity_id) DO UPDATE SET
			version = excluded.version,
			payload = excluded.payload
		WHERE excluded.version >= entity_contents.version`).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: entity content upsert: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqlitePersistentStore.SaveEntityContent").
			Str("entity_id", string(content.EntityID)).
			Msg("failed to upsert entity content")
		return fmt.Errorf("save entity content %s: %w", content.EntityID, err)
	}

	return nil
}

func (s *sqlitePersistentStore) ContentCount(ctx context.Context) (int, error) {
	var count int
	if err := s.DB.QueryRowContext(ctx, countEntityContents).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: content count: %w", ErrExecutingQuery, err)
	}
	return count, nil
}

func (s *sqlitePersistentStore) Progress(ctx context.Context) ([]models.ProgressRecord, error) {
	rows, err := s.DB.QueryContext(ctx, getProgress)
	if err != nil {
		return nil, fmt.Errorf("%w: progress: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.ProgressRecord
	for rows.Next() {
		var (
			r       models.ProgressRecord
			subKeys []byte
		)
		if err = rows.Scan(&r.EntityID, &subKeys, &r.Completed); err != nil {
			return nil, fmt.Errorf("%w: progress: %w", ErrScanningRow, err)
		}
		if err = json.Unmarshal(subKeys, &r.SubKeys); err != nil {
			return nil, fmt.Errorf("decode progress sub keys %s: %w", r.EntityID, err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

func (s *sqlitePersistentStore) SaveProgress(ctx context.Context, records []models.ProgressRecord) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteProgress); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}

	for _, r := range records {
		subKeys, err := json.Marshal(r.SubKeys)
		if err != nil {
			return fmt.Errorf("encode progress sub keys %s: %w", r.EntityID, err)
		}
		if _, err = tx.ExecContext(ctx, insertProgress, r.EntityID, subKeys, r.Completed); err != nil {
			return fmt.Errorf("insert progress %s: %w", r.EntityID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (s *sqlitePersistentStore) Subscription(ctx context.Context) (models.SubscriptionSnapshot, bool, error) {
	var sub models.SubscriptionSnapshot

	row := s.DB.QueryRowContext(ctx, getSubscription)
	err := row.Scan(&sub.IsActive, &sub.ActiveUntil, &sub.PlanID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SubscriptionSnapshot{}, false, nil
	}
	if err != nil {
		return models.SubscriptionSnapshot{}, false, fmt.Errorf("%w: subscription: %w", ErrScanningRow, err)
	}

	return sub, true, nil
}

func (s *sqlitePersistentStore) SaveSubscription(ctx context.Context, sub models.SubscriptionSnapshot) error {
	if _, err := s.DB.ExecContext(ctx, upsertSubscription, sub.IsActive, sub.ActiveUntil, sub.PlanID); err != nil {
		return fmt.Errorf("save subscription: %w", err)
	}
	return nil
}

func (s *sqlitePersistentStore) LastSyncTime(ctx context.Context) (time.Time, bool, error) {
	var t time.Time

	row := s.DB.QueryRowContext(ctx, getLastSyncTime)
	err := row.Scan(&t)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: last sync time: %w", ErrScanningRow, err)
	}

	return t, true, nil
}

func (s *sqlitePersistentStore) SaveLastSyncTime(ctx context.Context, t time.Time) error {
	if _, err := s.DB.ExecContext(ctx, upsertLastSyncTime, t); err != nil {
		return fmt.Errorf("save last sync time: %w", err)
	}
	return nil
}

func (s *sqlitePersistentStore) AppendQueueItem(ctx context.Context, payload models.MutationPayload) (models.QueueItem, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return models.QueueItem{}, fmt.Errorf("encode mutation payload: %w", err)
	}

	item := models.QueueItem{
		Payload:    payload,
		EnqueuedAt: time.Now().UTC(),
	}
	row := s.DB.QueryRowContext(ctx, insertQueueItem, body, item.EnqueuedAt)
	if err = row.Scan(&item.Seq); err != nil {
		s.logger.Err(err).Str("func", "sqlitePersistentStore.AppendQueueItem").Msg("failed to append queue item")
		return models.QueueItem{}, fmt.Errorf("append queue item: %w", err)
	}

	return item, nil
}

func (s *sqlitePersistentStore) QueueItems(ctx context.Context) ([]models.QueueItem, error) {
	rows, err := s.DB.QueryContext(ctx, getQueueItems)
	if err != nil {
		return nil, fmt.Errorf("%w: queue items: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.QueueItem
	for rows.Next() {
		var (
			item models.QueueItem
			body []byte
		)
		if err = rows.Scan(&item.Seq, &body, &item.EnqueuedAt); err != nil {
			return nil, fmt.Errorf("%w: queue item: %w", ErrScanningRow, err)
		}
		if err = json.Unmarshal(body, &item.Payload); err != nil {
			return nil, fmt.Errorf("decode queue item %d: %w", item.Seq, err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (s *sqlitePersistentStore) DeleteQueueItem(ctx context.Context, seq int64) error {
	res, err := s.DB.ExecContext(ctx, deleteQueueItem, seq)
	if err != nil {
		return fmt.Errorf("delete queue item %d: %w", seq, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete queue item %d: %w", seq, err)
	}
	if affected == 0 {
		return ErrQueueItemNotFound
	}

	return nil
}

func (s *sqlitePersistentStore) QueueDepth(ctx context.Context) (int, error) {
	var count int
	if err := s.DB.QueryRowContext(ctx, countQueueItems).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: queue depth: %w", ErrExecutingQuery, err)
	}
	return count, nil
}

func (s *sqlitePersistentStore) Clear(ctx context.Context) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, table := range clearTables {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table+";"); err != nil {
			return fmt.Errorf("clear table %s: %w", table, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
