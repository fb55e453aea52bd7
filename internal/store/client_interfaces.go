package store

import (
	"context"
	"time"

	"github.com/lumenplay/levelkeeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// PersistentStore is the durable key-value abstraction the sync engine runs
// on. Two implementations exist: a SQLite-backed store for normal operation
// and an in-memory store the constructor falls back to when durable storage
// cannot be opened (data loss on process exit is acceptable degradation,
// silent failure is not).
//
// Writers touch disjoint key ranges (content, progress, queue), so no
// cross-writer contention exists within a process; every implementation must
// still be safe for concurrent use.
type PersistentStore interface {
	// Manifest returns the cached manifest. The second result is false on
	// first run, before any manifest has been committed.
	Manifest(ctx context.Context) (models.Manifest, bool, error)
	// SaveManifest replaces the cached manifest wholesale.
	SaveManifest(ctx context.Context, m models.Manifest) error

	EntityMetas(ctx context.Context) ([]models.EntityMeta, error)
	// SaveEntityMetas replaces the cached descriptor list wholesale.
	SaveEntityMetas(ctx context.Context, metas []models.EntityMeta) error

	// EntityContent returns the cached payload for id; the second result
	// is false when the entity has never been fetched.
	EntityContent(ctx context.Context, id models.EntityID) (models.EntityContent, bool, error)
	// SaveEntityContent commits one entity's payload atomically. A write
	// carrying a version lower than the cached one is silently ignored so
	// that no writer can downgrade content.
	SaveEntityContent(ctx context.Context, content models.EntityContent) error
	// ContentCount returns the number of cached entity payloads.
	ContentCount(ctx context.Context) (int, error)

	Progress(ctx context.Context) ([]models.ProgressRecord, error)
	// SaveProgress replaces the cached progress snapshot wholesale.
	SaveProgress(ctx context.Context, records []models.ProgressRecord) error

	Subscription(ctx context.Context) (models.SubscriptionSnapshot, bool, error)
	SaveSubscription(ctx context.Context, sub models.SubscriptionSnapshot) error

	LastSyncTime(ctx context.Context) (time.Time, bool, error)
	SaveLastSyncTime(ctx context.Context, t time.Time) error

	// AppendQueueItem durably appends a mutation with the next sequence
	// number and returns the stored item. It must not return before the
	// item is persisted.
	AppendQueueItem(ctx context.Context, payload models.MutationPayload) (models.QueueItem, error)
	// QueueItems returns all pending items in ascending sequence order.
	QueueItems(ctx context.Context) ([]models.QueueItem, error)
	// DeleteQueueItem removes one replayed item by sequence number.
	DeleteQueueItem(ctx context.Context, seq int64) error
	QueueDepth(ctx context.Context) (int, error)

	// Clear removes every key atomically from the consumer's point of
	// view. Used by the logout path.
	Clear(ctx context.Context) error
}
