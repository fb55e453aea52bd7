package store

import (
	"context"
	"sync"
	"time"

	"github.com/lumenplay/levelkeeper/models"
)

// memoryPersistentStore is the non-durable fallback implementation of
// [PersistentStore]. It keeps every key range in process memory; data is
// lost on exit, which is the accepted degradation when durable storage
// cannot be opened.
type memoryPersistentStore struct {
	mu sync.RWMutex

	manifest     models.Manifest
	haveManifest bool

	metas []models.EntityMeta

	contents map[models.EntityID]models.EntityContent

	progress []models.ProgressRecord

	subscription     models.SubscriptionSnapshot
	haveSubscription bool

	lastSync     time.Time
	haveLastSync bool

	nextSeq int64
	queue   []models.QueueItem
}

// NewMemoryPersistentStore constructs an empty in-memory [PersistentStore].
func NewMemoryPersistentStore() PersistentStore {
	return &memoryPersistentStore{
		contents: make(map[models.EntityID]models.EntityContent),
		nextSeq:  1,
	}
}

func (s *memoryPersistentStore) Manifest(_ context.Context) (models.Manifest, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.manifest, s.haveManifest, nil
}

func (s *memoryPersistentStore) SaveManifest(_ context.Context, m models.Manifest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manifest = m
	s.haveManifest = true
	return nil
}

func (s *memoryPersistentStore) EntityMetas(_ context.Context) ([]models.EntityMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.EntityMeta, len(s.metas))
	copy(out, s.metas)
	return out, nil
}

func (s *memoryPersistentStore) SaveEntityMetas(_ context.Context, metas []models.EntityMeta) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metas = make([]models.EntityMeta, len(metas))
	copy(s.metas, metas)
	return nil
}

func (s *memoryPersistentStore) EntityContent(_ context.Context, id models.EntityID) (models.EntityContent, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.contents[id]
	return c, ok, nil
}

func (s *memoryPersistentStore) SaveEntityContent(_ context.Context, content models.EntityContent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// No-downgrade guard, same rule the SQLite upsert enforces.
	if existing, ok := s.contents[content.EntityID]; ok && existing.Version > content.Version {
		return nil
	}
	s.contents[content.EntityID] = content
	return nil
}

func (s *memoryPersistentStore) ContentCount(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contents), nil
}

func (s *memoryPersistentStore) Progress(_ context.Context) ([]models.ProgressRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ProgressRecord, len(s.progress))
	copy(out, s.progress)
	return out, nil
}

func (s *memoryPersistentStore) SaveProgress(_ context.Context, records []models.ProgressRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = make([]models.ProgressRecord, len(records))
	copy(s.progress, records)
	return nil
}

func (s *memoryPersistentStore) Subscription(_ context.Context) (models.SubscriptionSnapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subscription, s.haveSubscription, nil
}

func (s *memoryPersistentStore) SaveSubscription(_ context.Context, sub models.SubscriptionSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscription = sub
	s.haveSubscription = true
	return nil
}

func (s *memoryPersistentStore) LastSyncTime(_ context.Context) (time.Time, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSync, s.haveLastSync, nil
}

func (s *memoryPersistentStore) SaveLastSyncTime(_ context.Context, t time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSync = t
	s.haveLastSync = true
	return nil
}

func (s *memoryPersistentStore) AppendQueueItem(_ context.Context, payload models.MutationPayload) (models.QueueItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.QueueItem{
		Seq:        s.nextSeq,
		Payload:    payload,
		EnqueuedAt: time.Now().UTC(),
	}
	s.nextSeq++
	s.queue = append(s.queue, item)
	return item, nil
}

func (s *memoryPersistentStore) QueueItems(_ context.Context) ([]models.QueueItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.QueueItem, len(s.queue))
	copy(out, s.queue)
	return out, nil
}

func (s *memoryPersistentStore) DeleteQueueItem(_ context.Context, seq int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.queue {
		if item.Seq == seq {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return nil
		}
	}
	return ErrQueueItemNotFound
}

func (s *memoryPersistentStore) QueueDepth(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.queue), nil
}

func (s *memoryPersistentStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.manifest = models.Manifest{}
	s.haveManifest = false
	s.metas = nil
	s.contents = make(map[models.EntityID]models.EntityContent)
	s.progress = nil
	s.subscription = models.SubscriptionSnapshot{}
	s.haveSubscription = false
	s.lastSync = time.Time{}
	s.haveLastSync = false
	s.queue = nil
	s.nextSeq = 1
	return nil
}
