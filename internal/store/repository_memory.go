package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/lumenplay/levelkeeper/models"
)

func errUnknownMutationKind(kind string) error {
	return fmt.Errorf("unknown mutation kind %q", kind)
}

func sortSubKeys(subKeys []models.SubKeyProgress) {
	sort.Slice(subKeys, func(i, j int) bool {
		return subKeys[i].SubKey < subKeys[j].SubKey
	})
}

func sortProgressRecords(records []models.ProgressRecord) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].EntityID < records[j].EntityID
	})
}

// memoryUserRepository is the map-backed [UserRepository] used when no
// database DSN is configured. It mirrors the PostgreSQL repository's
// sentinel-error contract so handlers behave identically.
type memoryUserRepository struct {
	mu      sync.Mutex
	nextID  int64
	byLogin map[string]models.User
}

// NewMemoryUserRepository constructs an empty in-memory [UserRepository].
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		nextID:  1,
		byLogin: make(map[string]models.User),
	}
}

func (r *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byLogin[user.Login]; exists {
		return models.User{}, ErrLoginAlreadyExists
	}

	user.UserID = r.nextID
	user.CreatedAt = time.Now().UTC()
	r.nextID++
	r.byLogin[user.Login] = user

	return user, nil
}

func (r *memoryUserRepository) FindUserByLogin(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	found, exists := r.byLogin[user.Login]
	if !exists {
		return models.User{}, ErrNoUserWasFound
	}
	return found, nil
}

// memoryPlayerStateRepository is the map-backed [PlayerStateRepository]. It
// applies the same best-state-wins fold the SQL implementation encodes in
// its upsert clauses.
type memoryPlayerStateRepository struct {
	mu     sync.Mutex
	states map[int64]*playerStateEntry
}

type playerStateEntry struct {
	subKeys      map[models.EntityID]map[string]models.SubKeyProgress
	completed    map[models.EntityID]bool
	applied      map[string]struct{}
	subscription models.SubscriptionSnapshot
}

// NewMemoryPlayerStateRepository constructs an empty in-memory
// [PlayerStateRepository].
func NewMemoryPlayerStateRepository() PlayerStateRepository {
	return &memoryPlayerStateRepository{
		states: make(map[int64]*playerStateEntry),
	}
}

func (r *memoryPlayerStateRepository) entry(userID int64) *playerStateEntry {
	entry, ok := r.states[userID]
	if !ok {
		entry = &playerStateEntry{
			subKeys:   make(map[models.EntityID]map[string]models.SubKeyProgress),
			completed: make(map[models.EntityID]bool),
			applied:   make(map[string]struct{}),
		}
		r.states[userID] = entry
	}
	return entry
}

func (r *memoryPlayerStateRepository) PlayerState(_ context.Context, userID int64) (models.PlayerState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.states[userID]
	if !ok {
		return models.PlayerState{}, nil
	}

	ids := make(map[models.EntityID]struct{}, len(entry.subKeys))
	for id := range entry.subKeys {
		ids[id] = struct{}{}
	}
	for id := range entry.completed {
		ids[id] = struct{}{}
	}

	records := make([]models.ProgressRecord, 0, len(ids))
	for id := range ids {
		record := models.ProgressRecord{
			EntityID:  id,
			Completed: entry.completed[id],
		}
		for _, sk := range entry.subKeys[id] {
			record.SubKeys = append(record.SubKeys, sk)
		}
		sortSubKeys(record.SubKeys)
		records = append(records, record)
	}
	sortProgressRecords(records)

	return models.PlayerState{
		Progress:     records,
		Subscription: entry.subscription,
	}, nil
}

func (r *memoryPlayerStateRepository) ApplyMutation(_ context.Context, userID int64, payload models.MutationPayload) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := r.entry(userID)

	// a replayed ID was already applied; acknowledge without re-counting
	if _, seen := entry.applied[payload.ID]; seen {
		return nil
	}

	switch payload.Kind {
	case models.MutationSubKeyResult:
		keys, ok := entry.subKeys[payload.EntityID]
		if !ok {
			keys = make(map[string]models.SubKeyProgress)
			entry.subKeys[payload.EntityID] = keys
		}

		incoming := models.SubKeyProgress{
			SubKey:    payload.SubKey,
			HighScore: payload.HighScore,
			Passed:    payload.Passed,
		}
		current, exists := keys[payload.SubKey]
		if !exists {
			incoming.Attempts = 1
			keys[payload.SubKey] = incoming
		} else {
			current.Attempts++
			current.Passed = current.Passed || incoming.Passed
			if incoming.HighScore > current.HighScore {
				current.HighScore = incoming.HighScore
			}
			keys[payload.SubKey] = current
		}

		if _, ok := entry.completed[payload.EntityID]; !ok {
			entry.completed[payload.EntityID] = false
		}

	case models.MutationEntityComplete:
		entry.completed[payload.EntityID] = true

	default:
		return errUnknownMutationKind(payload.Kind)
	}

	entry.applied[payload.ID] = struct{}{}
	return nil
}
