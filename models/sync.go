package models

import "time"

// SyncStatus is a read-only snapshot of the engine's current state for
// observers. Producing it has no side effects; it is safe to poll at any
// frequency.
type SyncStatus struct {
	LastSyncTime      time.Time `json:"last_sync_time"`
	CachedEntityCount int       `json:"cached_entity_count"`
	QueueDepth        int       `json:"queue_depth"`
	IsSyncing         bool      `json:"is_syncing"`
}

// PlayerState is the result of the combined remote progress/subscription
// query.
type PlayerState struct {
	Progress     []ProgressRecord     `json:"progress"`
	Subscription SubscriptionSnapshot `json:"subscription"`
}
