package models

import "time"

// Mutation kinds accepted by the remote service.
const (
	MutationSubKeyResult   = "sub_key_result"
	MutationEntityComplete = "entity_complete"
)

// MutationPayload describes one progress mutation recorded while the remote
// service was unreachable. The payload carries everything the server needs
// to apply it independently of client state.
type MutationPayload struct {
	// ID is a client-generated UUID that lets the server deduplicate a
	// replay that was accepted but whose acknowledgement was lost.
	ID string `json:"id"`

	// Kind is one of the Mutation* constants.
	Kind string `json:"kind"`

	EntityID  EntityID `json:"entity_id"`
	SubKey    string   `json:"sub_key,omitempty"`
	HighScore int      `json:"high_score,omitempty"`
	Passed    bool     `json:"passed,omitempty"`
}

// QueueItem is one entry of the offline mutation queue. Items are appended
// with a strictly increasing sequence number and removed only after the
// remote service confirms acceptance; drain order is strictly FIFO by Seq.
type QueueItem struct {
	Seq        int64           `json:"seq"`
	Payload    MutationPayload `json:"payload"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
}
