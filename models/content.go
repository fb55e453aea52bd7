package models

import "encoding/json"

// EntityContent is one entity's cached payload together with the content
// version it was fetched at. A record is written only when a fetch for the
// id succeeds with a version not lower than the locally stored one, and the
// write is all-or-nothing for the entity.
type EntityContent struct {
	EntityID EntityID `json:"entity_id"`
	Version  int64    `json:"version"`

	// Payload holds the entity's content keyed by sub-key (e.g. one
	// question set per difficulty). The engine never inspects the values.
	Payload map[string]json.RawMessage `json:"payload"`
}
