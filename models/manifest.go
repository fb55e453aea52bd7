package models

// EntityID identifies one unit of syncable content (for example a single
// level's question set). IDs are stable across manifest versions.
type EntityID string

// Manifest is the remote source-of-truth mapping of entity id → content
// version. It is immutable once fetched and replaced wholesale on every
// successful manifest fetch; the client never mutates an existing manifest.
type Manifest struct {
	// PublishedAt is the server-side publish timestamp in Unix
	// milliseconds. Entity metadata is re-fetched whenever this value
	// advances, independent of per-entity version bumps.
	PublishedAt int64 `json:"published_at"`

	// TotalEntities is the number of entries in EntityVersions. Provided
	// by the server so the client can validate the document without
	// iterating the map.
	TotalEntities int `json:"total_entities"`

	// EntityVersions maps each entity id to its current content version.
	// Versions are monotonically non-decreasing on the server side; the
	// client tolerates a violation by simply not marking the id stale.
	EntityVersions map[EntityID]int64 `json:"entity_versions"`
}

// EntityMeta is a lightweight descriptor of a content entity, cached
// separately from payloads so listing and browsing work without pulling
// every payload.
type EntityMeta struct {
	EntityID EntityID `json:"entity_id"`
	Title    string   `json:"title"`
	Group    string   `json:"group"`
	Position int      `json:"position"`
}
