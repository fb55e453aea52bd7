// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getManifest = `
		SELECT published_at, total_entities, entity_versions
		FROM manifest
		WHERE id = 1;`

	upsertManifest = `
		INSERT INTO manifest (id, published_at, total_entities, entity_versions)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			published_at = excluded.published_at,
			total_entities = excluded.total_entities,
			entity_versions = excluded.entity_versions;`

	getEntityMetas = `
		SELECT entity_id, title, grp, position
		FROM entity_metas
		ORDER BY position, entity_id;`

	deleteEntityMetas = `DELETE FROM entity_metas;`

	getEntityContent = `
		SELECT entity_id, version, payload
		FROM entity_contents
		WHERE entity_id = $1;`

	countEntityContents = `SELECT COUNT(*) FROM entity_contents;`

	getProgress = `
		SELECT entity_id, sub_keys, completed
		FROM progress
		ORDER BY entity_id;`

	deleteProgress = `DELETE FROM progress;`

	insertProgress = `
		INSERT INTO progress (entity_id, sub_keys, completed)
		VALUES ($1, $2, $3);`

	getSubscription = `
		SELECT is_active, active_until, plan_id
		FROM subscription
		WHERE id = 1;`

	upsertSubscription = `
		INSERT INTO subscription (id, is_active, active_until, plan_id)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			is_active = excluded.is_active,
			active_until = excluded.active_until,
			plan_id = excluded.plan_id;`

	getLastSyncTime = `
		SELECT last_sync_time
		FROM sync_meta
		WHERE id = 1;`

	upsertLastSyncTime = `
		INSERT INTO sync_meta (id, last_sync_time)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET
			last_sync_time = excluded.last_sync_time;`

	insertQueueItem = `
		INSERT INTO mutation_queue (payload, enqueued_at)
		VALUES ($1, $2)
		RETURNING seq;`

	getQueueItems = `
		SELECT seq, payload, enqueued_at
		FROM mutation_queue
		ORDER BY seq ASC;`

	deleteQueueItem = `DELETE FROM mutation_queue WHERE seq = $1;`

	countQueueItems = `SELECT COUNT(*) FROM mutation_queue;`
)

// clearTables lists every client-cache table removed by Clear, in one
// transaction so the wipe is atomic from the consumer's point of view.
var clearTables = []string{
	"manifest",
	"entity_metas",
	"entity_contents",
	"progress",
	"subscription",
	"sync_meta",
	"mutation_queue",
}
