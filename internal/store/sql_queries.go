package store

const (
	createUser = `INSERT INTO users (login, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, login, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, created_at
    FROM users
    WHERE login = $1;`

	selectPlayerSubKeys = `SELECT entity_id, sub_key, high_score, passed, attempts
		FROM player_sub_keys
		WHERE user_id = $1
		ORDER BY entity_id, sub_key;`

	selectPlayerEntities = `SELECT entity_id, completed
		FROM player_entities
		WHERE user_id = $1;`

	selectPlayerSubscription = `SELECT is_active, active_until, plan_id
		FROM player_subscriptions
		WHERE user_id = $1;`

	// Best-state-wins fold of one replayed sub-key result: passed is sticky,
	// the high score only rises, attempts accumulate.
	upsertPlayerSubKey = `INSERT INTO player_sub_keys (user_id, entity_id, sub_key, high_score, passed, attempts)
		VALUES ($1, $2, $3, $4, $5, 1)
		ON CONFLICT (user_id, entity_id, sub_key) DO UPDATE SET
			high_score = GREATEST(player_sub_keys.high_score, excluded.high_score),
			passed = player_sub_keys.passed OR excluded.passed,
			attempts = player_sub_keys.attempts + 1;`

	ensurePlayerEntity = `INSERT INTO player_entities (user_id, entity_id, completed)
		VALUES ($1, $2, FALSE)
		ON CONFLICT (user_id, entity_id) DO NOTHING;`

	// Completion never reverts once recorded.
	markPlayerEntityComplete = `INSERT INTO player_entities (user_id, entity_id, completed)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (user_id, entity_id) DO UPDATE SET
			completed = TRUE;`

	// Zero rows affected means the mutation was already applied; the caller
	// acknowledges without touching state so re-replays stay idempotent.
	recordAppliedMutation = `INSERT INTO applied_mutations (user_id, mutation_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, mutation_id) DO NOTHING;`
)
