package store

import (
	"context"
	"testing"

	"github.com/lumenplay/levelkeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPlayerState_BestStateWins(t *testing.T) {
	repo := NewMemoryPlayerStateRepository()
	ctx := context.Background()

	apply := func(id string, score int, passed bool) {
		err := repo.ApplyMutation(ctx, 1, models.MutationPayload{
			ID:        id,
			Kind:      models.MutationSubKeyResult,
			EntityID:  "a",
			SubKey:    "easy",
			HighScore: score,
			Passed:    passed,
		})
		require.NoError(t, err)
	}

	apply("m1", 100, false)
	apply("m2", 80, true)  // lower score but a pass: passed sticks, score keeps 100
	apply("m3", 60, false) // worse on both axes: only attempts grow

	state, err := repo.PlayerState(ctx, 1)
	require.NoError(t, err)
	require.Len(t, state.Progress, 1)

	sk, ok := state.Progress[0].SubKey("easy")
	require.True(t, ok)
	assert.Equal(t, 100, sk.HighScore)
	assert.True(t, sk.Passed)
	assert.Equal(t, 3, sk.Attempts)
	assert.False(t, state.Progress[0].Completed)
}

// A drain that lost the server's ack replays the same mutation ID; the
// second apply must acknowledge without counting another attempt.
func TestMemoryPlayerState_ReplayedMutationAppliesOnce(t *testing.T) {
	repo := NewMemoryPlayerStateRepository()
	ctx := context.Background()

	payload := models.MutationPayload{
		ID:        "m1",
		Kind:      models.MutationSubKeyResult,
		EntityID:  "a",
		SubKey:    "easy",
		HighScore: 40,
	}
	require.NoError(t, repo.ApplyMutation(ctx, 1, payload))
	require.NoError(t, repo.ApplyMutation(ctx, 1, payload))

	state, err := repo.PlayerState(ctx, 1)
	require.NoError(t, err)
	require.Len(t, state.Progress, 1)

	sk, ok := state.Progress[0].SubKey("easy")
	require.True(t, ok)
	assert.Equal(t, 1, sk.Attempts)
}

func TestMemoryPlayerState_CompletionSticks(t *testing.T) {
	repo := NewMemoryPlayerStateRepository()
	ctx := context.Background()

	err := repo.ApplyMutation(ctx, 1, models.MutationPayload{
		ID:       "m1",
		Kind:     models.MutationEntityComplete,
		EntityID: "a",
	})
	require.NoError(t, err)

	// a later sub-key result must not reset completion
	err = repo.ApplyMutation(ctx, 1, models.MutationPayload{
		ID:       "m2",
		Kind:     models.MutationSubKeyResult,
		EntityID: "a",
		SubKey:   "easy",
	})
	require.NoError(t, err)

	state, err := repo.PlayerState(ctx, 1)
	require.NoError(t, err)
	require.Len(t, state.Progress, 1)
	assert.True(t, state.Progress[0].Completed)
}

func TestMemoryPlayerState_UnknownKindRejected(t *testing.T) {
	repo := NewMemoryPlayerStateRepository()

	err := repo.ApplyMutation(context.Background(), 1, models.MutationPayload{
		ID:       "m1",
		Kind:     "teleport",
		EntityID: "a",
	})
	assert.Error(t, err)
}

func TestMemoryPlayerState_UsersAreIsolated(t *testing.T) {
	repo := NewMemoryPlayerStateRepository()
	ctx := context.Background()

	err := repo.ApplyMutation(ctx, 1, models.MutationPayload{
		ID:       "m1",
		Kind:     models.MutationEntityComplete,
		EntityID: "a",
	})
	require.NoError(t, err)

	state, err := repo.PlayerState(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, state.Progress)
}

func TestMemoryUserRepository(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, models.User{Login: "john", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)

	_, err = repo.CreateUser(ctx, models.User{Login: "john"})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)

	found, err := repo.FindUserByLogin(ctx, models.User{Login: "john"})
	require.NoError(t, err)
	assert.Equal(t, created.UserID, found.UserID)

	_, err = repo.FindUserByLogin(ctx, models.User{Login: "ghost"})
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}
