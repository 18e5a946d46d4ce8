package selection

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	c := &clock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	repo := newMemoryRepository(time.Hour, c.now)

	_, err := repo.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Set(ctx, 1, "jdoe"))
	s, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", s.Username)

	require.NoError(t, repo.Set(ctx, 1, "other"))
	s, err = repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "other", s.Username)

	_, err = repo.Get(ctx, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepositoryExpiry(t *testing.T) {
	ctx := context.Background()
	c := &clock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	repo := newMemoryRepository(time.Hour, c.now)

	require.NoError(t, repo.Set(ctx, 1, "old"))
	c.t = c.t.Add(30 * time.Minute)
	require.NoError(t, repo.Set(ctx, 2, "fresh"))

	c.t = c.t.Add(45 * time.Minute)
	_, err := repo.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	removed, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	s, err := repo.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "fresh", s.Username)
}

func TestMemoryRepositoryWithoutTTL(t *testing.T) {
	ctx := context.Background()
	c := &clock{t: time.Now()}
	repo := newMemoryRepository(0, c.now)

	require.NoError(t, repo.Set(ctx, 1, "jdoe"))
	c.t = c.t.Add(1000 * time.Hour)

	_, err := repo.Get(ctx, 1)
	assert.NoError(t, err)
}

func TestQueries(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := getQuery(7, at)
	require.NoError(t, err)
	assert.Equal(t, "SELECT user_id, username, updated_at FROM selections WHERE (user_id = $1 AND updated_at >= $2)", query)
	assert.Equal(t, []interface{}{int64(7), at}, args)

	query, args, err = upsertQuery(7, "jdoe", at)
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO selections (user_id,username,updated_at) VALUES ($1,$2,$3) "+
			"ON CONFLICT (user_id) DO UPDATE SET username = EXCLUDED.username, updated_at = EXCLUDED.updated_at",
		query)
	assert.Equal(t, []interface{}{int64(7), "jdoe", at}, args)
}
