package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/dom/gameshelf/internal/domain"
	"github.com/dom/gameshelf/internal/repository/redis"
	"github.com/dom/gameshelf/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository(t *testing.T) {
	client := testutil.NewTestRedis(t)
	repo := redis.NewSessionRepository(client)
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		sess := &domain.UserSession{ID: uuid.New(), UserID: 1, ExpiresAt: time.Now().Add(time.Hour)}
		require.NoError(t, repo.Create(ctx, sess))

		got, err := repo.GetByID(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, sess.ID, got.ID)
		assert.Equal(t, uint(1), got.UserID)
		assert.WithinDuration(t, sess.ExpiresAt, got.ExpiresAt, time.Millisecond)

		ttl, err := client.TTL(ctx, "session:"+sess.ID.String()).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, 59*time.Minute)
	})

	t.Run("missing session", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("already expired is rejected", func(t *testing.T) {
		sess := &domain.UserSession{ID: uuid.New(), UserID: 1, ExpiresAt: time.Now().Add(-time.Second)}
		assert.Error(t, repo.Create(ctx, sess))
	})

	t.Run("delete", func(t *testing.T) {
		sess := &domain.UserSession{ID: uuid.New(), UserID: 2}
		require.NoError(t, repo.Create(ctx, sess))

		require.NoError(t, repo.Delete(ctx, sess.ID))
		_, err := repo.GetByID(ctx, sess.ID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)

		assert.NoError(t, repo.Delete(ctx, sess.ID))
	})

	t.Run("delete by user", func(t *testing.T) {
		a := &domain.UserSession{ID: uuid.New(), UserID: 3}
		b := &domain.UserSession{ID: uuid.New(), UserID: 3}
		other := &domain.UserSession{ID: uuid.New(), UserID: 4}
		for _, s := range []*domain.UserSession{a, b, other} {
			require.NoError(t, repo.Create(ctx, s))
		}

		require.NoError(t, repo.DeleteByUserID(ctx, 3))

		for _, id := range []uuid.UUID{a.ID, b.ID} {
			_, err := repo.GetByID(ctx, id)
			assert.ErrorIs(t, err, domain.ErrSessionNotFound)
		}
		_, err := repo.GetByID(ctx, other.ID)
		assert.NoError(t, err)
	})

	t.Run("expiry is left to redis", func(t *testing.T) {
		n, err := repo.DeleteExpired(ctx, time.Now())
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestSessionRepository_UserIndexExpiry(t *testing.T) {
	client := testutil.NewTestRedis(t)
	repo := redis.NewSessionRepository(client)
	ctx := context.Background()

	indexTTL := func(t *testing.T, userID string) time.Duration {
		t.Helper()
		ttl, err := client.TTL(ctx, "user_sessions:"+userID).Result()
		require.NoError(t, err)
		return ttl
	}

	create := func(t *testing.T, userID uint, ttl time.Duration) {
		t.Helper()
		sess := &domain.UserSession{ID: uuid.New(), UserID: userID}
		if ttl > 0 {
			sess.ExpiresAt = time.Now().Add(ttl)
		}
		require.NoError(t, repo.Create(ctx, sess))
	}

	t.Run("index expires with its session", func(t *testing.T) {
		create(t, 10, time.Hour)

		ttl := indexTTL(t, "10")
		assert.Greater(t, ttl, 59*time.Minute)
		assert.LessOrEqual(t, ttl, time.Hour)
	})

	t.Run("longer session extends the index", func(t *testing.T) {
		create(t, 11, time.Hour)
		create(t, 11, 3*time.Hour)

		assert.Greater(t, indexTTL(t, "11"), 2*time.Hour)
	})

	t.Run("shorter session does not shrink the index", func(t *testing.T) {
		create(t, 12, 3*time.Hour)
		create(t, 12, time.Minute)

		assert.Greater(t, indexTTL(t, "12"), 2*time.Hour)
	})

	t.Run("session without TTL keeps the index", func(t *testing.T) {
		create(t, 13, time.Hour)
		create(t, 13, 0)

		assert.Equal(t, time.Duration(-1), indexTTL(t, "13"))
	})
}
