// Package redis stores login sessions in Redis, using key expiry in place of
// the sweeper that the Postgres store needs.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dom/gameshelf/internal/domain"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix      = "session:"
	userSessionsKeyPrefix = "user_sessions:"
)

type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewClient connects to Redis and verifies the connection with PING.
func NewClient(ctx context.Context, opts Options) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

type sessionRepository struct {
	client *goredis.Client
	now    func() time.Time
}

func NewSessionRepository(client *goredis.Client) *sessionRepository {
	return &sessionRepository{client: client, now: time.Now}
}

func sessionKey(id uuid.UUID) string {
	return sessionKeyPrefix + id.String()
}

func userSessionsKey(userID uint) string {
	return fmt.Sprintf("%s%d", userSessionsKeyPrefix, userID)
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.UserSession) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = r.now()
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	var ttl time.Duration
	if !session.ExpiresAt.IsZero() {
		ttl = session.ExpiresAt.Sub(r.now())
		if ttl <= 0 {
			return fmt.Errorf("session %s already expired", session.ID)
		}
	}

	_, err = r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		index := userSessionsKey(session.UserID)
		pipe.Set(ctx, sessionKey(session.ID), payload, ttl)
		pipe.SAdd(ctx, index, session.ID.String())
		// The index lives as long as its longest-lived member.
		if ttl > 0 {
			pipe.ExpireNX(ctx, index, ttl)
			pipe.ExpireGT(ctx, index, ttl)
		} else {
			pipe.Persist(ctx, index)
		}
		return nil
	})
	return err
}

func (r *sessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.UserSession, error) {
	payload, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	var session domain.UserSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	session, err := r.GetByID(ctx, id)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, sessionKey(id))
		pipe.SRem(ctx, userSessionsKey(session.UserID), id.String())
		return nil
	})
	return err
}

func (r *sessionRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	ids, err := r.client.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionKeyPrefix+id)
	}
	keys = append(keys, userSessionsKey(userID))

	return r.client.Del(ctx, keys...).Err()
}

// DeleteExpired is a no-op: Redis drops expired session keys itself, and each
// per-user index expires with its longest-lived session.
func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}
