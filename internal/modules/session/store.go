// README: Session store backed by Redis hashes.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "session:%s"
	// Sessions that go quiet for a day are dropped.
	sessionTTL = 24 * time.Hour
)

var ErrNotFound = errors.New("session not found")

type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

// NewID allocates a fresh session identifier.
func NewID() string {
	return uuid.NewString()
}

// Touch records one message on the session, creating it on first use, and
// refreshes its expiry.
func (s *Store) Touch(ctx context.Context, id string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	key := sessionKey(id)

	pipe := s.redis.Pipeline()
	pipe.HSetNX(ctx, key, "created_at", now)
	pipe.HIncrBy(ctx, key, "message_count", 1)
	pipe.HSet(ctx, key, "last_activity", now)
	pipe.Expire(ctx, key, sessionTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Store) Get(ctx context.Context, id string) (Session, error) {
	vals, err := s.redis.HGetAll(ctx, sessionKey(id)).Result()
	if err != nil {
		return Session{}, err
	}
	if len(vals) == 0 {
		return Session{}, ErrNotFound
	}

	sess := Session{ID: id}
	if t, err := time.Parse(time.RFC3339, vals["created_at"]); err == nil {
		sess.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, vals["last_activity"]); err == nil {
		sess.LastActivity = t
	}
	if n, err := strconv.Atoi(vals["message_count"]); err == nil {
		sess.MessageCount = n
	}
	return sess, nil
}

func sessionKey(id string) string {
	return fmt.Sprintf(keyPrefix, id)
}
