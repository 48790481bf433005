package helpers

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Session is the server-held proof of authentication correlated with a client
// via the session cookie. A session is only valid while its record exists.
type Session struct {
	ID     string
	UserID string
	Email  string
}

// SessionStore persists sessions keyed by user id. Get returns (nil, nil) when
// no session exists so callers can distinguish "logged out" from store failure.
type SessionStore interface {
	Save(ctx context.Context, s Session, ttl time.Duration) error
	Get(ctx context.Context, userID string) (*Session, error)
	Delete(ctx context.Context, userID string) error
}

func sessionKey(userID string) string {
	return "user:session:" + userID
}

// RedisSessionStore keeps sessions as redis hashes with a TTL.
type RedisSessionStore struct {
	rdb *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

func (s *RedisSessionStore) Save(ctx context.Context, sess Session, ttl time.Duration) error {
	key := sessionKey(sess.UserID)
	fields := map[string]any{
		"sid":        sess.ID,
		"user_id":    sess.UserID,
		"email":      sess.Email,
		"created_at": time.Now().UTC().Format(time.RFC3339Nano),
	}
	pipe := s.rdb.Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisSessionStore) Get(ctx context.Context, userID string) (*Session, error) {
	data, err := s.rdb.HGetAll(ctx, sessionKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	return &Session{
		ID:     data["sid"],
		UserID: data["user_id"],
		Email:  data["email"],
	}, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, sessionKey(userID)).Err()
}

var _ SessionStore = (*RedisSessionStore)(nil)
