package service

import (
	"context"
	"errors"
	"fmt"
	"gradebook_backend/internal/config"
	"gradebook_backend/internal/util"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionStore tracks live login sessions by id. A token whose session id is
// missing from the store is rejected even if its signature is still valid.
type SessionStore interface {
	Create(ctx context.Context, userID uint, ttl time.Duration) (string, error)
	Lookup(ctx context.Context, sessionID string) (uint, error)
	Delete(ctx context.Context, sessionID string) error
}

const sessionKeyPrefix = "session:"

type RedisSessionStore struct {
	Redis *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Redis: rdb}
}

func (s *RedisSessionStore) Create(ctx context.Context, userID uint, ttl time.Duration) (string, error) {
	id := uuid.New().String()
	if err := s.Redis.Set(ctx, sessionKeyPrefix+id, userID, ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

func (s *RedisSessionStore) Lookup(ctx context.Context, sessionID string) (uint, error) {
	val, err := s.Redis.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return 0, util.ErrSessionExpired
	}
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt session %s: %w", sessionID, err)
	}
	return uint(id), nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.Redis.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

// MemorySessionStore keeps sessions in process. Sessions are lost on restart.
type MemorySessionStore struct {
	cache *cache.Cache
}

func NewMemorySessionStore(defaultTTL time.Duration) *MemorySessionStore {
	return &MemorySessionStore{cache: cache.New(defaultTTL, 10*time.Minute)}
}

func (s *MemorySessionStore) Create(_ context.Context, userID uint, ttl time.Duration) (string, error) {
	id := uuid.New().String()
	s.cache.Set(sessionKeyPrefix+id, userID, ttl)
	return id, nil
}

func (s *MemorySessionStore) Lookup(_ context.Context, sessionID string) (uint, error) {
	v, ok := s.cache.Get(sessionKeyPrefix + sessionID)
	if !ok {
		return 0, util.ErrSessionExpired
	}
	return v.(uint), nil
}

func (s *MemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.cache.Delete(sessionKeyPrefix + sessionID)
	return nil
}

// NewSessionStore picks the backend named in config. A nil redis client
// forces the memory store.
func NewSessionStore(cfg *config.Config, rdb *redis.Client) SessionStore {
	if cfg.Session.Store == util.SessionStoreRedis && rdb != nil {
		return NewRedisSessionStore(rdb)
	}
	return NewMemorySessionStore(cfg.JWT.ExpireTime)
}
