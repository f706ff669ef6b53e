package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const redisIdempotencyKeyPrefix = "medisync:idempotency:"

// IdempotencyStore remembers which record a client-supplied key produced.
type IdempotencyStore interface {
	// Get returns the remembered value and whether one exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string, ttl time.Duration) error
}

// IdempotencyGuard makes create operations safe to retry. Concurrent calls
// with the same key are serialized, so only the first one runs create.
type IdempotencyGuard struct {
	locker Locker
	store  IdempotencyStore
	ttl    time.Duration
	log    *logrus.Logger
}

func NewIdempotencyGuard(locker Locker, store IdempotencyStore, ttl time.Duration, log *logrus.Logger) *IdempotencyGuard {
	return &IdempotencyGuard{locker: locker, store: store, ttl: ttl, log: log}
}

// Do runs create unless key was already used within scope, in which case the
// earlier result is returned with replayed set. An empty key always runs
// create. A failed create is not remembered.
func (g *IdempotencyGuard) Do(ctx context.Context, scope, key string, create func(ctx context.Context) (string, error)) (id string, replayed bool, err error) {
	if key == "" {
		id, err = create(ctx)
		return id, false, err
	}

	fullKey := scope + ":" + key
	release, err := g.locker.Lock(ctx, "idem:"+fullKey)
	if err != nil {
		return "", false, err
	}
	defer release()

	if existing, ok, err := g.store.Get(ctx, fullKey); err != nil {
		g.log.Warnf("Failed to read idempotency key %s: %+v", fullKey, err)
		return "", false, err
	} else if ok {
		return existing, true, nil
	}

	id, err = create(ctx)
	if err != nil {
		return "", false, err
	}

	if err := g.store.Put(ctx, fullKey, id, g.ttl); err != nil {
		// the record exists; a retry would create a second one
		g.log.Warnf("Failed to remember idempotency key %s: %+v", fullKey, err)
	}
	return id, false, nil
}

type idempotencyEntry struct {
	value     string
	expiresAt time.Time
}

// LocalIdempotencyStore keeps keys in process memory.
type LocalIdempotencyStore struct {
	mu      sync.Mutex
	entries map[string]idempotencyEntry
	now     func() time.Time
}

var _ IdempotencyStore = (*LocalIdempotencyStore)(nil)

func NewLocalIdempotencyStore() *LocalIdempotencyStore {
	return &LocalIdempotencyStore{
		entries: make(map[string]idempotencyEntry),
		now:     time.Now,
	}
}

func (s *LocalIdempotencyStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return "", false, nil
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, key)
		return "", false, nil
	}
	return entry.value, true, nil
}

func (s *LocalIdempotencyStore) Put(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, k)
		}
	}
	s.entries[key] = idempotencyEntry{value: value, expiresAt: now.Add(ttl)}
	return nil
}

// RedisIdempotencyStore shares keys across replicas.
type RedisIdempotencyStore struct {
	client *redis.Client
}

var _ IdempotencyStore = (*RedisIdempotencyStore)(nil)

func NewRedisIdempotencyStore(client *redis.Client) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{client: client}
}

func (s *RedisIdempotencyStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, redisIdempotencyKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get idempotency key: %w", err)
	}
	return value, true, nil
}

func (s *RedisIdempotencyStore) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, redisIdempotencyKeyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("set idempotency key: %w", err)
	}
	return nil
}
