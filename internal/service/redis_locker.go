package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	redisLockKeyPrefix = "medisync:lock:"

	// Poll interval while waiting for a held lock
	redisLockRetryInterval = 25 * time.Millisecond

	// Timeout for the release call, independent of the request context
	redisReleaseTimeout = 2 * time.Second
)

// releaseLockScript deletes the lock only if it still carries our token, so
// an expired lock taken over by another holder is left alone.
var releaseLockScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

// RedisLocker is a Locker shared by every replica talking to the same Redis.
// Locks expire after ttl in case the holder dies.
type RedisLocker struct {
	client *redis.Client
	log    *logrus.Logger
	ttl    time.Duration
}

var _ Locker = (*RedisLocker)(nil)

func NewRedisLocker(client *redis.Client, log *logrus.Logger, ttl time.Duration) *RedisLocker {
	return &RedisLocker{client: client, log: log, ttl: ttl}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := redisLockKeyPrefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(redisLockRetryInterval)
	defer ticker.Stop()

	for {
		acquired, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			l.log.Warnf("Failed to acquire redis lock %s: %+v", key, err)
			return nil, fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if acquired {
			return l.releaser(redisKey, token), nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (l *RedisLocker) releaser(redisKey, token string) func() {
	released := false
	return func() {
		if released {
			return
		}
		released = true

		ctx, cancel := context.WithTimeout(context.Background(), redisReleaseTimeout)
		defer cancel()
		if err := releaseLockScript.Run(ctx, l.client, []string{redisKey}, token).Err(); err != nil {
			l.log.Warnf("Failed to release redis lock %s: %+v", redisKey, err)
		}
	}
}
