package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGuard(t *testing.T) *IdempotencyGuard {
	t.Helper()
	locker := NewLocalLocker(newTestLogger())
	t.Cleanup(locker.Stop)
	return NewIdempotencyGuard(locker, NewLocalIdempotencyStore(), time.Hour, newTestLogger())
}

func TestIdempotencyGuardReplaysKey(t *testing.T) {
	guard := newTestGuard(t)
	calls := 0
	create := func(context.Context) (string, error) {
		calls++
		return fmt.Sprintf("id-%d", calls), nil
	}

	id, replayed, err := guard.Do(context.Background(), "appointment", "k1", create)
	require.NoError(t, err)
	assert.Equal(t, "id-1", id)
	assert.False(t, replayed)

	id, replayed, err = guard.Do(context.Background(), "appointment", "k1", create)
	require.NoError(t, err)
	assert.Equal(t, "id-1", id)
	assert.True(t, replayed)
	assert.Equal(t, 1, calls)

	// same key in another scope is independent
	id, replayed, err = guard.Do(context.Background(), "process", "k1", create)
	require.NoError(t, err)
	assert.Equal(t, "id-2", id)
	assert.False(t, replayed)
}

func TestIdempotencyGuardEmptyKeyAlwaysRuns(t *testing.T) {
	guard := newTestGuard(t)
	calls := 0
	create := func(context.Context) (string, error) {
		calls++
		return "id", nil
	}

	for i := 0; i < 3; i++ {
		_, replayed, err := guard.Do(context.Background(), "appointment", "", create)
		require.NoError(t, err)
		assert.False(t, replayed)
	}
	assert.Equal(t, 3, calls)
}

func TestIdempotencyGuardDoesNotRememberFailures(t *testing.T) {
	guard := newTestGuard(t)
	boom := errors.New("boom")

	_, _, err := guard.Do(context.Background(), "appointment", "k", func(context.Context) (string, error) {
		return "", boom
	})
	assert.ErrorIs(t, err, boom)

	id, replayed, err := guard.Do(context.Background(), "appointment", "k", func(context.Context) (string, error) {
		return "second", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "second", id)
	assert.False(t, replayed)
}

func TestIdempotencyGuardConcurrentSameKey(t *testing.T) {
	guard := newTestGuard(t)
	var (
		calls    atomic.Int32
		replays  atomic.Int32
		wg       sync.WaitGroup
		resultMu sync.Mutex
		results  = map[string]int{}
	)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, replayed, err := guard.Do(context.Background(), "review", "same", func(context.Context) (string, error) {
				return fmt.Sprintf("id-%d", calls.Add(1)), nil
			})
			if !assert.NoError(t, err) {
				return
			}
			if replayed {
				replays.Add(1)
			}
			resultMu.Lock()
			results[id]++
			resultMu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int32(9), replays.Load())
	assert.Equal(t, map[string]int{"id-1": 10}, results)
}

func TestLocalIdempotencyStoreExpires(t *testing.T) {
	store := NewLocalIdempotencyStore()
	now := time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Put(context.Background(), "a", "1", time.Minute))

	value, ok, err := store.Get(context.Background(), "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", value)

	now = now.Add(2 * time.Minute)
	_, ok, err = store.Get(context.Background(), "a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalIdempotencyStorePurgesOnPut(t *testing.T) {
	store := NewLocalIdempotencyStore()
	now := time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Put(context.Background(), "old", "1", time.Minute))
	now = now.Add(time.Hour)
	require.NoError(t, store.Put(context.Background(), "new", "2", time.Minute))

	assert.Len(t, store.entries, 1)
	assert.Contains(t, store.entries, "new")
}
