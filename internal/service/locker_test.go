package service

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestLocalLockerSerializesSameKey(t *testing.T) {
	locker := NewLocalLocker(newTestLogger())
	defer locker.Stop()

	var (
		inside  atomic.Int32
		maxSeen atomic.Int32
		wg      sync.WaitGroup
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := locker.Lock(context.Background(), "slot:d1:2024-07-15:10:00")
			if !assert.NoError(t, err) {
				return
			}
			defer release()

			n := inside.Add(1)
			if n > maxSeen.Load() {
				maxSeen.Store(n)
			}
			time.Sleep(time.Millisecond)
			inside.Add(-1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxSeen.Load())
}

func TestLocalLockerIndependentKeys(t *testing.T) {
	locker := NewLocalLocker(newTestLogger())
	defer locker.Stop()

	releaseA, err := locker.Lock(context.Background(), "a")
	require.NoError(t, err)
	defer releaseA()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	releaseB, err := locker.Lock(ctx, "b")
	require.NoError(t, err)
	releaseB()
}

func TestLocalLockerHonoursContext(t *testing.T) {
	locker := NewLocalLocker(newTestLogger())
	defer locker.Stop()

	release, err := locker.Lock(context.Background(), "k")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(ctx, "k")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLocalLockerReleaseIsIdempotent(t *testing.T) {
	locker := NewLocalLocker(newTestLogger())
	defer locker.Stop()

	release, err := locker.Lock(context.Background(), "k")
	require.NoError(t, err)
	release()
	release()

	second, err := locker.Lock(context.Background(), "k")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(ctx, "k")
	assert.Error(t, err, "double release must not free a lock held by someone else")
	second()
}

func TestLocalLockerSweep(t *testing.T) {
	locker := NewLocalLocker(newTestLogger())
	defer locker.Stop()

	held, err := locker.Lock(context.Background(), "held")
	require.NoError(t, err)
	freed, err := locker.Lock(context.Background(), "freed")
	require.NoError(t, err)
	freed()

	cleaned := locker.sweep(time.Now().Add(time.Hour))
	assert.Equal(t, 1, cleaned)

	_, ok := locker.locks.Load("held")
	assert.True(t, ok)
	_, ok = locker.locks.Load("freed")
	assert.False(t, ok)

	held()

	again, err := locker.Lock(context.Background(), "freed")
	require.NoError(t, err)
	again()
}

func TestLockKeys(t *testing.T) {
	assert.Equal(t, "slot:d1:2024-07-15:10:00", SlotLockKey("d1", "2024-07-15", "10:00"))
	assert.Equal(t, "patient:p1:balance", BalanceLockKey("p1"))
}

func TestLocalLockerStopTwice(t *testing.T) {
	locker := NewLocalLocker(newTestLogger())
	locker.Stop()
	locker.Stop()
}
