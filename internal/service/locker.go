package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// Interval for cleaning up stale key locks
	lockCleanupInterval = 10 * time.Minute

	// How long a key lock must be unused before cleanup
	lockStaleThreshold = 10 * time.Minute
)

// Locker serializes work on a named key such as "slot:<doctor>:<date>:<start>"
// or "patient:<id>:balance". Lock blocks until the key is free or ctx is done.
// The returned release func must be called exactly once.
type Locker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}

// Lock key helpers shared by the workflows.
func SlotLockKey(doctorID, date, startTime string) string {
	return "slot:" + doctorID + ":" + date + ":" + startTime
}

func BalanceLockKey(patientID string) string {
	return "patient:" + patientID + ":balance"
}

// keyLock is a one-token semaphore so waiting can observe ctx.
type keyLock struct {
	ch       chan struct{}
	lastUsed atomic.Int64 // Unix timestamp
}

// LocalLocker keeps per-key locks in process memory. Unused entries are
// removed by a background loop; call Stop during shutdown.
type LocalLocker struct {
	log   *logrus.Logger
	locks sync.Map // map[string]*keyLock

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

var _ Locker = (*LocalLocker)(nil)

func NewLocalLocker(log *logrus.Logger) *LocalLocker {
	l := &LocalLocker{
		log:      log,
		stopChan: make(chan struct{}),
	}

	l.wg.Add(1)
	go l.cleanupLoop()

	return l
}

// Stop ends the cleanup loop. Safe to call multiple times.
func (l *LocalLocker) Stop() {
	if l.stopped.CompareAndSwap(false, true) {
		close(l.stopChan)
		l.wg.Wait()
		l.log.Info("LocalLocker stopped")
	}
}

func (l *LocalLocker) Lock(ctx context.Context, key string) (func(), error) {
	for {
		kl := l.getKeyLock(key)

		select {
		case kl.ch <- struct{}{}:
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		// The entry may have been swept between lookup and acquire.
		if current, ok := l.locks.Load(key); ok && current == kl {
			var once sync.Once
			return func() {
				once.Do(func() {
					kl.lastUsed.Store(time.Now().Unix())
					<-kl.ch
				})
			}, nil
		}
		<-kl.ch
	}
}

func (l *LocalLocker) getKeyLock(key string) *keyLock {
	v, _ := l.locks.LoadOrStore(key, &keyLock{ch: make(chan struct{}, 1)})
	kl := v.(*keyLock)
	kl.lastUsed.Store(time.Now().Unix())
	return kl
}

func (l *LocalLocker) cleanupLoop() {
	defer l.wg.Done()

	ticker := time.NewTicker(lockCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			l.log.Debug("Lock cleanup goroutine stopping")
			return
		case <-ticker.C:
			l.sweep(time.Now().Add(-lockStaleThreshold))
		}
	}
}

// sweep drops entries that are free and unused since cutoff.
func (l *LocalLocker) sweep(cutoff time.Time) int {
	var cleaned int

	l.locks.Range(func(key, value any) bool {
		kl, ok := value.(*keyLock)
		if !ok {
			return true
		}

		select {
		case kl.ch <- struct{}{}:
			// lastUsed is read while holding the token
			if kl.lastUsed.Load() < cutoff.Unix() {
				l.locks.Delete(key)
				cleaned++
			}
			<-kl.ch
		default:
		}
		return true
	})

	if cleaned > 0 {
		l.log.Debugf("Cleaned up %d stale key locks", cleaned)
	}
	return cleaned
}
