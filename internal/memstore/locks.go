package memstore

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/metinatakli/showtime-booking/internal/domain"
)

type lockKind uint8

const (
	seatSlotLock lockKind = iota + 1
	screenLock
)

type lockKey struct {
	kind lockKind
	id   int64
}

// lockTable hands out one exclusive lock per key. Each lock is a one-slot
// channel so that acquisition can be bounded by a timer or a context.
type lockTable struct {
	mu    sync.Mutex
	locks map[lockKey]chan struct{}
}

func newLockTable() *lockTable {
	return &lockTable{
		locks: make(map[lockKey]chan struct{}),
	}
}

func (l *lockTable) get(key lockKey) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch, ok := l.locks[key]
	if !ok {
		ch = make(chan struct{}, 1)
		l.locks[key] = ch
	}

	return ch
}

// acquire locks keys in ascending order and waits at most timeout for the
// whole set. On failure nothing stays held.
func (l *lockTable) acquire(ctx context.Context, keys []lockKey, timeout time.Duration) ([]lockKey, error) {
	sorted := slices.Clone(keys)
	slices.SortFunc(sorted, func(a, b lockKey) int {
		if c := cmp.Compare(a.kind, b.kind); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})
	sorted = slices.Compact(sorted)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	held := make([]lockKey, 0, len(sorted))

	for _, key := range sorted {
		select {
		case l.get(key) <- struct{}{}:
			held = append(held, key)
		case <-timer.C:
			l.release(held)
			return nil, domain.ErrSeatsBusy
		case <-ctx.Done():
			l.release(held)
			return nil, fmt.Errorf("%w: %w", domain.ErrSeatsBusy, ctx.Err())
		}
	}

	return held, nil
}

func (l *lockTable) release(keys []lockKey) {
	for i := len(keys) - 1; i >= 0; i-- {
		<-l.get(keys[i])
	}
}
