// Package memstore is an in-process implementation of domain.UnitOfWork.
//
// Committed state lives in a dataset guarded by a RWMutex. A transaction
// stages its writes in an overlay that only it can see and publishes them
// on commit, so readers never observe LOCKED slots of an in-flight booking.
// Read-only transactions hold the read lock for their whole run and never
// see half of a commit.
// Seat slots and screens are locked through a lock table; a transaction
// releases its locks only after its writes are published.
package memstore

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/metinatakli/showtime-booking/internal/domain"
)

const DefaultLockTimeout = 2 * time.Second

type dataset struct {
	theaters  map[int64]domain.Theater
	screens   map[int64]domain.Screen
	seats     map[int64]domain.Seat
	movies    map[int64]domain.Movie
	customers map[int64]domain.Customer
	shows     map[int64]domain.Show
	showSlots map[int64][]int64
	slots     map[int64]domain.SeatSlot
	bookings  map[int64]domain.Booking
	payments  map[int64]domain.Payment
}

func newDataset() *dataset {
	return &dataset{
		theaters:  make(map[int64]domain.Theater),
		screens:   make(map[int64]domain.Screen),
		seats:     make(map[int64]domain.Seat),
		movies:    make(map[int64]domain.Movie),
		customers: make(map[int64]domain.Customer),
		shows:     make(map[int64]domain.Show),
		showSlots: make(map[int64][]int64),
		slots:     make(map[int64]domain.SeatSlot),
		bookings:  make(map[int64]domain.Booking),
		payments:  make(map[int64]domain.Payment),
	}
}

type Store struct {
	mu          sync.RWMutex
	data        *dataset
	locks       *lockTable
	lockTimeout time.Duration
	seq         atomic.Int64
	now         func() time.Time
}

type Option func(*Store)

func WithLockTimeout(d time.Duration) Option {
	return func(s *Store) {
		s.lockTimeout = d
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		data:        newDataset(),
		locks:       newLockTable(),
		lockTimeout: DefaultLockTimeout,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Store) nextID() int64 {
	return s.seq.Add(1)
}

func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, tx domain.Tx) error) error {
	tx := newTx(s, false)
	defer tx.releaseLocks()

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	tx.commit()

	return nil
}

// ReadOnly runs fn against a single committed state. Commits wait until fn
// returns, so fn must not start another unit of work.
func (s *Store) ReadOnly(ctx context.Context, fn func(ctx context.Context, tx domain.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx := newTx(s, true)
	tx.pinned = true

	return fn(ctx, tx)
}

func (s *Store) view(fn func(d *dataset)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fn(s.data)
}

// update mutates the committed state under the write lock.
func (s *Store) update(fn func(d *dataset)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.data)
}
