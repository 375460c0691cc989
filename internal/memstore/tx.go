package memstore

import (
	"cmp"
	"context"
	"errors"
	"slices"

	"github.com/metinatakli/showtime-booking/internal/domain"
)

var errReadOnly = errors.New("memstore: write in read-only transaction")

type tx struct {
	store    *Store
	readOnly bool
	// pinned transactions run while holding the store read lock and see
	// one committed state throughout.
	pinned bool
	held     []lockKey
	heldSet  map[lockKey]struct{}

	shows     map[int64]domain.Show
	showSlots map[int64][]int64
	slots     map[int64]domain.SeatSlot
	bookings  map[int64]domain.Booking
	payments  map[int64]domain.Payment
}

func newTx(store *Store, readOnly bool) *tx {
	return &tx{
		store:     store,
		readOnly:  readOnly,
		heldSet:   make(map[lockKey]struct{}),
		shows:     make(map[int64]domain.Show),
		showSlots: make(map[int64][]int64),
		slots:     make(map[int64]domain.SeatSlot),
		bookings:  make(map[int64]domain.Booking),
		payments:  make(map[int64]domain.Payment),
	}
}

func (t *tx) Customers() domain.CustomerRepository { return customerRepo{t} }
func (t *tx) Catalog() domain.CatalogRepository    { return catalogRepo{t} }
func (t *tx) Shows() domain.ShowRepository         { return showRepo{t} }
func (t *tx) Seats() domain.SeatRepository         { return seatRepo{t} }
func (t *tx) Bookings() domain.BookingRepository   { return bookingRepo{t} }
func (t *tx) Payments() domain.PaymentRepository   { return paymentRepo{t} }

func (t *tx) lock(ctx context.Context, keys []lockKey) error {
	if t.readOnly {
		return errReadOnly
	}

	pending := make([]lockKey, 0, len(keys))
	for _, key := range keys {
		if _, ok := t.heldSet[key]; !ok {
			pending = append(pending, key)
		}
	}

	if len(pending) == 0 {
		return nil
	}

	acquired, err := t.store.locks.acquire(ctx, pending, t.store.lockTimeout)
	if err != nil {
		return err
	}

	for _, key := range acquired {
		t.heldSet[key] = struct{}{}
	}
	t.held = append(t.held, acquired...)

	return nil
}

func (t *tx) view(fn func(d *dataset)) {
	if t.pinned {
		fn(t.store.data)
		return
	}

	t.store.view(fn)
}

func (t *tx) releaseLocks() {
	t.store.locks.release(t.held)
	t.held = nil
}

func (t *tx) writable() error {
	if t.readOnly {
		return errReadOnly
	}

	return nil
}

func (t *tx) commit() {
	t.store.update(func(d *dataset) {
		for id, show := range t.shows {
			d.shows[id] = show
		}

		for showID, ids := range t.showSlots {
			d.showSlots[showID] = append(d.showSlots[showID], ids...)
		}

		for id, slot := range t.slots {
			d.slots[id] = slot
		}

		for id, booking := range t.bookings {
			d.bookings[id] = booking
		}

		for id, payment := range t.payments {
			d.payments[id] = payment
		}
	})
}

func (t *tx) show(id int64) (domain.Show, bool) {
	if show, ok := t.shows[id]; ok {
		return show, true
	}

	var show domain.Show
	var ok bool

	t.view(func(d *dataset) {
		show, ok = d.shows[id]
	})

	return show, ok
}

func (t *tx) slot(id int64) (domain.SeatSlot, bool) {
	if slot, ok := t.slots[id]; ok {
		return slot, true
	}

	var slot domain.SeatSlot
	var ok bool

	t.view(func(d *dataset) {
		slot, ok = d.slots[id]
	})

	return slot, ok
}

func (t *tx) slotIDsOfShow(showID int64) []int64 {
	var ids []int64

	t.view(func(d *dataset) {
		ids = slices.Clone(d.showSlots[showID])
	})

	ids = append(ids, t.showSlots[showID]...)
	slices.Sort(ids)

	return ids
}

func (t *tx) booking(id int64) (domain.Booking, bool) {
	if booking, ok := t.bookings[id]; ok {
		return booking, true
	}

	var booking domain.Booking
	var ok bool

	t.view(func(d *dataset) {
		booking, ok = d.bookings[id]
	})

	return booking, ok
}

func (t *tx) payment(id int64) (domain.Payment, bool) {
	if payment, ok := t.payments[id]; ok {
		return payment, true
	}

	var payment domain.Payment
	var ok bool

	t.view(func(d *dataset) {
		payment, ok = d.payments[id]
	})

	return payment, ok
}

// allBookings merges committed bookings with the ones staged in this transaction.
func (t *tx) allBookings() []domain.Booking {
	merged := make(map[int64]domain.Booking)

	t.view(func(d *dataset) {
		for id, b := range d.bookings {
			merged[id] = b
		}
	})

	for id, b := range t.bookings {
		merged[id] = b
	}

	bookings := make([]domain.Booking, 0, len(merged))
	for _, b := range merged {
		bookings = append(bookings, b)
	}

	slices.SortFunc(bookings, func(a, b domain.Booking) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return bookings
}

func (t *tx) allShows() []domain.Show {
	merged := make(map[int64]domain.Show)

	t.view(func(d *dataset) {
		for id, s := range d.shows {
			merged[id] = s
		}
	})

	for id, s := range t.shows {
		merged[id] = s
	}

	shows := make([]domain.Show, 0, len(merged))
	for _, s := range merged {
		shows = append(shows, s)
	}

	return shows
}
