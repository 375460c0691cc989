package memstore

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/metinatakli/showtime-booking/internal/domain"
)

type customerRepo struct{ tx *tx }

func (r customerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	var customer domain.Customer
	var ok bool

	r.tx.view(func(d *dataset) {
		customer, ok = d.customers[id]
	})

	if !ok {
		return nil, domain.NewNotFoundError("customer", id)
	}

	return &customer, nil
}

type catalogRepo struct{ tx *tx }

func (r catalogRepo) GetMovie(_ context.Context, id int64) (*domain.Movie, error) {
	var movie domain.Movie
	var ok bool

	r.tx.view(func(d *dataset) {
		movie, ok = d.movies[id]
	})

	if !ok {
		return nil, domain.NewNotFoundError("movie", id)
	}

	return &movie, nil
}

func (r catalogRepo) GetScreen(_ context.Context, id int64) (*domain.Screen, error) {
	var screen domain.Screen
	var ok bool

	r.tx.view(func(d *dataset) {
		screen, ok = d.screens[id]
	})

	if !ok {
		return nil, domain.NewNotFoundError("screen", id)
	}

	return &screen, nil
}

func (r catalogRepo) LockScreen(ctx context.Context, id int64) (*domain.Screen, error) {
	screen, err := r.GetScreen(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.tx.lock(ctx, []lockKey{{kind: screenLock, id: id}}); err != nil {
		return nil, err
	}

	return screen, nil
}

func (r catalogRepo) GetTheater(_ context.Context, id int64) (*domain.Theater, error) {
	var theater domain.Theater
	var ok bool

	r.tx.view(func(d *dataset) {
		theater, ok = d.theaters[id]
	})

	if !ok {
		return nil, domain.NewNotFoundError("theater", id)
	}

	return &theater, nil
}

func (r catalogRepo) ListSeatsByScreen(_ context.Context, screenID int64) ([]domain.Seat, error) {
	seats := make([]domain.Seat, 0)

	r.tx.view(func(d *dataset) {
		for _, seat := range d.seats {
			if seat.ScreenID == screenID {
				seats = append(seats, seat)
			}
		}
	})

	slices.SortFunc(seats, func(a, b domain.Seat) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return seats, nil
}

type showRepo struct{ tx *tx }

func (r showRepo) Create(_ context.Context, show *domain.Show) error {
	if err := r.tx.writable(); err != nil {
		return err
	}

	show.ID = r.tx.store.nextID()
	show.CreatedAt = r.tx.store.now()
	r.tx.shows[show.ID] = *show

	return nil
}

func (r showRepo) GetByID(_ context.Context, id int64) (*domain.Show, error) {
	show, ok := r.tx.show(id)
	if !ok {
		return nil, domain.NewNotFoundError("show", id)
	}

	return &show, nil
}

func (r showRepo) ListOverlapping(_ context.Context, screenID int64, interval domain.Interval) ([]domain.Show, error) {
	shows := make([]domain.Show, 0)

	for _, show := range r.tx.allShows() {
		if show.ScreenID == screenID && show.Interval().Overlaps(interval) {
			shows = append(shows, show)
		}
	}

	sortShows(shows)

	return shows, nil
}

func (r showRepo) List(_ context.Context, filter domain.ShowFilter) ([]domain.Show, error) {
	cityOf := make(map[int64]string)

	r.tx.view(func(d *dataset) {
		for id, screen := range d.screens {
			cityOf[id] = d.theaters[screen.TheaterID].City
		}
	})

	shows := make([]domain.Show, 0)

	for _, show := range r.tx.allShows() {
		if filter.MovieID != nil && show.MovieID != *filter.MovieID {
			continue
		}
		if filter.City != nil && !strings.EqualFold(cityOf[show.ScreenID], *filter.City) {
			continue
		}
		if filter.From != nil && show.StartTime.Before(*filter.From) {
			continue
		}
		if filter.To != nil && show.StartTime.After(*filter.To) {
			continue
		}

		shows = append(shows, show)
	}

	sortShows(shows)

	return shows, nil
}

func sortShows(shows []domain.Show) {
	slices.SortFunc(shows, func(a, b domain.Show) int {
		if c := a.StartTime.Compare(b.StartTime); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

type seatRepo struct{ tx *tx }

func (r seatRepo) CreateForShow(_ context.Context, slots []domain.SeatSlot) error {
	if err := r.tx.writable(); err != nil {
		return err
	}

	slices.SortFunc(slots, func(a, b domain.SeatSlot) int {
		return cmp.Compare(a.SeatID, b.SeatID)
	})

	for i := range slots {
		slots[i].ID = r.tx.store.nextID()
		slots[i].Status = domain.SeatStatusAvailable
		slots[i].BookingID = nil
		slots[i].Seat = nil

		r.tx.slots[slots[i].ID] = slots[i]
		r.tx.showSlots[slots[i].ShowID] = append(r.tx.showSlots[slots[i].ShowID], slots[i].ID)
	}

	return nil
}

func (r seatRepo) CountByShow(_ context.Context, showID int64) (int, error) {
	return len(r.tx.slotIDsOfShow(showID)), nil
}

func (r seatRepo) ListByShow(_ context.Context, showID int64) ([]domain.SeatSlot, error) {
	return r.withSeats(r.collect(r.tx.slotIDsOfShow(showID), nil)), nil
}

func (r seatRepo) ListAvailableByShow(_ context.Context, showID int64) ([]domain.SeatSlot, error) {
	slots := r.collect(r.tx.slotIDsOfShow(showID), func(s domain.SeatSlot) bool {
		return s.Available()
	})

	return r.withSeats(slots), nil
}

func (r seatRepo) ListByIDs(_ context.Context, ids []int64) ([]domain.SeatSlot, error) {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)

	return r.withSeats(r.collect(slices.Compact(sorted), nil)), nil
}

func (r seatRepo) LockForUpdate(ctx context.Context, showID int64, ids []int64) ([]domain.SeatSlot, error) {
	// A slot never changes show, so membership can be checked before locking.
	keys := make([]lockKey, 0, len(ids))
	for _, id := range ids {
		if slot, ok := r.tx.slot(id); ok && slot.ShowID == showID {
			keys = append(keys, lockKey{kind: seatSlotLock, id: id})
		}
	}

	if err := r.tx.lock(ctx, keys); err != nil {
		return nil, err
	}

	lockedIDs := make([]int64, len(keys))
	for i, key := range keys {
		lockedIDs[i] = key.id
	}
	slices.Sort(lockedIDs)

	return r.collect(slices.Compact(lockedIDs), nil), nil
}

func (r seatRepo) UpdateStatus(_ context.Context, ids []int64, status domain.SeatStatus, bookingID *int64) error {
	if err := r.tx.writable(); err != nil {
		return err
	}

	for _, id := range ids {
		slot, ok := r.tx.slot(id)
		if !ok {
			continue
		}

		slot.Status = status
		slot.BookingID = nil
		if bookingID != nil {
			ref := *bookingID
			slot.BookingID = &ref
		}

		r.tx.slots[id] = slot
	}

	return nil
}

func (r seatRepo) collect(ids []int64, keep func(domain.SeatSlot) bool) []domain.SeatSlot {
	slots := make([]domain.SeatSlot, 0, len(ids))

	for _, id := range ids {
		slot, ok := r.tx.slot(id)
		if !ok || (keep != nil && !keep(slot)) {
			continue
		}

		slots = append(slots, slot)
	}

	return slots
}

func (r seatRepo) withSeats(slots []domain.SeatSlot) []domain.SeatSlot {
	r.tx.view(func(d *dataset) {
		for i := range slots {
			seat := d.seats[slots[i].SeatID]
			slots[i].Seat = &seat
		}
	})

	return slots
}

type bookingRepo struct{ tx *tx }

func (r bookingRepo) Create(_ context.Context, booking *domain.Booking) error {
	if err := r.tx.writable(); err != nil {
		return err
	}

	for _, existing := range r.tx.allBookings() {
		if existing.BookingNumber == booking.BookingNumber {
			return domain.ErrDuplicateBookingNumber
		}
	}

	now := r.tx.store.now()

	booking.ID = r.tx.store.nextID()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	for i := range booking.Seats {
		booking.Seats[i].BookingID = booking.ID
	}

	stored := *booking
	stored.Seats = slices.Clone(booking.Seats)
	r.tx.bookings[booking.ID] = stored

	return nil
}

func (r bookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := r.tx.booking(id)
	if !ok {
		return nil, domain.NewNotFoundError("booking", id)
	}

	booking.Seats = slices.Clone(booking.Seats)

	return &booking, nil
}

func (r bookingRepo) GetByNumber(_ context.Context, bookingNumber string) (*domain.Booking, error) {
	for _, booking := range r.tx.allBookings() {
		if booking.BookingNumber == bookingNumber {
			booking.Seats = slices.Clone(booking.Seats)
			return &booking, nil
		}
	}

	return nil, domain.NewNotFoundError("booking", bookingNumber)
}

func (r bookingRepo) ListByCustomer(_ context.Context, customerID int64) ([]domain.Booking, error) {
	bookings := make([]domain.Booking, 0)

	for _, booking := range r.tx.allBookings() {
		if booking.CustomerID == customerID {
			booking.Seats = slices.Clone(booking.Seats)
			bookings = append(bookings, booking)
		}
	}

	return bookings, nil
}

func (r bookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if err := r.tx.writable(); err != nil {
		return err
	}

	booking, ok := r.tx.booking(id)
	if !ok {
		return domain.NewNotFoundError("booking", id)
	}

	booking.Status = status
	booking.UpdatedAt = r.tx.store.now()
	r.tx.bookings[id] = booking

	return nil
}

type paymentRepo struct{ tx *tx }

func (r paymentRepo) Create(_ context.Context, payment *domain.Payment) error {
	if err := r.tx.writable(); err != nil {
		return err
	}

	payment.ID = r.tx.store.nextID()
	r.tx.payments[payment.ID] = *payment

	return nil
}

func (r paymentRepo) GetByID(_ context.Context, id int64) (*domain.Payment, error) {
	payment, ok := r.tx.payment(id)
	if !ok {
		return nil, domain.NewNotFoundError("payment", id)
	}

	return &payment, nil
}

func (r paymentRepo) UpdateStatus(_ context.Context, id int64, status domain.PaymentStatus) error {
	if err := r.tx.writable(); err != nil {
		return err
	}

	payment, ok := r.tx.payment(id)
	if !ok {
		return domain.NewNotFoundError("payment", id)
	}

	payment.Status = status
	payment.UpdatedAt = r.tx.store.now()
	r.tx.payments[id] = payment

	return nil
}
