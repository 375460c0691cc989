package reservation

import (
	"context"

	"github.com/metinatakli/showtime-booking/internal/domain"
)

func composeView(ctx context.Context, tx domain.Tx, booking *domain.Booking) (*domain.BookingView, error) {
	customer, err := tx.Customers().GetByID(ctx, booking.CustomerID)
	if err != nil {
		return nil, err
	}

	show, err := tx.Shows().GetByID(ctx, booking.ShowID)
	if err != nil {
		return nil, err
	}

	movie, err := tx.Catalog().GetMovie(ctx, show.MovieID)
	if err != nil {
		return nil, err
	}

	screen, err := tx.Catalog().GetScreen(ctx, show.ScreenID)
	if err != nil {
		return nil, err
	}

	theater, err := tx.Catalog().GetTheater(ctx, screen.TheaterID)
	if err != nil {
		return nil, err
	}

	slots, err := tx.Seats().ListByIDs(ctx, booking.SeatSlotIDs())
	if err != nil {
		return nil, err
	}

	slotByID := make(map[int64]domain.SeatSlot, len(slots))
	for _, slot := range slots {
		slotByID[slot.ID] = slot
	}

	seats := make([]domain.BookedSeat, 0, len(booking.Seats))
	for _, bs := range booking.Seats {
		seat := domain.BookedSeat{ShowSeatID: bs.ShowSeatID, Price: bs.Price}

		if slot, ok := slotByID[bs.ShowSeatID]; ok {
			seat.Status = slot.Status
			if slot.Seat != nil {
				seat.Seat = *slot.Seat
			}
		}

		seats = append(seats, seat)
	}

	view := &domain.BookingView{
		Booking:  *booking,
		Customer: *customer,
		Show:     *show,
		Movie:    *movie,
		Screen:   *screen,
		Theater:  *theater,
		Seats:    seats,
	}

	if booking.PaymentID != nil {
		payment, err := tx.Payments().GetByID(ctx, *booking.PaymentID)
		if err != nil {
			return nil, err
		}

		view.Payment = payment
	}

	return view, nil
}
