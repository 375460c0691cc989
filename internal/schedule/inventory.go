package schedule

import (
	"context"

	"github.com/metinatakli/showtime-booking/internal/domain"
	"github.com/shopspring/decimal"
)

// PriceRule decides what a seat costs for a given show.
type PriceRule func(seat domain.Seat) decimal.Decimal

// BasePrice charges the seat template's base price.
func BasePrice(seat domain.Seat) decimal.Decimal {
	return seat.BasePrice
}

// SeatTypePrices overrides the price per seat type. Seat types missing from
// the map fall back to the base price.
func SeatTypePrices(prices map[string]decimal.Decimal) PriceRule {
	return func(seat domain.Seat) decimal.Decimal {
		if price, ok := prices[seat.SeatType]; ok {
			return price
		}

		return seat.BasePrice
	}
}

// Materialize creates one AVAILABLE slot per seat template for the show.
func Materialize(
	ctx context.Context,
	tx domain.Tx,
	show *domain.Show,
	seats []domain.Seat,
	rule PriceRule) ([]domain.SeatSlot, error) {

	count, err := tx.Seats().CountByShow(ctx, show.ID)
	if err != nil {
		return nil, err
	}

	if count > 0 {
		return nil, domain.ErrInventoryExists
	}

	if rule == nil {
		rule = BasePrice
	}

	slots := make([]domain.SeatSlot, len(seats))
	for i, seat := range seats {
		slots[i] = domain.SeatSlot{
			ShowID: show.ID,
			SeatID: seat.ID,
			Price:  rule(seat),
			Status: domain.SeatStatusAvailable,
		}
	}

	if err := tx.Seats().CreateForShow(ctx, slots); err != nil {
		return nil, err
	}

	return slots, nil
}

// CheckNoOverlap fails with *domain.OverlapError when the screen already has a
// show intersecting the interval. Callers must hold the screen lock.
func CheckNoOverlap(ctx context.Context, tx domain.Tx, screenID int64, interval domain.Interval) error {
	shows, err := tx.Shows().ListOverlapping(ctx, screenID, interval)
	if err != nil {
		return err
	}

	if len(shows) == 0 {
		return nil
	}

	return &domain.OverlapError{
		ScreenID:          screenID,
		ConflictingShowID: shows[0].ID,
		Start:             interval.Start,
		End:               interval.End,
	}
}
