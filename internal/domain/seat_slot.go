package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "AVAILABLE"
	SeatStatusLocked    SeatStatus = "LOCKED"
	SeatStatusBooked    SeatStatus = "BOOKED"
)

// SeatSlot is the bookable instance of a Seat for one show.
type SeatSlot struct {
	ID        int64
	ShowID    int64
	SeatID    int64
	Price     decimal.Decimal
	Status    SeatStatus
	BookingID *int64

	// Seat is filled on reads that join the seat template.
	Seat *Seat
}

func (s SeatSlot) Available() bool {
	return s.Status == SeatStatusAvailable
}

type SeatRepository interface {
	CreateForShow(ctx context.Context, slots []SeatSlot) error
	CountByShow(ctx context.Context, showID int64) (int, error)
	ListByShow(ctx context.Context, showID int64) ([]SeatSlot, error)
	ListAvailableByShow(ctx context.Context, showID int64) ([]SeatSlot, error)
	ListByIDs(ctx context.Context, ids []int64) ([]SeatSlot, error)
	// LockForUpdate takes exclusive locks on the given slots of a show in
	// ascending id order and returns them as seen under the lock. Ids that do
	// not belong to the show are absent from the result. Returns ErrSeatsBusy
	// if the locks cannot be acquired within the store's bound.
	LockForUpdate(ctx context.Context, showID int64, ids []int64) ([]SeatSlot, error)
	UpdateStatus(ctx context.Context, ids []int64, status SeatStatus, bookingID *int64) error
}

func SeatSlotIDs(slots []SeatSlot) []int64 {
	ids := make([]int64, len(slots))
	for i, s := range slots {
		ids[i] = s.ID
	}

	return ids
}

func TotalPrice(slots []SeatSlot) decimal.Decimal {
	total := decimal.Zero

	for _, v := range slots {
		total = total.Add(v.Price)
	}

	return total
}
