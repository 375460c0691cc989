package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	ID            int64
	BookingNumber string
	CustomerID    int64
	ShowID        int64
	Status        BookingStatus
	TotalAmount   decimal.Decimal
	PaymentID     *int64
	Seats         []BookingSeat
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BookingSeat snapshots a seat slot and the price paid for it at booking time.
// It outlives the slot's booking reference, which is cleared on cancellation.
type BookingSeat struct {
	BookingID  int64
	ShowSeatID int64
	Price      decimal.Decimal
}

func (b Booking) Cancelled() bool {
	return b.Status == BookingStatusCancelled
}

func (b Booking) SeatSlotIDs() []int64 {
	ids := make([]int64, len(b.Seats))
	for i, s := range b.Seats {
		ids[i] = s.ShowSeatID
	}

	return ids
}

type BookingRepository interface {
	// Create inserts the booking and its seat snapshot.
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id int64) (*Booking, error)
	GetByNumber(ctx context.Context, bookingNumber string) (*Booking, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]Booking, error)
	UpdateStatus(ctx context.Context, id int64, status BookingStatus) error
}

// BookingView is the composed read model returned to callers.
type BookingView struct {
	Booking  Booking
	Customer Customer
	Show     Show
	Movie    Movie
	Screen   Screen
	Theater  Theater
	Seats    []BookedSeat
	Payment  *Payment
}

type BookedSeat struct {
	ShowSeatID int64
	Seat       Seat
	Price      decimal.Decimal
	Status     SeatStatus
}
