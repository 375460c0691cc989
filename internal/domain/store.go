package domain

import "context"

// Tx exposes the repositories bound to one transaction.
type Tx interface {
	Customers() CustomerRepository
	Catalog() CatalogRepository
	Shows() ShowRepository
	Seats() SeatRepository
	Bookings() BookingRepository
	Payments() PaymentRepository
}

// UnitOfWork demarcates transactions. Do commits when fn returns nil and
// rolls back otherwise; ReadOnly never takes row locks.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	ReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}
