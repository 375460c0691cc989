// Package reservation books and cancels seats of a show atomically.
package reservation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/metinatakli/showtime-booking/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/metinatakli/showtime-booking/internal/reservation"

// MetricSeatLockWait is the histogram of time spent waiting for seat row locks,
// in seconds, labelled by operation.
const MetricSeatLockWait = "bookings.seat_lock.wait"

type BookingRequest struct {
	ShowID        int64
	CustomerID    int64
	SeatIDs       []int64
	PaymentMethod domain.PaymentMethod
}

type Coordinator struct {
	uow    domain.UnitOfWork
	logger *slog.Logger
	now    func() time.Time
	tracer trace.Tracer
	meter  metric.Meter

	created   metric.Int64Counter
	cancelled metric.Int64Counter
	rejected  metric.Int64Counter
	lockWait  metric.Float64Histogram
}

type Option func(*Coordinator)

func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) {
		c.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

// WithMeterProvider replaces the global meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *Coordinator) {
		c.meter = mp.Meter(instrumentationName)
	}
}

func NewCoordinator(uow domain.UnitOfWork, opts ...Option) (*Coordinator, error) {
	c := &Coordinator{
		uow:    uow,
		logger: slog.Default(),
		now:    time.Now,
		tracer: otel.Tracer(instrumentationName),
		meter:  otel.Meter(instrumentationName),
	}

	for _, opt := range opts {
		opt(c)
	}

	meter := c.meter

	var err error

	c.created, err = meter.Int64Counter("bookings.created", metric.WithDescription("Confirmed bookings"))
	if err != nil {
		return nil, err
	}

	c.cancelled, err = meter.Int64Counter("bookings.cancelled", metric.WithDescription("Cancelled bookings"))
	if err != nil {
		return nil, err
	}

	c.rejected, err = meter.Int64Counter("bookings.rejected", metric.WithDescription("Booking attempts that failed"))
	if err != nil {
		return nil, err
	}

	c.lockWait, err = meter.Float64Histogram(MetricSeatLockWait,
		metric.WithDescription("Time spent waiting for seat locks"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	return c, nil
}

// ReserveAndBook locks the requested seats, validates them and records the
// payment and booking in one unit of work. Either every seat ends up BOOKED
// under the new booking or nothing changes.
func (c *Coordinator) ReserveAndBook(ctx context.Context, req BookingRequest) (*domain.BookingView, error) {
	ctx, span := c.tracer.Start(ctx, "Coordinator.ReserveAndBook", trace.WithAttributes(
		attribute.Int64("show.id", req.ShowID),
		attribute.Int64("customer.id", req.CustomerID),
		attribute.Int("seats.requested", len(req.SeatIDs)),
	))
	defer span.End()

	seatIDs := normalizeSeatIDs(req.SeatIDs)
	if len(seatIDs) == 0 {
		return nil, c.reject(ctx, span, domain.ErrNoSeatsRequested)
	}

	if !req.PaymentMethod.Valid() {
		return nil, c.reject(ctx, span, fmt.Errorf("%w: %q", domain.ErrInvalidPaymentMethod, req.PaymentMethod))
	}

	var bookingID int64

	err := c.uow.Do(ctx, func(ctx context.Context, tx domain.Tx) error {
		if _, err := tx.Customers().GetByID(ctx, req.CustomerID); err != nil {
			return err
		}

		if _, err := tx.Shows().GetByID(ctx, req.ShowID); err != nil {
			return err
		}

		slots, err := c.lockSeats(ctx, tx, "book", req.ShowID, seatIDs)
		if err != nil {
			return err
		}

		if err := validateLocked(req.ShowID, seatIDs, slots); err != nil {
			return err
		}

		if err := tx.Seats().UpdateStatus(ctx, seatIDs, domain.SeatStatusLocked, nil); err != nil {
			return err
		}

		total := domain.TotalPrice(slots)
		now := c.now()

		payment := domain.NewSettledPayment(total, req.PaymentMethod, now)
		if err := tx.Payments().Create(ctx, &payment); err != nil {
			return err
		}

		number, err := domain.GenerateBookingNumber()
		if err != nil {
			return err
		}

		booking := domain.Booking{
			BookingNumber: number,
			CustomerID:    req.CustomerID,
			ShowID:        req.ShowID,
			Status:        domain.BookingStatusConfirmed,
			TotalAmount:   total,
			PaymentID:     &payment.ID,
			Seats:         make([]domain.BookingSeat, len(slots)),
		}

		for i, slot := range slots {
			booking.Seats[i] = domain.BookingSeat{ShowSeatID: slot.ID, Price: slot.Price}
		}

		if err := tx.Bookings().Create(ctx, &booking); err != nil {
			return err
		}

		if err := tx.Seats().UpdateStatus(ctx, seatIDs, domain.SeatStatusBooked, &booking.ID); err != nil {
			return err
		}

		bookingID = booking.ID

		return nil
	})
	if err != nil {
		return nil, c.reject(ctx, span, err)
	}

	c.created.Add(ctx, 1)
	span.SetAttributes(attribute.Int64("booking.id", bookingID))

	c.logger.InfoContext(ctx, "booking confirmed",
		"booking_id", bookingID,
		"show_id", req.ShowID,
		"seats", len(seatIDs))

	return c.GetByID(ctx, bookingID)
}

// Cancel releases the booking's seats and refunds its payment. Cancelling an
// already cancelled booking returns it unchanged.
func (c *Coordinator) Cancel(ctx context.Context, bookingID int64) (*domain.BookingView, error) {
	ctx, span := c.tracer.Start(ctx, "Coordinator.Cancel", trace.WithAttributes(
		attribute.Int64("booking.id", bookingID),
	))
	defer span.End()

	var cancelled bool

	err := c.uow.Do(ctx, func(ctx context.Context, tx domain.Tx) error {
		booking, err := tx.Bookings().GetByID(ctx, bookingID)
		if err != nil {
			return err
		}

		if booking.Cancelled() {
			return nil
		}

		if _, err := c.lockSeats(ctx, tx, "cancel", booking.ShowID, booking.SeatSlotIDs()); err != nil {
			return err
		}

		// A concurrent cancel may have committed while we waited for the locks.
		booking, err = tx.Bookings().GetByID(ctx, bookingID)
		if err != nil {
			return err
		}

		if booking.Cancelled() {
			return nil
		}

		if err := tx.Bookings().UpdateStatus(ctx, booking.ID, domain.BookingStatusCancelled); err != nil {
			return err
		}

		if err := tx.Seats().UpdateStatus(ctx, booking.SeatSlotIDs(), domain.SeatStatusAvailable, nil); err != nil {
			return err
		}

		if booking.PaymentID != nil {
			if err := tx.Payments().UpdateStatus(ctx, *booking.PaymentID, domain.PaymentStatusRefunded); err != nil {
				return err
			}
		}

		cancelled = true

		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if cancelled {
		c.cancelled.Add(ctx, 1)
		c.logger.InfoContext(ctx, "booking cancelled", "booking_id", bookingID)
	}

	return c.GetByID(ctx, bookingID)
}

func (c *Coordinator) GetByID(ctx context.Context, bookingID int64) (*domain.BookingView, error) {
	var view *domain.BookingView

	err := c.uow.ReadOnly(ctx, func(ctx context.Context, tx domain.Tx) error {
		booking, err := tx.Bookings().GetByID(ctx, bookingID)
		if err != nil {
			return err
		}

		view, err = composeView(ctx, tx, booking)

		return err
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

func (c *Coordinator) GetByNumber(ctx context.Context, bookingNumber string) (*domain.BookingView, error) {
	var view *domain.BookingView

	err := c.uow.ReadOnly(ctx, func(ctx context.Context, tx domain.Tx) error {
		booking, err := tx.Bookings().GetByNumber(ctx, bookingNumber)
		if err != nil {
			return err
		}

		view, err = composeView(ctx, tx, booking)

		return err
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// ListByCustomer returns every booking of the customer, oldest first.
func (c *Coordinator) ListByCustomer(ctx context.Context, customerID int64) ([]domain.BookingView, error) {
	var views []domain.BookingView

	err := c.uow.ReadOnly(ctx, func(ctx context.Context, tx domain.Tx) error {
		if _, err := tx.Customers().GetByID(ctx, customerID); err != nil {
			return err
		}

		bookings, err := tx.Bookings().ListByCustomer(ctx, customerID)
		if err != nil {
			return err
		}

		views = make([]domain.BookingView, 0, len(bookings))

		for i := range bookings {
			view, err := composeView(ctx, tx, &bookings[i])
			if err != nil {
				return err
			}

			views = append(views, *view)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return views, nil
}

func (c *Coordinator) lockSeats(ctx context.Context, tx domain.Tx, op string, showID int64, ids []int64) ([]domain.SeatSlot, error) {
	started := time.Now()

	slots, err := tx.Seats().LockForUpdate(ctx, showID, ids)

	c.lockWait.Record(ctx, time.Since(started).Seconds(), metric.WithAttributes(
		attribute.String("operation", op),
		attribute.Bool("acquired", err == nil),
	))

	return slots, err
}

func (c *Coordinator) reject(ctx context.Context, span trace.Span, err error) error {
	c.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", rejectReason(err))))

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	c.logger.WarnContext(ctx, "booking rejected", "error", err)

	return err
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrSeatUnavailable):
		return "seat_unavailable"
	case errors.Is(err, domain.ErrSeatsBusy):
		return "seats_busy"
	case errors.Is(err, domain.ErrRecordNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrNoSeatsRequested):
		return "no_seats"
	case errors.Is(err, domain.ErrInvalidPaymentMethod):
		return "invalid_payment_method"
	default:
		return "error"
	}
}

func normalizeSeatIDs(ids []int64) []int64 {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)

	return slices.Compact(sorted)
}

// validateLocked checks the slots read under lock against the requested ids.
// Both slices are sorted by id.
func validateLocked(showID int64, requested []int64, locked []domain.SeatSlot) error {
	byID := make(map[int64]domain.SeatSlot, len(locked))
	for _, slot := range locked {
		byID[slot.ID] = slot
	}

	for _, id := range requested {
		if _, ok := byID[id]; !ok {
			return domain.NewNotFoundError("seat", id)
		}
	}

	for _, slot := range locked {
		if !slot.Available() {
			return &domain.SeatUnavailableError{ShowID: showID, SeatID: slot.ID, Status: slot.Status}
		}
	}

	return nil
}
