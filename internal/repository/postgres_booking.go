package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/metinatakli/showtime-booking/internal/domain"
)

type PostgresBookingRepository struct {
	db DBTX
}

func NewPostgresBookingRepository(db DBTX) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (booking_number, customer_id, show_id, status, total_amount, payment_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		booking.BookingNumber,
		booking.CustomerID,
		booking.ShowID,
		booking.Status,
		booking.TotalAmount,
		booking.PaymentID,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "bookings_booking_number_key") {
			return domain.ErrDuplicateBookingNumber
		}

		return err
	}

	if len(booking.Seats) == 0 {
		return nil
	}

	slotIDs := make([]int64, len(booking.Seats))
	prices := make([]string, len(booking.Seats))

	for i := range booking.Seats {
		booking.Seats[i].BookingID = booking.ID
		slotIDs[i] = booking.Seats[i].ShowSeatID
		prices[i] = booking.Seats[i].Price.String()
	}

	query = `
		INSERT INTO booking_seats (booking_id, show_seat_id, price)
		SELECT $1, u.show_seat_id, u.price::numeric
		FROM unnest($2::bigint[], $3::text[]) AS u(show_seat_id, price)
	`

	_, err = p.db.Exec(ctx, query, booking.ID, slotIDs, prices)
	if err != nil {
		return fmt.Errorf("failed to insert booking seats: %w", err)
	}

	return nil
}

const bookingColumns = `id, booking_number, customer_id, show_id, status, total_amount, payment_id, created_at, updated_at`

func (p *PostgresBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	return p.get(ctx, query, "booking", id)
}

func (p *PostgresBookingRepository) GetByNumber(ctx context.Context, bookingNumber string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_number = $1`

	return p.get(ctx, query, "booking", bookingNumber)
}

func (p *PostgresBookingRepository) get(ctx context.Context, query, entity string, key any) (*domain.Booking, error) {
	booking, err := scanBooking(p.db.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError(entity, key)
		}

		return nil, err
	}

	seats, err := p.retrieveBookingSeats(ctx, []int64{booking.ID})
	if err != nil {
		return nil, err
	}

	booking.Seats = seats[booking.ID]

	return booking, nil
}

func (p *PostgresBookingRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE customer_id = $1 ORDER BY id`

	rows, err := p.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	ids := make([]int64, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}

		bookings = append(bookings, *booking)
		ids = append(ids, booking.ID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return bookings, nil
	}

	seats, err := p.retrieveBookingSeats(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range bookings {
		bookings[i].Seats = seats[bookings[i].ID]
	}

	return bookings, nil
}

func (p *PostgresBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := p.db.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("booking", id)
	}

	return nil
}

func (p *PostgresBookingRepository) retrieveBookingSeats(
	ctx context.Context,
	bookingIDs []int64) (map[int64][]domain.BookingSeat, error) {

	query := `
		SELECT booking_id, show_seat_id, price
		FROM booking_seats
		WHERE booking_id = ANY($1)
		ORDER BY booking_id, show_seat_id
	`

	rows, err := p.db.Query(ctx, query, bookingIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make(map[int64][]domain.BookingSeat, len(bookingIDs))

	for rows.Next() {
		var seat domain.BookingSeat

		err := rows.Scan(&seat.BookingID, &seat.ShowSeatID, &seat.Price)
		if err != nil {
			return nil, err
		}

		seats[seat.BookingID] = append(seats[seat.BookingID], seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var booking domain.Booking

	err := row.Scan(
		&booking.ID,
		&booking.BookingNumber,
		&booking.CustomerID,
		&booking.ShowID,
		&booking.Status,
		&booking.TotalAmount,
		&booking.PaymentID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}
