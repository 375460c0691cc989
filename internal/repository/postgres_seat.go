package repository

import (
	"context"

	"github.com/metinatakli/showtime-booking/internal/domain"
)

type PostgresSeatRepository struct {
	db DBTX
}

func NewPostgresSeatRepository(db DBTX) *PostgresSeatRepository {
	return &PostgresSeatRepository{
		db: db,
	}
}

const seatSlotWithSeatColumns = `
	ss.id, ss.show_id, ss.seat_id, ss.price, ss.status, ss.booking_id,
	se.id, se.screen_id, se.seat_number, se.seat_type, se.base_price
`

func (p *PostgresSeatRepository) CreateForShow(ctx context.Context, slots []domain.SeatSlot) error {
	if len(slots) == 0 {
		return nil
	}

	seatIDs := make([]int64, len(slots))
	prices := make([]string, len(slots))

	for i, slot := range slots {
		seatIDs[i] = slot.SeatID
		prices[i] = slot.Price.String()
	}

	query := `
		INSERT INTO show_seats (show_id, seat_id, price, status)
		SELECT $1, u.seat_id, u.price::numeric, 'AVAILABLE'
		FROM unnest($2::bigint[], $3::text[]) AS u(seat_id, price)
		ORDER BY u.seat_id
		RETURNING id, seat_id
	`

	rows, err := p.db.Query(ctx, query, slots[0].ShowID, seatIDs, prices)
	if err != nil {
		return err
	}
	defer rows.Close()

	idsBySeat := make(map[int64]int64, len(slots))

	for rows.Next() {
		var id, seatID int64

		if err := rows.Scan(&id, &seatID); err != nil {
			return err
		}

		idsBySeat[seatID] = id
	}

	if err = rows.Err(); err != nil {
		return err
	}

	for i := range slots {
		slots[i].ID = idsBySeat[slots[i].SeatID]
		slots[i].Status = domain.SeatStatusAvailable
	}

	return nil
}

func (p *PostgresSeatRepository) CountByShow(ctx context.Context, showID int64) (int, error) {
	var count int

	err := p.db.QueryRow(ctx, `SELECT COUNT(*) FROM show_seats WHERE show_id = $1`, showID).Scan(&count)

	return count, err
}

func (p *PostgresSeatRepository) ListByShow(ctx context.Context, showID int64) ([]domain.SeatSlot, error) {
	query := `
		SELECT ` + seatSlotWithSeatColumns + `
		FROM show_seats ss
		JOIN seats se ON ss.seat_id = se.id
		WHERE ss.show_id = $1
		ORDER BY ss.id
	`

	return p.listWithSeat(ctx, query, showID)
}

func (p *PostgresSeatRepository) ListAvailableByShow(ctx context.Context, showID int64) ([]domain.SeatSlot, error) {
	query := `
		SELECT ` + seatSlotWithSeatColumns + `
		FROM show_seats ss
		JOIN seats se ON ss.seat_id = se.id
		WHERE ss.show_id = $1 AND ss.status = 'AVAILABLE'
		ORDER BY ss.id
	`

	return p.listWithSeat(ctx, query, showID)
}

func (p *PostgresSeatRepository) ListByIDs(ctx context.Context, ids []int64) ([]domain.SeatSlot, error) {
	query := `
		SELECT ` + seatSlotWithSeatColumns + `
		FROM show_seats ss
		JOIN seats se ON ss.seat_id = se.id
		WHERE ss.id = ANY($1)
		ORDER BY ss.id
	`

	return p.listWithSeat(ctx, query, ids)
}

func (p *PostgresSeatRepository) LockForUpdate(ctx context.Context, showID int64, ids []int64) ([]domain.SeatSlot, error) {
	// Rows are locked in the order the sort returns them.
	query := `
		SELECT id, show_id, seat_id, price, status, booking_id
		FROM show_seats
		WHERE show_id = $1 AND id = ANY($2)
		ORDER BY id
		FOR UPDATE
	`

	rows, err := p.db.Query(ctx, query, showID, ids)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	slots := make([]domain.SeatSlot, 0, len(ids))

	for rows.Next() {
		var slot domain.SeatSlot

		err := rows.Scan(
			&slot.ID,
			&slot.ShowID,
			&slot.SeatID,
			&slot.Price,
			&slot.Status,
			&slot.BookingID,
		)
		if err != nil {
			return nil, err
		}

		slots = append(slots, slot)
	}

	if err = rows.Err(); err != nil {
		return nil, translateError(err)
	}

	return slots, nil
}

func (p *PostgresSeatRepository) UpdateStatus(
	ctx context.Context,
	ids []int64,
	status domain.SeatStatus,
	bookingID *int64) error {

	query := `
		UPDATE show_seats
		SET status = $2, booking_id = $3
		WHERE id = ANY($1)
	`

	_, err := p.db.Exec(ctx, query, ids, status, bookingID)

	return translateError(err)
}

func (p *PostgresSeatRepository) listWithSeat(ctx context.Context, query string, args ...any) ([]domain.SeatSlot, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := make([]domain.SeatSlot, 0)

	for rows.Next() {
		var slot domain.SeatSlot
		var seat domain.Seat

		err := rows.Scan(
			&slot.ID,
			&slot.ShowID,
			&slot.SeatID,
			&slot.Price,
			&slot.Status,
			&slot.BookingID,
			&seat.ID,
			&seat.ScreenID,
			&seat.SeatNumber,
			&seat.SeatType,
			&seat.BasePrice,
		)
		if err != nil {
			return nil, err
		}

		slot.Seat = &seat
		slots = append(slots, slot)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}
