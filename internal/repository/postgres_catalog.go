package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/metinatakli/showtime-booking/internal/domain"
)

type PostgresCatalogRepository struct {
	db DBTX
}

func NewPostgresCatalogRepository(db DBTX) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{
		db: db,
	}
}

func (p *PostgresCatalogRepository) GetMovie(ctx context.Context, id int64) (*domain.Movie, error) {
	query := `
		SELECT id, title, description, genre, language, duration_mins, release_date, poster_url
		FROM movies
		WHERE id = $1
	`

	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Genre,
		&movie.Language,
		&movie.DurationMins,
		&movie.ReleaseDate,
		&movie.PosterUrl,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("movie", id)
		}

		return nil, err
	}

	return &movie, nil
}

func (p *PostgresCatalogRepository) GetScreen(ctx context.Context, id int64) (*domain.Screen, error) {
	return p.getScreen(ctx, `SELECT id, theater_id, name, total_seats FROM screens WHERE id = $1`, id)
}

func (p *PostgresCatalogRepository) LockScreen(ctx context.Context, id int64) (*domain.Screen, error) {
	screen, err := p.getScreen(ctx, `SELECT id, theater_id, name, total_seats FROM screens WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		return nil, translateError(err)
	}

	return screen, nil
}

func (p *PostgresCatalogRepository) getScreen(ctx context.Context, query string, id int64) (*domain.Screen, error) {
	var screen domain.Screen

	err := p.db.QueryRow(ctx, query, id).Scan(
		&screen.ID,
		&screen.TheaterID,
		&screen.Name,
		&screen.TotalSeats,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("screen", id)
		}

		return nil, err
	}

	return &screen, nil
}

func (p *PostgresCatalogRepository) GetTheater(ctx context.Context, id int64) (*domain.Theater, error) {
	query := `
		SELECT id, name, address, city, total_screens
		FROM theaters
		WHERE id = $1
	`

	var theater domain.Theater

	err := p.db.QueryRow(ctx, query, id).Scan(
		&theater.ID,
		&theater.Name,
		&theater.Address,
		&theater.City,
		&theater.TotalScreens,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("theater", id)
		}

		return nil, err
	}

	return &theater, nil
}

func (p *PostgresCatalogRepository) ListSeatsByScreen(ctx context.Context, screenID int64) ([]domain.Seat, error) {
	query := `
		SELECT id, screen_id, seat_number, seat_type, base_price
		FROM seats
		WHERE screen_id = $1
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query, screenID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.Seat, 0)

	for rows.Next() {
		var seat domain.Seat

		err := rows.Scan(
			&seat.ID,
			&seat.ScreenID,
			&seat.SeatNumber,
			&seat.SeatType,
			&seat.BasePrice,
		)
		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}
