package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/metinatakli/showtime-booking/internal/domain"
)

type PostgresShowRepository struct {
	db DBTX
}

func NewPostgresShowRepository(db DBTX) *PostgresShowRepository {
	return &PostgresShowRepository{
		db: db,
	}
}

func (p *PostgresShowRepository) Create(ctx context.Context, show *domain.Show) error {
	query := `
		INSERT INTO shows (movie_id, screen_id, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	return p.db.QueryRow(
		ctx,
		query,
		show.MovieID,
		show.ScreenID,
		show.StartTime,
		show.EndTime,
	).Scan(&show.ID, &show.CreatedAt)
}

func (p *PostgresShowRepository) GetByID(ctx context.Context, id int64) (*domain.Show, error) {
	query := `
		SELECT id, movie_id, screen_id, start_time, end_time, created_at
		FROM shows
		WHERE id = $1
	`

	var show domain.Show

	err := p.db.QueryRow(ctx, query, id).Scan(
		&show.ID,
		&show.MovieID,
		&show.ScreenID,
		&show.StartTime,
		&show.EndTime,
		&show.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("show", id)
		}

		return nil, err
	}

	return &show, nil
}

func (p *PostgresShowRepository) ListOverlapping(
	ctx context.Context,
	screenID int64,
	interval domain.Interval) ([]domain.Show, error) {

	query := `
		SELECT id, movie_id, screen_id, start_time, end_time, created_at
		FROM shows
		WHERE screen_id = $1 AND start_time < $3 AND end_time > $2
		ORDER BY start_time
	`

	return p.list(ctx, query, screenID, interval.Start, interval.End)
}

func (p *PostgresShowRepository) List(ctx context.Context, filter domain.ShowFilter) ([]domain.Show, error) {
	query := `
		SELECT s.id, s.movie_id, s.screen_id, s.start_time, s.end_time, s.created_at
		FROM shows s
		JOIN screens sc ON s.screen_id = sc.id
		JOIN theaters t ON sc.theater_id = t.id
		WHERE ($1::bigint IS NULL OR s.movie_id = $1)
			AND ($2::text IS NULL OR lower(t.city) = lower($2))
			AND ($3::timestamptz IS NULL OR s.start_time >= $3)
			AND ($4::timestamptz IS NULL OR s.start_time <= $4)
		ORDER BY s.start_time, s.id
	`

	return p.list(ctx, query, filter.MovieID, filter.City, filter.From, filter.To)
}

func (p *PostgresShowRepository) list(ctx context.Context, query string, args ...any) ([]domain.Show, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := make([]domain.Show, 0)

	for rows.Next() {
		var show domain.Show

		err := rows.Scan(
			&show.ID,
			&show.MovieID,
			&show.ScreenID,
			&show.StartTime,
			&show.EndTime,
			&show.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		shows = append(shows, show)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shows, nil
}
