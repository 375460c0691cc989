// Package schedule creates shows and their seat inventory.
package schedule

import (
	"context"
	"time"

	"github.com/metinatakli/showtime-booking/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/metinatakli/showtime-booking/internal/schedule"

type CreateShowRequest struct {
	MovieID   int64
	ScreenID  int64
	StartTime time.Time
	// PriceRule defaults to BasePrice.
	PriceRule PriceRule
}

// ShowView is a show with its catalog context. Seats holds the available
// slots and is only filled for single-show reads.
type ShowView struct {
	Show    domain.Show
	Movie   domain.Movie
	Screen  domain.Screen
	Theater domain.Theater
	Seats   []domain.SeatSlot
}

type Scheduler struct {
	uow    domain.UnitOfWork
	tracer trace.Tracer
}

func NewScheduler(uow domain.UnitOfWork) *Scheduler {
	return &Scheduler{
		uow:    uow,
		tracer: otel.Tracer(tracerName),
	}
}

// CreateShow inserts a show and materializes its inventory in one unit of work.
// Creations on the same screen are serialized by the screen lock.
func (s *Scheduler) CreateShow(ctx context.Context, req CreateShowRequest) (*ShowView, error) {
	ctx, span := s.tracer.Start(ctx, "Scheduler.CreateShow", trace.WithAttributes(
		attribute.Int64("movie.id", req.MovieID),
		attribute.Int64("screen.id", req.ScreenID),
	))
	defer span.End()

	var view *ShowView

	err := s.uow.Do(ctx, func(ctx context.Context, tx domain.Tx) error {
		screen, err := tx.Catalog().LockScreen(ctx, req.ScreenID)
		if err != nil {
			return err
		}

		movie, err := tx.Catalog().GetMovie(ctx, req.MovieID)
		if err != nil {
			return err
		}

		theater, err := tx.Catalog().GetTheater(ctx, screen.TheaterID)
		if err != nil {
			return err
		}

		show := domain.NewShow(movie, screen, req.StartTime)

		if err := CheckNoOverlap(ctx, tx, screen.ID, show.Interval()); err != nil {
			return err
		}

		if err := tx.Shows().Create(ctx, &show); err != nil {
			return err
		}

		seats, err := tx.Catalog().ListSeatsByScreen(ctx, screen.ID)
		if err != nil {
			return err
		}

		slots, err := Materialize(ctx, tx, &show, seats, req.PriceRule)
		if err != nil {
			return err
		}

		view = &ShowView{
			Show:    show,
			Movie:   *movie,
			Screen:  *screen,
			Theater: *theater,
			Seats:   withTemplates(slots, seats),
		}

		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int64("show.id", view.Show.ID))

	return view, nil
}

func (s *Scheduler) GetShow(ctx context.Context, showID int64) (*ShowView, error) {
	var view *ShowView

	err := s.uow.ReadOnly(ctx, func(ctx context.Context, tx domain.Tx) error {
		show, err := tx.Shows().GetByID(ctx, showID)
		if err != nil {
			return err
		}

		view, err = composeShow(ctx, tx, show)
		if err != nil {
			return err
		}

		view.Seats, err = tx.Seats().ListAvailableByShow(ctx, showID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

func (s *Scheduler) ListShows(ctx context.Context, filter domain.ShowFilter) ([]ShowView, error) {
	var views []ShowView

	err := s.uow.ReadOnly(ctx, func(ctx context.Context, tx domain.Tx) error {
		shows, err := tx.Shows().List(ctx, filter)
		if err != nil {
			return err
		}

		views = make([]ShowView, 0, len(shows))

		for i := range shows {
			view, err := composeShow(ctx, tx, &shows[i])
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

// ListAvailable returns the AVAILABLE slots of a show ordered by slot id.
func (s *Scheduler) ListAvailable(ctx context.Context, showID int64) ([]domain.SeatSlot, error) {
	var slots []domain.SeatSlot

	err := s.uow.ReadOnly(ctx, func(ctx context.Context, tx domain.Tx) error {
		if _, err := tx.Shows().GetByID(ctx, showID); err != nil {
			return err
		}

		var err error
		slots, err = tx.Seats().ListAvailableByShow(ctx, showID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return slots, nil
}

func composeShow(ctx context.Context, tx domain.Tx, show *domain.Show) (*ShowView, error) {
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

	return &ShowView{
		Show:    *show,
		Movie:   *movie,
		Screen:  *screen,
		Theater: *theater,
	}, nil
}

func withTemplates(slots []domain.SeatSlot, seats []domain.Seat) []domain.SeatSlot {
	byID := make(map[int64]domain.Seat, len(seats))
	for _, seat := range seats {
		byID[seat.ID] = seat
	}

	for i := range slots {
		seat := byID[slots[i].SeatID]
		slots[i].Seat = &seat
	}

	return slots
}
