package domain

import (
	"context"
	"time"
)

type Show struct {
	ID        int64
	MovieID   int64
	ScreenID  int64
	StartTime time.Time
	EndTime   time.Time
	CreatedAt time.Time
}

// NewShow derives the end time from the movie duration.
func NewShow(movie *Movie, screen *Screen, start time.Time) Show {
	return Show{
		MovieID:   movie.ID,
		ScreenID:  screen.ID,
		StartTime: start,
		EndTime:   start.Add(time.Duration(movie.DurationMins) * time.Minute),
	}
}

func (s Show) Interval() Interval {
	return Interval{Start: s.StartTime, End: s.EndTime}
}

// Interval is a half-open time window [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

type ShowFilter struct {
	MovieID *int64
	City    *string
	From    *time.Time
	To      *time.Time
}

type ShowRepository interface {
	Create(ctx context.Context, show *Show) error
	GetByID(ctx context.Context, id int64) (*Show, error)
	// ListOverlapping returns the shows of a screen whose window intersects the interval.
	ListOverlapping(ctx context.Context, screenID int64, interval Interval) ([]Show, error)
	List(ctx context.Context, filter ShowFilter) ([]Show, error)
}
