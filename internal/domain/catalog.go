package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type Movie struct {
	ID           int64
	Title        string
	Description  string
	Genre        string
	Language     string
	DurationMins int
	ReleaseDate  string
	PosterUrl    string
}

type Theater struct {
	ID           int64
	Name         string
	Address      string
	City         string
	TotalScreens int
}

type Screen struct {
	ID         int64
	TheaterID  int64
	Name       string
	TotalSeats int
}

// Seat is the physical seat template of a screen.
type Seat struct {
	ID         int64
	ScreenID   int64
	SeatNumber string
	SeatType   string
	BasePrice  decimal.Decimal
}

type Customer struct {
	ID          int64
	Name        string
	Email       string
	PhoneNumber string
}

// CatalogRepository resolves the reference data owned by the catalog service.
type CatalogRepository interface {
	GetMovie(ctx context.Context, id int64) (*Movie, error)
	GetScreen(ctx context.Context, id int64) (*Screen, error)
	// LockScreen resolves a screen and serializes schedule changes on it until
	// the surrounding transaction ends.
	LockScreen(ctx context.Context, id int64) (*Screen, error)
	GetTheater(ctx context.Context, id int64) (*Theater, error)
	ListSeatsByScreen(ctx context.Context, screenID int64) ([]Seat, error)
}

type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*Customer, error)
}
