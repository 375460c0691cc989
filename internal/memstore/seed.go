package memstore

import (
	"fmt"

	"github.com/metinatakli/showtime-booking/internal/domain"
	"github.com/shopspring/decimal"
)

func (s *Store) AddTheater(theater domain.Theater) domain.Theater {
	theater.ID = s.nextID()

	s.update(func(d *dataset) {
		d.theaters[theater.ID] = theater
	})

	return theater
}

func (s *Store) AddScreen(screen domain.Screen) domain.Screen {
	screen.ID = s.nextID()

	s.update(func(d *dataset) {
		d.screens[screen.ID] = screen
	})

	return screen
}

func (s *Store) AddSeat(seat domain.Seat) domain.Seat {
	seat.ID = s.nextID()

	s.update(func(d *dataset) {
		d.seats[seat.ID] = seat
	})

	return seat
}

func (s *Store) AddMovie(movie domain.Movie) domain.Movie {
	movie.ID = s.nextID()

	s.update(func(d *dataset) {
		d.movies[movie.ID] = movie
	})

	return movie
}

func (s *Store) AddCustomer(customer domain.Customer) domain.Customer {
	customer.ID = s.nextID()

	s.update(func(d *dataset) {
		d.customers[customer.ID] = customer
	})

	return customer
}

// SetSeatBasePrice changes a seat template. Slots that already exist keep
// the price they were materialized with.
func (s *Store) SetSeatBasePrice(seatID int64, price decimal.Decimal) error {
	var err error

	s.update(func(d *dataset) {
		seat, ok := d.seats[seatID]
		if !ok {
			err = domain.NewNotFoundError("seat", seatID)
			return
		}

		seat.BasePrice = price
		d.seats[seatID] = seat
	})

	return err
}

// SeedDemo loads a small catalog for running the API without a database.
func (s *Store) SeedDemo() {
	theater := s.AddTheater(domain.Theater{
		Name:         "Grand Cinema",
		Address:      "12 Park Street",
		City:         "Istanbul",
		TotalScreens: 2,
	})

	for i := 1; i <= theater.TotalScreens; i++ {
		screen := s.AddScreen(domain.Screen{
			TheaterID:  theater.ID,
			Name:       fmt.Sprintf("Screen %d", i),
			TotalSeats: 20,
		})

		for _, row := range []string{"A", "B"} {
			seatType, price := "REGULAR", decimal.NewFromInt(10)
			if row == "B" {
				seatType, price = "PREMIUM", decimal.NewFromInt(15)
			}

			for n := 1; n <= 10; n++ {
				s.AddSeat(domain.Seat{
					ScreenID:   screen.ID,
					SeatNumber: fmt.Sprintf("%s%d", row, n),
					SeatType:   seatType,
					BasePrice:  price,
				})
			}
		}
	}

	s.AddMovie(domain.Movie{
		Title:        "The Matrix",
		Description:  "A hacker learns the nature of his reality.",
		Genre:        "Sci-Fi",
		Language:     "English",
		DurationMins: 136,
		ReleaseDate:  "1999-03-31",
	})

	s.AddMovie(domain.Movie{
		Title:        "Spirited Away",
		Description:  "A girl wanders into a world of spirits.",
		Genre:        "Animation",
		Language:     "Japanese",
		DurationMins: 125,
		ReleaseDate:  "2001-07-20",
	})

	s.AddCustomer(domain.Customer{
		Name:        "Ada Lovelace",
		Email:       "ada@example.com",
		PhoneNumber: "+905550000001",
	})

	s.AddCustomer(domain.Customer{
		Name:        "Alan Turing",
		Email:       "alan@example.com",
		PhoneNumber: "+905550000002",
	})
}
