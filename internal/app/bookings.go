package app

import (
	"net/http"

	"github.com/metinatakli/showtime-booking/api"
	"github.com/metinatakli/showtime-booking/internal/domain"
	"github.com/metinatakli/showtime-booking/internal/reservation"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

func (app *Application) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateBookingHandlerJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	view, err := app.bookings.ReserveAndBook(r.Context(), reservation.BookingRequest{
		ShowID:        input.ShowId,
		CustomerID:    input.CustomerId,
		SeatIDs:       input.SeatIds,
		PaymentMethod: domain.PaymentMethod(input.PaymentMethod),
	})
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("booking created",
		"booking_id", view.Booking.ID,
		"booking_number", view.Booking.BookingNumber)

	resp := api.BookingResponse{
		Booking: toApiBooking(view),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingHandler(w http.ResponseWriter, r *http.Request, bookingID api.BookingId) {
	err := checkID("bookingId", bookingID)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	view, err := app.bookings.GetByID(r.Context(), bookingID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	app.writeBooking(w, r, view)
}

func (app *Application) GetBookingByNumberHandler(w http.ResponseWriter, r *http.Request, bookingNumber string) {
	view, err := app.bookings.GetByNumber(r.Context(), bookingNumber)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	app.writeBooking(w, r, view)
}

func (app *Application) CancelBookingHandler(w http.ResponseWriter, r *http.Request, bookingID api.BookingId) {
	err := checkID("bookingId", bookingID)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	view, err := app.bookings.Cancel(r.Context(), bookingID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	app.writeBooking(w, r, view)
}

func (app *Application) GetCustomerBookingsHandler(w http.ResponseWriter, r *http.Request, customerID int64) {
	err := checkID("customerId", customerID)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	views, err := app.bookings.ListByCustomer(r.Context(), customerID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	resp := api.BookingsResponse{
		Bookings: make([]api.Booking, len(views)),
	}

	for i := range views {
		resp.Bookings[i] = toApiBooking(&views[i])
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) writeBooking(w http.ResponseWriter, r *http.Request, view *domain.BookingView) {
	resp := api.BookingResponse{
		Booking: toApiBooking(view),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiBooking(view *domain.BookingView) api.Booking {
	booking := api.Booking{
		Id:            view.Booking.ID,
		BookingNumber: view.Booking.BookingNumber,
		Status:        api.BookingStatus(view.Booking.Status),
		TotalAmount:   money(view.Booking.TotalAmount),
		Customer: api.Customer{
			Id:          view.Customer.ID,
			Name:        view.Customer.Name,
			Email:       openapi_types.Email(view.Customer.Email),
			PhoneNumber: view.Customer.PhoneNumber,
		},
		Show: api.ShowSummary{
			Id:          view.Show.ID,
			MovieId:     view.Movie.ID,
			MovieTitle:  view.Movie.Title,
			TheaterId:   view.Theater.ID,
			TheaterName: view.Theater.Name,
			City:        view.Theater.City,
			ScreenId:    view.Screen.ID,
			ScreenName:  view.Screen.Name,
			StartTime:   view.Show.StartTime,
			EndTime:     view.Show.EndTime,
		},
		Seats:     make([]api.BookedSeat, len(view.Seats)),
		CreatedAt: view.Booking.CreatedAt,
		UpdatedAt: view.Booking.UpdatedAt,
	}

	for i, v := range view.Seats {
		booking.Seats[i] = api.BookedSeat{
			Id:         v.ShowSeatID,
			SeatNumber: v.Seat.SeatNumber,
			SeatType:   v.Seat.SeatType,
			Price:      money(v.Price),
			Status:     api.SeatStatus(v.Status),
		}
	}

	if view.Payment != nil {
		booking.Payment = &api.Payment{
			Id:            view.Payment.ID,
			TransactionId: view.Payment.TransactionID,
			Amount:        money(view.Payment.Amount),
			Method:        api.PaymentMethod(view.Payment.Method),
			Status:        api.PaymentStatus(view.Payment.Status),
			PaidAt:        view.Payment.PaidAt,
		}
	}

	return booking
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
