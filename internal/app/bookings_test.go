package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/showtime-booking/api"
	"github.com/metinatakli/showtime-booking/internal/domain"
	"github.com/metinatakli/showtime-booking/internal/mocks"
	"github.com/metinatakli/showtime-booking/internal/reservation"
	"github.com/metinatakli/showtime-booking/internal/validator"
	"github.com/shopspring/decimal"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testBookingView(status domain.BookingStatus) *domain.BookingView {
	start := testNow.Add(48 * time.Hour)
	paymentID := int64(7)

	seatStatus := domain.SeatStatusBooked
	paymentStatus := domain.PaymentStatusSuccess
	if status == domain.BookingStatusCancelled {
		seatStatus = domain.SeatStatusAvailable
		paymentStatus = domain.PaymentStatusRefunded
	}

	return &domain.BookingView{
		Booking: domain.Booking{
			ID:            1,
			BookingNumber: "BK-ABCDEFGHIJKLMNOPQRSTUVWXYZ",
			CustomerID:    3,
			ShowID:        5,
			Status:        status,
			TotalAmount:   decimal.RequireFromString("25.5"),
			PaymentID:     &paymentID,
			CreatedAt:     testNow,
			UpdatedAt:     testNow,
		},
		Customer: domain.Customer{ID: 3, Name: "Ada Lovelace", Email: "ada@example.com"},
		Show: domain.Show{
			ID:        5,
			MovieID:   2,
			ScreenID:  4,
			StartTime: start,
			EndTime:   start.Add(2 * time.Hour),
		},
		Movie:   domain.Movie{ID: 2, Title: "The Matrix", DurationMins: 120},
		Screen:  domain.Screen{ID: 4, TheaterID: 1, Name: "Screen 1", TotalSeats: 20},
		Theater: domain.Theater{ID: 1, Name: "Grand Cinema", City: "Istanbul"},
		Seats: []domain.BookedSeat{
			{
				ShowSeatID: 11,
				Seat:       domain.Seat{ID: 21, SeatNumber: "A1", SeatType: "REGULAR"},
				Price:      decimal.RequireFromString("10"),
				Status:     seatStatus,
			},
			{
				ShowSeatID: 12,
				Seat:       domain.Seat{ID: 22, SeatNumber: "B1", SeatType: "PREMIUM"},
				Price:      decimal.RequireFromString("15.5"),
				Status:     seatStatus,
			},
		},
		Payment: &domain.Payment{
			ID:            paymentID,
			TransactionID: "0b6b1c1e-5e2f-4f43-9d3a-8d2f6f1f0c11",
			Amount:        decimal.RequireFromString("25.5"),
			Method:        domain.PaymentMethodCard,
			Status:        paymentStatus,
			PaidAt:        testNow,
		},
	}
}

func testApiBooking(status api.BookingStatus) *api.Booking {
	start := testNow.Add(48 * time.Hour)

	seatStatus, paymentStatus := api.BOOKED, api.SUCCESS
	if status == api.CANCELLED {
		seatStatus, paymentStatus = api.AVAILABLE, api.REFUNDED
	}

	return &api.Booking{
		Id:            1,
		BookingNumber: "BK-ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		Status:        status,
		TotalAmount:   "25.50",
		Customer:      api.Customer{Id: 3, Name: "Ada Lovelace", Email: "ada@example.com"},
		Show: api.ShowSummary{
			Id:          5,
			MovieId:     2,
			MovieTitle:  "The Matrix",
			TheaterId:   1,
			TheaterName: "Grand Cinema",
			City:        "Istanbul",
			ScreenId:    4,
			ScreenName:  "Screen 1",
			StartTime:   start,
			EndTime:     start.Add(2 * time.Hour),
		},
		Seats: []api.BookedSeat{
			{Id: 11, SeatNumber: "A1", SeatType: "REGULAR", Price: "10.00", Status: seatStatus},
			{Id: 12, SeatNumber: "B1", SeatType: "PREMIUM", Price: "15.50", Status: seatStatus},
		},
		Payment: &api.Payment{
			Id:            7,
			TransactionId: "0b6b1c1e-5e2f-4f43-9d3a-8d2f6f1f0c11",
			Amount:        "25.50",
			Method:        api.CARD,
			Status:        paymentStatus,
			PaidAt:        testNow,
		},
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
}

func TestCreateBookingHandler(t *testing.T) {
	validRequest := api.CreateBookingRequest{
		CustomerId:    3,
		ShowId:        5,
		SeatIds:       []int64{11, 12},
		PaymentMethod: "CARD",
	}

	tests := []struct {
		name               string
		body               any
		reserveAndBookFunc func(context.Context, reservation.BookingRequest) (*domain.BookingView, error)
		wantStatus         int
		wantErrMessage     string
		wantRetryAfter     string
		wantResponse       *api.Booking
	}{
		{
			name: "successful booking",
			body: validRequest,
			reserveAndBookFunc: func(ctx context.Context, req reservation.BookingRequest) (*domain.BookingView, error) {
				want := reservation.BookingRequest{
					ShowID:        5,
					CustomerID:    3,
					SeatIDs:       []int64{11, 12},
					PaymentMethod: domain.PaymentMethodCard,
				}
				if diff := cmp.Diff(want, req); diff != "" {
					return nil, fmt.Errorf("unexpected request (-want +got):\n%s", diff)
				}

				return testBookingView(domain.BookingStatusConfirmed), nil
			},
			wantStatus:   http.StatusCreated,
			wantResponse: testApiBooking(api.CONFIRMED),
		},
		{
			name:           "malformed json",
			body:           `{"customerId": 3,`,
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "body contains badly-formed JSON",
		},
		{
			name:           "unknown field",
			body:           `{"customerId": 3, "showId": 5, "seatIds": [1], "paymentMethod": "CARD", "coupon": "X"}`,
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: `body contains unknown key "coupon"`,
		},
		{
			name: "validation error - empty seat list",
			body: api.CreateBookingRequest{
				CustomerId:    3,
				ShowId:        5,
				SeatIds:       []int64{},
				PaymentMethod: "CARD",
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: fmt.Sprintf(validator.ErrMinItems, "1"),
		},
		{
			name: "validation error - missing show",
			body: api.CreateBookingRequest{
				CustomerId:    3,
				SeatIds:       []int64{11},
				PaymentMethod: "CARD",
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
		{
			name: "validation error - invalid payment method",
			body: api.CreateBookingRequest{
				CustomerId:    3,
				ShowId:        5,
				SeatIds:       []int64{11},
				PaymentMethod: "BARTER",
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrInvalidPayment,
		},
		{
			name: "validation error - non-positive seat id",
			body: api.CreateBookingRequest{
				CustomerId:    3,
				ShowId:        5,
				SeatIds:       []int64{11, 0},
				PaymentMethod: "CARD",
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: fmt.Sprintf(validator.ErrMinValue, "0"),
		},
		{
			name: "seat already booked",
			body: validRequest,
			reserveAndBookFunc: func(ctx context.Context, req reservation.BookingRequest) (*domain.BookingView, error) {
				return nil, &domain.SeatUnavailableError{ShowID: 5, SeatID: 11, Status: domain.SeatStatusBooked}
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: "seat 11 of show 5 is not available (status BOOKED)",
		},
		{
			name: "unknown seat",
			body: validRequest,
			reserveAndBookFunc: func(ctx context.Context, req reservation.BookingRequest) (*domain.BookingView, error) {
				return nil, domain.NewNotFoundError("seat", int64(12))
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "seat 12 not found",
		},
		{
			name: "seats busy",
			body: validRequest,
			reserveAndBookFunc: func(ctx context.Context, req reservation.BookingRequest) (*domain.BookingView, error) {
				return nil, fmt.Errorf("lock seats: %w", domain.ErrSeatsBusy)
			},
			wantStatus:     http.StatusServiceUnavailable,
			wantErrMessage: ErrSeatsBusy,
			wantRetryAfter: "1",
		},
		{
			name: "payment method rejected by the coordinator",
			body: validRequest,
			reserveAndBookFunc: func(ctx context.Context, req reservation.BookingRequest) (*domain.BookingView, error) {
				return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPaymentMethod, "GIFT_CARD")
			},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: `unsupported payment method: "GIFT_CARD"`,
		},
		{
			name: "store failure",
			body: validRequest,
			reserveAndBookFunc: func(ctx context.Context, req reservation.BookingRequest) (*domain.BookingView, error) {
				return nil, errors.New("connection reset")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.bookings = &mocks.MockBookingService{
					ReserveAndBookFunc: tt.reserveAndBookFunc,
				}
			})

			w := executeRequest(t, app, http.MethodPost, "/bookings", tt.body)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("CreateBookingHandler() status = %v, want %v", got, tt.wantStatus)
			}

			if got := w.Header().Get("Retry-After"); got != tt.wantRetryAfter {
				t.Errorf("CreateBookingHandler() Retry-After = %q, want %q", got, tt.wantRetryAfter)
			}

			if tt.wantResponse != nil {
				var response api.BookingResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				if err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantResponse, &response.Booking); diff != "" {
					t.Errorf("CreateBookingHandler() response mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestGetBookingHandler(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		getByIDFunc    func(context.Context, int64) (*domain.BookingView, error)
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.Booking
	}{
		{
			name: "existing booking",
			url:  "/bookings/1",
			getByIDFunc: func(ctx context.Context, id int64) (*domain.BookingView, error) {
				return testBookingView(domain.BookingStatusConfirmed), nil
			},
			wantStatus:   http.StatusOK,
			wantResponse: testApiBooking(api.CONFIRMED),
		},
		{
			name:           "invalid id",
			url:            "/bookings/abc",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "bookingId must be a positive integer",
		},
		{
			name:           "non-positive id",
			url:            "/bookings/0",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "bookingId must be a positive integer",
		},
		{
			name: "unknown booking",
			url:  "/bookings/99",
			getByIDFunc: func(ctx context.Context, id int64) (*domain.BookingView, error) {
				return nil, domain.NewNotFoundError("booking", id)
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "booking 99 not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.bookings = &mocks.MockBookingService{
					GetByIDFunc: tt.getByIDFunc,
				}
			})

			w := executeRequest(t, app, http.MethodGet, tt.url, nil)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("GetBookingHandler() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				var response api.BookingResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				if err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantResponse, &response.Booking); diff != "" {
					t.Errorf("GetBookingHandler() response mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestGetBookingByNumberHandler(t *testing.T) {
	tests := []struct {
		name            string
		url             string
		getByNumberFunc func(context.Context, string) (*domain.BookingView, error)
		wantStatus      int
		wantErrMessage  string
		wantResponse    *api.Booking
	}{
		{
			name: "existing booking",
			url:  "/bookings/number/BK-ABCDEFGHIJKLMNOPQRSTUVWXYZ",
			getByNumberFunc: func(ctx context.Context, number string) (*domain.BookingView, error) {
				if number != "BK-ABCDEFGHIJKLMNOPQRSTUVWXYZ" {
					return nil, fmt.Errorf("unexpected booking number %q", number)
				}
				return testBookingView(domain.BookingStatusConfirmed), nil
			},
			wantStatus:   http.StatusOK,
			wantResponse: testApiBooking(api.CONFIRMED),
		},
		{
			name: "unknown booking number",
			url:  "/bookings/number/BK-NOPE",
			getByNumberFunc: func(ctx context.Context, number string) (*domain.BookingView, error) {
				return nil, domain.NewNotFoundError("booking", number)
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "booking BK-NOPE not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.bookings = &mocks.MockBookingService{
					GetByNumberFunc: tt.getByNumberFunc,
				}
			})

			w := executeRequest(t, app, http.MethodGet, tt.url, nil)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("GetBookingByNumberHandler() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				var response api.BookingResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				if err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantResponse, &response.Booking); diff != "" {
					t.Errorf("GetBookingByNumberHandler() response mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestCancelBookingHandler(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		url            string
		cancelFunc     func(context.Context, int64) (*domain.BookingView, error)
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.Booking
	}{
		{
			name:   "successful cancellation",
			method: http.MethodPut,
			url:    "/bookings/1/cancel",
			cancelFunc: func(ctx context.Context, id int64) (*domain.BookingView, error) {
				return testBookingView(domain.BookingStatusCancelled), nil
			},
			wantStatus:   http.StatusOK,
			wantResponse: testApiBooking(api.CANCELLED),
		},
		{
			name:   "unknown booking",
			method: http.MethodPut,
			url:    "/bookings/42/cancel",
			cancelFunc: func(ctx context.Context, id int64) (*domain.BookingView, error) {
				return nil, domain.NewNotFoundError("booking", id)
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "booking 42 not found",
		},
		{
			name:   "seats busy",
			method: http.MethodPut,
			url:    "/bookings/1/cancel",
			cancelFunc: func(ctx context.Context, id int64) (*domain.BookingView, error) {
				return nil, domain.ErrSeatsBusy
			},
			wantStatus:     http.StatusServiceUnavailable,
			wantErrMessage: ErrSeatsBusy,
		},
		{
			name:           "method not allowed",
			method:         http.MethodGet,
			url:            "/bookings/1/cancel",
			wantStatus:     http.StatusMethodNotAllowed,
			wantErrMessage: ErrMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.bookings = &mocks.MockBookingService{
					CancelFunc: tt.cancelFunc,
				}
			})

			w := executeRequest(t, app, tt.method, tt.url, nil)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("CancelBookingHandler() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				var response api.BookingResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				if err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantResponse, &response.Booking); diff != "" {
					t.Errorf("CancelBookingHandler() response mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestGetCustomerBookingsHandler(t *testing.T) {
	tests := []struct {
		name               string
		url                string
		listByCustomerFunc func(context.Context, int64) ([]domain.BookingView, error)
		wantStatus         int
		wantErrMessage     string
		wantResponse       *api.BookingsResponse
	}{
		{
			name: "customer with bookings",
			url:  "/customers/3/bookings",
			listByCustomerFunc: func(ctx context.Context, id int64) ([]domain.BookingView, error) {
				return []domain.BookingView{*testBookingView(domain.BookingStatusConfirmed)}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.BookingsResponse{
				Bookings: []api.Booking{*testApiBooking(api.CONFIRMED)},
			},
		},
		{
			name: "customer without bookings",
			url:  "/customers/3/bookings",
			listByCustomerFunc: func(ctx context.Context, id int64) ([]domain.BookingView, error) {
				return nil, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.BookingsResponse{
				Bookings: []api.Booking{},
			},
		},
		{
			name: "unknown customer",
			url:  "/customers/8/bookings",
			listByCustomerFunc: func(ctx context.Context, id int64) ([]domain.BookingView, error) {
				return nil, domain.NewNotFoundError("customer", id)
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "customer 8 not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.bookings = &mocks.MockBookingService{
					ListByCustomerFunc: tt.listByCustomerFunc,
				}
			})

			w := executeRequest(t, app, http.MethodGet, tt.url, nil)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("GetCustomerBookingsHandler() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				var response api.BookingsResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				if err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantResponse, &response); diff != "" {
					t.Errorf("GetCustomerBookingsHandler() response mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}
