package mocks

import (
	"context"

	"github.com/metinatakli/showtime-booking/internal/domain"
	"github.com/metinatakli/showtime-booking/internal/reservation"
)

type MockBookingService struct {
	ReserveAndBookFunc func(ctx context.Context, req reservation.BookingRequest) (*domain.BookingView, error)
	CancelFunc         func(ctx context.Context, bookingID int64) (*domain.BookingView, error)
	GetByIDFunc        func(ctx context.Context, bookingID int64) (*domain.BookingView, error)
	GetByNumberFunc    func(ctx context.Context, bookingNumber string) (*domain.BookingView, error)
	ListByCustomerFunc func(ctx context.Context, customerID int64) ([]domain.BookingView, error)
}

func (m *MockBookingService) ReserveAndBook(
	ctx context.Context,
	req reservation.BookingRequest) (*domain.BookingView, error) {

	return m.ReserveAndBookFunc(ctx, req)
}

func (m *MockBookingService) Cancel(ctx context.Context, bookingID int64) (*domain.BookingView, error) {
	return m.CancelFunc(ctx, bookingID)
}

func (m *MockBookingService) GetByID(ctx context.Context, bookingID int64) (*domain.BookingView, error) {
	return m.GetByIDFunc(ctx, bookingID)
}

func (m *MockBookingService) GetByNumber(ctx context.Context, bookingNumber string) (*domain.BookingView, error) {
	return m.GetByNumberFunc(ctx, bookingNumber)
}

func (m *MockBookingService) ListByCustomer(ctx context.Context, customerID int64) ([]domain.BookingView, error) {
	return m.ListByCustomerFunc(ctx, customerID)
}
