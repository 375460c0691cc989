package mocks

import (
	"context"

	"github.com/metinatakli/showtime-booking/internal/domain"
	"github.com/metinatakli/showtime-booking/internal/schedule"
)

type MockShowService struct {
	CreateShowFunc    func(ctx context.Context, req schedule.CreateShowRequest) (*schedule.ShowView, error)
	GetShowFunc       func(ctx context.Context, showID int64) (*schedule.ShowView, error)
	ListShowsFunc     func(ctx context.Context, filter domain.ShowFilter) ([]schedule.ShowView, error)
	ListAvailableFunc func(ctx context.Context, showID int64) ([]domain.SeatSlot, error)
}

func (m *MockShowService) CreateShow(ctx context.Context, req schedule.CreateShowRequest) (*schedule.ShowView, error) {
	return m.CreateShowFunc(ctx, req)
}

func (m *MockShowService) GetShow(ctx context.Context, showID int64) (*schedule.ShowView, error) {
	return m.GetShowFunc(ctx, showID)
}

func (m *MockShowService) ListShows(ctx context.Context, filter domain.ShowFilter) ([]schedule.ShowView, error) {
	return m.ListShowsFunc(ctx, filter)
}

func (m *MockShowService) ListAvailable(ctx context.Context, showID int64) ([]domain.SeatSlot, error) {
	return m.ListAvailableFunc(ctx, showID)
}
