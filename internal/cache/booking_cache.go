// Package cache keeps composed booking views in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/metinatakli/showtime-booking/internal/domain"
	"github.com/metinatakli/showtime-booking/internal/reservation"
	"github.com/redis/go-redis/v9"
)

const DefaultTTL = 10 * time.Minute

// Cancelling overwrites both keys of a booking with cancelledMarker for
// TombstoneTTL. Views are only written to absent keys, so a read that started
// before the cancel cannot put its CONFIRMED view back.
const (
	TombstoneTTL    = time.Minute
	cancelledMarker = "cancelled"
)

func bookingIDKey(id int64) string {
	return fmt.Sprintf("booking:id:%d", id)
}

func bookingNumberKey(number string) string {
	return "booking:number:" + number
}

type bookingService interface {
	ReserveAndBook(ctx context.Context, req reservation.BookingRequest) (*domain.BookingView, error)
	Cancel(ctx context.Context, bookingID int64) (*domain.BookingView, error)
	GetByID(ctx context.Context, bookingID int64) (*domain.BookingView, error)
	GetByNumber(ctx context.Context, bookingNumber string) (*domain.BookingView, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.BookingView, error)
}

// BookingService serves booking reads from Redis in front of the coordinator.
// Only confirmed bookings are cached: their seats cannot change until they
// are cancelled, and cancelling replaces the entry with a tombstone. Redis
// failures are logged and never fail a request.
type BookingService struct {
	next   bookingService
	redis  redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

func NewBookingService(next bookingService, client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *BookingService {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &BookingService{
		next:   next,
		redis:  client,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *BookingService) ReserveAndBook(ctx context.Context, req reservation.BookingRequest) (*domain.BookingView, error) {
	view, err := s.next.ReserveAndBook(ctx, req)
	if err != nil {
		return nil, err
	}

	s.store(ctx, view)

	return view, nil
}

func (s *BookingService) Cancel(ctx context.Context, bookingID int64) (*domain.BookingView, error) {
	view, err := s.next.Cancel(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	pipe := s.redis.TxPipeline()
	pipe.Set(ctx, bookingIDKey(bookingID), cancelledMarker, TombstoneTTL)
	pipe.Set(ctx, bookingNumberKey(view.Booking.BookingNumber), cancelledMarker, TombstoneTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to invalidate cached booking", "booking_id", bookingID, "error", err)
	}

	return view, nil
}

func (s *BookingService) GetByID(ctx context.Context, bookingID int64) (*domain.BookingView, error) {
	if view := s.load(ctx, bookingIDKey(bookingID)); view != nil {
		return view, nil
	}

	view, err := s.next.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	s.store(ctx, view)

	return view, nil
}

func (s *BookingService) GetByNumber(ctx context.Context, bookingNumber string) (*domain.BookingView, error) {
	if view := s.load(ctx, bookingNumberKey(bookingNumber)); view != nil {
		return view, nil
	}

	view, err := s.next.GetByNumber(ctx, bookingNumber)
	if err != nil {
		return nil, err
	}

	s.store(ctx, view)

	return view, nil
}

func (s *BookingService) ListByCustomer(ctx context.Context, customerID int64) ([]domain.BookingView, error) {
	return s.next.ListByCustomer(ctx, customerID)
}

func (s *BookingService) load(ctx context.Context, key string) *domain.BookingView {
	data, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.ErrorContext(ctx, "failed to read cached booking", "key", key, "error", err)
		}

		return nil
	}

	if string(data) == cancelledMarker {
		return nil
	}

	var view domain.BookingView

	if err := json.Unmarshal(data, &view); err != nil {
		s.logger.ErrorContext(ctx, "failed to decode cached booking", "key", key, "error", err)
		return nil
	}

	return &view
}

func (s *BookingService) store(ctx context.Context, view *domain.BookingView) {
	if view.Booking.Cancelled() {
		return
	}

	data, err := json.Marshal(view)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to encode booking", "booking_id", view.Booking.ID, "error", err)
		return
	}

	pipe := s.redis.TxPipeline()
	pipe.SetNX(ctx, bookingIDKey(view.Booking.ID), data, s.ttl)
	pipe.SetNX(ctx, bookingNumberKey(view.Booking.BookingNumber), data, s.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to cache booking", "booking_id", view.Booking.ID, "error", err)
	}
}
