package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrRecordNotFound         = errors.New("record not found")
	ErrSeatUnavailable        = errors.New("seat(s) are not available")
	ErrShowOverlap            = errors.New("show timing overlaps with an existing show")
	ErrSeatsBusy              = errors.New("seats are busy, please retry")
	ErrInventoryExists        = errors.New("seat inventory already exists for show")
	ErrDuplicateBookingNumber = errors.New("booking number already exists")
	ErrNoSeatsRequested       = errors.New("at least one seat must be requested")
	ErrInvalidPaymentMethod   = errors.New("unsupported payment method")
)

// NotFoundError names the entity that could not be resolved.
type NotFoundError struct {
	Entity string
	ID     any
}

func NewNotFoundError(entity string, id any) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrRecordNotFound
}

// SeatUnavailableError reports the first seat that failed validation under lock.
type SeatUnavailableError struct {
	ShowID int64
	SeatID int64
	Status SeatStatus
}

func (e *SeatUnavailableError) Error() string {
	return fmt.Sprintf("seat %d of show %d is not available (status %s)", e.SeatID, e.ShowID, e.Status)
}

func (e *SeatUnavailableError) Unwrap() error {
	return ErrSeatUnavailable
}

type OverlapError struct {
	ScreenID          int64
	ConflictingShowID int64
	Start             time.Time
	End               time.Time
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf(
		"show on screen %d from %s to %s overlaps with show %d",
		e.ScreenID,
		e.Start.Format(time.RFC3339),
		e.End.Format(time.RFC3339),
		e.ConflictingShowID,
	)
}

func (e *OverlapError) Unwrap() error {
	return ErrShowOverlap
}
