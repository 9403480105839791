package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no booking matches the lookup key.
var ErrNotFound = errors.New("booking not found")

// ErrConflict is returned when an active booking already holds the same
// (location, section, date, time) slot.
var ErrConflict = errors.New("slot already booked")

// BookedTimesQuery asks which of Times are taken by an active booking on
// Date at Location. SectionID set means section-scoped matching; SectionID
// nil with AnySection true matches bookings of every section at the
// location, and with AnySection false only bookings that carry no section.
type BookedTimesQuery struct {
	Location   string
	SectionID  *uuid.UUID
	AnySection bool
	Date       string
	Times      []string
}

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	ListByDay(ctx context.Context, location, date string, limit, offset int) ([]*Booking, int, error)
	// FindBookedTimes returns the subset of q.Times that are booked,
	// keyed by time string.
	FindBookedTimes(ctx context.Context, q BookedTimesQuery) (map[string]bool, error)
}
