package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Rogojang77/clinic-appointment-sub000/pkg/timegrid"
)

type Service struct {
	bookings Repository
}

func NewService(bookings Repository) *Service {
	return &Service{bookings: bookings}
}

// Create books a slot. Overlap detection is left to the store's uniqueness
// constraint on active bookings, so two concurrent requests for the same
// slot resolve to one ErrConflict instead of a double booking.
func (s *Service) Create(ctx context.Context, b *Booking) error {
	if b.Location == "" {
		return fmt.Errorf("location is required")
	}
	if b.PatientName == "" {
		return fmt.Errorf("patient_name is required")
	}
	if _, err := time.Parse("2006-01-02", b.Date); err != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", b.Date)
	}
	if _, err := timegrid.ParseMinutes(b.Time); err != nil {
		return err
	}
	b.Status = StatusBooked
	return s.bookings.Create(ctx, b)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	return s.bookings.Cancel(ctx, id)
}

func (s *Service) ListByDay(ctx context.Context, location, date string, limit, offset int) ([]*Booking, int, error) {
	if location == "" {
		return nil, 0, fmt.Errorf("location is required")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, 0, fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
	}
	return s.bookings.ListByDay(ctx, location, date, limit, offset)
}
