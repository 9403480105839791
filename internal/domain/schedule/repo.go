package schedule

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no schedule record exists for the lookup key.
// An existing schedule with an empty day is not ErrNotFound.
var ErrNotFound = errors.New("schedule not found")

type Repository interface {
	// GetSectionSchedule loads the full weekly schedule for one
	// (section, location) pair, or ErrNotFound if none was ever configured.
	GetSectionSchedule(ctx context.Context, sectionID uuid.UUID, location string) (*SectionSchedule, error)
	// GetLocationSchedule loads the location-wide weekly schedule, or
	// ErrNotFound if the location has no record at all.
	GetLocationSchedule(ctx context.Context, location string) (*LocationSchedule, error)

	// ReplaceSectionDay swaps out one weekday's slot list, creating the
	// schedule record on first write.
	ReplaceSectionDay(ctx context.Context, sectionID uuid.UUID, location string, day Weekday, interval int, slots []SlotSpec) error
	ReplaceLocationDay(ctx context.Context, location string, day Weekday, slots []SlotSpec) error
	// DeleteSectionDay clears one weekday. The schedule record itself stays.
	DeleteSectionDay(ctx context.Context, sectionID uuid.UUID, location string, day Weekday) error
}
