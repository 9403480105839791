package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Rogojang77/clinic-appointment-sub000/pkg/timegrid"
)

type Service struct {
	schedules Repository
}

func NewService(schedules Repository) *Service {
	return &Service{schedules: schedules}
}

// SlotInput is one slot as submitted by an administrator. An empty Date
// means a weekly default.
type SlotInput struct {
	Time string `json:"time"`
	Date string `json:"date,omitempty"`
}

// RangeInput expands into default slots from Start to End inclusive,
// stepping by the schedule's slot interval.
type RangeInput struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayInput replaces one weekday's slot list. Explicit slots and a range
// may be combined; the range always expands to defaults.
type DayInput struct {
	Slots []SlotInput `json:"slots"`
	Range *RangeInput `json:"range,omitempty"`
}

func (s *Service) SetSectionDay(ctx context.Context, sectionID uuid.UUID, location string, day Weekday, interval int, in DayInput) ([]SlotSpec, error) {
	if location == "" {
		return nil, fmt.Errorf("location is required")
	}
	if interval == 0 {
		interval = DefaultSlotInterval
	}
	slots, err := buildSlots(in, interval)
	if err != nil {
		return nil, err
	}
	if err := s.schedules.ReplaceSectionDay(ctx, sectionID, location, day, interval, slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (s *Service) SetLocationDay(ctx context.Context, location string, day Weekday, in DayInput) ([]SlotSpec, error) {
	if location == "" {
		return nil, fmt.Errorf("location is required")
	}
	slots, err := buildSlots(in, DefaultSlotInterval)
	if err != nil {
		return nil, err
	}
	if err := s.schedules.ReplaceLocationDay(ctx, location, day, slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (s *Service) GetSectionSchedule(ctx context.Context, sectionID uuid.UUID, location string) (*SectionSchedule, error) {
	return s.schedules.GetSectionSchedule(ctx, sectionID, location)
}

func (s *Service) GetLocationSchedule(ctx context.Context, location string) (*LocationSchedule, error) {
	return s.schedules.GetLocationSchedule(ctx, location)
}

func (s *Service) ClearSectionDay(ctx context.Context, sectionID uuid.UUID, location string, day Weekday) error {
	return s.schedules.DeleteSectionDay(ctx, sectionID, location, day)
}

// buildSlots validates and normalizes a day submission. Every time must
// parse as "HH:MM"; a non-empty date must be a real calendar date; and no
// two entries may share the same (time, date) pair.
func buildSlots(in DayInput, interval int) ([]SlotSpec, error) {
	var slots []SlotSpec
	for _, raw := range in.Slots {
		if _, err := timegrid.ParseMinutes(raw.Time); err != nil {
			return nil, err
		}
		switch raw.Date {
		case "", DefaultDate:
			slots = append(slots, NewDefaultSlot(raw.Time))
		default:
			if _, err := time.Parse("2006-01-02", raw.Date); err != nil {
				return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD", raw.Date)
			}
			slots = append(slots, NewOverrideSlot(raw.Time, raw.Date))
		}
	}
	if in.Range != nil {
		times, err := timegrid.Range(in.Range.Start, in.Range.End, clampInterval(interval))
		if err != nil {
			return nil, err
		}
		for _, t := range times {
			slots = append(slots, NewDefaultSlot(t))
		}
	}

	seen := make(map[SlotSpec]bool, len(slots))
	for _, spec := range slots {
		key := SlotSpec{Time: spec.Time, Date: spec.Date}
		if seen[key] {
			return nil, fmt.Errorf("duplicate slot %s on %s", spec.Time, spec.Date)
		}
		seen[key] = true
	}
	return slots, nil
}

func clampInterval(interval int) int {
	if interval < timegrid.MinInterval {
		return timegrid.MinInterval
	}
	if interval > timegrid.MaxInterval {
		return timegrid.MaxInterval
	}
	return interval
}
