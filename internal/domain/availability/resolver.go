// Package availability computes the bookable time slots for a section,
// location, and day from the layered schedule configuration and the current
// bookings. It is a pure read path over the two stores: nothing is cached,
// nothing is written.
package availability

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/Rogojang77/clinic-appointment-sub000/internal/domain/booking"
	"github.com/Rogojang77/clinic-appointment-sub000/internal/domain/schedule"
)

// ScheduleSource is the slice of the schedule store the resolver reads.
// Implemented by schedule.Repository.
type ScheduleSource interface {
	GetSectionSchedule(ctx context.Context, sectionID uuid.UUID, location string) (*schedule.SectionSchedule, error)
	GetLocationSchedule(ctx context.Context, location string) (*schedule.LocationSchedule, error)
}

// BookingSource answers which candidate times are already booked.
// Implemented by booking.Repository.
type BookingSource interface {
	FindBookedTimes(ctx context.Context, q booking.BookedTimesQuery) (map[string]bool, error)
}

// Request carries the resolution key. SectionID and Date are optional;
// legacy test-type names are resolved to a SectionID before this point.
type Request struct {
	SectionID *uuid.UUID
	Location  string
	Day       schedule.Weekday
	Date      string // "YYYY-MM-DD", empty to skip conflict marking
}

// Resolver runs the schedule priority cascade. It holds no mutable state
// and is safe for concurrent use.
type Resolver struct {
	schedules ScheduleSource
	bookings  BookingSource
	fallback  FallbackTable

	// LegacyLocationScoping controls conflict checking when no section is
	// given: on, any section's booking at the location blocks the time;
	// off, only bookings that carry no section do. On matches the
	// historical behavior, so it is the default.
	LegacyLocationScoping bool
}

func NewResolver(schedules ScheduleSource, bookings BookingSource) *Resolver {
	return &Resolver{
		schedules:             schedules,
		bookings:              bookings,
		fallback:              DefaultFallback,
		LegacyLocationScoping: true,
	}
}

// tier is one step of the cascade. The first tier whose lookup yields any
// specs wins; later tiers are never consulted.
type tier struct {
	source string
	lookup func(ctx context.Context) ([]schedule.SlotSpec, error)
}

// Resolve returns the day's slots, time-ascending, with booked times
// marked unavailable. An empty result is not an error: it means no
// schedule exists at any tier and ad-hoc time entry should be offered.
func (r *Resolver) Resolve(ctx context.Context, req Request) ([]Slot, error) {
	specs, source, err := r.runCascade(ctx, req, dateFilter(req.Date), true)
	if err != nil {
		return nil, err
	}
	if len(specs) == 0 {
		return []Slot{}, nil
	}

	slots := make([]Slot, len(specs))
	for i, spec := range specs {
		slots[i] = Slot{
			Time:        spec.Time,
			Date:        spec.Date,
			IsAvailable: true,
			IsDefault:   spec.Default,
			Source:      source,
		}
	}

	if req.Date != "" {
		if err := r.markConflicts(ctx, req, slots); err != nil {
			return nil, err
		}
	}

	// Zero-padded 24-hour times sort correctly as strings. Stable so that
	// duplicate (time, date) data, if it ever slips past the write-time
	// constraint, stays visible in store order.
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Time < slots[j].Time })
	return slots, nil
}

// CountDefaultSlots reports how many weekly-default slots the section or
// location tier configures for the day. It mirrors the cascade without the
// static fallback and without conflict marking, so capacity displays agree
// with what Resolve would return for a dateless request.
func (r *Resolver) CountDefaultSlots(ctx context.Context, location string, day schedule.Weekday, sectionID *uuid.UUID) (int, error) {
	req := Request{SectionID: sectionID, Location: location, Day: day}
	specs, _, err := r.runCascade(ctx, req, dateFilter(""), false)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, spec := range specs {
		if spec.Default {
			count++
		}
	}
	return count, nil
}

// runCascade tries the tiers in order and returns the first non-empty
// result. The counting path sets withFallback false: configured slots only,
// the hard-coded table never counts.
func (r *Resolver) runCascade(ctx context.Context, req Request, dates map[string]bool, withFallback bool) ([]schedule.SlotSpec, string, error) {
	var locationMissing bool
	tiers := []tier{
		{source: SourceSection, lookup: func(ctx context.Context) ([]schedule.SlotSpec, error) {
			if req.SectionID == nil {
				return nil, nil
			}
			sched, err := r.schedules.GetSectionSchedule(ctx, *req.SectionID, req.Location)
			if errors.Is(err, schedule.ErrNotFound) {
				return nil, nil
			}
			if err != nil {
				return nil, err
			}
			return filterSpecs(sched.Days[req.Day], dates), nil
		}},
		{source: SourceLocation, lookup: func(ctx context.Context) ([]schedule.SlotSpec, error) {
			sched, err := r.schedules.GetLocationSchedule(ctx, req.Location)
			if errors.Is(err, schedule.ErrNotFound) {
				locationMissing = true
				return nil, nil
			}
			if err != nil {
				return nil, err
			}
			return filterSpecs(sched.Days[req.Day], dates), nil
		}},
	}
	if withFallback {
		// The hard-coded table applies only when the location has no
		// schedule record at all, not when its day is merely empty.
		tiers = append(tiers, tier{source: SourceLocation, lookup: func(_ context.Context) ([]schedule.SlotSpec, error) {
			if !locationMissing {
				return nil, nil
			}
			var specs []schedule.SlotSpec
			for _, t := range r.fallback.Slots(req.Location, req.Day) {
				specs = append(specs, schedule.NewDefaultSlot(t))
			}
			return specs, nil
		}})
	}

	for _, t := range tiers {
		specs, err := t.lookup(ctx)
		if err != nil {
			return nil, "", err
		}
		if len(specs) > 0 {
			return specs, t.source, nil
		}
	}
	return nil, "", nil
}

func (r *Resolver) markConflicts(ctx context.Context, req Request, slots []Slot) error {
	times := make([]string, len(slots))
	for i, s := range slots {
		times[i] = s.Time
	}
	booked, err := r.bookings.FindBookedTimes(ctx, booking.BookedTimesQuery{
		Location:   req.Location,
		SectionID:  req.SectionID,
		AnySection: r.LegacyLocationScoping,
		Date:       req.Date,
		Times:      times,
	})
	if err != nil {
		return err
	}
	for i := range slots {
		slots[i].IsAvailable = !booked[slots[i].Time]
	}
	return nil
}

// dateFilter builds the set of stored dates a request admits: always the
// weekly defaults, plus the request's own date so overrides for that day
// appear alongside the defaults rather than instead of them.
func dateFilter(date string) map[string]bool {
	dates := map[string]bool{schedule.DefaultDate: true}
	if date != "" {
		dates[date] = true
	}
	return dates
}

// filterSpecs keeps the entries whose date is admitted. Duplicate
// (time, date) pairs are passed through untouched; rejecting them is the
// write path's job.
func filterSpecs(specs []schedule.SlotSpec, dates map[string]bool) []schedule.SlotSpec {
	var out []schedule.SlotSpec
	for _, spec := range specs {
		if dates[spec.Date] {
			out = append(out, spec)
		}
	}
	return out
}
