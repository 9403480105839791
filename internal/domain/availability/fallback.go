package availability

import "github.com/Rogojang77/clinic-appointment-sub000/internal/domain/schedule"

// FallbackTable is the hard-coded last-resort schedule, consulted only when
// a location has no schedule record at all. Every entry behaves as a weekly
// default; there is no override concept at this tier.
type FallbackTable map[string]map[schedule.Weekday][]string

// Slots returns the fallback times for a location and weekday, nil when the
// table has nothing for that pair.
func (t FallbackTable) Slots(location string, day schedule.Weekday) []string {
	return t[location][day]
}

var weekdayHours = []string{
	"08:00", "08:30", "09:00", "09:30", "10:00", "10:30",
	"11:00", "11:30", "12:00", "12:30", "13:00", "13:30",
	"14:00", "14:30", "15:00", "15:30",
}

var saturdayHours = []string{
	"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
}

// DefaultFallback covers the clinics that predate configurable schedules.
var DefaultFallback = FallbackTable{
	"Oradea": {
		schedule.Monday:    weekdayHours,
		schedule.Tuesday:   weekdayHours,
		schedule.Wednesday: weekdayHours,
		schedule.Thursday:  weekdayHours,
		schedule.Friday:    weekdayHours,
		schedule.Saturday:  saturdayHours,
	},
	"Cluj": {
		schedule.Monday:    weekdayHours,
		schedule.Tuesday:   weekdayHours,
		schedule.Wednesday: weekdayHours,
		schedule.Thursday:  weekdayHours,
		schedule.Friday:    weekdayHours,
	},
	"Bucuresti": {
		schedule.Monday:    weekdayHours,
		schedule.Tuesday:   weekdayHours,
		schedule.Wednesday: weekdayHours,
		schedule.Thursday:  weekdayHours,
		schedule.Friday:    weekdayHours,
		schedule.Saturday:  saturdayHours,
	},
}
