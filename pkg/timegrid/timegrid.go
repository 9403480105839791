// Package timegrid generates evenly spaced "HH:MM" time-of-day grids.
// It is used when a day's slot list is authored from a time range; the
// availability read path never calls it.
package timegrid

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MinInterval and MaxInterval bound the step accepted by Range.
	MinInterval = 5
	MaxInterval = 60
)

// Range walks from start to end inclusive, stepping by interval minutes,
// and returns each step formatted as zero-padded "HH:MM". If start is after
// end the result is empty — ranges never wrap across midnight.
func Range(start, end string, interval int) ([]string, error) {
	if interval < MinInterval || interval > MaxInterval {
		return nil, fmt.Errorf("interval must be between %d and %d minutes, got %d", MinInterval, MaxInterval, interval)
	}
	from, err := ParseMinutes(start)
	if err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}
	to, err := ParseMinutes(end)
	if err != nil {
		return nil, fmt.Errorf("end time: %w", err)
	}

	var times []string
	for m := from; m <= to; m += interval {
		times = append(times, FormatMinutes(m))
	}
	return times, nil
}

// ParseMinutes converts a "HH:MM" 24-hour string to minutes since midnight.
func ParseMinutes(hm string) (int, error) {
	parts := strings.SplitN(hm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", hm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", hm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", hm)
	}
	return h*60 + m, nil
}

// FormatMinutes converts minutes since midnight back to zero-padded "HH:MM".
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
