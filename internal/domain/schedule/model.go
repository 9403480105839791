package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Weekday identifies a day of the week, Monday-first. It is stored as a
// smallint and only converted to a locale name at the API boundary.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var englishNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Romanian day names as the legacy clients send them, diacritics stripped.
var romanianNames = [...]string{"Luni", "Marti", "Miercuri", "Joi", "Vineri", "Sambata", "Duminica"}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return englishNames[d]
}

// RomanianName returns the legacy Romanian spelling for d.
func (d Weekday) RomanianName() string {
	if d < Monday || d > Sunday {
		return ""
	}
	return romanianNames[d]
}

var weekdayByName = func() map[string]Weekday {
	m := make(map[string]Weekday, 14)
	for d := Monday; d <= Sunday; d++ {
		m[strings.ToLower(englishNames[d])] = d
		m[strings.ToLower(romanianNames[d])] = d
	}
	return m
}()

// ParseWeekday maps an English or Romanian day name to its Weekday.
// Matching is case-insensitive.
func ParseWeekday(name string) (Weekday, error) {
	d, ok := weekdayByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", name)
	}
	return d, nil
}

// MarshalText renders the English name so WeekMap keys stay readable in JSON.
func (d Weekday) MarshalText() ([]byte, error) {
	if d < Monday || d > Sunday {
		return nil, fmt.Errorf("invalid weekday %d", int(d))
	}
	return []byte(englishNames[d]), nil
}

func (d *Weekday) UnmarshalText(text []byte) error {
	parsed, err := ParseWeekday(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DefaultDate is the stored sentinel marking a slot that applies to its
// weekday every week rather than to one calendar date.
const DefaultDate = "00:00:00"

// SlotSpec is one configured time slot within a weekday. Default is derived
// from the stored date exactly once, when the row is scanned or the spec is
// constructed; nothing downstream compares against the sentinel again.
type SlotSpec struct {
	Time    string `json:"time"`
	Date    string `json:"date"`
	Default bool   `json:"is_default"`
}

// NewDefaultSlot builds a weekly-recurring slot at the given time.
func NewDefaultSlot(t string) SlotSpec {
	return SlotSpec{Time: t, Date: DefaultDate, Default: true}
}

// NewOverrideSlot builds a slot that applies only on the given "YYYY-MM-DD" date.
func NewOverrideSlot(t, date string) SlotSpec {
	return SlotSpec{Time: t, Date: date, Default: false}
}

// WeekMap holds the configured slots per weekday. Absent weekday means no
// slots configured for that day.
type WeekMap map[Weekday][]SlotSpec

// DefaultSlotInterval is the authoring step, in minutes, used when a
// schedule does not specify its own.
const DefaultSlotInterval = 15

// SectionSchedule is the weekly slot configuration owned by one
// (section, location) pair.
type SectionSchedule struct {
	ID           uuid.UUID `json:"id"`
	SectionID    uuid.UUID `json:"section_id"`
	Location     string    `json:"location"`
	SlotInterval int       `json:"slot_interval"`
	Days         WeekMap   `json:"days"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LocationSchedule is the location-wide weekly slot configuration used when
// a section has no schedule of its own.
type LocationSchedule struct {
	ID        uuid.UUID `json:"id"`
	Location  string    `json:"location"`
	Days      WeekMap   `json:"days"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
