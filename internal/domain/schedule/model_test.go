package schedule

import (
	"encoding/json"
	"testing"
)

func TestParseWeekday_Romanian(t *testing.T) {
	cases := map[string]Weekday{
		"Luni":     Monday,
		"Marti":    Tuesday,
		"Miercuri": Wednesday,
		"Joi":      Thursday,
		"Vineri":   Friday,
		"Sambata":  Saturday,
		"Duminica": Sunday,
	}
	for name, want := range cases {
		got, err := ParseWeekday(name)
		if err != nil {
			t.Errorf("ParseWeekday(%q): %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("ParseWeekday(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestParseWeekday_English(t *testing.T) {
	got, err := ParseWeekday("Wednesday")
	if err != nil {
		t.Fatal(err)
	}
	if got != Wednesday {
		t.Errorf("got %v, want Wednesday", got)
	}
}

func TestParseWeekday_CaseInsensitive(t *testing.T) {
	for _, name := range []string{"luni", "LUNI", " Luni ", "monday", "MONDAY"} {
		got, err := ParseWeekday(name)
		if err != nil {
			t.Errorf("ParseWeekday(%q): %v", name, err)
			continue
		}
		if got != Monday {
			t.Errorf("ParseWeekday(%q) = %v, want Monday", name, got)
		}
	}
}

func TestParseWeekday_Unknown(t *testing.T) {
	if _, err := ParseWeekday("Lunedi"); err == nil {
		t.Error("expected error for unknown weekday")
	}
	if _, err := ParseWeekday(""); err == nil {
		t.Error("expected error for empty weekday")
	}
}

func TestWeekday_RomanianName(t *testing.T) {
	if got := Sunday.RomanianName(); got != "Duminica" {
		t.Errorf("got %q, want Duminica", got)
	}
}

func TestWeekMap_JSONKeys(t *testing.T) {
	m := WeekMap{Monday: {NewDefaultSlot("09:00")}}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"Monday":[{"time":"09:00","date":"00:00:00","is_default":true}]}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}

	var back WeekMap
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if len(back[Monday]) != 1 || back[Monday][0].Time != "09:00" {
		t.Errorf("round trip lost data: %+v", back)
	}
}

func TestSlotSpec_Constructors(t *testing.T) {
	d := NewDefaultSlot("10:00")
	if !d.Default || d.Date != DefaultDate {
		t.Errorf("default slot not tagged: %+v", d)
	}
	o := NewOverrideSlot("10:00", "2025-03-10")
	if o.Default || o.Date != "2025-03-10" {
		t.Errorf("override slot not tagged: %+v", o)
	}
}
