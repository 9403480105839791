package availability

// Slot sources, in cascade order. Custom is never produced by the resolver;
// it tags ad-hoc times entered by staff when no schedule exists.
const (
	SourceSection  = "section"
	SourceLocation = "location"
	SourceCustom   = "custom"
)

// Slot is one resolved bookable time. It is recomputed on every request and
// never persisted. Date echoes the configuration entry's date: the weekly
// sentinel for defaults, a literal "YYYY-MM-DD" for overrides.
type Slot struct {
	Time        string `json:"time"`
	Date        string `json:"date"`
	IsAvailable bool   `json:"isAvailable"`
	IsDefault   bool   `json:"isDefault"`
	Source      string `json:"source"`
}
