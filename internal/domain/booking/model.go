package booking

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusBooked    = "booked"
	StatusCancelled = "cancelled"
)

// Booking is one appointment. SectionID is optional: legacy records carry
// only the location. Date is the calendar day ("YYYY-MM-DD", stored as a
// DATE column) and Time the "HH:MM" slot within it.
type Booking struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Location    string     `db:"location" json:"location"`
	SectionID   *uuid.UUID `db:"section_id" json:"section_id,omitempty"`
	PatientName string     `db:"patient_name" json:"patient_name"`
	Date        string     `db:"date" json:"date"`
	Time        string     `db:"time" json:"time"`
	Status      string     `db:"status" json:"status"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}
