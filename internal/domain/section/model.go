package section

import (
	"time"

	"github.com/google/uuid"
)

// Section is a clinic department (e.g. Cardiologie, Radiologie) operating at
// a given location. Availability and bookings are scoped to a section so that
// unrelated departments sharing a location never block each other's slots.
type Section struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Location  string    `db:"location" json:"location"`
	Active    *bool     `db:"active" json:"active,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
