package section

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no section matches the lookup key.
var ErrNotFound = errors.New("section not found")

type Repository interface {
	Create(ctx context.Context, s *Section) error
	GetByID(ctx context.Context, id uuid.UUID) (*Section, error)
	// GetByName resolves a section by its display name within a location.
	// Legacy callers identify sections by name ("testType") instead of ID.
	GetByName(ctx context.Context, name, location string) (*Section, error)
	List(ctx context.Context, location string, limit, offset int) ([]*Section, int, error)
}
