package section

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	sections Repository
}

func NewService(sections Repository) *Service {
	return &Service{sections: sections}
}

func (s *Service) Create(ctx context.Context, sec *Section) error {
	if sec.Name == "" {
		return fmt.Errorf("name is required")
	}
	if sec.Location == "" {
		return fmt.Errorf("location is required")
	}
	if sec.Active == nil {
		active := true
		sec.Active = &active
	}
	return s.sections.Create(ctx, sec)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Section, error) {
	return s.sections.GetByID(ctx, id)
}

// ResolveName maps a legacy section display name to its record. Old clients
// send the name where new ones send the section ID.
func (s *Service) ResolveName(ctx context.Context, name, location string) (*Section, error) {
	return s.sections.GetByName(ctx, name, location)
}

func (s *Service) List(ctx context.Context, location string, limit, offset int) ([]*Section, int, error) {
	return s.sections.List(ctx, location, limit, offset)
}
