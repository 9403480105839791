package section

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

// -- Mock Repository --

type mockRepo struct {
	sections map[uuid.UUID]*Section
}

func newMockRepo() *mockRepo {
	return &mockRepo{sections: make(map[uuid.UUID]*Section)}
}

func (m *mockRepo) Create(_ context.Context, s *Section) error {
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	s.UpdatedAt = time.Now()
	m.sections[s.ID] = s
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Section, error) {
	s, ok := m.sections[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *mockRepo) GetByName(_ context.Context, name, location string) (*Section, error) {
	for _, s := range m.sections {
		if s.Name == name && s.Location == location {
			return s, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) List(_ context.Context, location string, limit, offset int) ([]*Section, int, error) {
	var result []*Section
	for _, s := range m.sections {
		if location == "" || s.Location == location {
			result = append(result, s)
		}
	}
	return result, len(result), nil
}

func newTestService() *Service {
	return NewService(newMockRepo())
}

// -- Tests --

func TestCreate_RequiresName(t *testing.T) {
	svc := newTestService()
	err := svc.Create(context.Background(), &Section{Location: "Oradea"})
	if err == nil {
		t.Fatal("expected error for missing name")
	}
}

func TestCreate_RequiresLocation(t *testing.T) {
	svc := newTestService()
	err := svc.Create(context.Background(), &Section{Name: "Cardiologie"})
	if err == nil {
		t.Fatal("expected error for missing location")
	}
}

func TestCreate_DefaultsActive(t *testing.T) {
	svc := newTestService()
	sec := &Section{Name: "Cardiologie", Location: "Oradea"}
	if err := svc.Create(context.Background(), sec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sec.Active == nil || !*sec.Active {
		t.Error("expected active to default to true")
	}
}

func TestResolveName(t *testing.T) {
	svc := newTestService()
	sec := &Section{Name: "Radiologie", Location: "Oradea"}
	if err := svc.Create(context.Background(), sec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.ResolveName(context.Background(), "Radiologie", "Oradea")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != sec.ID {
		t.Errorf("expected section %s, got %s", sec.ID, got.ID)
	}

	if _, err := svc.ResolveName(context.Background(), "Radiologie", "Cluj"); err == nil {
		t.Error("expected not-found for wrong location")
	}
}
