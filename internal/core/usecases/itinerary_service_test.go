package usecases_test

import (
	"context"
	"testing"

	"github.com/atlasworks/travelatlas/internal/core/domain"
	"github.com/atlasworks/travelatlas/internal/core/usecases"
)

// --- Mock ItineraryRepository ---

type mockItineraryRepo struct {
	createFn  func(ctx context.Context, it *domain.Itinerary) error
	getByIDFn func(ctx context.Context, id string) (*domain.Itinerary, error)
	listFn    func(ctx context.Context, limit, offset int) ([]domain.Itinerary, int, error)
}

func (m *mockItineraryRepo) Create(ctx context.Context, it *domain.Itinerary) error {
	if m.createFn != nil {
		return m.createFn(ctx, it)
	}
	return nil
}

func (m *mockItineraryRepo) GetByID(ctx context.Context, id string) (*domain.Itinerary, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockItineraryRepo) List(ctx context.Context, limit, offset int) ([]domain.Itinerary, int, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit, offset)
	}
	return nil, 0, nil
}

// Three stops on a line: from the first stop the middle one is nearest,
// so the greedy order is A, B, C even when given as A, C, B.
func lineStops() []domain.ItineraryStop {
	return []domain.ItineraryStop{
		{Name: "A", Location: domain.GeoPoint{Lat: 0, Lon: 0}},
		{Name: "C", Location: domain.GeoPoint{Lat: 0, Lon: 2}},
		{Name: "B", Location: domain.GeoPoint{Lat: 0, Lon: 1}},
	}
}

// --- Tests ---

func TestItineraryService_Optimize(t *testing.T) {
	svc := usecases.NewItineraryService(&mockItineraryRepo{}, nil)

	it, err := svc.Optimize(context.Background(), "Coastal run", lineStops(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.ID != "" {
		t.Error("optimize should not assign an id")
	}
	got := []string{it.Stops[0].Name, it.Stops[1].Name, it.Stops[2].Name}
	want := []string{"A", "B", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
	if it.Stops[0].LegMeters != 0 {
		t.Errorf("first leg should be 0, got %f", it.Stops[0].LegMeters)
	}
	if it.TotalMeters <= 0 {
		t.Errorf("expected positive total distance, got %f", it.TotalMeters)
	}
}

func TestItineraryService_Optimize_InvalidStops(t *testing.T) {
	svc := usecases.NewItineraryService(&mockItineraryRepo{}, nil)

	cases := []struct {
		name  string
		stops []domain.ItineraryStop
	}{
		{"empty", nil},
		{"unnamed stop", []domain.ItineraryStop{{Name: " ", Location: domain.GeoPoint{Lat: 1, Lon: 1}}}},
		{"bad latitude", []domain.ItineraryStop{{Name: "X", Location: domain.GeoPoint{Lat: 91, Lon: 0}}}},
		{"bad longitude", []domain.ItineraryStop{{Name: "X", Location: domain.GeoPoint{Lat: 0, Lon: 181}}}},
	}
	for _, tc := range cases {
		if _, err := svc.Optimize(context.Background(), "", tc.stops, 0); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestItineraryService_Create_PersistsAndPublishes(t *testing.T) {
	var saved *domain.Itinerary
	repo := &mockItineraryRepo{
		createFn: func(ctx context.Context, it *domain.Itinerary) error {
			saved = it
			return nil
		},
	}
	var published *domain.Itinerary
	pub := &mockPublisher{
		itineraryFn: func(ctx context.Context, it *domain.Itinerary) error {
			published = it
			return nil
		},
	}

	svc := usecases.NewItineraryService(repo, pub)

	it, err := svc.Create(context.Background(), "Weekend", lineStops(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.ID == "" {
		t.Error("create should assign an id")
	}
	if saved == nil || saved.ID != it.ID {
		t.Error("itinerary was not persisted")
	}
	if published == nil || published.ID != it.ID {
		t.Error("itinerary event was not published")
	}
}

func TestItineraryService_Create_DefaultName(t *testing.T) {
	repo := &mockItineraryRepo{}
	svc := usecases.NewItineraryService(repo, nil)

	it, err := svc.Create(context.Background(), "  ", lineStops(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Name == "" {
		t.Error("expected a generated name for a blank one")
	}
}

func TestItineraryService_List_ClampsLimit(t *testing.T) {
	repo := &mockItineraryRepo{
		listFn: func(ctx context.Context, limit, offset int) ([]domain.Itinerary, int, error) {
			if limit != 20 {
				t.Errorf("expected limit clamped to 20, got %d", limit)
			}
			if offset != 0 {
				t.Errorf("expected offset clamped to 0, got %d", offset)
			}
			return nil, 0, nil
		},
	}

	svc := usecases.NewItineraryService(repo, nil)
	_, _, _ = svc.List(context.Background(), 999, -5)
}
