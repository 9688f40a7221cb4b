package usecases_test

import (
	"context"
	"testing"

	"github.com/atlasworks/travelatlas/internal/core/domain"
	"github.com/atlasworks/travelatlas/internal/core/usecases"
)

// --- Mock POIRepository ---

type mockPOIRepo struct {
	listByCountryFn func(ctx context.Context, countryCode string) ([]domain.POI, error)
	findNearbyFn    func(ctx context.Context, lat, lon, radius float64, limit int) ([]domain.POI, error)
	searchFn        func(ctx context.Context, query string, limit int) ([]domain.POI, error)
	getByIDFn       func(ctx context.Context, id string) (*domain.POI, error)
}

func (m *mockPOIRepo) Upsert(ctx context.Context, poi *domain.POI) error      { return nil }
func (m *mockPOIRepo) UpsertBatch(ctx context.Context, pois []domain.POI) error { return nil }

func (m *mockPOIRepo) GetByID(ctx context.Context, id string) (*domain.POI, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockPOIRepo) ListByCountry(ctx context.Context, countryCode string) ([]domain.POI, error) {
	if m.listByCountryFn != nil {
		return m.listByCountryFn(ctx, countryCode)
	}
	return nil, nil
}

func (m *mockPOIRepo) FindNearby(ctx context.Context, lat, lon, radius float64, limit int) ([]domain.POI, error) {
	if m.findNearbyFn != nil {
		return m.findNearbyFn(ctx, lat, lon, radius, limit)
	}
	return nil, nil
}

func (m *mockPOIRepo) Search(ctx context.Context, query string, limit int) ([]domain.POI, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query, limit)
	}
	return nil, nil
}

// --- Tests ---

func TestPOIService_ListByCountry_NormalizesCode(t *testing.T) {
	repo := &mockPOIRepo{
		listByCountryFn: func(ctx context.Context, countryCode string) ([]domain.POI, error) {
			if countryCode != "fr" {
				t.Errorf("expected lowercase code fr, got %s", countryCode)
			}
			return []domain.POI{{ID: "1", Name: "Eiffel Tower", CountryCode: "fr"}}, nil
		},
	}

	svc := usecases.NewPOIService(repo, nil)
	pois, err := svc.ListByCountry(context.Background(), " FR ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pois) != 1 {
		t.Fatalf("expected 1 poi, got %d", len(pois))
	}
}

func TestPOIService_ListByCountry_BadCode(t *testing.T) {
	svc := usecases.NewPOIService(&mockPOIRepo{}, nil)
	if _, err := svc.ListByCountry(context.Background(), "france"); err == nil {
		t.Error("expected error for non alpha-2 code")
	}
}

func TestPOIService_FindNearby_ClampsRadius(t *testing.T) {
	repo := &mockPOIRepo{
		findNearbyFn: func(ctx context.Context, lat, lon, radius float64, limit int) ([]domain.POI, error) {
			if radius != 10000 {
				t.Errorf("expected radius clamped to 10000, got %f", radius)
			}
			if limit != 20 {
				t.Errorf("expected default limit 20, got %d", limit)
			}
			return nil, nil
		},
	}

	svc := usecases.NewPOIService(repo, nil)
	_, _ = svc.FindNearby(context.Background(), 48.85, 2.35, 99999, 0)
}

func TestPOIService_Search_EmptyQuery(t *testing.T) {
	svc := usecases.NewPOIService(&mockPOIRepo{}, nil)
	if _, err := svc.Search(context.Background(), "  ", 10); err == nil {
		t.Error("expected error for empty query")
	}
}
