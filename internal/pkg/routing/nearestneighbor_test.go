package routing

import (
	"testing"

	"github.com/atlasworks/travelatlas/internal/core/domain"
)

func stop(name string, lat, lon float64) domain.ItineraryStop {
	return domain.ItineraryStop{Name: name, Location: domain.GeoPoint{Lat: lat, Lon: lon}}
}

func TestNearestNeighbor_Empty(t *testing.T) {
	o := NearestNeighbor(nil, 0)
	if len(o.Stops) != 0 || o.TotalMeters != 0 {
		t.Fatalf("expected empty order, got %+v", o)
	}
}

func TestNearestNeighbor_Single(t *testing.T) {
	o := NearestNeighbor([]domain.ItineraryStop{stop("only", 48.85, 2.35)}, 0)
	if len(o.Stops) != 1 || o.Stops[0].Name != "only" || o.TotalMeters != 0 {
		t.Fatalf("unexpected order: %+v", o)
	}
}

func TestNearestNeighbor_OrdersByProximity(t *testing.T) {
	// Along a line west to east: A at 0, C at 1, B at 5 degrees longitude.
	stops := []domain.ItineraryStop{
		stop("A", 0, 0),
		stop("B", 0, 5),
		stop("C", 0, 1),
	}

	o := NearestNeighbor(stops, 0)
	want := []string{"A", "C", "B"}
	for i, name := range want {
		if o.Stops[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, o.Stops[i].Name)
		}
	}
	if o.Stops[0].LegMeters != 0 {
		t.Errorf("first leg must be 0, got %f", o.Stops[0].LegMeters)
	}
	if o.TotalMeters <= 0 {
		t.Errorf("expected positive total, got %f", o.TotalMeters)
	}
}

func TestNearestNeighbor_FixedStart(t *testing.T) {
	stops := []domain.ItineraryStop{
		stop("A", 0, 0),
		stop("B", 0, 5),
		stop("C", 0, 1),
	}

	o := NearestNeighbor(stops, 1) // start from B
	if o.Stops[0].Name != "B" {
		t.Fatalf("expected start B, got %s", o.Stops[0].Name)
	}
	// From B the nearest is C, then A.
	if o.Stops[1].Name != "C" || o.Stops[2].Name != "A" {
		t.Fatalf("unexpected order: %v %v", o.Stops[1].Name, o.Stops[2].Name)
	}
}

func TestNearestNeighbor_StartIndexClamped(t *testing.T) {
	stops := []domain.ItineraryStop{stop("A", 0, 0), stop("B", 0, 1)}
	o := NearestNeighbor(stops, 99)
	if o.Stops[0].Name != "A" {
		t.Fatalf("out-of-range start must clamp to 0, got %s", o.Stops[0].Name)
	}
}

func TestNearestNeighbor_DuplicateCoordinates(t *testing.T) {
	stops := []domain.ItineraryStop{
		stop("A", 10, 10),
		stop("B", 10, 10),
		stop("C", 10, 10),
	}
	o := NearestNeighbor(stops, 0)
	// Ties keep input order.
	want := []string{"A", "B", "C"}
	for i, name := range want {
		if o.Stops[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, o.Stops[i].Name)
		}
	}
	if o.TotalMeters != 0 {
		t.Errorf("expected 0 total for identical points, got %f", o.TotalMeters)
	}
}

func TestNearestNeighbor_TotalMatchesLegs(t *testing.T) {
	stops := []domain.ItineraryStop{
		stop("Madrid", 40.4168, -3.7038),
		stop("Barcelona", 41.3874, 2.1686),
		stop("Valencia", 39.4699, -0.3763),
		stop("Sevilla", 37.3891, -5.9845),
	}
	o := NearestNeighbor(stops, 0)

	var sum float64
	for _, s := range o.Stops {
		sum += s.LegMeters
	}
	if diff := sum - o.TotalMeters; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("legs sum %.2f != total %.2f", sum, o.TotalMeters)
	}
	if len(o.Stops) != 4 {
		t.Fatalf("expected 4 stops, got %d", len(o.Stops))
	}
}
