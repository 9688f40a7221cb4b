package geospatial

import (
	"math"
	"testing"
)

func TestHaversine_KnownDistance(t *testing.T) {
	// Paris (Notre-Dame) to London (Big Ben), roughly 341 km.
	d := Haversine(48.8530, 2.3499, 51.5007, -0.1246)
	if d < 330_000 || d > 350_000 {
		t.Errorf("expected ~341km, got %.0fm", d)
	}
}

func TestHaversine_ZeroDistance(t *testing.T) {
	d := Haversine(35.6762, 139.6503, 35.6762, 139.6503)
	if d != 0 {
		t.Errorf("expected 0, got %f", d)
	}
}

func TestHaversine_Symmetric(t *testing.T) {
	a := Haversine(40.4168, -3.7038, 41.3874, 2.1686)
	b := Haversine(41.3874, 2.1686, 40.4168, -3.7038)
	if math.Abs(a-b) > 1e-6 {
		t.Errorf("distance not symmetric: %f vs %f", a, b)
	}
}
