package routing

import (
	"github.com/atlasworks/travelatlas/internal/core/domain"
	"github.com/atlasworks/travelatlas/internal/pkg/geospatial"
)

// Order is the result of a greedy nearest-neighbor pass.
type Order struct {
	Stops       []domain.ItineraryStop
	TotalMeters float64
}

// NearestNeighbor orders stops greedily by haversine distance, starting at
// startIndex (clamped into range). Ties keep the earlier input index.
// Zero or one stop is returned unchanged.
func NearestNeighbor(stops []domain.ItineraryStop, startIndex int) Order {
	n := len(stops)
	if n <= 1 {
		out := make([]domain.ItineraryStop, n)
		copy(out, stops)
		if n == 1 {
			out[0].LegMeters = 0
		}
		return Order{Stops: out}
	}

	if startIndex < 0 || startIndex >= n {
		startIndex = 0
	}

	visited := make([]bool, n)
	ordered := make([]domain.ItineraryStop, 0, n)

	cur := startIndex
	visited[cur] = true
	first := stops[cur]
	first.LegMeters = 0
	ordered = append(ordered, first)

	var total float64
	for len(ordered) < n {
		bestIdx := -1
		bestDist := 0.0
		for i := 0; i < n; i++ {
			if visited[i] {
				continue
			}
			d := geospatial.Haversine(
				stops[cur].Location.Lat, stops[cur].Location.Lon,
				stops[i].Location.Lat, stops[i].Location.Lon,
			)
			if bestIdx == -1 || d < bestDist {
				bestIdx, bestDist = i, d
			}
		}

		visited[bestIdx] = true
		next := stops[bestIdx]
		next.LegMeters = bestDist
		ordered = append(ordered, next)
		total += bestDist
		cur = bestIdx
	}

	return Order{Stops: ordered, TotalMeters: total}
}
