package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/atlasworks/travelatlas/internal/core/domain"
	"github.com/atlasworks/travelatlas/internal/pkg/metrics"
)

// Photon is a client for the Photon (Komoot) geocoding API.
type Photon struct {
	baseURL    string
	httpClient *http.Client
}

// NewPhoton creates a Photon client.
func NewPhoton(baseURL string, timeout time.Duration) *Photon {
	return &Photon{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (p *Photon) Name() string { return "photon" }

// photonResponse is the GeoJSON FeatureCollection Photon returns.
type photonResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"` // [lon, lat]
		} `json:"geometry"`
		Properties struct {
			Name        string `json:"name"`
			Country     string `json:"country"`
			CountryCode string `json:"countrycode"`
			City        string `json:"city"`
			OSMValue    string `json:"osm_value"`
		} `json:"properties"`
	} `json:"features"`
}

// Search geocodes free-form text.
func (p *Photon) Search(ctx context.Context, query string, limit int) ([]domain.GeocodeResult, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	return p.fetch(ctx, "search", p.baseURL+"/api?"+q.Encode())
}

// Reverse finds the nearest named feature to a point.
func (p *Photon) Reverse(ctx context.Context, lat, lon float64) ([]domain.GeocodeResult, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))
	return p.fetch(ctx, "reverse", p.baseURL+"/reverse?"+q.Encode())
}

func (p *Photon) fetch(ctx context.Context, operation, reqURL string) ([]domain.GeocodeResult, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, transportError(p.Name(), err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		e := transportError(p.Name(), err)
		metrics.ObserveProvider(p.Name(), operation, start, e.Code)
		return nil, e
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		e := statusError(p.Name(), resp.StatusCode)
		metrics.ObserveProvider(p.Name(), operation, start, e.Code)
		return nil, e
	}

	var raw photonResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		e := decodeError(p.Name(), err)
		metrics.ObserveProvider(p.Name(), operation, start, e.Code)
		return nil, e
	}
	metrics.ObserveProvider(p.Name(), operation, start, "")

	results := make([]domain.GeocodeResult, 0, len(raw.Features))
	for _, f := range raw.Features {
		if len(f.Geometry.Coordinates) < 2 {
			continue
		}
		results = append(results, domain.GeocodeResult{
			Name:        f.Properties.Name,
			Country:     f.Properties.Country,
			CountryCode: f.Properties.CountryCode,
			City:        f.Properties.City,
			Type:        f.Properties.OSMValue,
			Location: domain.GeoPoint{
				Lon: f.Geometry.Coordinates[0],
				Lat: f.Geometry.Coordinates[1],
			},
		})
	}
	return results, nil
}
