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

// OpenTripMap is a client for the OpenTripMap places API.
type OpenTripMap struct {
	baseURL    string
	apiKey     string
	lang       string
	httpClient *http.Client
}

// NewOpenTripMap creates an OpenTripMap client.
func NewOpenTripMap(baseURL, apiKey, lang string, timeout time.Duration) *OpenTripMap {
	if lang == "" {
		lang = "en"
	}
	return &OpenTripMap{
		baseURL:    baseURL,
		apiKey:     apiKey,
		lang:       lang,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (p *OpenTripMap) Name() string { return "opentripmap" }

// otmRadiusResponse is the GeoJSON FeatureCollection from /places/radius.
type otmRadiusResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"` // [lon, lat]
		} `json:"geometry"`
		Properties struct {
			XID   string  `json:"xid"`
			Name  string  `json:"name"`
			Kinds string  `json:"kinds"`
			Rate  int     `json:"rate"`
			Dist  float64 `json:"dist"`
		} `json:"properties"`
	} `json:"features"`
}

// Radius lists named places within radiusMeters of a point.
func (p *OpenTripMap) Radius(ctx context.Context, lat, lon, radiusMeters float64, kinds string, limit int) ([]domain.Place, error) {
	start := time.Now()

	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))
	q.Set("radius", fmt.Sprintf("%.0f", radiusMeters))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("apikey", p.apiKey)
	if kinds != "" {
		q.Set("kinds", kinds)
	}

	reqURL := fmt.Sprintf("%s/0.1/%s/places/radius?%s", p.baseURL, p.lang, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, transportError(p.Name(), err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		e := transportError(p.Name(), err)
		metrics.ObserveProvider(p.Name(), "radius", start, e.Code)
		return nil, e
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		e := statusError(p.Name(), resp.StatusCode)
		metrics.ObserveProvider(p.Name(), "radius", start, e.Code)
		return nil, e
	}

	var raw otmRadiusResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		e := decodeError(p.Name(), err)
		metrics.ObserveProvider(p.Name(), "radius", start, e.Code)
		return nil, e
	}
	metrics.ObserveProvider(p.Name(), "radius", start, "")

	places := make([]domain.Place, 0, len(raw.Features))
	for _, f := range raw.Features {
		if f.Properties.Name == "" || len(f.Geometry.Coordinates) < 2 {
			continue // unnamed features are noise for the atlas UI
		}
		places = append(places, domain.Place{
			XID:      f.Properties.XID,
			Name:     f.Properties.Name,
			Kinds:    f.Properties.Kinds,
			Rate:     f.Properties.Rate,
			Distance: f.Properties.Dist,
			Location: domain.GeoPoint{
				Lon: f.Geometry.Coordinates[0],
				Lat: f.Geometry.Coordinates[1],
			},
		})
	}
	return places, nil
}

// otmDetailResponse is the /places/xid/{xid} payload.
type otmDetailResponse struct {
	XID   string `json:"xid"`
	Name  string `json:"name"`
	Kinds string `json:"kinds"`
	Point struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"point"`
	WikipediaExtracts struct {
		Text string `json:"text"`
	} `json:"wikipedia_extracts"`
	Preview struct {
		Source string `json:"source"`
	} `json:"preview"`
	Wikipedia string `json:"wikipedia"`
	Address   struct {
		City    string `json:"city"`
		Road    string `json:"road"`
		Country string `json:"country"`
	} `json:"address"`
}

// Detail fetches the expanded description of a single place.
func (p *OpenTripMap) Detail(ctx context.Context, xid string) (*domain.PlaceDetail, error) {
	start := time.Now()

	q := url.Values{}
	q.Set("apikey", p.apiKey)
	reqURL := fmt.Sprintf("%s/0.1/%s/places/xid/%s?%s", p.baseURL, p.lang, url.PathEscape(xid), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, transportError(p.Name(), err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		e := transportError(p.Name(), err)
		metrics.ObserveProvider(p.Name(), "detail", start, e.Code)
		return nil, e
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		e := statusError(p.Name(), resp.StatusCode)
		metrics.ObserveProvider(p.Name(), "detail", start, e.Code)
		return nil, e
	}

	var raw otmDetailResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		e := decodeError(p.Name(), err)
		metrics.ObserveProvider(p.Name(), "detail", start, e.Code)
		return nil, e
	}
	metrics.ObserveProvider(p.Name(), "detail", start, "")

	addr := raw.Address.Road
	if raw.Address.City != "" {
		if addr != "" {
			addr += ", "
		}
		addr += raw.Address.City
	}

	return &domain.PlaceDetail{
		XID:          raw.XID,
		Name:         raw.Name,
		Kinds:        raw.Kinds,
		Description:  raw.WikipediaExtracts.Text,
		ImageURL:     raw.Preview.Source,
		WikipediaURL: raw.Wikipedia,
		Address:      addr,
		Location:     domain.GeoPoint{Lat: raw.Point.Lat, Lon: raw.Point.Lon},
	}, nil
}
