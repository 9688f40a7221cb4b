package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/atlasworks/travelatlas/internal/core/domain"
	"github.com/atlasworks/travelatlas/internal/pkg/metrics"
)

// OpenWeather fetches current conditions from the OpenWeather API.
type OpenWeather struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewOpenWeather creates an OpenWeather client.
func NewOpenWeather(baseURL, apiKey string, timeout time.Duration) *OpenWeather {
	return &OpenWeather{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Name implements the weather provider registry key.
func (p *OpenWeather) Name() string { return "openweather" }

type owmResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Dt int64 `json:"dt"`
}

// Current fetches current weather at a point. Readings are requested in
// metric units so every provider normalizes to the same scale.
func (p *OpenWeather) Current(ctx context.Context, lat, lon float64) (*domain.Weather, error) {
	start := time.Now()

	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))
	q.Set("appid", p.apiKey)
	q.Set("units", "metric")

	reqURL := p.baseURL + "/data/2.5/weather?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, transportError(p.Name(), err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		e := transportError(p.Name(), err)
		metrics.ObserveProvider(p.Name(), "current", start, e.Code)
		return nil, e
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		e := statusError(p.Name(), resp.StatusCode)
		metrics.ObserveProvider(p.Name(), "current", start, e.Code)
		return nil, e
	}

	var raw owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		e := decodeError(p.Name(), err)
		metrics.ObserveProvider(p.Name(), "current", start, e.Code)
		return nil, e
	}
	metrics.ObserveProvider(p.Name(), "current", start, "")

	w := &domain.Weather{
		Provider:   p.Name(),
		Location:   domain.GeoPoint{Lat: lat, Lon: lon},
		Place:      raw.Name,
		TempC:      raw.Main.Temp,
		FeelsLikeC: raw.Main.FeelsLike,
		Humidity:   raw.Main.Humidity,
		WindSpeed:  raw.Wind.Speed,
		ObservedAt: time.Unix(raw.Dt, 0).UTC(),
	}
	if len(raw.Weather) > 0 {
		w.Condition = raw.Weather[0].Main
		w.Description = raw.Weather[0].Description
		w.Icon = raw.Weather[0].Icon
	}
	return w, nil
}
