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

// OpenMeteo fetches current conditions from the keyless Open-Meteo API.
type OpenMeteo struct {
	baseURL    string
	httpClient *http.Client
}

// NewOpenMeteo creates an Open-Meteo client.
func NewOpenMeteo(baseURL string, timeout time.Duration) *OpenMeteo {
	return &OpenMeteo{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (p *OpenMeteo) Name() string { return "openmeteo" }

type meteoResponse struct {
	Current struct {
		Time             string  `json:"time"`
		Temperature      float64 `json:"temperature_2m"`
		ApparentTemp     float64 `json:"apparent_temperature"`
		RelativeHumidity int     `json:"relative_humidity_2m"`
		WindSpeed        float64 `json:"wind_speed_10m"`
		WeatherCode      int     `json:"weather_code"`
	} `json:"current"`
}

// WMO weather interpretation codes, collapsed to coarse conditions.
func meteoCondition(code int) string {
	switch {
	case code == 0:
		return "Clear"
	case code <= 3:
		return "Clouds"
	case code <= 48:
		return "Fog"
	case code <= 67:
		return "Rain"
	case code <= 77:
		return "Snow"
	case code <= 82:
		return "Rain"
	case code <= 86:
		return "Snow"
	default:
		return "Thunderstorm"
	}
}

// Current fetches current weather at a point, metric units.
func (p *OpenMeteo) Current(ctx context.Context, lat, lon float64) (*domain.Weather, error) {
	start := time.Now()

	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%f", lat))
	q.Set("longitude", fmt.Sprintf("%f", lon))
	q.Set("current", "temperature_2m,apparent_temperature,relative_humidity_2m,wind_speed_10m,weather_code")
	q.Set("wind_speed_unit", "ms")

	reqURL := p.baseURL + "/v1/forecast?" + q.Encode()
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

	var raw meteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		e := decodeError(p.Name(), err)
		metrics.ObserveProvider(p.Name(), "current", start, e.Code)
		return nil, e
	}
	metrics.ObserveProvider(p.Name(), "current", start, "")

	observedAt := time.Now().UTC()
	if t, err := time.Parse("2006-01-02T15:04", raw.Current.Time); err == nil {
		observedAt = t.UTC()
	}

	return &domain.Weather{
		Provider:   p.Name(),
		Location:   domain.GeoPoint{Lat: lat, Lon: lon},
		TempC:      raw.Current.Temperature,
		FeelsLikeC: raw.Current.ApparentTemp,
		Humidity:   raw.Current.RelativeHumidity,
		WindSpeed:  raw.Current.WindSpeed,
		Condition:  meteoCondition(raw.Current.WeatherCode),
		ObservedAt: observedAt,
	}, nil
}
