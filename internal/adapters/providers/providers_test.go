package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/atlasworks/travelatlas/internal/core/domain"
)

func TestOpenWeather_Current_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/2.5/weather" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("appid") != "test-key" {
			t.Errorf("missing api key in query")
		}
		if r.URL.Query().Get("units") != "metric" {
			t.Errorf("expected metric units")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"name": "Lisbon",
			"weather": [{"main": "Clear", "description": "clear sky", "icon": "01d"}],
			"main": {"temp": 21.5, "feels_like": 21.0, "humidity": 60},
			"wind": {"speed": 3.2},
			"dt": 1700000000
		}`))
	}))
	defer srv.Close()

	p := NewOpenWeather(srv.URL, "test-key", 5*time.Second)
	w, err := p.Current(context.Background(), 38.7223, -9.1393)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Place != "Lisbon" || w.TempC != 21.5 || w.Condition != "Clear" {
		t.Errorf("unexpected weather: %+v", w)
	}
	if w.Provider != "openweather" {
		t.Errorf("expected provider openweather, got %s", w.Provider)
	}
}

func TestOpenWeather_Current_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
	}))
	defer srv.Close()

	p := NewOpenWeather(srv.URL, "bad-key", 5*time.Second)
	_, err := p.Current(context.Background(), 0, 0)

	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("expected *Error, got %v", err)
	}
	// Credential failures must surface as a generic upstream error.
	if pe.Status != 502 || pe.Code != "upstream_error" {
		t.Errorf("expected 502 upstream_error, got %d %s", pe.Status, pe.Code)
	}
}

func TestOpenWeather_Current_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(429)
	}))
	defer srv.Close()

	p := NewOpenWeather(srv.URL, "k", 5*time.Second)
	_, err := p.Current(context.Background(), 0, 0)

	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if pe.Status != 429 || pe.Code != "rate_limited" {
		t.Errorf("expected 429 rate_limited, got %d %s", pe.Status, pe.Code)
	}
}

func TestOpenWeather_Current_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	p := NewOpenWeather(srv.URL, "k", 5*time.Second)
	_, err := p.Current(context.Background(), 0, 0)

	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if pe.Status != 502 {
		t.Errorf("expected 502, got %d", pe.Status)
	}
}

func TestOpenWeather_Current_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	p := NewOpenWeather(srv.URL, "k", 20*time.Millisecond)
	_, err := p.Current(context.Background(), 0, 0)

	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if pe.Status != 504 || pe.Code != "upstream_timeout" {
		t.Errorf("expected 504 upstream_timeout, got %d %s", pe.Status, pe.Code)
	}
}

func TestOpenMeteo_Current_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/forecast" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"current": {
				"time": "2024-05-01T12:00",
				"temperature_2m": 18.3,
				"apparent_temperature": 17.5,
				"relative_humidity_2m": 55,
				"wind_speed_10m": 4.1,
				"weather_code": 2
			}
		}`))
	}))
	defer srv.Close()

	p := NewOpenMeteo(srv.URL, 5*time.Second)
	w, err := p.Current(context.Background(), 52.52, 13.405)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.TempC != 18.3 || w.Condition != "Clouds" {
		t.Errorf("unexpected weather: %+v", w)
	}
}

func TestPhoton_Search_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("q") != "lisbon" {
			t.Errorf("expected q=lisbon, got %s", r.URL.Query().Get("q"))
		}
		_, _ = w.Write([]byte(`{
			"features": [{
				"geometry": {"coordinates": [-9.1393, 38.7223]},
				"properties": {"name": "Lisboa", "country": "Portugal", "countrycode": "PT", "osm_value": "city"}
			}]
		}`))
	}))
	defer srv.Close()

	p := NewPhoton(srv.URL, 5*time.Second)
	results, err := p.Search(context.Background(), "lisbon", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.Name != "Lisboa" || r.Location.Lat != 38.7223 || r.Location.Lon != -9.1393 {
		t.Errorf("unexpected result: %+v", r)
	}
}

func TestPhoton_Reverse_SkipsMalformedFeatures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reverse" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"features": [
				{"geometry": {"coordinates": []}, "properties": {"name": "broken"}},
				{"geometry": {"coordinates": [2.35, 48.85]}, "properties": {"name": "Paris"}}
			]
		}`))
	}))
	defer srv.Close()

	p := NewPhoton(srv.URL, 5*time.Second)
	results, err := p.Reverse(context.Background(), 48.85, 2.35)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Paris" {
		t.Errorf("expected only Paris, got %+v", results)
	}
}

func TestOpenTripMap_Radius_FiltersUnnamed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/0.1/en/places/radius" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"features": [
				{"geometry": {"coordinates": [2.29, 48.86]}, "properties": {"xid": "W1", "name": "Eiffel Tower", "kinds": "towers", "rate": 7, "dist": 120.5}},
				{"geometry": {"coordinates": [2.30, 48.87]}, "properties": {"xid": "W2", "name": "", "kinds": "cafes"}}
			]
		}`))
	}))
	defer srv.Close()

	p := NewOpenTripMap(srv.URL, "key", "en", 5*time.Second)
	places, err := p.Radius(context.Background(), 48.86, 2.29, 1000, "", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(places) != 1 || places[0].Name != "Eiffel Tower" {
		t.Errorf("expected only named places, got %+v", places)
	}
	if places[0].Distance != 120.5 {
		t.Errorf("expected dist 120.5, got %f", places[0].Distance)
	}
}

func TestOpenTripMap_Detail_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
	}))
	defer srv.Close()

	p := NewOpenTripMap(srv.URL, "key", "en", 5*time.Second)
	_, err := p.Detail(context.Background(), "missing-xid")

	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if pe.Status != 404 || pe.Code != "not_found" {
		t.Errorf("expected 404 not_found, got %d %s", pe.Status, pe.Code)
	}
}

func TestOllama_Chat_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		_, _ = w.Write([]byte(`{"message": {"role": "assistant", "content": "Visit Kyoto in autumn."}, "done": true}`))
	}))
	defer srv.Close()

	p := NewOllama(srv.URL, "llama3.1", 5*time.Second)
	reply, err := p.Chat(context.Background(), []domain.ChatMessage{{Role: "user", Content: "Japan tips?"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Visit Kyoto in autumn." {
		t.Errorf("unexpected reply: %q", reply)
	}
}

func TestOllama_Chat_UpstreamDown(t *testing.T) {
	p := NewOllama("http://127.0.0.1:1", "llama3.1", 200*time.Millisecond)
	_, err := p.Chat(context.Background(), []domain.ChatMessage{{Role: "user", Content: "hi"}})

	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if pe.Code != "upstream_error" && pe.Code != "upstream_timeout" {
		t.Errorf("unexpected code: %s", pe.Code)
	}
}
