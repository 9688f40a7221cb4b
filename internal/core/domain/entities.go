package domain

import (
	"time"
)

// Country is an entry in the embedded atlas dataset.
type Country struct {
	Code     string   `json:"code"` // ISO 3166-1 alpha-2, lowercase
	Name     string   `json:"name"`
	Aliases  []string `json:"aliases,omitempty"`
	Centroid GeoPoint `json:"centroid"`
	Zoom     float64  `json:"zoom"` // suggested globe zoom level
}

// POI is a curated point of interest from the catalog.
type POI struct {
	ID          string         `json:"id"`
	CountryCode string         `json:"country_code"`
	Name        string         `json:"name"`
	Category    string         `json:"category"`
	Description string         `json:"description,omitempty"`
	Location    GeoPoint       `json:"location"`
	Tags        map[string]any `json:"tags,omitempty"`
	Distance    *float64       `json:"distance,omitempty"` // computed field, meters
	CreatedAt   time.Time      `json:"created_at"`
}

// ItineraryStop is one stop in an ordered itinerary.
type ItineraryStop struct {
	Name      string   `json:"name"`
	Location  GeoPoint `json:"location"`
	LegMeters float64  `json:"leg_meters"` // distance from the previous stop, 0 for the first
}

// Itinerary is an ordered sequence of stops with leg distances.
type Itinerary struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Stops       []ItineraryStop `json:"stops"`
	TotalMeters float64         `json:"total_meters"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Weather is a normalized current-conditions reading from any provider.
type Weather struct {
	Provider    string    `json:"provider"`
	Location    GeoPoint  `json:"location"`
	Place       string    `json:"place,omitempty"`
	TempC       float64   `json:"temp_c"`
	FeelsLikeC  float64   `json:"feels_like_c"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"` // m/s
	Condition   string    `json:"condition"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	ObservedAt  time.Time `json:"observed_at"`
}

// GeocodeResult is a normalized geocoding hit.
type GeocodeResult struct {
	Name        string   `json:"name"`
	Country     string   `json:"country,omitempty"`
	CountryCode string   `json:"country_code,omitempty"`
	City        string   `json:"city,omitempty"`
	Type        string   `json:"type,omitempty"` // city, street, house, ...
	Location    GeoPoint `json:"location"`
}

// Place is a nearby place summary from the places provider.
type Place struct {
	XID      string   `json:"xid"`
	Name     string   `json:"name"`
	Kinds    string   `json:"kinds,omitempty"`
	Rate     int      `json:"rate,omitempty"`
	Location GeoPoint `json:"location"`
	Distance float64  `json:"distance,omitempty"` // meters from query point
}

// PlaceDetail carries the expanded description of a single place.
type PlaceDetail struct {
	XID          string   `json:"xid"`
	Name         string   `json:"name"`
	Kinds        string   `json:"kinds,omitempty"`
	Description  string   `json:"description,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	WikipediaURL string   `json:"wikipedia_url,omitempty"`
	Address      string   `json:"address,omitempty"`
	Location     GeoPoint `json:"location"`
}

// Intent kinds the chat assistant can emit for the globe UI.
const (
	IntentFocusCountry = "focus_country"
	IntentOpenPanel    = "open_panel"
)

// Panels the UI knows how to open.
const (
	PanelWeather   = "weather"
	PanelPlaces    = "places"
	PanelItinerary = "itinerary"
)

// Intent is a UI action derived from an assistant exchange.
type Intent struct {
	Kind        string    `json:"kind"`
	CountryCode string    `json:"country_code,omitempty"`
	CountryName string    `json:"country_name,omitempty"`
	Centroid    *GeoPoint `json:"centroid,omitempty"`
	Zoom        float64   `json:"zoom,omitempty"`
	Panel       string    `json:"panel,omitempty"`
}

// ChatMessage is one turn in an assistant conversation.
type ChatMessage struct {
	Role    string `json:"role"` // system | user | assistant
	Content string `json:"content"`
}

// ChatExchange is one assistant round-trip: the reply plus derived intents.
type ChatExchange struct {
	SessionID string    `json:"session_id"`
	Provider  string    `json:"provider"`
	Reply     string    `json:"reply"`
	Intents   []Intent  `json:"intents,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
