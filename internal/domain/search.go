package domain

import "time"

type SearchMode string

const (
	ModeClassic SearchMode = "classic"
	ModeAI      SearchMode = "ai"
)

// Preferences is the normalized preference payload attached to every
// search. AccommodationTypes is never empty once normalized.
type Preferences struct {
	AccommodationTypes []AccommodationType `json:"accommodationType"`
	PriceRange         PriceRange          `json:"priceRange"`
	Amenities          []string            `json:"amenities"`
	FlightPreference   FlightPreference    `json:"flightPreference"`
}

// SearchIntent is the structured form of a request, whether it arrived
// as explicit parameters or was extracted from free text. Confidence is
// only meaningful for extracted intents.
type SearchIntent struct {
	Destination string
	CheckIn     time.Time
	CheckOut    time.Time
	Guests      int
	Budget      float64
	Preferences Preferences
	Confidence  float64
}

type FlightDetail struct {
	ID            int64     `json:"id"`
	Airline       string    `json:"airline"`
	FlightNumber  string    `json:"flightNumber"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"` // airport code
	DepartureTime time.Time `json:"departureTime"`
	ArrivalTime   time.Time `json:"arrivalTime"`
	Duration      int       `json:"duration"`
	Price         float64   `json:"price"`
	Aircraft      *string   `json:"aircraft,omitempty"`
}

type StayDetail struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Type          AccommodationType `json:"type"`
	Address       string            `json:"address"`
	Rating        float64           `json:"rating"`
	PricePerNight float64           `json:"pricePerNight"`
	TotalNights   int               `json:"totalNights"`
	TotalPrice    float64           `json:"totalPrice"`
	Amenities     []string          `json:"amenities"`
	ImageURL      *string           `json:"imageUrl,omitempty"`
	Description   *string           `json:"description,omitempty"`
}

// Package pairs one flight with one accommodation plus derived pricing.
// Score is filled by the scoring engine after generation.
type Package struct {
	ID            string       `json:"id"`
	Flight        FlightDetail `json:"flight"`
	Accommodation StayDetail   `json:"accommodation"`
	TotalPrice    float64      `json:"totalPrice"`
	Score         int          `json:"score"`
}

type PriceBand struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Facets summarize the whole affordable candidate set, not just the
// returned top slice.
type Facets struct {
	PriceRange         PriceBand           `json:"priceRange"`
	Ratings            []int               `json:"ratings"`
	Airlines           []string            `json:"airlines"`
	AccommodationTypes []AccommodationType `json:"accommodationTypes"`
}

type SearchResult struct {
	Packages      []Package  `json:"packages"`
	Total         int        `json:"total"`
	SearchTimeMS  int64      `json:"searchTime"`
	Facets        Facets     `json:"filters"`
	Mode          SearchMode `json:"mode"`
	OriginalQuery string     `json:"originalQuery,omitempty"`
}

// SearchRecord is the best-effort history row. ID is assigned by the
// service (uuid) before the write.
type SearchRecord struct {
	ID           string
	Destination  string
	CheckIn      time.Time
	CheckOut     time.Time
	Guests       int
	Budget       float64
	Preferences  Preferences
	ResultsCount int
	Mode         SearchMode
	Query        *string
	CreatedAt    time.Time
}
