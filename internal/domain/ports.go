package domain

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

// FlightQuery narrows the flight pool before combination. MaxPrice is
// the allocator's flight ceiling; the repository sorts by price then
// departure time and caps the result at Limit.
type FlightQuery struct {
	DestinationID int64
	WindowStart   time.Time
	WindowEnd     time.Time
	MinSeats      int
	MaxPrice      float64
	Limit         int
}

// StayQuery narrows the accommodation pool. Types is never empty; the
// repository sorts by rating descending then nightly price ascending.
type StayQuery struct {
	DestinationID int64
	Types         []AccommodationType
	MinRooms      int
	MaxNightly    float64
	Limit         int
}

type TravelRepository interface {
	// Read paths
	FindDestination(ctx context.Context, name string) (Destination, error)
	ListDestinations(ctx context.Context) ([]Destination, error)
	ListFlights(ctx context.Context, q FlightQuery) ([]Flight, error)
	ListAccommodations(ctx context.Context, q StayQuery) ([]Accommodation, error)
	RecentSearches(ctx context.Context, limit int) ([]SearchRecord, error)

	// Write paths
	LogSearch(ctx context.Context, rec SearchRecord) error
	UpsertDestination(ctx context.Context, d Destination) (int64, error)
	UpsertFlight(ctx context.Context, f Flight) error
	UpsertAccommodation(ctx context.Context, a Accommodation) error
}

// TextBackend is one strategy in the intent-extraction cascade: a
// chat-style exchange that returns free-form text expected to contain
// a JSON object. Errors are classified by the adapter; the cascade
// treats any of them as "try the next backend".
type TextBackend interface {
	Name() string
	Complete(ctx context.Context, system, user string) (string, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
