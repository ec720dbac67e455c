package domain

import "time"

type AccommodationType string

const (
	TypeHotel     AccommodationType = "HOTEL"
	TypeHostel    AccommodationType = "HOSTEL"
	TypeApartment AccommodationType = "APARTMENT"
	TypeBnB       AccommodationType = "BNB"
	TypeResort    AccommodationType = "RESORT"
)

type PriceRange string

const (
	RangeBudget PriceRange = "budget"
	RangeMid    PriceRange = "mid"
	RangeLuxury PriceRange = "luxury"
)

type FlightPreference string

const (
	FlightCheapest FlightPreference = "cheapest"
	FlightShortest FlightPreference = "shortest"
	FlightBestTime FlightPreference = "best_time"
)

type Destination struct {
	ID          int64
	Name        string
	Country     string
	AirportCode string
	ImageURL    *string
	Description *string
}

type Flight struct {
	ID             int64
	DestinationID  int64
	Airline        string
	FlightNumber   string
	Origin         string
	DepartureTime  time.Time
	ArrivalTime    time.Time
	Duration       int // minutes
	Price          float64
	AvailableSeats int
	Aircraft       *string
}

type Accommodation struct {
	ID             int64
	DestinationID  int64
	Name           string
	Type           AccommodationType
	Address        string
	Rating         float64 // 0..5
	PricePerNight  float64
	Amenities      []string
	AvailableRooms int
	ImageURL       *string
	Description    *string
}
