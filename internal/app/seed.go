package app

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/daviderapp/travel-aggregator/internal/domain"
)

// SeedService fills the catalog with a plausible pool of destinations,
// flights and accommodations so the search pipeline has something to
// combine. Upserts are keyed, so reruns refresh rather than duplicate.
type SeedService struct {
	repo domain.TravelRepository
	seed int64
}

func NewSeedService(r domain.TravelRepository, seed int64) *SeedService {
	return &SeedService{repo: r, seed: seed}
}

type seedDestination struct {
	Name        string
	Country     string
	AirportCode string
	ImageURL    string
	Description string
	BasePrice   float64 // typical one-way fare from MXP
	BaseMinutes int
}

var seedDestinations = []seedDestination{
	{"parigi", "Francia", "CDG", "https://images.unsplash.com/photo-1502602898536-47ad22581b52", "La città dell'amore e delle luci", 180, 120},
	{"barcellona", "Spagna", "BCN", "https://images.unsplash.com/photo-1583422409516-2895a77efded", "Arte, architettura e vita notturna", 120, 105},
	{"amsterdam", "Olanda", "AMS", "https://images.unsplash.com/photo-1534351590666-13e3e96b5017", "Canali, musei e cultura liberale", 150, 110},
	{"berlino", "Germania", "BER", "https://images.unsplash.com/photo-1560969184-10fe8719e047", "Storia, arte e vita notturna", 140, 95},
	{"praga", "Repubblica Ceca", "PRG", "https://images.unsplash.com/photo-1541849546-216549ae216d", "Architettura medievale e birra", 100, 90},
}

var (
	seedAirlines  = []string{"Ryanair", "EasyJet", "Lufthansa", "Air France", "KLM", "Vueling", "Wizz Air"}
	seedAircraft  = []string{"Boeing 737", "Airbus A320", "Airbus A319", "Boeing 787", "Airbus A330"}
	seedStayNames = []string{
		"Grand Hotel Europa", "City Center Inn", "Boutique Palace", "Modern Suites",
		"Heritage Hotel", "Downtown Hostel", "Luxury Resort", "Cozy B&B",
		"Executive Apartments", "Vintage Villa",
	}
	seedAmenities = []string{
		"WiFi Gratuito", "Piscina", "Palestra", "Spa", "Ristorante",
		"Bar", "Parcheggio", "Animali Ammessi", "Aria Condizionata",
		"Colazione Inclusa", "Reception 24h", "Centro Business",
	}
	seedTypes = []domain.AccommodationType{
		domain.TypeHotel, domain.TypeHostel, domain.TypeApartment, domain.TypeBnB, domain.TypeResort,
	}
)

func (s *SeedService) Destinations() []string {
	names := make([]string, len(seedDestinations))
	for i, d := range seedDestinations {
		names[i] = d.Name
	}
	return names
}

// SeedDestination upserts one catalog destination with ~18 flights over
// the next 30 days and 10 accommodations.
func (s *SeedService) SeedDestination(ctx context.Context, name string) error {
	var sd seedDestination
	for _, d := range seedDestinations {
		if d.Name == name {
			sd = d
			break
		}
	}
	if sd.Name == "" {
		return fmt.Errorf("unknown seed destination %q", name)
	}

	// Destinations are seeded concurrently; each one gets its own
	// generator since rand.Rand is not safe for shared use.
	rng := rand.New(rand.NewSource(s.seed + int64(len(sd.Name))*1009 + int64(sd.AirportCode[0])))

	img, desc := sd.ImageURL, sd.Description
	id, err := s.repo.UpsertDestination(ctx, domain.Destination{
		Name:        sd.Name,
		Country:     sd.Country,
		AirportCode: sd.AirportCode,
		ImageURL:    &img,
		Description: &desc,
	})
	if err != nil {
		return fmt.Errorf("upsert destination %s: %w", sd.Name, err)
	}

	for i := 0; i < 18; i++ {
		if err := s.repo.UpsertFlight(ctx, makeFlight(rng, id, sd)); err != nil {
			return fmt.Errorf("upsert flight for %s: %w", sd.Name, err)
		}
	}
	for i := 0; i < 10; i++ {
		if err := s.repo.UpsertAccommodation(ctx, makeStay(rng, id, sd, i)); err != nil {
			return fmt.Errorf("upsert accommodation for %s: %w", sd.Name, err)
		}
	}
	return nil
}

func makeFlight(rng *rand.Rand, destID int64, sd seedDestination) domain.Flight {
	airline := seedAirlines[rng.Intn(len(seedAirlines))]
	aircraft := seedAircraft[rng.Intn(len(seedAircraft))]

	// 70%-130% of the base fare, departures 06:00-21:45 over 30 days.
	price := float64(int(sd.BasePrice * (0.7 + rng.Float64()*0.6)))
	hour := 6 + rng.Intn(16)
	minute := []int{0, 15, 30, 45}[rng.Intn(4)]
	now := time.Now()
	dep := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC).
		AddDate(0, 0, rng.Intn(30))
	duration := sd.BaseMinutes + rng.Intn(30)

	code := strings.ToUpper(airline[:2])
	return domain.Flight{
		DestinationID:  destID,
		Airline:        airline,
		FlightNumber:   fmt.Sprintf("%s%d", code, 1000+rng.Intn(9000)),
		Origin:         "MXP",
		DepartureTime:  dep,
		ArrivalTime:    dep.Add(time.Duration(duration) * time.Minute),
		Duration:       duration,
		Price:          price,
		AvailableSeats: 10 + rng.Intn(50),
		Aircraft:       &aircraft,
	}
}

func makeStay(rng *rand.Rand, destID int64, sd seedDestination, i int) domain.Accommodation {
	typ := seedTypes[rng.Intn(len(seedTypes))]

	nightly := 40.0
	switch typ {
	case domain.TypeHostel:
		nightly = 25 + float64(rng.Intn(30))
	case domain.TypeApartment:
		nightly = 60 + float64(rng.Intn(80))
	case domain.TypeBnB:
		nightly = 50 + float64(rng.Intn(60))
	case domain.TypeResort:
		nightly = 120 + float64(rng.Intn(180))
	default:
		nightly = 70 + float64(rng.Intn(130))
	}

	// Rating 3.0-5.0, biased upward like real listing sites.
	rating := float64(30+rng.Intn(21)) / 10

	n := 4 + rng.Intn(5)
	perm := rng.Perm(len(seedAmenities))[:n]
	amenities := make([]string, 0, n)
	for _, idx := range perm {
		amenities = append(amenities, seedAmenities[idx])
	}

	name := fmt.Sprintf("%s %s", seedStayNames[i%len(seedStayNames)], title(sd.Name))
	desc := fmt.Sprintf("Soggiorno a %s, a pochi passi dal centro.", title(sd.Name))
	return domain.Accommodation{
		DestinationID:  destID,
		Name:           name,
		Type:           typ,
		Address:        fmt.Sprintf("Via Centrale %d, %s", 1+rng.Intn(200), title(sd.Name)),
		Rating:         rating,
		PricePerNight:  nightly,
		Amenities:      amenities,
		AvailableRooms: 1 + rng.Intn(10),
		Description:    &desc,
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
