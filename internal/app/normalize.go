package app

import (
	"strings"

	"github.com/daviderapp/travel-aggregator/internal/domain"
)

/********** synonym registries (single source of truth) **********/

// Canonical destination names are the Italian ones used by the catalog.
var cityAliases = map[string]string{
	"parigi":     "parigi",
	"paris":      "parigi",
	"barcellona": "barcellona",
	"barcelona":  "barcellona",
	"amsterdam":  "amsterdam",
	"berlino":    "berlino",
	"berlin":     "berlino",
	"praga":      "praga",
	"prague":     "praga",
}

var typeAliases = map[string]domain.AccommodationType{
	"hotel":             domain.TypeHotel,
	"hotel elegante":    domain.TypeHotel,
	"hotel di lusso":    domain.TypeHotel,
	"ostello":           domain.TypeHostel,
	"hostel":            domain.TypeHostel,
	"appartamento":      domain.TypeApartment,
	"apartment":         domain.TypeApartment,
	"b&b":               domain.TypeBnB,
	"bed and breakfast": domain.TypeBnB,
	"resort":            domain.TypeResort,
}

var amenityAliases = map[string]string{
	"piscina":     "Piscina",
	"pool":        "Piscina",
	"spa":         "Spa",
	"palestra":    "Palestra",
	"gym":         "Palestra",
	"colazione":   "Colazione Inclusa",
	"breakfast":   "Colazione Inclusa",
	"wifi":        "WiFi Gratuito",
	"parcheggio":  "Parcheggio",
	"parking":     "Parcheggio",
	"bar":         "Bar",
	"ristorante":  "Ristorante",
	"restaurant":  "Ristorante",
}

// NormalizeCity maps a destination token to its canonical catalog name.
// Unknown cities pass through unchanged so the repository's fuzzy match
// still gets a chance.
func NormalizeCity(s string) string {
	s = strings.TrimSpace(s)
	if c, ok := cityAliases[strings.ToLower(s)]; ok {
		return c
	}
	return s
}

// NormalizeTypes maps free-form accommodation-type phrases to the
// canonical enumeration. Unknown phrases are dropped; an empty result
// falls back to the generic HOTEL type.
func NormalizeTypes(in []string) []domain.AccommodationType {
	var out []domain.AccommodationType
	seen := map[domain.AccommodationType]bool{}
	for _, t := range in {
		mapped, ok := typeAliases[strings.ToLower(strings.TrimSpace(t))]
		if !ok || seen[mapped] {
			continue
		}
		seen[mapped] = true
		out = append(out, mapped)
	}
	if len(out) == 0 {
		out = []domain.AccommodationType{domain.TypeHotel}
	}
	return out
}

// NormalizeAmenities maps amenity phrases to canonical names and
// deduplicates after mapping. Unknown amenities pass through as given.
func NormalizeAmenities(in []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, a := range in {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		mapped, ok := amenityAliases[strings.ToLower(a)]
		if !ok {
			mapped = a
		}
		if seen[mapped] {
			continue
		}
		seen[mapped] = true
		out = append(out, mapped)
	}
	return out
}

func ParsePriceRange(s string) domain.PriceRange {
	switch domain.PriceRange(strings.ToLower(strings.TrimSpace(s))) {
	case domain.RangeBudget:
		return domain.RangeBudget
	case domain.RangeLuxury:
		return domain.RangeLuxury
	default:
		return domain.RangeMid
	}
}

func ParseFlightPreference(s string) domain.FlightPreference {
	switch domain.FlightPreference(strings.ToLower(strings.TrimSpace(s))) {
	case domain.FlightCheapest:
		return domain.FlightCheapest
	case domain.FlightShortest:
		return domain.FlightShortest
	default:
		return domain.FlightBestTime
	}
}

// DefaultPreferences returns a fresh default value per call; callers
// may mutate the slices without affecting other requests.
func DefaultPreferences() domain.Preferences {
	return domain.Preferences{
		AccommodationTypes: []domain.AccommodationType{domain.TypeHotel},
		PriceRange:         domain.RangeMid,
		Amenities:          []string{},
		FlightPreference:   domain.FlightBestTime,
	}
}
