package app

import (
	"math"

	"github.com/daviderapp/travel-aggregator/internal/domain"
)

// Score rates one package against the user's preferences on a 0-100
// scale. Each component is normalized to [0,1] before weighting; the
// score is a ranking aid only and is not monotonic in any single input
// once the others vary.
func (p Policy) Score(pkg domain.Package, prefs domain.Preferences, budget float64) int {
	w := p.Weights

	// Cheaper is better; hits 0 once the budget ceiling is reached.
	priceScore := math.Max(0, 1-pkg.TotalPrice/budget)

	ratingScore := pkg.Accommodation.Rating / 5

	// With no stated amenity preferences the component is neutral.
	amenityScore := 0.5
	if len(prefs.Amenities) > 0 {
		have := map[string]bool{}
		for _, a := range pkg.Accommodation.Amenities {
			have[a] = true
		}
		matched := 0
		for _, want := range prefs.Amenities {
			if have[want] {
				matched++
			}
		}
		amenityScore = float64(matched) / float64(len(prefs.Amenities))
	}

	timeScore := flightTimeScore(pkg.Flight.DepartureTime.Hour(), prefs.FlightPreference)

	// A near-miss on type still has some value.
	typeScore := 0.3
	for _, t := range prefs.AccommodationTypes {
		if t == pkg.Accommodation.Type {
			typeScore = 1
			break
		}
	}

	sum := priceScore*w.Price +
		ratingScore*w.Rating +
		amenityScore*w.Amenities +
		timeScore*w.FlightTime +
		typeScore*w.TypeMatch

	total := w.Price + w.Rating + w.Amenities + w.FlightTime + w.TypeMatch
	if total > 0 {
		sum /= total
	}
	return int(math.Round(sum * 100))
}

func flightTimeScore(hour int, pref domain.FlightPreference) float64 {
	switch pref {
	case domain.FlightBestTime:
		if (hour >= 8 && hour <= 12) || (hour >= 14 && hour <= 18) {
			return 1
		}
		if hour >= 6 && hour <= 20 {
			return 0.7
		}
		return 0.3
	case domain.FlightCheapest:
		// Departure time is irrelevant when only price matters.
		return 0.5
	case domain.FlightShortest:
		// Duration already shaped the retrieved pool; reward daytime slots.
		if hour >= 9 && hour <= 17 {
			return 0.8
		}
		return 0.5
	default:
		return 0.5
	}
}
