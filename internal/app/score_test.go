package app_test

import (
	"testing"
	"time"

	"github.com/daviderapp/travel-aggregator/internal/app"
	"github.com/daviderapp/travel-aggregator/internal/domain"
)

func pkgWith(total float64, rating float64, depHour int, typ domain.AccommodationType, amenities []string) domain.Package {
	return domain.Package{
		Flight: domain.FlightDetail{
			Airline:       "EasyJet",
			DepartureTime: time.Date(2027, 6, 4, depHour, 0, 0, 0, time.UTC),
		},
		Accommodation: domain.StayDetail{
			Type:      typ,
			Rating:    rating,
			Amenities: amenities,
		},
		TotalPrice: total,
	}
}

func basePrefs() domain.Preferences {
	return domain.Preferences{
		AccommodationTypes: []domain.AccommodationType{domain.TypeHotel},
		PriceRange:         domain.RangeMid,
		Amenities:          []string{},
		FlightPreference:   domain.FlightBestTime,
	}
}

func TestScore_RangeAndNeutralAmenities(t *testing.T) {
	p := app.DefaultPolicy()
	prefs := basePrefs()

	// Price at exactly the budget: price component is 0, amenities are
	// neutral 0.5 with no stated preferences.
	got := p.Score(pkgWith(800, 5, 10, domain.TypeHotel, nil), prefs, 800)
	// 0*.35 + 1*.25 + .5*.15 + 1*.15 + 1*.10 lands just under 57.5
	// in float64, so it rounds down.
	if got != 57 {
		t.Fatalf("score = %d, want 57", got)
	}
	if got < 0 || got > 100 {
		t.Fatalf("score out of range: %d", got)
	}
}

func TestScore_PerfectPackage(t *testing.T) {
	p := app.DefaultPolicy()
	prefs := basePrefs()
	prefs.Amenities = []string{"Spa", "Piscina"}

	got := p.Score(pkgWith(0, 5, 10, domain.TypeHotel, []string{"Spa", "Piscina", "Bar"}), prefs, 800)
	if got != 100 {
		t.Fatalf("score = %d, want 100", got)
	}
}

func TestScore_AmenityFraction(t *testing.T) {
	p := app.DefaultPolicy()
	prefs := basePrefs()
	prefs.Amenities = []string{"Spa", "Piscina", "Palestra", "Bar"}

	pkg := pkgWith(400, 4, 10, domain.TypeHotel, []string{"Spa", "Piscina"})
	// price .5*.35 + rating .8*.25 + amenities .5*.15 + time 1*.15 + type 1*.10 = 0.7
	if got := p.Score(pkg, prefs, 800); got != 70 {
		t.Fatalf("score = %d, want 70", got)
	}
}

func TestScore_FlightTimeComponents(t *testing.T) {
	p := app.DefaultPolicy()

	cases := []struct {
		pref domain.FlightPreference
		hour int
		want int
	}{
		{domain.FlightBestTime, 10, 93}, // prime slot
		{domain.FlightBestTime, 7, 88},  // decent slot: 0.7
		{domain.FlightBestTime, 23, 82}, // red-eye: 0.3
		{domain.FlightCheapest, 3, 85},  // time ignored, flat 0.5
		{domain.FlightShortest, 12, 89}, // daytime 0.8
		{domain.FlightShortest, 22, 85}, // otherwise 0.5
	}
	for _, tc := range cases {
		prefs := basePrefs()
		prefs.FlightPreference = tc.pref
		got := p.Score(pkgWith(0, 5, tc.hour, domain.TypeHotel, nil), prefs, 800)
		if got != tc.want {
			t.Fatalf("pref=%s hour=%d: score = %d, want %d", tc.pref, tc.hour, got, tc.want)
		}
	}
}

func TestScore_TypeMismatchNeverZero(t *testing.T) {
	p := app.DefaultPolicy()
	prefs := basePrefs() // wants HOTEL

	hostel := p.Score(pkgWith(400, 4, 10, domain.TypeHostel, nil), prefs, 800)
	hotel := p.Score(pkgWith(400, 4, 10, domain.TypeHotel, nil), prefs, 800)
	if hostel >= hotel {
		t.Fatalf("type mismatch should score lower: hostel=%d hotel=%d", hostel, hotel)
	}
	// The mismatch penalty is 0.3, not 0: the component still contributes.
	if hotel-hostel != 7 { // (1-0.3)*0.10*100 = 7
		t.Fatalf("unexpected type penalty: %d", hotel-hostel)
	}
}

func TestScore_OverBudgetClampsToZeroPrice(t *testing.T) {
	p := app.DefaultPolicy()
	over := p.Score(pkgWith(1200, 0, 23, domain.TypeHostel, nil), basePrefs(), 800)
	at := p.Score(pkgWith(800, 0, 23, domain.TypeHostel, nil), basePrefs(), 800)
	if over != at {
		t.Fatalf("price component should bottom out at 0: over=%d at=%d", over, at)
	}
}
