package app_test

import (
	"reflect"
	"testing"

	"github.com/daviderapp/travel-aggregator/internal/app"
	"github.com/daviderapp/travel-aggregator/internal/domain"
)

func TestNormalizeCity(t *testing.T) {
	cases := map[string]string{
		"Paris":      "parigi",
		"PARIGI":     "parigi",
		"barcelona":  "barcellona",
		"  Berlin ":  "berlino",
		"Timbuktu":   "Timbuktu", // unknown passes through
	}
	for in, want := range cases {
		if got := app.NormalizeCity(in); got != want {
			t.Fatalf("NormalizeCity(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeTypes(t *testing.T) {
	got := app.NormalizeTypes([]string{"Hotel elegante", "ostello", "HOSTEL", "spaceship"})
	want := []domain.AccommodationType{domain.TypeHotel, domain.TypeHostel}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNormalizeTypes_EmptyDefaultsToHotel(t *testing.T) {
	got := app.NormalizeTypes(nil)
	if len(got) != 1 || got[0] != domain.TypeHotel {
		t.Fatalf("got %v, want [HOTEL]", got)
	}
}

func TestNormalizeAmenities_MapAndDedup(t *testing.T) {
	got := app.NormalizeAmenities([]string{"pool", "Piscina", "SPA", "sauna finlandese"})
	want := []string{"Piscina", "Spa", "sauna finlandese"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDefaultPreferences_FreshPerCall(t *testing.T) {
	a := app.DefaultPreferences()
	a.Amenities = append(a.Amenities, "Spa")
	a.AccommodationTypes[0] = domain.TypeResort

	b := app.DefaultPreferences()
	if len(b.Amenities) != 0 || b.AccommodationTypes[0] != domain.TypeHotel {
		t.Fatalf("defaults shared between calls: %+v", b)
	}
}
