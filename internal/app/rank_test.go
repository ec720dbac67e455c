package app_test

import (
	"fmt"
	"testing"

	"github.com/daviderapp/travel-aggregator/internal/app"
	"github.com/daviderapp/travel-aggregator/internal/domain"
)

func TestRank_StableTiesAndTruncation(t *testing.T) {
	var pkgs []domain.Package
	for i := 0; i < 12; i++ {
		pkgs = append(pkgs, domain.Package{ID: fmt.Sprintf("p%d", i), Score: 50})
	}
	pkgs[3].Score = 90
	pkgs[7].Score = 70

	top := app.Rank(pkgs, 10)
	if len(top) != 10 {
		t.Fatalf("got %d, want 10", len(top))
	}
	if top[0].ID != "p3" || top[1].ID != "p7" {
		t.Fatalf("unexpected head: %s %s", top[0].ID, top[1].ID)
	}
	// Ties keep generation order.
	if top[2].ID != "p0" || top[3].ID != "p1" {
		t.Fatalf("tie order broken: %s %s", top[2].ID, top[3].ID)
	}
	// Input slice is left alone.
	if pkgs[0].ID != "p0" {
		t.Fatalf("input mutated")
	}
}

func TestBuildFacets_FullSetNotTopSlice(t *testing.T) {
	// 30 affordable packages across 12 carriers; the ranked list would
	// be cut at 10, but facets must still see all 12 airlines.
	var pkgs []domain.Package
	for i := 0; i < 30; i++ {
		pkgs = append(pkgs, domain.Package{
			ID: fmt.Sprintf("p%d", i),
			Flight: domain.FlightDetail{
				Airline: fmt.Sprintf("Carrier %02d", i%12),
			},
			Accommodation: domain.StayDetail{
				Type:   domain.TypeHotel,
				Rating: 3.5 + float64(i%2), // floors 3 and 4
			},
			TotalPrice: 100 + float64(i)*10,
			Score:      i,
		})
	}
	pkgs[5].Accommodation.Type = domain.TypeHostel

	f := app.BuildFacets(pkgs)
	if len(f.Airlines) != 12 {
		t.Fatalf("airlines facet = %d entries, want 12", len(f.Airlines))
	}
	if f.Airlines[0] != "Carrier 00" || f.Airlines[11] != "Carrier 11" {
		t.Fatalf("airlines not sorted ascending: %v", f.Airlines)
	}
	if f.PriceRange.Min != 100 || f.PriceRange.Max != 390 {
		t.Fatalf("price range = %+v", f.PriceRange)
	}
	if len(f.Ratings) != 2 || f.Ratings[0] != 4 || f.Ratings[1] != 3 {
		t.Fatalf("ratings facet = %v, want [4 3]", f.Ratings)
	}
	if len(f.AccommodationTypes) != 2 {
		t.Fatalf("types facet = %v", f.AccommodationTypes)
	}
}

func TestBuildFacets_EmptySet(t *testing.T) {
	f := app.BuildFacets(nil)
	if f.PriceRange.Min != 0 || f.PriceRange.Max != 0 {
		t.Fatalf("empty set must report {0,0}, got %+v", f.PriceRange)
	}
	if f.Ratings == nil || f.Airlines == nil || f.AccommodationTypes == nil {
		t.Fatalf("facet slices should be empty, not nil")
	}
}
