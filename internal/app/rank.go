package app

import (
	"math"
	"sort"

	"github.com/daviderapp/travel-aggregator/internal/domain"
)

// Rank sorts packages by score descending (stable, so equally scored
// packages keep their generation order) and truncates to n.
func Rank(pkgs []domain.Package, n int) []domain.Package {
	out := make([]domain.Package, len(pkgs))
	copy(out, pkgs)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// BuildFacets aggregates over the entire affordable set, not the
// truncated top slice, so client-side filters see everything that
// survived the budget.
func BuildFacets(pkgs []domain.Package) domain.Facets {
	f := domain.Facets{
		Ratings:            []int{},
		Airlines:           []string{},
		AccommodationTypes: []domain.AccommodationType{},
	}
	if len(pkgs) == 0 {
		return f
	}

	f.PriceRange.Min = math.Inf(1)
	ratings := map[int]bool{}
	airlines := map[string]bool{}
	types := map[domain.AccommodationType]bool{}
	for _, p := range pkgs {
		if p.TotalPrice < f.PriceRange.Min {
			f.PriceRange.Min = p.TotalPrice
		}
		if p.TotalPrice > f.PriceRange.Max {
			f.PriceRange.Max = p.TotalPrice
		}
		ratings[int(math.Floor(p.Accommodation.Rating))] = true
		airlines[p.Flight.Airline] = true
		if !types[p.Accommodation.Type] {
			types[p.Accommodation.Type] = true
			f.AccommodationTypes = append(f.AccommodationTypes, p.Accommodation.Type)
		}
	}

	for r := range ratings {
		f.Ratings = append(f.Ratings, r)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(f.Ratings)))

	for a := range airlines {
		f.Airlines = append(f.Airlines, a)
	}
	sort.Strings(f.Airlines)

	return f
}
