package app

import (
	"fmt"

	"github.com/daviderapp/travel-aggregator/internal/domain"
)

// Combine builds the bounded cross-product of flight and accommodation
// candidates: flights outer, accommodations inner, both in input order
// so ranking stays reproducible. Pairs whose grand total exceeds the
// budget are dropped here; scoring happens downstream.
func (p Policy) Combine(dest domain.Destination, flights []domain.Flight, stays []domain.Accommodation, nights int, budget float64) []domain.Package {
	if len(flights) > p.MaxFlights {
		flights = flights[:p.MaxFlights]
	}
	if len(stays) > p.MaxStays {
		stays = stays[:p.MaxStays]
	}

	var out []domain.Package
	for _, f := range flights {
		for _, a := range stays {
			lodgingTotal := a.PricePerNight * float64(nights)
			total := f.Price + lodgingTotal
			if total > budget {
				continue
			}
			out = append(out, domain.Package{
				ID: fmt.Sprintf("%d-%d", f.ID, a.ID),
				Flight: domain.FlightDetail{
					ID:            f.ID,
					Airline:       f.Airline,
					FlightNumber:  f.FlightNumber,
					Origin:        f.Origin,
					Destination:   dest.AirportCode,
					DepartureTime: f.DepartureTime,
					ArrivalTime:   f.ArrivalTime,
					Duration:      f.Duration,
					Price:         f.Price,
					Aircraft:      f.Aircraft,
				},
				Accommodation: domain.StayDetail{
					ID:            a.ID,
					Name:          a.Name,
					Type:          a.Type,
					Address:       a.Address,
					Rating:        a.Rating,
					PricePerNight: a.PricePerNight,
					TotalNights:   nights,
					TotalPrice:    lodgingTotal,
					Amenities:     a.Amenities,
					ImageURL:      a.ImageURL,
					Description:   a.Description,
				},
				TotalPrice: total,
			})
		}
	}
	return out
}
