package app

import (
	"math"
	"time"
)

// Allocation splits a total budget into the ceilings used to narrow
// the candidate pools before combination.
type Allocation struct {
	FlightCeiling  float64
	NightlyCeiling float64
}

// Allocate applies the policy's budget shares. Nights below 1 are
// treated as 1.
func (p Policy) Allocate(total float64, nights int) Allocation {
	if nights < 1 {
		nights = 1
	}
	return Allocation{
		FlightCeiling:  total * p.FlightBudgetShare,
		NightlyCeiling: (total * p.LodgingBudgetShare) / float64(nights),
	}
}

// Nights computes the stay length between check-in and check-out,
// rounding partial days up. A same-day range still counts as 1 night.
func Nights(checkIn, checkOut time.Time) int {
	h := checkOut.Sub(checkIn).Hours()
	if h < 0 {
		h = -h
	}
	n := int(math.Ceil(h / 24))
	if n < 1 {
		n = 1
	}
	return n
}
