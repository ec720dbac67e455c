package app_test

import (
	"testing"
	"time"

	"github.com/daviderapp/travel-aggregator/internal/app"
)

func TestAllocate_Shares(t *testing.T) {
	p := app.DefaultPolicy()
	a := p.Allocate(1000, 2)
	if a.FlightCeiling != 600 {
		t.Fatalf("flight ceiling = %v, want 600", a.FlightCeiling)
	}
	if a.NightlyCeiling != 350 {
		t.Fatalf("nightly ceiling = %v, want 350", a.NightlyCeiling)
	}
}

func TestAllocate_ZeroNightsTreatedAsOne(t *testing.T) {
	p := app.DefaultPolicy()
	a := p.Allocate(1000, 0)
	if a.NightlyCeiling != 700 {
		t.Fatalf("nightly ceiling = %v, want 700", a.NightlyCeiling)
	}
}

func TestNights(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2027, 6, day, 0, 0, 0, 0, time.UTC) }

	if n := app.Nights(d(4), d(6)); n != 2 {
		t.Fatalf("two full days = %d nights, want 2", n)
	}
	if n := app.Nights(d(4), d(4)); n != 1 {
		t.Fatalf("same-day stay = %d nights, want 1", n)
	}
	// Partial days round up.
	late := time.Date(2027, 6, 5, 10, 0, 0, 0, time.UTC)
	if n := app.Nights(d(4), late); n != 2 {
		t.Fatalf("partial day = %d nights, want 2", n)
	}
}
