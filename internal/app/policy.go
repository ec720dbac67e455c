package app

// ScoreWeights are the relative weights of the five scoring components.
// They should sum to 1; Score normalizes against the sum regardless.
type ScoreWeights struct {
	Price      float64
	Rating     float64
	Amenities  float64
	FlightTime float64
	TypeMatch  float64
}

// Policy collects the fixed tuning constants of the matching pipeline
// in one place so tests can substitute alternatives without touching
// the algorithms.
type Policy struct {
	// Budget split between flight and lodging spend.
	FlightBudgetShare  float64
	LodgingBudgetShare float64

	Weights ScoreWeights

	// Candidate pool caps before combination (15x10 = 150 pairs max).
	MaxFlights int
	MaxStays   int

	// Ranked list size.
	TopN int

	// Intent extraction.
	MinConfidence float64
	MinGuests     int
	MaxGuests     int
	DefaultGuests int
	DefaultBudget float64
	BudgetFloor   float64
	BudgetCeil    float64
}

func DefaultPolicy() Policy {
	return Policy{
		FlightBudgetShare:  0.6,
		LodgingBudgetShare: 0.7,
		Weights: ScoreWeights{
			Price:      0.35,
			Rating:     0.25,
			Amenities:  0.15,
			FlightTime: 0.15,
			TypeMatch:  0.10,
		},
		MaxFlights:    15,
		MaxStays:      10,
		TopN:          10,
		MinConfidence: 0.3,
		MinGuests:     1,
		MaxGuests:     8,
		DefaultGuests: 2,
		DefaultBudget: 800,
		BudgetFloor:   50,
		BudgetCeil:    10000,
	}
}
