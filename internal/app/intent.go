package app

import (
	"context"
	"encoding/json"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/daviderapp/travel-aggregator/internal/adapters/observability"
	"github.com/daviderapp/travel-aggregator/internal/domain"
)

// systemPrompt describes the JSON schema every backend must fill. It is
// sent unchanged to each backend in the cascade.
const systemPrompt = `You are a travel parameter extraction AI. Extract travel information from user requests and respond ONLY with valid JSON.

Extract these fields:
- destination: city name in Italian (parigi, barcellona, amsterdam, berlino, praga) or null
- checkIn: YYYY-MM-DD format or null if not specified
- checkOut: YYYY-MM-DD format or null if not specified
- guests: number of people or null
- maxBudget: budget in euros or null
- preferences: object with:
  * accommodation_type: array of strings like ["hotel", "ostello"]
  * price_range: "budget" | "mid" | "luxury"
  * amenities: array of strings like ["piscina", "spa", "colazione"]
  * flight_preference: "cheapest" | "shortest" | "best_time"
- confidence_score: 0-1 (how confident you are in the extraction)

Respond ONLY with JSON, no other text.`

// rawIntent mirrors the schema the backends are instructed to emit.
type rawIntent struct {
	Destination *string  `json:"destination"`
	CheckIn     *string  `json:"checkIn"`
	CheckOut    *string  `json:"checkOut"`
	Guests      *int     `json:"guests"`
	MaxBudget   *float64 `json:"maxBudget"`
	Preferences struct {
		AccommodationType []string `json:"accommodation_type"`
		PriceRange        string   `json:"price_range"`
		Amenities         []string `json:"amenities"`
		FlightPreference  string   `json:"flight_preference"`
	} `json:"preferences"`
	Confidence float64 `json:"confidence_score"`
}

// IntentExtractor turns free text into a structured SearchIntent. It
// cascades over the configured backends in order and terminates in a
// deterministic keyword extractor that never fails, so Extract always
// returns a usable intent.
type IntentExtractor struct {
	backends     []domain.TextBackend
	policy       Policy
	fallbackOnly bool
}

func NewIntentExtractor(backends []domain.TextBackend, p Policy, fallbackOnly bool) *IntentExtractor {
	return &IntentExtractor{backends: backends, policy: p, fallbackOnly: fallbackOnly}
}

func (e *IntentExtractor) Extract(ctx context.Context, query string) domain.SearchIntent {
	if !e.fallbackOnly {
		for _, b := range e.backends {
			raw, ok := e.attempt(ctx, b, query)
			if ok {
				return e.resolve(raw)
			}
		}
	}
	observability.ObserveIntent("fallback", "ok")
	return e.resolve(e.keywordExtract(query))
}

// attempt runs one backend. Every failure class (auth, rate limit,
// loading, bad JSON, sub-threshold confidence) is non-fatal: the
// cascade just moves on.
func (e *IntentExtractor) attempt(ctx context.Context, b domain.TextBackend, query string) (rawIntent, bool) {
	var raw rawIntent

	reply, err := b.Complete(ctx, systemPrompt, query)
	if err != nil {
		observability.ObserveIntent(b.Name(), "error")
		log.Warn().Str("backend", b.Name()).Err(err).Msg("intent backend failed")
		return raw, false
	}

	obj, err := FirstJSONObject(reply)
	if err != nil {
		observability.ObserveIntent(b.Name(), "bad_json")
		log.Warn().Str("backend", b.Name()).Err(err).Msg("no usable JSON in backend reply")
		return raw, false
	}
	if err := json.Unmarshal([]byte(obj), &raw); err != nil {
		observability.ObserveIntent(b.Name(), "bad_json")
		log.Warn().Str("backend", b.Name()).Err(err).Msg("backend JSON did not parse")
		return raw, false
	}

	if raw.Confidence < e.policy.MinConfidence {
		observability.ObserveIntent(b.Name(), "low_confidence")
		log.Info().Str("backend", b.Name()).Float64("confidence", raw.Confidence).Msg("extraction below confidence threshold")
		return raw, false
	}

	observability.ObserveIntent(b.Name(), "ok")
	return raw, true
}

/********** deterministic fallback **********/

var (
	guestsRe = regexp.MustCompile(`(?i)(\d+)\s*(?:person[ei]|persone|people)`)

	budgetRes = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*€`),
		regexp.MustCompile(`€\s*(\d+)`),
		regexp.MustCompile(`(?i)budget\s*(?:di\s*)?(\d+)`),
		regexp.MustCompile(`(?i)sotto\s*(?:i\s*)?(\d+)`),
		regexp.MustCompile(`(?i)(?:circa|intorno\s*a?|max)\s*(\d+)`),
	}
)

// keywordExtract is the no-fail terminal strategy: pattern-match known
// city names, a person-count phrase, a currency amount and a few date,
// type and amenity cues, then grade its own confidence by how much it
// managed to fill. Alias tables are scanned in sorted order and matched
// on whole words, so identical input always yields identical output.
func (e *IntentExtractor) keywordExtract(query string) rawIntent {
	var raw rawIntent
	lower := strings.ToLower(query)

	// When the text names several known cities, the one mentioned
	// first is the destination.
	destAt := -1
	for _, alias := range sortedKeys(cityAliases) {
		i := wordIndex(lower, alias)
		if i < 0 {
			continue
		}
		if destAt < 0 || i < destAt {
			destAt = i
			dest := cityAliases[alias]
			raw.Destination = &dest
		}
	}

	guests := e.policy.DefaultGuests
	if m := guestsRe.FindStringSubmatch(query); m != nil {
		guests = atoiClamped(m[1], e.policy.MinGuests, e.policy.MaxGuests)
	} else if strings.Contains(lower, "coppia") || strings.Contains(lower, "romantic") {
		guests = 2
	} else if strings.Contains(lower, "famiglia") || strings.Contains(lower, "family") {
		guests = 4
	}
	raw.Guests = &guests

	for _, re := range budgetRes {
		if m := re.FindStringSubmatch(query); m != nil {
			if v := atoiClamped(m[1], 0, 1<<30); float64(v) >= e.policy.BudgetFloor && float64(v) <= e.policy.BudgetCeil {
				b := float64(v)
				raw.MaxBudget = &b
			}
			break
		}
	}

	// "weekend" means the upcoming Friday plus two nights.
	if strings.Contains(lower, "weekend") {
		in := nextFriday(time.Now()).Format(dateLayout)
		out := nextFriday(time.Now()).AddDate(0, 0, 2).Format(dateLayout)
		raw.CheckIn = &in
		raw.CheckOut = &out
	}

	// Whole-word matching here matters: "bar" sits inside "barcellona"
	// and "spa" inside "spagna".
	for _, alias := range sortedKeys(typeAliases) {
		if wordIndex(lower, alias) >= 0 {
			raw.Preferences.AccommodationType = append(raw.Preferences.AccommodationType, alias)
		}
	}
	for _, alias := range sortedKeys(amenityAliases) {
		if wordIndex(lower, alias) >= 0 {
			raw.Preferences.Amenities = append(raw.Preferences.Amenities, alias)
		}
	}
	if strings.Contains(lower, "lusso") || strings.Contains(lower, "elegante") || strings.Contains(lower, "luxury") {
		raw.Preferences.PriceRange = string(domain.RangeLuxury)
	} else if strings.Contains(lower, "economico") || strings.Contains(lower, "budget") || strings.Contains(lower, "cheap") {
		raw.Preferences.PriceRange = string(domain.RangeBudget)
	}

	conf := 0.4
	if raw.Destination != nil {
		conf += 0.3
	}
	if raw.MaxBudget != nil {
		conf += 0.2
	}
	if len(query) > 30 {
		conf += 0.1
	}
	if conf > 0.85 {
		conf = 0.85
	}
	raw.Confidence = conf
	return raw
}

/********** normalization **********/

const dateLayout = "2006-01-02"

// resolve turns a raw extraction into a complete SearchIntent:
// canonical destination, defaulted dates (past dates are discarded,
// not corrected), clamped guest count, sane budget, normalized
// preferences.
func (e *IntentExtractor) resolve(raw rawIntent) domain.SearchIntent {
	now := time.Now()

	var dest string
	if raw.Destination != nil {
		dest = NormalizeCity(*raw.Destination)
	}

	checkIn := e.parseFutureDate(raw.CheckIn, now)
	if checkIn.IsZero() {
		checkIn = nextFriday(now)
	}
	checkOut := e.parseFutureDate(raw.CheckOut, now)
	if checkOut.IsZero() || !checkOut.After(checkIn) {
		checkOut = checkIn.AddDate(0, 0, 2)
	}

	guests := e.policy.DefaultGuests
	if raw.Guests != nil {
		guests = *raw.Guests
	}
	if guests < e.policy.MinGuests {
		guests = e.policy.MinGuests
	}
	if guests > e.policy.MaxGuests {
		guests = e.policy.MaxGuests
	}

	budget := e.policy.DefaultBudget
	if raw.MaxBudget != nil && *raw.MaxBudget >= e.policy.BudgetFloor && *raw.MaxBudget <= e.policy.BudgetCeil {
		budget = *raw.MaxBudget
	}

	prefs := domain.Preferences{
		AccommodationTypes: NormalizeTypes(raw.Preferences.AccommodationType),
		PriceRange:         ParsePriceRange(raw.Preferences.PriceRange),
		Amenities:          NormalizeAmenities(raw.Preferences.Amenities),
		FlightPreference:   ParseFlightPreference(raw.Preferences.FlightPreference),
	}

	conf := raw.Confidence
	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}

	return domain.SearchIntent{
		Destination: dest,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Guests:      guests,
		Budget:      budget,
		Preferences: prefs,
		Confidence:  conf,
	}
}

// parseFutureDate parses YYYY-MM-DD and discards anything before today.
func (e *IntentExtractor) parseFutureDate(s *string, now time.Time) time.Time {
	if s == nil || *s == "" || *s == "null" {
		return time.Time{}
	}
	d, err := time.Parse(dateLayout, *s)
	if err != nil {
		return time.Time{}
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return time.Time{}
	}
	return d
}

// nextFriday returns the upcoming Friday at midnight, or today when it
// already is Friday.
func nextFriday(now time.Time) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := (int(time.Friday) - int(today.Weekday()) + 7) % 7
	return today.AddDate(0, 0, days)
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// wordIndex returns the index of the first whole-word occurrence of
// sub in s, or -1. A match embedded in a longer word does not count.
func wordIndex(s, sub string) int {
	for from := 0; from <= len(s)-len(sub); {
		i := strings.Index(s[from:], sub)
		if i < 0 {
			return -1
		}
		i += from
		end := i + len(sub)
		if (i == 0 || !isWordByte(s[i-1])) && (end == len(s) || !isWordByte(s[end])) {
			return i
		}
		from = i + 1
	}
	return -1
}

func isWordByte(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '_'
}

func atoiClamped(s string, lo, hi int) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		if n > hi {
			return hi
		}
	}
	if n < lo {
		return lo
	}
	return n
}
