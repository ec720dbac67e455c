package app

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/daviderapp/travel-aggregator/internal/adapters/observability"
	"github.com/daviderapp/travel-aggregator/internal/domain"
)

var (
	ErrMissingParams = errors.New("destination, checkIn and checkOut are required")
	ErrInvalidDates  = errors.New("checkOut must be after checkIn")
	ErrEmptyQuery    = errors.New("free-text query is required in ai mode")
)

// SearchInput carries either an already-structured intent (classic
// mode) or the raw text to interpret (ai mode).
type SearchInput struct {
	Mode   domain.SearchMode
	Query  string
	Intent domain.SearchIntent
}

type SearchService struct {
	repo      domain.TravelRepository
	cache     domain.Cache
	extractor *IntentExtractor
	policy    Policy
	cacheTTL  time.Duration
}

func NewSearchService(r domain.TravelRepository, c domain.Cache, e *IntentExtractor, p Policy, ttl time.Duration) *SearchService {
	return &SearchService{repo: r, cache: c, extractor: e, policy: p, cacheTTL: ttl}
}

// Search runs the full pipeline: intent resolution, budget allocation,
// candidate retrieval, combination, scoring, ranking and facets. The
// history write at the end is best-effort; its failure never fails the
// search.
func (s *SearchService) Search(ctx context.Context, in SearchInput) (domain.SearchResult, error) {
	res, err := s.doSearch(ctx, in)
	if err != nil {
		observability.ObserveSearch(string(in.Mode), "error", 0)
		return domain.SearchResult{}, err
	}
	return res, nil
}

func (s *SearchService) doSearch(ctx context.Context, in SearchInput) (domain.SearchResult, error) {
	start := time.Now()

	intent := in.Intent
	if in.Mode == domain.ModeAI {
		if strings.TrimSpace(in.Query) == "" {
			return domain.SearchResult{}, ErrEmptyQuery
		}
		intent = s.extractor.Extract(ctx, in.Query)
	}

	if intent.Destination == "" || intent.CheckIn.IsZero() || intent.CheckOut.IsZero() {
		return domain.SearchResult{}, ErrMissingParams
	}
	if !intent.CheckOut.After(intent.CheckIn) {
		return domain.SearchResult{}, ErrInvalidDates
	}

	dest, err := s.findDestination(ctx, intent.Destination)
	if err != nil {
		return domain.SearchResult{}, err
	}

	nights := Nights(intent.CheckIn, intent.CheckOut)
	alloc := s.policy.Allocate(intent.Budget, nights)

	// Flight and accommodation pools are independent lookups.
	var flights []domain.Flight
	var stays []domain.Accommodation
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		flights, err = s.repo.ListFlights(gctx, domain.FlightQuery{
			DestinationID: dest.ID,
			WindowStart:   intent.CheckIn,
			WindowEnd:     intent.CheckIn.Add(24 * time.Hour),
			MinSeats:      intent.Guests,
			MaxPrice:      alloc.FlightCeiling,
			Limit:         s.policy.MaxFlights,
		})
		return err
	})
	g.Go(func() error {
		var err error
		stays, err = s.repo.ListAccommodations(gctx, domain.StayQuery{
			DestinationID: dest.ID,
			Types:         intent.Preferences.AccommodationTypes,
			MinRooms:      int(math.Ceil(float64(intent.Guests) / 2)),
			MaxNightly:    alloc.NightlyCeiling,
			Limit:         s.policy.MaxStays,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.SearchResult{}, err
	}

	pkgs := s.policy.Combine(dest, flights, stays, nights, intent.Budget)
	for i := range pkgs {
		pkgs[i].Score = s.policy.Score(pkgs[i], intent.Preferences, intent.Budget)
	}
	top := Rank(pkgs, s.policy.TopN)
	facets := BuildFacets(pkgs)

	s.logSearch(ctx, dest, intent, in, len(top))

	res := domain.SearchResult{
		Packages:     top,
		Total:        len(top),
		SearchTimeMS: time.Since(start).Milliseconds(),
		Facets:       facets,
		Mode:         in.Mode,
	}
	if in.Mode == domain.ModeAI {
		res.OriginalQuery = in.Query
	}
	observability.ObserveSearch(string(in.Mode), "ok", len(pkgs))
	return res, nil
}

// Destinations lists the catalog for the UI, cached like any other read.
func (s *SearchService) Destinations(ctx context.Context) ([]domain.Destination, error) {
	const key = "destinations:all"
	var out []domain.Destination
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	out, err := s.repo.ListDestinations(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

func (s *SearchService) RecentSearches(ctx context.Context, limit int) ([]domain.SearchRecord, error) {
	return s.repo.RecentSearches(ctx, limit)
}

func (s *SearchService) findDestination(ctx context.Context, name string) (domain.Destination, error) {
	key := fmt.Sprintf("dest:%s", strings.ToLower(name))
	var d domain.Destination
	if ok, _ := s.cache.Get(ctx, key, &d); ok {
		return d, nil
	}
	d, err := s.repo.FindDestination(ctx, name)
	if err != nil {
		return domain.Destination{}, err
	}
	_ = s.cache.Set(ctx, key, d, int(s.cacheTTL.Seconds()))
	return d, nil
}

// logSearch appends to the history log. Failures are swallowed: the
// write is telemetry, not part of the search contract.
func (s *SearchService) logSearch(ctx context.Context, dest domain.Destination, intent domain.SearchIntent, in SearchInput, results int) {
	rec := domain.SearchRecord{
		ID:           uuid.NewString(),
		Destination:  dest.Name,
		CheckIn:      intent.CheckIn,
		CheckOut:     intent.CheckOut,
		Guests:       intent.Guests,
		Budget:       intent.Budget,
		Preferences:  intent.Preferences,
		ResultsCount: results,
		Mode:         in.Mode,
	}
	if in.Mode == domain.ModeAI {
		q := in.Query
		rec.Query = &q
	}
	if err := s.repo.LogSearch(ctx, rec); err != nil {
		log.Warn().Err(err).Str("destination", dest.Name).Msg("search history write failed")
	}
}
