// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/daviderapp/travel-aggregator/internal/app"
	"github.com/daviderapp/travel-aggregator/internal/domain"
)

type Handlers struct{ S *app.SearchService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/search", h.search)
	s.mux.Get("/v1/destinations", h.destinations)
	s.mux.Get("/v1/searches/recent", h.recentSearches)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

const dateLayout = "2006-01-02"

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	in := app.SearchInput{Mode: domain.ModeClassic}
	if q.Get("mode") == string(domain.ModeAI) {
		in.Mode = domain.ModeAI
		in.Query = q.Get("query")
	} else {
		intent, err := classicIntent(q.Get("destination"), q.Get("checkIn"), q.Get("checkOut"),
			q.Get("guests"), q.Get("budget"), q.Get("preferences"))
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid Parameters", err.Error())
			return
		}
		in.Intent = intent
	}

	res, err := h.S.Search(r.Context(), in)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, res)
	case errors.Is(err, app.ErrMissingParams), errors.Is(err, app.ErrInvalidDates), errors.Is(err, app.ErrEmptyQuery):
		writeProblem(w, http.StatusBadRequest, "Invalid Parameters", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "destination not found")
	default:
		log.Error().Err(err).Msg("search failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "search failed")
	}
}

// classicIntent builds a structured intent from explicit query
// parameters. Missing dates stay zero so the service can reject them
// with its own taxonomy.
func classicIntent(dest, checkIn, checkOut, guests, budget, prefsJSON string) (domain.SearchIntent, error) {
	intent := domain.SearchIntent{
		Destination: dest,
		Guests:      2,
		Budget:      800,
		Preferences: app.DefaultPreferences(),
	}
	if checkIn != "" {
		d, err := time.Parse(dateLayout, checkIn)
		if err != nil {
			return intent, errors.New("checkIn must be YYYY-MM-DD")
		}
		intent.CheckIn = d
	}
	if checkOut != "" {
		d, err := time.Parse(dateLayout, checkOut)
		if err != nil {
			return intent, errors.New("checkOut must be YYYY-MM-DD")
		}
		intent.CheckOut = d
	}
	if guests != "" {
		n, err := strconv.Atoi(guests)
		if err != nil || n < 1 {
			return intent, errors.New("guests must be a positive integer")
		}
		intent.Guests = n
	}
	if budget != "" {
		b, err := strconv.ParseFloat(budget, 64)
		if err != nil || b <= 0 {
			return intent, errors.New("budget must be a positive number")
		}
		intent.Budget = b
	}
	if prefsJSON != "" {
		var p domain.Preferences
		if err := json.Unmarshal([]byte(prefsJSON), &p); err == nil {
			if len(p.AccommodationTypes) == 0 {
				p.AccommodationTypes = []domain.AccommodationType{domain.TypeHotel}
			}
			if p.PriceRange == "" {
				p.PriceRange = domain.RangeMid
			}
			if p.FlightPreference == "" {
				p.FlightPreference = domain.FlightBestTime
			}
			p.Amenities = app.NormalizeAmenities(p.Amenities)
			intent.Preferences = p
		}
		// Unparseable preferences keep the defaults; the search still runs.
	}
	return intent, nil
}

func (h *Handlers) destinations(w http.ResponseWriter, r *http.Request) {
	out, err := h.S.Destinations(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list destinations failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "could not list destinations")
		return
	}

	etag, body := calcETagAndBody(out)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write destinations body")
	}
}

func (h *Handlers) recentSearches(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > 100 {
			writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 100")
			return
		}
		limit = l
	}
	out, err := h.S.RecentSearches(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("recent searches failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "could not list recent searches")
		return
	}
	writeJSON(w, http.StatusOK, out)
}
