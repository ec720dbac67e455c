package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/daviderapp/travel-aggregator/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) FindDestination(ctx context.Context, name string) (domain.Destination, error) {
	row := r.db.QueryRowContext(ctx, findDestinationSQL, strings.TrimSpace(name))
	d, err := scanDestination(row)
	if err == sql.ErrNoRows {
		return domain.Destination{}, domain.ErrNotFound
	}
	return d, err
}

func (r *Repo) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	rows, err := r.db.QueryContext(ctx, listDestinationsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

type scanner interface{ Scan(dest ...any) error }

func scanDestination(s scanner) (domain.Destination, error) {
	var d domain.Destination
	var img, desc sql.NullString
	if err := s.Scan(&d.ID, &d.Name, &d.Country, &d.AirportCode, &img, &desc); err != nil {
		return domain.Destination{}, err
	}
	if img.Valid {
		v := img.String
		d.ImageURL = &v
	}
	if desc.Valid {
		v := desc.String
		d.Description = &v
	}
	return d, nil
}

func (r *Repo) ListFlights(ctx context.Context, q domain.FlightQuery) ([]domain.Flight, error) {
	rows, err := r.db.QueryContext(ctx, listFlightsSQL,
		q.DestinationID, q.WindowStart, q.WindowEnd, q.MinSeats, q.MaxPrice, q.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Flight
	for rows.Next() {
		var f domain.Flight
		var aircraft sql.NullString
		if err := rows.Scan(
			&f.ID, &f.DestinationID, &f.Airline, &f.FlightNumber, &f.Origin,
			&f.DepartureTime, &f.ArrivalTime, &f.Duration, &f.Price, &f.AvailableSeats, &aircraft,
		); err != nil {
			return nil, err
		}
		if aircraft.Valid {
			v := aircraft.String
			f.Aircraft = &v
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *Repo) ListAccommodations(ctx context.Context, q domain.StayQuery) ([]domain.Accommodation, error) {
	args := []any{q.DestinationID, q.MinRooms, q.MaxNightly}
	sqlStr := listAccommodationsPrefix
	if len(q.Types) > 0 {
		sqlStr += " AND type IN (?" + strings.Repeat(",?", len(q.Types)-1) + ")\n"
		for _, t := range q.Types {
			args = append(args, string(t))
		}
	}
	sqlStr += listAccommodationsSuffix
	args = append(args, q.Limit)

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Accommodation
	for rows.Next() {
		var a domain.Accommodation
		var amenitiesJSON []byte
		var img, desc sql.NullString
		if err := rows.Scan(
			&a.ID, &a.DestinationID, &a.Name, &a.Type, &a.Address,
			&a.Rating, &a.PricePerNight, &amenitiesJSON, &a.AvailableRooms, &img, &desc,
		); err != nil {
			return nil, err
		}
		_ = json.Unmarshal(amenitiesJSON, &a.Amenities)
		if img.Valid {
			v := img.String
			a.ImageURL = &v
		}
		if desc.Valid {
			v := desc.String
			a.Description = &v
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *Repo) LogSearch(ctx context.Context, rec domain.SearchRecord) error {
	prefs, _ := json.Marshal(rec.Preferences)
	_, err := r.db.ExecContext(ctx, insertSearchSQL,
		rec.ID,
		rec.Destination,
		rec.CheckIn,
		rec.CheckOut,
		rec.Guests,
		rec.Budget,
		string(prefs),
		rec.ResultsCount,
		string(rec.Mode),
		valStr(rec.Query),
	)
	return err
}

func (r *Repo) RecentSearches(ctx context.Context, limit int) ([]domain.SearchRecord, error) {
	rows, err := r.db.QueryContext(ctx, recentSearchesSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SearchRecord
	for rows.Next() {
		var rec domain.SearchRecord
		var prefsJSON []byte
		var mode string
		var query sql.NullString
		if err := rows.Scan(
			&rec.ID, &rec.Destination, &rec.CheckIn, &rec.CheckOut,
			&rec.Guests, &rec.Budget, &prefsJSON, &rec.ResultsCount,
			&mode, &query, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		_ = json.Unmarshal(prefsJSON, &rec.Preferences)
		rec.Mode = domain.SearchMode(mode)
		if query.Valid {
			v := query.String
			rec.Query = &v
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *Repo) UpsertDestination(ctx context.Context, d domain.Destination) (int64, error) {
	res, err := r.db.ExecContext(ctx, upsertDestinationSQL,
		d.Name, d.Country, d.AirportCode, valStr(d.ImageURL), valStr(d.Description))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repo) UpsertFlight(ctx context.Context, f domain.Flight) error {
	_, err := r.db.ExecContext(ctx, upsertFlightSQL,
		f.DestinationID, f.Airline, f.FlightNumber, f.Origin,
		f.DepartureTime, f.ArrivalTime, f.Duration, f.Price, f.AvailableSeats, valStr(f.Aircraft))
	return err
}

func (r *Repo) UpsertAccommodation(ctx context.Context, a domain.Accommodation) error {
	amen, _ := json.Marshal(a.Amenities)
	_, err := r.db.ExecContext(ctx, upsertAccommodationSQL,
		a.DestinationID, a.Name, string(a.Type), a.Address,
		a.Rating, a.PricePerNight, string(amen), a.AvailableRooms,
		valStr(a.ImageURL), valStr(a.Description))
	return err
}
