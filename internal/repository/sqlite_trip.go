package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/domain"
)

// SQLiteTripRepo implements TripRepo using a SQLite database. A trip spans
// several tables; Create, Update and Delete should run inside a UnitOfWork.
type SQLiteTripRepo struct {
	db db.DBTX
}

// NewSQLiteTripRepo creates a new SQLiteTripRepo.
func NewSQLiteTripRepo(conn db.DBTX) *SQLiteTripRepo {
	return &SQLiteTripRepo{db: conn}
}

const tripColumns = `id, origin, destination, start_date, end_date, budget, party_size, themes, mood, modes,
	day_start_hour, day_end_hour, base_seed, sequence, current_variant, created_at, updated_at`

func (r *SQLiteTripRepo) Create(ctx context.Context, t *domain.Trip) error {
	query := `INSERT INTO trips (` + tripColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Origin,
		t.Destination,
		t.StartDate.Format(dateLayout),
		t.EndDate.Format(dateLayout),
		t.Budget,
		t.PartySize,
		joinList(t.Themes),
		t.Mood,
		joinList(modeStrings(t.Modes)),
		t.Hours.StartHour,
		t.Hours.EndHour,
		t.BaseSeed,
		string(t.Sequence),
		t.Itineraries.Current,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting trip: %w", err)
	}
	return r.writeChildren(ctx, t)
}

func (r *SQLiteTripRepo) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+tripColumns+` FROM trips WHERE id = ?`, id)
	t, err := scanTrip(row.Scan)
	if err == sql.ErrNoRows {
		t, err = r.getByPrefix(ctx, id)
	}
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("trip %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	if err := r.loadChildren(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTripRepo) getByPrefix(ctx context.Context, prefix string) (*domain.Trip, error) {
	if prefix == "" {
		return nil, sql.ErrNoRows
	}
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(prefix)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+tripColumns+` FROM trips WHERE id LIKE ? ESCAPE '\' LIMIT 2`, escaped+"%")
	if err != nil {
		return nil, fmt.Errorf("looking up trip prefix: %w", err)
	}
	defer rows.Close()

	var found []*domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows.Scan)
		if err != nil {
			return nil, err
		}
		found = append(found, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trips: %w", err)
	}
	switch len(found) {
	case 0:
		return nil, sql.ErrNoRows
	case 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("trip %s: %w", prefix, ErrAmbiguousID)
	}
}

// List returns every trip, newest first, with variants loaded.
func (r *SQLiteTripRepo) List(ctx context.Context) ([]*domain.Trip, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+tripColumns+` FROM trips ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing trips: %w", err)
	}
	var trips []*domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows.Scan)
		if err != nil {
			rows.Close()
			return nil, err
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating trips: %w", err)
	}
	rows.Close()

	for _, t := range trips {
		if err := r.loadChildren(ctx, t); err != nil {
			return nil, err
		}
	}
	return trips, nil
}

func (r *SQLiteTripRepo) Update(ctx context.Context, t *domain.Trip) error {
	query := `UPDATE trips SET origin = ?, destination = ?, start_date = ?, end_date = ?, budget = ?,
		party_size = ?, themes = ?, mood = ?, modes = ?, day_start_hour = ?, day_end_hour = ?,
		base_seed = ?, sequence = ?, current_variant = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Origin,
		t.Destination,
		t.StartDate.Format(dateLayout),
		t.EndDate.Format(dateLayout),
		t.Budget,
		t.PartySize,
		joinList(t.Themes),
		t.Mood,
		joinList(modeStrings(t.Modes)),
		t.Hours.StartHour,
		t.Hours.EndHour,
		t.BaseSeed,
		string(t.Sequence),
		t.Itineraries.Current,
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating trip: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("trip %s: %w", t.ID, ErrNotFound)
	}
	if err := r.deleteChildren(ctx, t.ID); err != nil {
		return err
	}
	return r.writeChildren(ctx, t)
}

func (r *SQLiteTripRepo) Delete(ctx context.Context, id string) error {
	if err := r.deleteChildren(ctx, id); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting trip: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("trip %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTripRepo) deleteChildren(ctx context.Context, tripID string) error {
	for _, table := range []string{"day_activities", "variant_days", "trip_variants", "trip_travel"} {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE trip_id = ?`, tripID); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

func (r *SQLiteTripRepo) writeChildren(ctx context.Context, t *domain.Trip) error {
	for vi, v := range t.Itineraries.Variants {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO trip_variants (trip_id, position, seed) VALUES (?, ?, ?)`,
			t.ID, vi, v.Seed); err != nil {
			return fmt.Errorf("inserting variant %d: %w", vi, err)
		}
		for di, d := range v.Days {
			if _, err := r.db.ExecContext(ctx,
				`INSERT INTO variant_days (trip_id, variant, day_index, date) VALUES (?, ?, ?, ?)`,
				t.ID, vi, di, d.Date.Format(dateLayout)); err != nil {
				return fmt.Errorf("inserting variant %d day %d: %w", vi, di, err)
			}
			for ai, a := range d.Activities {
				if err := r.insertActivity(ctx, t.ID, vi, di, ai, a); err != nil {
					return err
				}
			}
		}
	}

	for _, o := range t.ChosenTravel {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO trip_travel (trip_id, mode, provider, price, currency, depart, arrive, duration_min, rating, reviews)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, string(o.Mode), o.Provider, o.Price, o.Currency, o.Depart, o.Arrive, o.DurationMin, o.Rating, o.Reviews)
		if err != nil {
			return fmt.Errorf("inserting %s travel: %w", o.Mode, err)
		}
	}
	return nil
}

func (r *SQLiteTripRepo) insertActivity(ctx context.Context, tripID string, variant, day, pos int, a domain.ScheduledActivity) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO day_activities (trip_id, variant, day_index, position, poi_name, theme, cost,
			duration_min, rating, reviews, lat, lon, start_time, end_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tripID, variant, day, pos,
		a.Name,
		a.Theme,
		nullableFloatToValue(a.Cost),
		nullableIntToValue(a.DurationMin),
		nullableFloatToValue(a.Rating),
		nullableIntToValue(a.Reviews),
		a.Location.Lat,
		a.Location.Lon,
		a.StartTime,
		a.EndTime,
	)
	if err != nil {
		return fmt.Errorf("inserting activity %q: %w", a.Name, err)
	}
	return nil
}

func (r *SQLiteTripRepo) loadChildren(ctx context.Context, t *domain.Trip) error {
	current := t.Itineraries.Current

	variants, err := r.loadVariants(ctx, t)
	if err != nil {
		return err
	}
	if err := r.loadDays(ctx, t.ID, variants); err != nil {
		return err
	}
	if err := r.loadActivities(ctx, t.ID, variants); err != nil {
		return err
	}
	t.Itineraries = domain.ItinerarySet{Variants: variants, Current: current}
	if current >= len(variants) {
		t.Itineraries.Current = 0
	}

	travel, err := r.loadTravel(ctx, t.ID)
	if err != nil {
		return err
	}
	t.ChosenTravel = travel
	return nil
}

func (r *SQLiteTripRepo) loadVariants(ctx context.Context, t *domain.Trip) ([]domain.Itinerary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT seed FROM trip_variants WHERE trip_id = ? ORDER BY position`, t.ID)
	if err != nil {
		return nil, fmt.Errorf("listing variants: %w", err)
	}
	defer rows.Close()

	var variants []domain.Itinerary
	for rows.Next() {
		v := domain.Itinerary{Hours: t.Hours}
		if err := rows.Scan(&v.Seed); err != nil {
			return nil, fmt.Errorf("scanning variant row: %w", err)
		}
		variants = append(variants, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating variants: %w", err)
	}
	return variants, nil
}

func (r *SQLiteTripRepo) loadDays(ctx context.Context, tripID string, variants []domain.Itinerary) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT variant, date FROM variant_days WHERE trip_id = ? ORDER BY variant, day_index`, tripID)
	if err != nil {
		return fmt.Errorf("listing variant days: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var vi int
		var dateStr string
		if err := rows.Scan(&vi, &dateStr); err != nil {
			return fmt.Errorf("scanning day row: %w", err)
		}
		if vi < 0 || vi >= len(variants) {
			return fmt.Errorf("day row references missing variant %d", vi)
		}
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return fmt.Errorf("parsing day date: %w", err)
		}
		variants[vi].Days = append(variants[vi].Days, domain.DayPlan{Date: date})
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating days: %w", err)
	}
	return nil
}

func (r *SQLiteTripRepo) loadActivities(ctx context.Context, tripID string, variants []domain.Itinerary) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT variant, day_index, poi_name, theme, cost, duration_min, rating, reviews, lat, lon, start_time, end_time
		FROM day_activities WHERE trip_id = ? ORDER BY variant, day_index, position`, tripID)
	if err != nil {
		return fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var vi, di int
		var a domain.ScheduledActivity
		var cost, rating sql.NullFloat64
		var duration, reviews sql.NullInt64
		err := rows.Scan(&vi, &di, &a.Name, &a.Theme, &cost, &duration, &rating, &reviews,
			&a.Location.Lat, &a.Location.Lon, &a.StartTime, &a.EndTime)
		if err != nil {
			return fmt.Errorf("scanning activity row: %w", err)
		}
		if vi < 0 || vi >= len(variants) || di < 0 || di >= len(variants[vi].Days) {
			return fmt.Errorf("activity row references missing day %d of variant %d", di, vi)
		}
		a.Cost = floatPtrFromNull(cost)
		a.DurationMin = intPtrFromNull(duration)
		a.Rating = floatPtrFromNull(rating)
		a.Reviews = intPtrFromNull(reviews)

		day := &variants[vi].Days[di]
		day.Activities = append(day.Activities, a)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating activities: %w", err)
	}
	return nil
}

func (r *SQLiteTripRepo) loadTravel(ctx context.Context, tripID string) (map[domain.TravelMode]domain.TravelOffer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT mode, provider, price, currency, depart, arrive, duration_min, rating, reviews
		FROM trip_travel WHERE trip_id = ?`, tripID)
	if err != nil {
		return nil, fmt.Errorf("listing travel: %w", err)
	}
	defer rows.Close()

	out := make(map[domain.TravelMode]domain.TravelOffer)
	for rows.Next() {
		var o domain.TravelOffer
		var mode string
		if err := rows.Scan(&mode, &o.Provider, &o.Price, &o.Currency, &o.Depart, &o.Arrive,
			&o.DurationMin, &o.Rating, &o.Reviews); err != nil {
			return nil, fmt.Errorf("scanning travel row: %w", err)
		}
		o.Mode = domain.TravelMode(mode)
		out[o.Mode] = o
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating travel: %w", err)
	}
	return out, nil
}

// scanTrip reads one trips row through scan, which is either
// (*sql.Row).Scan or (*sql.Rows).Scan. It returns sql.ErrNoRows unwrapped.
func scanTrip(scan func(dest ...any) error) (*domain.Trip, error) {
	var t domain.Trip
	var startStr, endStr, themes, modes, sequence, createdStr, updatedStr string
	err := scan(
		&t.ID, &t.Origin, &t.Destination,
		&startStr, &endStr,
		&t.Budget, &t.PartySize,
		&themes, &t.Mood, &modes,
		&t.Hours.StartHour, &t.Hours.EndHour,
		&t.BaseSeed, &sequence, &t.Itineraries.Current,
		&createdStr, &updatedStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning trip: %w", err)
	}

	var parseErr error
	if t.StartDate, parseErr = time.Parse(dateLayout, startStr); parseErr != nil {
		return nil, fmt.Errorf("parsing start_date: %w", parseErr)
	}
	if t.EndDate, parseErr = time.Parse(dateLayout, endStr); parseErr != nil {
		return nil, fmt.Errorf("parsing end_date: %w", parseErr)
	}
	if t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdStr); parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	if t.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedStr); parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	t.Themes = splitList(themes)
	for _, m := range splitList(modes) {
		t.Modes = append(t.Modes, domain.TravelMode(m))
	}
	t.Sequence = domain.SequenceStrategy(sequence)
	return &t, nil
}

func modeStrings(modes []domain.TravelMode) []string {
	out := make([]string, len(modes))
	for i, m := range modes {
		out[i] = string(m)
	}
	return out
}
