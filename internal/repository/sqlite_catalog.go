package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/domain"
)

// SQLiteCatalogRepo implements CatalogRepo using a SQLite database.
type SQLiteCatalogRepo struct {
	db db.DBTX
}

// NewSQLiteCatalogRepo creates a new SQLiteCatalogRepo.
func NewSQLiteCatalogRepo(conn db.DBTX) *SQLiteCatalogRepo {
	return &SQLiteCatalogRepo{db: conn}
}

// ReplaceCity issues several statements; run it inside a UnitOfWork when the
// replacement must be atomic.
func (r *SQLiteCatalogRepo) ReplaceCity(ctx context.Context, c domain.City) error {
	now := nowUTC()
	query := `INSERT INTO cities (name, center_lat, center_lon, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET center_lat = excluded.center_lat,
			center_lon = excluded.center_lon, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, c.Name, c.Center.Lat, c.Center.Lon, now, now); err != nil {
		return fmt.Errorf("upserting city %s: %w", c.Name, err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM pois WHERE city_name = ?`, c.Name); err != nil {
		return fmt.Errorf("clearing pois for %s: %w", c.Name, err)
	}

	insert := `INSERT INTO pois (city_name, position, name, theme, cost, duration_min, rating, reviews, lat, lon)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, p := range c.POIs {
		_, err := r.db.ExecContext(ctx, insert,
			c.Name,
			i,
			p.Name,
			p.Theme,
			nullableFloatToValue(p.Cost),
			nullableIntToValue(p.DurationMin),
			nullableFloatToValue(p.Rating),
			nullableIntToValue(p.Reviews),
			p.Location.Lat,
			p.Location.Lon,
		)
		if err != nil {
			return fmt.Errorf("inserting poi %q: %w", p.Name, err)
		}
	}
	return nil
}

// GetCity looks a city up by name, ignoring case. POIs come back in catalog
// order.
func (r *SQLiteCatalogRepo) GetCity(ctx context.Context, name string) (*domain.City, error) {
	var c domain.City
	row := r.db.QueryRowContext(ctx,
		`SELECT name, center_lat, center_lon FROM cities WHERE name = ? COLLATE NOCASE`, name)
	if err := row.Scan(&c.Name, &c.Center.Lat, &c.Center.Lon); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("city %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning city: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT name, theme, cost, duration_min, rating, reviews, lat, lon
		FROM pois WHERE city_name = ? ORDER BY position`, c.Name)
	if err != nil {
		return nil, fmt.Errorf("listing pois: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPOI(rows)
		if err != nil {
			return nil, err
		}
		c.POIs = append(c.POIs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pois: %w", err)
	}
	return &c, nil
}

func (r *SQLiteCatalogRepo) ListCities(ctx context.Context) ([]CitySummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.name, c.center_lat, c.center_lon, COUNT(p.name)
		FROM cities c LEFT JOIN pois p ON p.city_name = c.name
		GROUP BY c.name ORDER BY c.name`)
	if err != nil {
		return nil, fmt.Errorf("listing cities: %w", err)
	}
	defer rows.Close()

	var out []CitySummary
	for rows.Next() {
		var s CitySummary
		if err := rows.Scan(&s.Name, &s.Center.Lat, &s.Center.Lon, &s.POICount); err != nil {
			return nil, fmt.Errorf("scanning city row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cities: %w", err)
	}
	return out, nil
}

func (r *SQLiteCatalogRepo) DeleteCity(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cities WHERE name = ? COLLATE NOCASE`, name); err != nil {
		return fmt.Errorf("deleting city: %w", err)
	}
	return nil
}

func scanPOI(rows *sql.Rows) (domain.PointOfInterest, error) {
	var p domain.PointOfInterest
	var cost, rating sql.NullFloat64
	var duration, reviews sql.NullInt64
	err := rows.Scan(&p.Name, &p.Theme, &cost, &duration, &rating, &reviews, &p.Location.Lat, &p.Location.Lon)
	if err != nil {
		return p, fmt.Errorf("scanning poi row: %w", err)
	}
	p.Cost = floatPtrFromNull(cost)
	p.DurationMin = intPtrFromNull(duration)
	p.Rating = floatPtrFromNull(rating)
	p.Reviews = intPtrFromNull(reviews)
	return p, nil
}
