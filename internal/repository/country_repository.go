package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"countryservice/internal/apperrors"
	"countryservice/internal/model"
)

// CountryRepository provides data access methods for the country and
// app_metadata tables. It is the only component that touches persisted
// country rows.
type CountryRepository struct {
	db *sql.DB
}

// NewCountryRepository creates a new CountryRepository with the provided
// database connection.
func NewCountryRepository(db *sql.DB) *CountryRepository {
	return &CountryRepository{db: db}
}

const countryColumns = `id, name, capital, region, population, currency_code, exchange_rate, estimated_gdp, flag_url, last_refreshed_at`

// ReplaceAll atomically replaces the full country dataset and records the
// refresh timestamp in app_metadata.
//
// The delete and all inserts run in a single transaction: readers observe
// either the previous dataset or the new one, never a partial state. On any
// failure the transaction is rolled back and the previous dataset survives
// untouched.
func (r *CountryRepository) ReplaceAll(countries []model.Country, refreshedAt time.Time) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin replace transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(`DELETE FROM country`); err != nil {
		return fmt.Errorf("failed to clear country table: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO country (` + countryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare country insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range countries {
		id := c.ID
		if id == "" {
			id = uuid.NewString()
		}

		_, err := stmt.Exec(
			id,
			c.Name,
			nullString(c.Capital),
			nullString(c.Region),
			c.Population,
			c.CurrencyCode,
			c.ExchangeRate,
			c.EstimatedGDP,
			nullString(c.FlagURL),
			c.LastRefreshedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("failed to insert country %q: %w", c.Name, err)
		}
	}

	_, err = tx.Exec(`
		INSERT INTO app_metadata (id, last_refreshed_at) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET last_refreshed_at = excluded.last_refreshed_at
	`, refreshedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to update app metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit replace transaction: %w", err)
	}

	return nil
}

// GetAll retrieves countries matching the filter, sorted per filter.Sort.
// Region and currency filters are exact, case-insensitive matches; empty
// values apply no filter. An empty sort key returns insertion order.
// GDP sorts place rows without a GDP value last in both directions.
func (r *CountryRepository) GetAll(filter model.CountryFilter) ([]model.Country, error) {
	query := `SELECT ` + countryColumns + ` FROM country`

	var args []any
	var where []string

	if filter.Region != "" {
		where = append(where, `LOWER(region) = LOWER(?)`)
		args = append(args, filter.Region)
	}
	if filter.Currency != "" {
		where = append(where, `LOWER(currency_code) = LOWER(?)`)
		args = append(args, filter.Currency)
	}

	for i, clause := range where {
		if i == 0 {
			query += ` WHERE ` + clause
		} else {
			query += ` AND ` + clause
		}
	}

	switch filter.Sort {
	case model.SortGDPDesc:
		query += ` ORDER BY (estimated_gdp IS NULL), estimated_gdp DESC`
	case model.SortGDPAsc:
		query += ` ORDER BY (estimated_gdp IS NULL), estimated_gdp ASC`
	case model.SortPopulationDesc:
		query += ` ORDER BY population DESC`
	case model.SortPopulationAsc:
		query += ` ORDER BY population ASC`
	default:
		query += ` ORDER BY rowid`
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query country table: %w", err)
	}
	defer rows.Close()

	return scanCountries(rows)
}

// GetByName retrieves a single country by case-insensitive exact name match.
// Returns apperrors.ErrCountryNotFound when no such country exists.
func (r *CountryRepository) GetByName(name string) (*model.Country, error) {
	row := r.db.QueryRow(`
		SELECT `+countryColumns+`
		FROM country
		WHERE LOWER(name) = LOWER(?)
	`, name)

	c, err := scanCountry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.ErrCountryNotFound
		}
		return nil, fmt.Errorf("failed to query country by name: %w", err)
	}

	return c, nil
}

// DeleteByName deletes a country by case-insensitive exact name match.
// Returns apperrors.ErrCountryNotFound when no row was deleted.
func (r *CountryRepository) DeleteByName(name string) error {
	result, err := r.db.Exec(`DELETE FROM country WHERE LOWER(name) = LOWER(?)`, name)
	if err != nil {
		return fmt.Errorf("failed to delete country: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrCountryNotFound
	}

	return nil
}

// GetTopByGDP retrieves the top-limit countries ranked by estimated GDP.
// Countries without a GDP value are excluded from the ranking.
func (r *CountryRepository) GetTopByGDP(limit int) ([]model.Country, error) {
	rows, err := r.db.Query(`
		SELECT `+countryColumns+`
		FROM country
		WHERE estimated_gdp IS NOT NULL
		ORDER BY estimated_gdp DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top countries: %w", err)
	}
	defer rows.Close()

	return scanCountries(rows)
}

// Count returns the number of persisted countries.
func (r *CountryRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(id) FROM country`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count countries: %w", err)
	}
	return count, nil
}

// GetLastRefreshedAt returns the persisted timestamp of the last successful
// refresh, or nil when no refresh has ever completed.
func (r *CountryRepository) GetLastRefreshedAt() (*time.Time, error) {
	var raw sql.NullString
	err := r.db.QueryRow(`SELECT last_refreshed_at FROM app_metadata WHERE id = 1`).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query app metadata: %w", err)
	}
	if !raw.Valid {
		return nil, nil
	}

	t, err := ParseTime(raw.String)
	if err != nil {
		return nil, fmt.Errorf("failed to parse last refresh timestamp: %w", err)
	}

	return &t, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCountry(row rowScanner) (*model.Country, error) {
	var c model.Country
	var capital, region, flagURL sql.NullString
	var refreshedAt string

	err := row.Scan(
		&c.ID,
		&c.Name,
		&capital,
		&region,
		&c.Population,
		&c.CurrencyCode,
		&c.ExchangeRate,
		&c.EstimatedGDP,
		&flagURL,
		&refreshedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Capital = capital.String
	c.Region = region.String
	c.FlagURL = flagURL.String

	c.LastRefreshedAt, err = ParseTime(refreshedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse last_refreshed_at: %w", err)
	}

	return &c, nil
}

func scanCountries(rows *sql.Rows) ([]model.Country, error) {
	countries := []model.Country{}

	for rows.Next() {
		c, err := scanCountry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan country table results: %w", err)
		}
		countries = append(countries, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating country table: %w", err)
	}

	return countries, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
