package database

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"listingparser/internal/models"
)

// ErrListingNotFound is returned when no listing has the requested id.
var ErrListingNotFound = errors.New("listing not found")

type Database struct {
	db *sql.DB
}

// NewDatabase creates a new database connection
func NewDatabase(dbPath string) (*Database, error) {
	// Ensure the directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on&_cache_size=10000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite works best with single connection
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	database := &Database{db: db}

	if err := database.initializeSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return database, nil
}

// Close closes the database connection
func (d *Database) Close() error {
	return d.db.Close()
}

// Ping checks the connection is usable
func (d *Database) Ping() error {
	return d.db.Ping()
}

// initializeSchema creates tables and indexes
func (d *Database) initializeSchema() error {
	schemaPath := filepath.Join("internal", "database", "schema.sql")
	schemaFile, err := os.Open(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to open schema file: %w", err)
	}
	defer schemaFile.Close()

	schema, err := io.ReadAll(schemaFile)
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	if _, err := d.db.Exec(string(schema)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

const listingColumns = `id, title, price, location, date_posted, seller_name, mileage, url,
	year, make, model, year_confidence, make_confidence, model_confidence, overall_confidence, date_saved`

// SaveListing inserts the listing or replaces the stored copy with the same id.
// A missing id is generated and a zero DateSaved is set to now.
func (d *Database) SaveListing(listing *models.Listing) error {
	if listing.ID == "" {
		listing.ID = uuid.NewString()
	}
	if listing.DateSaved.IsZero() {
		listing.DateSaved = time.Now().UTC()
	}

	var yearConf, makeConf, modelConf, overallConf sql.NullInt64
	if pc := listing.ParsingConfidence; pc != nil {
		yearConf = sql.NullInt64{Int64: int64(pc.Year), Valid: true}
		makeConf = sql.NullInt64{Int64: int64(pc.Make), Valid: true}
		modelConf = sql.NullInt64{Int64: int64(pc.Model), Valid: true}
		overallConf = sql.NullInt64{Int64: int64(pc.Overall), Valid: true}
	}

	query := `
		INSERT INTO listings (` + listingColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			price = excluded.price,
			location = excluded.location,
			date_posted = excluded.date_posted,
			seller_name = excluded.seller_name,
			mileage = excluded.mileage,
			url = excluded.url,
			year = excluded.year,
			make = excluded.make,
			model = excluded.model,
			year_confidence = excluded.year_confidence,
			make_confidence = excluded.make_confidence,
			model_confidence = excluded.model_confidence,
			overall_confidence = excluded.overall_confidence,
			date_saved = excluded.date_saved
	`

	_, err := d.db.Exec(query,
		listing.ID, listing.Title, listing.Price, listing.Location, listing.DatePosted,
		listing.SellerName, listing.Mileage, listing.URL,
		listing.Year, listing.Make, listing.Model,
		yearConf, makeConf, modelConf, overallConf, listing.DateSaved.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save listing: %w", err)
	}

	return nil
}

// GetListing retrieves a listing by id
func (d *Database) GetListing(id string) (*models.Listing, error) {
	row := d.db.QueryRow(`SELECT `+listingColumns+` FROM listings WHERE id = ?`, id)

	listing, err := scanListing(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	return listing, nil
}

// ListListings returns stored listings, newest first. A non-empty make
// restricts the result to that make (case-insensitive).
func (d *Database) ListListings(mk string) ([]*models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings`
	var args []interface{}
	if mk = strings.TrimSpace(mk); mk != "" {
		query += ` WHERE make = ? COLLATE NOCASE`
		args = append(args, mk)
	}
	query += ` ORDER BY date_saved DESC, rowid DESC`

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	defer rows.Close()

	var listings []*models.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate listings: %w", err)
	}

	return listings, nil
}

// CountListings returns the number of stored listings
func (d *Database) CountListings() (int, error) {
	var count int
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM listings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return count, nil
}

// DeleteListing removes a listing by id
func (d *Database) DeleteListing(id string) error {
	result, err := d.db.Exec(`DELETE FROM listings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return ErrListingNotFound
	}

	return nil
}

// ClearListings removes every listing and returns how many were deleted
func (d *Database) ClearListings() (int64, error) {
	result, err := d.db.Exec(`DELETE FROM listings`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear listings: %w", err)
	}
	return result.RowsAffected()
}

// UpdateVehicleFields stores new year/make/model and parser confidence for a
// listing without touching the scraped fields.
func (d *Database) UpdateVehicleFields(id, year, mk, model string, conf models.Confidence) error {
	result, err := d.db.Exec(`
		UPDATE listings
		SET year = ?, make = ?, model = ?,
		    year_confidence = ?, make_confidence = ?, model_confidence = ?, overall_confidence = ?
		WHERE id = ?
	`, year, mk, model, conf.Year, conf.Make, conf.Model, conf.Overall, id)
	if err != nil {
		return fmt.Errorf("failed to update vehicle fields: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if affected == 0 {
		return ErrListingNotFound
	}

	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanListing(s rowScanner) (*models.Listing, error) {
	var listing models.Listing
	var yearConf, makeConf, modelConf, overallConf sql.NullInt64

	err := s.Scan(
		&listing.ID, &listing.Title, &listing.Price, &listing.Location, &listing.DatePosted,
		&listing.SellerName, &listing.Mileage, &listing.URL,
		&listing.Year, &listing.Make, &listing.Model,
		&yearConf, &makeConf, &modelConf, &overallConf, &listing.DateSaved,
	)
	if err != nil {
		return nil, err
	}

	if overallConf.Valid {
		listing.ParsingConfidence = &models.Confidence{
			Year:    int(yearConf.Int64),
			Make:    int(makeConf.Int64),
			Model:   int(modelConf.Int64),
			Overall: int(overallConf.Int64),
		}
	}

	return &listing, nil
}
