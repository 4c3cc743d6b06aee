package db

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jwulff/sdpview/internal/config"
)

// ErrNotFound is returned when no description matches.
var ErrNotFound = errors.New("description not found")

// DefaultListLimit caps List when the caller passes no limit.
const DefaultListLimit = 50

// Store provides read-only access to the capture database.
type Store struct {
	db *sql.DB
}

// DefaultDBPath returns the default database path.
func DefaultDBPath() string {
	return filepath.Join(config.Dir(), "captures.db")
}

// Open opens the database in read-only mode with WAL.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Verify connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// List returns up to limit descriptions, newest first, without their SDP text.
func (s *Store) List(limit int) ([]Description, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.db.Query(`
		SELECT id, label, kind, capturedAt
		FROM descriptions
		ORDER BY capturedAt DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query descriptions: %w", err)
	}
	defer rows.Close()

	var out []Description
	for rows.Next() {
		var d Description
		var label, kind sql.NullString
		var capturedAt float64
		if err := rows.Scan(&d.ID, &label, &kind, &capturedAt); err != nil {
			return nil, fmt.Errorf("scan description: %w", err)
		}
		d.Label, d.Kind = label.String, kind.String
		d.CapturedAt = timeFromUnix(capturedAt)
		out = append(out, d)
	}
	return out, rows.Err()
}

// Get returns the description with the given id.
func (s *Store) Get(id string) (*Description, error) {
	return s.scanOne(s.db.QueryRow(`
		SELECT id, label, kind, sdp, capturedAt
		FROM descriptions
		WHERE id = ?
	`, id))
}

// Latest returns the most recently captured description.
func (s *Store) Latest() (*Description, error) {
	return s.scanOne(s.db.QueryRow(`
		SELECT id, label, kind, sdp, capturedAt
		FROM descriptions
		ORDER BY capturedAt DESC
		LIMIT 1
	`))
}

func (s *Store) scanOne(row *sql.Row) (*Description, error) {
	var d Description
	var label, kind sql.NullString
	var capturedAt float64

	if err := row.Scan(&d.ID, &label, &kind, &d.SDP, &capturedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan description: %w", err)
	}
	d.Label, d.Kind = label.String, kind.String
	d.CapturedAt = timeFromUnix(capturedAt)
	return &d, nil
}

func timeFromUnix(ts float64) time.Time {
	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}
