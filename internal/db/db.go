package db

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// MemoryDSN keeps the journal in memory for the lifetime of the process
const MemoryDSN = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	style TEXT NOT NULL,
	input TEXT NOT NULL,
	output TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

// Entry is one transformed line
type Entry struct {
	ID        int
	Style     string
	Input     string
	Output    string
	CreatedAt time.Time
}

// Store is the session journal
type Store struct {
	db *sql.DB
}

// OpenMemory opens a journal that disappears when the process exits
func OpenMemory() (*Store, error) {
	return Open(MemoryDSN)
}

// Open opens the journal at dsn and creates its table
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	// An in-memory database exists per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating tables: %w", err)
	}

	return &Store{db: db}, nil
}

// AddEntry records a transformed line and returns its ID
func (s *Store) AddEntry(style, input, output string) (int, error) {
	query := `INSERT INTO entries (style, input, output) VALUES (?, ?, ?);`
	result, err := s.db.Exec(query, style, input, output)
	if err != nil {
		log.Printf("Error adding entry: %v", err)
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		log.Printf("Error getting last insert ID: %v", err)
		return 0, err
	}
	return int(id), nil
}

// RecentEntries returns up to limit entries, oldest first
func (s *Store) RecentEntries(limit int) ([]Entry, error) {
	query := `SELECT id, style, input, output, created_at FROM (
	              SELECT id, style, input, output, created_at
	              FROM entries
	              ORDER BY id DESC
	              LIMIT ?
	          ) ORDER BY id ASC;`
	rows, err := s.db.Query(query, limit)
	if err != nil {
		log.Printf("Error querying entries: %v", err)
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Style, &e.Input, &e.Output, &e.CreatedAt); err != nil {
			log.Printf("Error scanning entry row: %v", err)
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		log.Printf("Error after scanning rows: %v", err)
		return nil, err
	}

	return entries, nil
}

// Count returns the number of journal entries
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM entries;`).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting entries: %w", err)
	}
	return n, nil
}

// Flush deletes every entry and resets the ID counter
func (s *Store) Flush() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entries;`); err != nil {
		return fmt.Errorf("error clearing entries: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM sqlite_sequence WHERE name = 'entries';`); err != nil {
		return fmt.Errorf("error resetting auto-increment for entries: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// Close closes the journal. A nil Store is a no-op.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
