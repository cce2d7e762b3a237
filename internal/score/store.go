// Package score persists round results in a local SQLite database.
package score

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS scores (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	points    INTEGER NOT NULL,
	played_at TIMESTAMP NOT NULL
);`

// Store records finished rounds and answers best-score queries.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the score database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open score db %q: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init score db: %w", err)
	}
	return &Store{db: db}, nil
}

// Add records one finished round.
func (s *Store) Add(points int) error {
	if _, err := s.db.Exec(
		`INSERT INTO scores (points, played_at) VALUES (?, ?)`,
		points, time.Now(),
	); err != nil {
		return fmt.Errorf("insert score: %w", err)
	}
	return nil
}

// Best returns the highest score ever recorded, 0 when none exist.
func (s *Store) Best() (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow(`SELECT MAX(points) FROM scores`).Scan(&best); err != nil {
		return 0, fmt.Errorf("query best score: %w", err)
	}
	return int(best.Int64), nil
}

// Recent returns up to n of the latest results, newest first.
func (s *Store) Recent(n int) ([]int, error) {
	rows, err := s.db.Query(
		`SELECT points FROM scores ORDER BY played_at DESC, id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query recent scores: %w", err)
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var p int
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
