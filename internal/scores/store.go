// Package scores keeps a record of finished runs in a SQLite database.
package scores

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Score is one finished run.
type Score struct {
	RunID            string
	Leader           string
	Outcome          string // "won" or "lost"
	Days             int
	LocationsVisited int
	Cash             float64
	RecordedAt       time.Time
}

// Store wraps the scores database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the scores database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open scores db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init scores schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record inserts a finished run. Recording the same run twice overwrites the
// earlier row.
func (s *Store) Record(score Score) error {
	if score.RecordedAt.IsZero() {
		score.RecordedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO scores
		 (run_id, leader, outcome, days, locations_visited, cash, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		score.RunID, score.Leader, score.Outcome, score.Days,
		score.LocationsVisited, score.Cash,
		score.RecordedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record score: %w", err)
	}
	return nil
}

// List returns all recorded runs, fastest first.
func (s *Store) List() ([]Score, error) {
	rows, err := s.db.Query(
		`SELECT run_id, leader, outcome, days, locations_visited, cash, recorded_at
		 FROM scores ORDER BY days ASC, recorded_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	defer rows.Close()

	var scores []Score
	for rows.Next() {
		var sc Score
		var recorded string
		if err := rows.Scan(&sc.RunID, &sc.Leader, &sc.Outcome, &sc.Days,
			&sc.LocationsVisited, &sc.Cash, &recorded); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, recorded); err == nil {
			sc.RecordedAt = t
		}
		scores = append(scores, sc)
	}
	return scores, rows.Err()
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
