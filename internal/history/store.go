package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jfmyers9/playlie/pkg/lastfm"
	_ "modernc.org/sqlite"
)

// Store keeps a log of fetched recommendations using SQLite.
//
// It is only written after a successful fetch and is never read in place
// of a request.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Entry represents one recorded playlist item
type Entry struct {
	ID        int64
	RunID     string
	User      string
	TrackName string
	Artists   []string
	Position  int
	FetchedAt time.Time
}

// Open creates or opens a history store backed by SQLite
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps :memory: databases consistent
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA journal_mode = WAL",
		"PRAGMA temp_store = MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS recommendations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			username TEXT NOT NULL,
			track_name TEXT NOT NULL,
			artists TEXT NOT NULL, -- JSON array of names
			position INTEGER NOT NULL,
			fetched_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_fetched_at ON recommendations(fetched_at);
		CREATE INDEX IF NOT EXISTS idx_run_id ON recommendations(run_id);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record stores every item of a playlist under a new run ID.
//
// All items are written in one transaction. An empty playlist records
// nothing but still returns a run ID.
func (s *Store) Record(ctx context.Context, user string, items []lastfm.PlaylistItem) (string, error) {
	runID := uuid.NewString()
	if len(items) == 0 {
		return runID, nil
	}

	fetchedAt := s.now().Unix()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO recommendations (run_id, username, track_name, artists, position, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i, item := range items {
		artists, err := json.Marshal(item.ArtistNames())
		if err != nil {
			return "", fmt.Errorf("failed to encode artists for item %d: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx, runID, user, item.Name, string(artists), i, fetchedAt); err != nil {
			return "", fmt.Errorf("failed to insert item %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return runID, nil
}

// List returns recorded items, newest run first and in playlist order
// within a run. Runs recorded in the same second are ordered by insertion.
// A limit of 0 returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `
		SELECT id, run_id, username, track_name, artists, position, fetched_at
		FROM recommendations AS r
		ORDER BY
			fetched_at DESC,
			(SELECT MAX(id) FROM recommendations WHERE run_id = r.run_id) DESC,
			position ASC
	`

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var artists string
		var fetchedUnix int64

		err := rows.Scan(
			&e.ID,
			&e.RunID,
			&e.User,
			&e.TrackName,
			&artists,
			&e.Position,
			&fetchedUnix,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}

		if err := json.Unmarshal([]byte(artists), &e.Artists); err != nil {
			return nil, fmt.Errorf("failed to decode artists for entry %d: %w", e.ID, err)
		}
		e.FetchedAt = time.Unix(fetchedUnix, 0)

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history: %w", err)
	}

	return entries, nil
}

// Count returns the number of recorded items
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM recommendations").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}

	return count, nil
}

// Cleanup removes items fetched longer ago than maxAge
func (s *Store) Cleanup(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := s.now().Add(-maxAge).Unix()

	result, err := s.db.ExecContext(ctx, "DELETE FROM recommendations WHERE fetched_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup history: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return deleted, nil
}
