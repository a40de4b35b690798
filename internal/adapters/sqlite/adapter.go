// Package sqlite provides a SQLite-backed implementation of the history repository port.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously

	"github.com/ewilliams-labs/deepcuts/internal/core/domain"
	"github.com/ewilliams-labs/deepcuts/internal/core/ports"
)

// Adapter implements the history repository for SQLite.
type Adapter struct {
	db *sql.DB
}

var _ ports.HistoryRepository = (*Adapter)(nil)

// NewAdapter creates a connection and runs the schema migration.
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	// A single connection keeps ":memory:" databases shared across queries.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}
	if err := adapter.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return adapter, nil
}

// Close ensures the DB connection is closed gracefully.
func (a *Adapter) Close() error {
	return a.db.Close()
}

// Save inserts or replaces a history and its tracks in one transaction.
func (a *Adapter) Save(ctx context.Context, h domain.ListeningHistory) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createdAt := h.CreatedAt.UTC()
	if h.CreatedAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO histories (id, name, source, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name=excluded.name, source=excluded.source;
	`, h.ID, h.Name, h.Source, createdAt.Format(timeLayout)); err != nil {
		return fmt.Errorf("failed to save history metadata: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM history_tracks WHERE history_id = ?", h.ID); err != nil {
		return fmt.Errorf("failed to clear old tracks: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO history_tracks (history_id, position, track_id, artist, title, album, genres, year)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare track insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range h.Tracks {
		genres, err := json.Marshal(t.Genres)
		if err != nil {
			return fmt.Errorf("failed to encode genres: %w", err)
		}
		if _, err := stmt.ExecContext(ctx, h.ID, i, t.ID, t.Artist, t.Title, t.Album, string(genres), t.Year); err != nil {
			return fmt.Errorf("failed to save track %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("transaction commit failed: %w", err)
	}
	return nil
}

// GetByID loads a history with its tracks in stored order.
func (a *Adapter) GetByID(ctx context.Context, id string) (domain.ListeningHistory, error) {
	var h domain.ListeningHistory
	var createdAt string
	row := a.db.QueryRowContext(ctx, "SELECT id, name, source, created_at FROM histories WHERE id = ?", id)
	if err := row.Scan(&h.ID, &h.Name, &h.Source, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ListeningHistory{}, domain.ErrNotFound
		}
		return domain.ListeningHistory{}, fmt.Errorf("failed to load history: %w", err)
	}
	h.CreatedAt = parseTime(createdAt)

	rows, err := a.db.QueryContext(ctx, `
		SELECT track_id, artist, title, album, genres, year
		FROM history_tracks
		WHERE history_id = ?
		ORDER BY position ASC
	`, id)
	if err != nil {
		return domain.ListeningHistory{}, fmt.Errorf("failed to load history tracks: %w", err)
	}
	defer rows.Close()

	h.Tracks = []domain.Track{}
	for rows.Next() {
		var t domain.Track
		var genres string
		if err := rows.Scan(&t.ID, &t.Artist, &t.Title, &t.Album, &genres, &t.Year); err != nil {
			return domain.ListeningHistory{}, fmt.Errorf("failed to scan history track: %w", err)
		}
		if err := json.Unmarshal([]byte(genres), &t.Genres); err != nil {
			return domain.ListeningHistory{}, fmt.Errorf("failed to decode genres: %w", err)
		}
		h.Tracks = append(h.Tracks, t)
	}
	if err := rows.Err(); err != nil {
		return domain.ListeningHistory{}, fmt.Errorf("failed to iterate history tracks: %w", err)
	}

	return h, nil
}

// List returns every stored history, newest first.
func (a *Adapter) List(ctx context.Context) ([]domain.HistorySummary, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT h.id, h.name, h.source, h.created_at,
			(SELECT COUNT(*) FROM history_tracks t WHERE t.history_id = h.id)
		FROM histories h
		ORDER BY h.created_at DESC, h.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list histories: %w", err)
	}
	defer rows.Close()

	out := []domain.HistorySummary{}
	for rows.Next() {
		var s domain.HistorySummary
		var createdAt string
		if err := rows.Scan(&s.ID, &s.Name, &s.Source, &createdAt, &s.TrackCount); err != nil {
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}
		s.CreatedAt = parseTime(createdAt)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate histories: %w", err)
	}
	return out, nil
}

func (a *Adapter) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS histories (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		source TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS history_tracks (
		history_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		track_id TEXT NOT NULL DEFAULT '',
		artist TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL DEFAULT '',
		album TEXT NOT NULL DEFAULT '',
		genres TEXT NOT NULL DEFAULT 'null',
		year INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (history_id, position),
		FOREIGN KEY(history_id) REFERENCES histories(id) ON DELETE CASCADE
	);
	`
	_, err := a.db.Exec(query)
	return err
}

// timeLayout is fixed width so created_at sorts chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339Nano, s); err != nil {
			return time.Time{}
		}
	}
	return t
}
