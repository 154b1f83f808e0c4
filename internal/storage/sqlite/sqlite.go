// Package sqlite provides a SQLite-backed implementation of the
// storage.Store interface with one snapshot row per calendar day.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/lunchroom/lunchbot/internal/models"
	"github.com/lunchroom/lunchbot/internal/storage"
)

// Ensure SnapshotStore implements storage.Store
var _ storage.Store = (*SnapshotStore)(nil)

// SnapshotStore implements storage.Store using SQLite. Each calendar
// day owns one row; saving again on the same day overwrites that row,
// and older days are never touched.
type SnapshotStore struct {
	db *sql.DB

	// now is the clock used to derive the day key; replaceable in
	// tests.
	now func() time.Time
}

// New creates a SnapshotStore at the given database path, creating
// parent directories and running migrations.
func New(dbPath string) (*SnapshotStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SnapshotStore{db: db, now: time.Now}, nil
}

// Close closes the database connection.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

// day is the key for the current calendar day.
func (s *SnapshotStore) day() string {
	return s.now().Format("2006-01-02")
}

// Save upserts today's snapshot row.
func (s *SnapshotStore) Save(ctx context.Context, snap *models.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, day, data, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(day) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		uuid.New().String(), s.day(), string(data), s.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Load returns today's snapshot. A missing row, a query failure or
// undecodable data all degrade to an empty snapshot so a restart can
// always proceed; failures are logged, never returned.
func (s *SnapshotStore) Load(ctx context.Context) *models.Snapshot {
	var data string
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM snapshots WHERE day = ?", s.day(),
	).Scan(&data)
	if err == sql.ErrNoRows {
		return &models.Snapshot{}
	}
	if err != nil {
		slog.Warn("Failed to load snapshot, starting empty", "day", s.day(), "error", err)
		return &models.Snapshot{}
	}

	snap := &models.Snapshot{}
	if err := json.Unmarshal([]byte(data), snap); err != nil {
		slog.Warn("Failed to decode snapshot, starting empty", "day", s.day(), "error", err)
		return &models.Snapshot{}
	}
	return snap
}
