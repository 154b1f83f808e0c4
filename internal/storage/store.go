// Package storage provides abstractions for persisting the day's
// order ledger.
package storage

import (
	"context"

	"github.com/lunchroom/lunchbot/internal/models"
)

// Store persists ledger snapshots keyed by calendar day. The day key
// and the on-disk format are implementation details; callers only rely
// on Save and Load round-tripping today's snapshot. A new day starts a
// fresh snapshot, historical days are preserved and never merged.
type Store interface {
	// Save writes the snapshot for the current day, replacing any
	// earlier snapshot of the same day.
	Save(ctx context.Context, snap *models.Snapshot) error

	// Load returns the snapshot saved for the current day. A missing
	// or unreadable snapshot degrades to an empty one; Load never
	// fails the caller.
	Load(ctx context.Context) *models.Snapshot

	// Close releases any resources held by the store.
	Close() error
}
