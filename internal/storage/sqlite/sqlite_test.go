package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/lunchroom/lunchbot/internal/models"
)

func newTestStore(t *testing.T) *SnapshotStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Restaurants: []models.RestaurantSnapshot{
			{
				Name:       "joe's",
				Multiplier: 0.75,
				Meals: []models.MealSnapshot{
					{Name: "pizza", Price: 45.0, Users: []string{"U1", "U2", "U1"}},
					{Name: "salad", Price: 20.5, Users: []string{"U3"}},
				},
			},
			{
				Name:       "thai",
				Multiplier: 1.0,
				Meals: []models.MealSnapshot{
					{Name: "pad thai", Price: 85.0, Users: []string{"U2"}},
				},
			},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testSnapshot()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got := store.Load(ctx)
	if len(got.Restaurants) != 2 {
		t.Fatalf("loaded %d restaurants, want 2", len(got.Restaurants))
	}
	joes := got.Restaurants[0]
	if joes.Name != "joe's" || joes.Multiplier != 0.75 {
		t.Errorf("restaurant = %+v", joes)
	}
	if len(joes.Meals) != 2 || joes.Meals[0].Name != "pizza" {
		t.Fatalf("meals = %+v, want insertion order preserved", joes.Meals)
	}
	users := joes.Meals[0].Users
	if len(users) != 3 || users[0] != "U1" || users[1] != "U2" || users[2] != "U1" {
		t.Errorf("users = %v, want duplicates and order preserved", users)
	}
}

func TestSaveUpsertsSameDay(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testSnapshot()); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := store.Save(ctx, &models.Snapshot{}); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	if got := store.Load(ctx); len(got.Restaurants) != 0 {
		t.Errorf("loaded %d restaurants, want the later (empty) snapshot", len(got.Restaurants))
	}

	var rows int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&rows); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if rows != 1 {
		t.Errorf("snapshot rows = %d, want 1 (same day upserts)", rows)
	}
}

func TestLoadMissingDayIsEmpty(t *testing.T) {
	store := newTestStore(t)

	got := store.Load(context.Background())
	if got == nil || len(got.Restaurants) != 0 {
		t.Errorf("Load on empty store = %+v, want empty snapshot", got)
	}
}

func TestNewDayStartsFresh(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testSnapshot()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Advance the clock past midnight: yesterday's row must stay put
	// and today must start empty.
	store.now = func() time.Time { return time.Now().Add(48 * time.Hour) }

	if got := store.Load(ctx); len(got.Restaurants) != 0 {
		t.Errorf("loaded %d restaurants on a new day, want 0", len(got.Restaurants))
	}
	if err := store.Save(ctx, &models.Snapshot{}); err != nil {
		t.Fatalf("Save on new day failed: %v", err)
	}

	var rows int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&rows); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if rows != 2 {
		t.Errorf("snapshot rows = %d, want 2 (historical days preserved)", rows)
	}
}

func TestLoadCorruptDataIsEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.db.Exec(
		"INSERT INTO snapshots (id, day, data, updated_at) VALUES (?, ?, ?, ?)",
		"corrupt", store.day(), "{not json", time.Now().Unix(),
	)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if got := store.Load(ctx); got == nil || len(got.Restaurants) != 0 {
		t.Errorf("Load with corrupt data = %+v, want empty snapshot", got)
	}
}
