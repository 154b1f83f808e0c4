package ledger

import (
	"testing"

	"github.com/lunchroom/lunchbot/internal/models"
)

func TestSnapshotRoundTrip(t *testing.T) {
	l := New()
	l.AddOrder("Zebra", "burger", 50.0, "U1")
	l.AddOrder("Alpha", "pad thai", 85.0, "U2")
	l.AddOrder("alpha", "pad thai", 85.0, "U2")
	l.AddOrder("alpha", "spring rolls", 30.0, "U3")
	l.ApplyDiscount("alpha", 25)

	restored := FromSnapshot(l.Snapshot())

	if got, want := restored.SummarizeAll(), l.SummarizeAll(); got != want {
		t.Errorf("restored SummarizeAll() = %q, want %q", got, want)
	}
	if got, want := restored.Units(), l.Units(); got != want {
		t.Errorf("restored Units() = %d, want %d", got, want)
	}
	if mult := restored.Restaurant("alpha").Multiplier; mult != 0.75 {
		t.Errorf("restored multiplier = %v, want 0.75", mult)
	}
}

func TestFromSnapshotNil(t *testing.T) {
	l := FromSnapshot(nil)
	if got := l.SummarizeAll(); got != "There are no orders" {
		t.Errorf("SummarizeAll() = %q", got)
	}
}

func TestFromSnapshotSkipsInvalidEntries(t *testing.T) {
	snap := &models.Snapshot{
		Restaurants: []models.RestaurantSnapshot{
			{Name: "empty", Multiplier: 1.0},
			{Name: "ghost", Multiplier: 1.0, Meals: []models.MealSnapshot{
				{Name: "nothing", Price: 10.0},
			}},
			{Name: "joe's", Meals: []models.MealSnapshot{
				{Name: "pizza", Price: 45.0, Users: []string{"U1"}},
			}},
		},
	}

	l := FromSnapshot(snap)

	if l.Restaurant("empty") != nil || l.Restaurant("ghost") != nil {
		t.Error("restaurants without order units must not be resurrected")
	}
	restaurant := l.Restaurant("joe's")
	if restaurant == nil {
		t.Fatal("valid restaurant missing after load")
	}
	// Zero multiplier in old snapshots falls back to no discount.
	if restaurant.Multiplier != 1.0 {
		t.Errorf("multiplier = %v, want 1.0", restaurant.Multiplier)
	}
}
