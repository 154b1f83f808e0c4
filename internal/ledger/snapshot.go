package ledger

import "github.com/lunchroom/lunchbot/internal/models"

// Snapshot copies the ledger into its serializable form, preserving
// restaurant and meal insertion order.
func (l *Ledger) Snapshot() *models.Snapshot {
	snap := &models.Snapshot{}
	for _, key := range l.order {
		restaurant := l.restaurants[key]
		rs := models.RestaurantSnapshot{
			Name:       restaurant.Name,
			Multiplier: restaurant.Multiplier,
		}
		for _, mealName := range restaurant.order {
			meal := restaurant.meals[mealName]
			rs.Meals = append(rs.Meals, models.MealSnapshot{
				Name:  meal.Name,
				Price: meal.Price,
				Users: append([]string(nil), meal.Users...),
			})
		}
		snap.Restaurants = append(snap.Restaurants, rs)
	}
	return snap
}

// FromSnapshot rebuilds a ledger from a stored snapshot. Entries that
// violate the ledger's invariants, meals with no users or restaurants
// with no meals, are skipped rather than resurrected. Multipliers
// outside (0,1] (including the zero value of snapshots saved before
// any discount) fall back to 1.0.
func FromSnapshot(snap *models.Snapshot) *Ledger {
	l := New()
	if snap == nil {
		return l
	}
	for _, rs := range snap.Restaurants {
		for _, ms := range rs.Meals {
			for _, user := range ms.Users {
				l.AddOrder(rs.Name, ms.Name, ms.Price, user)
			}
		}
		if restaurant := l.Restaurant(rs.Name); restaurant != nil && rs.Multiplier > 0 && rs.Multiplier <= 1 {
			restaurant.Multiplier = rs.Multiplier
		}
	}
	return l
}
