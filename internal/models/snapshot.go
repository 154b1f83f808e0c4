// Package models defines the serializable data model shared by the
// ledger and the persistence layer.
//
// A Snapshot is a lossless copy of the day's order ledger: every
// restaurant with its discount multiplier, every meal with its fixed
// unit price, and the ordered list of users holding order units for it.
// Slices preserve insertion order so a loaded ledger renders the same
// summaries as the one that was saved.
package models

// Snapshot is the day's complete order ledger in serializable form.
type Snapshot struct {
	Restaurants []RestaurantSnapshot `json:"restaurants"`
}

// RestaurantSnapshot is one restaurant's orders.
type RestaurantSnapshot struct {
	// Name is the normalized (lower-case) restaurant name.
	Name string `json:"name"`

	// Multiplier is the discount factor applied at display time.
	// 1.0 means no discount.
	Multiplier float64 `json:"multiplier"`

	// Meals in insertion order.
	Meals []MealSnapshot `json:"meals"`
}

// MealSnapshot is one dish and the users who ordered it.
type MealSnapshot struct {
	Name string `json:"name"`

	// Price is the undiscounted unit price, fixed at the meal's first
	// order of the day.
	Price float64 `json:"price"`

	// Users holds one entry per order unit, in order of arrival.
	// Duplicates are allowed.
	Users []string `json:"users"`
}
