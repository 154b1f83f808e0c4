package ledger

import (
	"fmt"
	"strconv"
	"strings"
)

// Restaurant holds every meal ordered from one eatery. Meal names are
// case-sensitive keys; insertion order is kept so summaries are
// deterministic.
type Restaurant struct {
	// Name is stored normalized (lower-case); output uses this form.
	Name string

	// Multiplier scales displayed and totaled prices. 1.0 until a
	// discount is applied, then in (0,1).
	Multiplier float64

	meals map[string]*Meal
	order []string
}

// NewRestaurant creates an empty restaurant with no discount.
func NewRestaurant(name string) *Restaurant {
	return &Restaurant{
		Name:       name,
		Multiplier: 1.0,
		meals:      make(map[string]*Meal),
	}
}

// AddOrder records one order unit of the meal for the user. The price
// argument only matters for the first order of a meal name; repeat
// orders keep the original price even if a different one is supplied.
func (r *Restaurant) AddOrder(mealName string, price float64, user string) {
	if meal, ok := r.meals[mealName]; ok {
		meal.AddUser(user)
		return
	}
	r.meals[mealName] = newMeal(mealName, price, user)
	r.order = append(r.order, mealName)
}

// Meals returns the restaurant's meals in insertion order.
func (r *Restaurant) Meals() []*Meal {
	meals := make([]*Meal, 0, len(r.order))
	for _, name := range r.order {
		meals = append(meals, r.meals[name])
	}
	return meals
}

// Summarize renders one line per meal in insertion order, showing the
// discounted unit price and the users holding order units, followed by
// the restaurant total.
func (r *Restaurant) Summarize() string {
	var sb strings.Builder
	var total float64
	for _, name := range r.order {
		meal := r.meals[name]
		unit := meal.Price * r.Multiplier
		total += unit * float64(meal.TotalNumber())
		fmt.Fprintf(&sb, "%s, %skn x%d (", meal.Name, formatPrice(unit), meal.TotalNumber())
		for i, user := range meal.Users {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(mention(user))
		}
		sb.WriteString(")\n")
	}
	fmt.Fprintf(&sb, "Total: %skn", formatPrice(total))
	return sb.String()
}

// AllUsers returns every user with at least one order unit here,
// deduplicated, in first-appearance order.
func (r *Restaurant) AllUsers() []string {
	seen := make(map[string]bool)
	var users []string
	for _, name := range r.order {
		for _, user := range r.meals[name].Users {
			if !seen[user] {
				seen[user] = true
				users = append(users, user)
			}
		}
	}
	return users
}

// Notify builds the message pinging everyone who ordered here. An
// empty message falls back to the restaurant's name.
func (r *Restaurant) Notify(message string) string {
	if message == "" {
		message = r.Name
	}
	parts := []string{message}
	for _, user := range r.AllUsers() {
		parts = append(parts, mention(user))
	}
	return strings.Join(parts, " ")
}

// ApplyDiscount sets the price multiplier from a whole percentage.
// Discounts overwrite each other rather than compounding and never
// change a meal's stored price. Out-of-range percentages leave the
// multiplier untouched and return a rejection message.
func (r *Restaurant) ApplyDiscount(percentage int) string {
	if percentage <= 0 || percentage >= 100 {
		return fmt.Sprintf("Discount of %d%% is out of range, it must be between 0 and 100", percentage)
	}
	r.Multiplier = 1 - float64(percentage)/100
	return fmt.Sprintf("Applied %d%% discount to %s!", percentage, r.Name)
}

func (r *Restaurant) removeMeal(name string) {
	delete(r.meals, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}

func mention(user string) string {
	return "<@" + user + ">"
}

// formatPrice renders a price in minimal decimal form: 45, 22.5.
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
