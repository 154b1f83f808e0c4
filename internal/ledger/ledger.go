// Package ledger implements the in-memory order ledger: restaurants,
// their meals, and the mutation and query operations the bot's
// commands map to. The ledger is single-writer; callers serialize
// access to it.
package ledger

import (
	"fmt"
	"strings"
)

const divider = "-----------------------------------------------------"

// Ledger aggregates the day's orders across all restaurants.
// Restaurant names are normalized to lower-case for lookup and kept in
// insertion order for deterministic output. Every restaurant present
// has at least one meal with at least one order unit; emptied entries
// are pruned immediately.
type Ledger struct {
	restaurants map[string]*Restaurant
	order       []string
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{restaurants: make(map[string]*Restaurant)}
}

// AddOrder records one order unit, creating the restaurant on its
// first order of the day.
func (l *Ledger) AddOrder(restaurantName, mealName string, price float64, user string) {
	key := normalize(restaurantName)
	restaurant, ok := l.restaurants[key]
	if !ok {
		restaurant = NewRestaurant(key)
		l.restaurants[key] = restaurant
		l.order = append(l.order, key)
	}
	restaurant.AddOrder(mealName, price, user)
}

// Restaurant returns the restaurant stored under the normalized name,
// or nil when there are no orders from it.
func (l *Ledger) Restaurant(name string) *Restaurant {
	return l.restaurants[normalize(name)]
}

// ClearAll drops every order from every restaurant.
func (l *Ledger) ClearAll() {
	l.restaurants = make(map[string]*Restaurant)
	l.order = nil
}

// ClearRestaurant removes one restaurant and all its orders. An
// unknown restaurant is a reported condition, not an error.
func (l *Ledger) ClearRestaurant(name string) string {
	key := normalize(name)
	if _, ok := l.restaurants[key]; !ok {
		return noOrdersFrom(key)
	}
	l.remove(key)
	return fmt.Sprintf("All orders from %s cleared!", key)
}

// CancelOrders removes one standing order unit of the user from every
// meal, then prunes emptied meals and emptied restaurants. A user who
// ordered the same meal twice keeps one unit after a single cancel.
// The sweep marks first and deletes after, so no map is mutated while
// being iterated.
func (l *Ledger) CancelOrders(user string) {
	var emptyRestaurants []string
	for _, key := range l.order {
		restaurant := l.restaurants[key]
		var emptyMeals []string
		for _, mealName := range restaurant.order {
			meal := restaurant.meals[mealName]
			meal.removeUser(user)
			if len(meal.Users) == 0 {
				emptyMeals = append(emptyMeals, mealName)
			}
		}
		for _, mealName := range emptyMeals {
			restaurant.removeMeal(mealName)
		}
		if len(restaurant.meals) == 0 {
			emptyRestaurants = append(emptyRestaurants, key)
		}
	}
	for _, key := range emptyRestaurants {
		l.remove(key)
	}
}

// Summarize returns the formatted orders of one restaurant. An empty
// name gets a usage hint, an unknown one the no-orders message.
func (l *Ledger) Summarize(name string) string {
	if name == "" {
		return "Please specify restaurant name or summarize all for all restaurants"
	}
	restaurant, ok := l.restaurants[normalize(name)]
	if !ok {
		return noOrdersFrom(normalize(name))
	}
	return restaurant.Summarize()
}

// SummarizeAll concatenates every restaurant's summary in insertion
// order, separated by a divider line.
func (l *Ledger) SummarizeAll() string {
	if len(l.order) == 0 {
		return "There are no orders"
	}
	summaries := make([]string, 0, len(l.order))
	for _, key := range l.order {
		summaries = append(summaries, l.restaurants[key].Summarize())
	}
	return strings.Join(summaries, "\n"+divider+"\n")
}

// NotifyRestaurant builds the ping message for everyone who ordered
// from the restaurant.
func (l *Ledger) NotifyRestaurant(name, message string) string {
	restaurant, ok := l.restaurants[normalize(name)]
	if !ok {
		return noOrdersFrom(normalize(name))
	}
	return restaurant.Notify(message)
}

// ApplyDiscount applies a percentage discount to one restaurant.
func (l *Ledger) ApplyDiscount(name string, percentage int) string {
	restaurant, ok := l.restaurants[normalize(name)]
	if !ok {
		return noOrdersFrom(normalize(name))
	}
	return restaurant.ApplyDiscount(percentage)
}

// Units returns the total number of order units on the ledger.
func (l *Ledger) Units() int {
	n := 0
	for _, restaurant := range l.restaurants {
		for _, meal := range restaurant.meals {
			n += meal.TotalNumber()
		}
	}
	return n
}

func (l *Ledger) remove(key string) {
	delete(l.restaurants, key)
	for i, k := range l.order {
		if k == key {
			l.order = append(l.order[:i], l.order[i+1:]...)
			return
		}
	}
}

func normalize(name string) string {
	return strings.ToLower(name)
}

func noOrdersFrom(name string) string {
	return fmt.Sprintf("There are no orders from %s", name)
}
