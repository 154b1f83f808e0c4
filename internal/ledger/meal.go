package ledger

// Meal is one dish ordered from one restaurant. Users holds one entry
// per order unit, in order of arrival; the same user may appear more
// than once.
type Meal struct {
	Name  string
	Price float64
	Users []string
}

func newMeal(name string, price float64, user string) *Meal {
	return &Meal{Name: name, Price: price, Users: []string{user}}
}

// AddUser records one more order unit for the meal.
func (m *Meal) AddUser(user string) {
	m.Users = append(m.Users, user)
}

// TotalNumber returns how many units of the meal were ordered.
func (m *Meal) TotalNumber() int {
	return len(m.Users)
}

// TotalPrice returns the undiscounted total for the meal. Discounts
// are applied by the restaurant at display time, never here.
func (m *Meal) TotalPrice() float64 {
	return float64(m.TotalNumber()) * m.Price
}

// removeUser removes at most one occurrence of the user, keeping the
// order of the remaining entries. It reports whether anything was
// removed.
func (m *Meal) removeUser(user string) bool {
	for i, u := range m.Users {
		if u == user {
			m.Users = append(m.Users[:i], m.Users[i+1:]...)
			return true
		}
	}
	return false
}
