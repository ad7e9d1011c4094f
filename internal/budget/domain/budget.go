package domain

import "time"

// Budget caps planned spending for one category in one month. Month is a
// "YYYY-MM" string; (user, category, month) is unique.
type Budget struct {
	ID         string
	UserID     string
	CategoryID string
	Amount     float64
	Month      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BudgetWithSpent pairs a budget with the month's actual expense total for
// its category, computed by the store.
type BudgetWithSpent struct {
	Budget
	Spent float64
}
