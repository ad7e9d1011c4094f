package domain

import "time"

type Transaction struct {
	ID              string
	UserID          string
	CategoryID      string
	Amount          float64
	Type            string
	Description     string
	TransactionDate time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Filter narrows a user's transaction listing. Zero values mean "no filter";
// Limit and Offset are applied after sorting by transaction date descending.
type Filter struct {
	Type      string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}
