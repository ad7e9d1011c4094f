package dto

import "time"

type BudgetInput struct {
	CategoryID string  `json:"category_id" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	Month      string  `json:"month" validate:"required"`
}

type BudgetUpdateInput struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type BudgetOutput struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	Amount     float64   `json:"amount"`
	Month      string    `json:"month"`
	Spent      float64   `json:"spent"`
	Remaining  float64   `json:"remaining"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
