package dto

import "time"

type TransactionInput struct {
	CategoryID      string  `json:"category_id" validate:"required"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Type            string  `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Description     string  `json:"description" validate:"max=500"`
	TransactionDate string  `json:"transaction_date"`
}

// ListQuery holds the optional query parameters of the listing endpoint.
type ListQuery struct {
	Type      string `query:"type"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
	Limit     int    `query:"limit"`
	Offset    int    `query:"offset"`
}

type TransactionOutput struct {
	ID              string    `json:"id"`
	CategoryID      string    `json:"category_id"`
	Amount          float64   `json:"amount"`
	Type            string    `json:"type"`
	Description     string    `json:"description,omitempty"`
	TransactionDate string    `json:"transaction_date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
