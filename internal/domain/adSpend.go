package domain

import (
	"time"
)

type AdSpend struct {
	ID          string    `json:"id"`
	AdAccountID string    `json:"ad_account_id"`
	StoreID     *string   `json:"store_id"`
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateAdSpendRequest struct {
	AdAccountID string  `json:"ad_account_id"`
	StoreID     *string `json:"store_id"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
}
