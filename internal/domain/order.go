package domain

import (
	"time"
)

type Order struct {
	ID            string    `json:"id"`
	StoreID       string    `json:"store_id"`
	WooOrderID    string    `json:"woo_order_id"`
	OrderDate     time.Time `json:"order_date"`
	Total         float64   `json:"total"`
	Cost          float64   `json:"cost"`
	Profit        float64   `json:"profit"`
	Status        string    `json:"status"`
	ItemsCount    int       `json:"items_count"`
	CustomerEmail *string   `json:"customer_email"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
