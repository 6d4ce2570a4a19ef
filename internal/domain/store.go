package domain

import (
	"time"
)

type Store struct {
	ID                 string     `json:"id"`
	UserID             int        `json:"user_id"`
	Name               string     `json:"name"`
	URL                string     `json:"url"`
	ConsumerKey        string     `json:"consumer_key"`
	ConsumerSecret     string     `json:"-"`
	LastSyncAt         *time.Time `json:"last_sync_at"`
	AutoSyncEnabled    bool       `json:"auto_sync_enabled"`
	SyncFrequencyHours int        `json:"sync_frequency_hours"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type CreateStoreRequest struct {
	Name               string `json:"name"`
	URL                string `json:"url"`
	ConsumerKey        string `json:"consumer_key"`
	ConsumerSecret     string `json:"consumer_secret"`
	AutoSyncEnabled    bool   `json:"auto_sync_enabled"`
	SyncFrequencyHours int    `json:"sync_frequency_hours"`
}

type TestConnectionRequest struct {
	URL            string `json:"url"`
	ConsumerKey    string `json:"consumer_key"`
	ConsumerSecret string `json:"consumer_secret"`
}

type TestConnectionResponse struct {
	Connected bool `json:"connected"`
}

// StoreStats agrega os números de uma loja dentro da janela selecionada
type StoreStats struct {
	StoreID string  `json:"store_id"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
	AdSpend float64 `json:"ad_spend"`
	Orders  int     `json:"orders"`
}
