package domain

import (
	"time"
)

type SyncStatus string

const (
	SyncStatusPending SyncStatus = "pending"
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusFailed  SyncStatus = "failed"
)

const SyncTypeOrders = "orders"

// SyncHistory registra cada tentativa de sincronização de uma loja.
// A linha "pending" é criada antes de qualquer chamada remota e sempre
// transiciona para exatamente um estado terminal (success ou failed).
type SyncHistory struct {
	ID            int64      `json:"id"`
	StoreID       string     `json:"store_id"`
	SyncType      string     `json:"sync_type"`
	Status        SyncStatus `json:"status"`
	RecordsSynced int        `json:"records_synced"`
	ErrorMessage  *string    `json:"error_message"`
	StartedAt     time.Time  `json:"started_at"`
	CompletedAt   *time.Time `json:"completed_at"`
}

type SyncStoreResponse struct {
	StoreID       string `json:"store_id"`
	RecordsSynced int    `json:"records_synced"`
	Message       string `json:"message"`
}
