package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/profit-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
)

const (
	syncHistoryTable = "sync_history sh"
)

type SyncHistoryRepository interface {
	Create(storeID, syncType string, startedAt time.Time) (int64, error)
	MarkCompleted(runID int64, recordsSynced int) error
	MarkFailed(runID int64, errorMessage string) error
	ListByStore(storeID string, limit uint64) ([]*domain.SyncHistory, error)
}

type syncHistoryRepository struct {
	conn *postgres.Connection
}

func NewSyncHistoryRepository(conn *postgres.Connection) SyncHistoryRepository {
	return &syncHistoryRepository{
		conn: conn,
	}
}

// Create insere a linha em estado "pending" antes de qualquer busca remota
// e devolve o ID da execução para a transição terminal.
func (r *syncHistoryRepository) Create(storeID, syncType string, startedAt time.Time) (int64, error) {
	query, args, err := squirrel.
		Insert("sync_history").
		Columns("store_id", "sync_type", "status", "records_synced", "started_at").
		Values(storeID, syncType, domain.SyncStatusPending, 0, startedAt).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var runID int64
	if err := r.conn.QueryRow(query, args...).Scan(&runID); err != nil {
		return 0, fmt.Errorf("erro ao registrar início de sincronização: %w", err)
	}

	return runID, nil
}

func (r *syncHistoryRepository) MarkCompleted(runID int64, recordsSynced int) error {
	return r.finish(runID, domain.SyncStatusSuccess, recordsSynced, nil)
}

func (r *syncHistoryRepository) MarkFailed(runID int64, errorMessage string) error {
	return r.finish(runID, domain.SyncStatusFailed, 0, &errorMessage)
}

func (r *syncHistoryRepository) finish(runID int64, status domain.SyncStatus, recordsSynced int, errorMessage *string) error {
	queryBuilder := squirrel.
		Update("sync_history").
		Set("status", status).
		Set("records_synced", recordsSynced).
		Set("completed_at", time.Now()).
		Where(squirrel.Eq{"id": runID})

	if errorMessage != nil {
		queryBuilder = queryBuilder.Set("error_message", *errorMessage)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao finalizar registro de sincronização: %w", err)
	}

	return nil
}

func (r *syncHistoryRepository) ListByStore(storeID string, limit uint64) ([]*domain.SyncHistory, error) {
	query, args, err := squirrel.
		Select("sh.id, sh.store_id, sh.sync_type, sh.status, sh.records_synced, sh.error_message, sh.started_at, sh.completed_at").
		From(syncHistoryTable).
		Where(squirrel.Eq{"sh.store_id": storeID}).
		OrderBy("sh.started_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.SyncHistory, 0)
	for rows.Next() {
		entry := &domain.SyncHistory{}
		err := rows.Scan(
			&entry.ID,
			&entry.StoreID,
			&entry.SyncType,
			&entry.Status,
			&entry.RecordsSynced,
			&entry.ErrorMessage,
			&entry.StartedAt,
			&entry.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico de sincronização: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
