package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/profit-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"github.com/vfg2006/profit-tracker-api/pkg/utils"
)

const (
	storesTable = "stores s"
)

type StoreRepository interface {
	Create(store *domain.Store) (*domain.Store, error)
	GetByID(storeID string) (*domain.Store, error)
	ListByUser(userID int) ([]*domain.Store, error)
	ListAutoSyncEnabled() ([]*domain.Store, error)
	TouchLastSync(storeID string, syncedAt time.Time) error
	Delete(storeID string) error
}

type storeRepository struct {
	conn *postgres.Connection
}

func NewStoreRepository(conn *postgres.Connection) StoreRepository {
	return &storeRepository{
		conn: conn,
	}
}

const storeColumns = "s.id, s.user_id, s.name, s.url, s.consumer_key, s.consumer_secret, " +
	"s.last_sync_at, s.auto_sync_enabled, s.sync_frequency_hours, s.created_at, s.updated_at"

func (r *storeRepository) Create(store *domain.Store) (*domain.Store, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID da loja: %w", err)
	}
	store.ID = id

	query, args, err := squirrel.
		Insert("stores").
		Columns("id", "user_id", "name", "url", "consumer_key", "consumer_secret",
			"auto_sync_enabled", "sync_frequency_hours").
		Values(store.ID, store.UserID, store.Name, store.URL, store.ConsumerKey,
			store.ConsumerSecret, store.AutoSyncEnabled, store.SyncFrequencyHours).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&store.CreatedAt, &store.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir loja: %w", err)
	}

	return store, nil
}

func (r *storeRepository) GetByID(storeID string) (*domain.Store, error) {
	query, args, err := squirrel.
		Select(storeColumns).
		From(storesTable).
		Where(squirrel.Eq{"s.id": storeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	store, err := r.scanStore(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return store, nil
}

func (r *storeRepository) ListByUser(userID int) ([]*domain.Store, error) {
	return r.list(squirrel.Eq{"s.user_id": userID})
}

func (r *storeRepository) ListAutoSyncEnabled() ([]*domain.Store, error) {
	return r.list(squirrel.Eq{"s.auto_sync_enabled": true})
}

func (r *storeRepository) list(whereClause map[string]interface{}) ([]*domain.Store, error) {
	query, args, err := squirrel.
		Select(storeColumns).
		From(storesTable).
		Where(whereClause).
		OrderBy("s.name ASC").
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

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		store, err := r.scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear loja: %w", err)
		}
		stores = append(stores, store)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stores, nil
}

func (r *storeRepository) TouchLastSync(storeID string, syncedAt time.Time) error {
	query, args, err := squirrel.
		Update("stores").
		Set("last_sync_at", syncedAt).
		Set("updated_at", syncedAt).
		Where(squirrel.Eq{"id": storeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar last_sync_at: %w", err)
	}

	return nil
}

// Delete remove a loja; os pedidos dependentes caem junto pelo
// ON DELETE CASCADE da foreign key.
func (r *storeRepository) Delete(storeID string) error {
	query, args, err := squirrel.
		Delete("stores").
		Where(squirrel.Eq{"id": storeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover loja: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *storeRepository) scanStore(row rowScanner) (*domain.Store, error) {
	store := &domain.Store{}

	err := row.Scan(
		&store.ID,
		&store.UserID,
		&store.Name,
		&store.URL,
		&store.ConsumerKey,
		&store.ConsumerSecret,
		&store.LastSyncAt,
		&store.AutoSyncEnabled,
		&store.SyncFrequencyHours,
		&store.CreatedAt,
		&store.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return store, nil
}
