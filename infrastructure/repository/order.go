package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/profit-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"github.com/vfg2006/profit-tracker-api/pkg/utils"
)

const (
	ordersTable = "orders o"
)

type OrderRepository interface {
	Upsert(order *domain.Order) error
	ListByUser(userID int) ([]*domain.Order, error)
	ListByStore(storeID string) ([]*domain.Order, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

const orderColumns = "o.id, o.store_id, o.woo_order_id, o.order_date, o.total, o.cost, " +
	"o.profit, o.status, o.items_count, o.customer_email, o.created_at, o.updated_at"

// Upsert grava o pedido com chave de conflito (store_id, woo_order_id):
// re-sincronizar o mesmo pedido sobrescreve os campos em vez de duplicar
// a linha.
func (r *orderRepository) Upsert(order *domain.Order) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar ID do pedido: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("orders").
		Columns("id", "store_id", "woo_order_id", "order_date", "total", "cost",
			"profit", "status", "items_count", "customer_email").
		Values(
			id,
			order.StoreID,
			order.WooOrderID,
			order.OrderDate,
			order.Total,
			order.Cost,
			order.Profit,
			order.Status,
			order.ItemsCount,
			order.CustomerEmail,
		).
		Suffix(`
			ON CONFLICT (store_id, woo_order_id) DO UPDATE SET
				order_date = EXCLUDED.order_date,
				total = EXCLUDED.total,
				cost = EXCLUDED.cost,
				profit = EXCLUDED.profit,
				status = EXCLUDED.status,
				items_count = EXCLUDED.items_count,
				customer_email = EXCLUDED.customer_email,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *orderRepository) ListByUser(userID int) ([]*domain.Order, error) {
	queryBuilder := squirrel.
		Select(orderColumns).
		From(ordersTable).
		Join("stores s ON o.store_id = s.id").
		Where(squirrel.Eq{"s.user_id": userID}).
		OrderBy("o.order_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.list(queryBuilder)
}

func (r *orderRepository) ListByStore(storeID string) ([]*domain.Order, error) {
	queryBuilder := squirrel.
		Select(orderColumns).
		From(ordersTable).
		Where(squirrel.Eq{"o.store_id": storeID}).
		OrderBy("o.order_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.list(queryBuilder)
}

func (r *orderRepository) list(queryBuilder squirrel.SelectBuilder) ([]*domain.Order, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order := &domain.Order{}
		err := rows.Scan(
			&order.ID,
			&order.StoreID,
			&order.WooOrderID,
			&order.OrderDate,
			&order.Total,
			&order.Cost,
			&order.Profit,
			&order.Status,
			&order.ItemsCount,
			&order.CustomerEmail,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}
