package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/profit-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"github.com/vfg2006/profit-tracker-api/pkg/utils"
)

const (
	adSpendTable = "ad_spend asp"
)

type AdSpendRepository interface {
	Create(spend *domain.AdSpend) (*domain.AdSpend, error)
	ListByUser(userID int) ([]*domain.AdSpend, error)
}

type adSpendRepository struct {
	conn *postgres.Connection
}

func NewAdSpendRepository(conn *postgres.Connection) AdSpendRepository {
	return &adSpendRepository{
		conn: conn,
	}
}

func (r *adSpendRepository) Create(spend *domain.AdSpend) (*domain.AdSpend, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID do gasto de anúncio: %w", err)
	}
	spend.ID = id

	query, args, err := squirrel.
		Insert("ad_spend").
		Columns("id", "ad_account_id", "store_id", "date", "amount").
		Values(spend.ID, spend.AdAccountID, spend.StoreID, spend.Date.Format(time.DateOnly), spend.Amount).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&spend.CreatedAt, &spend.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao inserir gasto de anúncio: %w", err)
	}

	return spend, nil
}

func (r *adSpendRepository) ListByUser(userID int) ([]*domain.AdSpend, error) {
	query, args, err := squirrel.
		Select("asp.id, asp.ad_account_id, asp.store_id, asp.date, asp.amount, asp.created_at, asp.updated_at").
		From(adSpendTable).
		Join("ad_accounts aa ON asp.ad_account_id = aa.id").
		Where(squirrel.Eq{"aa.user_id": userID}).
		OrderBy("asp.date DESC").
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

	spends := make([]*domain.AdSpend, 0)
	for rows.Next() {
		spend := &domain.AdSpend{}
		err := rows.Scan(
			&spend.ID,
			&spend.AdAccountID,
			&spend.StoreID,
			&spend.Date,
			&spend.Amount,
			&spend.CreatedAt,
			&spend.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear gasto de anúncio: %w", err)
		}
		spends = append(spends, spend)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return spends, nil
}
