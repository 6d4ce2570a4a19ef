package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/profit-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"github.com/vfg2006/profit-tracker-api/pkg/utils"
)

const (
	adAccountsTable = "ad_accounts aa"
)

type AdAccountRepository interface {
	Create(account *domain.AdAccount) (*domain.AdAccount, error)
	GetByID(accountID string) (*domain.AdAccount, error)
	ListByUser(userID int) ([]*domain.AdAccount, error)
}

type adAccountRepository struct {
	conn *postgres.Connection
}

func NewAdAccountRepository(conn *postgres.Connection) AdAccountRepository {
	return &adAccountRepository{
		conn: conn,
	}
}

func (r *adAccountRepository) Create(account *domain.AdAccount) (*domain.AdAccount, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID da conta de anúncios: %w", err)
	}
	account.ID = id

	query, args, err := squirrel.
		Insert("ad_accounts").
		Columns("id", "user_id", "name", "platform").
		Values(account.ID, account.UserID, account.Name, account.Platform).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&account.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir conta de anúncios: %w", err)
	}

	return account, nil
}

func (r *adAccountRepository) GetByID(accountID string) (*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select("aa.id, aa.user_id, aa.name, aa.platform, aa.created_at").
		From(adAccountsTable).
		Where(squirrel.Eq{"aa.id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	account := &domain.AdAccount{}
	err = r.conn.QueryRow(query, args...).Scan(
		&account.ID,
		&account.UserID,
		&account.Name,
		&account.Platform,
		&account.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conta de anúncios: %w", err)
	}

	return account, nil
}

func (r *adAccountRepository) ListByUser(userID int) ([]*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select("aa.id, aa.user_id, aa.name, aa.platform, aa.created_at").
		From(adAccountsTable).
		Where(squirrel.Eq{"aa.user_id": userID}).
		OrderBy("aa.name ASC").
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

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		account := &domain.AdAccount{}
		err := rows.Scan(
			&account.ID,
			&account.UserID,
			&account.Name,
			&account.Platform,
			&account.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conta de anúncios: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}
