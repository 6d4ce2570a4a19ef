package advertising

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/profit-tracker-api/infrastructure/repository"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
)

var (
	ErrAccountNotFound  = errors.New("conta de anúncios não encontrada")
	ErrAccountNotOwned  = errors.New("conta de anúncios pertence a outro usuário")
	ErrInvalidPlatform  = errors.New("plataforma de anúncios inválida")
	ErrInvalidRequest   = errors.New("dados do gasto de anúncio inválidos")
	ErrStoreNotFound    = errors.New("loja não encontrada")
	ErrInvalidSpendDate = errors.New("data do gasto inválida, use o formato YYYY-MM-DD")
)

// Advertiser gerencia as contas de anúncios e os lançamentos de gasto
// diário que alimentam o cálculo de ROAS e lucro líquido
type Advertiser interface {
	CreateAdAccount(userID int, req *domain.CreateAdAccountRequest) (*domain.AdAccount, error)
	ListAdAccounts(userID int) ([]*domain.AdAccount, error)
	CreateAdSpend(userID int, req *domain.CreateAdSpendRequest) (*domain.AdSpend, error)
	ListAdSpends(userID int) ([]*domain.AdSpend, error)
}

type Service struct {
	adAccountRepo repository.AdAccountRepository
	adSpendRepo   repository.AdSpendRepository
	storeRepo     repository.StoreRepository
}

func NewService(
	adAccountRepo repository.AdAccountRepository,
	adSpendRepo repository.AdSpendRepository,
	storeRepo repository.StoreRepository,
) Advertiser {
	return &Service{
		adAccountRepo: adAccountRepo,
		adSpendRepo:   adSpendRepo,
		storeRepo:     storeRepo,
	}
}

func (s *Service) CreateAdAccount(userID int, req *domain.CreateAdAccountRequest) (*domain.AdAccount, error) {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidRequest
	}

	if !req.Platform.Valid() {
		return nil, ErrInvalidPlatform
	}

	account := &domain.AdAccount{
		UserID:   userID,
		Name:     strings.TrimSpace(req.Name),
		Platform: req.Platform,
	}

	created, err := s.adAccountRepo.Create(account)
	if err != nil {
		return nil, fmt.Errorf("erro ao cadastrar conta de anúncios: %w", err)
	}

	return created, nil
}

func (s *Service) ListAdAccounts(userID int) ([]*domain.AdAccount, error) {
	accounts, err := s.adAccountRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contas de anúncios: %w", err)
	}

	return accounts, nil
}

// CreateAdSpend valida que a conta de anúncios (e a loja, quando
// vinculada) pertencem ao usuário antes de lançar o gasto
func (s *Service) CreateAdSpend(userID int, req *domain.CreateAdSpendRequest) (*domain.AdSpend, error) {
	if req == nil || req.AdAccountID == "" || req.Amount < 0 {
		return nil, ErrInvalidRequest
	}

	account, err := s.adAccountRepo.GetByID(req.AdAccountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar conta de anúncios: %w", err)
	}

	if account == nil {
		return nil, ErrAccountNotFound
	}

	if account.UserID != userID {
		return nil, ErrAccountNotOwned
	}

	if req.StoreID != nil {
		if err := s.checkStoreOwnership(userID, *req.StoreID); err != nil {
			return nil, err
		}
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return nil, ErrInvalidSpendDate
	}

	spend := &domain.AdSpend{
		AdAccountID: req.AdAccountID,
		StoreID:     req.StoreID,
		Date:        date,
		Amount:      req.Amount,
	}

	created, err := s.adSpendRepo.Create(spend)
	if err != nil {
		return nil, fmt.Errorf("erro ao lançar gasto de anúncio: %w", err)
	}

	return created, nil
}

func (s *Service) ListAdSpends(userID int) ([]*domain.AdSpend, error) {
	spends, err := s.adSpendRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar gastos de anúncio: %w", err)
	}

	return spends, nil
}

func (s *Service) checkStoreOwnership(userID int, storeID string) error {
	store, err := s.storeRepo.GetByID(storeID)
	if err != nil {
		return fmt.Errorf("erro ao buscar loja: %w", err)
	}

	if store == nil || store.UserID != userID {
		return ErrStoreNotFound
	}

	return nil
}
