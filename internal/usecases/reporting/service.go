package reporting

import (
	"fmt"
	"io"
	"time"

	"github.com/vfg2006/profit-tracker-api/infrastructure/repository"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
)

var ErrStoreNotFound = fmt.Errorf("loja não encontrada")

// Reporter expõe os relatórios do painel: agregados da janela, série
// diária, KPIs com variação, números por loja, listagem e exportação de
// pedidos e a calculadora de lucro
type Reporter interface {
	Totals(userID int, filters *domain.ReportFilters) (*domain.Totals, error)
	DailySeries(userID int, filters *domain.ReportFilters) ([]domain.DailyMetric, error)
	KPIs(userID int, filters *domain.ReportFilters) (*domain.KPIMetrics, error)
	StoreStats(userID int, storeID string, filters *domain.ReportFilters) (*domain.StoreStats, error)
	Orders(userID int, filters *domain.ReportFilters) ([]*domain.Order, error)
	ExportOrdersCSV(w io.Writer, userID int, filters *domain.ReportFilters) error
	Calculate(req domain.CalculatorRequest) domain.CalculatorResponse
}

type Service struct {
	orderRepo   repository.OrderRepository
	adSpendRepo repository.AdSpendRepository
	storeRepo   repository.StoreRepository
	now         func() time.Time
}

func NewService(
	orderRepo repository.OrderRepository,
	adSpendRepo repository.AdSpendRepository,
	storeRepo repository.StoreRepository,
) Reporter {
	return &Service{
		orderRepo:   orderRepo,
		adSpendRepo: adSpendRepo,
		storeRepo:   storeRepo,
		now:         time.Now,
	}
}

func (s *Service) Totals(userID int, filters *domain.ReportFilters) (*domain.Totals, error) {
	orders, spends, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	totals := Totals(orders, spends, filters, s.now())

	return &totals, nil
}

func (s *Service) DailySeries(userID int, filters *domain.ReportFilters) ([]domain.DailyMetric, error) {
	orders, spends, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	return DailySeries(orders, spends, filters, s.now()), nil
}

func (s *Service) KPIs(userID int, filters *domain.ReportFilters) (*domain.KPIMetrics, error) {
	orders, spends, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	kpis := KPIs(orders, spends, filters, s.now())

	return &kpis, nil
}

func (s *Service) StoreStats(userID int, storeID string, filters *domain.ReportFilters) (*domain.StoreStats, error) {
	store, err := s.storeRepo.GetByID(storeID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar loja: %w", err)
	}

	if store == nil || store.UserID != userID {
		return nil, ErrStoreNotFound
	}

	orders, err := s.orderRepo.ListByStore(storeID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pedidos da loja: %w", err)
	}

	spends, err := s.adSpendRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar gastos de anúncio: %w", err)
	}

	stats := StoreStats(storeID, orders, spends, filters, s.now())

	return &stats, nil
}

func (s *Service) Orders(userID int, filters *domain.ReportFilters) ([]*domain.Order, error) {
	orders, err := s.orderRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pedidos: %w", err)
	}

	return FilterOrdersByWindow(orders, filters, s.now()), nil
}

func (s *Service) ExportOrdersCSV(w io.Writer, userID int, filters *domain.ReportFilters) error {
	orders, err := s.Orders(userID, filters)
	if err != nil {
		return err
	}

	return WriteOrdersCSV(w, orders)
}

func (s *Service) Calculate(req domain.CalculatorRequest) domain.CalculatorResponse {
	return Calculate(req)
}

func (s *Service) load(userID int) ([]*domain.Order, []*domain.AdSpend, error) {
	orders, err := s.orderRepo.ListByUser(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao listar pedidos: %w", err)
	}

	spends, err := s.adSpendRepo.ListByUser(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao listar gastos de anúncio: %w", err)
	}

	return orders, spends, nil
}
