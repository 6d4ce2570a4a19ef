package syncing

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-tracker-api/infrastructure/integrator/woocommerce"
	"github.com/vfg2006/profit-tracker-api/infrastructure/repository"
	"github.com/vfg2006/profit-tracker-api/internal/config"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
)

type OrderSyncer interface {
	// SyncStore importa os pedidos de uma loja do usuário informado
	SyncStore(userID int, storeID string) (*domain.SyncStoreResponse, error)

	// SyncStoreUnchecked importa os pedidos sem verificação de dono
	// (usado pelo agendador de sincronização automática)
	SyncStoreUnchecked(store *domain.Store) (*domain.SyncStoreResponse, error)

	// History lista as últimas execuções de sincronização da loja
	History(userID int, storeID string, limit uint64) ([]*domain.SyncHistory, error)
}

type Service struct {
	storeRepo   repository.StoreRepository
	orderRepo   repository.OrderRepository
	historyRepo repository.SyncHistoryRepository
	integrator  woocommerce.WooIntegrator
	cfg         *config.Config

	// inFlight impede duas sincronizações simultâneas da mesma loja;
	// lojas diferentes sincronizam de forma independente
	inFlight map[string]bool
	mu       sync.Mutex
}

func NewService(
	storeRepo repository.StoreRepository,
	orderRepo repository.OrderRepository,
	historyRepo repository.SyncHistoryRepository,
	integrator woocommerce.WooIntegrator,
	cfg *config.Config,
) OrderSyncer {
	return &Service{
		storeRepo:   storeRepo,
		orderRepo:   orderRepo,
		historyRepo: historyRepo,
		integrator:  integrator,
		cfg:         cfg,
		inFlight:    make(map[string]bool),
	}
}

func (s *Service) SyncStore(userID int, storeID string) (*domain.SyncStoreResponse, error) {
	store, err := s.storeRepo.GetByID(storeID)
	if err != nil {
		return nil, err
	}

	if store == nil {
		return nil, ErrStoreNotFound
	}

	if store.UserID != userID {
		return nil, ErrStoreNotOwned
	}

	return s.SyncStoreUnchecked(store)
}

func (s *Service) SyncStoreUnchecked(store *domain.Store) (*domain.SyncStoreResponse, error) {
	if !s.acquire(store.ID) {
		return nil, ErrSyncInProgress
	}
	defer s.release(store.ID)

	startedAt := time.Now()

	// A linha de histórico nasce "pending" antes de qualquer chamada remota
	// e sempre chega a exatamente um estado terminal
	runID, err := s.historyRepo.Create(store.ID, domain.SyncTypeOrders, startedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao registrar início da sincronização: %w", err)
	}

	recordsSynced, err := s.importOrders(store)
	if err == nil {
		err = s.storeRepo.TouchLastSync(store.ID, time.Now())
	}

	if err != nil {
		logrus.WithError(err).WithField("store_id", store.ID).Error("Sincronização de pedidos falhou")

		if markErr := s.historyRepo.MarkFailed(runID, err.Error()); markErr != nil {
			logrus.WithError(markErr).WithField("run_id", runID).Error("Erro ao marcar sincronização como falha")
		}

		return nil, err
	}

	if err := s.historyRepo.MarkCompleted(runID, recordsSynced); err != nil {
		logrus.WithError(err).WithField("run_id", runID).Error("Erro ao marcar sincronização como concluída")
	}

	logrus.WithFields(logrus.Fields{
		"store_id":       store.ID,
		"records_synced": recordsSynced,
		"duration":       time.Since(startedAt).String(),
	}).Info("Sincronização de pedidos concluída")

	return &domain.SyncStoreResponse{
		StoreID:       store.ID,
		RecordsSynced: recordsSynced,
		Message:       fmt.Sprintf("%d pedidos sincronizados de %s", recordsSynced, store.Name),
	}, nil
}

// importOrders percorre as páginas da API da loja normalizando e gravando
// cada pedido. O upsert é idempotente: pedidos já importados são
// sobrescritos, nunca duplicados.
func (s *Service) importOrders(store *domain.Store) (int, error) {
	pageSize := s.cfg.OrderSync.PageSize
	maxPages := s.cfg.OrderSync.MaxPages

	total := 0
	for page := 1; ; page++ {
		remoteOrders, err := s.integrator.FetchOrdersPage(store, page, pageSize)
		if err != nil {
			return total, err
		}

		for _, remote := range remoteOrders {
			order, err := NormalizeOrder(store.ID, remote, s.cfg.OrderSync.CostRate)
			if err != nil {
				return total, err
			}

			if err := s.orderRepo.Upsert(order); err != nil {
				return total, err
			}

			total++
		}

		if len(remoteOrders) < pageSize || page >= maxPages {
			break
		}
	}

	return total, nil
}

func (s *Service) History(userID int, storeID string, limit uint64) ([]*domain.SyncHistory, error) {
	store, err := s.storeRepo.GetByID(storeID)
	if err != nil {
		return nil, err
	}

	if store == nil {
		return nil, ErrStoreNotFound
	}

	if store.UserID != userID {
		return nil, ErrStoreNotOwned
	}

	return s.historyRepo.ListByStore(storeID, limit)
}

func (s *Service) acquire(storeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight[storeID] {
		return false
	}

	s.inFlight[storeID] = true
	return true
}

func (s *Service) release(storeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, storeID)
}
