package syncing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	wcdomain "github.com/vfg2006/profit-tracker-api/infrastructure/integrator/woocommerce/domain"
	wcmocks "github.com/vfg2006/profit-tracker-api/infrastructure/integrator/woocommerce/mocks"
	"github.com/vfg2006/profit-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/profit-tracker-api/internal/config"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockStoreRepository, *mocks.MockOrderRepository, *mocks.MockSyncHistoryRepository, *wcmocks.MockWooIntegrator) {
	ctrl := gomock.NewController(t)

	storeRepo := mocks.NewMockStoreRepository(ctrl)
	orderRepo := mocks.NewMockOrderRepository(ctrl)
	historyRepo := mocks.NewMockSyncHistoryRepository(ctrl)
	integrator := wcmocks.NewMockWooIntegrator(ctrl)

	cfg := &config.Config{
		OrderSync: config.OrderSync{
			CostRate: 0.30,
			PageSize: 2,
			MaxPages: 3,
		},
	}

	service := &Service{
		storeRepo:   storeRepo,
		orderRepo:   orderRepo,
		historyRepo: historyRepo,
		integrator:  integrator,
		cfg:         cfg,
		inFlight:    make(map[string]bool),
	}

	return service, storeRepo, orderRepo, historyRepo, integrator
}

func testStore() *domain.Store {
	return &domain.Store{
		ID:     "st1234",
		UserID: 1,
		Name:   "Minha Loja",
		URL:    "https://minhaloja.com",
	}
}

func remoteOrder(id int, total string) wcdomain.Order {
	return wcdomain.Order{
		ID:          id,
		DateCreated: "2025-03-05T10:00:00",
		Status:      "completed",
		Total:       total,
	}
}

func TestService_SyncStore(t *testing.T) {
	t.Run("Loja inexistente - deve retornar ErrStoreNotFound", func(t *testing.T) {
		service, storeRepo, _, _, _ := newTestService(t)

		storeRepo.EXPECT().GetByID("nao-existe").Return(nil, nil)

		result, err := service.SyncStore(1, "nao-existe")

		assert.ErrorIs(t, err, ErrStoreNotFound)
		assert.Nil(t, result)
	})

	t.Run("Loja de outro usuário - deve retornar ErrStoreNotOwned", func(t *testing.T) {
		service, storeRepo, _, _, _ := newTestService(t)

		store := testStore()
		store.UserID = 99
		storeRepo.EXPECT().GetByID(store.ID).Return(store, nil)

		result, err := service.SyncStore(1, store.ID)

		assert.ErrorIs(t, err, ErrStoreNotOwned)
		assert.Nil(t, result)
	})

	t.Run("Fluxo completo - deve importar, atualizar last_sync e concluir o histórico", func(t *testing.T) {
		service, storeRepo, orderRepo, historyRepo, integrator := newTestService(t)

		store := testStore()
		storeRepo.EXPECT().GetByID(store.ID).Return(store, nil)

		historyRepo.EXPECT().
			Create(store.ID, domain.SyncTypeOrders, gomock.Any()).
			Return(int64(10), nil)

		// Primeira página cheia, segunda página curta encerra a paginação
		integrator.EXPECT().
			FetchOrdersPage(store, 1, 2).
			Return([]wcdomain.Order{remoteOrder(1, "100.00"), remoteOrder(2, "50.00")}, nil)
		integrator.EXPECT().
			FetchOrdersPage(store, 2, 2).
			Return([]wcdomain.Order{remoteOrder(3, "30.00")}, nil)

		orderRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(3)

		storeRepo.EXPECT().TouchLastSync(store.ID, gomock.Any()).Return(nil)
		historyRepo.EXPECT().MarkCompleted(int64(10), 3).Return(nil)

		result, err := service.SyncStore(1, store.ID)

		assert.NoError(t, err)
		assert.Equal(t, store.ID, result.StoreID)
		assert.Equal(t, 3, result.RecordsSynced)
	})

	t.Run("Falha na API remota - histórico deve virar failed", func(t *testing.T) {
		service, storeRepo, _, historyRepo, integrator := newTestService(t)

		store := testStore()
		storeRepo.EXPECT().GetByID(store.ID).Return(store, nil)

		historyRepo.EXPECT().
			Create(store.ID, domain.SyncTypeOrders, gomock.Any()).
			Return(int64(11), nil)

		integrator.EXPECT().
			FetchOrdersPage(store, 1, 2).
			Return(nil, errors.New("falha de rede"))

		historyRepo.EXPECT().MarkFailed(int64(11), "falha de rede").Return(nil)

		result, err := service.SyncStore(1, store.ID)

		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Pedido com total inválido - interrompe e marca como failed", func(t *testing.T) {
		service, storeRepo, _, historyRepo, integrator := newTestService(t)

		store := testStore()
		storeRepo.EXPECT().GetByID(store.ID).Return(store, nil)

		historyRepo.EXPECT().
			Create(store.ID, domain.SyncTypeOrders, gomock.Any()).
			Return(int64(12), nil)

		integrator.EXPECT().
			FetchOrdersPage(store, 1, 2).
			Return([]wcdomain.Order{remoteOrder(1, "nao-numerico")}, nil)

		historyRepo.EXPECT().MarkFailed(int64(12), gomock.Any()).Return(nil)

		result, err := service.SyncStore(1, store.ID)

		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Limite de páginas - deve parar em MaxPages mesmo com páginas cheias", func(t *testing.T) {
		service, storeRepo, orderRepo, historyRepo, integrator := newTestService(t)

		store := testStore()
		storeRepo.EXPECT().GetByID(store.ID).Return(store, nil)

		historyRepo.EXPECT().
			Create(store.ID, domain.SyncTypeOrders, gomock.Any()).
			Return(int64(13), nil)

		fullPage := []wcdomain.Order{remoteOrder(1, "10.00"), remoteOrder(2, "20.00")}
		integrator.EXPECT().FetchOrdersPage(store, 1, 2).Return(fullPage, nil)
		integrator.EXPECT().FetchOrdersPage(store, 2, 2).Return(fullPage, nil)
		integrator.EXPECT().FetchOrdersPage(store, 3, 2).Return(fullPage, nil)

		orderRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(6)

		storeRepo.EXPECT().TouchLastSync(store.ID, gomock.Any()).Return(nil)
		historyRepo.EXPECT().MarkCompleted(int64(13), 6).Return(nil)

		result, err := service.SyncStore(1, store.ID)

		assert.NoError(t, err)
		assert.Equal(t, 6, result.RecordsSynced)
	})
}

func TestService_SyncStoreUnchecked_Concorrencia(t *testing.T) {
	service, _, _, _, _ := newTestService(t)

	store := testStore()

	// Simula uma sincronização em andamento para a mesma loja
	service.inFlight[store.ID] = true

	result, err := service.SyncStoreUnchecked(store)

	assert.ErrorIs(t, err, ErrSyncInProgress)
	assert.Nil(t, result)
}

func TestService_History(t *testing.T) {
	t.Run("Loja de outro usuário - deve negar acesso ao histórico", func(t *testing.T) {
		service, storeRepo, _, _, _ := newTestService(t)

		store := testStore()
		store.UserID = 42
		storeRepo.EXPECT().GetByID(store.ID).Return(store, nil)

		history, err := service.History(1, store.ID, 20)

		assert.ErrorIs(t, err, ErrStoreNotOwned)
		assert.Nil(t, history)
	})

	t.Run("Fluxo normal - deve delegar ao repositório", func(t *testing.T) {
		service, storeRepo, _, historyRepo, _ := newTestService(t)

		store := testStore()
		storeRepo.EXPECT().GetByID(store.ID).Return(store, nil)

		expected := []*domain.SyncHistory{
			{ID: 1, StoreID: store.ID, Status: domain.SyncStatusSuccess},
		}
		historyRepo.EXPECT().ListByStore(store.ID, uint64(20)).Return(expected, nil)

		history, err := service.History(1, store.ID, 20)

		assert.NoError(t, err)
		assert.Equal(t, expected, history)
	})
}
