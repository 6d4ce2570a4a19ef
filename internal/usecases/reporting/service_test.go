package reporting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/profit-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newReportingService(t *testing.T) (*Service, *mocks.MockOrderRepository, *mocks.MockAdSpendRepository, *mocks.MockStoreRepository) {
	ctrl := gomock.NewController(t)

	orderRepo := mocks.NewMockOrderRepository(ctrl)
	adSpendRepo := mocks.NewMockAdSpendRepository(ctrl)
	storeRepo := mocks.NewMockStoreRepository(ctrl)

	service := &Service{
		orderRepo:   orderRepo,
		adSpendRepo: adSpendRepo,
		storeRepo:   storeRepo,
		now:         func() time.Time { return day(2025, 3, 20) },
	}

	return service, orderRepo, adSpendRepo, storeRepo
}

func TestService_Totals(t *testing.T) {
	service, orderRepo, adSpendRepo, _ := newReportingService(t)

	orderRepo.EXPECT().ListByUser(1).Return([]*domain.Order{
		order("st1", day(2025, 3, 5), 100, 30),
	}, nil)
	adSpendRepo.EXPECT().ListByUser(1).Return([]*domain.AdSpend{
		spend(day(2025, 3, 5), 20),
	}, nil)

	totals, err := service.Totals(1, &domain.ReportFilters{})

	assert.NoError(t, err)
	assert.Equal(t, 100.0, totals.Revenue)
	assert.Equal(t, 50.0, totals.NetProfit)
}

func TestService_Totals_ErroDeBanco(t *testing.T) {
	service, orderRepo, _, _ := newReportingService(t)

	orderRepo.EXPECT().ListByUser(1).Return(nil, errors.New("conexão perdida"))

	totals, err := service.Totals(1, &domain.ReportFilters{})

	assert.Error(t, err)
	assert.Nil(t, totals)
}

func TestService_StoreStats(t *testing.T) {
	t.Run("Loja de outro usuário - deve retornar ErrStoreNotFound", func(t *testing.T) {
		service, _, _, storeRepo := newReportingService(t)

		storeRepo.EXPECT().GetByID("st1").Return(&domain.Store{ID: "st1", UserID: 99}, nil)

		stats, err := service.StoreStats(1, "st1", &domain.ReportFilters{})

		assert.ErrorIs(t, err, ErrStoreNotFound)
		assert.Nil(t, stats)
	})

	t.Run("Fluxo normal - projeta apenas a loja pedida", func(t *testing.T) {
		service, orderRepo, adSpendRepo, storeRepo := newReportingService(t)

		storeRepo.EXPECT().GetByID("st1").Return(&domain.Store{ID: "st1", UserID: 1}, nil)
		orderRepo.EXPECT().ListByStore("st1").Return([]*domain.Order{
			order("st1", day(2025, 3, 5), 100, 30),
		}, nil)
		adSpendRepo.EXPECT().ListByUser(1).Return(nil, nil)

		stats, err := service.StoreStats(1, "st1", &domain.ReportFilters{})

		assert.NoError(t, err)
		assert.Equal(t, 100.0, stats.Revenue)
		assert.Equal(t, 1, stats.Orders)
	})
}
