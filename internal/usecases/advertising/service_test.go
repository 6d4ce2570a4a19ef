package advertising

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/profit-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (Advertiser, *mocks.MockAdAccountRepository, *mocks.MockAdSpendRepository, *mocks.MockStoreRepository) {
	ctrl := gomock.NewController(t)

	adAccountRepo := mocks.NewMockAdAccountRepository(ctrl)
	adSpendRepo := mocks.NewMockAdSpendRepository(ctrl)
	storeRepo := mocks.NewMockStoreRepository(ctrl)

	return NewService(adAccountRepo, adSpendRepo, storeRepo), adAccountRepo, adSpendRepo, storeRepo
}

func TestService_CreateAdAccount(t *testing.T) {
	t.Run("Plataforma desconhecida - deve rejeitar", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		created, err := service.CreateAdAccount(1, &domain.CreateAdAccountRequest{
			Name:     "Campanhas",
			Platform: "orkut",
		})

		assert.ErrorIs(t, err, ErrInvalidPlatform)
		assert.Nil(t, created)
	})

	t.Run("Nome vazio - deve rejeitar", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		created, err := service.CreateAdAccount(1, &domain.CreateAdAccountRequest{
			Name:     "   ",
			Platform: domain.AdPlatformFacebook,
		})

		assert.ErrorIs(t, err, ErrInvalidRequest)
		assert.Nil(t, created)
	})

	t.Run("Fluxo normal - persiste com o dono", func(t *testing.T) {
		service, adAccountRepo, _, _ := newTestService(t)

		adAccountRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(account *domain.AdAccount) (*domain.AdAccount, error) {
				assert.Equal(t, 1, account.UserID)
				assert.Equal(t, domain.AdPlatformGoogle, account.Platform)
				account.ID = "acc123"
				return account, nil
			})

		created, err := service.CreateAdAccount(1, &domain.CreateAdAccountRequest{
			Name:     "Google Ads",
			Platform: domain.AdPlatformGoogle,
		})

		assert.NoError(t, err)
		assert.Equal(t, "acc123", created.ID)
	})
}

func TestService_CreateAdSpend(t *testing.T) {
	t.Run("Conta de outro usuário - deve negar", func(t *testing.T) {
		service, adAccountRepo, _, _ := newTestService(t)

		adAccountRepo.EXPECT().GetByID("acc1").Return(&domain.AdAccount{ID: "acc1", UserID: 99}, nil)

		created, err := service.CreateAdSpend(1, &domain.CreateAdSpendRequest{
			AdAccountID: "acc1",
			Date:        "2025-03-05",
			Amount:      50,
		})

		assert.ErrorIs(t, err, ErrAccountNotOwned)
		assert.Nil(t, created)
	})

	t.Run("Conta inexistente - deve retornar ErrAccountNotFound", func(t *testing.T) {
		service, adAccountRepo, _, _ := newTestService(t)

		adAccountRepo.EXPECT().GetByID("acc1").Return(nil, nil)

		created, err := service.CreateAdSpend(1, &domain.CreateAdSpendRequest{
			AdAccountID: "acc1",
			Date:        "2025-03-05",
			Amount:      50,
		})

		assert.ErrorIs(t, err, ErrAccountNotFound)
		assert.Nil(t, created)
	})

	t.Run("Data fora do formato - deve rejeitar", func(t *testing.T) {
		service, adAccountRepo, _, _ := newTestService(t)

		adAccountRepo.EXPECT().GetByID("acc1").Return(&domain.AdAccount{ID: "acc1", UserID: 1}, nil)

		created, err := service.CreateAdSpend(1, &domain.CreateAdSpendRequest{
			AdAccountID: "acc1",
			Date:        "05/03/2025",
			Amount:      50,
		})

		assert.ErrorIs(t, err, ErrInvalidSpendDate)
		assert.Nil(t, created)
	})

	t.Run("Loja vinculada de outro usuário - deve negar", func(t *testing.T) {
		service, adAccountRepo, _, storeRepo := newTestService(t)

		storeID := "st1"
		adAccountRepo.EXPECT().GetByID("acc1").Return(&domain.AdAccount{ID: "acc1", UserID: 1}, nil)
		storeRepo.EXPECT().GetByID(storeID).Return(&domain.Store{ID: storeID, UserID: 99}, nil)

		created, err := service.CreateAdSpend(1, &domain.CreateAdSpendRequest{
			AdAccountID: "acc1",
			StoreID:     &storeID,
			Date:        "2025-03-05",
			Amount:      50,
		})

		assert.ErrorIs(t, err, ErrStoreNotFound)
		assert.Nil(t, created)
	})

	t.Run("Fluxo normal - converte a data e persiste", func(t *testing.T) {
		service, adAccountRepo, adSpendRepo, _ := newTestService(t)

		adAccountRepo.EXPECT().GetByID("acc1").Return(&domain.AdAccount{ID: "acc1", UserID: 1}, nil)

		adSpendRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(spend *domain.AdSpend) (*domain.AdSpend, error) {
				assert.Equal(t, "acc1", spend.AdAccountID)
				assert.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), spend.Date)
				assert.Equal(t, 50.0, spend.Amount)
				spend.ID = "sp1"
				return spend, nil
			})

		created, err := service.CreateAdSpend(1, &domain.CreateAdSpendRequest{
			AdAccountID: "acc1",
			Date:        "2025-03-05",
			Amount:      50,
		})

		assert.NoError(t, err)
		assert.Equal(t, "sp1", created.ID)
	})

	t.Run("Valor negativo - deve rejeitar antes de tocar o banco", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		created, err := service.CreateAdSpend(1, &domain.CreateAdSpendRequest{
			AdAccountID: "acc1",
			Date:        "2025-03-05",
			Amount:      -5,
		})

		assert.ErrorIs(t, err, ErrInvalidRequest)
		assert.Nil(t, created)
	})
}
