package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	wcmocks "github.com/vfg2006/profit-tracker-api/infrastructure/integrator/woocommerce/mocks"
	"github.com/vfg2006/profit-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (Manager, *mocks.MockStoreRepository, *wcmocks.MockWooIntegrator) {
	ctrl := gomock.NewController(t)

	storeRepo := mocks.NewMockStoreRepository(ctrl)
	integrator := wcmocks.NewMockWooIntegrator(ctrl)

	return NewService(storeRepo, integrator), storeRepo, integrator
}

func validRequest() *domain.CreateStoreRequest {
	return &domain.CreateStoreRequest{
		Name:           "Minha Loja",
		URL:            "https://minhaloja.com",
		ConsumerKey:    "ck_123",
		ConsumerSecret: "cs_456",
	}
}

func TestService_CreateStore(t *testing.T) {
	t.Run("Credenciais inválidas - teste de conexão bloqueia o cadastro", func(t *testing.T) {
		service, _, integrator := newTestService(t)

		integrator.EXPECT().
			CheckConnection("https://minhaloja.com", "ck_123", "cs_456").
			Return(false)

		created, err := service.CreateStore(1, validRequest())

		assert.ErrorIs(t, err, ErrConnectionFailed)
		assert.Nil(t, created)
	})

	t.Run("Campos obrigatórios ausentes - não chega a testar conexão", func(t *testing.T) {
		service, _, _ := newTestService(t)

		req := validRequest()
		req.ConsumerSecret = ""

		created, err := service.CreateStore(1, req)

		assert.ErrorIs(t, err, ErrInvalidRequest)
		assert.Nil(t, created)
	})

	t.Run("Fluxo completo - normaliza a URL e persiste com o dono", func(t *testing.T) {
		service, storeRepo, integrator := newTestService(t)

		req := validRequest()
		req.URL = "minhaloja.com/" // sem esquema e com barra final

		integrator.EXPECT().
			CheckConnection("https://minhaloja.com", "ck_123", "cs_456").
			Return(true)

		storeRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(store *domain.Store) (*domain.Store, error) {
				assert.Equal(t, 1, store.UserID)
				assert.Equal(t, "https://minhaloja.com", store.URL)
				assert.Equal(t, 24, store.SyncFrequencyHours)
				store.ID = "st1234"
				return store, nil
			})

		created, err := service.CreateStore(1, req)

		assert.NoError(t, err)
		assert.Equal(t, "st1234", created.ID)
	})
}

func TestService_GetStore(t *testing.T) {
	t.Run("Loja de outro usuário - deve retornar ErrStoreNotOwned", func(t *testing.T) {
		service, storeRepo, _ := newTestService(t)

		storeRepo.EXPECT().GetByID("st1").Return(&domain.Store{ID: "st1", UserID: 2}, nil)

		found, err := service.GetStore(1, "st1")

		assert.ErrorIs(t, err, ErrStoreNotOwned)
		assert.Nil(t, found)
	})

	t.Run("Loja inexistente - deve retornar ErrStoreNotFound", func(t *testing.T) {
		service, storeRepo, _ := newTestService(t)

		storeRepo.EXPECT().GetByID("st1").Return(nil, nil)

		found, err := service.GetStore(1, "st1")

		assert.ErrorIs(t, err, ErrStoreNotFound)
		assert.Nil(t, found)
	})
}

func TestService_DeleteStore(t *testing.T) {
	t.Run("Dono remove a loja", func(t *testing.T) {
		service, storeRepo, _ := newTestService(t)

		storeRepo.EXPECT().GetByID("st1").Return(&domain.Store{ID: "st1", UserID: 1}, nil)
		storeRepo.EXPECT().Delete("st1").Return(nil)

		assert.NoError(t, service.DeleteStore(1, "st1"))
	})

	t.Run("Não-dono não remove", func(t *testing.T) {
		service, storeRepo, _ := newTestService(t)

		storeRepo.EXPECT().GetByID("st1").Return(&domain.Store{ID: "st1", UserID: 2}, nil)

		assert.ErrorIs(t, service.DeleteStore(1, "st1"), ErrStoreNotOwned)
	})
}

func TestService_TestConnection(t *testing.T) {
	service, _, integrator := newTestService(t)

	integrator.EXPECT().
		CheckConnection("https://outra.com", "ck", "cs").
		Return(true)

	result := service.TestConnection(&domain.TestConnectionRequest{
		URL:            "outra.com",
		ConsumerKey:    "ck",
		ConsumerSecret: "cs",
	})

	assert.True(t, result.Connected)
}
