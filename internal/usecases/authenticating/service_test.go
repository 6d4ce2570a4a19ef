package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/profit-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/profit-tracker-api/internal/config"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)

	userRepo := mocks.NewMockUserRepository(ctrl)
	cfg := &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste"},
	}

	return NewService(userRepo, cfg), userRepo
}

func hashOf(t *testing.T, password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestService_CreateUser(t *testing.T) {
	t.Run("Campos obrigatórios ausentes - deve rejeitar", func(t *testing.T) {
		service, _ := newTestService(t)

		created, err := service.CreateUser(&domain.User{Email: "a@b.com"})

		assert.Error(t, err)
		assert.Nil(t, created)
	})

	t.Run("Email já cadastrado - deve rejeitar", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByEmail("jose@exemplo.com").
			Return(&domain.User{ID: 7, Email: "jose@exemplo.com"}, nil)

		created, err := service.CreateUser(&domain.User{
			Name:         "José",
			Email:        "Jose@Exemplo.com",
			PasswordHash: "senha123",
		})

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
		assert.Nil(t, created)
	})

	t.Run("Fluxo normal - normaliza o email e grava a senha com hash", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByEmail("jose@exemplo.com").Return(nil, nil)

		userRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				assert.Equal(t, "jose@exemplo.com", user.Email)
				assert.True(t, user.Active)

				// A senha nunca é persistida em texto plano
				assert.NotEqual(t, "senha123", user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha123")))

				user.ID = 1
				return user, nil
			})

		created, err := service.CreateUser(&domain.User{
			Name:         "José",
			Email:        " Jose@Exemplo.com ",
			PasswordHash: "senha123",
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, created.ID)
	})
}

func TestService_LoginUser(t *testing.T) {
	t.Run("Senha errada - credenciais inválidas", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByEmail("jose@exemplo.com").Return(&domain.User{
			ID:           1,
			Email:        "jose@exemplo.com",
			PasswordHash: hashOf(t, "senha-certa"),
			Active:       true,
		}, nil)

		token, err := service.LoginUser("jose@exemplo.com", "senha-errada")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("Usuário desativado - deve negar o login", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByEmail("jose@exemplo.com").Return(&domain.User{
			ID:           1,
			Email:        "jose@exemplo.com",
			PasswordHash: hashOf(t, "senha123"),
			Active:       false,
		}, nil)

		token, err := service.LoginUser("jose@exemplo.com", "senha123")

		assert.ErrorIs(t, err, ErrUserDisabled)
		assert.Empty(t, token)
	})

	t.Run("Fluxo normal - token emitido valida de volta com as mesmas claims", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByEmail("jose@exemplo.com").Return(&domain.User{
			ID:           42,
			Name:         "José",
			Email:        "jose@exemplo.com",
			PasswordHash: hashOf(t, "senha123"),
			Active:       true,
		}, nil)

		token, err := service.LoginUser("jose@exemplo.com", "senha123")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, 42, claims.UserID)
		assert.Equal(t, "jose@exemplo.com", claims.UserEmail)
	})
}

func TestService_LoginUser_ValidadeDoTokenConfiguravel(t *testing.T) {
	ctrl := gomock.NewController(t)

	userRepo := mocks.NewMockUserRepository(ctrl)
	cfg := &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste", TokenTTLHours: 2},
	}
	service := NewService(userRepo, cfg)

	userRepo.EXPECT().GetUserByEmail("jose@exemplo.com").Return(&domain.User{
		ID:           42,
		Email:        "jose@exemplo.com",
		PasswordHash: hashOf(t, "senha123"),
		Active:       true,
	}, nil)

	token, err := service.LoginUser("jose@exemplo.com", "senha123")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestService_ValidateToken(t *testing.T) {
	service, _ := newTestService(t)

	t.Run("Token adulterado - deve rejeitar", func(t *testing.T) {
		claims, err := service.ValidateToken("cabecalho.corpo.assinatura")

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Token vazio - deve rejeitar", func(t *testing.T) {
		claims, err := service.ValidateToken("")

		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}
