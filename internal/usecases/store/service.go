package store

import (
	"fmt"
	"strings"

	"github.com/vfg2006/profit-tracker-api/infrastructure/integrator/woocommerce"
	"github.com/vfg2006/profit-tracker-api/infrastructure/repository"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"github.com/vfg2006/profit-tracker-api/pkg/log"
)

const defaultSyncFrequencyHours = 24

// Manager cuida do ciclo de vida das lojas conectadas: cadastro com
// validação de credenciais, listagem, teste de conexão e remoção
type Manager interface {
	CreateStore(userID int, req *domain.CreateStoreRequest) (*domain.Store, error)
	ListStores(userID int) ([]*domain.Store, error)
	GetStore(userID int, storeID string) (*domain.Store, error)
	TestConnection(req *domain.TestConnectionRequest) *domain.TestConnectionResponse
	DeleteStore(userID int, storeID string) error
}

type Service struct {
	storeRepo  repository.StoreRepository
	integrator woocommerce.WooIntegrator
}

func NewService(
	storeRepo repository.StoreRepository,
	integrator woocommerce.WooIntegrator,
) Manager {
	return &Service{
		storeRepo:  storeRepo,
		integrator: integrator,
	}
}

// CreateStore valida as credenciais contra a loja antes de persistir.
// Credenciais que não conectam não entram no banco.
func (s *Service) CreateStore(userID int, req *domain.CreateStoreRequest) (*domain.Store, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	baseURL := normalizeURL(req.URL)

	if !s.integrator.CheckConnection(baseURL, req.ConsumerKey, req.ConsumerSecret) {
		log.L.WithField("url", baseURL).Warn("Cadastro de loja recusado: teste de conexão falhou")
		return nil, ErrConnectionFailed
	}

	frequency := req.SyncFrequencyHours
	if frequency <= 0 {
		frequency = defaultSyncFrequencyHours
	}

	store := &domain.Store{
		UserID:             userID,
		Name:               strings.TrimSpace(req.Name),
		URL:                baseURL,
		ConsumerKey:        req.ConsumerKey,
		ConsumerSecret:     req.ConsumerSecret,
		AutoSyncEnabled:    req.AutoSyncEnabled,
		SyncFrequencyHours: frequency,
	}

	created, err := s.storeRepo.Create(store)
	if err != nil {
		return nil, fmt.Errorf("erro ao cadastrar loja: %w", err)
	}

	log.L.WithFields(log.Fields{
		"store_id": created.ID,
		"user_id":  userID,
	}).Info("Loja cadastrada com sucesso")

	return created, nil
}

func (s *Service) ListStores(userID int) ([]*domain.Store, error) {
	stores, err := s.storeRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lojas: %w", err)
	}

	return stores, nil
}

func (s *Service) GetStore(userID int, storeID string) (*domain.Store, error) {
	store, err := s.storeRepo.GetByID(storeID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar loja: %w", err)
	}

	if store == nil {
		return nil, ErrStoreNotFound
	}

	if store.UserID != userID {
		return nil, ErrStoreNotOwned
	}

	return store, nil
}

// TestConnection nunca devolve erro: falha de rede ou credencial inválida
// viram Connected=false
func (s *Service) TestConnection(req *domain.TestConnectionRequest) *domain.TestConnectionResponse {
	connected := s.integrator.CheckConnection(normalizeURL(req.URL), req.ConsumerKey, req.ConsumerSecret)

	return &domain.TestConnectionResponse{Connected: connected}
}

// DeleteStore remove a loja e, por cascata no banco, seus pedidos e
// histórico de sincronização
func (s *Service) DeleteStore(userID int, storeID string) error {
	if _, err := s.GetStore(userID, storeID); err != nil {
		return err
	}

	if err := s.storeRepo.Delete(storeID); err != nil {
		return fmt.Errorf("erro ao remover loja: %w", err)
	}

	log.L.WithFields(log.Fields{
		"store_id": storeID,
		"user_id":  userID,
	}).Info("Loja removida")

	return nil
}

func validateCreateRequest(req *domain.CreateStoreRequest) error {
	if req == nil {
		return ErrInvalidRequest
	}

	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.URL) == "" ||
		req.ConsumerKey == "" ||
		req.ConsumerSecret == "" {
		return ErrInvalidRequest
	}

	return nil
}

func normalizeURL(rawURL string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(rawURL), "/")
	if trimmed == "" {
		return trimmed
	}

	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "https://" + trimmed
	}

	return trimmed
}
