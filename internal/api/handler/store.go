package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/store"
	"github.com/vfg2006/profit-tracker-api/pkg/apiErrors"
)

// CreateStore cadastra uma loja WooCommerce validando as credenciais
// contra a loja antes de persistir
func CreateStore(service store.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		var req domain.CreateStoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateStore(userClaims.UserID, &req)
		if err != nil {
			handleStoreError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func ListStores(service store.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		stores, err := service.ListStores(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar lojas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stores)
	}
}

func GetStore(service store.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		found, err := service.GetStore(userClaims.UserID, pathParam(r, "id"))
		if err != nil {
			handleStoreError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(found)
	}
}

// TestStoreConnection testa credenciais sem persistir nada
func TestStoreConnection(service store.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.TestConnectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result := service.TestConnection(&req)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

func DeleteStore(service store.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		if err := service.DeleteStore(userClaims.UserID, pathParam(r, "id")); err != nil {
			handleStoreError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrStoreNotFound):
		apiErrors.WriteError(w, apiErrors.ErrStoreNotFound, "Loja não encontrada", nil)

	case errors.Is(err, store.ErrStoreNotOwned):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotOwned, "Loja pertence a outro usuário", nil)

	case errors.Is(err, store.ErrConnectionFailed):
		apiErrors.WriteError(w, apiErrors.ErrStoreConnection, "Não foi possível conectar na loja com as credenciais informadas", nil)

	case errors.Is(err, store.ErrInvalidRequest):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome, URL e credenciais da loja são obrigatórios", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar loja", nil)
	}
}
