package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/advertising"
	"github.com/vfg2006/profit-tracker-api/pkg/apiErrors"
)

func CreateAdAccount(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		var req domain.CreateAdAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateAdAccount(userClaims.UserID, &req)
		if err != nil {
			handleAdvertisingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func ListAdAccounts(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		accounts, err := service.ListAdAccounts(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar contas de anúncios", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(accounts)
	}
}

// CreateAdSpend lança um gasto diário de anúncio vinculado a uma conta
// do usuário e, opcionalmente, a uma loja
func CreateAdSpend(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		var req domain.CreateAdSpendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateAdSpend(userClaims.UserID, &req)
		if err != nil {
			handleAdvertisingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func ListAdSpends(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		spends, err := service.ListAdSpends(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar gastos de anúncio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(spends)
	}
}

func handleAdvertisingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, advertising.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Conta de anúncios não encontrada", nil)

	case errors.Is(err, advertising.ErrAccountNotOwned):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotOwned, "Conta de anúncios pertence a outro usuário", nil)

	case errors.Is(err, advertising.ErrStoreNotFound):
		apiErrors.WriteError(w, apiErrors.ErrStoreNotFound, "Loja não encontrada", nil)

	case errors.Is(err, advertising.ErrInvalidPlatform):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Plataforma de anúncios inválida", nil)

	case errors.Is(err, advertising.ErrInvalidSpendDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data do gasto inválida, use o formato YYYY-MM-DD", nil)

	case errors.Is(err, advertising.ErrInvalidRequest):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados obrigatórios ausentes ou inválidos", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar anúncios", nil)
	}
}
