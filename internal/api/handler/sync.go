package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-tracker-api/infrastructure/integrator/woocommerce/wooclient"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/syncing"
	"github.com/vfg2006/profit-tracker-api/pkg/apiErrors"
)

const defaultSyncHistoryLimit = 20

// SyncStore dispara a importação de pedidos da loja. Uma segunda chamada
// enquanto a primeira roda recebe 409.
func SyncStore(service syncing.OrderSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		result, err := service.SyncStore(userClaims.UserID, pathParam(r, "id"))
		if err != nil {
			handleSyncError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// SyncHistory lista as últimas execuções de sincronização da loja
func SyncHistory(service syncing.OrderSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		limit := uint64(defaultSyncHistoryLimit)
		if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
			parsed, err := strconv.ParseUint(rawLimit, 10, 64)
			if err != nil || parsed == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit inválido", nil)
				return
			}
			limit = parsed
		}

		history, err := service.History(userClaims.UserID, pathParam(r, "id"), limit)
		if err != nil {
			handleSyncError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(history)
	}
}

func handleSyncError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, syncing.ErrStoreNotFound):
		apiErrors.WriteError(w, apiErrors.ErrStoreNotFound, "Loja não encontrada", nil)

	case errors.Is(err, syncing.ErrStoreNotOwned):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotOwned, "Loja pertence a outro usuário", nil)

	case errors.Is(err, syncing.ErrSyncInProgress):
		apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyRunning, "Sincronização já em andamento para esta loja", nil)

	case errors.Is(err, wooclient.ErrRemoteRequest):
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Falha ao consultar a loja WooCommerce", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno na sincronização", nil)
	}
}
