package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/profit-tracker-api/infrastructure/integrator/woocommerce/wooclient"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/syncing"
	"github.com/vfg2006/profit-tracker-api/pkg/apiErrors"
)

func TestHandleSyncError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedCode   string
		expectedStatus int
	}{
		{
			name:           "Loja não encontrada",
			err:            syncing.ErrStoreNotFound,
			expectedCode:   apiErrors.ErrStoreNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Loja de outro usuário",
			err:            syncing.ErrStoreNotOwned,
			expectedCode:   apiErrors.ErrResourceNotOwned,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Sincronização já em andamento",
			err:            syncing.ErrSyncInProgress,
			expectedCode:   apiErrors.ErrSyncAlreadyRunning,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Loja remota respondeu não-2xx - mapeia para serviço externo",
			err:            fmt.Errorf("erro ao buscar pedidos: %w", fmt.Errorf("%w: status 401 Unauthorized", wooclient.ErrRemoteRequest)),
			expectedCode:   apiErrors.ErrExternalService,
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:           "Erro desconhecido - erro interno",
			err:            errors.New("conexão perdida"),
			expectedCode:   apiErrors.ErrInternalServer,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			handleSyncError(recorder, tc.err)

			assert.Equal(t, tc.expectedStatus, recorder.Code)

			var apiErr apiErrors.APIError
			err := json.NewDecoder(recorder.Body).Decode(&apiErr)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedCode, apiErr.Code)
		})
	}
}
