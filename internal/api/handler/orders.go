package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/reporting"
	"github.com/vfg2006/profit-tracker-api/pkg/apiErrors"
)

// ListOrders retorna os pedidos sincronizados do usuário dentro da janela
func ListOrders(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		filters, ok := reportFiltersFromQuery(w, r)
		if !ok {
			return
		}

		orders, err := service.Orders(userClaims.UserID, filters)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar pedidos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(orders)
	}
}

// ExportOrders entrega os pedidos da janela como um arquivo CSV
func ExportOrders(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		filters, ok := reportFiltersFromQuery(w, r)
		if !ok {
			return
		}

		filename := fmt.Sprintf("orders-%s.csv", time.Now().Format(time.DateOnly))

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		if err := service.ExportOrdersCSV(w, userClaims.UserID, filters); err != nil {
			// Cabeçalhos já enviados; só resta registrar o erro
			logrus.WithError(err).Error("Erro ao exportar pedidos em CSV")
		}
	}
}
