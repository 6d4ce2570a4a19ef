package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/reporting"
	"github.com/vfg2006/profit-tracker-api/pkg/apiErrors"
)

// MetricsTotals retorna os agregados da janela: receita, custo, lucro,
// gasto de anúncio, lucro líquido e total de pedidos
func MetricsTotals(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		filters, ok := reportFiltersFromQuery(w, r)
		if !ok {
			return
		}

		totals, err := service.Totals(userClaims.UserID, filters)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular totais", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(totals)
	}
}

// MetricsDaily retorna a série diária de receita, lucro, gasto e lucro
// líquido, ordenada por data
func MetricsDaily(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		filters, ok := reportFiltersFromQuery(w, r)
		if !ok {
			return
		}

		series, err := service.DailySeries(userClaims.UserID, filters)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular série diária", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(series)
	}
}

// MetricsKPIs retorna ticket médio, margem de lucro e ROAS com as
// variações contra o período anterior de mesma duração
func MetricsKPIs(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		filters, ok := reportFiltersFromQuery(w, r)
		if !ok {
			return
		}

		kpis, err := service.KPIs(userClaims.UserID, filters)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular KPIs", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(kpis)
	}
}

// StoreMetrics retorna os números de uma única loja dentro da janela
func StoreMetrics(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		filters, ok := reportFiltersFromQuery(w, r)
		if !ok {
			return
		}

		stats, err := service.StoreStats(userClaims.UserID, pathParam(r, "id"), filters)
		if err != nil {
			if errors.Is(err, reporting.ErrStoreNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrStoreNotFound, "Loja não encontrada", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular métricas da loja", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	}
}

// Calculator simula o lucro de uma venda hipotética sem tocar o banco
func Calculator(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CalculatorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result := service.Calculate(req)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}
