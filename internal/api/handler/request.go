package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"github.com/vfg2006/profit-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/profit-tracker-api/pkg/middleware"
	"github.com/vfg2006/profit-tracker-api/pkg/utils"
)

// userFromRequest extrai as claims do usuário autenticado colocadas no
// contexto pelo middleware de autenticação
func userFromRequest(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}

	return claims, true
}

// pathParam lê um parâmetro de rota do httprouter
func pathParam(r *http.Request, name string) string {
	params := httprouter.ParamsFromContext(r.Context())
	return params.ByName(name)
}

// reportFiltersFromQuery monta a janela de datas a partir de
// start_date e end_date (formato YYYY-MM-DD, ambos opcionais)
func reportFiltersFromQuery(w http.ResponseWriter, r *http.Request) (*domain.ReportFilters, bool) {
	query := r.URL.Query()

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválido, use o formato YYYY-MM-DD", nil)
		return nil, false
	}

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválido, use o formato YYYY-MM-DD", nil)
		return nil, false
	}

	return &domain.ReportFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}, true
}
