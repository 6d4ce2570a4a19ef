package reporting

import (
	"sort"
	"time"

	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"github.com/vfg2006/profit-tracker-api/pkg/utils"
)

// As funções deste arquivo são puras: recebem os registros já carregados
// em memória e a janela de datas, e devolvem os agregados. Nenhuma toca
// banco ou rede.

// FilterOrdersByWindow devolve os pedidos dentro da janela, inclusiva nas
// duas pontas (início do dia em from, fim do dia em to). Sem limite
// inferior, nada é excluído.
func FilterOrdersByWindow(orders []*domain.Order, filters *domain.ReportFilters, now time.Time) []*domain.Order {
	from, to, bounded := filters.Bounds(now)
	if !bounded {
		return orders
	}

	filtered := make([]*domain.Order, 0, len(orders))
	for _, order := range orders {
		if inWindow(order.OrderDate, from, to) {
			filtered = append(filtered, order)
		}
	}

	return filtered
}

// FilterSpendsByWindow aplica a mesma janela aos gastos de anúncio
func FilterSpendsByWindow(spends []*domain.AdSpend, filters *domain.ReportFilters, now time.Time) []*domain.AdSpend {
	from, to, bounded := filters.Bounds(now)
	if !bounded {
		return spends
	}

	filtered := make([]*domain.AdSpend, 0, len(spends))
	for _, spend := range spends {
		if inWindow(spend.Date, from, to) {
			filtered = append(filtered, spend)
		}
	}

	return filtered
}

func inWindow(date, from, to time.Time) bool {
	return !date.Before(from) && !date.After(to)
}

// Totals agrega receita, custo, lucro, gasto de anúncio e lucro líquido
// (lucro − gasto) da janela
func Totals(orders []*domain.Order, spends []*domain.AdSpend, filters *domain.ReportFilters, now time.Time) domain.Totals {
	windowOrders := FilterOrdersByWindow(orders, filters, now)
	windowSpends := FilterSpendsByWindow(spends, filters, now)

	totals := domain.Totals{
		OrderCount: len(windowOrders),
	}

	for _, order := range windowOrders {
		totals.Revenue += order.Total
		totals.Cost += order.Cost
		totals.Profit += order.Profit
	}

	for _, spend := range windowSpends {
		totals.AdSpend += spend.Amount
	}

	totals.NetProfit = totals.Profit - totals.AdSpend

	return totals
}

// DailySeries agrupa pedidos e gastos por dia de calendário. Os baldes são
// chaveados pela própria data (não pelo rótulo formatado), então janelas
// que cruzam a virada do ano ordenam corretamente.
func DailySeries(orders []*domain.Order, spends []*domain.AdSpend, filters *domain.ReportFilters, now time.Time) []domain.DailyMetric {
	buckets := make(map[string]*domain.DailyMetric)

	bucketFor := func(date time.Time) *domain.DailyMetric {
		day := domain.StartOfDay(date)
		key := day.Format(time.DateOnly)

		bucket, ok := buckets[key]
		if !ok {
			bucket = &domain.DailyMetric{
				Date:  day,
				Label: day.Format("Jan 02"),
			}
			buckets[key] = bucket
		}
		return bucket
	}

	for _, order := range FilterOrdersByWindow(orders, filters, now) {
		bucket := bucketFor(order.OrderDate)
		bucket.Revenue += order.Total
		bucket.Profit += order.Profit
	}

	for _, spend := range FilterSpendsByWindow(spends, filters, now) {
		bucket := bucketFor(spend.Date)
		bucket.AdSpend += spend.Amount
	}

	series := make([]domain.DailyMetric, 0, len(buckets))
	for _, bucket := range buckets {
		bucket.NetProfit = bucket.Profit - bucket.AdSpend
		series = append(series, *bucket)
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return series
}

// KPIs calcula ticket médio, margem de lucro e ROAS da janela, com as
// variações percentuais contra o período imediatamente anterior de mesma
// duração. Sem as duas pontas da janela não há período anterior definido e
// as variações ficam em zero.
func KPIs(orders []*domain.Order, spends []*domain.AdSpend, filters *domain.ReportFilters, now time.Time) domain.KPIMetrics {
	current := Totals(orders, spends, filters, now)

	kpis := domain.KPIMetrics{
		AvgOrderValue: safeDivide(current.Revenue, float64(current.OrderCount)),
		ProfitMargin:  safeDivide(current.Profit, current.Revenue) * 100,
		ROAS:          safeDivide(current.Revenue, current.AdSpend),
	}

	previousFilters, ok := previousPeriod(filters)
	if !ok {
		return kpis
	}

	previous := Totals(orders, spends, previousFilters, now)

	previousAvgOrder := safeDivide(previous.Revenue, float64(previous.OrderCount))
	previousMargin := safeDivide(previous.Profit, previous.Revenue) * 100
	previousROAS := safeDivide(previous.Revenue, previous.AdSpend)

	kpis.AvgOrderValueChange = percentChange(kpis.AvgOrderValue, previousAvgOrder)
	kpis.ProfitMarginChange = percentChange(kpis.ProfitMargin, previousMargin)
	kpis.ROASChange = percentChange(kpis.ROAS, previousROAS)

	return kpis
}

// previousPeriod devolve a janela de mesma duração imediatamente anterior
// ao início da janela atual
func previousPeriod(filters *domain.ReportFilters) (*domain.ReportFilters, bool) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, false
	}

	from := domain.StartOfDay(*filters.StartDate)
	to := domain.EndOfDay(*filters.EndDate)
	length := to.Sub(from)

	previousTo := from.AddDate(0, 0, -1)
	previousFrom := from.Add(-length)

	return &domain.ReportFilters{
		StartDate: &previousFrom,
		EndDate:   &previousTo,
	}, true
}

// StoreStats projeta os agregados de uma única loja dentro da janela
func StoreStats(storeID string, orders []*domain.Order, spends []*domain.AdSpend, filters *domain.ReportFilters, now time.Time) domain.StoreStats {
	stats := domain.StoreStats{StoreID: storeID}

	for _, order := range FilterOrdersByWindow(orders, filters, now) {
		if order.StoreID != storeID {
			continue
		}
		stats.Revenue += order.Total
		stats.Profit += order.Profit
		stats.Orders++
	}

	for _, spend := range FilterSpendsByWindow(spends, filters, now) {
		if spend.StoreID == nil || *spend.StoreID != storeID {
			continue
		}
		stats.AdSpend += spend.Amount
	}

	return stats
}

// AdAccountSpend soma todo o gasto registrado de uma conta de anúncios
func AdAccountSpend(spends []*domain.AdSpend, accountID string) float64 {
	var total float64
	for _, spend := range spends {
		if spend.AdAccountID == accountID {
			total += spend.Amount
		}
	}
	return total
}

// StoreAdSpend soma todo o gasto vinculado a uma loja
func StoreAdSpend(spends []*domain.AdSpend, storeID string) float64 {
	var total float64
	for _, spend := range spends {
		if spend.StoreID != nil && *spend.StoreID == storeID {
			total += spend.Amount
		}
	}
	return total
}

// safeDivide evita divisão por zero devolvendo 0 (valor seguro para
// exibição, não um valor matematicamente correto)
func safeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

func percentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace((current - previous) / previous * 100)
}
