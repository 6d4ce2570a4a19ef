package domain

import (
	"time"
)

// ReportFilters delimita a janela de datas dos relatórios. As duas pontas
// são opcionais: sem StartDate a janela é aberta (inclui tudo), sem EndDate
// a janela fecha no fim do dia de hoje.
type ReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// Bounds resolve a janela efetiva: início do dia em StartDate e fim do dia
// em EndDate (ou de hoje, quando ausente). O booleano indica se existe
// limite inferior.
func (f *ReportFilters) Bounds(now time.Time) (from time.Time, to time.Time, bounded bool) {
	if f == nil || f.StartDate == nil {
		return time.Time{}, time.Time{}, false
	}

	from = StartOfDay(*f.StartDate)

	end := now
	if f.EndDate != nil {
		end = *f.EndDate
	}
	to = EndOfDay(end)

	return from, to, true
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

type Totals struct {
	Revenue    float64 `json:"revenue"`
	Cost       float64 `json:"cost"`
	Profit     float64 `json:"profit"`
	AdSpend    float64 `json:"ad_spend"`
	NetProfit  float64 `json:"net_profit"`
	OrderCount int     `json:"order_count"`
}

// DailyMetric é um balde de um dia do gráfico de série diária
type DailyMetric struct {
	Date      time.Time `json:"date"`
	Label     string    `json:"label"`
	Revenue   float64   `json:"revenue"`
	Profit    float64   `json:"profit"`
	AdSpend   float64   `json:"ad_spend"`
	NetProfit float64   `json:"net_profit"`
}

type KPIMetrics struct {
	AvgOrderValue       float64 `json:"avg_order_value"`
	AvgOrderValueChange float64 `json:"avg_order_value_change"`
	ProfitMargin        float64 `json:"profit_margin"`
	ProfitMarginChange  float64 `json:"profit_margin_change"`
	ROAS                float64 `json:"roas"`
	ROASChange          float64 `json:"roas_change"`
}

type CalculatorRequest struct {
	Revenue           float64 `json:"revenue"`
	ProductCost       float64 `json:"product_cost"`
	AdSpend           float64 `json:"ad_spend"`
	ShippingCost      float64 `json:"shipping_cost"`
	TransactionFeePct float64 `json:"transaction_fee_pct"`
}

type CalculatorResponse struct {
	GrossProfit    float64 `json:"gross_profit"`
	NetProfit      float64 `json:"net_profit"`
	ProfitMargin   float64 `json:"profit_margin"`
	ROAS           float64 `json:"roas"`
	BreakEven      float64 `json:"break_even"`
	TotalCosts     float64 `json:"total_costs"`
	TransactionFee float64 `json:"transaction_fee"`
}
