package reporting

import (
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"github.com/vfg2006/profit-tracker-api/pkg/utils"
)

// Calculate simula o resultado de uma venda hipotética: lucro bruto,
// custos totais (produto + anúncio + frete + taxa da transação), lucro
// líquido, margem, ROAS e ponto de equilíbrio
func Calculate(req domain.CalculatorRequest) domain.CalculatorResponse {
	grossProfit := req.Revenue - req.ProductCost
	transactionFee := req.Revenue * req.TransactionFeePct / 100
	totalCosts := req.ProductCost + req.AdSpend + req.ShippingCost + transactionFee
	netProfit := req.Revenue - totalCosts

	return domain.CalculatorResponse{
		GrossProfit:    utils.RoundWithTwoDecimalPlace(grossProfit),
		NetProfit:      utils.RoundWithTwoDecimalPlace(netProfit),
		ProfitMargin:   utils.RoundWithTwoDecimalPlace(safeDivide(netProfit, req.Revenue) * 100),
		ROAS:           utils.RoundWithTwoDecimalPlace(safeDivide(req.Revenue, req.AdSpend)),
		BreakEven:      utils.RoundWithTwoDecimalPlace(totalCosts),
		TotalCosts:     utils.RoundWithTwoDecimalPlace(totalCosts),
		TransactionFee: utils.RoundWithTwoDecimalPlace(transactionFee),
	}
}
