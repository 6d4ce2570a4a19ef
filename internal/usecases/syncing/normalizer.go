package syncing

import (
	"fmt"
	"strconv"
	"time"

	wcdomain "github.com/vfg2006/profit-tracker-api/infrastructure/integrator/woocommerce/domain"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
)

// NormalizeOrder converte um pedido do WooCommerce para o registro local,
// derivando custo e lucro. O custo é estimado como fração fixa do total
// (costRate, configurável) enquanto não existe custo real por produto.
// Função pura: sem I/O e sem efeitos colaterais.
func NormalizeOrder(storeID string, remote wcdomain.Order, costRate float64) (*domain.Order, error) {
	total, err := strconv.ParseFloat(remote.Total, 64)
	if err != nil {
		return nil, fmt.Errorf("total inválido no pedido %d: %w", remote.ID, err)
	}

	orderDate, err := parseOrderDate(remote.DateCreated)
	if err != nil {
		return nil, fmt.Errorf("data inválida no pedido %d: %w", remote.ID, err)
	}

	cost := total * costRate
	profit := total - cost

	var customerEmail *string
	if remote.Billing.Email != "" {
		email := remote.Billing.Email
		customerEmail = &email
	}

	return &domain.Order{
		StoreID:       storeID,
		WooOrderID:    strconv.Itoa(remote.ID),
		OrderDate:     orderDate,
		Total:         total,
		Cost:          cost,
		Profit:        profit,
		Status:        remote.Status,
		ItemsCount:    len(remote.LineItems),
		CustomerEmail: customerEmail,
	}, nil
}

func parseOrderDate(value string) (time.Time, error) {
	if t, err := time.Parse(wcdomain.DateCreatedLayout, value); err == nil {
		return t, nil
	}

	return time.Parse(time.RFC3339, value)
}
