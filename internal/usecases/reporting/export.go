package reporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/vfg2006/profit-tracker-api/internal/domain"
)

var exportHeader = []string{"Order ID", "Date", "Status", "Items", "Total", "Cost", "Profit", "Customer"}

// WriteOrdersCSV escreve os pedidos em CSV no writer. O encoding/csv cuida
// das aspas, então valores com vírgula ou aspas saem íntegros.
func WriteOrdersCSV(w io.Writer, orders []*domain.Order) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho do CSV: %w", err)
	}

	for _, order := range orders {
		customer := ""
		if order.CustomerEmail != nil {
			customer = *order.CustomerEmail
		}

		record := []string{
			order.WooOrderID,
			order.OrderDate.Format(time.DateOnly),
			order.Status,
			strconv.Itoa(order.ItemsCount),
			formatAmount(order.Total),
			formatAmount(order.Cost),
			formatAmount(order.Profit),
			customer,
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("erro ao escrever linha do CSV: %w", err)
		}
	}

	writer.Flush()

	return writer.Error()
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
