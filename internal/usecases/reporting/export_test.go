package reporting

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
)

func TestWriteOrdersCSV(t *testing.T) {
	email := "jose@exemplo.com"

	orders := []*domain.Order{
		{
			WooOrderID:    "1001",
			OrderDate:     time.Date(2025, 3, 5, 14, 30, 0, 0, time.UTC),
			Status:        "completed",
			ItemsCount:    2,
			Total:         150.5,
			Cost:          45.15,
			Profit:        105.35,
			CustomerEmail: &email,
		},
		{
			WooOrderID: "1002",
			OrderDate:  time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC),
			Status:     "processing",
			ItemsCount: 1,
			Total:      99,
			Cost:       29.7,
			Profit:     69.3,
		},
	}

	var buf bytes.Buffer
	err := WriteOrdersCSV(&buf, orders)
	assert.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)

	assert.Equal(t, []string{"Order ID", "Date", "Status", "Items", "Total", "Cost", "Profit", "Customer"}, records[0])
	assert.Equal(t, []string{"1001", "2025-03-05", "completed", "2", "150.50", "45.15", "105.35", "jose@exemplo.com"}, records[1])
	assert.Equal(t, []string{"1002", "2025-03-06", "processing", "1", "99.00", "29.70", "69.30", ""}, records[2])
}

func TestWriteOrdersCSV_EscapaValoresComVirgulaEAspas(t *testing.T) {
	email := `cliente "vip", teste@exemplo.com`

	orders := []*domain.Order{
		{
			WooOrderID:    "7",
			OrderDate:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			Status:        "on-hold, aguardando",
			Total:         10,
			Cost:          3,
			Profit:        7,
			CustomerEmail: &email,
		},
	}

	var buf bytes.Buffer
	err := WriteOrdersCSV(&buf, orders)
	assert.NoError(t, err)

	// O conteúdo cru deve ter os campos problemáticos entre aspas
	raw := buf.String()
	assert.Contains(t, raw, `"on-hold, aguardando"`)
	assert.Contains(t, raw, `"cliente ""vip"", teste@exemplo.com"`)

	// E a releitura deve devolver os valores originais intactos
	records, err := csv.NewReader(strings.NewReader(raw)).ReadAll()
	assert.NoError(t, err)
	assert.Equal(t, "on-hold, aguardando", records[1][2])
	assert.Equal(t, email, records[1][7])
}

func TestWriteOrdersCSV_SemPedidos(t *testing.T) {
	var buf bytes.Buffer
	err := WriteOrdersCSV(&buf, nil)
	assert.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 1) // apenas o cabeçalho
}
