package wooclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testClient() *WooClient {
	return &WooClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestWooClient_GetOrders(t *testing.T) {
	t.Run("Resposta 200 - decodifica os pedidos e envia credenciais na query", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/wp-json/wc/v3/orders", r.URL.Path)
			assert.Equal(t, "ck_123", r.URL.Query().Get("consumer_key"))
			assert.Equal(t, "cs_456", r.URL.Query().Get("consumer_secret"))
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			assert.Equal(t, "100", r.URL.Query().Get("per_page"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[
				{"id": 1001, "date_created": "2025-03-05T14:30:00", "status": "completed", "total": "100.00",
				 "billing": {"email": "cliente@loja.com"},
				 "line_items": [{"id": 1, "name": "Produto", "quantity": 2, "total": "100.00"}]}
			]`))
		}))
		defer server.Close()

		orders, err := testClient().GetOrders(OrdersParams{
			BaseURL:        server.URL,
			ConsumerKey:    "ck_123",
			ConsumerSecret: "cs_456",
			Page:           2,
			PerPage:        100,
		})

		assert.NoError(t, err)
		assert.Len(t, orders, 1)
		assert.Equal(t, 1001, orders[0].ID)
		assert.Equal(t, "100.00", orders[0].Total)
		assert.Equal(t, "cliente@loja.com", orders[0].Billing.Email)
		assert.Len(t, orders[0].LineItems, 1)
	})

	t.Run("Resposta 401 - retorna erro com o status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		orders, err := testClient().GetOrders(OrdersParams{BaseURL: server.URL})

		assert.ErrorIs(t, err, ErrRemoteRequest)
		assert.Nil(t, orders)
	})

	t.Run("Corpo inválido - retorna erro de decodificação", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("isto não é JSON"))
		}))
		defer server.Close()

		orders, err := testClient().GetOrders(OrdersParams{BaseURL: server.URL})

		assert.Error(t, err)
		assert.Nil(t, orders)
	})

	t.Run("Página vazia - retorna lista vazia sem erro", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		orders, err := testClient().GetOrders(OrdersParams{BaseURL: server.URL})

		assert.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func TestWooClient_TestConnection(t *testing.T) {
	t.Run("Loja responde 200 - conectado", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/wp-json/wc/v3/system_status", r.URL.Path)
			w.Write([]byte(`{"environment": {}}`))
		}))
		defer server.Close()

		connected := testClient().TestConnection(ConnectionParams{
			BaseURL:        server.URL,
			ConsumerKey:    "ck",
			ConsumerSecret: "cs",
		})

		assert.True(t, connected)
	})

	t.Run("Credenciais recusadas - não conectado, sem erro", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		connected := testClient().TestConnection(ConnectionParams{BaseURL: server.URL})

		assert.False(t, connected)
	})

	t.Run("Servidor fora do ar - não conectado", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // derruba antes da chamada

		connected := testClient().TestConnection(ConnectionParams{BaseURL: server.URL})

		assert.False(t, connected)
	})

	t.Run("URL inválida - não conectado", func(t *testing.T) {
		connected := testClient().TestConnection(ConnectionParams{BaseURL: "://url-quebrada"})

		assert.False(t, connected)
	})
}
