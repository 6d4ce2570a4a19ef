package wooclient

import (
	"errors"
	"net/http"
	"time"

	wcdomain "github.com/vfg2006/profit-tracker-api/infrastructure/integrator/woocommerce/domain"
)

// ErrRemoteRequest indica que a loja remota respondeu com status não-2xx
var ErrRemoteRequest = errors.New("a loja remota recusou a requisição")

type Client interface {
	GetOrders(params OrdersParams) ([]wcdomain.Order, error)
	TestConnection(params ConnectionParams) bool
}

type WooClient struct {
	httpClient *http.Client
}

// NewClient cria uma nova instância do cliente da API do WooCommerce.
func NewClient() Client {
	return &WooClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}
