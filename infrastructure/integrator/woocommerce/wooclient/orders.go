package wooclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	wcdomain "github.com/vfg2006/profit-tracker-api/infrastructure/integrator/woocommerce/domain"
)

const ordersPath = "/wp-json/wc/v3/orders"

type OrdersParams struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	Page           int
	PerPage        int
}

// GetOrders busca uma página de pedidos da loja. A iteração de páginas é
// responsabilidade do chamador.
func (c *WooClient) GetOrders(params OrdersParams) ([]wcdomain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(params.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, ordersPath)

	query := endpoint.Query()
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("per_page", strconv.Itoa(params.PerPage))
	query.Set("consumer_key", params.ConsumerKey)
	query.Set("consumer_secret", params.ConsumerSecret)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %s", ErrRemoteRequest, resp.Status)
	}

	var orders []wcdomain.Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return orders, nil
}
