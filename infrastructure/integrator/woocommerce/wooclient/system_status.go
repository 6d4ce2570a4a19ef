package wooclient

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"time"
)

const systemStatusPath = "/wp-json/wc/v3/system_status"

type ConnectionParams struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
}

// TestConnection verifica se a loja responde com as credenciais informadas.
// Só interessa o status HTTP: qualquer falha (rede ou não-2xx) vira false,
// o teste de conectividade nunca retorna erro.
func (c *WooClient) TestConnection(params ConnectionParams) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	endpoint, err := url.Parse(params.BaseURL)
	if err != nil {
		return false
	}
	endpoint.Path = path.Join(endpoint.Path, systemStatusPath)

	query := endpoint.Query()
	query.Set("consumer_key", params.ConsumerKey)
	query.Set("consumer_secret", params.ConsumerSecret)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
