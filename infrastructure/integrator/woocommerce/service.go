package woocommerce

import (
	wcdomain "github.com/vfg2006/profit-tracker-api/infrastructure/integrator/woocommerce/domain"
	"github.com/vfg2006/profit-tracker-api/infrastructure/integrator/woocommerce/wooclient"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
)

type WooIntegrator interface {
	FetchOrdersPage(store *domain.Store, page, perPage int) ([]wcdomain.Order, error)
	CheckConnection(baseURL, consumerKey, consumerSecret string) bool
}

type WooService struct {
	Client wooclient.Client
}

func New(client wooclient.Client) WooIntegrator {
	return &WooService{
		Client: client,
	}
}

func (s *WooService) FetchOrdersPage(store *domain.Store, page, perPage int) ([]wcdomain.Order, error) {
	return s.Client.GetOrders(wooclient.OrdersParams{
		BaseURL:        store.URL,
		ConsumerKey:    store.ConsumerKey,
		ConsumerSecret: store.ConsumerSecret,
		Page:           page,
		PerPage:        perPage,
	})
}

func (s *WooService) CheckConnection(baseURL, consumerKey, consumerSecret string) bool {
	return s.Client.TestConnection(wooclient.ConnectionParams{
		BaseURL:        baseURL,
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
	})
}
