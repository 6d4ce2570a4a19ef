package handler

import (
	"net/http"

	"github.com/vfg2006/profit-tracker-api/internal/api/handler/router"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/advertising"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/reporting"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/store"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/syncing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Stores(service store.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stores",
			Method:  http.MethodGet,
			Handler: ListStores(service),
		},
		{
			Path:    "/v1/stores",
			Method:  http.MethodPost,
			Handler: CreateStore(service),
		},
		{
			Path:    "/v1/test-connection",
			Method:  http.MethodPost,
			Handler: TestStoreConnection(service),
		},
		{
			Path:    "/v1/stores/:id",
			Method:  http.MethodGet,
			Handler: GetStore(service),
		},
		{
			Path:    "/v1/stores/:id",
			Method:  http.MethodDelete,
			Handler: DeleteStore(service),
		},
	}
}

func Syncing(service syncing.OrderSyncer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stores/:id/sync",
			Method:  http.MethodPost,
			Handler: SyncStore(service),
		},
		{
			Path:    "/v1/stores/:id/sync-history",
			Method:  http.MethodGet,
			Handler: SyncHistory(service),
		},
	}
}

func Advertising(service advertising.Advertiser) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ad-accounts",
			Method:  http.MethodGet,
			Handler: ListAdAccounts(service),
		},
		{
			Path:    "/v1/ad-accounts",
			Method:  http.MethodPost,
			Handler: CreateAdAccount(service),
		},
		{
			Path:    "/v1/ad-spend",
			Method:  http.MethodGet,
			Handler: ListAdSpends(service),
		},
		{
			Path:    "/v1/ad-spend",
			Method:  http.MethodPost,
			Handler: CreateAdSpend(service),
		},
	}
}

func Metrics(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics/totals",
			Method:  http.MethodGet,
			Handler: MetricsTotals(service),
		},
		{
			Path:    "/v1/metrics/daily",
			Method:  http.MethodGet,
			Handler: MetricsDaily(service),
		},
		{
			Path:    "/v1/metrics/kpis",
			Method:  http.MethodGet,
			Handler: MetricsKPIs(service),
		},
		{
			Path:    "/v1/metrics/stores/:id",
			Method:  http.MethodGet,
			Handler: StoreMetrics(service),
		},
	}
}

func Orders(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/orders",
			Method:  http.MethodGet,
			Handler: ListOrders(service),
		},
		{
			Path:    "/v1/orders/export",
			Method:  http.MethodGet,
			Handler: ExportOrders(service),
		},
		{
			Path:    "/v1/calculator",
			Method:  http.MethodPost,
			Handler: Calculator(service),
		},
	}
}
