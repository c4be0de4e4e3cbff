package handler

import (
	"net/http"

	"github.com/vfg2006/product-transactions-api/internal/api/handler/router"
	"github.com/vfg2006/product-transactions-api/internal/usecases/aggregating"
	"github.com/vfg2006/product-transactions-api/internal/usecases/combining"
	"github.com/vfg2006/product-transactions-api/internal/usecases/ingesting"
	"github.com/vfg2006/product-transactions-api/internal/usecases/listing"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Transactions(ingester ingesting.Ingester, lister listing.Lister) []router.Route {
	return []router.Route{
		{
			Path:    "/initialize-database",
			Method:  http.MethodGet,
			Handler: InitializeDatabase(ingester),
		},
		{
			Path:    "/transactions",
			Method:  http.MethodGet,
			Handler: ListTransactions(lister),
		},
	}
}

func Statistics(aggregator aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/statistics",
			Method:  http.MethodGet,
			Handler: GetStatistics(aggregator),
		},
		{
			Path:    "/bar-chart",
			Method:  http.MethodGet,
			Handler: GetBarChart(aggregator),
		},
		{
			Path:    "/pie-chart",
			Method:  http.MethodGet,
			Handler: GetPieChart(aggregator),
		},
	}
}

func Combined(combiner combining.Combiner) []router.Route {
	return []router.Route{
		{
			Path:    "/combined-response",
			Method:  http.MethodGet,
			Handler: CombinedResponse(combiner),
		},
	}
}

func IngestionSync(syncer IngestionSyncer) []router.Route {
	return []router.Route{
		{
			Path:    "/sync/status",
			Method:  http.MethodGet,
			Handler: GetIngestionSyncStatus(syncer),
		},
		{
			Path:    "/sync/run",
			Method:  http.MethodPost,
			Handler: RunIngestionSync(syncer),
		},
	}
}
