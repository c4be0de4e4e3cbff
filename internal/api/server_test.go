package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/product-transactions-api/infrastructure/database"
	"github.com/vfg2006/product-transactions-api/infrastructure/integrator/feed"
	"github.com/vfg2006/product-transactions-api/infrastructure/integrator/feed/feedclient"
	"github.com/vfg2006/product-transactions-api/infrastructure/repository"
	"github.com/vfg2006/product-transactions-api/internal/config"
	"github.com/vfg2006/product-transactions-api/internal/domain"
	"github.com/vfg2006/product-transactions-api/internal/scheduler"
	"github.com/vfg2006/product-transactions-api/internal/usecases/aggregating"
	"github.com/vfg2006/product-transactions-api/internal/usecases/combining"
	"github.com/vfg2006/product-transactions-api/internal/usecases/ingesting"
	"github.com/vfg2006/product-transactions-api/internal/usecases/listing"
	"github.com/vfg2006/product-transactions-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const feedPayload = `[
	{"id":1,"title":"Wireless Mouse","price":150,"description":"Ergonomic mouse","category":"electronics","image":"https://example.com/1.jpg","sold":true,"dateOfSale":"2021-03-10T10:00:00Z"},
	{"id":2,"title":"USB Cable","price":50,"description":"Braided cable","category":"electronics","image":"https://example.com/2.jpg","sold":false,"dateOfSale":"2022-03-15T10:00:00Z"},
	{"id":3,"title":"Gold Ring","price":950,"description":"Classic wedding ring","category":"jewelery","image":"https://example.com/3.jpg","sold":true,"dateOfSale":"2021-07-01T10:00:00Z"},
	{"id":4,"title":"Cotton Socks","price":20,"description":"Pack with three pairs","category":"men's clothing","image":"https://example.com/4.jpg","sold":false,"dateOfSale":"2022-03-20T10:00:00Z"},
	{"id":5,"title":"Rain Jacket","price":320.5,"description":"Lightweight and waterproof","category":"women's clothing","image":"https://example.com/5.jpg","sold":true,"dateOfSale":"2021-11-05T10:00:00Z"}
]`

type testAPI struct {
	handler   http.Handler
	conn      *database.Connection
	feedCalls *atomic.Int32
	feedDown  *atomic.Bool
}

func newTestAPI(t *testing.T) testAPI {
	t.Helper()
	return newTestAPIWithFeed(t, feedPayload)
}

func newTestAPIWithFeed(t *testing.T, payload string) testAPI {
	t.Helper()

	calls := &atomic.Int32{}
	down := &atomic.Bool{}
	feedServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if down.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	t.Cleanup(feedServer.Close)

	cfg := &config.Config{
		Database: config.Database{
			Driver: config.DriverSQLite,
			DSN:    "file:" + filepath.Join(t.TempDir(), "transactions.db") + "?_pragma=busy_timeout(5000)",
		},
		Seed:          config.Seed{URL: feedServer.URL, Timeout: 5 * time.Second},
		IngestionSync: config.IngestionSync{CronSchedule: "0 3 * * *"},
		Cors:          config.Cors{AllowedOrigins: []string{"*"}},
	}

	ctx := context.Background()
	conn, err := database.NewConnection(ctx, cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, conn.EnsureSchema(ctx))

	transactionRepo := repository.NewTransactionRepository(conn)
	ingester := ingesting.NewService(transactionRepo, feed.New(feedclient.NewClient(cfg)))
	lister := listing.NewService(transactionRepo)
	aggregator := aggregating.NewService(transactionRepo)

	handler := NewHandler(cfg, Services{
		Ingester:      ingester,
		Lister:        lister,
		Aggregator:    aggregator,
		Combiner:      combining.NewService(ingester, lister, aggregator),
		IngestionSync: scheduler.NewIngestionSyncService(ingester, cfg),
		Database:      conn,
	})

	return testAPI{handler: handler, conn: conn, feedCalls: calls, feedDown: down}
}

func (a testAPI) get(t *testing.T, target string, out any) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}

	return rec
}

func (a testAPI) initialize(t *testing.T) {
	t.Helper()

	var result domain.InitializeResult
	rec := a.get(t, "/initialize-database", &result)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "Initialized database with third party API", result.Msg)
}

func TestAPI_InitializeIsIdempotent(t *testing.T) {
	a := newTestAPI(t)

	a.initialize(t)
	var first domain.TransactionPage
	a.get(t, "/transactions?limit=100", &first)

	a.initialize(t)
	var second domain.TransactionPage
	a.get(t, "/transactions?limit=100", &second)

	assert.Equal(t, int64(5), first.Total.Total)
	assert.Equal(t, first.Total.Total, second.Total.Total)
	assert.Len(t, second.Transactions, 5)
	assert.Equal(t, int32(2), a.feedCalls.Load())
}

func TestAPI_ListTransactions(t *testing.T) {
	a := newTestAPI(t)
	a.initialize(t)

	tests := []struct {
		name  string
		query string
		ids   []int64
		total int64
	}{
		{name: "padrão", query: "", ids: []int64{1, 2, 3, 4, 5}, total: 5},
		{name: "mês ignora o ano", query: "?month=03", ids: []int64{1, 2, 4}, total: 3},
		{name: "página menor que o total", query: "?month=03&limit=2", ids: []int64{1, 2}, total: 3},
		{name: "offset", query: "?month=03&limit=2&offset=2", ids: []int64{4}, total: 3},
		{name: "busca no título", query: "?s_query=ring", ids: []int64{3}, total: 1},
		{name: "busca na descrição", query: "?s_query=waterproof", ids: []int64{5}, total: 1},
		{name: "busca no preço", query: "?s_query=320", ids: []int64{5}, total: 1},
		{name: "sem resultados", query: "?month=05", ids: []int64{}, total: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var page domain.TransactionPage
			rec := a.get(t, "/transactions"+tt.query, &page)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			ids := make([]int64, 0, len(page.Transactions))
			for _, transaction := range page.Transactions {
				ids = append(ids, transaction.ID)
			}

			assert.ElementsMatch(t, tt.ids, ids)
			assert.Equal(t, tt.total, page.Total.Total)
		})
	}
}

func TestAPI_ListTransactionsResponseShape(t *testing.T) {
	a := newTestAPI(t)
	a.initialize(t)

	rec := a.get(t, "/transactions?s_query=mouse", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, `"transactions":[`)
	assert.Contains(t, body, `"total":{"total":1}`)
	assert.Contains(t, body, `"dateOfSale":"2021-03-10T10:00:00Z"`)
}

func TestAPI_InvalidPagination(t *testing.T) {
	a := newTestAPI(t)

	for _, query := range []string{"?limit=abc", "?offset=-1", "?limit=1.5"} {
		t.Run(query, func(t *testing.T) {
			rec := a.get(t, "/transactions"+query, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var apiErr apiErrors.APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
			assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
		})
	}
}

func TestAPI_Statistics(t *testing.T) {
	a := newTestAPI(t)
	a.initialize(t)

	var stats domain.Statistics
	rec := a.get(t, "/statistics?month=03", &stats)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, stats.TotalSaleAmount.Total)
	assert.InDelta(t, 220.0, *stats.TotalSaleAmount.Total, 0.0001)
	assert.Equal(t, int64(1), stats.SoldItems.Count)
	assert.Equal(t, int64(2), stats.NotSoldItems.Count)

	var page domain.TransactionPage
	a.get(t, "/transactions?month=03", &page)
	assert.Equal(t, page.Total.Total, stats.SoldItems.Count+stats.NotSoldItems.Count)
}

func TestAPI_StatisticsEmptyMonth(t *testing.T) {
	a := newTestAPI(t)
	a.initialize(t)

	rec := a.get(t, "/statistics?month=05", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalSaleAmount":{"total":null},"soldItems":{"count":0},"notSoldItems":{"count":0}}`, rec.Body.String())
}

func TestAPI_BarChart(t *testing.T) {
	a := newTestAPI(t)
	a.initialize(t)

	var chart domain.BarChart
	rec := a.get(t, "/bar-chart?month=03", &chart)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, chart.BarChartData, 10)

	assert.Equal(t, domain.PriceRangeCount{Range: "0 - 100", Count: 2}, chart.BarChartData[0])
	assert.Equal(t, domain.PriceRangeCount{Range: "101 - 200", Count: 1}, chart.BarChartData[1])

	var sum int64
	for _, item := range chart.BarChartData {
		sum += item.Count
	}

	var page domain.TransactionPage
	a.get(t, "/transactions?month=03", &page)
	assert.LessOrEqual(t, sum, page.Total.Total)
	assert.Equal(t, int64(3), sum)
}

func TestAPI_BarChartAllMonths(t *testing.T) {
	a := newTestAPI(t)
	a.initialize(t)

	var chart domain.BarChart
	a.get(t, "/bar-chart", &chart)
	require.Len(t, chart.BarChartData, 10)

	counts := make(map[string]int64)
	for _, item := range chart.BarChartData {
		counts[item.Range] = item.Count
	}

	assert.Equal(t, int64(2), counts["0 - 100"])
	assert.Equal(t, int64(1), counts["101 - 200"])
	assert.Equal(t, int64(1), counts["301 - 400"])
	assert.Equal(t, int64(1), counts["901 - 10000"])
}

func TestAPI_PieChart(t *testing.T) {
	a := newTestAPI(t)
	a.initialize(t)

	var chart domain.PieChart
	rec := a.get(t, "/pie-chart?month=03", &chart)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, []domain.CategoryCount{
		{Category: "electronics", Count: 2},
		{Category: "men's clothing", Count: 1},
	}, chart.PieChartData)
}

func TestAPI_CombinedResponse(t *testing.T) {
	a := newTestAPI(t)

	rec := a.get(t, "/combined-response?month=03&limit=1", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var combined domain.CombinedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &combined))

	require.NotNil(t, combined.Initialize)
	assert.Equal(t, "Initialized database with third party API", combined.Initialize.Msg)
	require.NotNil(t, combined.ListTransactions)
	assert.Len(t, combined.ListTransactions.Transactions, 1)
	assert.Equal(t, int64(3), combined.ListTransactions.Total.Total)
	require.NotNil(t, combined.Statistics)
	assert.Equal(t, int64(1), combined.Statistics.SoldItems.Count)
	require.NotNil(t, combined.BarChart)
	assert.Len(t, combined.BarChart.BarChartData, 10)
	require.NotNil(t, combined.PieChart)
	assert.Len(t, combined.PieChart.PieChartData, 2)

	for _, key := range []string{`"initialize"`, `"listTransactions"`, `"statistics"`, `"barChart"`, `"pieChart"`} {
		assert.Contains(t, rec.Body.String(), key)
	}
}

func TestAPI_FeedUnavailable(t *testing.T) {
	a := newTestAPI(t)
	a.feedDown.Store(true)

	for _, target := range []string{"/initialize-database", "/combined-response"} {
		t.Run(target, func(t *testing.T) {
			rec := a.get(t, target, nil)
			assert.Equal(t, http.StatusBadGateway, rec.Code)

			var apiErr apiErrors.APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
			assert.Equal(t, apiErrors.ErrExternalService, apiErr.Code)
		})
	}
}

func TestAPI_SyncEndpoints(t *testing.T) {
	a := newTestAPI(t)

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sync/run", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message"`)

	assert.Eventually(t, func() bool {
		var page domain.TransactionPage
		a.get(t, "/transactions", &page)
		return page.Total.Total == 5
	}, 5*time.Second, 20*time.Millisecond)

	var status map[string]any
	assert.Eventually(t, func() bool {
		a.get(t, "/sync/status", &status)
		return status["sync_running"] == false
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, false, status["sync_enabled"])
	assert.Equal(t, "", status["last_error"])
}

func TestAPI_HealthcheckAndNotFound(t *testing.T) {
	a := newTestAPI(t)

	var health map[string]string
	rec := a.get(t, "/healthcheck", &health)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, "ok", health["database"])
	assert.NotEmpty(t, health["checkedAt"])

	rec = a.get(t, "/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrRouteNotFound)
}

func TestAPI_HealthcheckDatabaseDown(t *testing.T) {
	a := newTestAPI(t)
	require.NoError(t, a.conn.Close())

	rec := a.get(t, "/healthcheck", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrServiceUnavailable, apiErr.Code)
}

func TestAPI_InitializeKeepsRecordsWithPartialDates(t *testing.T) {
	a := newTestAPIWithFeed(t, `[
		{"id":1,"title":"Desk Lamp","price":150,"description":"LED lamp","category":"home","image":"","sold":true,"dateOfSale":"2022-03-05"},
		{"id":2,"title":"Notebook","price":12,"description":"Ruled paper","category":"office","image":"","sold":false,"dateOfSale":null},
		{"id":3,"title":"Headphones","price":80,"description":"Over-ear","category":"electronics","image":"","sold":true,"dateOfSale":"2022-04-10T10:00:00Z"},
		{"id":4,"title":"Stapler","price":9,"description":"Metal","category":"office","image":"","sold":false,"dateOfSale":"sometime last year"}
	]`)
	a.initialize(t)

	var chart domain.BarChart
	rec := a.get(t, "/bar-chart?month=03", &chart)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, chart.BarChartData, 10)
	assert.Equal(t, domain.PriceRangeCount{Range: "101 - 200", Count: 1}, chart.BarChartData[1])
	assert.Equal(t, domain.PriceRangeCount{Range: "0 - 100", Count: 0}, chart.BarChartData[0])

	var pie domain.PieChart
	a.get(t, "/pie-chart?month=04", &pie)
	assert.Equal(t, []domain.CategoryCount{{Category: "electronics", Count: 1}}, pie.PieChartData)

	// linhas sem data ficam gravadas, mas nenhum filtro de mês as alcança
	var page domain.TransactionPage
	a.get(t, "/transactions?limit=100", &page)
	assert.Equal(t, int64(2), page.Total.Total)

	var stored int
	require.NoError(t, a.conn.QueryRow("SELECT COUNT(*) FROM transactions").Scan(&stored))
	assert.Equal(t, 4, stored)

	var undated int
	require.NoError(t, a.conn.QueryRow("SELECT COUNT(*) FROM transactions WHERE date_of_sale IS NULL").Scan(&undated))
	assert.Equal(t, 2, undated)
}

func TestNew_RequiresServices(t *testing.T) {
	_, err := New(&config.Config{}, Services{})
	assert.Error(t, err)
}
