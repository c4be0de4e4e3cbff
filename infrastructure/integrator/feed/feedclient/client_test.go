package feedclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/product-transactions-api/internal/config"
)

const samplePayload = `[
	{"id":1,"title":"Fjallraven Backpack","price":329.85,"description":"Your perfect pack","category":"men's clothing","image":"https://example.com/1.jpg","sold":false,"dateOfSale":"2021-11-27T20:29:54+05:30"},
	{"id":2,"title":"Mens Casual T-Shirt","price":44.6,"description":"Slim-fitting style","category":"men's clothing","image":"https://example.com/2.jpg","sold":true,"dateOfSale":"2021-10-27T20:29:54+05:30"}
]`

func newTestClient(url string, timeout time.Duration) Client {
	return NewClient(&config.Config{
		Seed: config.Seed{URL: url, Timeout: timeout},
	})
}

func TestFeedClient_GetProductTransactions(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		timeout  time.Duration
		validate func(t *testing.T, err error, size int)
	}{
		{
			name: "decodifica o array completo",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(samplePayload))
			},
			validate: func(t *testing.T, err error, size int) {
				require.NoError(t, err)
				assert.Equal(t, 2, size)
			},
		},
		{
			name: "status diferente de 200 é erro",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
			validate: func(t *testing.T, err error, size int) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "403")
			},
		},
		{
			name: "corpo inválido é erro",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"id":`))
			},
			validate: func(t *testing.T, err error, size int) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "decodificar")
			},
		},
		{
			name: "timeout do cliente",
			handler: func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(200 * time.Millisecond)
				w.Write([]byte(`[]`))
			},
			timeout: 20 * time.Millisecond,
			validate: func(t *testing.T, err error, size int) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "executar a requisição")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			timeout := tt.timeout
			if timeout == 0 {
				timeout = time.Second
			}

			records, err := newTestClient(server.URL, timeout).GetProductTransactions(context.Background())
			tt.validate(t, err, len(records))
		})
	}
}

func TestFeedClient_DecodesFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePayload))
	}))
	defer server.Close()

	records, err := newTestClient(server.URL, time.Second).GetProductTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, int64(2), records[1].ID)
	assert.Equal(t, "Mens Casual T-Shirt", records[1].Title)
	assert.Equal(t, 44.6, records[1].Price)
	assert.True(t, records[1].Sold)
	assert.Equal(t, "2021-10-27T20:29:54+05:30", records[1].DateOfSale)
}

func TestFeedClient_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(server.URL, time.Second).GetProductTransactions(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
