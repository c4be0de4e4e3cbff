package feedclient

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	feeddomain "github.com/vfg2006/product-transactions-api/infrastructure/integrator/feed/domain"
	"github.com/vfg2006/product-transactions-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetProductTransactions(ctx context.Context) ([]feeddomain.ProductTransaction, error)
}

type FeedClient struct {
	httpClient *http.Client
	url        string
}

func NewClient(cfg *config.Config) Client {
	return &FeedClient{
		httpClient: &http.Client{
			Timeout: cfg.Seed.Timeout,
		},
		url: cfg.Seed.URL,
	}
}

func (c *FeedClient) GetProductTransactions(ctx context.Context) ([]feeddomain.ProductTransaction, error) {
	var response []feeddomain.ProductTransaction

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("requisição para %s falhou com status: %s", c.url, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return response, nil
}
