package feed

import (
	"context"

	feeddomain "github.com/vfg2006/product-transactions-api/infrastructure/integrator/feed/domain"
	"github.com/vfg2006/product-transactions-api/infrastructure/integrator/feed/feedclient"
)

type FeedIntegrator interface {
	GetProductTransactions(ctx context.Context) ([]feeddomain.ProductTransaction, error)
}

type FeedService struct {
	Client feedclient.Client
}

func New(client feedclient.Client) FeedIntegrator {
	return &FeedService{
		Client: client,
	}
}

func (s *FeedService) GetProductTransactions(ctx context.Context) ([]feeddomain.ProductTransaction, error) {
	resp, err := s.Client.GetProductTransactions(ctx)
	if err != nil {
		return nil, err
	}

	return resp, nil
}
