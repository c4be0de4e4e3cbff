package combining

import (
	"context"

	"github.com/vfg2006/product-transactions-api/internal/domain"
	"github.com/vfg2006/product-transactions-api/internal/usecases/aggregating"
	"github.com/vfg2006/product-transactions-api/internal/usecases/ingesting"
	"github.com/vfg2006/product-transactions-api/internal/usecases/listing"
	"github.com/vfg2006/product-transactions-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

type Combiner interface {
	GetCombinedResponse(ctx context.Context, filter domain.TransactionFilter) (*domain.CombinedResponse, error)
}

type Service struct {
	ingester   ingesting.Ingester
	lister     listing.Lister
	aggregator aggregating.Aggregator
}

func NewService(
	ingester ingesting.Ingester,
	lister listing.Lister,
	aggregator aggregating.Aggregator,
) Combiner {
	return &Service{
		ingester:   ingester,
		lister:     lister,
		aggregator: aggregator,
	}
}

// GetCombinedResponse roda a ingestão e depois as quatro leituras em paralelo.
// Qualquer falha descarta o resultado inteiro.
func (s *Service) GetCombinedResponse(ctx context.Context, filter domain.TransactionFilter) (*domain.CombinedResponse, error) {
	logger := log.ForContext(ctx)

	initialize, err := s.ingester.Initialize(ctx)
	if err != nil {
		logger.WithError(err).Error("resposta combinada: falha na inicialização")
		return nil, err
	}

	response := &domain.CombinedResponse{Initialize: initialize}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		page, err := s.lister.ListTransactions(gctx, filter)
		if err != nil {
			return err
		}
		response.ListTransactions = page
		return nil
	})

	g.Go(func() error {
		stats, err := s.aggregator.GetStatistics(gctx, filter.Month)
		if err != nil {
			return err
		}
		response.Statistics = stats
		return nil
	})

	g.Go(func() error {
		chart, err := s.aggregator.GetBarChart(gctx, filter.Month)
		if err != nil {
			return err
		}
		response.BarChart = chart
		return nil
	})

	g.Go(func() error {
		chart, err := s.aggregator.GetPieChart(gctx, filter.Month)
		if err != nil {
			return err
		}
		response.PieChart = chart
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("resposta combinada: falha ao compor a resposta")
		return nil, err
	}

	return response, nil
}
