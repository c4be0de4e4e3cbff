package aggregating

import (
	"context"
	"errors"

	"github.com/vfg2006/product-transactions-api/infrastructure/repository"
	"github.com/vfg2006/product-transactions-api/internal/domain"
	"github.com/vfg2006/product-transactions-api/pkg/log"
)

var ErrAggregate = errors.New("error aggregating transactions")

type Aggregator interface {
	GetStatistics(ctx context.Context, month string) (*domain.Statistics, error)
	GetBarChart(ctx context.Context, month string) (*domain.BarChart, error)
	GetPieChart(ctx context.Context, month string) (*domain.PieChart, error)
}

type Service struct {
	transactionRepository repository.TransactionRepository
	priceRanges           []domain.PriceRange
}

func NewService(transactionRepository repository.TransactionRepository) Aggregator {
	return &Service{
		transactionRepository: transactionRepository,
		priceRanges:           domain.PriceRanges,
	}
}

// GetStatistics retorna total vendido (null quando nenhuma linha atende ao mês) e as contagens de vendidos e não vendidos
func (s *Service) GetStatistics(ctx context.Context, month string) (*domain.Statistics, error) {
	summary, err := s.transactionRepository.Summarize(ctx, month)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("estatísticas: falha ao agregar transações")
		return nil, errors.Join(ErrAggregate, err)
	}

	return &domain.Statistics{
		TotalSaleAmount: domain.SaleAmount{Total: summary.TotalSaleAmount},
		SoldItems:       domain.ItemCount{Count: summary.SoldItems},
		NotSoldItems:    domain.ItemCount{Count: summary.NotSoldItems},
	}, nil
}

func (s *Service) GetBarChart(ctx context.Context, month string) (*domain.BarChart, error) {
	counts, err := s.transactionRepository.CountByPriceRanges(ctx, month, s.priceRanges)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("gráfico de barras: falha ao contar faixas de preço")
		return nil, errors.Join(ErrAggregate, err)
	}

	data := make([]domain.PriceRangeCount, 0, len(s.priceRanges))
	for i, priceRange := range s.priceRanges {
		var count int64
		if i < len(counts) {
			count = counts[i]
		}

		data = append(data, domain.PriceRangeCount{
			Range: priceRange.Label(),
			Count: count,
		})
	}

	return &domain.BarChart{BarChartData: data}, nil
}

// GetPieChart omite categorias sem nenhuma linha no mês
func (s *Service) GetPieChart(ctx context.Context, month string) (*domain.PieChart, error) {
	categories, err := s.transactionRepository.CountByCategory(ctx, month)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("gráfico de pizza: falha ao contar categorias")
		return nil, errors.Join(ErrAggregate, err)
	}

	if categories == nil {
		categories = []domain.CategoryCount{}
	}

	return &domain.PieChart{PieChartData: categories}, nil
}
