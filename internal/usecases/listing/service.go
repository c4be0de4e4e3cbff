package listing

import (
	"context"
	"errors"

	"github.com/vfg2006/product-transactions-api/infrastructure/repository"
	"github.com/vfg2006/product-transactions-api/internal/domain"
	"github.com/vfg2006/product-transactions-api/pkg/log"
)

var ErrListTransactions = errors.New("error listing transactions")

type Lister interface {
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) (*domain.TransactionPage, error)
}

type Service struct {
	transactionRepository repository.TransactionRepository
}

func NewService(transactionRepository repository.TransactionRepository) Lister {
	return &Service{
		transactionRepository: transactionRepository,
	}
}

// ListTransactions devolve a página pedida e o total de linhas que atendem ao filtro
func (s *Service) ListTransactions(ctx context.Context, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	transactions, err := s.transactionRepository.List(ctx, filter)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("listagem: falha ao buscar transações")
		return nil, errors.Join(ErrListTransactions, err)
	}

	total, err := s.transactionRepository.Count(ctx, filter)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("listagem: falha ao contar transações")
		return nil, errors.Join(ErrListTransactions, err)
	}

	return &domain.TransactionPage{
		Transactions: transactions,
		Total:        domain.TotalCount{Total: total},
	}, nil
}
