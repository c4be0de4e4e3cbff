package ingesting

import (
	"context"
	"fmt"

	"github.com/vfg2006/product-transactions-api/infrastructure/integrator/feed"
	"github.com/vfg2006/product-transactions-api/infrastructure/repository"
	"github.com/vfg2006/product-transactions-api/internal/domain"
	"github.com/vfg2006/product-transactions-api/pkg/apiErrors"
	"github.com/vfg2006/product-transactions-api/pkg/log"
	"github.com/vfg2006/product-transactions-api/pkg/utils"
)

const InitializedMessage = "Initialized database with third party API"

type Ingester interface {
	Initialize(ctx context.Context) (*domain.InitializeResult, error)
}

type Service struct {
	transactionRepository repository.TransactionRepository
	feedService           feed.FeedIntegrator
}

func NewService(
	transactionRepository repository.TransactionRepository,
	feedService feed.FeedIntegrator,
) Ingester {
	return &Service{
		transactionRepository: transactionRepository,
		feedService:           feedService,
	}
}

// Initialize baixa o dataset e insere cada registro que ainda não existe.
// Linhas gravadas antes de uma falha permanecem no banco.
func (s *Service) Initialize(ctx context.Context) (*domain.InitializeResult, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		// o id só serve para correlacionar logs
		runID = "-"
	}

	logger := log.ForContext(ctx).WithField("run_id", runID)
	logger.Info("ingestão: buscando dataset de terceiros")

	records, err := s.feedService.GetProductTransactions(ctx)
	if err != nil {
		logger.WithError(err).Error("ingestão: falha ao buscar o dataset")
		return nil, NewIngestionError(ErrFeedUnavailable, apiErrors.ErrExternalService, "Falha ao buscar o dataset de terceiros", err)
	}

	var inserted, skipped, undated int
	for _, record := range records {
		transaction, err := record.ToDomain()
		if err != nil {
			// a transação é gravada sem data, como o restante do lote
			logger.WithError(err).Warnf("ingestão: registro %d sem data reconhecível", record.ID)
		}
		if transaction.DateOfSale == nil {
			undated++
		}

		ok, err := s.transactionRepository.SaveIfAbsent(ctx, &transaction)
		if err != nil {
			logger.WithError(err).Errorf("ingestão: falha ao salvar transação %d (%d inseridas antes da falha)", transaction.ID, inserted)
			return nil, NewIngestionError(ErrSaveTransaction, apiErrors.ErrDatabaseOperation, fmt.Sprintf("Falha ao salvar transação %d", transaction.ID), err)
		}

		if ok {
			inserted++
		} else {
			skipped++
		}
	}

	logger.WithFields(log.Fields{
		"inserted": inserted,
		"skipped":  skipped,
		"undated":  undated,
	}).Infof("ingestão: concluída, %d inseridas e %d já existentes", inserted, skipped)

	return &domain.InitializeResult{Msg: InitializedMessage}, nil
}
