package handler

import (
	"net/http"

	"github.com/vfg2006/product-transactions-api/internal/usecases/combining"
	"github.com/vfg2006/product-transactions-api/internal/usecases/ingesting"
	"github.com/vfg2006/product-transactions-api/internal/usecases/listing"
	"github.com/vfg2006/product-transactions-api/pkg/apiErrors"
	"github.com/vfg2006/product-transactions-api/pkg/log"
)

func InitializeDatabase(service ingesting.Ingester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("inicialização: INIT")

		result, err := service.Initialize(r.Context())
		if err != nil {
			logger.WithError(err).Error("inicialização: erro ao popular o banco")
			writeServiceError(w, err, "Erro ao inicializar o banco de dados")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func ListTransactions(service listing.Lister) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, err := parseTransactionFilter(r)
		if err != nil {
			logger.WithError(err).Warn("transações: parâmetros inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		page, err := service.ListTransactions(r.Context(), filter)
		if err != nil {
			logger.WithError(err).Error("transações: erro ao listar")
			writeServiceError(w, err, "Erro ao listar transações")
			return
		}

		writeJSON(w, http.StatusOK, page)
	})
}

// CombinedResponse roda a inicialização e devolve listagem, estatísticas e gráficos numa só resposta
func CombinedResponse(service combining.Combiner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, err := parseTransactionFilter(r)
		if err != nil {
			logger.WithError(err).Warn("resposta combinada: parâmetros inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		response, err := service.GetCombinedResponse(r.Context(), filter)
		if err != nil {
			logger.WithError(err).Error("resposta combinada: erro ao compor")
			writeServiceError(w, err, "Erro ao gerar a resposta combinada")
			return
		}

		writeJSON(w, http.StatusOK, response)
	})
}
