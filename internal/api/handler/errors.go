package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/product-transactions-api/internal/usecases/aggregating"
	"github.com/vfg2006/product-transactions-api/internal/usecases/ingesting"
	"github.com/vfg2006/product-transactions-api/internal/usecases/listing"
	"github.com/vfg2006/product-transactions-api/pkg/apiErrors"
)

// writeServiceError traduz o erro de um caso de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, err error, message string) {
	var ingestionErr *ingesting.IngestionError
	if errors.As(err, &ingestionErr) {
		apiErrors.WriteError(w, ingestionErr.Code, ingestionErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, listing.ErrListTransactions), errors.Is(err, aggregating.ErrAggregate):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, message, nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		// o status já foi enviado, resta registrar
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}
