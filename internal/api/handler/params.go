package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/vfg2006/product-transactions-api/internal/domain"
)

const (
	queryMonth  = "month"
	querySearch = "s_query"
	queryLimit  = "limit"
	queryOffset = "offset"
)

// parseTransactionFilter lê month, s_query, limit e offset da query string.
// month e s_query são repassados sem normalização.
func parseTransactionFilter(r *http.Request) (domain.TransactionFilter, error) {
	query := r.URL.Query()

	limit, err := parseUintParam(query.Get(queryLimit), domain.DefaultLimit)
	if err != nil {
		return domain.TransactionFilter{}, fmt.Errorf("parâmetro %s inválido: %w", queryLimit, err)
	}

	offset, err := parseUintParam(query.Get(queryOffset), domain.DefaultOffset)
	if err != nil {
		return domain.TransactionFilter{}, fmt.Errorf("parâmetro %s inválido: %w", queryOffset, err)
	}

	return domain.TransactionFilter{
		Month:  query.Get(queryMonth),
		Search: query.Get(querySearch),
		Limit:  limit,
		Offset: offset,
	}, nil
}

func parseUintParam(value string, fallback uint64) (uint64, error) {
	if value == "" {
		return fallback, nil
	}

	// 63 bits para caber em um BIGINT com sinal no LIMIT/OFFSET
	parsed, err := strconv.ParseUint(value, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("%q não é um inteiro não negativo", value)
	}

	return parsed, nil
}
