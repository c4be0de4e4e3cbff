package ingesting

import (
	"errors"
	"fmt"
)

// Erros específicos da ingestão do dataset
var (
	// Erros de serviços externos
	ErrFeedUnavailable = errors.New("error fetching the third party dataset")

	// Erros de banco de dados
	ErrSaveTransaction = errors.New("error saving transaction")
)

// IngestionError é um erro com contexto adicional para a ingestão
type IngestionError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
	cause   error
}

func (e *IngestionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap expõe tanto o erro base quanto a causa original
func (e *IngestionError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.cause}
}

func NewIngestionError(err error, code string, details string, cause error) *IngestionError {
	return &IngestionError{
		Err:     err,
		Code:    code,
		Details: details,
		cause:   cause,
	}
}
