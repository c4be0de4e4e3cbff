// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"fmt"
	"time"
)

const (
	DefaultLimit  uint64 = 10
	DefaultOffset uint64 = 0
)

// DateLayouts são os formatos aceitos para dateOfSale, tanto no dataset quanto na leitura do banco
var DateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	time.DateOnly,
}

type Transaction struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Price       float64    `json:"price"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Image       string     `json:"image"`
	Sold        bool       `json:"sold"`
	DateOfSale  *time.Time `json:"dateOfSale"` // nil quando o dataset não informa a data
}

// ParseDate tenta cada formato de DateLayouts; datas sem fuso são tratadas como UTC
func ParseDate(value string) (time.Time, error) {
	for _, layout := range DateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("formato de data inválido: %q", value)
}

// TransactionFilter representa os filtros de listagem.
// Month e Search são comparados como substring; vazio não filtra nada.
type TransactionFilter struct {
	Month  string
	Search string
	Limit  uint64
	Offset uint64
}

type TotalCount struct {
	Total int64 `json:"total"`
}

type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	Total        TotalCount    `json:"total"`
}

type InitializeResult struct {
	Msg string `json:"msg"`
}

type CombinedResponse struct {
	Initialize       *InitializeResult `json:"initialize"`
	ListTransactions *TransactionPage  `json:"listTransactions"`
	Statistics       *Statistics       `json:"statistics"`
	BarChart         *BarChart         `json:"barChart"`
	PieChart         *PieChart         `json:"pieChart"`
}
