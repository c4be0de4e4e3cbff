package feeddomain

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/product-transactions-api/internal/domain"
)

// ProductTransaction é um registro do dataset de terceiros, no formato em que é publicado
type ProductTransaction struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Sold        bool    `json:"sold"`
	DateOfSale  string  `json:"dateOfSale"`
}

// SaleDate interpreta dateOfSale. Vazio ou null devolve nil sem erro.
func (p ProductTransaction) SaleDate() (*time.Time, error) {
	value := strings.TrimSpace(p.DateOfSale)
	if value == "" {
		return nil, nil
	}

	date, err := domain.ParseDate(value)
	if err != nil {
		return nil, errors.Wrapf(err, "dateOfSale inválido no registro %d", p.ID)
	}

	return &date, nil
}

// ToDomain sempre devolve a transação. Se a data não puder ser interpretada
// ela fica nula e o erro de conversão também é devolvido.
func (p ProductTransaction) ToDomain() (domain.Transaction, error) {
	dateOfSale, err := p.SaleDate()

	return domain.Transaction{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
		Sold:        p.Sold,
		DateOfSale:  dateOfSale,
	}, err
}
