// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/product-transactions-api/infrastructure/database"
	"github.com/vfg2006/product-transactions-api/internal/domain"
)

const (
	transactionsTable = "transactions"
)

var transactionColumns = []string{
	"id",
	"title",
	"price",
	"description",
	"category",
	"image",
	"sold",
	"date_of_sale",
}

type TransactionRepository interface {
	SaveIfAbsent(ctx context.Context, transaction *domain.Transaction) (bool, error)
	List(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
	Count(ctx context.Context, filter domain.TransactionFilter) (int64, error)
	Summarize(ctx context.Context, month string) (*domain.SalesSummary, error)
	CountByPriceRanges(ctx context.Context, month string, ranges []domain.PriceRange) ([]int64, error)
	CountByCategory(ctx context.Context, month string) ([]domain.CategoryCount, error)
}

type transactionRepository struct {
	conn *database.Connection
}

func NewTransactionRepository(conn *database.Connection) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

// SaveIfAbsent insere a transação; se o id já existir nada é alterado e retorna false.
func (r *transactionRepository) SaveIfAbsent(ctx context.Context, transaction *domain.Transaction) (bool, error) {
	var dateOfSale any
	if transaction.DateOfSale != nil {
		dateOfSale = transaction.DateOfSale.Format(time.RFC3339Nano)
	}

	query, args, err := squirrel.
		Insert(transactionsTable).
		Columns(transactionColumns...).
		Values(
			transaction.ID,
			transaction.Title,
			transaction.Price,
			transaction.Description,
			transaction.Category,
			transaction.Image,
			transaction.Sold,
			dateOfSale,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(r.conn.Dialect.Placeholder).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao inserir transação %d: %w", transaction.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *transactionRepository) List(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	query, args, err := squirrel.
		Select(transactionColumns...).
		From(transactionsTable).
		Where(r.searchPredicate(filter.Search)).
		Where(r.monthPredicate(filter.Month)).
		Limit(filter.Limit).
		Offset(filter.Offset).
		PlaceholderFormat(r.conn.Dialect.Placeholder).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		transaction, err := r.scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear transação: %w", err)
		}
		transactions = append(transactions, *transaction)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return transactions, nil
}

// Count ignora Limit e Offset do filtro
func (r *transactionRepository) Count(ctx context.Context, filter domain.TransactionFilter) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(id)").
		From(transactionsTable).
		Where(r.searchPredicate(filter.Search)).
		Where(r.monthPredicate(filter.Month)).
		PlaceholderFormat(r.conn.Dialect.Placeholder).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar transações: %w", err)
	}

	return total, nil
}

func (r *transactionRepository) Summarize(ctx context.Context, month string) (*domain.SalesSummary, error) {
	query, args, err := squirrel.
		Select("SUM(price)").
		Column(squirrel.Expr("COALESCE(SUM(CASE WHEN sold = ? THEN 1 ELSE 0 END), 0)", true)).
		Column(squirrel.Expr("COALESCE(SUM(CASE WHEN sold = ? THEN 1 ELSE 0 END), 0)", false)).
		From(transactionsTable).
		Where(r.monthPredicate(month)).
		PlaceholderFormat(r.conn.Dialect.Placeholder).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var totalSaleAmount sql.NullFloat64
	summary := &domain.SalesSummary{}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&totalSaleAmount,
		&summary.SoldItems,
		&summary.NotSoldItems,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular estatísticas: %w", err)
	}

	if totalSaleAmount.Valid {
		summary.TotalSaleAmount = &totalSaleAmount.Float64
	}

	return summary, nil
}

// CountByPriceRanges devolve uma contagem por faixa, na mesma ordem de ranges
func (r *transactionRepository) CountByPriceRanges(ctx context.Context, month string, ranges []domain.PriceRange) ([]int64, error) {
	counts := make([]int64, len(ranges))
	if len(ranges) == 0 {
		return counts, nil
	}

	builder := squirrel.Select()
	for _, priceRange := range ranges {
		builder = builder.Column(squirrel.Expr(
			"COALESCE(SUM(CASE WHEN price >= ? AND price <= ? THEN 1 ELSE 0 END), 0)",
			priceRange.Min,
			priceRange.Max,
		))
	}

	query, args, err := builder.
		From(transactionsTable).
		Where(r.monthPredicate(month)).
		PlaceholderFormat(r.conn.Dialect.Placeholder).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	dest := make([]any, len(counts))
	for i := range counts {
		dest[i] = &counts[i]
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(dest...); err != nil {
		return nil, fmt.Errorf("erro ao contar transações por faixa de preço: %w", err)
	}

	return counts, nil
}

func (r *transactionRepository) CountByCategory(ctx context.Context, month string) ([]domain.CategoryCount, error) {
	query, args, err := squirrel.
		Select("category", "COUNT(id)").
		From(transactionsTable).
		Where(r.monthPredicate(month)).
		GroupBy("category").
		OrderBy("category ASC").
		PlaceholderFormat(r.conn.Dialect.Placeholder).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.CategoryCount, 0)
	for rows.Next() {
		var category sql.NullString
		var count int64

		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("erro ao escanear categoria: %w", err)
		}

		categories = append(categories, domain.CategoryCount{
			Category: category.String,
			Count:    count,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return categories, nil
}

// monthPredicate compara o mês com dois dígitos como substring ("LIKE '%MM%'")
func (r *transactionRepository) monthPredicate(month string) squirrel.Sqlizer {
	return squirrel.Expr(
		fmt.Sprintf(`%s LIKE ? ESCAPE '\'`, r.conn.Dialect.MonthExpr),
		containsPattern(month),
	)
}

// searchPredicate procura o texto no título, na descrição ou no preço formatado como texto
func (r *transactionRepository) searchPredicate(search string) squirrel.Sqlizer {
	pattern := containsPattern(search)
	like := r.conn.Dialect.LikeOperator

	return squirrel.Or{
		squirrel.Expr(fmt.Sprintf(`title %s ? ESCAPE '\'`, like), pattern),
		squirrel.Expr(fmt.Sprintf(`description %s ? ESCAPE '\'`, like), pattern),
		squirrel.Expr(fmt.Sprintf(`%s %s ? ESCAPE '\'`, r.conn.Dialect.PriceTextExpr, like), pattern),
	}
}

func (r *transactionRepository) scanTransaction(rows *sql.Rows) (*domain.Transaction, error) {
	transaction := &domain.Transaction{}

	var (
		title       sql.NullString
		description sql.NullString
		category    sql.NullString
		image       sql.NullString
		sold        sql.NullBool
		dateOfSale  any
	)

	err := rows.Scan(
		&transaction.ID,
		&title,
		&transaction.Price,
		&description,
		&category,
		&image,
		&sold,
		&dateOfSale,
	)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(dateOfSale)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter data da transação %d: %w", transaction.ID, err)
	}

	transaction.Title = title.String
	transaction.Description = description.String
	transaction.Category = category.String
	transaction.Image = image.String
	transaction.Sold = sold.Bool
	transaction.DateOfSale = date

	return transaction, nil
}

// containsPattern monta o padrão LIKE de substring, escapando os curingas digitados pelo usuário
func containsPattern(value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
	return "%" + escaped + "%"
}

// parseDate aceita o que o driver devolver: time.Time (postgres) ou texto (sqlite). NULL vira nil.
func parseDate(value any) (*time.Time, error) {
	var (
		date time.Time
		err  error
	)

	switch v := value.(type) {
	case nil:
		return nil, nil
	case time.Time:
		date = v
	case []byte:
		date, err = domain.ParseDate(string(v))
	case string:
		date, err = domain.ParseDate(v)
	default:
		return nil, fmt.Errorf("tipo de data não suportado: %T", value)
	}

	if err != nil {
		return nil, err
	}

	return &date, nil
}
