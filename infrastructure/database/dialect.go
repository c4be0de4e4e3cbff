package database

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/product-transactions-api/internal/config"
)

// Dialect concentra o SQL que muda entre SQLite e PostgreSQL
type Dialect struct {
	Name        string
	DriverName  string
	Placeholder squirrel.PlaceholderFormat
	// LikeOperator é sempre case-insensitive, como o LIKE do SQLite
	LikeOperator string
	// MonthExpr devolve o mês da venda com dois dígitos ("01".."12"), ignorando o ano
	MonthExpr               string
	PriceTextExpr           string
	CreateTransactionsTable string
}

var SQLite = Dialect{
	Name:          config.DriverSQLite,
	DriverName:    "sqlite",
	Placeholder:   squirrel.Question,
	LikeOperator:  "LIKE",
	MonthExpr:     "strftime('%m', date_of_sale)",
	PriceTextExpr: "CAST(price AS TEXT)",
	CreateTransactionsTable: `
		CREATE TABLE IF NOT EXISTS transactions (
			id INTEGER PRIMARY KEY,
			title TEXT,
			price REAL,
			description TEXT,
			category TEXT,
			image TEXT,
			sold BOOLEAN,
			date_of_sale DATETIME
		);`,
}

var Postgres = Dialect{
	Name:          config.DriverPostgres,
	DriverName:    "postgres",
	Placeholder:   squirrel.Dollar,
	LikeOperator:  "ILIKE",
	MonthExpr:     "to_char(date_of_sale, 'MM')",
	PriceTextExpr: "CAST(price AS TEXT)",
	CreateTransactionsTable: `
		CREATE TABLE IF NOT EXISTS transactions (
			id BIGINT PRIMARY KEY,
			title TEXT,
			price DOUBLE PRECISION,
			description TEXT,
			category TEXT,
			image TEXT,
			sold BOOLEAN,
			date_of_sale TIMESTAMPTZ
		);`,
}

func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case config.DriverSQLite:
		return SQLite, nil
	case config.DriverPostgres:
		return Postgres, nil
	}

	return Dialect{}, fmt.Errorf("driver de banco de dados não suportado: %q", driver)
}
