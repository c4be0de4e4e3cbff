package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/vfg2006/product-transactions-api/internal/config"
	_ "modernc.org/sqlite"
)

type Connection struct {
	*sql.DB
	Dialect Dialect
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dialect.DriverName, cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &Connection{DB: db, Dialect: dialect}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// EnsureSchema cria a tabela de transações caso não exista. Pode ser chamado a cada inicialização.
func (c *Connection) EnsureSchema(ctx context.Context) error {
	if _, err := c.DB.ExecContext(ctx, c.Dialect.CreateTransactionsTable); err != nil {
		return fmt.Errorf("erro ao criar tabela transactions (%s): %w", c.Dialect.Name, err)
	}

	return nil
}
