package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/product-transactions-api/internal/config"
)

func TestEnsureSchema_Idempotent(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "transactions.db")

	conn, err := NewConnection(ctx, config.Database{
		Driver: config.DriverSQLite,
		DSN:    "file:" + dbPath,
	})
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.EnsureSchema(ctx))
	require.NoError(t, conn.EnsureSchema(ctx))

	var count int
	err = conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM transactions").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestDialectFor(t *testing.T) {
	tests := []struct {
		driver      string
		placeholder squirrel.PlaceholderFormat
		like        string
		wantErr     bool
	}{
		{driver: config.DriverSQLite, placeholder: squirrel.Question, like: "LIKE"},
		{driver: config.DriverPostgres, placeholder: squirrel.Dollar, like: "ILIKE"},
		{driver: "mysql", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			dialect, err := DialectFor(tt.driver)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.placeholder, dialect.Placeholder)
			assert.Equal(t, tt.like, dialect.LikeOperator)
			assert.Contains(t, dialect.CreateTransactionsTable, "CREATE TABLE IF NOT EXISTS transactions")
		})
	}
}

func TestNewConnection_UnknownDriver(t *testing.T) {
	conn, err := NewConnection(context.Background(), config.Database{Driver: "oracle"})
	assert.Error(t, err)
	assert.Nil(t, conn)
}
