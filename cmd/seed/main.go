// Comando seed popula o banco com o dataset de terceiros uma única vez, sem subir a API.
package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/product-transactions-api/infrastructure/database"
	"github.com/vfg2006/product-transactions-api/infrastructure/integrator/feed"
	"github.com/vfg2006/product-transactions-api/infrastructure/integrator/feed/feedclient"
	"github.com/vfg2006/product-transactions-api/infrastructure/repository"
	"github.com/vfg2006/product-transactions-api/internal/config"
	"github.com/vfg2006/product-transactions-api/internal/usecases/ingesting"
	"github.com/vfg2006/product-transactions-api/pkg/log"
)

func main() {
	log.Configure("info")
	logrus.Info("Iniciando seed do banco de dados...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.Seed.Timeout)
	defer cancel()

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco")
	}
	defer conn.Close()

	if err := conn.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar a tabela de transações")
	}

	ingester := ingesting.NewService(
		repository.NewTransactionRepository(conn),
		feed.New(feedclient.NewClient(cfg)),
	)

	start := time.Now()
	result, err := ingester.Initialize(ctx)
	if err != nil {
		logrus.WithError(err).Error("Seed falhou")
		conn.Close()
		os.Exit(1)
	}

	logrus.WithField("duration", time.Since(start).String()).Info(result.Msg)
}
