package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/product-transactions-api/infrastructure/database"
	"github.com/vfg2006/product-transactions-api/infrastructure/integrator/feed"
	"github.com/vfg2006/product-transactions-api/infrastructure/integrator/feed/feedclient"
	"github.com/vfg2006/product-transactions-api/infrastructure/repository"
	"github.com/vfg2006/product-transactions-api/internal/api"
	"github.com/vfg2006/product-transactions-api/internal/config"
	"github.com/vfg2006/product-transactions-api/internal/scheduler"
	"github.com/vfg2006/product-transactions-api/internal/usecases/aggregating"
	"github.com/vfg2006/product-transactions-api/internal/usecases/combining"
	"github.com/vfg2006/product-transactions-api/internal/usecases/ingesting"
	"github.com/vfg2006/product-transactions-api/internal/usecases/listing"
	"github.com/vfg2006/product-transactions-api/pkg/log"
)

func main() {
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := log.Configure(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	transactionRepo := repository.NewTransactionRepository(conn)

	feedClient := feedclient.NewClient(cfg)
	feedIntegrator := feed.New(feedClient)

	ingester := ingesting.NewService(transactionRepo, feedIntegrator)
	lister := listing.NewService(transactionRepo)
	aggregator := aggregating.NewService(transactionRepo)
	combiner := combining.NewService(ingester, lister, aggregator)

	ingestionSyncService := scheduler.NewIngestionSyncService(ingester, cfg)
	if err := ingestionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de ingestão")
	}

	server, err := api.New(cfg, api.Services{
		Ingester:      ingester,
		Lister:        lister,
		Aggregator:    aggregator,
		Combiner:      combiner,
		IngestionSync: ingestionSyncService,
		Database:      conn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// dbconn abre o banco e garante a tabela; qualquer falha encerra o processo
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatalf("Erro ao conectar ao banco (%s)", dbConfig.Driver)
	}

	if err := conn.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar a tabela de transações")
	}

	logrus.WithField("driver", dbConfig.Driver).Info("Conexão com o banco estabelecida com sucesso")
	return conn
}
