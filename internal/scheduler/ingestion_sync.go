package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/product-transactions-api/internal/config"
	"github.com/vfg2006/product-transactions-api/internal/usecases/ingesting"
	"github.com/vfg2006/product-transactions-api/pkg/log"
)

// IngestionSyncConfig representa a configuração do agendador de ingestão
type IngestionSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// IngestionSyncService reexecuta periodicamente a ingestão do dataset de terceiros
type IngestionSyncService struct {
	scheduler           *gocron.Scheduler
	config              IngestionSyncConfig
	ingester            ingesting.Ingester
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
	lastError           string
}

func NewIngestionSyncService(ingester ingesting.Ingester, appConfig *config.Config) *IngestionSyncService {
	syncConfig := IngestionSyncConfig{
		CronSchedule: appConfig.IngestionSync.CronSchedule,
		SyncEnabled:  appConfig.IngestionSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de ingestão carregada")

	return &IngestionSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		ingester:  ingester,
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador; com a sincronização desabilitada nada é agendado
func (s *IngestionSyncService) Start(ctx context.Context) error {
	s.syncMutex.Lock()
	s.baseCtx = ctx
	s.syncMutex.Unlock()

	if !s.config.SyncEnabled {
		logrus.Info("Sincronização da ingestão desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de ingestão")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Sync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar ingestão: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de ingestão")
		s.scheduler.Stop()
	}()

	return nil
}

// Sync executa uma ingestão; retorna false se outra execução já estiver em andamento
func (s *IngestionSyncService) Sync(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ingestão já em andamento, ignorando")
		return false
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	s.runSync(ctx)
	return true
}

func (s *IngestionSyncService) runSync(ctx context.Context) {
	ctx, runID := log.WithCorrelationID(ctx)
	startTime := time.Now()

	s.syncMutex.Lock()
	s.lastSyncStartedAt = startTime
	s.lastRunID = runID
	s.syncMutex.Unlock()

	logger := log.ForContext(ctx)
	logger.Info("Iniciando ingestão agendada do dataset de terceiros")

	_, err := s.ingester.Initialize(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()

	if err != nil {
		s.lastError = err.Error()
		logger.WithError(err).Error("Erro na ingestão agendada")
		return
	}

	s.lastError = ""
	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"run_id":   runID,
	}).Info("Ingestão agendada concluída")
}

// TriggerManualSync inicia uma ingestão em segundo plano.
// Retorna false se já houver uma em andamento.
func (s *IngestionSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ingestão já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncRunning = true
	ctx := s.baseCtx
	s.syncMutex.Unlock()

	logrus.Info("Iniciando ingestão manual")
	go s.runSync(ctx)

	return true
}

// GetStatus retorna o status atual do agendador
func (s *IngestionSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run_id":            s.lastRunID,
		"last_error":             s.lastError,
	}
}
