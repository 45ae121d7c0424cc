package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-pipeline/internal/config"
	"github.com/vfg2006/meta-ads-pipeline/internal/pipeline"
	"github.com/vfg2006/meta-ads-pipeline/pkg/utils"
)

// PipelineSyncConfig representa a configuração do agendador do pipeline
type PipelineSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// PipelineSyncService gerencia o agendamento e a execução diária do pipeline
// de dados do Facebook Ads
type PipelineSyncService struct {
	scheduler           *gocron.Scheduler
	config              PipelineSyncConfig
	runner              *pipeline.Runner
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         *pipeline.RunSummary
}

// NewPipelineSyncService cria uma nova instância do serviço de sincronização
func NewPipelineSyncService(runner *pipeline.Runner, appConfig *config.Config) *PipelineSyncService {
	syncConfig := PipelineSyncConfig{
		CronSchedule: appConfig.PipelineSync.CronSchedule,
		LookbackDays: appConfig.PipelineSync.LookbackDays,
		SyncEnabled:  appConfig.PipelineSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do pipeline carregada")

	return &PipelineSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		runner:      runner,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *PipelineSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Execução agendada do pipeline desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do pipeline")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runPipeline()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar execução do pipeline: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do pipeline")
		s.scheduler.Stop()
	}()

	return nil
}

// runPipeline executa o pipeline completo, garantindo que execuções não se
// sobreponham
func (s *PipelineSyncService) runPipeline() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Execução do pipeline já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	summary, err := s.runner.Run(s.config.LookbackDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar o pipeline agendado")
		return
	}

	s.syncMutex.Lock()
	s.lastSummary = summary
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente uma execução do pipeline
func (s *PipelineSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Execução do pipeline já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual do pipeline")
	go s.runPipeline()
}

// GetStatus retorna o status atual do agendador
func (s *PipelineSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastSummary != nil {
		status["last_run_id"] = s.lastSummary.RunID
		status["last_run_duration_seconds"] = utils.RoundWithTwoDecimalPlace(
			s.lastSummary.CompletedAt.Sub(s.lastSummary.StartedAt).Seconds(),
		)
		status["last_run_success"] = s.lastSummary.CountByStatus(pipeline.OutcomeSuccess)
		status["last_run_no_data"] = s.lastSummary.CountByStatus(pipeline.OutcomeNoData)
		status["last_run_failures"] = s.lastSummary.CountByStatus(pipeline.OutcomeFailure)
	}

	return status
}

// LastSummary retorna o resumo da última execução concluída, quando houver
func (s *PipelineSyncService) LastSummary() *pipeline.RunSummary {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.lastSummary
}
