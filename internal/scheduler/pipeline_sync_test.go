package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	exportermocks "github.com/vfg2006/meta-ads-pipeline/infrastructure/exporter/mocks"
	repomocks "github.com/vfg2006/meta-ads-pipeline/infrastructure/repository/mocks"
	"github.com/vfg2006/meta-ads-pipeline/internal/config"
	"github.com/vfg2006/meta-ads-pipeline/internal/domain"
	"github.com/vfg2006/meta-ads-pipeline/internal/pipeline"
	pipelinemocks "github.com/vfg2006/meta-ads-pipeline/internal/pipeline/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, blockExtraction time.Duration) *PipelineSyncService {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	account := domain.AdAccount{ID: "act_001", Name: "Loja A", TableName: "facebook_ads_loja_a", ExportFilename: "loja_a.xlsx"}
	cfg := &config.Config{
		AdAccounts:   []domain.AdAccount{account},
		PipelineSync: config.PipelineSync{CronSchedule: "0 6 * * *", LookbackDays: 7, Enabled: true},
	}

	rows := []*domain.AdReportRow{
		{AdID: "ad_1", Day: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	mockReporter := pipelinemocks.NewMockAdReporter(ctrl)
	mockReporter.EXPECT().
		GetAdReports(account.ID, gomock.Any()).
		DoAndReturn(func(string, *domain.InsigthFilters) ([]*domain.AdReportRow, int, error) {
			time.Sleep(blockExtraction)
			return rows, 0, nil
		}).
		AnyTimes()

	mockRepo := repomocks.NewMockAdReportRepository(ctrl)
	mockRepo.EXPECT().EnsureTable(account.TableName).Return(nil).AnyTimes()
	mockRepo.EXPECT().Replace(account.TableName, gomock.Any()).Return(1, nil).AnyTimes()
	mockRepo.EXPECT().GetAll(account.TableName).Return(rows, nil).AnyTimes()

	mockExporter := exportermocks.NewMockReportExporter(ctrl)
	mockExporter.EXPECT().
		Export(gomock.Any(), account.ExportFilename).
		Return("/exports/loja_a.xlsx", nil).
		AnyTimes()

	runner := pipeline.NewRunner(cfg, mockReporter, mockRepo, mockExporter)
	return NewPipelineSyncService(runner, cfg)
}

func TestPipelineSyncService_GetStatus(t *testing.T) {
	service := newTestService(t, 0)

	t.Run("Antes de qualquer execução o status não deve trazer resumo", func(t *testing.T) {
		status := service.GetStatus()

		assert.Equal(t, true, status["sync_enabled"])
		assert.Equal(t, "0 6 * * *", status["sync_cron"])
		assert.Equal(t, 7, status["sync_lookback_days"])
		assert.Equal(t, false, status["sync_running"])
		assert.NotContains(t, status, "last_run_id")
		assert.Nil(t, service.LastSummary())
	})

	t.Run("Depois de uma execução o status deve trazer o resumo da última", func(t *testing.T) {
		service.runPipeline()

		status := service.GetStatus()
		assert.Equal(t, false, status["sync_running"])
		assert.NotEmpty(t, status["last_run_id"])
		assert.Equal(t, 1, status["last_run_success"])
		assert.Equal(t, 0, status["last_run_failures"])

		summary := service.LastSummary()
		assert.NotNil(t, summary)
		assert.Len(t, summary.Outcomes, 1)
	})
}

func TestPipelineSyncService_StatusDuranteExecucao(t *testing.T) {
	service := newTestService(t, 50*time.Millisecond)

	// Leitores concorrentes enquanto o pipeline roda; sob -race qualquer
	// leitura desprotegida do estado compartilhado falha aqui
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		service.runPipeline()
	}()

	for i := 0; i < 10; i++ {
		_ = service.GetStatus()
		_ = service.LastSummary()
		time.Sleep(10 * time.Millisecond)
	}

	wg.Wait()

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.NotNil(t, service.LastSummary())
}

func TestPipelineSyncService_TriggerManualSync(t *testing.T) {
	service := newTestService(t, 20*time.Millisecond)

	service.TriggerManualSync()

	// A execução manual é assíncrona; aguardar a conclusão
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if service.LastSummary() != nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	summary := service.LastSummary()
	assert.NotNil(t, summary)
	assert.Equal(t, 1, summary.CountByStatus(pipeline.OutcomeSuccess))
}
