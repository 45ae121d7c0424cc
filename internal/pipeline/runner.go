package pipeline

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-pipeline/infrastructure/exporter"
	"github.com/vfg2006/meta-ads-pipeline/infrastructure/repository"
	"github.com/vfg2006/meta-ads-pipeline/internal/config"
	"github.com/vfg2006/meta-ads-pipeline/internal/domain"
	"github.com/vfg2006/meta-ads-pipeline/pkg/utils"
)

// AdReporter define a fronteira de extração: busca os insights de uma conta
// no período e devolve as linhas já normalizadas junto com a contagem de
// registros descartados
type AdReporter interface {
	GetAdReports(accountID string, filters *domain.InsigthFilters) ([]*domain.AdReportRow, int, error)
}

// Runner executa o pipeline completo (extração, normalização, full refresh e
// exportação) para todas as contas configuradas, uma por vez
type Runner struct {
	cfg        *config.Config
	reporter   AdReporter
	reportRepo repository.AdReportRepository
	exporter   exporter.ReportExporter
}

func NewRunner(
	cfg *config.Config,
	reporter AdReporter,
	reportRepo repository.AdReportRepository,
	reportExporter exporter.ReportExporter,
) *Runner {
	return &Runner{
		cfg:        cfg,
		reporter:   reporter,
		reportRepo: reportRepo,
		exporter:   reportExporter,
	}
}

// Run executa o pipeline para todas as contas configuradas, em sequência.
// A falha de uma conta não interrompe as demais; só a lista de contas vazia
// aborta a execução antes de processar qualquer conta.
func (r *Runner) Run(daysBack int) (*RunSummary, error) {
	if len(r.cfg.AdAccounts) == 0 {
		return nil, ErrNoAccountsConfigured
	}

	runID, err := utils.GenerateID()
	if err != nil {
		runID = "unknown"
	}

	summary := &RunSummary{
		RunID:     runID,
		DaysBack:  daysBack,
		StartedAt: time.Now(),
		Outcomes:  make([]*AccountOutcome, 0, len(r.cfg.AdAccounts)),
	}

	logrus.WithFields(logrus.Fields{
		"run_id":    runID,
		"accounts":  len(r.cfg.AdAccounts),
		"days_back": daysBack,
	}).Info("Iniciando pipeline de dados do Facebook Ads para todas as contas")

	for i, account := range r.cfg.AdAccounts {
		logrus.WithFields(logrus.Fields{
			"run_id":       runID,
			"position":     i + 1,
			"total":        len(r.cfg.AdAccounts),
			"account_id":   account.ID,
			"account_name": account.Name,
		}).Info("Processando conta")

		outcome := r.runAccount(account, daysBack)
		summary.Outcomes = append(summary.Outcomes, outcome)

		r.logOutcome(runID, outcome)
	}

	summary.CompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"duration": summary.CompletedAt.Sub(summary.StartedAt).String(),
		"success":  summary.CountByStatus(OutcomeSuccess),
		"no_data":  summary.CountByStatus(OutcomeNoData),
		"failures": summary.CountByStatus(OutcomeFailure),
	}).Info("Pipeline concluído")

	return summary, nil
}

// runAccount executa o ciclo completo de uma conta: extração, normalização,
// full refresh da tabela, releitura e exportação. Qualquer falha é capturada
// aqui e vira um desfecho classificado; nada propaga para as outras contas.
func (r *Runner) runAccount(account domain.AdAccount, daysBack int) *AccountOutcome {
	startTime := time.Now()

	outcome := &AccountOutcome{
		AccountID:   account.ID,
		AccountName: account.Name,
	}

	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -daysBack)
	filters := &domain.InsigthFilters{
		StartDate: &startDate,
		EndDate:   &endDate,
	}

	rows, dropped, err := r.reporter.GetAdReports(account.ID, filters)
	if err != nil {
		return r.fail(outcome, startTime, NewAccountRunError(ErrExtractionFailed, StageExtraction, account.ID, err))
	}

	outcome.RowsFetched = len(rows) + dropped
	outcome.RowsDropped = dropped

	if outcome.RowsFetched == 0 {
		logrus.WithField("account_id", account.ID).Warn("Nenhum dado retornado para a conta no período")
		outcome.Status = OutcomeNoData
		outcome.Duration = time.Since(startTime)
		return outcome
	}

	// A API retornou registros mas nenhum sobreviveu à normalização. O
	// comportamento antigo reportava sucesso com zero linhas; aqui a conta é
	// tratada como falha para que a perda total não passe como carga válida.
	if len(rows) == 0 {
		return r.fail(outcome, startTime, NewAccountRunError(ErrNormalizationFailed, StageNormalization, account.ID, nil))
	}

	if err := r.reportRepo.EnsureTable(account.TableName); err != nil {
		return r.fail(outcome, startTime, NewAccountRunError(ErrStorageFailed, StageStorage, account.ID, err))
	}

	inserted, err := r.reportRepo.Replace(account.TableName, rows)
	if err != nil {
		return r.fail(outcome, startTime, NewAccountRunError(ErrStorageFailed, StageStorage, account.ID, err))
	}
	outcome.RowsInserted = inserted

	stored, err := r.reportRepo.GetAll(account.TableName)
	if err != nil {
		return r.fail(outcome, startTime, NewAccountRunError(ErrStorageFailed, StageStorage, account.ID, err))
	}

	path, err := r.exporter.Export(stored, account.ExportFilename)
	if err != nil {
		// A carga no banco já foi efetivada; o desfecho registra a falha de
		// exportação sem descartar as contagens de inserção
		return r.fail(outcome, startTime, NewAccountRunError(ErrExportFailed, StageExport, account.ID, err))
	}

	outcome.Status = OutcomeSuccess
	outcome.RowsExported = len(stored)
	outcome.ExportPath = path
	outcome.Duration = time.Since(startTime)

	return outcome
}

func (r *Runner) fail(outcome *AccountOutcome, startTime time.Time, runErr *AccountRunError) *AccountOutcome {
	outcome.Status = OutcomeFailure
	outcome.Err = runErr
	outcome.Duration = time.Since(startTime)
	return outcome
}

func (r *Runner) logOutcome(runID string, outcome *AccountOutcome) {
	fields := logrus.Fields{
		"run_id":        runID,
		"account_id":    outcome.AccountID,
		"account_name":  outcome.AccountName,
		"status":        outcome.Status,
		"rows_fetched":  outcome.RowsFetched,
		"rows_dropped":  outcome.RowsDropped,
		"rows_inserted": outcome.RowsInserted,
		"rows_exported": outcome.RowsExported,
		"duration":      outcome.Duration.String(),
	}

	switch outcome.Status {
	case OutcomeFailure:
		logrus.WithFields(fields).WithError(outcome.Err).Error("Conta processada com falha")
	case OutcomeNoData:
		logrus.WithFields(fields).Warn("Conta processada sem dados no período")
	default:
		if outcome.RowsDropped > 0 {
			logrus.WithFields(fields).Warn("Conta processada com sucesso, mas com registros descartados na normalização")
			return
		}
		logrus.WithFields(fields).Info("Conta processada com sucesso")
	}
}

// SetupTables cria as tabelas de todas as contas configuradas. Usada pelo
// modo de setup da linha de comando, antes da primeira execução.
func (r *Runner) SetupTables() error {
	if len(r.cfg.AdAccounts) == 0 {
		return ErrNoAccountsConfigured
	}

	for _, account := range r.cfg.AdAccounts {
		if err := r.reportRepo.EnsureTable(account.TableName); err != nil {
			return NewAccountRunError(ErrStorageFailed, StageStorage, account.ID, err)
		}

		logrus.WithFields(logrus.Fields{
			"account_name": account.Name,
			"table":        account.TableName,
		}).Info("Tabela criada/verificada para a conta")
	}

	return nil
}
