package pipeline

import (
	"time"
)

// OutcomeStatus é o desfecho do pipeline para uma conta
type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "success"
	OutcomeNoData  OutcomeStatus = "no_data"
	OutcomeFailure OutcomeStatus = "failure"
)

// AccountOutcome registra o desfecho do pipeline para uma conta. Carga e
// exportação são reportadas separadamente: uma falha de exportação mantém as
// contagens de inserção já efetivadas.
type AccountOutcome struct {
	AccountID   string        `json:"account_id"`
	AccountName string        `json:"account_name"`
	Status      OutcomeStatus `json:"status"`

	RowsFetched  int `json:"rows_fetched"`
	RowsDropped  int `json:"rows_dropped"`
	RowsInserted int `json:"rows_inserted"`
	RowsExported int `json:"rows_exported"`

	ExportPath string        `json:"export_path,omitempty"`
	Duration   time.Duration `json:"duration"`
	Err        *AccountRunError
}

// FailureCause devolve a descrição da falha, quando houver
func (o *AccountOutcome) FailureCause() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

// RunSummary é o resumo de uma execução completa do pipeline, com um desfecho
// por conta configurada
type RunSummary struct {
	RunID       string            `json:"run_id"`
	DaysBack    int               `json:"days_back"`
	StartedAt   time.Time         `json:"started_at"`
	CompletedAt time.Time         `json:"completed_at"`
	Outcomes    []*AccountOutcome `json:"outcomes"`
}

// CountByStatus retorna o número de contas com o desfecho informado
func (s *RunSummary) CountByStatus(status OutcomeStatus) int {
	count := 0
	for _, outcome := range s.Outcomes {
		if outcome.Status == status {
			count++
		}
	}
	return count
}
