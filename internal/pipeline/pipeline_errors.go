package pipeline

import (
	"errors"
	"fmt"
)

// Etapas do pipeline de uma conta, usadas para classificar falhas
const (
	StageExtraction    = "extraction"
	StageNormalization = "normalization"
	StageStorage       = "storage"
	StageExport        = "export"
)

// Erros específicos do pipeline
var (
	// Erros de configuração (fatais, abortam a execução inteira)
	ErrNoAccountsConfigured = errors.New("no ad accounts configured")

	// Erros por conta (isolados, a execução segue para a próxima conta)
	ErrExtractionFailed    = errors.New("error fetching ad insights from Meta")
	ErrNormalizationFailed = errors.New("no record could be normalized")
	ErrStorageFailed       = errors.New("database operation error")
	ErrExportFailed        = errors.New("error exporting report")
)

// AccountRunError é uma falha de pipeline com contexto da conta e da etapa
type AccountRunError struct {
	Err       error  // Erro base (um dos sentinelas acima)
	Stage     string // Etapa em que o pipeline falhou
	AccountID string // ID da conta envolvida
	Cause     error  // Causa original reportada pelo colaborador
}

// Error implementa a interface error
func (e *AccountRunError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (conta %s, etapa %s): %s", e.Err.Error(), e.AccountID, e.Stage, e.Cause.Error())
	}
	return fmt.Sprintf("%s (conta %s, etapa %s)", e.Err.Error(), e.AccountID, e.Stage)
}

// Unwrap retorna o erro sentinela para permitir errors.Is
func (e *AccountRunError) Unwrap() error {
	return e.Err
}

// NewAccountRunError cria um novo AccountRunError
func NewAccountRunError(err error, stage, accountID string, cause error) *AccountRunError {
	return &AccountRunError{
		Err:       err,
		Stage:     stage,
		AccountID: accountID,
		Cause:     cause,
	}
}
