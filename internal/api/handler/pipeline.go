package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-pipeline/internal/scheduler"
	"github.com/vfg2006/meta-ads-pipeline/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RunPipeline dispara manualmente uma execução do pipeline
func RunPipeline(service *scheduler.PipelineSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunPipeline")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		service.TriggerManualSync()

		response := map[string]any{
			"message": "Execução do pipeline iniciada com sucesso",
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// GetPipelineStatus retorna o status do agendador e da última execução
func GetPipelineStatus(service *scheduler.PipelineSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetPipelineStatus")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(service.GetStatus())
	}
}

// GetLastRun retorna o resumo detalhado da última execução do pipeline, com o
// desfecho de cada conta
func GetLastRun(service *scheduler.PipelineSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetLastRun")

		summary := service.LastSummary()
		if summary == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhuma execução concluída até o momento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}
