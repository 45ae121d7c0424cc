package handler

import (
	"net/http"

	"github.com/vfg2006/meta-ads-pipeline/internal/api/handler/router"
	"github.com/vfg2006/meta-ads-pipeline/internal/scheduler"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Pipeline(service *scheduler.PipelineSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/pipeline/run",
			Method:  http.MethodPost,
			Handler: RunPipeline(service),
		},
		{
			Path:    "/v1/pipeline/status",
			Method:  http.MethodGet,
			Handler: GetPipelineStatus(service),
		},
		{
			Path:    "/v1/pipeline/last-run",
			Method:  http.MethodGet,
			Handler: GetLastRun(service),
		},
	}
}
