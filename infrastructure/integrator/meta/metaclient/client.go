package metaclient

import (
	metadomain "github.com/vfg2006/meta-ads-pipeline/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-pipeline/internal/config"
	"github.com/vfg2006/meta-ads-pipeline/internal/domain"
)

type Client interface {
	GetAdInsightsByAccountID(accountID string, filters *domain.InsigthFilters) ([]metadomain.AdInsight, error)
}

type MetaClient struct {
	Cfg *config.Config
}

func NewClient(cfg *config.Config) Client {
	client := &MetaClient{
		Cfg: cfg,
	}
	return client
}
