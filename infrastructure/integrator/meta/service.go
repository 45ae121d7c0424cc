package meta

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-pipeline/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-pipeline/internal/config"
	"github.com/vfg2006/meta-ads-pipeline/internal/domain"
)

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetAdReports busca os insights de anúncio da conta no período informado e
// converte cada registro bruto para o esquema do relatório. Registros que
// falham na normalização são descartados e contados; a contagem volta para o
// chamador para que a perda não passe despercebida.
func (s *MetaIntegrator) GetAdReports(accountID string, filters *domain.InsigthFilters) ([]*domain.AdReportRow, int, error) {
	insights, err := s.Client.GetAdInsightsByAccountID(accountID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get ad insights from API")
		return nil, 0, err
	}

	rows := make([]*domain.AdReportRow, 0, len(insights))
	dropped := 0

	for _, insight := range insights {
		row, err := FactoryAdReportRow(insight)
		if err != nil {
			dropped++
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"ad_id":      insight.AdID,
				"date_start": insight.DateStart,
				"error":      err.Error(),
			}).Warn("insights: discarding record that failed normalization")
			continue
		}

		rows = append(rows, row)
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"fetched":    len(insights),
		"normalized": len(rows),
		"dropped":    dropped,
		"start_date": filters.StartDate.Format(time.DateOnly),
		"end_date":   filters.EndDate.Format(time.DateOnly),
	}).Debug("insights: ad reports retrieved for account")

	return rows, dropped, nil
}
