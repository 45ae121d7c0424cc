package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-ads-pipeline/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-pipeline/internal/domain"
	"github.com/vfg2006/meta-ads-pipeline/pkg/utils"
)

// insightsFields é o conjunto completo de campos solicitados à Graph API,
// incluindo as três coleções de ações usadas na normalização
const insightsFields = "account_id,account_name,campaign_name,adset_name,ad_id,ad_name," +
	"date_start,spend,impressions,reach,frequency,cpc,ctr,cpm," +
	"inline_link_clicks,inline_link_click_ctr,cost_per_inline_link_click," +
	"actions,action_values,cost_per_action_type"

// pageLimit define o tamanho de página das requisições de insights
const pageLimit = 500

type ResponseAdInsights struct {
	Data   []metadomain.AdInsight `json:"data"`
	Paging Paging                 `json:"paging"`
}

type Paging struct {
	Next string `json:"next"`
}

// GetAdInsightsByAccountID busca os insights no nível de anúncio, com
// incremento diário, para a conta e o período informados. A resposta é
// paginada; todas as páginas são percorridas antes de retornar.
func (c *MetaClient) GetAdInsightsByAccountID(accountID string, filters *domain.InsigthFilters) ([]metadomain.AdInsight, error) {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", filters.StartDate.Format(time.DateOnly), filters.EndDate.Format(time.DateOnly))

	params := &url.Values{}
	params.Add("level", "ad")
	params.Add("time_increment", "1")
	params.Add("fields", insightsFields)
	params.Add("limit", fmt.Sprintf("%d", pageLimit))
	params.Add("time_range", timeRange)
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	url := baseURL + "?" + params.Encode()

	insights := make([]metadomain.AdInsight, 0)
	for url != "" {
		page, next, err := c.fetchInsightsPage(url)
		if err != nil {
			return nil, err
		}

		insights = append(insights, page...)
		url = next
	}

	return insights, nil
}

// fetchInsightsPage busca uma página de insights e retorna a URL da próxima
// página, quando houver
func (c *MetaClient) fetchInsightsPage(url string) ([]metadomain.AdInsight, string, error) {
	body, err := utils.MakeRequest(url)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, "", err
	}

	var response ResponseAdInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, "", err
	}

	return response.Data, response.Paging.Next, nil
}
