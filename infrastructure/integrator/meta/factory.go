package meta

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-ads-pipeline/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-pipeline/internal/domain"
	"github.com/vfg2006/meta-ads-pipeline/pkg/utils"
)

// Chaves de ação reconhecidas pelo esquema. A API expõe variantes atribuídas
// pela plataforma (omni_*) e pelo pixel do site; as duas são mantidas como
// campos distintos, nunca somadas. Chaves fora deste conjunto são ignoradas.
const (
	actionLandingPageView       = "landing_page_view"
	actionLead                  = "lead"
	actionMessagingStarted      = "onsite_conversion.messaging_conversation_started_7d"
	actionOmniAddToCart         = "omni_add_to_cart"
	actionWebsiteAddToCart      = "add_to_cart"
	actionOmniInitiatedCheckout = "omni_initiated_checkout"
	actionOmniPurchase          = "omni_purchase"
	actionWebsitePurchase       = "purchase"
	actionPostComment           = "post_comment"
	actionComment               = "comment"
)

// FactoryAdReportRow converte um registro bruto de insight em uma linha do
// relatório. A conversão é pura: métricas ausentes assumem zero, chaves de
// ação desconhecidas são descartadas e apenas campos de identidade ausentes
// ou métricas não numéricas invalidam o registro.
func FactoryAdReportRow(insight metadomain.AdInsight) (*domain.AdReportRow, error) {
	if insight.AdID == "" {
		return nil, errors.New("registro de insight sem ad_id")
	}

	day, err := utils.ParseDate(insight.DateStart)
	if err != nil || day.IsZero() {
		return nil, errors.Errorf("registro de insight com date_start inválido: %q", insight.DateStart)
	}

	actions := buildActionMap(insight.Actions, "actions")
	actionValues := buildActionMap(insight.ActionValues, "action_values")
	costPerAction := buildActionMap(insight.CostPerActions, "cost_per_action_type")

	row := &domain.AdReportRow{
		AccountID:    insight.AccountID,
		AccountName:  insight.AccountName,
		CampaignName: insight.CampaignName,
		AdsetName:    insight.AdsetName,
		AdID:         insight.AdID,
		AdName:       insight.AdName,
		Day:          *day,
	}

	if row.AmountSpent, err = parseFloatMetric("spend", insight.Spend); err != nil {
		return nil, err
	}
	if row.Impressions, err = parseIntMetric("impressions", insight.Impressions); err != nil {
		return nil, err
	}
	if row.Reach, err = parseIntMetric("reach", insight.Reach); err != nil {
		return nil, err
	}
	if row.Frequency, err = parseFloatMetric("frequency", insight.Frequency); err != nil {
		return nil, err
	}
	if row.CPCAll, err = parseFloatMetric("cpc", insight.CPC); err != nil {
		return nil, err
	}
	if row.CPCLinkClick, err = parseFloatMetric("cost_per_inline_link_click", insight.CostPerInlineLinkClick); err != nil {
		return nil, err
	}
	if row.CTRAll, err = parseFloatMetric("ctr", insight.CTR); err != nil {
		return nil, err
	}
	if row.CTRLinkClick, err = parseFloatMetric("inline_link_click_ctr", insight.InlineLinkClickCTR); err != nil {
		return nil, err
	}
	if row.CPM, err = parseFloatMetric("cpm", insight.CPM); err != nil {
		return nil, err
	}
	if row.LinkClicks, err = parseIntMetric("inline_link_clicks", insight.InlineLinkClicks); err != nil {
		return nil, err
	}

	// Cost per result: a plataforma expõe a variante omni e a variante do
	// pixel sob chaves diferentes; a omni tem precedência
	row.CostPerResult = lookupAction(costPerAction, actionOmniPurchase, actionWebsitePurchase)

	row.LandingPageViews = int64(lookupAction(actions, actionLandingPageView))
	row.CostPerLandingPageView = lookupAction(costPerAction, actionLandingPageView)
	row.Leads = int64(lookupAction(actions, actionLead))
	row.LeadsConversionValue = lookupAction(actionValues, actionLead)
	row.MessagingConversationsStarted = int64(lookupAction(actions, actionMessagingStarted))
	row.AddsToCart = int64(lookupAction(actions, actionOmniAddToCart))
	row.WebsiteAddsToCart = int64(lookupAction(actions, actionWebsiteAddToCart))
	row.AddsToCartConversionValue = lookupAction(actionValues, actionOmniAddToCart)
	row.CheckoutsInitiated = int64(lookupAction(actions, actionOmniInitiatedCheckout))
	row.CheckoutsInitiatedConversionValue = lookupAction(actionValues, actionOmniInitiatedCheckout)
	row.Purchases = int64(lookupAction(actions, actionOmniPurchase))
	row.WebsitePurchases = int64(lookupAction(actions, actionWebsitePurchase))
	row.PurchasesConversionValue = lookupAction(actionValues, actionOmniPurchase)
	row.WebsitePurchasesConversionValue = lookupAction(actionValues, actionWebsitePurchase)

	// "comment" é o apelido antigo de "post_comment"; a API ainda envia os
	// dois conforme a idade da conta
	row.PostComments = int64(lookupAction(actions, actionPostComment, actionComment))

	return row, nil
}

// buildActionMap converte uma coleção de ações em um mapa action_type -> valor.
// Entradas com valor não numérico são descartadas individualmente.
func buildActionMap(actions []metadomain.Action, collection string) map[string]float64 {
	result := make(map[string]float64, len(actions))

	for i := range actions {
		action := actions[i]

		actionValue, err := strconv.ParseFloat(action.Value, 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"collection":   collection,
				"action_type":  action.ActionType,
				"action_value": action.Value,
				"error":        err.Error(),
			}).Warn("insights: error converting action value to float")
			continue
		}

		result[action.ActionType] = actionValue
	}

	return result
}

// lookupAction retorna o valor da primeira chave presente no mapa, ou zero
func lookupAction(m map[string]float64, keys ...string) float64 {
	for _, key := range keys {
		if value, ok := m[key]; ok {
			return value
		}
	}
	return 0
}

func parseFloatMetric(field, raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "métrica %s com valor não numérico %q", field, raw)
	}

	return value, nil
}

func parseIntMetric(field, raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "métrica %s com valor não numérico %q", field, raw)
	}

	return value, nil
}
