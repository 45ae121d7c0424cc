package meta

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/meta-ads-pipeline/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-pipeline/internal/domain"
)

func TestFactoryAdReportRow(t *testing.T) {
	tests := []struct {
		name     string
		insight  metadomain.AdInsight
		hasError bool
		validate func(t *testing.T, row *domain.AdReportRow)
	}{
		{
			name: "Registro completo deve ser normalizado com todas as métricas e ações",
			insight: metadomain.AdInsight{
				AccountID:              "act_123",
				AccountName:            "Loja A",
				CampaignName:           "Campanha Verão",
				AdsetName:              "Conjunto 1",
				AdID:                   "ad_001",
				AdName:                 "Anúncio 1",
				DateStart:              "2024-03-15",
				DateStop:               "2024-03-15",
				Spend:                  "12.5",
				Impressions:            "1000",
				Reach:                  "800",
				Frequency:              "1.25",
				CPC:                    "0.5",
				CTR:                    "2.1",
				CPM:                    "12.5",
				InlineLinkClicks:       "25",
				InlineLinkClickCTR:     "2.5",
				CostPerInlineLinkClick: "0.5",
				Actions: []metadomain.Action{
					{ActionType: "lead", Value: "3"},
					{ActionType: "landing_page_view", Value: "40"},
					{ActionType: "omni_purchase", Value: "2"},
					{ActionType: "purchase", Value: "1"},
				},
				ActionValues: []metadomain.Action{
					{ActionType: "lead", Value: "45.0"},
					{ActionType: "omni_purchase", Value: "199.9"},
				},
				CostPerActions: []metadomain.Action{
					{ActionType: "omni_purchase", Value: "6.25"},
					{ActionType: "landing_page_view", Value: "0.31"},
				},
			},
			validate: func(t *testing.T, row *domain.AdReportRow) {
				assert.Equal(t, "act_123", row.AccountID)
				assert.Equal(t, "ad_001", row.AdID)
				assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), row.Day)
				assert.Equal(t, 12.5, row.AmountSpent)
				assert.Equal(t, int64(1000), row.Impressions)
				assert.Equal(t, int64(800), row.Reach)
				assert.Equal(t, 1.25, row.Frequency)
				assert.Equal(t, int64(3), row.Leads)
				assert.Equal(t, 45.0, row.LeadsConversionValue)
				assert.Equal(t, int64(40), row.LandingPageViews)
				assert.Equal(t, 0.31, row.CostPerLandingPageView)
				assert.Equal(t, int64(2), row.Purchases)
				assert.Equal(t, int64(1), row.WebsitePurchases)
				assert.Equal(t, 199.9, row.PurchasesConversionValue)
			},
		},
		{
			name: "Coleções de ação ausentes devem produzir linha com ações zeradas",
			insight: metadomain.AdInsight{
				AdID:      "ad_002",
				DateStart: "2024-03-15",
				Spend:     "5.0",
			},
			validate: func(t *testing.T, row *domain.AdReportRow) {
				assert.Equal(t, 5.0, row.AmountSpent)
				assert.Equal(t, int64(0), row.Leads)
				assert.Equal(t, int64(0), row.Purchases)
				assert.Equal(t, 0.0, row.CostPerResult)
				assert.Equal(t, 0.0, row.PurchasesConversionValue)
				assert.Equal(t, int64(0), row.PostComments)
			},
		},
		{
			name: "Métricas vazias devem assumir zero",
			insight: metadomain.AdInsight{
				AdID:      "ad_003",
				DateStart: "2024-03-15",
			},
			validate: func(t *testing.T, row *domain.AdReportRow) {
				assert.Equal(t, 0.0, row.AmountSpent)
				assert.Equal(t, int64(0), row.Impressions)
				assert.Equal(t, 0.0, row.CPCAll)
				assert.Equal(t, 0.0, row.CTRAll)
				assert.Equal(t, int64(0), row.LinkClicks)
			},
		},
		{
			name: "Custo por resultado deve preferir omni_purchase sobre purchase",
			insight: metadomain.AdInsight{
				AdID:      "ad_004",
				DateStart: "2024-03-15",
				CostPerActions: []metadomain.Action{
					{ActionType: "purchase", Value: "9.99"},
					{ActionType: "omni_purchase", Value: "4.5"},
				},
			},
			validate: func(t *testing.T, row *domain.AdReportRow) {
				assert.Equal(t, 4.5, row.CostPerResult)
			},
		},
		{
			name: "Custo por resultado deve cair para purchase quando omni_purchase não existe",
			insight: metadomain.AdInsight{
				AdID:      "ad_005",
				DateStart: "2024-03-15",
				CostPerActions: []metadomain.Action{
					{ActionType: "purchase", Value: "9.99"},
				},
			},
			validate: func(t *testing.T, row *domain.AdReportRow) {
				assert.Equal(t, 9.99, row.CostPerResult)
			},
		},
		{
			name: "Comentários devem aceitar o apelido antigo comment",
			insight: metadomain.AdInsight{
				AdID:      "ad_006",
				DateStart: "2024-03-15",
				Actions: []metadomain.Action{
					{ActionType: "comment", Value: "7"},
				},
			},
			validate: func(t *testing.T, row *domain.AdReportRow) {
				assert.Equal(t, int64(7), row.PostComments)
			},
		},
		{
			name: "post_comment deve ter precedência sobre comment",
			insight: metadomain.AdInsight{
				AdID:      "ad_007",
				DateStart: "2024-03-15",
				Actions: []metadomain.Action{
					{ActionType: "comment", Value: "7"},
					{ActionType: "post_comment", Value: "3"},
				},
			},
			validate: func(t *testing.T, row *domain.AdReportRow) {
				assert.Equal(t, int64(3), row.PostComments)
			},
		},
		{
			name: "Chaves de ação desconhecidas devem ser ignoradas",
			insight: metadomain.AdInsight{
				AdID:      "ad_008",
				DateStart: "2024-03-15",
				Actions: []metadomain.Action{
					{ActionType: "video_view", Value: "5000"},
					{ActionType: "page_engagement", Value: "120"},
					{ActionType: "lead", Value: "2"},
				},
			},
			validate: func(t *testing.T, row *domain.AdReportRow) {
				assert.Equal(t, int64(2), row.Leads)
				assert.Equal(t, int64(0), row.Purchases)
				assert.Equal(t, int64(0), row.AddsToCart)
			},
		},
		{
			name: "Entrada de ação com valor não numérico deve ser descartada sem invalidar o registro",
			insight: metadomain.AdInsight{
				AdID:      "ad_009",
				DateStart: "2024-03-15",
				Actions: []metadomain.Action{
					{ActionType: "lead", Value: "abc"},
					{ActionType: "omni_purchase", Value: "4"},
				},
			},
			validate: func(t *testing.T, row *domain.AdReportRow) {
				assert.Equal(t, int64(0), row.Leads)
				assert.Equal(t, int64(4), row.Purchases)
			},
		},
		{
			name: "Variantes omni e do site devem permanecer separadas",
			insight: metadomain.AdInsight{
				AdID:      "ad_010",
				DateStart: "2024-03-15",
				Actions: []metadomain.Action{
					{ActionType: "omni_add_to_cart", Value: "10"},
					{ActionType: "add_to_cart", Value: "6"},
					{ActionType: "omni_purchase", Value: "4"},
					{ActionType: "purchase", Value: "3"},
				},
			},
			validate: func(t *testing.T, row *domain.AdReportRow) {
				assert.Equal(t, int64(10), row.AddsToCart)
				assert.Equal(t, int64(6), row.WebsiteAddsToCart)
				assert.Equal(t, int64(4), row.Purchases)
				assert.Equal(t, int64(3), row.WebsitePurchases)
			},
		},
		{
			name: "Registro sem ad_id deve ser inválido",
			insight: metadomain.AdInsight{
				DateStart: "2024-03-15",
				Spend:     "1.0",
			},
			hasError: true,
		},
		{
			name: "Registro sem date_start deve ser inválido",
			insight: metadomain.AdInsight{
				AdID:  "ad_011",
				Spend: "1.0",
			},
			hasError: true,
		},
		{
			name: "Registro com date_start fora do formato deve ser inválido",
			insight: metadomain.AdInsight{
				AdID:      "ad_012",
				DateStart: "15/03/2024",
			},
			hasError: true,
		},
		{
			name: "Métrica escalar não numérica deve invalidar o registro",
			insight: metadomain.AdInsight{
				AdID:      "ad_013",
				DateStart: "2024-03-15",
				Spend:     "n/a",
			},
			hasError: true,
		},
		{
			name: "Impressões não numéricas devem invalidar o registro",
			insight: metadomain.AdInsight{
				AdID:        "ad_014",
				DateStart:   "2024-03-15",
				Impressions: "mil",
			},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := FactoryAdReportRow(tt.insight)

			if tt.hasError {
				assert.Error(t, err)
				assert.Nil(t, row)
				return
			}

			assert.NoError(t, err)
			if assert.NotNil(t, row) && tt.validate != nil {
				tt.validate(t, row)
			}
		})
	}
}

func TestBuildActionMap(t *testing.T) {
	actions := []metadomain.Action{
		{ActionType: "lead", Value: "3"},
		{ActionType: "omni_purchase", Value: "1.5"},
		{ActionType: "video_view", Value: "invalido"},
	}

	result := buildActionMap(actions, "actions")

	assert.Len(t, result, 2)
	assert.Equal(t, 3.0, result["lead"])
	assert.Equal(t, 1.5, result["omni_purchase"])
	_, ok := result["video_view"]
	assert.False(t, ok)
}

func TestLookupAction(t *testing.T) {
	m := map[string]float64{
		"omni_purchase": 4.5,
		"purchase":      9.99,
	}

	assert.Equal(t, 4.5, lookupAction(m, "omni_purchase", "purchase"))
	assert.Equal(t, 9.99, lookupAction(m, "nao_existe", "purchase"))
	assert.Equal(t, 0.0, lookupAction(m, "nao_existe"))
}
