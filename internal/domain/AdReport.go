package domain

import (
	"time"
)

// AdReportRow representa uma linha do relatório de anúncios (um anúncio por
// dia) já normalizada para o esquema fixo das tabelas por conta. Todos os
// campos numéricos assumem zero quando a métrica não aparece na resposta da
// API; a linha nunca carrega métricas nulas.
type AdReportRow struct {
	AccountID    string    `json:"account_id"`
	AccountName  string    `json:"account_name"`
	CampaignName string    `json:"campaign_name"`
	AdsetName    string    `json:"adset_name"`
	AdID         string    `json:"ad_id"`
	AdName       string    `json:"ad_name"`
	Day          time.Time `json:"day"`

	AmountSpent  float64 `json:"amount_spent"`
	Impressions  int64   `json:"impressions"`
	Reach        int64   `json:"reach"`
	Frequency    float64 `json:"frequency"`
	CPCAll       float64 `json:"cpc_all"`
	CPCLinkClick float64 `json:"cpc_link_click"`
	CTRAll       float64 `json:"ctr_all"`
	CTRLinkClick float64 `json:"ctr_link_click"`
	CPM          float64 `json:"cpm"`
	LinkClicks   int64   `json:"link_clicks"`

	CostPerResult                     float64 `json:"cost_per_result"`
	LandingPageViews                  int64   `json:"landing_page_views"`
	CostPerLandingPageView            float64 `json:"cost_per_landing_page_view"`
	Leads                             int64   `json:"leads"`
	LeadsConversionValue              float64 `json:"leads_conversion_value"`
	MessagingConversationsStarted     int64   `json:"messaging_conversations_started"`
	AddsToCart                        int64   `json:"adds_to_cart"`
	WebsiteAddsToCart                 int64   `json:"website_adds_to_cart"`
	AddsToCartConversionValue         float64 `json:"adds_to_cart_conversion_value"`
	CheckoutsInitiated                int64   `json:"checkouts_initiated"`
	CheckoutsInitiatedConversionValue float64 `json:"checkouts_initiated_conversion_value"`
	Purchases                         int64   `json:"purchases"`
	WebsitePurchases                  int64   `json:"website_purchases"`
	PurchasesConversionValue          float64 `json:"purchases_conversion_value"`
	WebsitePurchasesConversionValue   float64 `json:"website_purchases_conversion_value"`
	PostComments                      int64   `json:"post_comments"`

	FetchedAt time.Time `json:"fetched_at"`
}
