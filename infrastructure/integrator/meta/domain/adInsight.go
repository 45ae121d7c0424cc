package metadomain

// Action representa uma entrada das coleções "actions", "action_values" e
// "cost_per_action_type" da Graph API. O valor chega sempre como string.
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// AdInsight representa um registro bruto de insights no nível de anúncio
// (um anúncio por dia), conforme retornado pela Graph API. Métricas numéricas
// chegam como strings e só são convertidas na normalização.
type AdInsight struct {
	AccountID    string `json:"account_id"`
	AccountName  string `json:"account_name"`
	CampaignName string `json:"campaign_name"`
	AdsetName    string `json:"adset_name"`
	AdID         string `json:"ad_id"`
	AdName       string `json:"ad_name"`
	DateStart    string `json:"date_start"`
	DateStop     string `json:"date_stop"`

	Spend                  string `json:"spend"`
	Impressions            string `json:"impressions"`
	Reach                  string `json:"reach"`
	Frequency              string `json:"frequency"`
	CPC                    string `json:"cpc"`
	CTR                    string `json:"ctr"`
	CPM                    string `json:"cpm"`
	InlineLinkClicks       string `json:"inline_link_clicks"`
	InlineLinkClickCTR     string `json:"inline_link_click_ctr"`
	CostPerInlineLinkClick string `json:"cost_per_inline_link_click"`

	Actions        []Action `json:"actions"`
	ActionValues   []Action `json:"action_values"`
	CostPerActions []Action `json:"cost_per_action_type"`
}
