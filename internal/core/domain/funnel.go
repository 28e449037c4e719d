package domain

// SalesRecord is a row of a sales export keyed by the same campaign
// identifier as the ad exports.
type SalesRecord struct {
	GroupKey string  `json:"group_key"`
	Orders   int64   `json:"orders"`
	Revenue  float64 `json:"revenue"`
}

// FunnelRow follows one group from impressions down to orders.
type FunnelRow struct {
	Key         string  `json:"key"`
	AmountSpent float64 `json:"amount_spent"`
	Impressions int64   `json:"impressions"`
	LinkClicks  int64   `json:"link_clicks"`
	Results     int64   `json:"results"`
	Orders      int64   `json:"orders"`
	Revenue     float64 `json:"revenue"`

	ClickRate    float64 `json:"click_rate"`
	ResultRate   float64 `json:"result_rate"`
	OrderRate    float64 `json:"order_rate"`
	CostPerOrder float64 `json:"cost_per_order"`
	ROAS         float64 `json:"roas"`

	Matched bool `json:"matched"`
}

// Funnel is the join of a period's ad groups with its sales.
type Funnel struct {
	Rows           []FunnelRow `json:"rows"`
	UnmatchedSales []string    `json:"unmatched_sales"`
}
