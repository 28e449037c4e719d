package domain

import "math"

// Metrics are the five base counters of an export row. Spend is in USD.
type Metrics struct {
	AmountSpent float64 `json:"amount_spent"`
	Impressions int64   `json:"impressions"`
	LinkClicks  int64   `json:"link_clicks"`
	Reach       int64   `json:"reach"`
	Results     int64   `json:"results"`
}

// Sanitized returns m with every negative or non-finite value replaced by 0.
func (m Metrics) Sanitized() Metrics {
	return Metrics{
		AmountSpent: NonNegative(m.AmountSpent),
		Impressions: max(m.Impressions, 0),
		LinkClicks:  max(m.LinkClicks, 0),
		Reach:       max(m.Reach, 0),
		Results:     max(m.Results, 0),
	}
}

// Add accumulates o into m after sanitizing it.
func (m *Metrics) Add(o Metrics) {
	o = o.Sanitized()
	m.AmountSpent += o.AmountSpent
	m.Impressions += o.Impressions
	m.LinkClicks += o.LinkClicks
	m.Reach += o.Reach
	m.Results += o.Results
}

// KPIs derives the ratio metrics from m.
func (m Metrics) KPIs() KPIs {
	spend := NonNegative(m.AmountSpent)
	return KPIs{
		CTR:           Ratio(float64(m.LinkClicks), float64(m.Impressions)) * 100,
		CPC:           Ratio(spend, float64(m.LinkClicks)),
		CPM:           Ratio(spend, float64(m.Impressions)) * 1000,
		CostPerResult: Ratio(spend, float64(m.Results)),
	}
}

// KPIs are ratios derived from summed Metrics. CTR is a percentage, the
// others are USD.
type KPIs struct {
	CTR           float64 `json:"ctr"`
	CPC           float64 `json:"cpc"`
	CPM           float64 `json:"cpm"`
	CostPerResult float64 `json:"cost_per_result"`
}

// Ratio divides num by den and returns 0 when den is not positive or the
// quotient is not a finite non-negative number.
func Ratio(num, den float64) float64 {
	if den <= 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		return 0
	}
	return NonNegative(num / den)
}

// NonNegative maps NaN, infinities and negative values to 0.
func NonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
