package domain

// Group is the aggregate of every record sharing one grouping value.
type Group struct {
	Key string `json:"key"`
	Metrics
	KPIs
}

// NewGroup builds a Group from summed metrics, deriving its KPIs.
func NewGroup(key string, m Metrics) Group {
	m = m.Sanitized()
	return Group{Key: key, Metrics: m, KPIs: m.KPIs()}
}

// Ranking holds the two top-N lists produced for one filtered subset.
type Ranking struct {
	ByResults []Group `json:"by_results"`
	BySpend   []Group `json:"by_spend"`
}

// GroupDelta compares a key across two periods. Percentage changes are 0
// when the previous value is 0.
type GroupDelta struct {
	Key           string  `json:"key"`
	Previous      Group   `json:"previous"`
	Current       Group   `json:"current"`
	SpendChange   float64 `json:"spend_change_pct"`
	ResultsChange float64 `json:"results_change_pct"`
}
