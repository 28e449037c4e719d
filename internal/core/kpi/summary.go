package kpi

import (
	"slices"

	"adkpi/internal/core/domain"
)

// CountrySummary aggregates records per country without filtering and
// orders the result by spend, highest first.
func CountrySummary(records []domain.Record) []domain.Group {
	groups, _ := Aggregate(records, domain.GroupByCountry)
	return Top(groups, -1, func(g domain.Group) float64 { return g.AmountSpent })
}

// AboveThreshold keeps the groups whose spend is strictly greater than
// threshold.
func AboveThreshold(groups []domain.Group, threshold float64) []domain.Group {
	out := make([]domain.Group, 0, len(groups))
	for _, g := range groups {
		if g.AmountSpent > threshold {
			out = append(out, g)
		}
	}
	return out
}

// Select returns the groups whose key is in keys, in the order of keys.
// Keys without a group are skipped.
func Select(groups []domain.Group, keys []string) []domain.Group {
	out := make([]domain.Group, 0, len(keys))
	for _, k := range keys {
		i := slices.IndexFunc(groups, func(g domain.Group) bool { return g.Key == k })
		if i >= 0 {
			out = append(out, groups[i])
		}
	}
	return out
}

// Total folds every record into a single group named label. Its KPIs are
// derived from the summed totals, not averaged per row.
func Total(records []domain.Record, label string) domain.Group {
	var m domain.Metrics
	for _, r := range records {
		m.Add(r.Metrics)
	}
	return domain.NewGroup(label, m)
}
