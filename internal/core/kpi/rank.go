// Package kpi aggregates campaign records into groups, derives ratio KPIs
// and ranks the groups. Every function is pure and safe for concurrent use.
package kpi

import (
	"cmp"
	"slices"

	"adkpi/internal/core/domain"
)

// Filter returns the records kept by f. The input is not modified.
func Filter(records []domain.Record, f domain.CountryFilter) ([]domain.Record, error) {
	if !f.Mode.Valid() {
		return nil, domain.InvalidArgument("unknown filter mode %q", f.Mode)
	}
	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if f.Keep(r.Country) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Aggregate sums records per value of field and derives KPIs. Groups are
// returned in ascending key order.
func Aggregate(records []domain.Record, field domain.GroupField) ([]domain.Group, error) {
	if _, ok := (domain.Record{}).Field(field); !ok {
		return nil, domain.InvalidArgument("unknown group field %q", field)
	}
	sums := make(map[string]*domain.Metrics)
	for _, r := range records {
		key, _ := r.Field(field)
		m, ok := sums[key]
		if !ok {
			m = &domain.Metrics{}
			sums[key] = m
		}
		m.Add(r.Metrics)
	}
	groups := make([]domain.Group, 0, len(sums))
	for key, m := range sums {
		groups = append(groups, domain.NewGroup(key, *m))
	}
	slices.SortFunc(groups, func(a, b domain.Group) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return groups, nil
}

// RankGroups filters records by country, aggregates them by field and
// returns the topN groups by results and by spend. An empty subset yields
// two empty lists. Ties keep ascending key order.
func RankGroups(records []domain.Record, countries []string, mode domain.FilterMode, field domain.GroupField, topN int) (domain.Ranking, error) {
	empty := domain.Ranking{ByResults: []domain.Group{}, BySpend: []domain.Group{}}
	if topN <= 0 {
		return empty, domain.InvalidArgument("top_n must be positive, got %d", topN)
	}
	filtered, err := Filter(records, domain.CountryFilter{Countries: countries, Mode: mode})
	if err != nil {
		return empty, err
	}
	groups, err := Aggregate(filtered, field)
	if err != nil {
		return empty, err
	}
	if len(groups) == 0 {
		return empty, nil
	}
	return domain.Ranking{
		ByResults: Top(groups, topN, func(g domain.Group) float64 { return float64(g.Results) }),
		BySpend:   Top(groups, topN, func(g domain.Group) float64 { return g.AmountSpent }),
	}, nil
}

// Top returns up to n groups sorted by metric descending. The sort is
// stable, so equal values keep their order in groups. groups itself is
// left untouched.
func Top(groups []domain.Group, n int, metric func(domain.Group) float64) []domain.Group {
	sorted := slices.Clone(groups)
	slices.SortStableFunc(sorted, func(a, b domain.Group) int {
		return cmp.Compare(metric(b), metric(a))
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
