package kpi

import (
	"cmp"
	"slices"

	"adkpi/internal/core/domain"
)

// JoinFunnel left joins groups with sales on the group key. Sales rows are
// summed per key first. Rows come back by spend, highest first; sales keys
// without an ad group are listed in UnmatchedSales.
func JoinFunnel(groups []domain.Group, sales []domain.SalesRecord) domain.Funnel {
	type totals struct {
		orders  int64
		revenue float64
	}
	byKey := make(map[string]*totals)
	for _, s := range sales {
		t, ok := byKey[s.GroupKey]
		if !ok {
			t = &totals{}
			byKey[s.GroupKey] = t
		}
		t.orders += max(s.Orders, 0)
		t.revenue += domain.NonNegative(s.Revenue)
	}

	ordered := Top(groups, -1, func(g domain.Group) float64 { return g.AmountSpent })
	rows := make([]domain.FunnelRow, 0, len(ordered))
	seen := make(map[string]bool, len(ordered))
	for _, g := range ordered {
		seen[g.Key] = true
		row := domain.FunnelRow{
			Key:         g.Key,
			AmountSpent: g.AmountSpent,
			Impressions: g.Impressions,
			LinkClicks:  g.LinkClicks,
			Results:     g.Results,
			ClickRate:   g.CTR,
			ResultRate:  domain.Ratio(float64(g.Results), float64(g.LinkClicks)) * 100,
		}
		if t, ok := byKey[g.Key]; ok {
			row.Matched = true
			row.Orders = t.orders
			row.Revenue = t.revenue
		}
		row.OrderRate = domain.Ratio(float64(row.Orders), float64(row.Results)) * 100
		row.CostPerOrder = domain.Ratio(row.AmountSpent, float64(row.Orders))
		row.ROAS = domain.Ratio(row.Revenue, row.AmountSpent)
		rows = append(rows, row)
	}

	unmatched := make([]string, 0)
	for k := range byKey {
		if !seen[k] {
			unmatched = append(unmatched, k)
		}
	}
	slices.Sort(unmatched)
	return domain.Funnel{Rows: rows, UnmatchedSales: unmatched}
}

// Compare pairs groups of two periods by key. Keys present in only one
// period get a zero group on the other side. Deltas are ordered by current
// spend, highest first, then by key.
func Compare(previous, current []domain.Group) []domain.GroupDelta {
	prev := make(map[string]domain.Group, len(previous))
	for _, g := range previous {
		prev[g.Key] = g
	}
	deltas := make([]domain.GroupDelta, 0, len(current)+len(previous))
	seen := make(map[string]bool, len(current))
	for _, c := range current {
		seen[c.Key] = true
		p, ok := prev[c.Key]
		if !ok {
			p = domain.NewGroup(c.Key, domain.Metrics{})
		}
		deltas = append(deltas, delta(p, c))
	}
	for _, p := range previous {
		if !seen[p.Key] {
			deltas = append(deltas, delta(p, domain.NewGroup(p.Key, domain.Metrics{})))
		}
	}
	slices.SortStableFunc(deltas, func(a, b domain.GroupDelta) int {
		if c := cmp.Compare(b.Current.AmountSpent, a.Current.AmountSpent); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return deltas
}

func delta(p, c domain.Group) domain.GroupDelta {
	return domain.GroupDelta{
		Key:           c.Key,
		Previous:      p,
		Current:       c,
		SpendChange:   change(p.AmountSpent, c.AmountSpent),
		ResultsChange: change(float64(p.Results), float64(c.Results)),
	}
}

// change is the signed percentage change from p to c, 0 when p is 0.
func change(p, c float64) float64 {
	if p <= 0 {
		return 0
	}
	return (c - p) / p * 100
}
