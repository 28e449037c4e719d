package csvfile

import "adkpi/internal/core/domain"

// Clean returns a copy of t without the rows whose country is empty. This
// covers the subtotal row platforms prepend to exports as well as any
// other row without a country. The statistics include the spend carried
// by the dropped rows.
func (b Binding) Clean(t *Table) (*Table, domain.CleaningStats) {
	out := &Table{Header: t.Header, Rows: make([][]string, 0, len(t.Rows))}
	stats := domain.CleaningStats{OriginalRows: len(t.Rows)}
	for _, row := range t.Rows {
		if cell(row, b.country) == "" {
			stats.DroppedSpend += ParseAmount(cell(row, b.spend))
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	stats.CleanedRows = len(out.Rows)
	stats.DroppedRows = stats.OriginalRows - stats.CleanedRows
	return out, stats
}
