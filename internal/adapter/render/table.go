package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"adkpi/internal/core/domain"
)

var groupHeaders = []string{"Spend", "Impressions", "Clicks", "Results", "CTR", "CPC", "CPM", "Cost/Result"}

// newTable returns a table whose first column is text and the rest
// right-aligned numbers.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			default:
				return numberStyle
			}
		})
}

func groupRow(label string, g domain.Group) []string {
	return []string{
		label,
		Money(g.AmountSpent),
		Count(g.Impressions),
		Count(g.LinkClicks),
		Count(g.Results),
		Percent(g.CTR),
		Money(g.CPC),
		Money(g.CPM),
		Money(g.CostPerResult),
	}
}

// groupTable renders groups under keyHeader. name maps a group key to the
// label shown in the first column.
func groupTable(keyHeader string, groups []domain.Group, name func(string) string) string {
	t := newTable(append([]string{keyHeader}, groupHeaders...)...)
	for _, g := range groups {
		t.Row(groupRow(name(g.Key), g)...)
	}
	return t.String()
}

func identity(s string) string { return s }
