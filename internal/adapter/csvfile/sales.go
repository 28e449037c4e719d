package csvfile

import (
	"context"
	"fmt"
	"io"

	"adkpi/internal/core/domain"
)

var (
	salesGroupColumns   = []string{"Campaign", "Campaign name", UniversalID, "Ad Set Name", "Group", "group_key"}
	salesOrderColumns   = []string{"Orders", "Purchases"}
	salesRevenueColumns = []string{"Revenue (USD)", "Revenue"}
)

// ReadSales parses a sales export. The group column is required; orders
// and revenue read as 0 when absent.
func ReadSales(ctx context.Context, r io.Reader) ([]domain.SalesRecord, error) {
	t, err := ReadTable(ctx, r)
	if err != nil {
		return nil, err
	}
	return salesRecords(t)
}

func salesRecords(t *Table) ([]domain.SalesRecord, error) {
	group := firstColumn(t, salesGroupColumns)
	if group < 0 {
		return nil, fmt.Errorf("sales file has none of the columns %q", salesGroupColumns)
	}
	orders := firstColumn(t, salesOrderColumns)
	revenue := firstColumn(t, salesRevenueColumns)

	out := make([]domain.SalesRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		key := cell(row, group)
		if key == "" {
			continue
		}
		out = append(out, domain.SalesRecord{
			GroupKey: key,
			Orders:   ParseCount(cell(row, orders)),
			Revenue:  ParseAmount(cell(row, revenue)),
		})
	}
	return out, nil
}

func firstColumn(t *Table, names []string) int {
	for _, n := range names {
		if i := t.Column(n); i >= 0 {
			return i
		}
	}
	return -1
}
