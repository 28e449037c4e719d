package csvfile

import (
	"fmt"

	"adkpi/internal/core/domain"
)

// UniversalID is the group column of combined period files.
const UniversalID = "Universal_Campaign_ID"

// UnknownGroup is the group key of rows loaded from an export that lacks
// its group column.
const UnknownGroup = "unknown"

// Schema declares the column names of one export layout.
type Schema struct {
	Name        string
	Country     string
	Group       string
	AmountSpent string
	Impressions string
	LinkClicks  string
	Reach       string
	Results     string
}

func metricSchema(name, group string) Schema {
	return Schema{
		Name:        name,
		Country:     "Country",
		Group:       group,
		AmountSpent: "Amount spent (USD)",
		Impressions: "Impressions",
		LinkClicks:  "Link clicks",
		Reach:       "Reach",
		Results:     "Results",
	}
}

var (
	// AdSetSchema is the layout of ad set level exports.
	AdSetSchema = metricSchema("ad_set", "Ad Set Name")
	// CampaignSchema is the layout of campaign level exports.
	CampaignSchema = metricSchema("campaign", "Campaign name")
	// UniversalSchema is the layout written by Combine.
	UniversalSchema = metricSchema("universal", UniversalID)
)

// SchemaByName returns the schema registered under name.
func SchemaByName(name string) (Schema, error) {
	for _, s := range []Schema{AdSetSchema, CampaignSchema, UniversalSchema} {
		if s.Name == name {
			return s, nil
		}
	}
	return Schema{}, domain.InvalidArgument("unknown schema %q", name)
}

// Binding is a Schema resolved against a table header.
type Binding struct {
	schema   Schema
	country  int
	group    int
	spend    int
	impr     int
	clicks   int
	reach    int
	results  int
	Warnings []domain.Warning
}

// Bind resolves the columns of s in t. Absent columns produce a
// missing_column warning and read as zero (metrics), UnknownGroup (group)
// or empty (country, which makes cleaning drop the row). source labels the
// warnings.
func Bind(t *Table, s Schema, source string) Binding {
	b := Binding{schema: s, Warnings: []domain.Warning{}}
	lookup := func(column, effect string) int {
		i := t.Column(column)
		if i < 0 {
			b.Warnings = append(b.Warnings, domain.Warning{
				Code:    domain.WarningMissingColumn,
				Source:  source,
				Column:  column,
				Message: fmt.Sprintf("column %q not found, %s", column, effect),
			})
		}
		return i
	}
	b.country = lookup(s.Country, "every row lacks a country and is dropped")
	b.group = lookup(s.Group, fmt.Sprintf("rows are grouped as %q", UnknownGroup))
	b.spend = lookup(s.AmountSpent, "treated as 0")
	b.impr = lookup(s.Impressions, "treated as 0")
	b.clicks = lookup(s.LinkClicks, "treated as 0")
	b.reach = lookup(s.Reach, "treated as 0")
	b.results = lookup(s.Results, "treated as 0")
	return b
}

// Record converts one row.
func (b Binding) Record(row []string) domain.Record {
	group := UnknownGroup
	if b.group >= 0 {
		group = cell(row, b.group)
	}
	return domain.Record{
		GroupKey: group,
		Country:  cell(row, b.country),
		Metrics: domain.Metrics{
			AmountSpent: ParseAmount(cell(row, b.spend)),
			Impressions: ParseCount(cell(row, b.impr)),
			LinkClicks:  ParseCount(cell(row, b.clicks)),
			Reach:       ParseCount(cell(row, b.reach)),
			Results:     ParseCount(cell(row, b.results)),
		},
	}
}

// Records converts every row of t.
func (b Binding) Records(t *Table) []domain.Record {
	out := make([]domain.Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, b.Record(row))
	}
	return out
}
