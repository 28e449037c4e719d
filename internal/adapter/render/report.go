package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"adkpi/internal/core/domain"
	"adkpi/internal/core/port"
)

// Overview writes a dashboard tab to w.
func Overview(w io.Writer, ov *port.Overview) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Campaign report: "+ov.Scope) + "\n")
	ids := make([]string, 0, len(ov.Datasets))
	for _, d := range ov.Datasets {
		ids = append(ids, d.Title)
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%s | generated %s",
		strings.Join(ids, ", "), ov.GeneratedAt.Format(time.RFC3339))) + "\n")

	c := ov.Cleaning
	b.WriteString(fmt.Sprintf("Rows: %s read, %s kept, %s dropped without a country (%s spend)\n",
		Count(int64(c.OriginalRows)), Count(int64(c.CleanedRows)), Count(int64(c.DroppedRows)), Money(c.DroppedSpend)))
	for _, warning := range ov.Warnings {
		b.WriteString(warnStyle.Render(fmt.Sprintf("! %s: %s", warning.Source, warning.Message)) + "\n")
	}

	section(&b, fmt.Sprintf("Countries with spend above %s", Money(ov.Threshold)))
	groups(&b, "Country", ov.TopCountries, CountryName)

	section(&b, "Focus countries")
	groups(&b, "Country", ov.Focus, CountryName)

	section(&b, "Other countries combined")
	groups(&b, "Scope", []domain.Group{ov.RestOfWorld}, func(string) string {
		if len(ov.FocusCountries) == 0 {
			return "All countries"
		}
		return "All except " + strings.Join(names(ov.FocusCountries), ", ")
	})

	for _, r := range ov.Rankings {
		label := rankingLabel(r.Label)
		section(&b, "Top ad groups by results: "+label)
		groups(&b, "Ad group", r.ByResults, identity)
		section(&b, "Top ad groups by spend: "+label)
		groups(&b, "Ad group", r.BySpend, identity)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Funnel writes the sales funnel of a period to w.
func Funnel(w io.Writer, period string, f *domain.Funnel) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sales funnel: "+period) + "\n")
	if len(f.Rows) == 0 {
		b.WriteString(mutedStyle.Render("No ad groups in this period.") + "\n")
	} else {
		t := newTable("Ad group", "Spend", "Clicks", "Results", "Orders", "Revenue",
			"Result rate", "Order rate", "Cost/Order", "ROAS")
		for _, r := range f.Rows {
			orders, revenue := "-", "-"
			if r.Matched {
				orders, revenue = Count(r.Orders), Money(r.Revenue)
			}
			t.Row(r.Key, Money(r.AmountSpent), Count(r.LinkClicks), Count(r.Results), orders, revenue,
				Percent(r.ResultRate), Percent(r.OrderRate), Money(r.CostPerOrder), Ratio(r.ROAS))
		}
		b.WriteString(t.String() + "\n")
	}
	if len(f.UnmatchedSales) > 0 {
		b.WriteString(warnStyle.Render("Sales without ad group: "+strings.Join(f.UnmatchedSales, ", ")) + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func section(b *strings.Builder, title string) {
	b.WriteString(sectionStyle.Render(title) + "\n")
}

func groups(b *strings.Builder, keyHeader string, gs []domain.Group, name func(string) string) {
	if len(gs) == 0 {
		b.WriteString(mutedStyle.Render("No data.") + "\n")
		return
	}
	b.WriteString(groupTable(keyHeader, gs, name) + "\n")
}

func rankingLabel(label string) string {
	if label == port.OtherCountries {
		return "Other countries"
	}
	return CountryName(label)
}

func names(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		out = append(out, CountryName(c))
	}
	return out
}
