// Package render prints reports as terminal tables.
package render

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// countryNames covers the markets the exports usually contain. Other codes
// print as they are.
var countryNames = map[string]string{
	"AE": "United Arab Emirates",
	"AU": "Australia",
	"AZ": "Azerbaijan",
	"CA": "Canada",
	"DE": "Germany",
	"FR": "France",
	"GB": "United Kingdom",
	"NL": "Netherlands",
	"TR": "Turkey",
	"US": "United States",
	"UZ": "Uzbekistan",
}

// CountryName returns the English name of an ISO country code, or the code
// itself when it is not known.
func CountryName(code string) string {
	if name, ok := countryNames[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

// Money formats USD with two decimals and thousands separators: $1,234.56.
func Money(v float64) string {
	if v < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -v)
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// Percent formats a percentage with two decimals: 1.23%.
func Percent(v float64) string {
	return humanize.FormatFloat("#,###.##", v) + "%"
}

// Count formats an integer with thousands separators: 12,345.
func Count(v int64) string {
	return humanize.Comma(v)
}

// Ratio formats a multiplier such as ROAS: 2.50x.
func Ratio(v float64) string {
	return humanize.FormatFloat("#,###.##", v) + "x"
}
