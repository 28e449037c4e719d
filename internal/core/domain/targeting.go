package domain

import (
	"slices"
	"strings"
)

// FilterMode decides whether a country filter keeps or drops the listed
// countries.
type FilterMode string

const (
	Include FilterMode = "include"
	Exclude FilterMode = "exclude"
)

// Valid reports whether m is one of Include or Exclude.
func (m FilterMode) Valid() bool {
	return m == Include || m == Exclude
}

// ParseFilterMode converts user input into a FilterMode. Matching is case
// insensitive; anything other than include or exclude is an invalid
// argument.
func ParseFilterMode(s string) (FilterMode, error) {
	m := FilterMode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", InvalidArgument("unknown filter mode %q", s)
	}
	return m, nil
}

// CountryFilter selects records by country membership.
type CountryFilter struct {
	Countries []string   `json:"countries"`
	Mode      FilterMode `json:"mode"`
}

// Keep reports whether a record from country passes the filter.
func (f CountryFilter) Keep(country string) bool {
	in := slices.Contains(f.Countries, country)
	if f.Mode == Exclude {
		return !in
	}
	return in
}
