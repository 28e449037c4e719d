package domain

import "strings"

// Record is one row of an ad platform export: the delivery of a single
// campaign or ad set in a single country over the export's date range.
// GroupKey holds the ad set name or the campaign name depending on the
// schema the export was loaded with.
type Record struct {
	GroupKey string `json:"group_key"`
	Country  string `json:"country"`
	Metrics
}

// GroupField names the Record field rows are aggregated by.
type GroupField string

const (
	GroupByKey     GroupField = "group_key"
	GroupByCountry GroupField = "country"
)

// ParseGroupField converts user input into a GroupField. An empty string
// selects GroupByKey.
func ParseGroupField(s string) (GroupField, error) {
	switch GroupField(strings.ToLower(strings.TrimSpace(s))) {
	case "", GroupByKey:
		return GroupByKey, nil
	case GroupByCountry:
		return GroupByCountry, nil
	default:
		return "", InvalidArgument("unknown group field %q", s)
	}
}

// Field returns the value of the grouping field f. ok is false for an
// unknown field.
func (r Record) Field(f GroupField) (value string, ok bool) {
	switch f {
	case GroupByKey:
		return r.GroupKey, true
	case GroupByCountry:
		return r.Country, true
	default:
		return "", false
	}
}
