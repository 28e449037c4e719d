package port

import (
	"context"
	"time"

	"adkpi/internal/core/domain"
)

// ReportUseCase defines the reporting operations behind the dashboard.
// Every method is read-only; contract violations are reported with
// domain.ErrInvalidArgument.
type ReportUseCase interface {
	// ListDatasets returns the catalog.
	ListDatasets(ctx context.Context) ([]domain.DatasetInfo, error)

	// Overview builds the full dashboard tab for a scope: cleaning
	// summary, country tables, totals excluding the focus countries and
	// group rankings.
	Overview(ctx context.Context, req OverviewReq) (*Overview, error)

	// Countries returns the country summary of a scope after the spend
	// threshold post-filter.
	Countries(ctx context.Context, req CountriesReq) ([]domain.Group, error)

	// RankGroups runs the ranking pipeline over a scope.
	RankGroups(ctx context.Context, req RankReq) (*domain.Ranking, error)

	// Funnel joins a period's ad groups with its sales file.
	Funnel(ctx context.Context, req FunnelReq) (*domain.Funnel, error)

	// Compare lines up the groups of two periods.
	Compare(ctx context.Context, req CompareReq) ([]domain.GroupDelta, error)
}

// OtherCountries labels the ranking over every country outside the focus
// list and the totals of those countries.
const OtherCountries = "other"

// Scope selects the records a report runs on: a single dataset or every
// dataset of a period. Exactly one field must be set.
type Scope struct {
	Dataset string
	Period  string
}

// Label returns a short human readable name for the scope.
func (s Scope) Label() string {
	if s.Period != "" {
		return "period:" + s.Period
	}
	return s.Dataset
}

type OverviewReq struct {
	Scope Scope
}

type CountriesReq struct {
	Scope Scope
	// Threshold keeps countries whose spend is strictly greater. Nil uses
	// the configured default.
	Threshold *float64
}

// RankReq parameters one ranking. An empty Mode means Exclude, so an
// empty Countries list keeps every record, and an empty Field groups by
// key. A zero TopN selects the configured ranking size; negative values
// are invalid.
type RankReq struct {
	Scope     Scope
	Countries []string
	Mode      domain.FilterMode
	Field     domain.GroupField
	TopN      int
}

type FunnelReq struct {
	Period string
	// TopN limits the rows by spend; 0 keeps every row.
	TopN int
}

type CompareReq struct {
	From  string
	To    string
	Field domain.GroupField
}

// Overview is one dashboard tab. It is a DTO used by the HTTP and
// terminal layers.
type Overview struct {
	ID          string               `json:"id"`
	Scope       string               `json:"scope"`
	Datasets    []domain.DatasetInfo `json:"datasets"`
	GeneratedAt time.Time            `json:"generated_at"`

	Cleaning domain.CleaningStats `json:"cleaning"`
	Warnings []domain.Warning     `json:"warnings"`

	Threshold      float64        `json:"threshold"`
	FocusCountries []string       `json:"focus_countries"`
	TopCountries   []domain.Group `json:"top_countries"`
	Focus          []domain.Group `json:"focus"`
	RestOfWorld    domain.Group   `json:"rest_of_world"`

	Rankings []LabeledRanking `json:"rankings"`
}

// LabeledRanking is a ranking together with the filter that produced it.
type LabeledRanking struct {
	Label  string               `json:"label"`
	Filter domain.CountryFilter `json:"filter"`
	domain.Ranking
}
