package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adkpi/internal/config/configs"
	"adkpi/internal/core/domain"
	"adkpi/internal/core/port"
	"adkpi/internal/core/port/mocks"
)

func rec(group, country string, spend float64, impr, clicks, reach, results int64) domain.Record {
	return domain.Record{
		GroupKey: group,
		Country:  country,
		Metrics: domain.Metrics{
			AmountSpent: spend,
			Impressions: impr,
			LinkClicks:  clicks,
			Reach:       reach,
			Results:     results,
		},
	}
}

func fixtures() map[string]*domain.Dataset {
	return map[string]*domain.Dataset{
		"bv2": {
			DatasetInfo: domain.DatasetInfo{ID: "bv2", Period: "p1", Schema: "ad_set"},
			Records: []domain.Record{
				rec("A", "TR", 100, 1000, 10, 500, 5),
				rec("B", "AZ", 50, 500, 5, 250, 2),
				rec("C", "US", 200, 2000, 20, 1000, 1),
				rec("D", "DE", 30, 300, 3, 100, 4),
				rec("A", "US", 10, 100, 1, 50, 1),
			},
			Cleaning: domain.CleaningStats{OriginalRows: 6, CleanedRows: 5, DroppedRows: 1, DroppedSpend: 12.5},
			Warnings: []domain.Warning{},
		},
		"tt": {
			DatasetInfo: domain.DatasetInfo{ID: "tt", Period: "p2", Schema: "campaign"},
			Records: []domain.Record{
				rec("A", "TR", 40, 400, 4, 200, 2),
				rec("X", "AZ", 60, 600, 6, 300, 3),
			},
			Cleaning: domain.CleaningStats{OriginalRows: 2, CleanedRows: 2},
			Warnings: []domain.Warning{{Code: domain.WarningMissingColumn, Source: "tt", Column: "Reach"}},
		},
		"meta": {
			DatasetInfo: domain.DatasetInfo{ID: "meta", Period: "p2", Schema: "campaign"},
			Records:     []domain.Record{rec("A", "TR", 10, 100, 1, 50, 1)},
			Cleaning:    domain.CleaningStats{OriginalRows: 1, CleanedRows: 1},
			Warnings:    []domain.Warning{},
		},
	}
}

// newSource wires a mock source serving fixtures. Expectations are
// optional so each test only states what it checks.
func newSource(t *testing.T) *mocks.MockDatasetSource {
	src := mocks.NewMockDatasetSource(t)
	data := fixtures()
	src.EXPECT().List(mock.Anything).Return([]domain.DatasetInfo{
		data["bv2"].DatasetInfo, data["tt"].DatasetInfo, data["meta"].DatasetInfo,
	}, nil).Maybe()
	src.EXPECT().Load(mock.Anything, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, id string) (*domain.Dataset, error) {
			ds, ok := data[id]
			if !ok {
				return nil, domain.ErrUnknownDataset
			}
			return ds, nil
		}).Maybe()
	return src
}

func newUseCase(src port.DatasetSource) *ReportUseCase {
	u := NewReportUseCase(src, configs.Report{
		SpendThreshold: 40,
		FocusCountries: []string{"TR", "AZ"},
		TopN:           10,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	u.now = func() time.Time {
		return time.Date(2025, 3, 1, 15, 0, 0, 0, time.FixedZone("TRT", 3*3600))
	}
	return u
}

func keys(groups []domain.Group) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Key)
	}
	return out
}

func TestOverview(t *testing.T) {
	u := newUseCase(newSource(t))

	ov, err := u.Overview(context.Background(), port.OverviewReq{Scope: port.Scope{Dataset: "bv2"}})
	require.NoError(t, err)

	assert.NotEmpty(t, ov.ID)
	assert.Equal(t, "bv2", ov.Scope)
	assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), ov.GeneratedAt)
	assert.Equal(t, 1, ov.Cleaning.DroppedRows)
	assert.InDelta(t, 12.5, ov.Cleaning.DroppedSpend, 1e-9)
	assert.Equal(t, 40.0, ov.Threshold)

	assert.Equal(t, []string{"US", "TR", "AZ"}, keys(ov.TopCountries))
	assert.Equal(t, []string{"TR", "AZ"}, keys(ov.Focus))

	rest := ov.RestOfWorld
	assert.Equal(t, port.OtherCountries, rest.Key)
	assert.InDelta(t, 240.0, rest.AmountSpent, 1e-9)
	assert.Equal(t, int64(6), rest.Results)
	assert.InDelta(t, 1.0, rest.CTR, 1e-9)

	require.Len(t, ov.Rankings, 3)
	assert.Equal(t, "TR", ov.Rankings[0].Label)
	assert.Equal(t, domain.Include, ov.Rankings[0].Filter.Mode)
	assert.Equal(t, []string{"A"}, keys(ov.Rankings[0].ByResults))
	assert.Equal(t, []string{"B"}, keys(ov.Rankings[1].BySpend))

	other := ov.Rankings[2]
	assert.Equal(t, port.OtherCountries, other.Label)
	assert.Equal(t, domain.CountryFilter{Countries: []string{"TR", "AZ"}, Mode: domain.Exclude}, other.Filter)
	assert.Equal(t, []string{"D", "A", "C"}, keys(other.ByResults))
	assert.Equal(t, []string{"C", "D", "A"}, keys(other.BySpend))
}

func TestOverviewPeriodMergesDatasets(t *testing.T) {
	u := newUseCase(newSource(t))

	ov, err := u.Overview(context.Background(), port.OverviewReq{Scope: port.Scope{Period: "p2"}})
	require.NoError(t, err)

	assert.Equal(t, "period:p2", ov.Scope)
	require.Len(t, ov.Datasets, 2)
	assert.Equal(t, "tt", ov.Datasets[0].ID)
	assert.Equal(t, "meta", ov.Datasets[1].ID)
	assert.Equal(t, 3, ov.Cleaning.OriginalRows)
	require.Len(t, ov.Warnings, 1)
	assert.Equal(t, "Reach", ov.Warnings[0].Column)

	tr := ov.Rankings[0]
	require.Len(t, tr.BySpend, 1)
	assert.InDelta(t, 50.0, tr.BySpend[0].AmountSpent, 1e-9)
	assert.Zero(t, ov.RestOfWorld.AmountSpent)
	assert.Empty(t, ov.Rankings[2].ByResults)
}

func TestScopeValidation(t *testing.T) {
	u := newUseCase(mocks.NewMockDatasetSource(t))
	ctx := context.Background()

	_, err := u.Overview(ctx, port.OverviewReq{})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = u.Countries(ctx, port.CountriesReq{Scope: port.Scope{Dataset: "bv2", Period: "p1"}})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestUnknownScopes(t *testing.T) {
	u := newUseCase(newSource(t))
	ctx := context.Background()

	_, err := u.Overview(ctx, port.OverviewReq{Scope: port.Scope{Period: "p9"}})
	require.ErrorIs(t, err, domain.ErrUnknownDataset)

	_, err = u.RankGroups(ctx, port.RankReq{Scope: port.Scope{Dataset: "nope"}})
	require.ErrorIs(t, err, domain.ErrUnknownDataset)
}

func TestPeriodLoadFailure(t *testing.T) {
	src := mocks.NewMockDatasetSource(t)
	src.EXPECT().List(mock.Anything).Return([]domain.DatasetInfo{
		{ID: "a", Period: "p"}, {ID: "b", Period: "p"},
	}, nil)
	src.EXPECT().Load(mock.Anything, "a").Return(&domain.Dataset{}, nil).Maybe()
	src.EXPECT().Load(mock.Anything, "b").Return(nil, domain.ErrSourceNotFound)

	_, err := newUseCase(src).Countries(context.Background(), port.CountriesReq{Scope: port.Scope{Period: "p"}})
	require.ErrorIs(t, err, domain.ErrSourceNotFound)
}

func TestCountries(t *testing.T) {
	u := newUseCase(newSource(t))
	ctx := context.Background()
	scope := port.Scope{Dataset: "bv2"}

	groups, err := u.Countries(ctx, port.CountriesReq{Scope: scope})
	require.NoError(t, err)
	assert.Equal(t, []string{"US", "TR", "AZ"}, keys(groups))

	threshold := 100.0
	groups, err = u.Countries(ctx, port.CountriesReq{Scope: scope, Threshold: &threshold})
	require.NoError(t, err)
	assert.Equal(t, []string{"US"}, keys(groups))

	threshold = -1
	_, err = u.Countries(ctx, port.CountriesReq{Scope: scope, Threshold: &threshold})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestRankGroups(t *testing.T) {
	u := newUseCase(newSource(t))
	ctx := context.Background()

	r, err := u.RankGroups(ctx, port.RankReq{Scope: port.Scope{Period: "p2"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "X"}, keys(r.ByResults))
	assert.Equal(t, []string{"X", "A"}, keys(r.BySpend))

	r, err = u.RankGroups(ctx, port.RankReq{
		Scope:     port.Scope{Dataset: "bv2"},
		Countries: []string{"US"},
		Mode:      domain.Include,
		Field:     domain.GroupByKey,
		TopN:      1,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, keys(r.BySpend))
	assert.Equal(t, []string{"A"}, keys(r.ByResults))

	_, err = u.RankGroups(ctx, port.RankReq{Scope: port.Scope{Dataset: "bv2"}, Mode: "only"})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = u.RankGroups(ctx, port.RankReq{Scope: port.Scope{Dataset: "bv2"}, TopN: -2})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestFunnel(t *testing.T) {
	src := newSource(t)
	src.EXPECT().LoadSales(mock.Anything, "p1").Return([]domain.SalesRecord{
		{GroupKey: "A", Orders: 2, Revenue: 330},
		{GroupKey: "Z", Orders: 1, Revenue: 10},
	}, nil)
	u := newUseCase(src)

	f, err := u.Funnel(context.Background(), port.FunnelReq{Period: "p1", TopN: 2})
	require.NoError(t, err)
	require.Len(t, f.Rows, 2)
	assert.Equal(t, "C", f.Rows[0].Key)
	assert.False(t, f.Rows[0].Matched)

	a := f.Rows[1]
	assert.Equal(t, "A", a.Key)
	assert.True(t, a.Matched)
	assert.Equal(t, int64(2), a.Orders)
	assert.InDelta(t, 3.0, a.ROAS, 1e-9)
	assert.InDelta(t, 55.0, a.CostPerOrder, 1e-9)
	assert.Equal(t, []string{"Z"}, f.UnmatchedSales)

	_, err = u.Funnel(context.Background(), port.FunnelReq{Period: "p1", TopN: -1})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestCompare(t *testing.T) {
	u := newUseCase(newSource(t))

	deltas, err := u.Compare(context.Background(), port.CompareReq{From: "p1", To: "p2"})
	require.NoError(t, err)

	got := make([]string, 0, len(deltas))
	for _, d := range deltas {
		got = append(got, d.Key)
	}
	assert.Equal(t, []string{"X", "A", "B", "C", "D"}, got)
	assert.InDelta(t, (50.0-110.0)/110.0*100, deltas[1].SpendChange, 1e-9)
	assert.Zero(t, deltas[0].SpendChange)
	assert.Zero(t, deltas[2].Current.AmountSpent)

	_, err = u.Compare(context.Background(), port.CompareReq{From: "p1"})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = u.Compare(context.Background(), port.CompareReq{From: "p1", To: "p2", Field: "region"})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}
