package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adkpi/internal/adapter/usecase"
	"adkpi/internal/config/configs"
	"adkpi/internal/core/domain"
	"adkpi/internal/core/port"
	"adkpi/internal/core/port/mocks"
)

func record(group, country string, spend float64, results int64) domain.Record {
	return domain.Record{
		GroupKey: group,
		Country:  country,
		Metrics:  domain.Metrics{AmountSpent: spend, Impressions: 1000, LinkClicks: 10, Results: results},
	}
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	datasets := map[string]*domain.Dataset{
		"bv2": {
			DatasetInfo: domain.DatasetInfo{ID: "bv2", Period: "p1"},
			Records: []domain.Record{
				record("A", "TR", 100, 5),
				record("B", "AZ", 150, 2),
				record("C", "US", 20, 7),
			},
			Warnings: []domain.Warning{},
		},
		"tt": {
			DatasetInfo: domain.DatasetInfo{ID: "tt", Period: "p2"},
			Records:     []domain.Record{record("A", "TR", 50, 1)},
			Warnings:    []domain.Warning{},
		},
	}

	src := mocks.NewMockDatasetSource(t)
	src.EXPECT().List(mock.Anything).Return([]domain.DatasetInfo{
		datasets["bv2"].DatasetInfo, datasets["tt"].DatasetInfo,
	}, nil).Maybe()
	src.EXPECT().Load(mock.Anything, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, id string) (*domain.Dataset, error) {
			switch id {
			case "broken":
				return nil, errors.New("disk on fire")
			case "gone":
				return nil, domain.ErrSourceNotFound
			}
			ds, ok := datasets[id]
			if !ok {
				return nil, domain.ErrUnknownDataset
			}
			return ds, nil
		}).Maybe()
	src.EXPECT().LoadSales(mock.Anything, "p1").
		Return([]domain.SalesRecord{{GroupKey: "B", Orders: 3, Revenue: 300}}, nil).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := usecase.NewReportUseCase(src, configs.Report{
		SpendThreshold: 50,
		FocusCountries: []string{"TR", "AZ"},
		TopN:           10,
	}, logger)
	srv := httptest.NewServer(NewHandler(svc, logger).Router())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string, out any) int {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK && out != nil {
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func groupKeys(groups []domain.Group) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Key)
	}
	return out
}

func TestListDatasets(t *testing.T) {
	srv := newServer(t)
	var list []domain.DatasetInfo
	require.Equal(t, http.StatusOK, get(t, srv, "/api/v1/datasets", &list))
	require.Len(t, list, 2)
	assert.Equal(t, "bv2", list[0].ID)
}

func TestOverviewEndpoint(t *testing.T) {
	srv := newServer(t)
	var ov port.Overview
	require.Equal(t, http.StatusOK, get(t, srv, "/api/v1/datasets/bv2/overview", &ov))
	assert.Equal(t, "bv2", ov.Scope)
	assert.Equal(t, []string{"AZ", "TR"}, groupKeys(ov.TopCountries))
	assert.Equal(t, []string{"TR", "AZ"}, groupKeys(ov.Focus))
	require.Len(t, ov.Rankings, 3)
	assert.Equal(t, []string{"C"}, groupKeys(ov.Rankings[2].ByResults))

	require.Equal(t, http.StatusOK, get(t, srv, "/api/v1/periods/p2/overview", &ov))
	assert.Equal(t, "period:p2", ov.Scope)
}

func TestCountriesEndpoint(t *testing.T) {
	srv := newServer(t)
	var groups []domain.Group
	require.Equal(t, http.StatusOK, get(t, srv, "/api/v1/datasets/bv2/countries", &groups))
	assert.Equal(t, []string{"AZ", "TR"}, groupKeys(groups))

	require.Equal(t, http.StatusOK, get(t, srv, "/api/v1/datasets/bv2/countries?threshold=0", &groups))
	assert.Equal(t, []string{"AZ", "TR", "US"}, groupKeys(groups))

	assert.Equal(t, http.StatusBadRequest, get(t, srv, "/api/v1/datasets/bv2/countries?threshold=lots", nil))
}

func TestGroupsEndpoint(t *testing.T) {
	srv := newServer(t)

	var r domain.Ranking
	require.Equal(t, http.StatusOK, get(t, srv, "/api/v1/datasets/bv2/groups", &r))
	assert.Equal(t, []string{"C", "A", "B"}, groupKeys(r.ByResults))
	assert.Equal(t, []string{"B", "A", "C"}, groupKeys(r.BySpend))

	require.Equal(t, http.StatusOK, get(t, srv, "/api/v1/datasets/bv2/groups?countries=TR,AZ&top=1", &r))
	assert.Equal(t, []string{"A"}, groupKeys(r.ByResults))
	assert.Equal(t, []string{"B"}, groupKeys(r.BySpend))

	require.Equal(t, http.StatusOK, get(t, srv, "/api/v1/datasets/bv2/groups?countries=TR&countries=AZ&mode=exclude", &r))
	assert.Equal(t, []string{"C"}, groupKeys(r.BySpend))

	require.Equal(t, http.StatusOK, get(t, srv, "/api/v1/datasets/bv2/groups?field=country&top=2", &r))
	assert.Equal(t, []string{"AZ", "TR"}, groupKeys(r.BySpend))
}

func TestGroupsEndpointEmptyResult(t *testing.T) {
	srv := newServer(t)
	resp, err := http.Get(srv.URL + "/api/v1/datasets/bv2/groups?countries=ZZ")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"by_results":[],"by_spend":[]}`, string(body))
}

func TestErrorMapping(t *testing.T) {
	srv := newServer(t)
	cases := map[string]int{
		"/api/v1/datasets/bv2/groups?mode=only":    http.StatusBadRequest,
		"/api/v1/datasets/bv2/groups?top=0":        http.StatusBadRequest,
		"/api/v1/datasets/bv2/groups?top=x":        http.StatusBadRequest,
		"/api/v1/datasets/bv2/groups?field=region": http.StatusBadRequest,
		"/api/v1/datasets/nope/overview":           http.StatusNotFound,
		"/api/v1/datasets/gone/overview":           http.StatusNotFound,
		"/api/v1/periods/p9/groups":                http.StatusNotFound,
		"/api/v1/datasets/broken/countries":        http.StatusInternalServerError,
		"/api/v1/compare?from=p1":                  http.StatusBadRequest,
		"/api/v1/datasets/bv2/funnel":              http.StatusNotFound,
	}
	for path, want := range cases {
		assert.Equal(t, want, get(t, srv, path, nil), path)
	}
}

func TestFunnelEndpoint(t *testing.T) {
	srv := newServer(t)
	var f domain.Funnel
	require.Equal(t, http.StatusOK, get(t, srv, "/api/v1/periods/p1/funnel?top=1", &f))
	require.Len(t, f.Rows, 1)
	assert.Equal(t, "B", f.Rows[0].Key)
	assert.Equal(t, int64(3), f.Rows[0].Orders)
	assert.InDelta(t, 2.0, f.Rows[0].ROAS, 1e-9)
	assert.Empty(t, f.UnmatchedSales)
}

func TestCompareEndpoint(t *testing.T) {
	srv := newServer(t)
	var deltas []domain.GroupDelta
	require.Equal(t, http.StatusOK, get(t, srv, "/api/v1/compare?from=p1&to=p2", &deltas))
	require.Len(t, deltas, 3)
	assert.Equal(t, "A", deltas[0].Key)
	assert.InDelta(t, -50.0, deltas[0].SpendChange, 1e-9)
}
