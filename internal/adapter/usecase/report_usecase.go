package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"adkpi/internal/config/configs"
	"adkpi/internal/core/domain"
	"adkpi/internal/core/kpi"
	"adkpi/internal/core/port"
)

// ReportUseCase builds dashboard reports from the datasets of a source.
// It implements port.ReportUseCase.
type ReportUseCase struct {
	source port.DatasetSource
	cfg    configs.Report
	logger *slog.Logger

	// now is replaced in tests.
	now func() time.Time
}

// NewReportUseCase creates a use case reading from source with the given
// report defaults.
func NewReportUseCase(source port.DatasetSource, cfg configs.Report, logger *slog.Logger) *ReportUseCase {
	return &ReportUseCase{
		source: source,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// ListDatasets returns the catalog.
func (u *ReportUseCase) ListDatasets(ctx context.Context) ([]domain.DatasetInfo, error) {
	return u.source.List(ctx)
}

// Overview builds the full dashboard tab for a scope.
func (u *ReportUseCase) Overview(ctx context.Context, req port.OverviewReq) (*port.Overview, error) {
	sc, err := u.load(ctx, req.Scope)
	if err != nil {
		return nil, err
	}
	focus := u.cfg.FocusCountries
	countries := kpi.CountrySummary(sc.records)
	rest, err := kpi.Filter(sc.records, domain.CountryFilter{Countries: focus, Mode: domain.Exclude})
	if err != nil {
		return nil, err
	}

	rankings := make([]port.LabeledRanking, 0, len(focus)+1)
	filters := make([]domain.CountryFilter, 0, len(focus)+1)
	labels := make([]string, 0, len(focus)+1)
	for _, c := range focus {
		filters = append(filters, domain.CountryFilter{Countries: []string{c}, Mode: domain.Include})
		labels = append(labels, c)
	}
	filters = append(filters, domain.CountryFilter{Countries: focus, Mode: domain.Exclude})
	labels = append(labels, port.OtherCountries)
	for i, f := range filters {
		r, err := kpi.RankGroups(sc.records, f.Countries, f.Mode, domain.GroupByKey, u.cfg.TopN)
		if err != nil {
			return nil, err
		}
		rankings = append(rankings, port.LabeledRanking{Label: labels[i], Filter: f, Ranking: r})
	}

	ov := &port.Overview{
		ID:             uuid.NewString(),
		Scope:          req.Scope.Label(),
		Datasets:       sc.datasets,
		GeneratedAt:    u.now().UTC(),
		Cleaning:       sc.cleaning,
		Warnings:       sc.warnings,
		Threshold:      u.cfg.SpendThreshold,
		FocusCountries: focus,
		TopCountries:   kpi.AboveThreshold(countries, u.cfg.SpendThreshold),
		Focus:          kpi.Select(countries, focus),
		RestOfWorld:    kpi.Total(rest, port.OtherCountries),
		Rankings:       rankings,
	}
	u.logger.Debug("overview built",
		slog.String("id", ov.ID),
		slog.String("scope", ov.Scope),
		slog.Int("records", len(sc.records)))
	return ov, nil
}

// Countries returns the country summary of a scope above the spend
// threshold.
func (u *ReportUseCase) Countries(ctx context.Context, req port.CountriesReq) ([]domain.Group, error) {
	threshold := u.cfg.SpendThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}
	if math.IsNaN(threshold) || threshold < 0 {
		return nil, domain.InvalidArgument("threshold must be a non-negative number, got %v", threshold)
	}
	sc, err := u.load(ctx, req.Scope)
	if err != nil {
		return nil, err
	}
	return kpi.AboveThreshold(kpi.CountrySummary(sc.records), threshold), nil
}

// RankGroups runs the ranking pipeline over a scope.
func (u *ReportUseCase) RankGroups(ctx context.Context, req port.RankReq) (*domain.Ranking, error) {
	mode := req.Mode
	if mode == "" {
		mode = domain.Exclude
	}
	field := req.Field
	if field == "" {
		field = domain.GroupByKey
	}
	topN := req.TopN
	if topN == 0 {
		topN = u.cfg.TopN
	}
	sc, err := u.load(ctx, req.Scope)
	if err != nil {
		return nil, err
	}
	r, err := kpi.RankGroups(sc.records, req.Countries, mode, field, topN)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Funnel joins a period's groups with the period's sales file. Rows are
// ordered by spend; TopN > 0 keeps only the first TopN rows.
func (u *ReportUseCase) Funnel(ctx context.Context, req port.FunnelReq) (*domain.Funnel, error) {
	if req.TopN < 0 {
		return nil, domain.InvalidArgument("top must not be negative, got %d", req.TopN)
	}
	sc, err := u.load(ctx, port.Scope{Period: req.Period})
	if err != nil {
		return nil, err
	}
	sales, err := u.source.LoadSales(ctx, req.Period)
	if err != nil {
		return nil, fmt.Errorf("load sales of %q: %w", req.Period, err)
	}
	groups, err := kpi.Aggregate(sc.records, domain.GroupByKey)
	if err != nil {
		return nil, err
	}
	f := kpi.JoinFunnel(groups, sales)
	if req.TopN > 0 && len(f.Rows) > req.TopN {
		f.Rows = f.Rows[:req.TopN]
	}
	return &f, nil
}

// Compare aggregates two periods by the same field and pairs their
// groups.
func (u *ReportUseCase) Compare(ctx context.Context, req port.CompareReq) ([]domain.GroupDelta, error) {
	if req.From == "" || req.To == "" {
		return nil, domain.InvalidArgument("compare needs two periods")
	}
	field := req.Field
	if field == "" {
		field = domain.GroupByKey
	}

	var from, to []domain.Group
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		from, err = u.groups(gctx, req.From, field)
		return err
	})
	g.Go(func() error {
		var err error
		to, err = u.groups(gctx, req.To, field)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return kpi.Compare(from, to), nil
}

func (u *ReportUseCase) groups(ctx context.Context, period string, field domain.GroupField) ([]domain.Group, error) {
	sc, err := u.load(ctx, port.Scope{Period: period})
	if err != nil {
		return nil, err
	}
	return kpi.Aggregate(sc.records, field)
}
