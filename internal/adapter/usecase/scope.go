package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"adkpi/internal/core/domain"
	"adkpi/internal/core/port"
)

// scoped is the merged content of every dataset in a scope.
type scoped struct {
	datasets []domain.DatasetInfo
	records  []domain.Record
	cleaning domain.CleaningStats
	warnings []domain.Warning
}

func (u *ReportUseCase) load(ctx context.Context, s port.Scope) (*scoped, error) {
	switch {
	case s.Dataset != "" && s.Period != "":
		return nil, domain.InvalidArgument("scope names both dataset %q and period %q", s.Dataset, s.Period)
	case s.Dataset != "":
		ds, err := u.source.Load(ctx, s.Dataset)
		if err != nil {
			return nil, err
		}
		return merge(ds), nil
	case s.Period != "":
		return u.loadPeriod(ctx, s.Period)
	default:
		return nil, domain.InvalidArgument("scope names neither a dataset nor a period")
	}
}

// loadPeriod loads the datasets of a period concurrently. Records keep
// catalog order.
func (u *ReportUseCase) loadPeriod(ctx context.Context, period string) (*scoped, error) {
	list, err := u.source.List(ctx)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, d := range list {
		if d.Period == period {
			ids = append(ids, d.ID)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no datasets in period %q", domain.ErrUnknownDataset, period)
	}

	loaded := make([]*domain.Dataset, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			ds, err := u.source.Load(gctx, id)
			if err != nil {
				return fmt.Errorf("period %q: %w", period, err)
			}
			loaded[i] = ds
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return merge(loaded...), nil
}

// merge concatenates datasets into fresh slices; the datasets themselves
// may be shared with a cache and are not modified.
func merge(datasets ...*domain.Dataset) *scoped {
	sc := &scoped{
		datasets: make([]domain.DatasetInfo, 0, len(datasets)),
		warnings: []domain.Warning{},
	}
	n := 0
	for _, ds := range datasets {
		n += len(ds.Records)
	}
	sc.records = make([]domain.Record, 0, n)
	for _, ds := range datasets {
		sc.datasets = append(sc.datasets, ds.DatasetInfo)
		sc.records = append(sc.records, ds.Records...)
		sc.cleaning.Add(ds.Cleaning)
		sc.warnings = append(sc.warnings, ds.Warnings...)
	}
	return sc
}
