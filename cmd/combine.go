package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"adkpi/internal/adapter/csvfile"
)

func newCombineCmd(a *app) *cobra.Command {
	var period, out string
	cmd := &cobra.Command{
		Use:   "combine --period NAME --out FILE",
		Short: "Merge the cleaned exports of a period into one file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.combine(cmd.Context(), period, out)
		},
	}
	cmd.Flags().StringVar(&period, "period", "", "catalog period to combine")
	cmd.Flags().StringVar(&out, "out", "", "output CSV file")
	_ = cmd.MarkFlagRequired("period")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// combine cleans every catalogued export of period and writes them as
// one table in the universal layout.
func (a *app) combine(ctx context.Context, period, out string) error {
	cat, err := a.catalog()
	if err != nil {
		return err
	}
	entries := cat.Period(period)
	if len(entries) == 0 {
		return fmt.Errorf("no datasets in period %q", period)
	}

	parts := make([]csvfile.Part, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	for i, e := range entries {
		g.Go(func() error {
			schema, err := csvfile.SchemaByName(e.Schema)
			if err != nil {
				return fmt.Errorf("dataset %q: %w", e.ID, err)
			}
			t, err := csvfile.ReadFile(gctx, e.Path)
			if err != nil {
				return err
			}
			cleaned, _ := csvfile.Bind(t, schema, e.ID).Clean(t)
			parts[i] = csvfile.Part{Table: cleaned, Schema: schema}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	combined := csvfile.Combine(parts...)
	if err = combined.WriteFile(out); err != nil {
		return err
	}
	a.logger.Info("period combined",
		slog.String("period", period),
		slog.Int("datasets", len(parts)),
		slog.Int("rows", len(combined.Rows)),
		slog.String("out", out))
	return nil
}
