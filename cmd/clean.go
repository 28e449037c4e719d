package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"adkpi/internal/adapter/csvfile"
)

func newCleanCmd(a *app) *cobra.Command {
	var schema string
	cmd := &cobra.Command{
		Use:   "clean IN OUT",
		Short: "Drop rows without a country from an export",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.clean(cmd.Context(), schema, args[0], args[1])
		},
	}
	cmd.Flags().StringVar(&schema, "schema", csvfile.AdSetSchema.Name, "column layout: ad_set or campaign")
	return cmd
}

func (a *app) clean(ctx context.Context, schemaName, in, out string) error {
	schema, err := csvfile.SchemaByName(schemaName)
	if err != nil {
		return err
	}
	t, err := csvfile.ReadFile(ctx, in)
	if err != nil {
		return err
	}
	b := csvfile.Bind(t, schema, in)
	for _, w := range b.Warnings {
		a.logger.Warn("column missing", slog.String("file", in), slog.String("column", w.Column))
	}
	cleaned, stats := b.Clean(t)
	if err = cleaned.WriteFile(out); err != nil {
		return err
	}
	a.logger.Info("export cleaned",
		slog.String("in", in),
		slog.String("out", out),
		slog.Int("original_rows", stats.OriginalRows),
		slog.Int("cleaned_rows", stats.CleanedRows),
		slog.Int("dropped_rows", stats.DroppedRows),
		slog.Float64("dropped_spend", stats.DroppedSpend))
	return nil
}
