package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"adkpi/internal/adapter/render"
	"adkpi/internal/core/port"
)

const periodPrefix = "period:"

func newReportCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "report [dataset | period:NAME ...]",
		Short: "Print dashboard overviews",
		Long: "Print the overview of each dataset or period given. Without arguments every\n" +
			"catalogued dataset is reported.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("unknown format %q, want text or json", format)
			}
			return a.report(cmd.Context(), cmd.OutOrStdout(), args, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	return cmd
}

func (a *app) report(ctx context.Context, w io.Writer, args []string, format string) error {
	svc, err := a.reports()
	if err != nil {
		return err
	}
	scopes := make([]port.Scope, 0, len(args))
	for _, arg := range args {
		scopes = append(scopes, parseScope(arg))
	}
	if len(scopes) == 0 {
		list, err := svc.ListDatasets(ctx)
		if err != nil {
			return err
		}
		for _, d := range list {
			scopes = append(scopes, port.Scope{Dataset: d.ID})
		}
	}

	overviews := make([]*port.Overview, 0, len(scopes))
	for _, s := range scopes {
		ov, err := svc.Overview(ctx, port.OverviewReq{Scope: s})
		if err != nil {
			return fmt.Errorf("%s: %w", s.Label(), err)
		}
		overviews = append(overviews, ov)
	}

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(overviews)
	}
	for i, ov := range overviews {
		if i > 0 {
			if _, err = io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err = render.Overview(w, ov); err != nil {
			return err
		}
	}
	return nil
}

// parseScope reads "period:NAME" as a period and anything else as a
// dataset id.
func parseScope(arg string) port.Scope {
	if name, ok := strings.CutPrefix(arg, periodPrefix); ok {
		return port.Scope{Period: name}
	}
	return port.Scope{Dataset: arg}
}
