package main

import (
	"github.com/spf13/cobra"

	"adkpi/internal/adapter/render"
	"adkpi/internal/core/port"
)

func newFunnelCmd(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "funnel PERIOD",
		Short: "Join a period's ad groups with its sales file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.reports()
			if err != nil {
				return err
			}
			f, err := svc.Funnel(cmd.Context(), port.FunnelReq{Period: args[0], TopN: top})
			if err != nil {
				return err
			}
			return render.Funnel(cmd.OutOrStdout(), args[0], f)
		},
	}
	cmd.Flags().IntVar(&top, "top", 0, "rows to print, 0 for all")
	return cmd
}
