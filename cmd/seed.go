package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"adkpi/internal/demo"
)

func newSeedCmd(a *app) *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "seed DIR",
		Short: "Write demo exports and a catalog into DIR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			if err := demo.Seed(dir, seed); err != nil {
				return err
			}
			a.logger.Info("demo workspace written",
				slog.String("catalog", filepath.Join(dir, demo.CatalogFile)))
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	return cmd
}
