package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"adkpi/internal/adapter/csvfile"
	"adkpi/internal/adapter/usecase"
	"adkpi/internal/config"
)

// app carries what every subcommand needs. Configuration and the logger
// are set up before any subcommand runs; the catalog is only read by the
// commands that need it.
type app struct {
	envFile     string
	catalogPath string

	cfg    config.Config
	logger *slog.Logger
}

// main is the entry point of the adkpi CLI. Commands run with a context
// that is cancelled on SIGINT or SIGTERM.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "adkpi",
		Short:         "Campaign KPI reports from ad platform CSV exports",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "optional dotenv file read before the environment")
	root.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "dataset catalog (overrides CATALOG_PATH)")

	root.AddCommand(
		newServeCmd(a),
		newReportCmd(a),
		newFunnelCmd(a),
		newCleanCmd(a),
		newCombineCmd(a),
		newSeedCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.LoadFrom(a.envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.catalogPath != "" {
		cfg.Catalog.Path = a.catalogPath
	}
	a.cfg = cfg
	a.logger = cfg.Log.New(cmd.ErrOrStderr())
	return nil
}

// catalog reads the dataset catalog named by the configuration.
func (a *app) catalog() (*config.Catalog, error) {
	return config.LoadCatalog(a.cfg.Catalog.Path, a.cfg.Catalog.DataDir)
}

// source opens the catalog-backed dataset source.
func (a *app) source() (*csvfile.Source, error) {
	cat, err := a.catalog()
	if err != nil {
		return nil, err
	}
	return csvfile.NewSource(cat, a.logger), nil
}

// reports wires the CSV source into the report use case.
func (a *app) reports() (*usecase.ReportUseCase, error) {
	src, err := a.source()
	if err != nil {
		return nil, err
	}
	return usecase.NewReportUseCase(src, a.cfg.Report, a.logger), nil
}
