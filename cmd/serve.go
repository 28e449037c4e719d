package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	httpadapter "adkpi/internal/adapter/http"
	"adkpi/internal/adapter/usecase"
)

func newServeCmd(a *app) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context(), watch)
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", true, "reload the catalog when it changes")
	return cmd
}

// serve starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (a *app) serve(ctx context.Context, watch bool) error {
	src, err := a.source()
	if err != nil {
		return err
	}
	if watch {
		go func() {
			if err := src.WatchCatalog(ctx, a.cfg.Catalog.Path, a.cfg.Catalog.DataDir); err != nil {
				a.logger.Error("catalog watcher stopped", slog.Any("error", err))
			}
		}()
	}
	svc := usecase.NewReportUseCase(src, a.cfg.Report, a.logger)
	handler := httpadapter.NewHandler(svc, a.logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", a.cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", slog.Int("port", int(a.cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	a.logger.Info("server gracefully stopped")
	return nil
}
