package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arcdex/arcdex/internal/config"
	"github.com/arcdex/arcdex/internal/dataset"
	"github.com/arcdex/arcdex/internal/handlers/httpapi"
	orchestrator "github.com/arcdex/arcdex/internal/orchestrators/codex"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the browser front end",
	Long:  `Start the HTTP server exposing the JSON API and the static item browser.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	cfg, err := config.LoadServer()
	if err != nil {
		return err
	}

	store, err := dataset.Load(cfg.DataDir)
	if err != nil {
		return err
	}

	service, err := orchestrator.New(&orchestrator.Config{Store: store})
	if err != nil {
		return err
	}

	handler, err := httpapi.New(&httpapi.Config{
		Service:   service,
		StaticDir: cfg.StaticDir,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", cfg.Addr, "data_dir", cfg.DataDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down http server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed, forcing close", "error", err)
			return srv.Close()
		}

		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}
