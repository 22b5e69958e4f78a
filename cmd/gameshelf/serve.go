package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/dom/gameshelf/internal/api"
	"github.com/dom/gameshelf/internal/api/handlers"
	"github.com/dom/gameshelf/internal/i18n"
	"github.com/dom/gameshelf/internal/repository/postgres"
	"github.com/dom/gameshelf/internal/service"
	"github.com/dom/gameshelf/internal/session"
	"github.com/dom/gameshelf/internal/web"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	var skipMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), skipMigrate)
		},
	}
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not create or update tables on startup")

	return cmd
}

func runServe(parent context.Context, skipMigrate bool) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	d, err := loadDeps(ctx)
	if err != nil {
		return err
	}
	defer d.close()

	logger := d.logger

	if !skipMigrate {
		if err := postgres.Migrate(d.db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	services, err := service.NewServices(d.repos, d.cfg, logger)
	if err != nil {
		return err
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		return err
	}
	translator, err := i18n.New(d.cfg.DefaultLocale)
	if err != nil {
		return err
	}
	view := handlers.NewView(renderer, translator, logger.Named("view"), d.cfg.EnableGames)

	router := api.NewRouter(services, view, d.cfg, logger)

	sweeper := session.NewSweeper(d.repos.Session, d.cfg.SessionSweepInterval, logger.Named("sweeper"))
	go sweeper.Run(ctx)

	srv := &http.Server{
		Addr:         "0.0.0.0:" + d.cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("port", d.cfg.Port), zap.String("environment", d.cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
