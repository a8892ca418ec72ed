package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/leadflow/lead-system/internal/api"
	"github.com/leadflow/lead-system/internal/api/metrics"
	"github.com/leadflow/lead-system/internal/core/service"
	"github.com/leadflow/lead-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// serveCmd runs the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Opens the configured lead store and session storage, seeds the demo
dataset when enabled, and serves the API until SIGINT or SIGTERM.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b, err := openBackends(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open backends: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := b.Close(closeCtx); err != nil {
			log.Warn().Err(err).Msg("closing backends")
		}
	}()

	leads := service.NewLeadService(b.leads, logger.Component("leads"),
		service.WithLatency(cfg.Leads.Latency),
		service.WithPageSize(cfg.Leads.PageSize),
		service.WithObserver(metrics.NewRecorder()),
	)

	sessions, err := service.NewSessionService(ctx, b.sessions, service.SessionConfig{
		Demo: service.DemoIdentity{
			Email:     cfg.Session.DemoEmail,
			Password:  cfg.Session.DemoPassword,
			FirstName: "Demo",
			LastName:  "User",
		},
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
	}, logger.Component("sessions"))
	if err != nil {
		return fmt.Errorf("session service: %w", err)
	}

	e := api.NewRouter(api.Dependencies{
		Leads:     leads,
		Sessions:  sessions,
		JWTSecret: cfg.JWTSecret,
		Logger:    logger.Component("http"),
		Readiness: b.readiness,
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
