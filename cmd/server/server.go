package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pokeforge/pokeforge-api/internal/clients/pokeapi"
	"github.com/pokeforge/pokeforge-api/internal/config"
	"github.com/pokeforge/pokeforge-api/internal/handlers/rest"
	"github.com/pokeforge/pokeforge-api/internal/pkg/clock"
	redisclient "github.com/pokeforge/pokeforge-api/internal/redis"
	creationrepo "github.com/pokeforge/pokeforge-api/internal/repositories/creation"
	"github.com/pokeforge/pokeforge-api/internal/services/catalog"
	creationsvc "github.com/pokeforge/pokeforge-api/internal/services/creation"
)

var portOverride int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the pokeforge API server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&portOverride, "port", 0, "HTTP server port (overrides POKEFORGE_PORT)")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if portOverride != 0 {
		cfg.Port = portOverride
	}

	redisClient, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return err
	}

	apiClient, err := pokeapi.New(&pokeapi.Config{BaseURL: cfg.PokeAPIBaseURL})
	if err != nil {
		return err
	}

	catalogSvc, err := catalog.New(&catalog.Config{
		PokeAPI:     apiClient,
		Redis:       redisClient,
		Locale:      cfg.Locale,
		CacheTTL:    cfg.CacheTTL,
		FanOutLimit: cfg.FanOutLimit,
	})
	if err != nil {
		return err
	}

	var repo creationrepo.Repository
	if cfg.DatabaseURL != "" {
		db, err := creationrepo.OpenDB(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		repo, err = creationrepo.NewPostgresRepository(&creationrepo.PostgresConfig{DB: db})
		if err != nil {
			return err
		}
	} else {
		slog.Warn("No database configured, creations are stored in memory")
		repo = creationrepo.NewInMemory(clock.New())
	}

	creationSvc, err := creationsvc.New(&creationsvc.Config{
		Catalog:    catalogSvc,
		Repository: repo,
	})
	if err != nil {
		return err
	}

	handler, err := rest.NewHandler(&rest.HandlerConfig{
		Catalog:  catalogSvc,
		Creation: creationSvc,
	})
	if err != nil {
		return err
	}

	srv := rest.NewServer(cfg.Port, handler)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", cfg.Port, "locale", cfg.Locale)
		if err := srv.Start(); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down HTTP server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			return err
		}

		slog.Info("Server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}
