package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/grampanchayat/internal/database"
	"github.com/deppfellow/grampanchayat/internal/handler"
	"github.com/deppfellow/grampanchayat/internal/repository"
	"github.com/deppfellow/grampanchayat/internal/router"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/deppfellow/grampanchayat/internal/service"
	"github.com/spf13/cobra"
)

const (
	migrateTimeout  = 2 * time.Minute
	shutdownTimeout = 30 * time.Second
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and background workers (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	cfg, loggerService, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer loggerService.Shutdown()

	if cfg.Primary.Env != "local" {
		ctx, cancel := context.WithTimeout(parent, migrateTimeout)
		err := database.Migrate(ctx, &log, cfg)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)
	services, err := service.NewServices(srv, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create services")
	}

	created, err := services.Users.EnsureAdmin(parent)
	if err != nil {
		log.Error().Err(err).Msg("failed to ensure admin user")
	} else if created {
		log.Warn().Str("email", cfg.Admin.Email).Msg("default admin created, change its password")
	}

	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers, services)
	srv.SetupHTTPServer(r)

	if err := srv.StartBackground(); err != nil {
		log.Fatal().Err(err).Msg("failed to start background workers")
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}
