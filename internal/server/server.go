// Package server defines the Server container that composes the app's
// main dependencies and owns their lifecycle:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - database pool
//   - redis client, public content cache and background jobs
//   - object storage and email client
//   - dependency health monitor
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/grampanchayat/internal/config"
	"github.com/deppfellow/grampanchayat/internal/database"
	"github.com/deppfellow/grampanchayat/internal/lib/cache"
	"github.com/deppfellow/grampanchayat/internal/lib/email"
	"github.com/deppfellow/grampanchayat/internal/lib/job"
	"github.com/deppfellow/grampanchayat/internal/lib/monitor"
	"github.com/deppfellow/grampanchayat/internal/lib/storage"
	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	loggerPkg "github.com/deppfellow/grampanchayat/internal/logger"
)

const redisPingTimeout = 5 * time.Second

// Server is the application container that holds shared resources.
// It is not the HTTP server itself.
type Server struct {
	Config        *config.Config
	Logger        *zerolog.Logger
	LoggerService *loggerPkg.LoggerService

	DB    *database.Database
	Redis *redis.Client

	// Storage is the Supabase bucket uploads go to.
	Storage storage.ObjectStore

	// Cache holds rendered public content. It is Redis backed when Redis
	// answered at startup, in-memory otherwise.
	Cache cache.Store

	// Job is nil when Redis was unreachable at startup.
	Job *job.JobService

	// Email is nil when no Resend API key is configured.
	Email *email.Client

	Monitor *monitor.Monitor

	httpServer *http.Server
}

// New constructs a Server and connects to its dependencies.
//
// PostgreSQL is required. Redis is optional: without it the cache falls back
// to memory and background work runs inline.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	db, err := database.New(cfg, logger, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Address,
	})
	if loggerService.GetApplication() != nil {
		redisClient.AddHook(nrredis.NewHook(redisClient.Options()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	redisUp := true
	if err := redisClient.Ping(ctx).Err(); err != nil {
		redisUp = false
		logger.Error().Err(err).Msg("failed to connect to Redis, continuing without Redis")
	}

	s := &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
		Redis:         redisClient,
		Storage:       storage.NewSupabaseStore(&cfg.Storage, logger),
		Email:         email.NewClient(cfg, logger),
	}

	if redisUp {
		s.Cache = cache.NewRedisStore(redisClient, config.ServiceName+":")
		s.Job = job.NewJobService(logger, cfg)
		s.Job.InitHandlers(s.Email, s.Storage)
	} else {
		s.Cache = cache.NewMemoryStore(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	}

	s.Monitor = monitor.New(cfg.Observability.HealthChecks, logger, loggerService.GetApplication(), s.healthChecks()...)

	return s, nil
}

func (s *Server) healthChecks() []monitor.Check {
	return []monitor.Check{
		{Name: "database", Required: true, Probe: s.DB.Ping},
		{Name: "redis", Probe: func(ctx context.Context) error { return s.Redis.Ping(ctx).Err() }},
		{Name: "storage", Probe: s.Storage.Ping},
	}
}

// StartBackground starts the job workers (when Redis is available) and the
// scheduled health monitor.
func (s *Server) StartBackground() error {
	if s.Job != nil {
		if err := s.Job.Start(); err != nil {
			return fmt.Errorf("failed to start job server: %w", err)
		}
	}
	if err := s.Monitor.Start(); err != nil {
		return fmt.Errorf("failed to start health monitor: %w", err)
	}
	return nil
}

// SetupHTTPServer configures the internal net/http server around handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It blocks until the server stops.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting requests, waits for in-flight ones until ctx
// expires, then releases every dependency.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shutdown HTTP server: %w", err))
		}
	}

	s.Monitor.Stop()

	if s.Job != nil {
		s.Job.Stop()
	}

	if err := s.Redis.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close redis client: %w", err))
	}

	if err := s.DB.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close database connection: %w", err))
	}

	return errors.Join(errs...)
}
