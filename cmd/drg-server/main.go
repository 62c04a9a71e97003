package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/drgsuite/drgsuite/internal/config"
	"github.com/drgsuite/drgsuite/internal/domain/audit"
	"github.com/drgsuite/drgsuite/internal/domain/billing"
	"github.com/drgsuite/drgsuite/internal/domain/cdi"
	"github.com/drgsuite/drgsuite/internal/domain/coding"
	"github.com/drgsuite/drgsuite/internal/domain/identity"
	"github.com/drgsuite/drgsuite/internal/domain/reporting"
	"github.com/drgsuite/drgsuite/internal/platform/middleware"
	"github.com/drgsuite/drgsuite/internal/platform/nphies"
	"github.com/drgsuite/drgsuite/internal/platform/store"
)

const version = "0.1.0"

// allTables lists every collection the server persists. Postgres backends
// get their schema ensured for each at startup.
var allTables = []string{
	identity.PatientTable,
	identity.EncounterTable,
	coding.JobTable,
	coding.AnalyticsTable,
	cdi.Table,
	billing.ClaimTable,
	billing.PaymentTable,
	audit.Table,
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "drg-server",
		Short: "Clinical coding and claims demo backend",
	}
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo dataset and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if !cfg.UsePostgres() {
				return fmt.Errorf("seed requires DATABASE_URL; the in-memory backend seeds at serve time")
			}

			ctx := context.Background()
			backend, err := store.NewPGBackend(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer backend.Close()
			if err := backend.EnsureSchema(ctx, allTables...); err != nil {
				return err
			}

			app := buildApp(cfg, backend, logger)
			if err := app.ensureSeeds(ctx); err != nil {
				return err
			}
			logger.Info().Msg("demo dataset loaded")
			return nil
		},
	}
}

func newLogger() zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger
}

// app bundles the wired services and handlers.
type app struct {
	auditTrail  *audit.Trail
	identitySvc *identity.Service
	codingSvc   *coding.Service
	cdiSvc      *cdi.Service
	billingSvc  *billing.Service
	reportSvc   *reporting.Service
}

func buildApp(cfg *config.Config, backend store.Backend, logger zerolog.Logger) *app {
	trail := audit.NewTrail(backend, logger)
	identitySvc := identity.NewService(backend)

	var connector nphies.Connector = nphies.NewMockConnector()
	if cfg.NphiesBaseURL != "" {
		connector = nphies.NewClient(cfg.NphiesBaseURL, cfg.NphiesClientID, cfg.NphiesClientSecret)
	}
	engine := coding.NewEngine(
		rand.New(rand.NewSource(time.Now().UnixNano())),
		time.Duration(cfg.NLPLatencyMS)*time.Millisecond,
	)
	codingSvc := coding.NewService(backend, identitySvc, trail, engine, connector, logger)

	return &app{
		auditTrail:  trail,
		identitySvc: identitySvc,
		codingSvc:   codingSvc,
		cdiSvc:      cdi.NewService(backend, trail),
		billingSvc:  billing.NewService(backend, trail, logger),
		reportSvc:   reporting.NewService(backend, trail),
	}
}

func (a *app) registerRoutes(api *echo.Group) {
	audit.NewHandler(a.auditTrail).RegisterRoutes(api)
	identity.NewHandler(a.identitySvc).RegisterRoutes(api)
	coding.NewHandler(a.codingSvc).RegisterRoutes(api)
	cdi.NewHandler(a.cdiSvc).RegisterRoutes(api)
	billing.NewHandler(a.billingSvc).RegisterRoutes(api)
	reporting.NewHandler(a.reportSvc).RegisterRoutes(api)
}

func (a *app) ensureSeeds(ctx context.Context) error {
	if err := a.identitySvc.EnsureSeed(ctx); err != nil {
		return err
	}
	if err := a.codingSvc.EnsureSeed(ctx); err != nil {
		return err
	}
	if err := a.cdiSvc.EnsureSeed(ctx); err != nil {
		return err
	}
	if err := a.billingSvc.EnsureSeed(ctx); err != nil {
		return err
	}
	return a.auditTrail.EnsureSeed(ctx)
}

func runServer() error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	ctx := context.Background()

	var backend store.Backend
	if cfg.UsePostgres() {
		pg, err := store.NewPGBackend(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pg.Close()
		if err := pg.EnsureSchema(ctx, allTables...); err != nil {
			logger.Fatal().Err(err).Msg("failed to ensure schema")
		}
		backend = pg
		logger.Info().Msg("connected to database")
	} else {
		backend = store.NewMemoryBackend()
		logger.Info().Msg("using in-memory store")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RequestTimeout(30 * time.Second))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	apiV1 := e.Group("/api/v1")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	app := buildApp(cfg, backend, logger)
	app.registerRoutes(apiV1)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version,
		})
	})

	if cfg.SeedDemoData {
		if err := app.ensureSeeds(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed demo data")
		}
		logger.Info().Msg("demo dataset ready")
	}

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
