package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medassist/medassist/internal/config"
	"github.com/medassist/medassist/internal/domain/caregiver"
	"github.com/medassist/medassist/internal/domain/dose"
	"github.com/medassist/medassist/internal/domain/identity"
	"github.com/medassist/medassist/internal/domain/medication"
	"github.com/medassist/medassist/internal/platform/db"
	"github.com/medassist/medassist/internal/platform/middleware"
	"github.com/medassist/medassist/internal/platform/schema"
	"github.com/medassist/medassist/internal/platform/seed"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "medassist-server",
		Short: "Medication Assistant API Server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(indexesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the medication assistant API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func seedCmd() *cobra.Command {
	cfg := seed.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write deterministic demo data to the document store",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			appCfg, err := config.Load()
			if err != nil {
				return err
			}

			client, database, err := mustConnect(appCfg)
			if err != nil {
				return err
			}
			defer client.Disconnect(context.Background())

			seeder := seed.NewSeeder(
				identity.NewUserRepoMongo(database),
				medication.NewMedicationRepoMongo(database),
				dose.NewDoseEventRepoMongo(database),
			)

			summary, err := seeder.Run(context.Background(), cfg)
			if err != nil {
				return err
			}

			logger.Info().
				Int("users", summary.Users).
				Int("medications", summary.Medications).
				Int("dose_events", summary.DoseEvents).
				Msg("seed complete")
			return nil
		},
	}

	cmd.Flags().IntVar(&cfg.PatientCount, "patients", cfg.PatientCount, "number of patients to generate")
	cmd.Flags().IntVar(&cfg.MedicationsPerPatient, "meds", cfg.MedicationsPerPatient, "medications per patient")
	cmd.Flags().IntVar(&cfg.HistoryDays, "days", cfg.HistoryDays, "days of dose history")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	return cmd
}

func indexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "indexes",
		Short: "Create document store indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			appCfg, err := config.Load()
			if err != nil {
				return err
			}

			client, database, err := mustConnect(appCfg)
			if err != nil {
				return err
			}
			defer client.Disconnect(context.Background())

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := dose.EnsureIndexes(ctx, database); err != nil {
				return err
			}
			if err := medication.EnsureIndexes(ctx, database); err != nil {
				return err
			}

			logger.Info().Msg("indexes created")
			return nil
		},
	}
}

func newLogger() zerolog.Logger {
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// mustConnect is the strict connector used by the seed and indexes commands,
// which cannot do anything useful without a store.
func mustConnect(cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	if !cfg.HasStore() {
		return nil, nil, errors.New("DATABASE_URL and DATABASE_NAME must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.DBConnectTimeout)*time.Second)
	defer cancel()

	client, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return client, client.Database(cfg.DatabaseName), nil
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

	// The server boots with or without a store. Without one, business
	// endpoints answer 500 and /test describes the outage.
	var (
		client   *mongo.Client
		database *mongo.Database
	)
	if cfg.HasStore() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.DBConnectTimeout)*time.Second)
		c, err := db.Connect(ctx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			logger.Error().Err(err).Msg("document store unreachable, serving without it")
		} else {
			client = c
			database = c.Database(cfg.DatabaseName)
			defer client.Disconnect(context.Background())
			logger.Info().Str("database", cfg.DatabaseName).Msg("connected to document store")
		}
	} else {
		logger.Warn().Msg("document store not configured, serving without it")
	}

	e := newServer(cfg, logger, client, database)

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
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

// newServer wires the echo instance: middleware chain, platform endpoints,
// and the domain handlers over either live or unavailable repositories.
func newServer(cfg *config.Config, logger zerolog.Logger, client *mongo.Client, database *mongo.Database) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SanitizeWithLogger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))
	e.Use(middleware.Audit(logger))

	// Repositories: live when a store is attached, typed-unavailable
	// otherwise. Handlers never see a nil handle.
	var (
		doseRepo dose.DoseEventRepository
		medRepo  medication.MedicationRepository
		userRepo identity.UserRepository
	)
	if database != nil {
		doseRepo = dose.NewDoseEventRepoMongo(database)
		medRepo = medication.NewMedicationRepoMongo(database)
		userRepo = identity.NewUserRepoMongo(database)
	} else {
		doseRepo = dose.NewUnavailableRepo()
		medRepo = medication.NewUnavailableRepo()
		userRepo = identity.NewUnavailableRepo()
	}

	doseHandler := dose.NewHandler(dose.NewService(doseRepo))
	caregiverHandler := caregiver.NewHandler(caregiver.NewService(doseRepo, medRepo, userRepo))

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Medication Assistant Backend Running",
		})
	})
	e.GET("/test", db.DiagnosticHandler(database, cfg.DatabaseURL != "", cfg.DatabaseName != ""))
	e.GET("/health", db.HealthHandler(client))
	e.GET("/schema", schema.Handler())

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}

	api := e.Group("/api")
	api.Use(middleware.BodyLimit("1M"))
	api.Use(middleware.RateLimit(rateLimitCfg))
	api.Use(middleware.RequestTimeout(30 * time.Second))

	doseHandler.RegisterRoutes(api)
	caregiverHandler.RegisterRoutes(api)

	return e
}
