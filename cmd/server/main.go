package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"worldtime-service/internal/clock"
	"worldtime-service/internal/domain/repository"
	"worldtime-service/internal/infrastructure/config"
	"worldtime-service/internal/infrastructure/persistence"
	"worldtime-service/internal/infrastructure/router"
	"worldtime-service/internal/interface/api"
	"worldtime-service/internal/interface/bgremoval"
	"worldtime-service/internal/interface/export"
	timezoneRepo "worldtime-service/internal/interface/repository"
	"worldtime-service/internal/usecase"
	"worldtime-service/pkg/logger"
	"worldtime-service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting World Time Service", "version", cfg.AppVersion, "tzModel", cfg.TZModel)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up the timezone catalog
	var (
		timezones   repository.TimezoneRepository
		mongoClient *mongo.Client
	)
	switch cfg.DBDriver {
	case "mongo":
		log.Info("Connecting to MongoDB")
		client, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		if err := timezoneRepo.SeedMongoTimezones(ctx, db, timezoneRepo.DefaultCatalog); err != nil {
			log.Fatal("Failed to seed timezone catalog", "error", err)
		}
		mongoClient = client
		timezones = timezoneRepo.NewMongoTimezoneRepository(db)
	default:
		log.Info("Opening catalog database", "driver", cfg.DBDriver)
		gormDB, err := persistence.OpenGorm(cfg.DBDriver, cfg.PostgresURI, cfg.SQLiteDSN)
		if err != nil {
			log.Fatal("Failed to open catalog database", "error", err)
		}
		if err := timezoneRepo.MigrateTimezones(ctx, gormDB, timezoneRepo.DefaultCatalog); err != nil {
			log.Fatal("Failed to migrate timezone catalog", "error", err)
		}
		timezones = timezoneRepo.NewGormTimezoneRepository(gormDB)
	}

	// Set up metrics
	m := metrics.NewMetrics("worldtime", prometheus.DefaultRegisterer)
	clk := clock.System{}

	// Set up use cases
	planner := usecase.NewMeetingPlanner(timezones, clk, cfg.TZModel, log, m)
	sessions := usecase.NewSessionManager(timezones, clk, cfg.SessionTTL, log, m)
	worldClock := usecase.NewWorldClock(clk, usecase.DefaultClockInterval, cfg.TZModel, log)

	formats := router.NewFormatRouter(log)
	formats.Register(export.NewPDFRenderer())
	formats.Register(export.NewICSRenderer(clk))
	exports := usecase.NewExportService(planner, formats, log, m)

	if cfg.RemoveBgAPIKey == "" {
		log.Warn("REMOVE_BG_API_KEY is not set, background removal will answer not_configured")
	}
	remover := bgremoval.NewRemoveBgClient(cfg.RemoveBgEndpoint, cfg.RemoveBgAPIKey, cfg.RemoveBgTimeout, log)
	relay := usecase.NewBackgroundRemovalService(remover, cfg.MaxUploadBytes, log, m)

	// Expire idle sessions in a goroutine
	go sessions.RunJanitor(ctx, cfg.SessionSweepInterval)

	// Set up HTTP server
	gin.SetMode(gin.ReleaseMode)
	engine := api.NewEngine(log)
	api.NewHandler(timezones, planner, sessions, worldClock, exports, relay, log, m).
		RegisterRoutes(engine, prometheus.DefaultGatherer)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Stop the janitor and any open clock streams
	cancel()

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	// Disconnect from MongoDB
	if mongoClient != nil {
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			log.Error("MongoDB disconnect error", "error", err)
		}
	}

	log.Info("World Time Service stopped")
}
