package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alcyxob/fitplanner/internal/api"
	"alcyxob/fitplanner/internal/config"
	"alcyxob/fitplanner/internal/generation"
	"alcyxob/fitplanner/internal/logging"
	"alcyxob/fitplanner/internal/metrics"
	"alcyxob/fitplanner/internal/repository/mongo"
	"alcyxob/fitplanner/internal/service"
	"alcyxob/fitplanner/internal/session"
	"alcyxob/fitplanner/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"
)

const (
	metricsSubsystem = "server"
	shutdownTimeout  = 10 * time.Second
	// slack on top of the longest generation poll for the write deadline
	writeTimeoutSlack = 30 * time.Second
)

// @title FitPlanner API
// @version 1.0
// @description Profiles, AI-generated workout plans and weekly progress tracking.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	logger, err := logging.NewLogger(logging.LoggerSetupParams{
		LogLevel:    cfg.Log.Level,
		LogFormat:   cfg.Log.Format,
		LogFileName: cfg.Log.File,
	})
	if err != nil {
		log.Fatalf("FATAL: Could not build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err = run(cfg, logger); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
	logger.Info("server exiting")
}

func run(cfg config.Config, logger *zap.Logger) error {
	logger.Info("starting fitplanner server", zap.String("address", cfg.Server.Address))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricsManager := metrics.NewManager(cfg.Metrics.Namespace, metricsSubsystem, registry)

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		return err
	}
	defer func() {
		logger.Info("disconnecting MongoDB")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			logger.Error("failed to disconnect MongoDB", zap.Error(err))
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	logger.Info("database connection established", zap.String("database", cfg.Database.Name))

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := mongo.EnsureIndexes(ctx, appDB); err != nil {
			logger.Error("index creation failed", zap.Error(err))
			return
		}
		logger.Info("indexes ensured")
	}()

	// --- Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	profileRepo := mongo.NewMongoProfileRepository(appDB)
	generatedPlanRepo := mongo.NewMongoGeneratedPlanRepository(appDB)
	trackedPlanRepo := mongo.NewMongoTrackedPlanRepository(appDB)
	planExportRepo := mongo.NewMongoPlanExportRepository(appDB)

	// --- Storage (optional) ---
	fileStorage, err := storage.NewS3Storage(context.Background(), cfg.S3, logger)
	switch {
	case errors.Is(err, storage.ErrBucketNotConfigured):
		logger.Warn("s3 bucket not configured, plan export disabled")
		fileStorage = nil
	case err != nil:
		return err
	}

	// --- Google ID token validation (optional) ---
	var googleValidator service.GoogleTokenValidator
	if cfg.Google.ClientID != "" {
		validator, err := idtoken.NewValidator(context.Background(),
			option.WithHTTPClient(&http.Client{Timeout: 10 * time.Second}))
		if err != nil {
			return err
		}
		googleValidator = validator
	} else {
		logger.Warn("google client id not configured, google sign-in disabled")
	}

	// --- Generation (optional) ---
	var jobClient generation.JobClient
	assistants, err := generation.NewAssistantsClient(cfg.OpenAI.APIKey, cfg.OpenAI.AssistantID, cfg.OpenAI.BaseURL, nil)
	if err == nil {
		jobClient = assistants
	} else {
		logger.Warn("plan generation not configured", zap.Error(err))
	}
	poller := generation.NewPoller(cfg.OpenAI.PollInterval, cfg.OpenAI.MaxPollAttempts)
	generator := generation.NewGenerator(jobClient, poller, logger.Named("generation"), metricsManager)

	// --- Services ---
	hub := session.NewHub(logger.Named("session"))
	authService := service.NewAuthService(userRepo, googleValidator, hub, service.AuthConfig{
		JWTSecret:            cfg.JWT.Secret,
		JWTExpiration:        cfg.JWT.Expiration,
		GoogleClientID:       cfg.Google.ClientID,
		RevocationCacheBytes: cfg.Auth.RevocationCacheBytes,
	}, logger.Named("auth"))
	profileService := service.NewProfileService(profileRepo, logger.Named("profile"))
	planService := service.NewPlanService(generatedPlanRepo, profileRepo, planExportRepo, generator, fileStorage, logger.Named("plan"))
	trackerService := service.NewTrackerService(trackedPlanRepo, generatedPlanRepo, metricsManager, logger.Named("tracker"))

	// --- Gin Engine ---
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(
		metrics.RequestMetrics(metricsManager),
		metrics.PanicRecovery(metricsManager, logger),
		logging.GinLogger(logger.Named("http")),
	)
	api.SetupRoutes(router, api.Services{
		Auth:    authService,
		Profile: profileService,
		Plan:    planService,
		Tracker: trackerService,
	}, hub, registry, logger.Named("api"))

	// --- HTTP Server ---
	server := &http.Server{
		Addr:        cfg.Server.Address,
		Handler:     router,
		ReadTimeout: 10 * time.Second,
		// generation requests block for the whole poll; event streams reconnect past it
		WriteTimeout: poller.Interval*time.Duration(poller.MaxAttempts) + writeTimeoutSlack,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		hub.Close()
		return err
	}

	// end event streams first so Shutdown is not left waiting on them
	hub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return err
	}
	return nil
}
