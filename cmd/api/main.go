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

	"go-talent-intake/config"
	_ "go-talent-intake/docs" // Important for Swagger
	"go-talent-intake/internal/delivery/http/middleware"
	v1 "go-talent-intake/internal/delivery/http/v1"
	"go-talent-intake/internal/repository/postgres"
	"go-talent-intake/internal/usecase"
	"go-talent-intake/pkg/audit"
	"go-talent-intake/pkg/auth"
	"go-talent-intake/pkg/database"
	"go-talent-intake/pkg/jobcatalog"
	"go-talent-intake/pkg/logger"
	"go-talent-intake/pkg/metrics"
	redisclient "go-talent-intake/pkg/redis"
	"go-talent-intake/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
)

const serviceName = "talent-intake-api"

// @title           Talent Intake API
// @version         1.0
// @description     Candidate registration and recruiter dashboard API.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init(cfg.LogLevel, serviceName, cfg.AppEnv)
	logger.Log.Info("Starting talent intake API", "port", cfg.Port)

	auditLogger := audit.NewProduction(serviceName, cfg.AppEnv)
	defer auditLogger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Setup Database
	if cfg.AutoMigrate {
		if err := database.MigrateUp(cfg.DBUrl); err != nil {
			logger.Log.Error("Failed to apply migrations", "error", err)
			os.Exit(1)
		}
	}

	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional)
	var redis *goredis.Client
	if cfg.RedisURL != "" {
		redis, err = redisclient.NewClient(ctx, redisclient.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
			redis = nil
		} else {
			defer redis.Close()
		}
	}

	// 5. Reference data
	catalog, err := jobcatalog.Load(cfg.JobRolesFile)
	if err != nil {
		logger.Log.Error("Failed to load job roles", "path", cfg.JobRolesFile, "error", err)
		os.Exit(1)
	}

	// 6. Sessions
	sessions, err := auth.NewManager(cfg.SessionSecret, time.Duration(cfg.SessionTTLMinutes)*time.Minute, cfg.SessionIssuer)
	if err != nil {
		logger.Log.Error("Failed to set up dashboard sessions", "error", err)
		os.Exit(1)
	}

	// 7. Setup Repositories and UseCases
	candidateRepo := postgres.NewCandidateRepository(dbPool)

	registrationUC := usecase.NewRegistrationUsecase(candidateRepo, validation.New(catalog), auditLogger)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, auditLogger, usecase.CandidateUsecaseConfig{
		PageSize:      cfg.DashboardPageSize,
		ExportMaxRows: cfg.ExportMaxRows,
	})

	optional := map[string]usecase.Pinger{"redis": nil}
	if redis != nil {
		optional["redis"] = usecase.PingFunc(func(ctx context.Context) error {
			return redisclient.HealthCheck(ctx, redis)
		})
	}
	healthUC := usecase.NewHealthUsecase(map[string]usecase.Pinger{"database": dbPool}, optional)

	// 8. Metrics and rate limiting
	metrics.MustRegister(prometheus.DefaultRegisterer)

	rateLimiter := middleware.NewRateLimiter(redis, auditLogger)
	rateLimiter.StartCleanup(ctx, time.Minute)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		RegistrationUC: registrationUC,
		CandidateUC:    candidateUC,
		HealthUC:       healthUC,
		JobCatalog:     catalog,
		Sessions:       sessions,
		RateLimiter:    rateLimiter,
		Audit:          auditLogger,
		Config:         cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			stop()
		}
	}()

	// Graceful Shutdown
	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
