package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devNevtis/salesToolsAdminSpace/docs"
	"github.com/devNevtis/salesToolsAdminSpace/internal/config"
	"github.com/devNevtis/salesToolsAdminSpace/internal/database"
	"github.com/devNevtis/salesToolsAdminSpace/internal/http/handler"
	"github.com/devNevtis/salesToolsAdminSpace/internal/http/middleware"
	"github.com/devNevtis/salesToolsAdminSpace/internal/http/router"
	"github.com/devNevtis/salesToolsAdminSpace/internal/jobs"
	"github.com/devNevtis/salesToolsAdminSpace/internal/logger"
	"github.com/devNevtis/salesToolsAdminSpace/internal/pbx"
	"github.com/devNevtis/salesToolsAdminSpace/internal/repository"
	"github.com/devNevtis/salesToolsAdminSpace/internal/service"
	"github.com/devNevtis/salesToolsAdminSpace/internal/validation"
	"go.uber.org/zap"
)

// @title Sales Tools Admin API
// @version 1.0
// @description Admin backend for managing companies and their owner, manager, and sale users

// @contact.name API Support
// @contact.email support@nevtis.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	// Configure Swagger host based on environment
	switch basicCfg.App.Environment {
	case "staging":
		docs.SwaggerInfo.Host = "admin-api-staging.nevtis.com"
	case "production":
		docs.SwaggerInfo.Host = "admin-api.nevtis.com"
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// Load full configuration with secrets
	// In development: uses environment variables
	// In staging/production: fetches from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Repositories
	companyRepo := repository.NewCompanyRepository(db)
	userRepo := repository.NewUserRepository(db)
	pbxDomainRepo := repository.NewPBXDomainRepository(db)

	// Record validator shared by all services
	recordValidator := validation.New()

	// PBX client is optional; without it the domain mirror is read-only
	var pbxClient service.DomainFetcher
	if cfg.PBX.Enabled {
		pbxClient = pbx.NewClient(&cfg.PBX)
		log.Info("PBX integration enabled", zap.String("baseUrl", cfg.PBX.BaseURL))
	} else {
		log.Info("PBX integration disabled")
	}

	// Services
	companyService := service.NewCompanyService(companyRepo, userRepo, recordValidator, log)
	userService := service.NewUserService(userRepo, companyRepo, recordValidator, log)
	pbxService := service.NewPBXService(pbxDomainRepo, pbxClient, log)

	// Middleware and handlers
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)
	companyHandler := handler.NewCompanyHandler(companyService, log)
	userHandler := handler.NewUserHandler(userService, log)
	pbxHandler := handler.NewPBXHandler(pbxService, log)

	rt := router.NewRouter(cfg, log, db, rateLimiter, companyHandler, userHandler, pbxHandler)

	// Background PBX domain sync
	var scheduler *jobs.Scheduler
	if cfg.PBX.Enabled {
		scheduler = jobs.NewScheduler(log)
		syncJob := jobs.NewPBXSyncJob(pbxService, log, cfg.PBX.SyncTimeoutDuration())
		if err := scheduler.AddJob(jobs.PBXSyncJobName, cfg.PBX.SyncCron, syncJob.Run); err != nil {
			log.Error("failed to register PBX sync job", zap.Error(err))
		} else {
			scheduler.Start()
			// Prime the mirror so the domain picker works right after boot
			go syncJob.Run()
		}
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
