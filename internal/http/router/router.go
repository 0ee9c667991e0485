package router

import (
	"encoding/json"
	"net/http"

	"github.com/devNevtis/salesToolsAdminSpace/internal/config"
	"github.com/devNevtis/salesToolsAdminSpace/internal/database"
	"github.com/devNevtis/salesToolsAdminSpace/internal/http/handler"
	"github.com/devNevtis/salesToolsAdminSpace/internal/http/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/devNevtis/salesToolsAdminSpace/docs" // Import generated swagger docs
)

type Router struct {
	cfg            *config.Config
	logger         *zap.Logger
	db             *gorm.DB
	rateLimiter    *middleware.RateLimiter
	companyHandler *handler.CompanyHandler
	userHandler    *handler.UserHandler
	pbxHandler     *handler.PBXHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	rateLimiter *middleware.RateLimiter,
	companyHandler *handler.CompanyHandler,
	userHandler *handler.UserHandler,
	pbxHandler *handler.PBXHandler,
) *Router {
	return &Router{
		cfg:            cfg,
		logger:         logger,
		db:             db,
		rateLimiter:    rateLimiter,
		companyHandler: companyHandler,
		userHandler:    userHandler,
		pbxHandler:     pbxHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.Limit)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with pool stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
			},
		})
	})

	// Combined readiness check
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		allHealthy := true

		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{
				"status": "healthy",
			}
		}

		status := http.StatusOK
		overall := "healthy"
		if !allHealthy {
			status = http.StatusServiceUnavailable
			overall = "unhealthy"
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status": overall,
			"checks": checks,
		})
	})

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/companies", func(r chi.Router) {
			r.Get("/", rt.companyHandler.List)
			r.Post("/", rt.companyHandler.Create)
			r.Get("/{id}", rt.companyHandler.Get)
			r.Put("/{id}", rt.companyHandler.Update)
			r.Delete("/{id}", rt.companyHandler.Delete)
			r.Put("/{id}/stages", rt.companyHandler.UpdateStages)
			r.Get("/{id}/users", rt.companyHandler.ListUsers)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", rt.userHandler.List)
			r.Post("/", rt.userHandler.Create)
			r.Get("/managers", rt.userHandler.ListManagers)
			r.Post("/owner", rt.userHandler.CreateOwner)
			r.Post("/manager", rt.userHandler.CreateManager)
			r.Post("/sale", rt.userHandler.CreateSale)
			r.Get("/{id}", rt.userHandler.Get)
			r.Put("/{id}", rt.userHandler.Update)
			r.Delete("/{id}", rt.userHandler.Delete)
		})

		r.Route("/pbx", func(r chi.Router) {
			r.Get("/domains", rt.pbxHandler.ListDomains)
			r.Post("/domains/sync", rt.pbxHandler.SyncDomains)
		})
	})

	return r
}
