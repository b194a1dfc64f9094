package handlers

import (
	"fmt"

	"github.com/SscSPs/rotalivre/cmd/docs"
	portssvc "github.com/SscSPs/rotalivre/internal/core/ports/services"
	"github.com/SscSPs/rotalivre/internal/middleware"
	"github.com/SscSPs/rotalivre/internal/platform/config"
	"github.com/SscSPs/rotalivre/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics *utils.PosthogClientWrapper,
) error {
	registerValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authLimiter, err := middleware.NewMemoryLimiter(cfg.AuthRateLimit)
	if err != nil {
		return fmt.Errorf("invalid auth rate limit %q: %w", cfg.AuthRateLimit, err)
	}
	searchLimiter, err := middleware.NewMemoryLimiter(cfg.SearchRateLimit)
	if err != nil {
		return fmt.Errorf("invalid search rate limit %q: %w", cfg.SearchRateLimit, err)
	}

	// Identity is resolved when present so analytics can attribute requests;
	// routes that need it enforce it themselves.
	api := r.Group("/api", middleware.OptionalAuthMiddleware(cfg.JWTSecret, cfg.AuthCookieName))

	registerAuthRoutes(api, cfg, services, analytics, middleware.RateLimit(authLimiter))
	registerReportRoutes(api, services)
	registerWeatherRoutes(api, services)
	registerMapsRoutes(api, services)
	registerSearchRoutes(api, cfg, services, middleware.RateLimit(searchLimiter))
	registerGeocodeRoutes(api, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
