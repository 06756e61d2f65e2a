package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/ais-aviation/auth-service/internal/api/handler"
	"github.com/ais-aviation/auth-service/internal/core/service"
	"github.com/ais-aviation/auth-service/internal/infrastructure/config"
	"github.com/ais-aviation/auth-service/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.Origins(),
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("auth"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.OwnerEmail, cfg.BcryptCost, log)
	authHandler := handler.NewAuthHandler(authService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/verify-password", authHandler.VerifyPassword)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler(cfg.AppName, config.Version)
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/auth/health", healthHandler.Health)        // static metadata, polled by the main backend
	e.GET("/health", healthHandler.Liveness)           // liveness: is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness: is the database up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
