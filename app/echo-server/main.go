package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seoulmate/app/echo-server/router"
	"seoulmate/business/recommend"
	"seoulmate/internal/middleware"
	"seoulmate/internal/repository/dataset"
	"seoulmate/internal/rest"
	"seoulmate/pkg/config"
	"seoulmate/pkg/logger"
	"seoulmate/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Seoulmate", "version", cfg.App.Version)

	metrics.Init()

	// Init repo
	datasetRepo := dataset.NewCSVRepository(dataset.CSVConfig{
		Paths:    cfg.Dataset.Paths,
		CacheTTL: cfg.Dataset.CacheTTL,
	})

	// Init service
	recommendService := recommend.NewService(datasetRepo, recommend.DefaultScoringConfig(), cfg.Dataset.MinK)

	// Init handler
	recommendHandler := rest.NewRecommendHandler(recommendService, cfg.Dataset.TopK)
	regionHandler := rest.NewRegionHandler(recommendService)
	healthHandler := rest.NewHealthHandler(recommendService, cfg.App.Version)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupRecommendRoutes(api, recommendHandler)
	router.SetupRegionRoutes(api, regionHandler)
	router.SetupHealthRoutes(api, healthHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
