// File: homeserve/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homeserve/config"
	"homeserve/database"
	bookingRepoPkg "homeserve/database/repository/booking"
	catalogRepoPkg "homeserve/database/repository/catalog"
	usageRepoPkg "homeserve/database/repository/usage"
	"homeserve/handlers"
	"homeserve/middleware"
	"homeserve/routes"
	"homeserve/services/booking"
	"homeserve/services/catalog"
	"homeserve/services/offers"
	"homeserve/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	usageRepo := usageRepoPkg.NewMongoUsageRepo()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := catalogRepo.SeedIfEmpty(ctx, catalog.SeedCatalog()); err != nil {
		logger.Sugar().Fatalf("main: failed to seed catalog: %v", err)
	}
	if err := usageRepo.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to create slot usage indexes: %v", err)
	}
	cancel()

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo: catalogRepo,
	}

	offerRegistry := offers.NewRegistry(offers.SeedOffers())

	bookingService := &booking.DefaultBookingSessionService{
		Catalog:     catalogService,
		Offers:      offerRegistry,
		Pricing:     booking.NewPricingEngine(),
		BookingRepo: bookingRepo,
		UsageRepo:   usageRepo,
		Sessions:    utils.GetSessionCacheClient(),
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Catalog: handlers.NewCatalogHandler(catalogService),
		Offers:  handlers.NewOffersHandler(offerRegistry),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
