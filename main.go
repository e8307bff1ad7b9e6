// File: skillhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillhub/config"
	"skillhub/database"
	scheduleRepo "skillhub/database/repository/schedule"
	"skillhub/handlers"
	"skillhub/middleware"
	"skillhub/routes"
	"skillhub/services/schedule"
	"skillhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	layoutCache := utils.GetLayoutCacheClient()
	sessionCache := utils.GetSessionCacheClient()

	// repositories.
	scheduleRepository := scheduleRepo.NewMongoScheduleRepo(database.DB())
	if err := scheduleRepository.EnsureIndexes(context.Background()); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure schedule indexes: %v", err)
	}

	// services.
	scheduleService, err := schedule.NewDefaultScheduleService(
		scheduleRepository,
		schedule.NewRedisLayoutCache(layoutCache, config.AppConfig.LayoutCacheTTL),
		schedule.NewRedisSelectionStore(sessionCache, config.AppConfig.SelectionTTL),
		logger.Named("schedule"),
	)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, time.Minute, []*redis.Client{layoutCache, sessionCache}, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	scheduleHandler := handlers.NewScheduleHandler(scheduleService, logger.Named("http"))
	routes.RegisterRoutes(router, handlers.NewHandlerBundle(scheduleHandler, handlers.HealthHandler))

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Error("main: failed to disconnect MongoDB", zap.Error(err))
	}
	_ = layoutCache.Close()
	_ = sessionCache.Close()

	logger.Info("main: server stopped gracefully")
}
