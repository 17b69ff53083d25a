package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace/cache"
	"marketplace/config"
	"marketplace/cron"
	"marketplace/database"
	availabilityRepo "marketplace/database/repository/availability"
	bookingRepo "marketplace/database/repository/booking"
	catalogRepo "marketplace/database/repository/catalog"
	"marketplace/handlers"
	"marketplace/middleware"
	"marketplace/routes"
	"marketplace/services/booking"
	"marketplace/services/notification"
	"marketplace/services/schedule"
	"marketplace/services/tasks"
	"marketplace/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	ctx := context.Background()

	mongoClient, err := database.Connect(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := mongoClient.Database(config.AppConfig.DatabaseName)

	cacheClient, err := cache.NewRedisCache(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to Redis: %v", err)
	}

	// The bus is best-effort infrastructure: when the broker is down at
	// startup we degrade to a no-op bus instead of refusing to serve.
	var bus notification.Bus
	bus, err = notification.NewAmqpBus(config.AppConfig.AmqpURL, config.AppConfig.AmqpExchange)
	if err != nil {
		logger.Warn("main: notification bus unavailable, events disabled", zap.Error(err))
		bus = notification.NoopBus{}
	}

	// repositories.
	availRepo := availabilityRepo.NewMongoAvailabilityRepo(db)
	bkRepo := bookingRepo.NewMongoBookingRepo(db)
	ctlgRepo := catalogRepo.NewMongoCatalogRepo(db)

	if err := availRepo.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure availability indexes: %v", err)
	}
	if err := bkRepo.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}

	cacheTTL := time.Duration(config.AppConfig.CacheTTLSeconds) * time.Second
	reminders := tasks.NewReminderScheduler()

	// services.
	scheduleService := &schedule.DefaultScheduleService{
		AvailabilityRepo: availRepo,
		BookingRepo:      bkRepo,
		Cache:            cacheClient,
		CacheTTL:         cacheTTL,
		BlockPolicy:      config.AppConfig.ScheduleBlockPolicy,
		DeletePolicy:     config.AppConfig.AvailabilityDeletePolicy,
	}
	bookingService := &booking.DefaultBookingService{
		BookingRepo:      bkRepo,
		AvailabilityRepo: availRepo,
		CatalogRepo:      ctlgRepo,
		Cache:            cacheClient,
		Bus:              bus,
		Reminders:        reminders,
		CacheTTL:         cacheTTL,
		ReminderLead:     time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}

	reminderWorker := cron.NewReminderWorker()
	cron.RunReminderWorker(reminderWorker, bus)

	utils.StartHealthMonitor(cacheClient.Client(), mongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, logger)
	routes.RegisterRoutes(router, bookingHandler, scheduleHandler)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	reminderWorker.Shutdown()
	if err := reminders.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close reminder scheduler: %v", err)
	}
	if err := bus.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close notification bus: %v", err)
	}
	if err := cacheClient.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close redis client: %v", err)
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
