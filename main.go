// File: urbanhelp/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"urbanhelp/config"
	"urbanhelp/cron"
	"urbanhelp/database"
	bookingRepo "urbanhelp/database/repository/booking"
	notificationRepo "urbanhelp/database/repository/notification"
	serviceRepo "urbanhelp/database/repository/service"
	userRepoPkg "urbanhelp/database/repository/user"
	workerRepo "urbanhelp/database/repository/worker"
	"urbanhelp/handlers"
	"urbanhelp/middleware"
	"urbanhelp/routes"
	"urbanhelp/services/booking"
	"urbanhelp/services/email"
	"urbanhelp/services/notification"
	"urbanhelp/services/payment"
	"urbanhelp/services/tasks"
	"urbanhelp/services/user"
	"urbanhelp/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bkRepo := bookingRepo.NewMongoBookingRepo()
	wkRepo := workerRepo.NewMongoWorkerRepo()
	svcRepo := serviceRepo.NewMongoServiceRepo()
	ntfRepo := notificationRepo.NewMongoNotificationRepo()
	usrRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	notificationService := &notification.DefaultService{
		Repo: ntfRepo,
	}

	userService := &user.DefaultService{
		Repo: usrRepo,
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	bookingEngine := &booking.DefaultEngine{
		Repo:       bkRepo,
		Workers:    wkRepo,
		Services:   svcRepo,
		Dispatcher: tasks.NewAsynqDispatcher(asynqClient, logger),
		Logger:     logger,
	}

	mailer := email.NewSMTPMailer(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.EmailFrom,
		config.AppConfig.SMTPUser,
		config.AppConfig.SMTPPassword,
		logger,
	)

	cron.InitSideEffectWorker(&cron.SideEffectWorker{
		Mailer:        mailer,
		Notifications: notificationService,
		Services:      svcRepo,
		Logger:        logger,
	})

	gateway := payment.NewKhaltiClient(
		config.AppConfig.KhaltiBaseURL,
		config.AppConfig.KhaltiSecretKey,
		logger,
	)

	// handlers.
	handlerBundle := &routes.HandlerBundle{
		Auth:         handlers.NewAuthHandler(userService),
		Booking:      handlers.NewBookingHandler(bookingEngine),
		Payment:      handlers.NewPaymentHandler(gateway, bookingEngine, logger),
		Notification: handlers.NewNotificationHandler(notificationService),
		Catalog:      handlers.NewCatalogHandler(svcRepo, wkRepo),
	}

	routes.RegisterRoutes(router, handlerBundle)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
