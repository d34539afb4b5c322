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

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/adipras/campusfound/internal/pkg/config"
	"github.com/adipras/campusfound/internal/pkg/database"
	"github.com/adipras/campusfound/internal/pkg/health"
	"github.com/adipras/campusfound/internal/pkg/logger"
	"github.com/adipras/campusfound/internal/pkg/middleware"
	nrpkg "github.com/adipras/campusfound/internal/pkg/newrelic"
	"github.com/adipras/campusfound/services/lostfound/gateway"
	"github.com/adipras/campusfound/services/lostfound/handler"
	httpHandler "github.com/adipras/campusfound/services/lostfound/handler/http"
	"github.com/adipras/campusfound/services/lostfound/repository"
	"github.com/adipras/campusfound/services/lostfound/usecase"
)

func main() {
	appName := "campusfound-api"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize Redis client (rate limiting)
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize repositories
	otpRepo := repository.NewOTPRepo(configs)
	userRepo := repository.NewUserRepo()
	postRepo := repository.NewPostRepo()
	sessionRepo := repository.NewAdminSessionRepo()

	// Initialize gateway
	smsGW := gateway.NewSMSGateway(configs.SMS)
	devSMS := configs.SMS.TwilioAccountSID == "" || configs.SMS.TwilioAuthToken == "" || configs.SMS.From == ""

	// Initialize usecase
	lostFoundUC := usecase.NewLostFoundUC(otpRepo, userRepo, postRepo, sessionRepo, smsGW, configs)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(lostFoundUC, devSMS)
	postHandler := httpHandler.NewPostHandler(lostFoundUC)
	adminHandler := httpHandler.NewAdminHandler(lostFoundUC)
	h := handler.NewHandler(authHandler, postHandler, adminHandler, lostFoundUC, redisClient.GetClient(), configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(echomw.CORS())

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	h.RegisterRoutes(e)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	zapLogger.Info("Shutting down HTTP server...")
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	zapLogger.Info("Closing Redis connection...")
	if err := redisClient.Close(); err != nil {
		zapLogger.Error("Error closing Redis connection", logger.Err(err))
	}

	if nrApp != nil {
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
}
