package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"finz-affiliate/internal/adapters/http/handlers"
	"finz-affiliate/internal/adapters/http/middleware"
	"finz-affiliate/internal/adapters/http/routes"
	"finz-affiliate/internal/adapters/persistence/models"
	"finz-affiliate/internal/adapters/persistence/repositories"
	"finz-affiliate/internal/config"
	"finz-affiliate/internal/core/services"
	"finz-affiliate/internal/core/tracking"
	"finz-affiliate/internal/pkg/logger"

	_ "finz-affiliate/docs" // Swagger docs
)

// @title FinZ Affiliate API
// @version 1.0
// @description Loan and credit-card affiliate site: catalog, menu links, consultant profile and click tracking.

// @contact.name FinZ Support
// @contact.email support@finz.vn

// @host api.finz.vn
// @BasePath /api/v1
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	zlog := logger.New(logger.Config{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
		JSON:  cfg.Log.JSON,
	})
	defer func() { _ = zlog.Sync() }()

	db, err := config.ConnectDatabase(cfg, zlog)
	if err != nil {
		zlog.Fatalw("❌ Failed to connect to database", "error", err)
	}
	defer config.CloseDatabase()

	if err := models.AutoMigrate(db); err != nil {
		zlog.Fatalw("❌ Failed to auto migrate", "error", err)
	}
	zlog.Info("✅ Database migration completed")

	if err := config.NewSeeder(db, cfg.Admin, zlog).Run(); err != nil {
		zlog.Warnw("⚠️ Failed to seed database", "error", err)
	}

	// Repositories
	packageRepo := repositories.NewLoanPackageRepository(db)
	consultantRepo := repositories.NewConsultantRepository(db)
	navbarRepo := repositories.NewNavbarLinkRepository(db)
	adminRepo := repositories.NewAdminUserRepository(db)
	trackingRepo := repositories.NewTrackingRepository(db)

	// Tracking pipeline
	dispatcher := tracking.NewDispatcher(cfg.Tracking.Workers, cfg.Tracking.QueueSize, cfg.Tracking.WriteTimeout, zlog)
	sessions := tracking.NewSessionStore()
	recorder := tracking.NewRecorder(trackingRepo, dispatcher, zlog)

	// Services
	trackingService := services.NewTrackingService(trackingRepo, packageRepo, sessions, recorder, zlog)
	authService := services.NewAuthService(adminRepo, cfg.JWT, zlog)

	sweeper := services.NewSessionSweeper(trackingService, cfg.Tracking.SessionTTL, cfg.Tracking.SweepSpec, zlog)
	if err := sweeper.Start(); err != nil {
		zlog.Fatalw("❌ Invalid session sweep schedule", "spec", cfg.Tracking.SweepSpec, "error", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "FinZ Affiliate API v1.0",
		ErrorHandler: middleware.ErrorHandler(zlog),
	})

	middleware.Setup(app, cfg)

	routes.Setup(app, cfg, routes.Handlers{
		Health:      handlers.NewHealthHandler(cfg.AppMode, config.HealthCheck, sessions.Len),
		Auth:        handlers.NewAuthHandler(authService, cfg.JWT, cfg.Cookie),
		Navigation:  handlers.NewNavigationHandler(services.NewNavbarService(navbarRepo, zlog)),
		LoanPackage: handlers.NewLoanPackageHandler(services.NewLoanPackageService(packageRepo)),
		Consultant:  handlers.NewConsultantHandler(services.NewConsultantService(consultantRepo)),
		Tracking:    handlers.NewTrackingHandler(trackingService),
	})

	go gracefulShutdown(app, zlog)

	zlog.Infow("🚀 Server starting", "port", cfg.Port, "mode", cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Errorw("❌ Server stopped with error", "error", err)
	}

	// Listen has returned: stop producers first, then drain queued tracking writes
	sweeper.Stop()
	dispatcher.Close()
	zlog.Info("✅ Tracking writes flushed")
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App, zlog *zap.SugaredLogger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		zlog.Errorw("❌ Error during shutdown", "error", err)
	}
	zlog.Info("✅ Server stopped gracefully")
}
