package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"finz-affiliate/internal/adapters/http/handlers"
	"finz-affiliate/internal/adapters/http/middleware"
	"finz-affiliate/internal/config"
)

// catalogMaxAge is how long browsers may cache public catalog reads
const catalogMaxAge = 60 * time.Second

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Navigation  *handlers.NavigationHandler
	LoanPackage *handlers.LoanPackageHandler
	Consultant  *handlers.ConsultantHandler
	Tracking    *handlers.TrackingHandler
}

// Setup configures all routes for the application
func Setup(app *fiber.App, cfg *config.Config, h Handlers) {
	// Health check & root routes
	app.Get("/", h.Health.Root)
	app.Get("/health", h.Health.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	apiV1 := app.Group("/api/v1")
	setupAPIV1Routes(apiV1, cfg, h)
}

// setupAPIV1Routes configures API v1 routes
func setupAPIV1Routes(router fiber.Router, cfg *config.Config, h Handlers) {
	// Public site reads
	cache := middleware.CacheControl(catalogMaxAge)
	router.Get("/navigation", cache, h.Navigation.Resolve)
	router.Get("/navbar-links", cache, h.Navigation.List)
	router.Get("/loan-packages", cache, h.LoanPackage.List)
	router.Get("/loan-packages/:id", cache, h.LoanPackage.Get)
	router.Get("/consultant", cache, h.Consultant.Get)

	// Tracking beacons (public)
	trackingRoutes := router.Group("/tracking",
		middleware.NoStore(),
		middleware.TrackingRateLimiter(cfg.Tracking.RateLimit),
	)
	setupTrackingRoutes(trackingRoutes, h.Tracking)

	// Auth routes
	authRoutes := router.Group("/auth")
	setupAuthRoutes(authRoutes, h.Auth, cfg)

	// Admin routes
	adminRoutes := router.Group("/admin",
		middleware.NoStore(),
		middleware.AuthMiddleware(cfg.JWT),
		middleware.AdminOnly(),
	)
	setupAdminRoutes(adminRoutes, h)
}

// setupTrackingRoutes configures the beacon endpoints
func setupTrackingRoutes(router fiber.Router, handler *handlers.TrackingHandler) {
	router.Post("/sessions", handler.StartSession)
	router.Put("/sessions/:id/scroll", handler.UpdateScroll)
	router.Delete("/sessions/:id", handler.EndSession)
	router.Post("/impressions", handler.RecordImpression)
	router.Post("/clicks", handler.RecordClick)
	router.Post("/navigation", handler.RecordNavigationClick)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/logout", handler.Logout)

	// Protected routes
	auth := middleware.AuthMiddleware(cfg.JWT)
	router.Get("/me", auth, middleware.AdminOnly(), handler.Me)
	router.Put("/password", auth, middleware.AdminOnly(), handler.ChangePassword)
}

// setupAdminRoutes configures the admin dashboard endpoints
func setupAdminRoutes(router fiber.Router, h Handlers) {
	// Catalog
	router.Post("/loan-packages", h.LoanPackage.Create)
	router.Put("/loan-packages", h.LoanPackage.Save)
	router.Put("/loan-packages/:id", h.LoanPackage.Update)
	router.Delete("/loan-packages/:id", h.LoanPackage.Delete)

	// Consultant
	router.Put("/consultant", h.Consultant.Save)

	// Navbar editor
	router.Get("/navbar-links/editor", h.Navigation.EditorRows)
	router.Put("/navbar-links", h.Navigation.Save)

	// Tracking
	router.Get("/tracking/stats", h.Tracking.Stats)
	router.Get("/tracking/impressions", h.Tracking.Impressions)
	router.Get("/tracking/clicks", h.Tracking.Clicks)
	router.Post("/tracking/test-data", h.Tracking.SeedTestData)
	router.Delete("/tracking", h.Tracking.Clear)
}
