// Package routes wires the console's services and mounts its HTTP routes.
package routes

import (
	"orusconsole/internal/config"
	"orusconsole/internal/handlers"
	"orusconsole/internal/middleware"
	"orusconsole/internal/models"
	"orusconsole/internal/platform"
	"orusconsole/internal/repositories"
	"orusconsole/internal/repositories/cache"
	"orusconsole/internal/services/account"
	"orusconsole/internal/services/auth"
	"orusconsole/internal/services/customer"
	"orusconsole/internal/services/journal"
	"orusconsole/internal/services/listing"
	"orusconsole/internal/services/merchant"
	"orusconsole/internal/services/overview"
	"orusconsole/internal/services/query"
	"orusconsole/internal/services/views"
	"orusconsole/internal/services/wallet"
	"orusconsole/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Dependencies are the long-lived resources main opens.
type Dependencies struct {
	Config   config.Config
	DB       *gorm.DB
	Cache    *cache.QueryCache // nil when Redis is unavailable
	Client   platform.Client
	Registry *views.Registry
	Logger   *zap.Logger
}

// SetupRoutes builds the services and mounts every route.
func SetupRoutes(app *fiber.App, d Dependencies) {
	cfg := d.Config
	logger := d.Logger

	// Repositories
	adminRepo := repositories.NewAdminRepository(d.DB)
	actionRepo := repositories.NewActionRepository(d.DB)

	// Services
	var queryCache query.Cache
	if d.Cache != nil {
		queryCache = d.Cache
	}
	queries := query.NewService(d.Client, queryCache, logger)
	validator := validation.New()
	actions := journal.New(actionRepo, logger)
	walletService := wallet.NewService(d.Client, queries, validator, actions, &wallet.LogMetricsCollector{Logger: logger})
	accountService := account.NewService(d.Client, queries, validator, actions)
	authService := auth.NewService(adminRepo, cfg.JWTSecret, cfg.TokenTTL, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, cfg.TokenTTL, cfg.IsProduction())
	healthHandler := newHealthHandler(d)
	overviewHandler := handlers.NewOverviewHandler(overview.NewService(queries, logger))
	customerList := handlers.NewListHandler[models.Customer](
		views.KindCustomerList, listing.CustomerLabels, queries.Customers, d.Registry, logger)
	merchantList := handlers.NewListHandler[models.Merchant](
		views.KindMerchantList, listing.MerchantLabels, queries.Merchants, d.Registry, logger)
	metricsHandler := handlers.NewMetricsHandler(queries, d.Registry, logger)
	detailHandler := handlers.NewDetailHandler(
		customer.Deps{Queries: queries, Wallets: walletService, Accounts: accountService, Logger: logger},
		merchant.Deps{Queries: queries, Wallets: walletService, Accounts: accountService, Logger: logger},
		actions,
		d.Registry,
		logger,
	)
	authMiddleware := middleware.NewAuthMiddleware(authService, cfg.JWTSecret, logger)

	app.Get("/health", healthHandler.HealthCheck)

	// Public routes
	api := app.Group("/api")
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/logout", authMiddleware.Handler, authHandler.Logout)

	// Console routes
	console := app.Group("/console", authMiddleware.Handler, middleware.HasPermission(models.PermissionConsoleRead))
	console.Get("/overview", overviewHandler.GetOverview)
	console.Get("/cache/stats", healthHandler.CacheStats)
	console.Get("/customers", customerList.Search)
	console.Get("/merchants", merchantList.Search)
	console.Get("/customers/:id/history", detailHandler.CustomerHistory)
	console.Get("/merchants/:id/history", detailHandler.MerchantHistory)
	console.Get("/metrics", metricsHandler.GetMetrics)

	v := console.Group("/views")

	// Metrics card
	v.Post("/metrics", metricsHandler.Mount)
	v.Get("/metrics/:viewID", metricsHandler.Get)
	v.Put("/metrics/:viewID/period", metricsHandler.SetPeriod)
	v.Delete("/metrics/:viewID", metricsHandler.Unmount)

	// Detail views; mounted before the list routes so /:id/detail wins
	v.Post("/customers/:id/detail", detailHandler.MountCustomer)
	v.Post("/merchants/:id/detail", detailHandler.MountMerchant)

	details := v.Group("/details/:viewID")
	details.Get("/", detailHandler.Get)
	details.Post("/retry", detailHandler.Retry)
	details.Put("/tab", detailHandler.SwitchTab)
	details.Post("/controls/:dialog/open", detailHandler.OpenDialog)
	details.Post("/controls/:dialog/close", detailHandler.CloseDialog)
	details.Post("/controls/adjust-points/confirm",
		middleware.HasPermission(models.PermissionAdjustPoints), detailHandler.ConfirmAdjustPoints)
	details.Post("/controls/adjust-balance/confirm",
		middleware.HasPermission(models.PermissionAdjustBalance), detailHandler.ConfirmAdjustBalance)
	details.Post("/controls/reset-password/confirm",
		middleware.HasPermission(models.PermissionResetPassword), detailHandler.ConfirmResetPassword)
	details.Post("/controls/delete/confirm",
		middleware.HasPermission(models.PermissionDeleteAccount), detailHandler.ConfirmDelete)
	details.Delete("/", detailHandler.Unmount)

	// List views
	mountList(v.Group("/customers"), customerList)
	mountList(v.Group("/merchants"), merchantList)
}

type listRoutes interface {
	Mount(c *fiber.Ctx) error
	Get(c *fiber.Ctx) error
	SetFilters(c *fiber.Ctx) error
	Next(c *fiber.Ctx) error
	Previous(c *fiber.Ctx) error
	Reset(c *fiber.Ctx) error
	Refresh(c *fiber.Ctx) error
	Unmount(c *fiber.Ctx) error
}

func mountList(r fiber.Router, h listRoutes) {
	r.Post("/", h.Mount)
	r.Get("/:viewID", h.Get)
	r.Put("/:viewID/filters", h.SetFilters)
	r.Post("/:viewID/next", h.Next)
	r.Post("/:viewID/previous", h.Previous)
	r.Post("/:viewID/reset", h.Reset)
	r.Post("/:viewID/refresh", h.Refresh)
	r.Delete("/:viewID", h.Unmount)
}

func newHealthHandler(d Dependencies) *handlers.HealthHandler {
	checks := map[string]handlers.Pinger{
		"database": repositories.NewDBHealthCheck(d.DB),
		"redis":    nil,
	}
	if d.Cache == nil {
		return handlers.NewHealthHandler(checks, nil)
	}
	checks["redis"] = d.Cache
	return handlers.NewHealthHandler(checks, d.Cache)
}
