// Package main is the entry point for the console server. It opens the
// database, Redis and platform client, mounts the routes and serves until
// interrupted.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orusconsole/internal/config"
	"orusconsole/internal/logging"
	"orusconsole/internal/platform"
	"orusconsole/internal/repositories"
	"orusconsole/internal/repositories/cache"
	"orusconsole/internal/routes"
	"orusconsole/internal/services/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := repositories.InitDB(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logger.Warn("Failed to get database instance", zap.Error(err))
			return
		}
		if err := sqlDB.Close(); err != nil {
			logger.Warn("Failed to close database connection", zap.Error(err))
		}
	}()

	// The console works without Redis; reads then go straight to the platform.
	queryCache := cache.NewQueryCache(cache.NewRedisClient(&cache.RedisConfig{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}), cfg.QueryCacheTTL)
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
	if err := queryCache.HealthCheck(pingCtx); err != nil {
		logger.Warn("Redis unavailable, query cache disabled", zap.Error(err))
		_ = queryCache.Close()
		queryCache = nil
	} else {
		logger.Info("✅ Redis query cache connected")
		defer func() {
			if err := queryCache.Close(); err != nil {
				logger.Warn("Failed to close Redis connection", zap.Error(err))
			}
		}()
	}
	cancelPing()

	client := platform.NewClient(platform.Config{
		BaseURL: cfg.PlatformURL,
		Token:   cfg.PlatformToken,
		Timeout: cfg.PlatformTimeout,
	}, logger.Named("platform"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := views.NewRegistry(cfg.ViewIdleTTL, logger.Named("views"))
	go registry.Run(ctx)

	app := fiber.New(fiber.Config{
		AppName:      "Orus Console",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api/auth/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	routes.SetupRoutes(app, routes.Dependencies{
		Config:   cfg,
		DB:       db,
		Cache:    queryCache,
		Client:   client,
		Registry: registry,
		Logger:   logger,
	})

	go func() {
		<-ctx.Done()
		logger.Info("Shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("Console listening", zap.String("port", cfg.Port), zap.String("platform", cfg.PlatformURL))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}
