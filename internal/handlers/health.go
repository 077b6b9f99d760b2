package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Pinger is a dependency the health check pings.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// StatsSource reports connection pool statistics.
type StatsSource interface {
	GetStats() *redis.PoolStats
}

type HealthHandler struct {
	checks map[string]Pinger
	cache  StatsSource
}

// NewHealthHandler builds the health endpoint. Nil checks are reported as
// disabled; cache may be nil.
func NewHealthHandler(checks map[string]Pinger, cache StatsSource) *HealthHandler {
	return &HealthHandler{checks: checks, cache: cache}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := "ok"
	services := fiber.Map{}
	for name, check := range h.checks {
		switch {
		case check == nil:
			services[name] = "disabled"
		case check.HealthCheck(ctx) != nil:
			services[name] = "unavailable"
			status = "degraded"
		default:
			services[name] = "connected"
		}
	}

	return c.JSON(fiber.Map{
		"status":   status,
		"version":  "1.0.0",
		"services": services,
	})
}

func (h *HealthHandler) CacheStats(c *fiber.Ctx) error {
	if h.cache == nil {
		return c.JSON(fiber.Map{"cache": "disabled"})
	}
	poolStats := h.cache.GetStats()
	return c.JSON(fiber.Map{
		"pool_stats": fiber.Map{
			"hits":        poolStats.Hits,
			"misses":      poolStats.Misses,
			"timeouts":    poolStats.Timeouts,
			"total_conns": poolStats.TotalConns,
			"idle_conns":  poolStats.IdleConns,
			"stale_conns": poolStats.StaleConns,
		},
	})
}
