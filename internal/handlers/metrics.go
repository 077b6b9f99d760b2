package handlers

import (
	"context"
	"time"

	"orusconsole/internal/services/metrics"
	"orusconsole/internal/services/views"
	"orusconsole/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// maxAwait bounds how long GET ?wait=true holds a request open.
const maxAwait = 15 * time.Second

type MetricsHandler struct {
	source   metrics.Source
	registry *views.Registry
	logger   *zap.Logger
	now      func() time.Time
}

func NewMetricsHandler(source metrics.Source, registry *views.Registry, logger *zap.Logger) *MetricsHandler {
	return &MetricsHandler{
		source:   source,
		registry: registry,
		logger:   logger,
		now:      time.Now,
	}
}

type metricsResponse struct {
	ViewID string        `json:"viewId"`
	View   metrics.Model `json:"view"`
}

// Mount starts a card on the default period.
func (h *MetricsHandler) Mount(c *fiber.Ctx) error {
	card := metrics.NewCard(h.source, h.logger, metrics.WithClock(h.now))
	id := h.registry.Add(views.KindMetrics, card, card.Close)
	return c.Status(fiber.StatusCreated).JSON(metricsResponse{ViewID: id, View: card.Snapshot()})
}

// Get renders the card. With wait=true it first waits for the pending fetch.
func (h *MetricsHandler) Get(c *fiber.Ctx) error {
	id := c.Params("viewID")
	card, err := views.Get[*metrics.Card](h.registry, id)
	if err != nil {
		return response.DomainError(c, err)
	}
	if c.QueryBool("wait") {
		ctx, cancel := context.WithTimeout(c.UserContext(), maxAwait)
		defer cancel()
		return c.JSON(metricsResponse{ViewID: id, View: card.Await(ctx)})
	}
	return c.JSON(metricsResponse{ViewID: id, View: card.Snapshot()})
}

// SetPeriod selects a period; the previous fetch is abandoned.
func (h *MetricsHandler) SetPeriod(c *fiber.Ctx) error {
	var input struct {
		Period string `json:"period"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	p, err := metrics.ParsePeriod(input.Period)
	if err != nil {
		return response.DomainError(c, err)
	}

	id := c.Params("viewID")
	card, err := views.Get[*metrics.Card](h.registry, id)
	if err != nil {
		return response.DomainError(c, err)
	}
	card.Select(p)
	return c.JSON(metricsResponse{ViewID: id, View: card.Snapshot()})
}

func (h *MetricsHandler) Unmount(c *fiber.Ctx) error {
	if err := h.registry.Remove(c.Params("viewID")); err != nil {
		return response.DomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetMetrics loads one period's snapshot without a mounted card.
func (h *MetricsHandler) GetMetrics(c *fiber.Ctx) error {
	p, err := metrics.ParsePeriod(c.Query("period", string(metrics.DefaultPeriod)))
	if err != nil {
		return response.DomainError(c, err)
	}
	rng := metrics.RangeFor(p, h.now())

	m, err := h.source.DashboardMetrics(c.UserContext(), rng)
	if err != nil {
		h.logger.Warn("metrics fetch failed", zap.String("range", rng.Key()), zap.Error(err))
		return response.DomainError(c, err)
	}
	return c.JSON(metrics.Model{
		Period:  p,
		Periods: metrics.Periods,
		Range:   rng,
		Chart:   metrics.Chart(m),
		Summary: metrics.Summary(m),
	})
}
