package handlers

import (
	"context"

	"orusconsole/internal/models"
	"orusconsole/internal/services/listing"
	"orusconsole/internal/services/query"
	"orusconsole/internal/services/views"
	"orusconsole/internal/utils/pagination"
	"orusconsole/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ListHandler serves one account list, both as mounted views and as a
// stateless search endpoint.
type ListHandler[T models.Record] struct {
	kind     views.Kind
	labels   listing.Labels
	load     func(ctx context.Context) ([]T, error)
	registry *views.Registry
	logger   *zap.Logger
}

func NewListHandler[T models.Record](
	kind views.Kind,
	labels listing.Labels,
	load func(ctx context.Context) ([]T, error),
	registry *views.Registry,
	logger *zap.Logger,
) *ListHandler[T] {
	return &ListHandler[T]{
		kind:     kind,
		labels:   labels,
		load:     load,
		registry: registry,
		logger:   logger,
	}
}

type listResponse[T any] struct {
	ViewID string           `json:"viewId"`
	View   listing.Model[T] `json:"view"`
	Loaded bool             `json:"loaded"`
	Error  string           `json:"error,omitempty"`
}

func newListResponse[T models.Record](id string, v *listing.View[T], errMsg string) listResponse[T] {
	return listResponse[T]{ViewID: id, View: v.Model(), Loaded: v.Loaded(), Error: errMsg}
}

// Mount creates a list view and loads its records. A failed load still
// mounts the view; refresh retries.
func (h *ListHandler[T]) Mount(c *fiber.Ctx) error {
	v := listing.NewView[T](h.labels)
	id := h.registry.Add(h.kind, v, nil)

	errMsg := h.refresh(c.UserContext(), v)
	return c.Status(fiber.StatusCreated).JSON(newListResponse(id, v, errMsg))
}

func (h *ListHandler[T]) Get(c *fiber.Ctx) error {
	return h.with(c, func(*listing.View[T]) error { return nil })
}

// SetFilters replaces the filter inputs and returns to the first page.
func (h *ListHandler[T]) SetFilters(c *fiber.Ctx) error {
	var f listing.Filters
	if err := c.BodyParser(&f); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	return h.with(c, func(v *listing.View[T]) error { return v.SetFilters(f) })
}

func (h *ListHandler[T]) Next(c *fiber.Ctx) error {
	return h.with(c, func(v *listing.View[T]) error {
		v.Next()
		return nil
	})
}

func (h *ListHandler[T]) Previous(c *fiber.Ctx) error {
	return h.with(c, func(v *listing.View[T]) error {
		v.Previous()
		return nil
	})
}

func (h *ListHandler[T]) Reset(c *fiber.Ctx) error {
	return h.with(c, func(v *listing.View[T]) error {
		v.Reset()
		return nil
	})
}

// Refresh refetches the list membership from the platform, bypassing the
// query cache.
func (h *ListHandler[T]) Refresh(c *fiber.Ctx) error {
	id := c.Params("viewID")
	v, err := views.Get[*listing.View[T]](h.registry, id)
	if err != nil {
		return response.DomainError(c, err)
	}
	errMsg := h.refresh(query.Refetch(c.UserContext()), v)
	return c.JSON(newListResponse(id, v, errMsg))
}

func (h *ListHandler[T]) Unmount(c *fiber.Ctx) error {
	if err := h.registry.Remove(c.Params("viewID")); err != nil {
		return response.DomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Search filters and paginates without a mounted view.
func (h *ListHandler[T]) Search(c *fiber.Ctx) error {
	f := listing.Filters{
		SearchTerm:   c.Query("search"),
		FilterBy:     c.Query("filterBy"),
		DateFilter:   c.Query("date"),
		StatusFilter: c.Query("status"),
	}
	if err := f.Validate(); err != nil {
		return response.DomainError(c, err)
	}
	page := pagination.ParsePage(c)

	records, err := h.load(c.UserContext())
	if err != nil {
		h.logger.Warn("list load failed", zap.String("kind", string(h.kind)), zap.Error(err))
		return response.DomainError(c, err)
	}
	return c.JSON(listing.Build(records, f, page, h.labels))
}

func (h *ListHandler[T]) with(c *fiber.Ctx, fn func(v *listing.View[T]) error) error {
	id := c.Params("viewID")
	v, err := views.Get[*listing.View[T]](h.registry, id)
	if err != nil {
		return response.DomainError(c, err)
	}
	if err := fn(v); err != nil {
		return response.DomainError(c, err)
	}
	return c.JSON(newListResponse(id, v, ""))
}

func (h *ListHandler[T]) refresh(ctx context.Context, v *listing.View[T]) string {
	records, err := h.load(ctx)
	if err != nil {
		h.logger.Warn("list load failed", zap.String("kind", string(h.kind)), zap.Error(err))
		return "Failed to load " + h.labels.Plural
	}
	v.SetRecords(records)
	return ""
}
