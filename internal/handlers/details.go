package handlers

import (
	"context"
	stderrors "errors"

	"orusconsole/internal/errors"
	"orusconsole/internal/models"
	"orusconsole/internal/services/controls"
	"orusconsole/internal/services/customer"
	"orusconsole/internal/services/journal"
	"orusconsole/internal/services/merchant"
	"orusconsole/internal/services/query"
	"orusconsole/internal/services/views"
	"orusconsole/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const historyLimit = 50

// detailView is what customer and merchant detail views have in common.
type detailView interface {
	Load(ctx context.Context) error
	Retry(ctx context.Context) error
	SwitchTab(ctx context.Context, name string) error
	Panel() *controls.Panel
}

type DetailHandler struct {
	customers customer.Deps
	merchants merchant.Deps
	journal   *journal.Journal
	registry  *views.Registry
	logger    *zap.Logger
}

func NewDetailHandler(
	customers customer.Deps,
	merchants merchant.Deps,
	journal *journal.Journal,
	registry *views.Registry,
	logger *zap.Logger,
) *DetailHandler {
	return &DetailHandler{
		customers: customers,
		merchants: merchants,
		journal:   journal,
		registry:  registry,
		logger:    logger,
	}
}

type detailResponse struct {
	ViewID string      `json:"viewId"`
	View   interface{} `json:"view"`
	Error  string      `json:"error,omitempty"`
	Code   string      `json:"code,omitempty"`
}

func (h *DetailHandler) MountCustomer(c *fiber.Ctx) error {
	v := customer.NewView(c.Params("id"), h.customers)
	return h.mount(c, views.KindCustomerDetail, v)
}

func (h *DetailHandler) MountMerchant(c *fiber.Ctx) error {
	v := merchant.NewView(c.Params("id"), h.merchants)
	return h.mount(c, views.KindMerchantDetail, v)
}

// mount registers the view and loads its record. A failed load is part of
// the rendered view, not an HTTP error.
func (h *DetailHandler) mount(c *fiber.Ctx, kind views.Kind, v detailView) error {
	id := h.registry.Add(kind, v, nil)
	if err := v.Load(c.UserContext()); err != nil {
		h.logger.Warn("detail load failed", zap.String("view_id", id), zap.Error(err))
	}
	return c.Status(fiber.StatusCreated).JSON(detailResponse{ViewID: id, View: render(v)})
}

func (h *DetailHandler) Get(c *fiber.Ctx) error {
	return h.with(c, func(context.Context, detailView) error { return nil })
}

// Retry reloads the account record from the platform, bypassing the query
// cache.
func (h *DetailHandler) Retry(c *fiber.Ctx) error {
	return h.with(c, func(ctx context.Context, v detailView) error {
		if err := v.Retry(query.Refetch(ctx)); err != nil {
			h.logger.Warn("detail retry failed", zap.String("view_id", c.Params("viewID")), zap.Error(err))
		}
		return nil
	})
}

func (h *DetailHandler) SwitchTab(c *fiber.Ctx) error {
	var input struct {
		Tab string `json:"tab"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	return h.with(c, func(ctx context.Context, v detailView) error {
		return v.SwitchTab(ctx, input.Tab)
	})
}

// OpenDialog opens one of the admin control dialogs.
func (h *DetailHandler) OpenDialog(c *fiber.Ctx) error {
	d, err := controls.ParseDialog(c.Params("dialog"))
	if err != nil {
		return response.DomainError(c, err)
	}
	return h.with(c, func(_ context.Context, v detailView) error {
		return v.Panel().Open(d)
	})
}

func (h *DetailHandler) CloseDialog(c *fiber.Ctx) error {
	d, err := controls.ParseDialog(c.Params("dialog"))
	if err != nil {
		return response.DomainError(c, err)
	}
	return h.with(c, func(_ context.Context, v detailView) error {
		v.Panel().Close(d)
		return nil
	})
}

func (h *DetailHandler) ConfirmAdjustPoints(c *fiber.Ctx) error {
	var input controls.Adjustment
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	return h.with(c, func(ctx context.Context, v detailView) error {
		return v.Panel().ConfirmAdjustPoints(ctx, input)
	})
}

func (h *DetailHandler) ConfirmAdjustBalance(c *fiber.Ctx) error {
	var input controls.Adjustment
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	return h.with(c, func(ctx context.Context, v detailView) error {
		return v.Panel().ConfirmAdjustBalance(ctx, input)
	})
}

func (h *DetailHandler) ConfirmResetPassword(c *fiber.Ctx) error {
	var input models.PasswordReset
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	return h.with(c, func(ctx context.Context, v detailView) error {
		return v.Panel().ConfirmResetPassword(ctx, input)
	})
}

func (h *DetailHandler) ConfirmDelete(c *fiber.Ctx) error {
	return h.with(c, func(ctx context.Context, v detailView) error {
		return v.Panel().ConfirmDelete(ctx)
	})
}

func (h *DetailHandler) Unmount(c *fiber.Ctx) error {
	if err := h.registry.Remove(c.Params("viewID")); err != nil {
		return response.DomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CustomerHistory lists the journal entries for one customer.
func (h *DetailHandler) CustomerHistory(c *fiber.Ctx) error {
	return h.history(c, models.KindCustomer)
}

func (h *DetailHandler) MerchantHistory(c *fiber.Ctx) error {
	return h.history(c, models.KindMerchant)
}

func (h *DetailHandler) history(c *fiber.Ctx, kind models.EntityKind) error {
	actions, err := h.journal.History(c.UserContext(), kind, c.Params("id"), historyLimit)
	if err != nil {
		h.logger.Error("failed to load admin history", zap.String("account_id", c.Params("id")), zap.Error(err))
		return response.ServerError(c, "Failed to load history")
	}
	return response.Success(c, "History retrieved", actions)
}

// with runs fn against the mounted view and renders it. Preconditions and
// failed mutations already queued a notice, so they still render the view;
// requests the view cannot accept at all get an error status.
func (h *DetailHandler) with(c *fiber.Ctx, fn func(ctx context.Context, v detailView) error) error {
	id := c.Params("viewID")
	v, err := views.Get[detailView](h.registry, id)
	if err != nil {
		return response.DomainError(c, err)
	}

	err = fn(c.UserContext(), v)
	switch {
	case err == nil, errors.IsPrecondition(err):
		return c.JSON(detailResponse{ViewID: id, View: render(v)})
	case rejected(err):
		return response.DomainError(c, err)
	default:
		resp := detailResponse{ViewID: id, View: render(v), Code: errors.Code(err)}
		var de *errors.DomainError
		if stderrors.As(err, &de) {
			resp.Error = de.Message
		} else {
			resp.Error = err.Error()
		}
		return c.Status(errors.HTTPStatus(err)).JSON(resp)
	}
}

// rejected reports errors raised before the view changed at all.
func rejected(err error) bool {
	return stderrors.Is(err, errors.ErrDialogNotOpen) || stderrors.Is(err, errors.ErrInvalidTab)
}

func render(v detailView) interface{} {
	switch v := v.(type) {
	case *customer.View:
		return v.Model()
	case *merchant.View:
		return v.Model()
	default:
		return nil
	}
}
