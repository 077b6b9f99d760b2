package handlers

import (
	"orusconsole/internal/services/overview"
	"orusconsole/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type OverviewHandler struct {
	overviewService *overview.Service
}

func NewOverviewHandler(overviewService *overview.Service) *OverviewHandler {
	return &OverviewHandler{overviewService: overviewService}
}

func (h *OverviewHandler) GetOverview(c *fiber.Ctx) error {
	out, err := h.overviewService.Get(c.UserContext())
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "Overview retrieved", out)
}
