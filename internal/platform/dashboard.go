package platform

import (
	"context"
	"net/url"

	"orusconsole/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardMetrics fetches the aggregate counters for a date range. A
// missing payload decodes as nil metrics.
func (c *client) GetDashboardMetrics(ctx context.Context, r models.DateRange) (*models.DashboardMetrics, error) {
	query := url.Values{}
	query.Set("fromDate", r.FromDate)
	query.Set("toDate", r.ToDate)

	var env dataEnvelope[*models.DashboardMetrics]
	if err := c.do(ctx, fiber.MethodGet, "/admin/dashboard", query.Encode(), nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}
