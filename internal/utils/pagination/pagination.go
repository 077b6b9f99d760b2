package pagination

import (
	"github.com/gofiber/fiber/v2"
)

// ParsePage reads the 1-based page query parameter. Missing or invalid
// values fall back to page 1; the page size is fixed by the list.
func ParsePage(c *fiber.Ctx) int {
	page := c.QueryInt("page", 1)
	if page < 1 {
		return 1
	}
	return page
}
