package utils

import (
	"errors"

	"orusconsole/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ClaimsKey is the fiber Locals key the auth middleware stores claims under.
const ClaimsKey = "claims"

// GetAdminClaims extracts the operator claims from the Fiber context.
// It returns an error if the claims are missing or of an invalid type.
func GetAdminClaims(c *fiber.Ctx) (*models.AdminClaims, error) {
	v := c.Locals(ClaimsKey)
	if v == nil {
		return nil, errors.New("claims not found in context")
	}

	claims, ok := v.(*models.AdminClaims)
	if !ok || claims == nil {
		return nil, errors.New("invalid claims type")
	}
	return claims, nil
}

// AdminID returns the acting operator's id, or "" when the request carries
// no identity.
func AdminID(c *fiber.Ctx) string {
	claims, err := GetAdminClaims(c)
	if err != nil {
		return ""
	}
	return claims.AdminID
}
