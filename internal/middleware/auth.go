// Package middleware provides HTTP middleware for the console's fiber app.
package middleware

import (
	"strings"

	"orusconsole/internal/models"
	"orusconsole/internal/services/auth"
	"orusconsole/internal/utils"
	"orusconsole/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthMiddleware validates operator access tokens and stores their claims
// in the request context.
type AuthMiddleware struct {
	authService auth.Service
	secret      string
	logger      *zap.Logger
}

func NewAuthMiddleware(authService auth.Service, secret string, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		secret:      secret,
		logger:      logger,
	}
}

// Handler rejects the request unless it carries a valid bearer token whose
// version matches the operator's current one.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	tokenString, ok := bearerToken(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, "missing authorization header")
	}
	if tokenString == "" {
		return response.Error(c, fiber.StatusUnauthorized, "invalid authorization format")
	}

	claims, err := utils.ParseToken(tokenString, m.secret)
	if err != nil {
		m.logger.Debug("token validation failed", zap.Error(err))
		return response.Error(c, fiber.StatusUnauthorized, "invalid token")
	}

	currentVersion, err := m.authService.GetTokenVersion(c.UserContext(), claims.AdminID)
	if err != nil {
		m.logger.Info("token operator not found", zap.String("admin_id", claims.AdminID), zap.Error(err))
		return response.Error(c, fiber.StatusUnauthorized, "invalid token")
	}
	if claims.TokenVersion != currentVersion {
		m.logger.Info("token version mismatch",
			zap.String("admin_id", claims.AdminID),
			zap.Int("token_version", claims.TokenVersion),
			zap.Int("current_version", currentVersion))
		return response.Error(c, fiber.StatusUnauthorized, "session expired")
	}

	c.Locals(utils.ClaimsKey, claims)
	c.SetUserContext(auth.WithAdminID(c.UserContext(), claims.AdminID))
	return c.Next()
}

// bearerToken reads the token from the Authorization header, falling back to
// the access_token cookie the login handler sets for the browser shell.
func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		cookie := c.Cookies("access_token")
		return cookie, cookie != ""
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", true
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

// HasPermission returns a middleware that checks for a specific permission.
func HasPermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := utils.GetAdminClaims(c)
		if err != nil {
			return response.Unauthorized(c)
		}
		if claims.Role == models.RoleAdmin || claims.HasPermission(permission) {
			return c.Next()
		}
		return response.Forbidden(c)
	}
}
