package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "orusconsole/internal/errors"
	"orusconsole/internal/models"
	"orusconsole/internal/services/auth"
	"orusconsole/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const secret = "test-secret"

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.Admin, string, error) {
	args := m.Called(ctx, email, password)
	admin, _ := args.Get(0).(*models.Admin)
	return admin, args.String(1), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, adminID string) error {
	return m.Called(ctx, adminID).Error(0)
}

func (m *MockAuthService) GetTokenVersion(ctx context.Context, adminID string) (int, error) {
	args := m.Called(ctx, adminID)
	return args.Int(0), args.Error(1)
}

func newApp(svc auth.Service, perm string) *fiber.App {
	app := fiber.New()
	mw := NewAuthMiddleware(svc, secret, zap.NewNop())
	app.Get("/me", mw.Handler, HasPermission(perm), func(c *fiber.Ctx) error {
		return c.SendString(auth.AdminIDFromContext(c.UserContext()))
	})
	return app
}

func token(t *testing.T, claims models.AdminClaims) string {
	t.Helper()
	tok, err := utils.GenerateToken(&claims, secret, time.Hour)
	require.NoError(t, err)
	return "Bearer " + tok
}

func TestHandler(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("GetTokenVersion", mock.Anything, "7").Return(3, nil)
	svc.On("GetTokenVersion", mock.Anything, "9").Return(0, apperrors.ErrAdminNotFound)
	app := newApp(svc, models.PermissionConsoleRead)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"not bearer", "Basic abc", fiber.StatusUnauthorized},
		{"garbage token", "Bearer nope", fiber.StatusUnauthorized},
		{"stale version", token(t, models.AdminClaims{AdminID: "7", TokenVersion: 2, Role: models.RoleSupport}), fiber.StatusUnauthorized},
		{"unknown operator", token(t, models.AdminClaims{AdminID: "9", Role: models.RoleSupport}), fiber.StatusUnauthorized},
		{"no permission", token(t, models.AdminClaims{AdminID: "7", TokenVersion: 3, Role: "viewer"}), fiber.StatusForbidden},
		{"ok", token(t, models.AdminClaims{
			AdminID:      "7",
			TokenVersion: 3,
			Role:         models.RoleSupport,
			Permissions:  models.GetDefaultPermissions(models.RoleSupport),
		}), fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestHasPermission_AdminRoleBypasses(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("GetTokenVersion", mock.Anything, "1").Return(0, nil)
	app := newApp(svc, models.PermissionDeleteAccount)

	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, token(t, models.AdminClaims{AdminID: "1", Role: models.RoleAdmin}))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHandler_CookieFallback(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("GetTokenVersion", mock.Anything, "7").Return(1, nil)
	app := newApp(svc, models.PermissionConsoleRead)

	raw := token(t, models.AdminClaims{AdminID: "7", TokenVersion: 1, Role: models.RoleAdmin})
	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: raw[len("Bearer "):]})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "7", string(body))
}
