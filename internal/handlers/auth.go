package handlers

import (
	"time"

	"orusconsole/internal/services/auth"
	"orusconsole/internal/utils"
	"orusconsole/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
	tokenTTL    time.Duration
	secure      bool
}

func NewAuthHandler(authService auth.Service, tokenTTL time.Duration, secure bool) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokenTTL:    tokenTTL,
		secure:      secure,
	}
}

// Login signs an operator in and returns the access token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Email == "" || input.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}

	admin, token, err := h.authService.Login(c.UserContext(), input.Email, input.Password)
	if err != nil {
		return response.DomainError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		Secure:   h.secure,
		Path:     "/",
		SameSite: "Strict",
		MaxAge:   int(h.tokenTTL.Seconds()),
	})

	return c.JSON(fiber.Map{
		"access_token": token,
		"admin": fiber.Map{
			"id":          admin.ID,
			"email":       admin.Email,
			"name":        admin.Name,
			"role":        admin.Role,
			"permissions": admin.EffectivePermissions(),
		},
	})
}

// Logout revokes every token issued to the calling operator.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, err := utils.GetAdminClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	if err := h.authService.Logout(c.UserContext(), claims.AdminID); err != nil {
		return response.DomainError(c, err)
	}

	c.ClearCookie("access_token")
	return response.Success(c, "Logged out", nil)
}
