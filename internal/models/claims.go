package models

import "github.com/golang-jwt/jwt/v5"

// AdminClaims is the console operator's access token payload.
type AdminClaims struct {
	jwt.RegisteredClaims
	AdminID      string   `json:"admin_id"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	Permissions  []string `json:"permissions"`
	TokenVersion int      `json:"token_version"`
}

// HasPermission checks if the claims include a specific permission
func (c *AdminClaims) HasPermission(permission string) bool {
	if c.Role == RoleSuperAdmin {
		return true
	}
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
