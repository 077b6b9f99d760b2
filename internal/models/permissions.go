package models

// Operator roles
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleSupport    = "support"
)

// Permission constants
const (
	// Read access to dashboards, lists and account details
	PermissionConsoleRead = "console:read"

	// Wallet adjustments
	PermissionAdjustPoints  = "wallet:adjust-points"
	PermissionAdjustBalance = "wallet:adjust-balance"

	// Account management
	PermissionResetPassword = "account:reset-password"
	PermissionDeleteAccount = "account:delete"
)

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role string) []string {
	switch role {
	case RoleSuperAdmin, RoleAdmin:
		return []string{
			PermissionConsoleRead,
			PermissionAdjustPoints,
			PermissionAdjustBalance,
			PermissionResetPassword,
			PermissionDeleteAccount,
		}
	case RoleSupport:
		return []string{
			PermissionConsoleRead,
			PermissionAdjustPoints,
			PermissionResetPassword,
		}
	default:
		return []string{}
	}
}
