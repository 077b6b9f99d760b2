package utils

import (
	"testing"
	"time"

	"orusconsole/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(&models.AdminClaims{
		AdminID:      "7",
		Email:        "ops@orus.test",
		Role:         models.RoleAdmin,
		Permissions:  models.GetDefaultPermissions(models.RoleAdmin),
		TokenVersion: 2,
	}, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "7", claims.AdminID)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, 2, claims.TokenVersion)
	assert.True(t, claims.HasPermission(models.PermissionAdjustBalance))
}

func TestParseToken_Rejects(t *testing.T) {
	token, err := GenerateToken(&models.AdminClaims{AdminID: "7"}, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)

	expired, err := GenerateToken(&models.AdminClaims{AdminID: "7"}, "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(expired, "secret")
	assert.Error(t, err)

	_, err = ParseToken("not-a-token", "secret")
	assert.Error(t, err)
}

func TestGenerateToken_RequiresSecret(t *testing.T) {
	_, err := GenerateToken(&models.AdminClaims{AdminID: "7"}, "", time.Hour)
	assert.Error(t, err)
}
