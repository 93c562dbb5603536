// internal/pkg/auth/auth_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanat-silver/storefront-backend/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Amanat Silver API"},
		JWT: config.JWTConfig{
			Secret:             "test-secret-key-that-is-long-enough-123",
			AccessTokenExpiry:  time.Hour,
			RefreshTokenExpiry: 24 * time.Hour,
		},
		Security: config.SecurityConfig{BcryptCost: 4},
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager(testConfig())

	token, err := manager.GenerateAccessToken(1, "admin@amanatsilver.in", true)
	require.NoError(t, err)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "admin@amanatsilver.in", claims.Email)
	assert.True(t, claims.IsAdmin)

	// A refresh token must not pass access validation
	refresh, err := manager.GenerateRefreshToken(1, "admin@amanatsilver.in")
	require.NoError(t, err)
	_, err = manager.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	manager := NewJWTManager(testConfig())

	_, err := manager.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc123", ExtractTokenFromHeader("Bearer abc123"))
	assert.Equal(t, "", ExtractTokenFromHeader("abc123"))
	assert.Equal(t, "", ExtractTokenFromHeader(""))
}

func TestPasswordHashAndVerify(t *testing.T) {
	passwords := NewPasswordManager(testConfig())

	hash, err := passwords.HashPassword("Sterling925x")
	require.NoError(t, err)

	assert.NoError(t, passwords.VerifyPassword("Sterling925x", hash))
	assert.Error(t, passwords.VerifyPassword("wrong-password", hash))
}

func TestValidatePassword(t *testing.T) {
	passwords := NewPasswordManager(testConfig())

	assert.NoError(t, passwords.ValidatePassword("Sterling925x"))
	assert.Error(t, passwords.ValidatePassword("short1A"))
	assert.Error(t, passwords.ValidatePassword("alllowercase9"))
	assert.Error(t, passwords.ValidatePassword("ALLUPPERCASE9"))
	assert.Error(t, passwords.ValidatePassword("NoNumbersHere"))
}
