package auth

import (
	"testing"
	"time"

	"courier/config"
	"courier/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	user := &entity.User{
		ID:    42,
		Email: "agent@example.com",
		Role:  entity.RoleDeliveryAgent,
	}

	accessToken, refreshToken, err := jwtService.GenerateTokens(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	claims, err := jwtService.ValidateAccessToken(accessToken)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "agent@example.com", claims.Email)
	assert.Equal(t, entity.RoleDeliveryAgent, claims.Role)
	assert.Equal(t, "access", claims.Type)
}

func TestJWTService_ValidateRefreshToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	user := &entity.User{ID: 7, Email: "customer@example.com", Role: entity.RoleCustomer}

	accessToken, refreshToken, err := jwtService.GenerateTokens(user)
	assert.NoError(t, err)

	claims, err := jwtService.ValidateRefreshToken(refreshToken)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "refresh", claims.Type)

	// Access tokens are signed with a different secret and must not pass
	// refresh-token validation.
	claims, err = jwtService.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RefreshTokenRejectedAsAccess(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	user := &entity.User{ID: 7, Email: "customer@example.com", Role: entity.RoleCustomer}

	_, refreshToken, err := jwtService.GenerateTokens(user)
	assert.NoError(t, err)

	// Refresh tokens are signed with a different secret and must not pass
	// access-token validation.
	claims, err := jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	cfg := testConfig()
	cfg.Auth = &config.AuthConfig{RefreshTokenTTL: time.Hour * 24}

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.Equal(t, time.Hour*24, jwtService.GetRefreshTokenDuration())
}
