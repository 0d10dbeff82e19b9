package auth

import (
	"testing"

	"petsit_backend/internal/config"
	"petsit_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(t *testing.T) {
	t.Helper()
	config.AppConfig = &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", TTLHours: 1},
	}
	t.Cleanup(func() { config.AppConfig = nil })
}

func TestGenerateAndParseToken(t *testing.T) {
	setupTestConfig(t)

	user := &models.User{
		BaseModel: models.BaseModel{ID: "user-1"},
		Email:     "user@test.com",
		Role:      models.UserRoleUser,
	}

	token, err := GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@test.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	setupTestConfig(t)

	_, err := ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	setupTestConfig(t)

	user := &models.User{BaseModel: models.BaseModel{ID: "user-1"}, Email: "u@test.com", Role: models.UserRoleUser}
	token, err := GenerateToken(user)
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "different-secret"
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
