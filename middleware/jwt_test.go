package middleware

import (
	"testing"

	"lms/config"
	"lms/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWT_RoundTrip(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	tokenString, err := GenerateJWT(42, "student@example.com", models.RoleStudent)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(42), claims["userId"])
	assert.Equal(t, "student@example.com", claims["email"])
	assert.Equal(t, "STUDENT", claims["role"])
}

func TestGenerateJWT_WrongKeyFails(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	tokenString, err := GenerateJWT(1, "a@example.com", models.RoleAdmin)
	require.NoError(t, err)

	_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}
