package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdiallo/quincaillerie-api/internal/models"
)

// Выпущенный токен проходит валидацию и несёт subject и роль.
func TestGenerateAndValidateToken(t *testing.T) {
	service := NewJWTService("test-key")

	tokenString, err := service.GenerateJWT("payeur@quincaillerie.sn", models.RoleResponsablePaiement)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := service.ValidateToken(tokenString)
	require.NoError(t, err)
	require.True(t, token.Valid)

	subject, err := token.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "payeur@quincaillerie.sn", subject)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, string(models.RoleResponsablePaiement), claims["role"])
}

// Токен, подписанный другим ключом, отклоняется.
func TestValidateTokenWrongKey(t *testing.T) {
	tokenString, err := NewJWTService("first-key").GenerateJWT("payeur@quincaillerie.sn", models.RoleResponsablePaiement)
	require.NoError(t, err)

	_, err = NewJWTService("second-key").ValidateToken(tokenString)
	assert.Error(t, err)
}
