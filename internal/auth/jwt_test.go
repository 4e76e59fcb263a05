package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService("test-secret", "safeqr-test")
	guardianID := uuid.New()

	token, err := svc.GenerateToken(guardianID, "guardian@example.com", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, guardianID, claims.GuardianID)
	assert.Equal(t, "guardian@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "safeqr-test", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := NewJWTService("secret-a", "safeqr-test")
	other := NewJWTService("secret-b", "safeqr-test")

	token, err := svc.GenerateToken(uuid.New(), "guardian@example.com", false)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewJWTService("test-secret", "safeqr-test")

	claims := Claims{
		GuardianID: uuid.New(),
		Email:      "guardian@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			Issuer:    "safeqr-test",
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", "safeqr-test")
	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
