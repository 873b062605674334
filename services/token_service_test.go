package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_SignAndVerify(t *testing.T) {
	ts := NewTokenService("test-secret")

	signed, err := ts.Sign("user-1", "ada@example.com")
	require.NoError(t, err)

	claims, err := ts.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.ID)
	assert.Equal(t, "ada@example.com", claims.Email)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)

	// Fixed six-hour validity window.
	assert.Equal(t, 6*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	signed, err := NewTokenService("secret-one").Sign("user-1", "ada@example.com")
	require.NoError(t, err)

	_, err = NewTokenService("secret-two").Verify(signed)
	assert.Error(t, err)
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	secret := "test-secret"
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
		ID:    "user-1",
		Email: "ada@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-7 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewTokenService(secret).Verify(signed)
	assert.Error(t, err)
}

func TestTokenService_RejectsUnsignedToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, TokenClaims{ID: "user-1"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenService("test-secret").Verify(signed)
	assert.Error(t, err)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	_, err := NewTokenService("test-secret").Verify("not.a.token")
	assert.Error(t, err)
}
