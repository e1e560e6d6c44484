package jwt

import (
	"errors"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	token, err := svc.GenerateToken("user-1", "ada@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	issued := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	svc := NewJWTService("secret", time.Hour)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateToken("user-1", "ada@example.com")
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = svc.ValidateToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestValidateRejectsForeignSignature(t *testing.T) {
	token, err := NewJWTService("other-secret", time.Hour).GenerateToken("user-1", "ada@example.com")
	require.NoError(t, err)

	_, err = NewJWTService("secret", time.Hour).ValidateToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestValidateRejectsUnexpectedAlgorithm(t *testing.T) {
	claims := Claims{
		UserID: "user-1",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWTService("secret", time.Hour).ValidateToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := NewJWTService("secret", time.Hour).ValidateToken("not.a.token")
	assert.True(t, errors.Is(err, ErrInvalidToken))
}
