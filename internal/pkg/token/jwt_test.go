package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewService("segredo", time.Hour)

	tokenString, err := svc.GenerateToken(42, "admin@acme.com", []string{"ROLE_ADMIN"})
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin@acme.com", claims.Email)
	assert.Equal(t, []string{"ROLE_ADMIN"}, claims.Roles)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, Issuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	tokenString, err := NewService("segredo", time.Hour).GenerateToken(1, "a@a.com", []string{"ROLE_USER"})
	require.NoError(t, err)

	_, err = NewService("outro-segredo", time.Hour).ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewService("segredo", time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tokenString, err := svc.GenerateToken(1, "a@a.com", []string{"ROLE_USER"})
	require.NoError(t, err)

	_, err = NewService("segredo", time.Minute).ValidateToken(tokenString)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateToken_RejectsNonHMAC(t *testing.T) {
	claims := CustomClaims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewService("segredo", time.Hour).ValidateToken(unsigned)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := NewService("segredo", time.Hour).ValidateToken("nao-e-um-jwt")
	assert.Error(t, err)
}
