package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessToken_RoundTrip(t *testing.T) {
	m := NewManager("test-secret", "catalog-admin", time.Hour)

	token, err := m.GenerateAccessToken("user-1", RoleAdmin)
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "catalog-admin", claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", "", time.Hour).GenerateAccessToken("user-1", RoleAdmin)
	require.NoError(t, err)

	_, err = NewManager("secret-b", "", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	m := NewManager("test-secret", "", time.Minute)
	issued := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }

	token, err := m.GenerateAccessToken("user-1", RoleAdmin)
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
}

func TestValidateToken_WrongIssuer(t *testing.T) {
	token, err := NewManager("test-secret", "someone-else", time.Hour).GenerateAccessToken("user-1", RoleAdmin)
	require.NoError(t, err)

	_, err = NewManager("test-secret", "catalog-admin", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateAccessToken_RejectsOtherTypes(t *testing.T) {
	m := NewManager("test-secret", "", time.Hour)
	claims := Claims{
		UserID: "user-1",
		Type:   "refresh",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}
