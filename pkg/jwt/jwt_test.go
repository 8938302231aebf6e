package jwt

import (
	"testing"
	"time"

	"rdv-booking/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(accessExpiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  accessExpiry,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	service := newTestService(15 * time.Minute)

	token, tokenID, err := service.GenerateAccessToken(42, "claire.martin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, 42, claims.PatientID)
	assert.Equal(t, "claire.martin@example.com", claims.Email)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenCarriesType(t *testing.T) {
	service := newTestService(15 * time.Minute)

	token, _, err := service.GenerateRefreshToken(42, "claire.martin@example.com")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestTokenIDsAreUnique(t *testing.T) {
	service := newTestService(15 * time.Minute)

	_, first, err := service.GenerateAccessToken(1, "a@example.com")
	require.NoError(t, err)
	_, second, err := service.GenerateAccessToken(1, "a@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestExpiredTokenRejected(t *testing.T) {
	service := newTestService(-time.Minute)

	token, _, err := service.GenerateAccessToken(42, "claire.martin@example.com")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenSignedWithOtherSecretRejected(t *testing.T) {
	service := newTestService(15 * time.Minute)
	other := NewJWTService(config.JWTConfig{
		Secret:        "other-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})

	token, _, err := other.GenerateAccessToken(42, "claire.martin@example.com")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	service := newTestService(15 * time.Minute)

	_, err := service.ValidateToken("not.a.token")
	assert.Error(t, err)
}
