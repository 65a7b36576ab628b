package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seacatering/catering-api/internal/config"
	"github.com/seacatering/catering-api/internal/models"
)

func testService() *TokenService {
	return NewTokenService(&config.Config{
		JWTSecret:       "access-secret",
		RefreshSecret:   "refresh-secret",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
	})
}

func testUser() *models.User {
	return &models.User{
		ID:    3,
		Name:  "Brian",
		Email: "brian@seacatering.id",
		Role:  string(models.RoleAdmin),
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	s := testService()

	token, err := s.NewAccessToken(testUser())
	require.NoError(t, err)

	claims, err := s.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(3), claims.UserID)
	assert.Equal(t, "Brian", claims.Name)
	assert.Equal(t, "brian@seacatering.id", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	s := testService()

	token, jti, err := s.NewRefreshToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, jti)

	claims, parsedJTI, err := s.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, jti, parsedJTI)
	assert.Equal(t, uint(3), claims.UserID)
}

func TestTokenSecretsAreNotInterchangeable(t *testing.T) {
	s := testService()

	refresh, _, err := s.NewRefreshToken(testUser())
	require.NoError(t, err)
	_, err = s.ParseAccessToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	access, err := s.NewAccessToken(testUser())
	require.NoError(t, err)
	_, _, err = s.ParseRefreshToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredTokenRejected(t *testing.T) {
	s := NewTokenService(&config.Config{
		JWTSecret:      "access-secret",
		AccessTokenTTL: -time.Minute,
	})

	token, err := s.NewAccessToken(testUser())
	require.NoError(t, err)

	_, err = s.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestInvalidRoleClaimRejected(t *testing.T) {
	s := testService()

	token, err := s.NewAccessToken(&models.User{ID: 9, Role: "owner"})
	require.NoError(t, err)

	_, err = s.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
