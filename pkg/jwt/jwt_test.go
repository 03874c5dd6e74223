package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute, time.Hour)
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(userID, "admin@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, userID, claims.UserID)
	require.Equal(t, "admin@example.com", claims.Email)
	require.Equal(t, "admin", claims.Role)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute, time.Hour)
	pair, err := svc.GenerateTokenPair(uuid.New(), "a@b.c", "editor")
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := NewJWTService("secret-one", time.Minute, time.Hour)
	pair, err := svc.GenerateTokenPair(uuid.New(), "a@b.c", "viewer")
	require.NoError(t, err)

	other := NewJWTService("secret-two", time.Minute, time.Hour)
	_, err = other.ValidateToken(pair.AccessToken)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = other.ValidateToken("garbage")
	require.ErrorIs(t, err, ErrInvalidToken)
}
