package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodies-backend/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	service := NewJWTService()

	token := service.GenerateToken("640c2dd963a319ea671e3724")
	require.NotEmpty(t, token)

	userID, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "640c2dd963a319ea671e3724", userID)
}

func TestGetUserIDByTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	service := NewJWTService()

	_, err := service.GetUserIDByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetUserIDByTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token := NewJWTService().GenerateToken("u1")

	t.Setenv("JWT_SECRET", "second-secret")
	_, err := NewJWTService().GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
