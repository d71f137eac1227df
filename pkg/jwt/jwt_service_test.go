package jwt

import (
	"PantryPal-Backend/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewJWTService()

	token := service.GenerateTokenUser("user-123", "user@example.com")
	require.NotEmpty(t, token)

	userID, email, err := service.GetPrincipalByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, "user@example.com", email)
}

func TestTamperedTokenRejected(t *testing.T) {
	service := NewJWTService()

	token := service.GenerateTokenUser("user-123", "user@example.com")
	_, _, err := service.GetPrincipalByToken(token + "x")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGarbageTokenRejected(t *testing.T) {
	service := NewJWTService()

	_, _, err := service.GetPrincipalByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
