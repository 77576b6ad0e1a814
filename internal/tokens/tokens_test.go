package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-jwt-secret")

func TestSignAndParseAccessToken(t *testing.T) {
	token, err := SignAccessToken(42, testSecret, 10*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := AccessClaimsFromToken(token, testSecret)
	require.NoError(t, err)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.Time.After(time.Now()))
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := SignAccessToken(42, testSecret, -time.Minute)
	require.NoError(t, err)

	claims, err := AccessClaimsFromToken(token, testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := SignAccessToken(42, testSecret, 10*time.Minute)
	require.NoError(t, err)

	claims, err := AccessClaimsFromToken(token, []byte("other-secret"))
	require.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, err := AccessClaimsFromToken("not.a.jwt", testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}
