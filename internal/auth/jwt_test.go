package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthenticator() *JWTAuthenticator {
	return NewJWTAuthenticator("access-secret", "refresh-secret", "tenthouse", "tenthouse", time.Hour, 24*time.Hour)
}

func TestGenerateAndValidate(t *testing.T) {
	a := newTestAuthenticator()

	access, refresh, err := a.GenerateTokens("admin", RoleAdmin)
	require.NoError(t, err)

	tok, err := a.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, Role(tok))
	assert.Equal(t, "admin", Subject(tok))

	rtok, err := a.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, Role(rtok))

	_, err = a.ValidateAccessToken(refresh)
	assert.Error(t, err, "refresh token must not pass as access token")
	_, err = a.ValidateRefreshToken(access)
	assert.Error(t, err, "access token must not pass as refresh token")
}

func TestExpiredToken(t *testing.T) {
	a := newTestAuthenticator()
	issued := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return issued }

	access, _, err := a.GenerateTokens("admin", RoleAdmin)
	require.NoError(t, err)

	a.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = a.ValidateAccessToken(access)
	assert.Error(t, err)
}

func TestWrongIssuer(t *testing.T) {
	a := newTestAuthenticator()
	other := NewJWTAuthenticator("access-secret", "refresh-secret", "tenthouse", "someone-else", time.Hour, time.Hour)

	access, _, err := other.GenerateTokens("admin", RoleAdmin)
	require.NoError(t, err)
	_, err = a.ValidateAccessToken(access)
	assert.Error(t, err)
}

func TestCheckPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("tent-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckPassword(string(hash), "tent-secret"))
	assert.False(t, CheckPassword(string(hash), "wrong"))
	assert.False(t, CheckPassword("", "tent-secret"))
}
