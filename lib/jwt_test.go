package lib

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseToken(t *testing.T) {
	token, exp, err := IssueAccessToken("register-1", "secret", time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "register-1", claims.Terminal)
	assert.WithinDuration(t, exp, claims.Exp, time.Second)
	assert.NotEqual(t, claims.Jti.String(), "00000000-0000-0000-0000-000000000000")
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := IssueAccessToken("register-1", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestParseTokenRejectsExpiredToken(t *testing.T) {
	token, _, err := IssueAccessToken("register-1", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret")
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token", "secret")
	assert.Error(t, err)
}

func TestExtractClaimsFromCookie(t *testing.T) {
	token, _, err := IssueAccessToken("register-1", "secret", time.Hour)
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/auth/me", nil)
	r.AddCookie(&http.Cookie{Name: AccessCookieName, Value: token})

	claims, err := ExtractClaims(r, "secret")
	require.NoError(t, err)
	assert.Equal(t, "register-1", claims.Terminal)
}

func TestExtractClaimsWithoutCookie(t *testing.T) {
	r := httptest.NewRequest("GET", "/auth/me", nil)

	_, err := ExtractClaims(r, "secret")
	assert.Error(t, err)
}
