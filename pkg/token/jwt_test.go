package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTIssuer_IssueAndParse(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", time.Hour, "auth-test")

	tok, err := issuer.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := issuer.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "auth-test", claims.Issuer)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTIssuer_ParseRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTIssuer("secret-a", time.Hour, "auth-test")
	other := NewJWTIssuer("secret-b", time.Hour, "auth-test")

	tok, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestJWTIssuer_ParseRejectsExpired(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", -time.Minute, "auth-test")

	tok, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = issuer.Parse(tok)
	assert.Error(t, err)
}

func TestJWTIssuer_ParseRejectsGarbage(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", time.Hour, "auth-test")

	_, err := issuer.Parse("not.a.token")
	assert.Error(t, err)
}

func TestStaticIssuer(t *testing.T) {
	issuer := StaticIssuer{Token: "fixed"}

	tok, err := issuer.Issue("anyone")
	require.NoError(t, err)
	assert.Equal(t, "fixed", tok)
}
