package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/auth"
)

func TestNewAuthorityRequiresSecret(t *testing.T) {
	_, err := auth.NewAuthority(nil)
	require.Error(t, err)
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	a, err := auth.NewAuthority([]byte("test-secret"))
	require.NoError(t, err)

	token, err := a.Issue("alice@example.com")
	require.NoError(t, err)

	claims, err := a.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(auth.TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyRejectsMalformed(t *testing.T) {
	a, _ := auth.NewAuthority([]byte("test-secret"))

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := a.Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken, "token %q", token)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer, _ := auth.NewAuthority([]byte("secret-one"))
	verifier, _ := auth.NewAuthority([]byte("secret-two"))

	token, err := issuer.Issue("bob@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	a, _ := auth.NewAuthority([]byte("test-secret"))

	token, err := a.Issue("bob@example.com")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	parts[1] = new(jwt.Token).EncodeSegment([]byte(`{"email":"mallory@example.com"}`))

	_, err = a.Verify(strings.Join(parts, "."))
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	a, _ := auth.NewAuthority([]byte("test-secret"))

	claims := auth.Claims{
		Email: "old@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = a.Verify(expired)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
