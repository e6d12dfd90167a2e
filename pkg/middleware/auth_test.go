package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/auth"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/middleware"
)

func newAuthority(t *testing.T) *auth.Authority {
	t.Helper()
	authority, err := auth.NewAuthority([]byte("test-secret"))
	require.NoError(t, err)
	return authority
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(middleware.EmailFromCtx(r.Context()))) //nolint:errcheck
	})
}

func TestAuthenticateMissingHeader(t *testing.T) {
	h := middleware.Authenticate(newAuthority(t))(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateBadToken(t *testing.T) {
	h := middleware.Authenticate(newAuthority(t))(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatePutsEmailInContext(t *testing.T) {
	authority := newAuthority(t)
	token, err := authority.Issue("alice@example.com")
	require.NoError(t, err)

	h := middleware.Authenticate(authority)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice@example.com", rec.Body.String())
}

type roleMap map[string]bool

func (m roleMap) IsAdmin(_ context.Context, email string) (bool, error) {
	return m[email], nil
}

func TestRequireAdmin(t *testing.T) {
	authority := newAuthority(t)
	roles := roleMap{"admin@example.com": true}

	h := middleware.Authenticate(authority)(middleware.RequireAdmin(roles)(okHandler()))

	cases := []struct {
		email string
		want  int
	}{
		{"admin@example.com", http.StatusOK},
		{"user@example.com", http.StatusForbidden},
	}
	for _, tc := range cases {
		token, err := authority.Issue(tc.email)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, tc.want, rec.Code, "email %s", tc.email)
	}
}

func TestRequireSelf(t *testing.T) {
	authority := newAuthority(t)

	r := chi.NewRouter()
	r.With(
		middleware.Authenticate(authority),
		middleware.RequireSelf,
	).Get("/user/admin/{email}", okHandler().ServeHTTP)

	token, err := authority.Issue("alice@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/user/admin/alice@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/user/admin/bob@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
