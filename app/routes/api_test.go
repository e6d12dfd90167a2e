package routes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/routes"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/auth"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/middleware"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/router"
)

type noAdmins struct{}

func (noAdmins) IsAdmin(context.Context, string) (bool, error) { return false, nil }

func newGuardedRouter(t *testing.T) (*router.Router, *auth.Authority) {
	t.Helper()
	authority, err := auth.NewAuthority([]byte("test-secret"))
	require.NoError(t, err)

	r := router.New()
	routes.RegisterAPI(r, routes.Controllers{}, routes.Guards{
		Authenticate: middleware.Authenticate(authority),
		RequireAdmin: middleware.RequireAdmin(noAdmins{}),
	})
	return r, authority
}

func TestRouteTable(t *testing.T) {
	r, _ := newGuardedRouter(t)

	names := map[string]bool{}
	for _, rt := range r.Routes() {
		names[rt.Name] = true
	}

	for _, want := range []string{
		"auth.token", "users.register", "users.is_admin",
		"menu.list", "menu.upload_image", "carts.add",
		"payments.intent", "payments.confirm", "payments.history",
		"stats.home", "stats.orders",
	} {
		assert.True(t, names[want], "missing route %s", want)
	}
}

func TestAdminRoutesRejectAnonymous(t *testing.T) {
	r, _ := newGuardedRouter(t)
	h := r.Handler()

	for _, path := range []string{"/users", "/admin-stats", "/order-stats"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "path %s", path)
	}
}

func TestAdminRoutesRejectNonAdmin(t *testing.T) {
	r, authority := newGuardedRouter(t)
	h := r.Handler()

	token, err := authority.Issue("user@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSelfRouteRejectsOtherUsers(t *testing.T) {
	r, authority := newGuardedRouter(t)
	h := r.Handler()

	token, err := authority.Issue("alice@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/user/admin/bob@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
