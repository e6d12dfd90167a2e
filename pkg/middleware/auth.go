package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/auth"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/response"
)

type claimsKey struct{}

// ClaimsFromCtx returns the verified token claims attached by Authenticate.
func ClaimsFromCtx(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims, ok
}

// EmailFromCtx returns the authenticated email, or "" when unauthenticated.
func EmailFromCtx(ctx context.Context) string {
	if claims, ok := ClaimsFromCtx(ctx); ok {
		return claims.Email
	}
	return ""
}

// Authenticate requires a valid "Authorization: Bearer <token>" header.
// On success the decoded claims are stored in the request context; any
// missing, malformed, or expired token ends the request with a 401 before
// the protected handler runs.
func Authenticate(authority *auth.Authority) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				response.Unauthorized(w)
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header || token == "" {
				response.Unauthorized(w)
				return
			}

			claims, err := authority.Verify(token)
			if err != nil {
				response.Unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminChecker reports whether the given email belongs to an admin user.
// An absent user record means non-admin, not an error.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// RequireAdmin gates a route to admin users. Must run after Authenticate.
func RequireAdmin(users AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := EmailFromCtx(r.Context())
			if email == "" {
				response.Unauthorized(w)
				return
			}

			admin, err := users.IsAdmin(r.Context(), email)
			if err != nil || !admin {
				response.Forbidden(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireSelf gates a route to the identity it is about: the {email} path
// parameter must equal the authenticated email. Must run after Authenticate.
func RequireSelf(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := chi.URLParam(r, "email")
		if email == "" || email != EmailFromCtx(r.Context()) {
			response.Forbidden(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}
