package auth

import (
	"log/slog"
	"net/http"

	"github.com/toriyu-water/toriyu-pos/internal/platform/httpx"
	"github.com/toriyu-water/toriyu-pos/internal/shared"
)

// Middleware gates handlers behind session and role checks.
type Middleware struct {
	Logger *slog.Logger
}

// RequireUser rejects requests without an authenticated session.
func (m Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := shared.SessionFromContext(r.Context())
		if sess == nil || sess.User() == "" {
			httpx.RespondError(w, shared.ErrUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects authenticated requests whose session role differs.
func (m Middleware) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := shared.SessionFromContext(r.Context())
			if sess == nil || sess.User() == "" {
				httpx.RespondError(w, shared.ErrUnauthorized)
				return
			}
			if sess.Role() != role {
				if m.Logger != nil {
					m.Logger.Warn("role denied", slog.String("path", r.URL.Path), slog.String("role", sess.Role()))
				}
				httpx.RespondError(w, shared.ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
