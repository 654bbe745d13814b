package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/somnia-backend/internal/config"
	"github.com/heartmarshall/somnia-backend/internal/domain"
	"github.com/heartmarshall/somnia-backend/pkg/ctxutil"
)

// sessionValidator verifies a signed session token.
type sessionValidator interface {
	ValidateSessionToken(token string) (domain.SessionClaims, error)
}

// Auth resolves the session from the HTTP-only cookie, falling back to
// an Authorization bearer header for non-browser clients. A request
// with no token passes through anonymous; a present but invalid token
// is rejected. Verified claims matching the configured admin username
// gain the admin capability even without a user row.
func Auth(validator sessionValidator, cfg config.AuthConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractSessionToken(r, cfg.CookieName)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			claims, err := validator.ValidateSessionToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), claims.UserID)
			ctx = ctxutil.WithUsername(ctx, claims.Username)
			if cfg.IsAdminUsername(claims.Username) {
				ctx = ctxutil.WithAdmin(ctx)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractSessionToken(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
