package auth

import (
	"context"
	"net/http"
	"strings"
)

// contextKey avoids collisions with other packages' context values.
type contextKey string

const contextKeyPrincipal contextKey = "principal"

// Middleware validates the bearer token and places the principal in
// the request context. Requests without a valid token never reach the
// wrapped handler.
func (g *Gate) Middleware(onError func(w http.ResponseWriter, message string)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				onError(w, "missing Authorization header")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				onError(w, "expected Bearer <token>")
				return
			}

			principal, err := g.Authorize(parts[1])
			if err != nil {
				onError(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyPrincipal, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFromContext returns the authenticated principal, or the
// empty string when the request was not auth-gated.
func PrincipalFromContext(ctx context.Context) string {
	principal, _ := ctx.Value(contextKeyPrincipal).(string)
	return principal
}
