// Package middleware holds the bearer-token guard protected routes run
// behind. Identity resolution happens here; handlers downstream receive a
// trusted identity from the request context.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"playerhub_server/services"
)

// Identity is the resolved caller attached to the request context.
type Identity struct {
	ID    string
	Email string
}

type contextKey string

const identityKey contextKey = "identity"

// IdentityFrom returns the caller identity set by Authenticate.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

// Authenticate verifies the Authorization bearer token and stores the
// resolved identity in the request context. Requests without a valid token
// are rejected before they reach any handler.
func Authenticate(tokens *services.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				http.Error(w, "Missing authorization header", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Invalid authorization header", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			identity := Identity{ID: claims.ID, Email: claims.Email}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey, identity)))
		})
	}
}
