// Package auth supplies the acting-user identity to handlers. The engine
// treats the actor as an opaque string; authentication itself belongs to the
// external identity provider that issued the token.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey struct{}

// Actor returns the acting-user identifier from ctx, or empty when the
// request was unauthenticated.
func Actor(ctx context.Context) string {
	actor, _ := ctx.Value(contextKey{}).(string)
	return actor
}

// WithActor is a test helper for seeding the actor directly.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, contextKey{}, actor)
}

// Middleware validates a bearer token and stores its subject as the actor.
// With an empty secret, authentication is disabled and requests pass through
// anonymously (local development).
func Middleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !token.Valid {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			subject, err := token.Claims.GetSubject()
			if err != nil || subject == "" {
				http.Error(w, "token has no subject", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), subject)))
		})
	}
}
