// Package middleware provides HTTP middleware for the access gate.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jonathan/scraper-api/internal/auth"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// identityKey is the context key for storing the authenticated identity.
const identityKey ContextKey = "identity"

// TokenValidator is an interface for validating session tokens. It allows
// the middleware to work with any token service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Identity, error)
}

// Auth creates middleware that validates bearer session tokens and stores
// the authenticated identity on the request context. Any failure along the
// way is an unauthorized response; auth faults are the only ones surfaced
// as a non-200 class on protected routes.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// Handle case-insensitive "Bearer" prefix
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimSpace(parts[1])
			if tokenString == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			identity, err := validator.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser extracts the authenticated identity from the request context.
func CurrentUser(r *http.Request) (*auth.Identity, error) {
	identity, ok := r.Context().Value(identityKey).(*auth.Identity)
	if !ok || identity == nil {
		return nil, fmt.Errorf("identity not found in request context")
	}
	return identity, nil
}

// IdentityKey returns the context key for the identity (for testing purposes).
func IdentityKey() ContextKey {
	return identityKey
}
