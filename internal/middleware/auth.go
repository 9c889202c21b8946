// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/DroneHQio/dronehq-app/internal/auth"
	"github.com/DroneHQio/dronehq-app/internal/authz"
	"github.com/google/uuid"
)

type UserContextKey string

var IdentityKey UserContextKey = "dronehq_identity"

// AuthMiddleware validates the bearer token and resolves the caller's
// effective identity from stored memberships. The role in the request
// context is always the database's view, never the client's.
func AuthMiddleware(tokenManager *auth.TokenManager, resolver *authz.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token from Authorization header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondWithError(w, http.StatusUnauthorized, "No authorization header")
				return
			}

			// Check Bearer prefix
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondWithError(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			// Validate token
			claims, err := tokenManager.Validate(parts[1])
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			identity, err := resolver.Resolve(r.Context(), userID, claims.Email)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "Failed to resolve identity")
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the resolved identity set by AuthMiddleware.
func IdentityFromContext(ctx context.Context) (*authz.Identity, bool) {
	id, ok := ctx.Value(IdentityKey).(*authz.Identity)
	return id, ok
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
