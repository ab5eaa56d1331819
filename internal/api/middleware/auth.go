package middleware

import (
	"context"
	"net/http"

	"github.com/urbangis/server/internal/api/respond"
	"github.com/urbangis/server/internal/auth"
)

type contextKey string

const identityKey contextKey = "identity"

// identityCapture lets outer middleware (the request-log recorder) observe
// the identity attached by RequireAuth further down the chain.
type identityCapture struct {
	identity *auth.Identity
}

const captureKey contextKey = "identityCapture"

// RequireAuth rejects requests without a valid Bearer token and attaches the
// decoded identity to the request context. It never touches a datastore.
func RequireAuth(manager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.TokenFromHeader(r.Header.Get("Authorization"))
			if err != nil {
				respond.Error(w, r, http.StatusUnauthorized, "Missing Bearer token", err)
				return
			}

			claims, err := manager.Validate(token)
			if err != nil {
				respond.Error(w, r, http.StatusUnauthorized, "Invalid or expired token", err)
				return
			}

			identity := claims.Identity()
			ctx := context.WithValue(r.Context(), identityKey, identity)
			if capture, ok := ctx.Value(captureKey).(*identityCapture); ok {
				capture.identity = &identity
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole runs after RequireAuth and rejects identities outside the
// allowed set.
func RequireRole(allowed ...auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := Identity(r)
			if !ok {
				respond.Error(w, r, http.StatusUnauthorized, "Missing Bearer token", auth.ErrMissingToken)
				return
			}
			if !auth.HasRole(identity.Role, allowed...) {
				respond.Error(w, r, http.StatusForbidden, "Not allowed", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Identity returns the authenticated caller attached by RequireAuth.
func Identity(r *http.Request) (auth.Identity, bool) {
	identity, ok := r.Context().Value(identityKey).(auth.Identity)
	return identity, ok
}
