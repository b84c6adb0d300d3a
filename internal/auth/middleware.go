package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/calebmorton/hireboard/internal/models"
	pkghttp "github.com/calebmorton/hireboard/pkg/http"
)

// contextKey is a custom type for context keys
type contextKey string

const identityContextKey contextKey = "identity"

// Identity is the resolved caller attached to the request context by
// Authenticate. Role comes from the freshly loaded account, not the token,
// so a stale token cannot carry a role the store no longer agrees with.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// AccountLoader re-loads the account behind a verified token.
type AccountLoader interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// Authenticate validates the bearer token on each request, re-loads the
// account and injects the resolved identity into the context. Every failure
// mode gets the same 401 response so callers learn nothing about why.
func Authenticate(tm *TokenManager, accounts AccountLoader) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				pkghttp.WriteUnauthorized(w, "Not authorized to access this route")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				pkghttp.WriteUnauthorized(w, "Not authorized to access this route")
				return
			}

			claims, err := tm.Verify(parts[1])
			if err != nil {
				pkghttp.WriteUnauthorized(w, "Not authorized to access this route")
				return
			}

			user, err := accounts.GetByID(r.Context(), claims.UserID)
			if err != nil {
				pkghttp.WriteUnauthorized(w, "Not authorized to access this route")
				return
			}

			identity := &Identity{
				UserID: user.ID,
				Email:  user.Email,
				Role:   user.Role,
			}

			next.ServeHTTP(w, r.WithContext(ContextWithIdentity(r.Context(), identity)))
		})
	}
}

// RequireRole enforces role-based access control. It must run after
// Authenticate; the check is pure set membership on the resolved identity.
func RequireRole(roles ...string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := IdentityFromContext(r)
			if identity == nil {
				pkghttp.WriteUnauthorized(w, "Not authorized to access this route")
				return
			}

			for _, role := range roles {
				if identity.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			pkghttp.WriteForbidden(w, "You do not have permission to access this route")
		})
	}
}

// ContextWithIdentity attaches a resolved identity to a context
func ContextWithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// IdentityFromContext extracts the resolved identity from the request context
func IdentityFromContext(r *http.Request) *Identity {
	identity, ok := r.Context().Value(identityContextKey).(*Identity)
	if !ok {
		return nil
	}
	return identity
}
