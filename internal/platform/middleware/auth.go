package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// Principal is the authenticated staff identity extracted from a bearer token.
// Role "platform_admin" may cross tenant boundaries; everyone else is bound
// to their own tenant when isolation is enabled.
type Principal struct {
	OrgID    string
	TenantID string
	Role     string
}

// PrincipalValidator validates a bearer token and returns the staff principal.
type PrincipalValidator interface {
	ValidatePrincipal(tokenString string) (*Principal, error)
}

type principalKey struct{}

// GetPrincipal retrieves the authenticated principal from the context, if any.
func GetPrincipal(ctx context.Context) *Principal {
	if p, ok := ctx.Value(principalKey{}).(*Principal); ok {
		return p
	}
	return nil
}

// WithPrincipal stores a principal on the context. Exported for handler tests.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// OptionalAuth extracts a staff principal from the Authorization header when
// one is present. An absent header is not an error: public visitors carry no
// principal. An invalid bearer token is rejected so a bad credential never
// silently downgrades into an anonymous request.
func OptionalAuth(validator PrincipalValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const bearerPrefix = "Bearer "
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			if !strings.HasPrefix(authHeader, bearerPrefix) {
				http.Error(w, "invalid authorization header", http.StatusUnauthorized)
				return
			}

			principal, err := validator.ValidatePrincipal(strings.TrimPrefix(authHeader, bearerPrefix))
			if err != nil {
				logger.Warn("staff token rejected",
					"error", err,
					"request_id", GetRequestID(r.Context()),
				)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}
