package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rfoley/taskward-api/internal/api/shared"
	"github.com/rfoley/taskward-api/internal/domain"
	"github.com/rfoley/taskward-api/internal/redact"
	"github.com/rfoley/taskward-api/internal/service/auth"
)

// AuthMiddleware resolves the caller's identity for protected routes.
type AuthMiddleware struct {
	resolver *auth.IdentityResolver
}

// NewAuthMiddleware creates a new AuthMiddleware with the given resolver.
func NewAuthMiddleware(resolver *auth.IdentityResolver) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
	}
}

// Authenticate resolves an identity for the request and stores it in the
// request context. In bypass mode the Authorization header is never touched;
// in token mode requests without a valid Bearer token are rejected with 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if m.resolver.Mode() != auth.ModeBypass {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
				return
			}
			token = parts[1]
		}

		user, err := m.resolver.Resolve(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrMissingToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			case errors.Is(err, auth.ErrInvalidCredentials):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			default:
				slog.Error("failed to resolve identity", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUser extracts the resolved user from the request context.
// Returns the user and a boolean indicating if it was found.
func GetUser(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.UserContextKey).(*domain.User)
	return user, ok && user != nil
}
