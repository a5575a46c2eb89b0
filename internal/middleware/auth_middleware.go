package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/Gazi-Farhana/summer-camp-server/internal/auth"
	"github.com/Gazi-Farhana/summer-camp-server/internal/logger"
	"github.com/Gazi-Farhana/summer-camp-server/internal/models"
	"github.com/Gazi-Farhana/summer-camp-server/internal/repository"
)

type contextKey string

const claimsKey contextKey = "authClaims"

// RequireAuth verifies the bearer token and stores the verified claims
// in the request context. Failures are terminal: no further checks run.
func RequireAuth(tokens *auth.Service) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			claims, err := tokens.ValidateJWT(parts[1])
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole checks the caller's stored role in the user directory,
// not the token: a stale token cannot carry a role the store no longer
// grants. Must run after RequireAuth.
func RequireRole(users repository.UserRepository, role models.UserRole) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := EmailFrom(r.Context())
			if email == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			ok, err := users.HasRole(r.Context(), email, role)
			if err != nil {
				logger.Error("role lookup failed", zap.Error(err))
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			if !ok {
				writeError(w, http.StatusForbidden, "access forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClaimsFrom returns the verified token claims, or nil outside an
// authenticated request.
func ClaimsFrom(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}

// EmailFrom returns the authenticated caller's email, or "".
func EmailFrom(ctx context.Context) string {
	if claims := ClaimsFrom(ctx); claims != nil {
		return claims.Email
	}
	return ""
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   true,
		"message": message,
	})
}
