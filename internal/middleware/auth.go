// Package middleware provides HTTP middleware for the payments API.
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// AuthContext carries the authenticated caller identity through the request
// context.
type AuthContext struct {
	UserID        string
	Authenticated bool
}

type authContextKey struct{}

// FromContext extracts the caller identity set by Auth. The zero value is
// returned for unauthenticated requests.
func FromContext(ctx context.Context) AuthContext {
	if auth, ok := ctx.Value(authContextKey{}).(AuthContext); ok {
		return auth
	}
	return AuthContext{}
}

// WithAuthContext returns a context carrying the given caller identity.
func WithAuthContext(ctx context.Context, auth AuthContext) context.Context {
	return context.WithValue(ctx, authContextKey{}, auth)
}

// Auth creates middleware that validates a JWT bearer token signed with the
// shared HMAC secret and puts the subject claim on the request context.
func Auth(secret string, logger *slog.Logger) func(http.Handler) http.Handler {
	secretBytes := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "authorization header required")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader || tokenString == "" {
				unauthorized(w, "bearer token required")
				return
			}

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return secretBytes, nil
			})
			if err != nil || !token.Valid {
				logger.Debug("rejected token", "error", err)
				unauthorized(w, "invalid token")
				return
			}

			subject, err := token.Claims.GetSubject()
			if err != nil || subject == "" {
				unauthorized(w, "invalid token")
				return
			}

			ctx := WithAuthContext(r.Context(), AuthContext{
				UserID:        subject,
				Authenticated: true,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	//nolint:errcheck // Best effort response writing
	w.Write([]byte(fmt.Sprintf(`{"error":%q}`, message)))
}
