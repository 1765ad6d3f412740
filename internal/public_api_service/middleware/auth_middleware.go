package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	AuthenticatedClientContextKey = ContextKey("authenticatedClient")
)

// AuthenticatedClient identifies the caller of a bearer-protected route.
type AuthenticatedClient struct {
	Subject string
	Claims  jwt.MapClaims
}

// ClientFromContext returns the client stored by JWTAuthMiddleware.
func ClientFromContext(ctx context.Context) (AuthenticatedClient, bool) {
	c, ok := ctx.Value(AuthenticatedClientContextKey).(AuthenticatedClient)
	return c, ok
}

// JWTAuthMiddleware only lets through requests carrying an HS256 token signed
// with secret.
func JWTAuthMiddleware(secret string, logger *slog.Logger) func(next http.Handler) http.Handler {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.WarnContext(r.Context(), "Authorization header missing")
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				logger.WarnContext(r.Context(), "Invalid Authorization header format")
				http.Error(w, "Invalid Authorization header format", http.StatusUnauthorized)
				return
			}

			claims := jwt.MapClaims{}
			token, err := parser.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				logger.WarnContext(r.Context(), "Token validation failed", "error", err)
				http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			subject, _ := claims.GetSubject()
			client := AuthenticatedClient{Subject: subject, Claims: claims}

			ctx := context.WithValue(r.Context(), AuthenticatedClientContextKey, client)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
