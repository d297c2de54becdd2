package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"notes-app/auth"
)

type contextKey string

const userIDKey contextKey = "userID"

// UserID returns the authenticated user id set by RequireAuth, or ""
// when the request did not pass through it.
func UserID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}

// RequireAuth verifies the Bearer token on protected routes and injects
// the resolved user id into the request context.
func RequireAuth(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "Authorization header missing")
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenStr == authHeader {
				unauthorized(w, "Invalid token format")
				return
			}

			userID, err := tokens.Parse(tokenStr)
			if err != nil {
				log.Printf("Auth middleware - token rejected: %v", err)
				unauthorized(w, "Unauthorized")
				return
			}

			r = r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
			next.ServeHTTP(w, r)
		})
	}
}

// WithUserID is a test helper for exercising handlers without the full
// middleware chain.
func WithUserID(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
