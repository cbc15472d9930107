package common

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"
)

type contextKey string

const handleKey contextKey = "handle"

// HandleFromContext returns the authenticated account handle, if any.
func HandleFromContext(ctx context.Context) (string, bool) {
	handle, ok := ctx.Value(handleKey).(string)
	return handle, ok
}

// ContextWithHandle is used by tests and the websocket handshake to stamp an
// identity onto a request context.
func ContextWithHandle(ctx context.Context, handle string) context.Context {
	return context.WithValue(ctx, handleKey, handle)
}

// AuthMiddleware validates the Bearer token and injects the caller's handle
// into the request context. Paths registered as public pass through
// unauthenticated; everything else gets 401 on a missing or bad token.
func AuthMiddleware(publicPrefixes []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, prefix := range publicPrefixes {
				if strings.HasPrefix(r.URL.Path, prefix) {
					next.ServeHTTP(w, r)
					return
				}
			}

			auth := r.Header.Get("Authorization")
			if auth == "" {
				http.Error(w, `{"error":{"message":"authorization required","status":401}}`, http.StatusUnauthorized)
				return
			}

			// Authorization: Bearer <token>
			parts := strings.Fields(auth)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				http.Error(w, `{"error":{"message":"invalid auth header","status":401}}`, http.StatusUnauthorized)
				return
			}

			claims, err := ValidToken(parts[1])
			if err != nil {
				http.Error(w, `{"error":{"message":"invalid or expired token","status":401}}`, http.StatusUnauthorized)
				return
			}

			ctx := ContextWithHandle(r.Context(), claims.Handle)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CORSMiddleware adds permissive CORS headers.
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// LoggingMiddleware logs HTTP requests.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}
