package middleware

import (
	"net/http"
	"strings"

	"github.com/forgeline/content-studio/internal/api/response"
)

// BearerToken extracts the bearer credential from an Authorization header.
// Returns the empty string when the header is missing or malformed.
func BearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}

// RequireBearer rejects requests without a well-formed bearer token
func RequireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if BearerToken(r) == "" {
			response.Unauthorized(w, "missing or invalid authorization header")
			return
		}
		next.ServeHTTP(w, r)
	})
}
