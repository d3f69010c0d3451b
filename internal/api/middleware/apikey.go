package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/thinktwice/finance-dashboard-backend/internal/api/response"
)

// APIKey returns a middleware that requires the X-API-Key header to match
// the configured key. This is a transport guard, not identity: user
// authentication is an external collaborator's concern. An empty configured
// key disables the check.
func APIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key != "" {
				supplied := r.Header.Get("X-API-Key")
				if subtle.ConstantTimeCompare([]byte(supplied), []byte(key)) != 1 {
					response.RespondError(w, http.StatusUnauthorized, "invalid or missing API key", nil)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
