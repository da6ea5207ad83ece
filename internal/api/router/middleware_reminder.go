package router

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// requireReminderSecret authenticates the reminder sweep trigger via an
// Authorization bearer header matched against the configured shared secret.
// The middleware fails closed: with no secret configured, every invocation
// is refused.
func requireReminderSecret(expected string) func(http.Handler) http.Handler {
	expected = strings.TrimSpace(expected)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if expected == "" || !strings.HasPrefix(header, bearerPrefix) {
				unauthorized(w)
				return
			}
			token := strings.TrimPrefix(header, bearerPrefix)
			if subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
				unauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"unauthorized"}`))
}
