package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// NewAdminAuth returns a middleware that guards mutating routes with a single
// shared secret. The token is accepted from the Authorization header, either
// as "Bearer <token>" or bare, and compared in constant time. Requests
// without a matching token receive 401 with no detail — the response must not
// reveal whether a token was close.
func NewAdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supplied := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if subtle.ConstantTimeCompare([]byte(supplied), []byte(token)) != 1 {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
