package transport

import (
	"net/http"

	"github.com/gorilla/mux"
)

// InternalMiddleware checks for the static service API key in the header.
// Only the reminder consumer holds this key.
func InternalMiddleware(apiKey string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" || r.Header.Get("Authorization") != "Bearer "+apiKey {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
