package middleware

import (
	"net/http"

	"github.com/crewjam/csp"
)

// ContentSecurityPolicy sets a default-src policy on every response. With no
// sources the handler is returned unchanged.
func ContentSecurityPolicy(sources []string) func(http.Handler) http.Handler {
	if len(sources) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	value := csp.Header{
		DefaultSrc: sources,
	}.String()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Security-Policy", value)
			next.ServeHTTP(w, r)
		})
	}
}
