package middleware

import (
	"net/http"
)

// SecurityHeadersMiddleware sets headers for a JSON API that also serves
// product images.
type SecurityHeadersMiddleware struct {
	isProduction bool
}

func NewSecurityHeadersMiddleware(isProduction bool) *SecurityHeadersMiddleware {
	return &SecurityHeadersMiddleware{isProduction: isProduction}
}

func (m *SecurityHeadersMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; img-src 'self'; frame-ancestors 'none'")

		if m.isProduction {
			w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}
