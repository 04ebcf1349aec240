package security

import "net/http"

// HeadersConfig holds security headers configuration.
type HeadersConfig struct {
	CSP                 string
	XFrameOptions       string
	XContentTypeOptions string
	ReferrerPolicy      string
}

// DefaultHeadersConfig returns defaults suited to a local-first app
// serving its own JSON API.
func DefaultHeadersConfig() HeadersConfig {
	return HeadersConfig{
		CSP:                 "default-src 'self'; frame-ancestors 'none'; base-uri 'self'",
		XFrameOptions:       "DENY",
		XContentTypeOptions: "nosniff",
		ReferrerPolicy:      "strict-origin-when-cross-origin",
	}
}

// Headers applies the configured security headers to every response.
func Headers(cfg HeadersConfig, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cfg.CSP != "" {
			w.Header().Set("Content-Security-Policy", cfg.CSP)
		}
		if cfg.XFrameOptions != "" {
			w.Header().Set("X-Frame-Options", cfg.XFrameOptions)
		}
		if cfg.XContentTypeOptions != "" {
			w.Header().Set("X-Content-Type-Options", cfg.XContentTypeOptions)
		}
		if cfg.ReferrerPolicy != "" {
			w.Header().Set("Referrer-Policy", cfg.ReferrerPolicy)
		}
		next.ServeHTTP(w, r)
	})
}
