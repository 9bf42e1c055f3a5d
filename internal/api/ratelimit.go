package api

import (
	"net"
	"net/http"
	"strings"
)

// rateLimitAuthEndpoints throttles the endpoints that accept
// credentials, keyed by client IP. Everything else passes through;
// protected routes are already gated by bearer auth.
func (s *Server) rateLimitAuthEndpoints(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.authLimiter == nil || !isCredentialEndpoint(r) {
			next.ServeHTTP(w, r)
			return
		}

		if !s.authLimiter.Allow(getClientIP(r)) {
			if s.logger != nil {
				s.logger.Warn("Rate limit exceeded", "path", r.URL.Path, "ip", getClientIP(r))
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"code":"RATE_LIMITED","message":"Too many attempts. Please try again later."}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// isCredentialEndpoint reports whether the request carries credentials
// worth brute-forcing: login, token refresh, and registration.
func isCredentialEndpoint(r *http.Request) bool {
	if r.Method != http.MethodPost {
		return false
	}
	switch r.URL.Path {
	case "/api/v1/auth/login", "/api/v1/auth/refresh", "/api/v1/users":
		return true
	}
	return false
}

// getClientIP extracts the client IP, preferring proxy headers over the
// socket address.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
