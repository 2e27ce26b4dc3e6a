package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"attentionops/backend/internal/observability"
)

func (s *Server) requestContextTimeoutMiddleware(next http.Handler) http.Handler {
	timeout := s.cfg.APIRequestTimeout
	if timeout <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// maxBodyBytesMiddleware caps request bodies on writes only.
func (s *Server) maxBodyBytesMiddleware(limit int64) func(http.Handler) http.Handler {
	if limit <= 0 {
		limit = 64 << 10
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) writeRateLimitResponse(w http.ResponseWriter, r *http.Request, scope, endpoint, message string) {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = routePatternFromRequest(r)
	}
	s.metrics.IncRateLimited(scope, endpoint)

	s.logger.Warn("rate_limited", observability.Fields{
		"request_id": requestIDFromRequest(r),
		"route":      routePatternFromRequest(r),
		"method":     r.Method,
		"status":     http.StatusTooManyRequests,
		"scope":      scope,
		"endpoint":   endpoint,
		"client_ip":  requestClientIP(r),
	})
	w.Header().Set("Retry-After", retryAfterSeconds(s.cfg.GenerateRateWindow.Seconds()))
	writeTooManyRequests(w, message)
}

func retryAfterSeconds(seconds float64) string {
	if seconds < 1 {
		return "1"
	}
	return strconv.Itoa(int(seconds))
}
