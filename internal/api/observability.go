package api

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"sort"
	"strings"
	"time"

	"attentionops/backend/internal/db"
	"attentionops/backend/internal/observability"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const metricsContentType = "text/plain; version=0.0.4; charset=utf-8"

func (s *Server) requestObservabilityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startedAt := time.Now()
		wrapped := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		if reqID := requestIDFromRequest(r); reqID != "" {
			wrapped.Header().Set(middleware.RequestIDHeader, reqID)
		}
		next.ServeHTTP(wrapped, r)

		status := wrapped.Status()
		if status == 0 {
			status = http.StatusOK
		}
		latency := time.Since(startedAt)
		route := routePatternFromRequest(r)

		s.metrics.ObserveHTTPRequest(route, r.Method, status, latency)

		fields := observability.Fields{
			"request_id": requestIDFromRequest(r),
			"route":      route,
			"method":     strings.ToUpper(strings.TrimSpace(r.Method)),
			"status":     status,
			"latency_ms": latency.Milliseconds(),
			"bytes":      wrapped.BytesWritten(),
		}
		switch {
		case status >= http.StatusInternalServerError:
			s.logger.Error("http_request", fields)
		case status >= http.StatusBadRequest:
			s.logger.Warn("http_request", fields)
		default:
			s.logger.Info("http_request", fields)
		}
	})
}

func (s *Server) recoverJSONMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				s.logger.Error("panic_recovered", observability.Fields{
					"request_id": requestIDFromRequest(r),
					"route":      routePatternFromRequest(r),
					"method":     r.Method,
					"panic":      fmt.Sprint(rec),
					"stack":      string(debug.Stack()),
				})
				writeInternalError(w, "internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.checkReady(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"ok":    false,
			"error": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", metricsContentType)
	_, _ = w.Write([]byte(s.metrics.Render()))
}

// checkReady verifies every external backend the server was built with. A
// server running purely in memory is always ready.
func (s *Server) checkReady(ctx context.Context) error {
	if s.db != nil {
		pingStartedAt := time.Now()
		err := s.db.Ping(ctx)
		s.metrics.ObserveDBQuery(time.Since(pingStartedAt))
		if err != nil {
			return fmt.Errorf("database ping failed: %w", err)
		}

		queryStartedAt := time.Now()
		pending, err := db.PendingMigrations(ctx, s.db, s.cfg.MigrationsDir)
		s.metrics.ObserveDBQuery(time.Since(queryStartedAt))
		if err != nil {
			return fmt.Errorf("could not inspect migrations: %w", err)
		}
		if pending > 0 {
			return fmt.Errorf("migrations pending: %d", pending)
		}
	}

	names := make([]string, 0, len(s.pingers))
	for name := range s.pingers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := s.pingers[name].Ping(ctx); err != nil {
			return fmt.Errorf("%s ping failed: %w", name, err)
		}
	}

	return nil
}

func routePatternFromRequest(r *http.Request) string {
	if r == nil {
		return "unknown"
	}
	ctx := chi.RouteContext(r.Context())
	if ctx == nil {
		return "unmatched"
	}
	pattern := strings.TrimSpace(ctx.RoutePattern())
	if pattern == "" {
		return "unmatched"
	}
	return pattern
}

func requestIDFromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(middleware.GetReqID(r.Context()))
}
