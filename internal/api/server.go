package api

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"attentionops/backend/internal/catalog"
	"attentionops/backend/internal/config"
	"attentionops/backend/internal/mission"
	"attentionops/backend/internal/observability"
	"attentionops/backend/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps are the collaborators a Server is built from. Composer, Missions and
// Catalog default to the in-process implementations when nil.
type Deps struct {
	Logger   *observability.Logger
	Metrics  *observability.APIMetrics
	Composer *mission.Composer
	Missions store.Store
	Catalog  catalog.Catalog
	// DB, when set, is pinged by /readyz and checked for pending migrations.
	DB *pgxpool.Pool
	// Pingers are extra backends /readyz must reach, keyed by name.
	Pingers map[string]store.Pinger
}

type Server struct {
	cfg             config.Config
	logger          *observability.Logger
	metrics         *observability.APIMetrics
	composer        *mission.Composer
	missions        store.Store
	catalog         catalog.Catalog
	db              *pgxpool.Pool
	pingers         map[string]store.Pinger
	generateLimiter *ipRateLimiter
}

func New(cfg config.Config, deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = observability.NewLogger("api")
	}
	metrics := deps.Metrics
	if metrics == nil {
		metrics = observability.NewAPIMetrics()
	}
	composer := deps.Composer
	if composer == nil {
		composer = mission.NewComposer(nil, nil)
	}
	missions := deps.Missions
	if missions == nil {
		missions = store.NewMemoryStore()
	}
	content := deps.Catalog
	if content == nil {
		content = catalog.NewStaticCatalog()
	}

	return &Server{
		cfg:             cfg,
		logger:          logger,
		metrics:         metrics,
		composer:        composer,
		missions:        missions,
		catalog:         content,
		db:              deps.DB,
		pingers:         deps.Pingers,
		generateLimiter: newIPRateLimiter(cfg.GenerateRateLimit, cfg.GenerateRateWindow),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestObservabilityMiddleware)
	r.Use(s.recoverJSONMiddleware)
	r.Use(s.securityHeadersMiddleware)
	r.Use(s.requestContextTimeoutMiddleware)
	r.Use(s.maxBodyBytesMiddleware(s.cfg.RequestBodyMaxBytes))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)
	r.Get("/metrics", s.handleMetrics)

	r.Route("/api", func(r chi.Router) {
		r.Route("/missions", func(r chi.Router) {
			r.With(s.generateRateLimitMiddleware).Post("/generate", s.handleGenerateMission)
			r.Get("/current", s.handleGetCurrentMission)
			r.Get("/count", s.handleGetMissionCount)
			r.Get("/history", s.handleGetMissionHistory)
		})

		r.Get("/templates", s.handleListTemplates)
		r.Get("/templates/category/{category}", s.handleListTemplatesByCategory)
		r.Get("/photos", s.handleListPhotos)
		r.Get("/options", s.handleGetOptions)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeNotFound(w, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}

type ipRateLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	buckets map[string]rateLimitBucket
}

type rateLimitBucket struct {
	count       int
	windowStart time.Time
}

// newIPRateLimiter returns nil when limit or window is not positive, which
// disables limiting.
func newIPRateLimiter(limit int, window time.Duration) *ipRateLimiter {
	if limit <= 0 || window <= 0 {
		return nil
	}
	return &ipRateLimiter{
		limit:   limit,
		window:  window,
		buckets: map[string]rateLimitBucket{},
	}
}

func (rl *ipRateLimiter) allow(key string, now time.Time) bool {
	if rl == nil {
		return true
	}
	rl.mu.Lock()
	defer rl.mu.Unlock()

	bucket, exists := rl.buckets[key]
	if !exists || now.Sub(bucket.windowStart) >= rl.window {
		rl.buckets[key] = rateLimitBucket{
			count:       1,
			windowStart: now,
		}
		rl.gc(now)
		return true
	}

	if bucket.count >= rl.limit {
		return false
	}
	bucket.count++
	rl.buckets[key] = bucket
	return true
}

func (rl *ipRateLimiter) gc(now time.Time) {
	for key, bucket := range rl.buckets {
		if now.Sub(bucket.windowStart) >= rl.window*2 {
			delete(rl.buckets, key)
		}
	}
}

func (s *Server) generateRateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.generateLimiter.allow(requestClientIP(r), time.Now()) {
			s.writeRateLimitResponse(w, r, "ip", "missions_generate", "mission generation rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if strings.TrimSpace(r.RemoteAddr) != "" {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return "unknown"
}
