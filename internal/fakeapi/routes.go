package fakeapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/gramudyogai/gramudyog-go/internal/metrics"
	"github.com/gramudyogai/gramudyog-go/internal/middleware"
)

// Config configures a fixture server.
type Config struct {
	// Secret signs access tokens.
	Secret []byte
	// TokenTTL defaults to DefaultTokenTTL.
	TokenTTL time.Duration
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
	// Registry receives the server metrics and is served at /metrics. A nil
	// Registry gets a private one.
	Registry *prometheus.Registry
	Log      *zap.Logger
}

// Server bundles the store with its HTTP surface.
type Server struct {
	Store   *Store
	Tokens  *Tokens
	handler http.Handler
}

// New builds a server over an empty store.
func New(cfg Config) *Server {
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}

	store := NewStore()
	tokens := NewTokens(cfg.Secret, cfg.TokenTTL, store)
	s := &Server{Store: store, Tokens: tokens}
	s.handler = NewRouter(Handlers{
		Auth:          &AuthHandler{Store: store, Tokens: tokens, Cost: cfg.BcryptCost, Log: cfg.Log},
		Profile:       &ProfileHandler{Store: store},
		Jobs:          &JobHandler{Store: store},
		Events:        &EventHandler{Store: store},
		Courses:       &CourseHandler{Store: store},
		Notifications: &NotificationHandler{Store: store},
	}, tokens.Verify, cfg.Registry, cfg.Log)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Handlers groups the resource handlers mounted by NewRouter.
type Handlers struct {
	Auth          *AuthHandler
	Profile       *ProfileHandler
	Jobs          *JobHandler
	Events        *EventHandler
	Courses       *CourseHandler
	Notifications *NotificationHandler
}

// NewRouter constructs the HTTP handler of the fixture backend.
//
// Middleware chain (applied in order):
//  1. Recoverer                       - turns handler panics into 500s
//  2. AllowContentType               - rejects bodies that are neither JSON nor multipart
//  3. metrics                         - counts requests per route pattern
//  4. BearerAuth(verify)              - resolves bearer tokens to user ids
//  5. WithRequestLogging(logger)      - logs served requests
//
// Routes under /api/auth (except register, login, forgot and reset
// password) and /api/profile require a valid token.
func NewRouter(h Handlers, verify middleware.TokenVerifier, reg *prometheus.Registry, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.AllowContentType("application/json", "multipart/form-data"))
	r.Use(metrics.NewServer(reg).Middleware)
	r.Use(middleware.BearerAuth(verify))
	r.Use(middleware.WithRequestLogging(logger))

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})
	r.Post("/translate", Translate)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)
		r.Post("/auth/forgot-password", h.Auth.ForgotPassword)
		r.Post("/auth/reset-password", h.Auth.ResetPassword)
		r.Get("/profile/public/{id}", h.Profile.Public)

		// Protected group: requires a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Post("/auth/logout", h.Auth.Logout)
			r.Get("/auth/me", h.Auth.Me)
			r.Post("/auth/change-password", h.Auth.ChangePassword)
			r.Delete("/auth/delete-account", h.Auth.DeleteAccount)

			r.Get("/profile", h.Profile.Get)
			r.Post("/profile", h.Profile.Create)
			r.Put("/profile", h.Profile.Update)
		})

		r.Get("/users/{id}", h.Profile.User)
		r.Get("/users/{id}/events", h.Profile.UserEvents)

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", h.Jobs.List)
			r.Post("/", h.Jobs.Create)
			r.Get("/search", h.Jobs.Search)
			r.Get("/industries", h.Jobs.Industries)
			r.Get("/locations", h.Jobs.Locations)
			r.Get("/sectors", h.Jobs.Sectors)
			r.Get("/stats", h.Jobs.Stats)
			r.Get("/{id}", h.Jobs.Get)
			r.Put("/{id}", h.Jobs.Update)
			r.Delete("/{id}", h.Jobs.Delete)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.Events.List)
			r.Post("/", h.Events.Create)
			r.Get("/{id}", h.Events.Get)
			r.Post("/{id}/join", h.Events.Join)
			r.Post("/{id}/leave", h.Events.Leave)
			r.Put("/{id}/status", h.Events.SetStatus)
			r.Get("/{id}/status-history", h.Events.StatusHistory)
		})

		r.Route("/courses", func(r chi.Router) {
			r.Get("/", h.Courses.List)
			r.Get("/search", h.Courses.Search)
			r.Get("/categories", h.Courses.Categories)
			r.Get("/skill-levels", h.Courses.SkillLevels)
			r.Get("/{id}", h.Courses.Get)
		})
		r.Route("/csr/courses", func(r chi.Router) {
			r.Get("/", h.Courses.ListCSR)
			r.Post("/", h.Courses.CreateCSR)
			r.Get("/{id}", h.Courses.GetCSR)
			r.Put("/{id}/status", h.Courses.SetCSRStatus)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", h.Notifications.List)
			r.Post("/", h.Notifications.Create)
			r.Get("/unread-count/{id}", h.Notifications.UnreadCount)
			r.Get("/types/{id}", h.Notifications.Types)
			r.Put("/user/{id}/read-all", h.Notifications.MarkAllRead)
			r.Get("/{id}", h.Notifications.Get)
			r.Delete("/{id}", h.Notifications.Delete)
			r.Put("/{id}/read", h.Notifications.MarkRead)
		})

		r.Post("/transcribe", Transcribe)
	})

	return r
}
