package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skillgenie/skillgenie/internal/prefs"
	"github.com/skillgenie/skillgenie/internal/resolver"
	"github.com/skillgenie/skillgenie/internal/server/ratelimit"
	"github.com/skillgenie/skillgenie/internal/types"
)

// ContentGenerator produces generated content payloads. Nil means generation
// is unavailable and every content request is served from fallback.
type ContentGenerator interface {
	Roadmap(ctx context.Context, skill, level, duration string) (*types.Roadmap, error)
	Quiz(ctx context.Context, chapter, skill string) (*types.Quiz, error)
	MarketNarrative(ctx context.Context, skill, location string, profile *types.UserProfile) (*types.MarketOverview, error)
}

// VideoRecommender searches for learning videos.
type VideoRecommender interface {
	Recommend(ctx context.Context, skill, level string) (*types.VideoList, error)
}

// Deps carries the collaborators a Server needs. Store is required; the
// rest may be nil, degrading the matching endpoints.
type Deps struct {
	Store     prefs.Store
	Generator ContentGenerator
	Videos    VideoRecommender
	Auth      *AuthService // nil disables authentication
}

// Config holds server configuration.
type Config struct {
	Port int
}

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	store       prefs.Store
	resolver    *resolver.Resolver
	generator   ContentGenerator
	videos      VideoRecommender
	auth        *AuthService
	rateLimiter *ratelimit.Limiter
}

// New creates a new server instance.
func New(cfg Config, deps Deps) (*Server, error) {
	if deps.Store == nil {
		return nil, fmt.Errorf("preference store is required")
	}

	s := &Server{
		store:       deps.Store,
		resolver:    resolver.New(deps.Store),
		generator:   deps.Generator,
		videos:      deps.Videos,
		auth:        deps.Auth,
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
	}

	mux := http.NewServeMux()

	// Content endpoints
	mux.HandleFunc("POST /api/roadmap", s.handleRoadmap)
	mux.HandleFunc("POST /api/analytics", s.handleAnalytics)
	mux.HandleFunc("GET /api/quiz", s.handleQuiz)
	mux.HandleFunc("POST /api/videos", s.handleVideos)
	mux.HandleFunc("GET /api/dashboard", s.handleDashboard)

	// Questionnaire and recommendations
	mux.Handle("POST /api/questionnaire", s.requireAuth(http.HandlerFunc(s.handleSaveQuestionnaire)))
	mux.Handle("GET /api/questionnaire", s.requireAuth(http.HandlerFunc(s.handleGetQuestionnaire)))
	mux.Handle("DELETE /api/questionnaire", s.requireAuth(http.HandlerFunc(s.handleClearQuestionnaire)))
	mux.Handle("GET /api/recommendations", s.requireAuth(http.HandlerFunc(s.handleRecommendations)))

	// Authentication
	if s.auth != nil {
		mux.HandleFunc("POST /api/auth/register", s.auth.Register)
		mux.HandleFunc("POST /api/auth/login", s.auth.Login)
	}

	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Generation calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	log.Println("Server stopped")
	return nil
}

// Handler returns the server's root handler (used by tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// withRateLimit rejects requests over the client's budget.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := clientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path)

		if info.Limit > 0 {
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		}
		if !allowed {
			s.fail(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAuth enforces a bearer token when authentication is configured.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	if s.auth == nil {
		return next
	}
	return s.auth.Middleware(next)
}

// clientID extracts the client identifier (IP) from the request.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// respond writes a success envelope.
func (s *Server) respond(w http.ResponseWriter, status int, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, "failed to encode response")
		return
	}
	s.writeJSON(w, status, types.Envelope{Success: true, Data: payload})
}

// fail writes a failure envelope. Message is always non-empty.
func (s *Server) fail(w http.ResponseWriter, status int, message string) {
	if message == "" {
		message = http.StatusText(status)
	}
	s.writeJSON(w, status, types.Envelope{Success: false, Message: message})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, envelope types.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}
