package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/scraper-api/internal/auth"
	"github.com/jonathan/scraper-api/internal/config"
	"github.com/jonathan/scraper-api/internal/scrape"
	"github.com/jonathan/scraper-api/internal/server/middleware"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	scraper     Scraper
	jwtService  *JWTService
	authHandler *AuthHandler
	validator   *validator.Validate
}

// Config holds server configuration
type Config struct {
	Port        int
	CORSOrigins []string
	Scrape      *config.ScrapeConfig
	JWT         *config.JWTConfig
	Google      *config.GoogleConfig
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	pipeline, err := scrape.NewPipeline(cfg.Scrape)
	if err != nil {
		return nil, fmt.Errorf("failed to build scrape pipeline: %w", err)
	}

	s := &Server{
		scraper:   pipeline,
		validator: validator.New(),
	}

	s.jwtService = NewJWTService(cfg.JWT)
	s.authHandler = NewAuthHandler(auth.NewGoogleVerifier(cfg.Google.ClientID), s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(corsHandler(cfg.CORSOrigins)(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes wires the HTTP surface. The scrape endpoints and /auth/me sit
// behind the access gate; the liveness probes and sign-in do not.
func (s *Server) routes() http.Handler {
	requireAuth := middleware.Auth(s.jwtService.AsTokenValidator())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/google", s.authHandler.GoogleLogin)
	mux.Handle("GET /auth/me", requireAuth(http.HandlerFunc(s.authHandler.Me)))
	mux.Handle("POST /scrape", requireAuth(http.HandlerFunc(s.handleScrape)))
	mux.Handle("GET /scrape/news", requireAuth(http.HandlerFunc(s.handleScrapeNews)))
	mux.Handle("GET /scrape/quotes", requireAuth(http.HandlerFunc(s.handleScrapeQuotes)))

	return mux
}

// corsHandler builds CORS middleware for the configured browser origins.
func corsHandler(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
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

	log.Println("Server stopped")
	return nil
}

// withLogging adds request logging with a per-request ID.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()[:8]
		log.Printf("[%s] %s %s (%s)", r.Method, r.URL.Path, r.RemoteAddr, requestID)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s (%s) completed in %v", r.Method, r.URL.Path, requestID, time.Since(start))
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
