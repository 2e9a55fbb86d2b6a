// Package challengeapp is the demo web service the challenge manifests
// deploy. It exposes health endpoints for the probes and small JSON views
// that let students verify their ConfigMap and Secret wiring.
package challengeapp

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// Server routes the demo app endpoints.
type Server struct {
	cfg    Config
	log    *log.Logger
	router *mux.Router
}

// NewServer wires the routes for the given configuration.
func NewServer(cfg Config, logger *log.Logger) *Server {
	s := &Server{cfg: cfg, log: logger, router: mux.NewRouter()}
	s.router.HandleFunc("/", s.handleHome).Methods(http.MethodGet)
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/config", s.handleConfig).Methods(http.MethodGet)
	s.router.HandleFunc("/secret-check", s.handleSecretCheck).Methods(http.MethodGet)
	s.router.HandleFunc("/ready", s.handleReady).Methods(http.MethodGet)
	return s
}

// Router returns the handler to serve.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, map[string]any{
		"app":         s.cfg.AppName,
		"environment": s.cfg.Env,
		"message":     "Welcome to the Kubernetes Challenge!",
		"endpoints": map[string]string{
			"/":             "This page",
			"/health":       "Health check endpoint",
			"/config":       "Show configuration (from ConfigMap)",
			"/secret-check": "Verify secret is loaded",
		},
	})
}

// handleHealth serves the liveness and readiness probe target.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, map[string]any{
		"status": "healthy",
		"app":    s.cfg.AppName,
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, map[string]any{
		"app_name":    s.cfg.AppName,
		"environment": s.cfg.Env,
		"log_level":   s.cfg.LogLevel,
		"source":      "ConfigMap (environment variables)",
	})
}

// handleSecretCheck reports whether the secret arrived without exposing it.
func (s *Server) handleSecretCheck(w http.ResponseWriter, _ *http.Request) {
	length := 0
	if s.cfg.SecretLoaded() {
		length = len(s.cfg.APIKey)
	}
	s.writeJSON(w, map[string]any{
		"api_key_loaded": s.cfg.SecretLoaded(),
		"api_key_length": length,
		"source":         "Secret (environment variable)",
	})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, map[string]any{
		"ready": true,
		"checks": map[string]bool{
			"config_loaded": s.cfg.ConfigLoaded(),
			"secret_loaded": s.cfg.SecretLoaded(),
		},
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Printf("writing response: %v", err)
	}
}
