package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/NamanHarbola/Rack-Management/internal/ai"
	"github.com/NamanHarbola/Rack-Management/internal/buildinfo"
	"github.com/NamanHarbola/Rack-Management/internal/config"
	"github.com/NamanHarbola/Rack-Management/internal/database"
	"github.com/NamanHarbola/Rack-Management/internal/middleware"
	"github.com/NamanHarbola/Rack-Management/internal/websocket"
	"github.com/gorilla/mux"
)

// Router wraps the mux router together with the handler dependencies
type Router struct {
	*mux.Router
	db        *database.DB
	hub       *websocket.Hub
	assistant *ai.Assistant
	cfg       *config.Config
}

// NewRouter creates a new HTTP router with all routes. The assistant may be
// nil when no Gemini key is configured; its endpoint then answers 503.
func NewRouter(db *database.DB, hub *websocket.Hub, assistant *ai.Assistant, cfg *config.Config) *Router {
	r := &Router{
		Router:    mux.NewRouter(),
		db:        db,
		hub:       hub,
		assistant: assistant,
		cfg:       cfg,
	}

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	// Live rack change feed
	r.HandleFunc("/ws", func(w http.ResponseWriter, req *http.Request) {
		websocket.ServeWs(r.hub, w, req)
	})

	// API routes
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/", r.apiRoot).Methods("GET")

	// Fixed /racks/... paths must be registered before the {id} routes
	api.HandleFunc("/racks/search", r.searchRacks).Methods("GET")
	api.Handle("/racks/labels", r.protect(r.rackLabels)).Methods("POST")

	api.HandleFunc("/racks", r.listRacks).Methods("GET")
	api.Handle("/racks", r.protect(r.createRack)).Methods("POST")
	api.HandleFunc("/racks/{id}/label.png", r.rackLabelPNG).Methods("GET")
	api.HandleFunc("/racks/{id}", r.getRack).Methods("GET")
	api.Handle("/racks/{id}", r.protect(r.updateRack)).Methods("PUT")
	api.Handle("/racks/{id}", r.protect(r.deleteRack)).Methods("DELETE")

	api.Handle("/scan", r.protect(r.handleScan)).Methods("POST")
	api.Handle("/assistant", r.protect(r.askAssistant)).Methods("POST")

	// Legacy status check routes
	api.HandleFunc("/status", r.createStatusCheck).Methods("POST")
	api.HandleFunc("/status", r.listStatusChecks).Methods("GET")

	// Auth routes
	auth := r.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.login).Methods("POST")
	auth.HandleFunc("/register", r.register).Methods("POST")
	auth.HandleFunc("/logout", r.logout).Methods("POST")

	// Static frontend, only when a build directory is configured
	if cfg.FrontendDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.FrontendDir)))
	}

	return r
}

// protect wraps mutating handlers with JWT auth when REQUIRE_AUTH is set.
// Read endpoints stay open either way.
func (r *Router) protect(h http.HandlerFunc) http.Handler {
	if !r.cfg.RequireAuth {
		return h
	}
	return middleware.Auth(r.cfg.JWTSecret)(h)
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"viewers": r.hub.ClientCount(),
		"started": buildinfo.StartTime,
		"commit":  buildinfo.CommitHash,
	})
}

// apiRoot greets API consumers, kept for existing deployments that probe it
func (r *Router) apiRoot(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "MADAN STORE - Rack & Inventory Management System",
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
