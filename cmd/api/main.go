package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NamanHarbola/Rack-Management/internal/ai"
	"github.com/NamanHarbola/Rack-Management/internal/buildinfo"
	"github.com/NamanHarbola/Rack-Management/internal/config"
	"github.com/NamanHarbola/Rack-Management/internal/database"
	"github.com/NamanHarbola/Rack-Management/internal/handlers"
	"github.com/NamanHarbola/Rack-Management/internal/middleware"
	"github.com/NamanHarbola/Rack-Management/internal/models"
	"github.com/NamanHarbola/Rack-Management/internal/utils"
	"github.com/NamanHarbola/Rack-Management/internal/websocket"
	"github.com/go-chi/cors"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize database (Detects Embedded vs External automatically)
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	// Note: db.Close() is called manually in shutdown handler below

	// 3. Auto-Migrate Schema (Critical for Zero-Config)
	log.Println("🚀 Synchronizing database schema...")
	err = db.AutoMigrate(
		&models.Rack{},
		&models.StatusCheck{},
		&models.UserAuth{},
	)
	if err != nil {
		log.Printf("⚠️ Migration warning: %v\n", err)
	} else {
		log.Println("✅ Schema synchronized successfully")
	}

	// 4. Start the rack change feed hub
	hub := websocket.NewHub()
	go hub.Run()

	// 5. Optional Gemini assistant
	var assistant *ai.Assistant
	if cfg.GeminiKey != "" {
		client, err := ai.NewGeminiClient(context.Background(), cfg.GeminiKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("⚠️ Assistant disabled: %v", err)
		} else {
			assistant = ai.NewAssistant(client)
			log.Println("✅ Inventory assistant ready")
		}
	}

	// 6. Set up HTTP router and middleware chain
	router := handlers.NewRouter(db, hub, assistant, cfg)

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	handler := middleware.CaseInsensitiveMiddleware(corsHandler(router))

	// 7. Start server with graceful shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	// Channel to listen for shutdown signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	// Start server in goroutine
	go func() {
		log.Printf("🚀 MADAN STORE server starting on port %s\n", cfg.Port)
		if buildinfo.CommitHash != "" {
			log.Printf("   Build %s (%s)\n", buildinfo.CommitHash, buildinfo.BuildTime)
		}
		for _, ip := range utils.GetLocalIPs() {
			log.Printf("🌐 Reachable at http://%s:%s\n", ip, cfg.Port)
		}
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sig := <-shutdown
	log.Printf("\n⚠️  Received signal: %v. Shutting down gracefully...\n", sig)

	// Create context with timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	if assistant != nil {
		assistant.Close()
	}

	// Close database (this also stops embedded PostgreSQL)
	log.Println("🛑 Closing database connection...")
	if err := db.Close(); err != nil {
		log.Printf("Database close error: %v", err)
	}

	log.Println("✅ Shutdown complete")
}
