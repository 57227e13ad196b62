package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/config"
	"github.com/JBombar/PremiumCarsEU-sub001/internal/server"
)

func main() {
	// Load environment variables from .env
	if err := godotenv.Load(); err != nil {
		log.Println("Admin: No .env file found, relying on system env vars")
	}

	// Load app config
	cfg := config.Load()

	// Initialize server
	srv := server.NewServer(cfg)

	// Channel to capture errors
	errCh := make(chan error, 1)

	// Run HTTP server in background
	go func() {
		log.Printf("Admin HTTP server starting on %s", cfg.HTTPAddr)
		if err := srv.StartHTTP(); err != nil {
			errCh <- err
		}
	}()

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Println("Shutting down admin server...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.HTTP.Shutdown(ctx); err != nil {
			log.Printf("Failed to shutdown HTTP server: %v", err)
		}
		if srv.Broadcast != nil {
			if err := srv.Broadcast.Close(); err != nil {
				log.Printf("Failed to close broadcast publisher: %v", err)
			}
		}

	case err := <-errCh:
		log.Fatalf("Server error: %v", err)
	}
}
