// If you are AI: This is the main entrypoint for the sprocket server.
// It handles configuration loading, pipeline construction, server startup, and
// graceful shutdown.

package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"sprocket/internal/config"
	"sprocket/internal/server"
)

// main is the entrypoint for the sprocket server.
// It loads configuration, builds the pipeline graph, starts the server, and
// handles graceful shutdown.
func main() {
	// Parse command-line flags
	configPath := flag.String("config", "configs/sprocketd.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Build the pipeline graph and its wsrelay sinks
	graph, sinks, err := buildGraph(cfg)
	if err != nil {
		log.Fatalf("Failed to build pipeline: %v", err)
	}

	// Create root context
	ctx := context.Background()

	// Create server
	srv := server.New(cfg, graph, sinks)

	// Create shutdown handler
	shutdownHandler := server.NewShutdownHandler(srv, ctx)

	// Start server in a goroutine
	go func() {
		if err := srv.Start(shutdownHandler.Context()); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	if err := shutdownHandler.Wait(); err != nil {
		log.Printf("Shutdown error: %v", err)
		os.Exit(1)
	}

	log.Println("Server shut down cleanly")
}
