// Package main is the entry point for tilesnake.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/samdwyer/tilesnake/internal/game"
	"github.com/samdwyer/tilesnake/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig(os.Getenv("SNAKE_CONFIG"))
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if setupOTelEnv() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	// The screen owns the terminal from here on
	closeLog := redirectLog()
	defer closeLog()

	if err := g.Run(ctx); err != nil && ctx.Err() == nil {
		log.Printf("Game error: %v", err)
		closeLog()
		fmt.Fprintf(os.Stderr, "tilesnake: %v\n", err)
		os.Exit(1)
	}
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is configured.
// It returns false if telemetry should stay disabled.
func setupOTelEnv() bool {
	apiKey := os.Getenv("SNAKE_HONEYCOMB_API_KEY")
	if apiKey == "" {
		return false
	}
	dataset := os.Getenv("SNAKE_HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "tilesnake"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}

// redirectLog sends log output to SNAKE_LOG_FILE, or discards it.
func redirectLog() func() {
	path := os.Getenv("SNAKE_LOG_FILE")
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}
}
