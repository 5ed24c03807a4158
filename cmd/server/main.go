package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KignLeon/hpcf-website/internal/app"
	"github.com/KignLeon/hpcf-website/internal/config"
	"github.com/KignLeon/hpcf-website/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	slogLogger := logger.NewWithServiceContext(app.ServiceName, app.Version)

	// Set as default logger so slog.Info() uses the same handler
	slog.SetDefault(slogLogger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	application, err := app.New(context.Background(), cfg, slogLogger)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	go func() {
		if err := application.Run(); err != nil {
			log.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited gracefully")
}
