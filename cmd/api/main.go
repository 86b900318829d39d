package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/finix-labs/insights/internal/api"
	"github.com/finix-labs/insights/internal/api/handlers"
	"github.com/finix-labs/insights/internal/generator"
	"github.com/finix-labs/insights/internal/logger"
	"github.com/finix-labs/insights/internal/reports"
	"github.com/finix-labs/insights/internal/reports/inmemory"
)

func main() {
	var (
		port  = flag.String("port", envOr("PORT", "8000"), "HTTP server port")
		count = flag.Int("count", envIntOr("DATASET_SIZE", generator.DefaultCount), "synthetic transactions generated per request")
	)
	flag.Parse()

	log := logger.New()

	// Report job infrastructure: in-memory store and channel queue, with the
	// worker pool consuming in the background.
	jobStore := inmemory.NewStore()
	jobQueue := inmemory.NewQueue(100, jobStore)

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	defer cancelWorker()

	if err := jobQueue.Start(workerCtx, reports.NewInsightsHandler(log)); err != nil {
		log.Fatal().Err(err).Msg("Failed to start report workers")
	}

	ih := handlers.NewInsightsHandler(generator.New(), *count, log)
	rh := handlers.NewReportsHandler(jobQueue, jobStore, log)

	server := &http.Server{
		Addr:         ":" + *port,
		Handler:      api.NewRouter(ih, rh, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", *port).Int("dataset_size", *count).Msg("Starting insights API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	cancelWorker()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	if err := jobQueue.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error stopping report queue")
	}

	log.Info().Msg("Server exited")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
