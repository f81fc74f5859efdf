package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vaani-labs/vaani-backend/internal/api"
	"github.com/vaani-labs/vaani-backend/internal/config"
	"github.com/vaani-labs/vaani-backend/internal/language"
	"github.com/vaani-labs/vaani-backend/internal/speech"
	"github.com/vaani-labs/vaani-backend/internal/synthesis"
	"github.com/vaani-labs/vaani-backend/internal/translation"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Collaborator clients are constructed once and injected into the
	// handlers; an unknown backend name fails fast here.
	translator, err := translation.New(ctx, cfg.Translation)
	if err != nil {
		slog.Error("failed to create translator", "error", err)
		os.Exit(1)
	}
	if closer, ok := translator.(io.Closer); ok {
		defer closer.Close()
	}

	recognizer, err := speech.New(cfg.Speech)
	if err != nil {
		slog.Error("failed to create speech recognizer", "error", err)
		os.Exit(1)
	}

	synthesizer, err := synthesis.New(cfg.Synthesis)
	if err != nil {
		slog.Error("failed to create speech synthesizer", "error", err)
		os.Exit(1)
	}

	detector := language.NewDetector()

	router := api.NewRouter(cfg, translator, recognizer, synthesizer, detector)
	handler := router.Setup()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("starting voice translation gateway",
			"addr", cfg.Addr(),
			"translator", translator.Name(),
			"recognizer", recognizer.Name(),
			"synthesizer", synthesizer.Name(),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
	}
	slog.Info("server stopped")
}
