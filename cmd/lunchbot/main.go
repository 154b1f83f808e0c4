package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/lunchroom/lunchbot/internal/bot"
	"github.com/lunchroom/lunchbot/internal/config"
	"github.com/lunchroom/lunchbot/internal/ledger"
	"github.com/lunchroom/lunchbot/internal/storage/sqlite"
	"github.com/lunchroom/lunchbot/internal/transport/webhook"
	"github.com/lunchroom/lunchbot/pkg/logging"
)

func main() {
	// .env is optional; deployments usually set the environment
	// directly.
	_ = godotenv.Load()

	logging.Setup()
	cfg := config.Load()

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize snapshot store", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Snapshot store initialized", "database", cfg.DBPath)

	// Start from today's snapshot so a restart keeps the day's orders.
	day := ledger.FromSnapshot(store.Load(context.Background()))
	slog.Info("Ledger loaded", "order_units", day.Units())

	out := webhook.New(cfg.ChatBaseURL)
	b := bot.New(day, store, out, cfg.BotID)

	mux := http.NewServeMux()
	mux.Handle("/events", webhook.EventsHandler(b))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// h2c so the chat gateway can speak HTTP/2 without TLS.
	handler := h2c.NewHandler(loggingMiddleware(mux), &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("Lunchbot listening", "address", addr, "bot_id", cfg.BotID)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// loggingMiddleware logs all incoming requests.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		slog.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
