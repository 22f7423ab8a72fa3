// main is the entry point of the Students API application.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file
//  2. Initialise the logger
//  3. Open the student store (memory or in-memory SQLite)
//  4. Register all HTTP routes
//  5. Serve until SIGINT / SIGTERM, then drain in-flight requests
//
// RUNNING THE SERVER:
//
//	go run ./cmd/students-api --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/students-api
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"github.com/grxxnzzz/SDM/internal/config"
	"github.com/grxxnzzz/SDM/internal/http/handlers/student"
	"github.com/grxxnzzz/SDM/internal/storage"
	"github.com/grxxnzzz/SDM/internal/storage/memory"
	"github.com/grxxnzzz/SDM/internal/storage/sqlite"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// Handlers log through slog's package-level functions, so the logger
	// is also installed as the default.
	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting students-api",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// ── 3. Initialise Storage ─────────────────────────────────────────────
	store, closeStore, err := openStorage(cfg)
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	log.Info("storage initialised",
		slog.String("driver", cfg.Storage.Driver),
		slog.String("name", cfg.Storage.Name))

	// ── 4. Register HTTP Routes ───────────────────────────────────────────
	// Route table:
	//   POST   /api/students                   → add a student
	//   GET    /api/students[?name=]           → list all / find by name
	//   GET    /api/students/{field}/{value}   → find by any one field
	//
	// All GETs accept ?fields=, ?exclude= and ?format=text.
	router := http.NewServeMux()

	router.HandleFunc("POST /api/students", student.New(store))
	router.HandleFunc("GET /api/students", student.GetList(store))
	router.HandleFunc("GET /api/students/{field}/{value}", student.GetByField(store))

	// ── 5. Create the HTTP Server ─────────────────────────────────────────
	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: router,

		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ── 6. Serve until SIGINT / SIGTERM ───────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, server, log); err != nil {
		log.Error("server stopped with an error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// shutdownTimeout bounds how long in-flight requests may run after the
// stop signal.
const shutdownTimeout = 5 * time.Second

// serve runs server until ctx is cancelled, then drains it.
//
// A listener failure (port taken, bad address) is returned as soon as it
// happens. http.ErrServerClosed is the normal result of Shutdown and is
// not an error.
func serve(ctx context.Context, server *http.Server, log *slog.Logger) error {
	listenErr := make(chan error, 1)
	go func() {
		log.Info("server started", slog.String("address", server.Addr))
		listenErr <- server.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: listen: %w", err)
	case <-ctx.Done():
	}

	log.Info("stop requested, draining requests",
		slog.Duration("timeout", shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("serve: shutdown: %w", err)
	}
	return nil
}

// openStorage builds the store named by cfg.Storage.Driver.
//
// The memory store is a plain slice with no locking of its own, so it is
// wrapped in storage.Synchronized before the (concurrent) HTTP server gets
// it. SQLite goes through database/sql, which is already safe.
func openStorage(cfg *config.Config) (storage.Storage, func() error, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		db, err := sqlite.New(cfg)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	default:
		return storage.Synchronized(memory.New()), func() error { return nil }, nil
	}
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): coloured, human-readable tint output at DEBUG level.
// Staging / production: machine-readable JSON output.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{
				Level:      slog.LevelDebug,
				TimeFormat: time.Kitchen,
				AddSource:  true,
			}),
		)
	}
}
