package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/crucial707/exercise-tracker/internal/config"
	"github.com/crucial707/exercise-tracker/internal/db"
	"github.com/crucial707/exercise-tracker/internal/handlers"
	"github.com/crucial707/exercise-tracker/internal/logging"
	"github.com/crucial707/exercise-tracker/internal/middleware"
	"github.com/crucial707/exercise-tracker/internal/repo"
	"github.com/crucial707/exercise-tracker/internal/service"
	"github.com/crucial707/exercise-tracker/internal/web"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "apply database migrations and exit")
	flag.Parse()

	cfg := config.Load()
	logging.SetupDefault(cfg.LogFormat, os.Stdout)

	if err := run(cfg, *migrateOnly); err != nil {
		slog.Error("exercise tracker stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, migrateOnly bool) error {
	// Schema first so the pool never sees a missing table.
	if err := db.Migrate(cfg.DatabaseURL()); err != nil {
		return err
	}
	if migrateOnly {
		return nil
	}

	database, err := db.Connect(cfg.DatabaseURL(), cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
	if err != nil {
		return err
	}
	defer database.Close()
	slog.Info("connected to database")

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(database, cfg),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("api listening", "addr", srv.Addr, "tls", cfg.TLSEnabled())
		var err error
		if cfg.TLSEnabled() {
			err = srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// newRouter wires repositories, services and handlers on top of database.
func newRouter(database *sql.DB, cfg config.Config) http.Handler {
	userRepo := repo.NewUserRepo(database)
	exerciseRepo := repo.NewExerciseRepo(database)

	userHandler := &handlers.UserHandler{Users: service.NewUserService(userRepo)}
	exerciseHandler := &handlers.ExerciseHandler{Exercises: service.NewExerciseService(userRepo, exerciseRepo)}
	logHandler := &handlers.LogHandler{Logs: service.NewLogService(userRepo, exerciseRepo)}
	healthHandler := &handlers.HealthHandler{DB: database}
	page := web.MustNew()

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Prometheus)
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// ==========================
	// Probes and metrics
	// ==========================
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)
	r.Handle("/metrics", promhttp.Handler())

	// ==========================
	// Index page
	// ==========================
	r.Group(func(r chi.Router) {
		r.Use(middleware.SecurityHeaders(middleware.PageContentSecurityPolicy, cfg.TLSEnabled()))
		r.Get("/", page.Index)
		r.Get("/public/*", page.Static)
	})

	// ==========================
	// API
	// ==========================
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.SecurityHeaders(middleware.APIContentSecurityPolicy, cfg.TLSEnabled()))
		r.Use(middleware.MaxBytes(cfg.MaxBodyBytes))

		r.Post("/users", userHandler.CreateUser)
		r.Get("/users", userHandler.ListUsers)
		r.Post("/users/{_id}/exercises", exerciseHandler.LogExercise)
		r.Get("/users/{_id}/logs", logHandler.GetLogs)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handlers.JSONError(w, "not found", http.StatusNotFound)
	})

	return r
}
