// Package internal provides the application initialization and runtime
// wiring for the build, serve, and mcp commands.
package internal

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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/jklemke/obsidian-to-jsonld/internal/catalog"
	"github.com/jklemke/obsidian-to-jsonld/internal/mcpserver"
	"github.com/jklemke/obsidian-to-jsonld/internal/server"
	"github.com/jklemke/obsidian-to-jsonld/internal/site"
	"github.com/jklemke/obsidian-to-jsonld/internal/sse"
	"github.com/jklemke/obsidian-to-jsonld/internal/storage"
	"github.com/jklemke/obsidian-to-jsonld/internal/watch"
)

func newLogger(cfg *Config) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// newBuilder opens the vault, output, and catalog, and returns a ready
// Builder. A missing vault directory is a fatal setup error; the output
// directory is created when absent.
func newBuilder(cfg *Config, logger *slog.Logger) (*site.Builder, *catalog.DB, error) {
	vault, err := storage.NewFS(cfg.Vault.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open vault: %w", err)
	}

	if err := os.MkdirAll(cfg.Output.Path, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create output dir: %w", err)
	}
	out, err := storage.NewFS(cfg.Output.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open output dir: %w", err)
	}

	db, err := catalog.Open(cfg.SQLite.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog: %w", err)
	}

	return site.New(vault, out, cfg.Site.ToSite(), db, logger), db, nil
}

// Build runs a one-shot compile of the vault into the output tree.
func Build(cfg *Config) error {
	logger := newLogger(cfg)

	builder, db, err := newBuilder(cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = builder.Build()
	return err
}

// RunMCP builds once and then serves the compiled catalog over MCP stdio.
func RunMCP(cfg *Config) error {
	// MCP talks JSON-RPC on stdout; logs must stay off it.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	builder, db, err := newBuilder(cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := builder.Build(); err != nil {
		return err
	}

	return mcpserver.New(db).ServeStdio()
}

// Run starts serve mode: an initial build, the preview server, and a
// vault watcher that triggers full rebuilds with live reload.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config
	logger := newLogger(cfg)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("vault_path", cfg.Vault.Path),
		slog.String("output_path", cfg.Output.Path),
		slog.String("sqlite_path", cfg.SQLite.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	builder, db, err := newBuilder(cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	// Initial build must succeed before serving anything.
	if _, err := builder.Build(); err != nil {
		return fmt.Errorf("initial build: %w", err)
	}

	broker := sse.NewBroker()
	defer broker.Close()

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints.
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Catalog API, live-reload events, and the generated site.
	r.Mount("/api", server.NewAPIRouter(db))
	r.Get("/events", broker.ServeHTTP)
	r.Handle("/*", server.SiteHandler(cfg.Output.Path))

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Preview server starting...",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("scheme_page", cfg.Site.ToSite().SchemePagePath()))

	g, gCtx := errgroup.WithContext(ctx)

	// Rebuild on vault changes; a failed rebuild is logged, not fatal.
	g.Go(func() error {
		return watch.Watch(gCtx, cfg.Vault.Path, 300*time.Millisecond, logger, func() {
			res, buildErr := builder.Build()
			if buildErr != nil {
				logger.Error("rebuild failed", slog.String("error", buildErr.Error()))
				return
			}
			broker.PublishBuild(res.Concepts)
		})
	})

	// Start HTTP server.
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}
