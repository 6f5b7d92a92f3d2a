// Command oracle runs the Crownfall oracle engine: ambition text in, a
// seeded world, a goal graph, and ranked action proposals out, one tick per
// turn over HTTP.
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/talgya/crownfall/internal/api"
	"github.com/talgya/crownfall/internal/knowledge"
	"github.com/talgya/crownfall/internal/session"
)

type config struct {
	Port        int           `env:"PORT" envDefault:"8080"`
	DBPath      string        `env:"DB_PATH" envDefault:"data/crownfall.db"`
	AdminKey    string        `env:"ADMIN_KEY"`
	RulesPath   string        `env:"RULES_PATH"`
	SessionTTL  time.Duration `env:"SESSION_TTL" envDefault:"72h"`
	SweepEvery  time.Duration `env:"SWEEP_EVERY" envDefault:"1h"`
	LogLevel    slog.Level    `env:"LOG_LEVEL" envDefault:"INFO"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		slog.Error("config parse failed", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	slog.Info("crownfall oracle engine starting", "port", cfg.Port)

	// ── Knowledge base ───────────────────────────────────────────────
	kb := knowledge.Basic()
	if cfg.RulesPath != "" {
		raw, err := os.ReadFile(cfg.RulesPath)
		if err != nil {
			slog.Error("failed to read rules file", "path", cfg.RulesPath, "error", err)
			os.Exit(1)
		}
		kb, err = knowledge.Load(raw)
		if err != nil {
			slog.Error("failed to load rules file", "path", cfg.RulesPath, "error", err)
			os.Exit(1)
		}
		slog.Info("rules loaded", "path", cfg.RulesPath,
			"requirements", len(kb.Requirements), "generators", len(kb.Generators))
	}

	// ── Session store ────────────────────────────────────────────────
	var store session.Store
	if cfg.DBPath == "" {
		store = session.NewMemoryStore()
		slog.Info("using in-memory session store")
	} else {
		os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755)
		db, err := session.OpenSQLite(cfg.DBPath)
		if err != nil {
			slog.Error("failed to open database", "path", cfg.DBPath, "error", err)
			os.Exit(1)
		}
		defer db.Close()
		store = db
		slog.Info("database opened", "path", cfg.DBPath)
	}

	// ── Eviction sweep ───────────────────────────────────────────────
	go func() {
		ticker := time.NewTicker(cfg.SweepEvery)
		defer ticker.Stop()
		for range ticker.C {
			n, err := store.Sweep(cfg.SessionTTL)
			if err != nil {
				slog.Error("session sweep failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("sessions evicted", "count", n)
			}
		}
	}()

	// ── API ──────────────────────────────────────────────────────────
	srv := &api.Server{
		Engine:   session.NewEngine(store, kb),
		Port:     cfg.Port,
		AdminKey: cfg.AdminKey,
	}
	srv.Start()
	defer srv.Close()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	slog.Info("shutting down")
}
