// Command villagesim runs the autonomous village simulation.
package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/emersonsg01/villagersim/internal/api"
	"github.com/emersonsg01/villagersim/internal/config"
	"github.com/emersonsg01/villagersim/internal/engine"
	"github.com/emersonsg01/villagersim/internal/persistence"
	"github.com/emersonsg01/villagersim/internal/world"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("Villagersim — Autonomous Village Simulation")

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}
	slog.Info("config loaded", "seed", cfg.Seed, "db", cfg.DBPath, "port", cfg.APIPort)

	// ── Database ──────────────────────────────────────────────────────
	os.MkdirAll(filepath.Dir(cfg.DBPath), 0755)
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	// ── World (always regenerated — deterministic from seed) ──────────
	slog.Info("generating world...")
	gen := world.GenConfig{
		Width:  cfg.World.Width,
		Height: cfg.World.Height,
		Depth:  cfg.World.Depth,
		Seed:   cfg.Seed,
	}
	w := world.Generate(gen)
	slog.Info("world generated", "size", w.String(), "spawn", w.Spawn)

	// ── Simulation ────────────────────────────────────────────────────
	sim := engine.NewSimulation(w, cfg)

	saved, ledgers, err := db.LoadAgents()
	if err != nil {
		slog.Error("failed to load agents", "error", err)
		os.Exit(1)
	}
	if len(saved) > 0 {
		for _, a := range saved {
			sim.Registry.Add(a)
			sim.RestoreLedger(a.ID, ledgers[a.ID])
		}
		if err := db.LoadMarket(sim.Exchange); err != nil {
			slog.Error("failed to load market", "error", err)
			os.Exit(1)
		}
		slog.Info("resumed from save", "agents", len(saved))
	} else {
		sim.SpawnPopulation(cfg.Population.Initial)
	}

	// ── Engine ────────────────────────────────────────────────────────
	eng := engine.NewEngine()
	if cfg.TickIntervalMs > 0 {
		eng.Interval = time.Duration(cfg.TickIntervalMs) * time.Millisecond
	}
	if raw, err := db.GetMeta("last_tick"); err == nil {
		if tick, err := strconv.ParseUint(raw, 10, 64); err == nil {
			eng.Tick = tick
		}
	}

	eng.OnTick = sim.TickMinute
	eng.OnHour = sim.TickHour
	eng.OnDay = func(tick uint64) {
		sim.TickDay(tick)
		if err := db.SaveWorldState(sim); err != nil {
			slog.Error("autosave failed", "error", err)
		}
	}

	// ── API ───────────────────────────────────────────────────────────
	srv := &api.Server{Sim: sim, Eng: eng, DB: db, Port: cfg.APIPort}
	srv.Start()

	// ── Shutdown handling ─────────────────────────────────────────────
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		slog.Info("shutdown signal received", "signal", sig)
		eng.Stop()
	}()

	eng.Run()

	if err := db.SaveWorldState(sim); err != nil {
		slog.Error("final save failed", "error", err)
		os.Exit(1)
	}
	slog.Info("shutdown complete", "tick", eng.Tick, "time", engine.SimTime(eng.Tick))
}
