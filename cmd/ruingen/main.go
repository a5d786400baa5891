package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ruinworks/ruingen/internal/blueprint"
	"github.com/ruinworks/ruingen/internal/config"
	"github.com/ruinworks/ruingen/internal/data"
	"github.com/ruinworks/ruingen/internal/db"
)

const ConfigPath = "config/generation.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	analyzeID := flag.Int64("analyze", 0, "analyze one stored blueprint by id")
	analyzeAll := flag.Bool("all", false, "analyze every stored blueprint")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	slog.Info("ruingen blueprint analyzer starting")

	cfgPath := ConfigPath
	if p := os.Getenv("RUINGEN_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadGeneration(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	slog.Info("config loaded", "proximity", cfg.ProximityEnabled, "db", cfg.Database.Host)

	if err := data.LoadThingDefs(); err != nil {
		return fmt.Errorf("loading thing defs: %w", err)
	}

	store, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer store.Close()
	slog.Info("database connected")

	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")

	stored, err := store.StoredSnapshotCount(ctx)
	if err != nil {
		return fmt.Errorf("counting snapshots: %w", err)
	}
	slog.Info("snapshot inventory", "stored", stored)

	switch {
	case *analyzeID != 0:
		return analyzeOne(ctx, store, *analyzeID)
	case *analyzeAll:
		return analyzeEverything(ctx, store)
	}
	return nil
}

func analyzeOne(ctx context.Context, store *db.Store, id int64) error {
	bp, err := store.LoadBlueprint(ctx, id)
	if err != nil {
		return fmt.Errorf("loading blueprint %d: %w", id, err)
	}

	bp.FindRooms()
	bp.UpdateStats(true)
	logBlueprint(id, bp)
	return nil
}

func analyzeEverything(ctx context.Context, store *db.Store) error {
	ids, err := store.ListSnapshotIDs(ctx)
	if err != nil {
		return fmt.Errorf("listing blueprints: %w", err)
	}

	blueprints := make([]*blueprint.Blueprint, 0, len(ids))
	for _, id := range ids {
		bp, err := store.LoadBlueprint(ctx, id)
		if err != nil {
			return fmt.Errorf("loading blueprint %d: %w", id, err)
		}
		blueprints = append(blueprints, bp)
	}

	if err := blueprint.AnalyzeBatch(ctx, blueprints, true); err != nil {
		return fmt.Errorf("analyzing blueprints: %w", err)
	}

	for i, bp := range blueprints {
		logBlueprint(ids[i], bp)
	}
	return nil
}

func logBlueprint(id int64, bp *blueprint.Blueprint) {
	slog.Info("blueprint analyzed",
		"id", id,
		"size", fmt.Sprintf("%dx%d", bp.Width(), bp.Height()),
		"rooms", bp.RoomCount()-1,
		"roomAreas", bp.RoomAreas(),
		"totalCost", bp.TotalCost(),
		"itemsDensity", bp.ItemsDensity())
}
