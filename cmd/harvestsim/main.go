package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/ShardHarvest_Go/internal/catalog"
	"github.com/osse101/ShardHarvest_Go/internal/config"
	"github.com/osse101/ShardHarvest_Go/internal/event"
	"github.com/osse101/ShardHarvest_Go/internal/harvest"
	"github.com/osse101/ShardHarvest_Go/internal/logger"
	"github.com/osse101/ShardHarvest_Go/internal/metrics"
	"github.com/osse101/ShardHarvest_Go/internal/sim"
)

func main() {
	logger.InitLogger(logger.SimulationConfig())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	warnings, err := config.ValidateWithWarnings(cfg)
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Simulation failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	seed := cfg.Seed(time.Now())
	clock := harvest.NewSimulatedClock(time.Now().UTC())
	rng := harvest.NewRNG(seed)

	bus := event.NewMemoryBus()
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	cat, err := catalog.New(ctx, catalog.Config{ModernRules: cfg.ModernRules}, harvest.Options{
		Clock:     clock,
		Rand:      rng,
		Bus:       bus,
		CacheSize: cfg.DefinitionCacheSize,
	})
	if err != nil {
		return err
	}

	simulator, err := sim.New(cat, clock, rng, sim.Options{
		Workers: cfg.Sim.Workers,
		Actors:  cfg.Sim.Actors,
		Rounds:  cfg.Sim.Attempts,
		Step:    cfg.Sim.Step(),
		Seed:    seed,
	})
	if err != nil {
		return err
	}

	report, runErr := simulator.Run(ctx)

	if err := exportMetrics(report, cfg.Sim.MetricsFile); err != nil {
		slog.Warn("Metrics export failed", "error", err)
	}

	out, err := report.ToPrettyJSON()
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	fmt.Println(string(out))

	return runErr
}

// exportMetrics copies the harvest series recorded during the run into the
// report and, when path is set, writes them there in the text format.
func exportMetrics(report *sim.Report, path string) error {
	series, err := metrics.Summarize(prometheus.DefaultGatherer)
	if err != nil {
		return err
	}
	report.AttachMetrics(series)

	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create metrics file: %w", err)
	}
	if err := metrics.WriteText(f, prometheus.DefaultGatherer); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
