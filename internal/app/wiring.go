package app

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/blackwell-systems/farescout/internal/airports"
	"github.com/blackwell-systems/farescout/internal/config"
	"github.com/blackwell-systems/farescout/internal/historical"
	"github.com/blackwell-systems/farescout/internal/platform"
	"github.com/blackwell-systems/farescout/internal/pricing"
	"github.com/blackwell-systems/farescout/internal/search"
	"github.com/blackwell-systems/farescout/internal/tracking"
)

// toolchain bundles the analyzers a command needs, wired once from config.
type toolchain struct {
	cfg        *config.Config
	table      *airports.Table
	src        pricing.Source
	sim        *pricing.Simulator
	engine     *search.Engine
	historical *historical.Analyzer
	comparator *platform.Comparator
	planner    *tracking.Planner
	log        *slog.Logger
}

// positivePrice rejects non-positive fare inputs before they reach the
// analyzers, where a zero base price would poison percentage math.
func positivePrice(price float64) error {
	if price <= 0 {
		return fmt.Errorf("price must be positive, got %.2f", price)
	}
	return nil
}

// loadConfigLenient loads configuration but degrades to defaults with a
// warning instead of failing, so a broken config file never blocks an
// analysis run.
func loadConfigLenient(log *slog.Logger) *config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		log.Warn("config load failed, using defaults", "error", err)
		return config.Default()
	}
	return cfg
}

// newToolchain wires the airport table, price simulator, and analyzers from
// the given config. A zero seed means a fresh time-derived seed per run;
// pinning a seed in config makes simulated prices reproducible.
func newToolchain(cfg *config.Config, log *slog.Logger) (*toolchain, error) {
	table := airports.Builtin()
	if cfg.AirportsFile != "" {
		loaded, err := airports.Load(cfg.AirportsFile)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("loading airports file: %w", err)
			}
			log.Debug("airports file missing, using built-in table", "path", cfg.AirportsFile)
		} else {
			table = loaded
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	src := pricing.NewSource(seed)
	sim := pricing.NewSimulator(table, src)

	return &toolchain{
		cfg:        cfg,
		table:      table,
		src:        src,
		sim:        sim,
		engine:     search.NewEngine(table, sim, log),
		historical: historical.NewAnalyzer(table, log),
		comparator: platform.NewComparator(src, log),
		planner:    tracking.NewPlanner(src, log),
		log:        log,
	}, nil
}
