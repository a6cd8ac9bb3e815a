package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/attribution/internal/config"
	"github.com/katalvlaran/attribution/internal/logging"
	"github.com/katalvlaran/attribution/journey"
	"github.com/katalvlaran/attribution/shapley"
	"github.com/spf13/cobra"
)

// session bundles what every data command needs.
type session struct {
	cfg    *config.Config
	log    *slog.Logger
	table  *journey.Table
	engine *shapley.Engine
}

// loadConfig resolves config file, environment and flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	overrides := map[string]*string{
		"log-level": &cfg.Logging.Level,
		"format":    &cfg.Output.Format,
		"journeys":  &cfg.Input.Journeys,
		"values":    &cfg.Input.Values,
	}
	for name, dst := range overrides {
		if v, _ := cmd.Flags().GetString(name); v != "" {
			*dst = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Input.Journeys == "" || cfg.Input.Values == "" {
		return nil, fmt.Errorf("both --journeys and --values are required")
	}

	return cfg, nil
}

// openSession loads inputs and builds the engine.
func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())

	table, err := readFile(cfg.Input.Journeys, func(f *os.File) (*journey.Table, error) {
		return journey.ReadCSV(f, cfg.ReadOptions()...)
	})
	if err != nil {
		return nil, fmt.Errorf("reading journeys: %w", err)
	}
	values, err := readFile(cfg.Input.Values, func(f *os.File) ([]float64, error) {
		return journey.ReadValues(f, cfg.ReadOptions()...)
	})
	if err != nil {
		return nil, fmt.Errorf("reading values: %w", err)
	}
	log.Info("inputs loaded",
		"journeys", cfg.Input.Journeys,
		"users", table.Users(),
		"max_journey", table.Width())

	engine, err := shapley.New(table, values, shapley.WithLogger(log))
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, log: log, table: table, engine: engine}, nil
}

func readFile[T any](path string, parse func(*os.File) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()

	return parse(f)
}
