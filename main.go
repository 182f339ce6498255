package main

import (
	"flag"
	"fmt"
	"os"
	"riskodds/config"
	"riskodds/experiments"
	"riskodds/odds"
	"riskodds/shell"
	"riskodds/simulator"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	mode := flag.String("mode", "interactive", "One of interactive, once or table")
	simulations := flag.Int("simulations", 0, "Number of battles simulated per estimate")
	goroutines := flag.Int("goroutines", 0, "Number of goroutines for parallel trials")
	seed := flag.Uint64("seed", 0, "Seed for reproducible dice, 0 seeds from the clock")
	attackers := flag.Int("attackers", 0, "Number of attackers (once mode)")
	defenders := flag.Int("defenders", 0, "Number of defenders (once mode)")
	maxAttackers := flag.Int("max-attackers", 0, "Largest attacking army of the table")
	maxDefenders := flag.Int("max-defenders", 0, "Largest defending army of the table")
	outputDir := flag.String("out", "", "Directory the table is written to")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Flags set on the command line win over the config
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "simulations":
			cfg.Simulation.Simulations = *simulations
		case "goroutines":
			cfg.Simulation.Goroutines = *goroutines
		case "seed":
			cfg.Simulation.Seed = *seed
		case "max-attackers":
			cfg.Table.MaxAttackers = *maxAttackers
		case "max-defenders":
			cfg.Table.MaxDefenders = *maxDefenders
		case "out":
			cfg.Table.OutputDir = *outputDir
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid settings")
	}

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	switch *mode {
	case "interactive":
		err = shell.Run(os.Stdin, os.Stdout, createSimulator(cfg).EstimateVictoryProbability)
	case "once":
		err = runOnce(cfg, *attackers, *defenders)
	case "table":
		_, err = experiments.RunOddsTable(experiments.TableConfig{
			Simulations:  cfg.Simulation.Simulations,
			Goroutines:   cfg.Simulation.Goroutines,
			MaxAttackers: cfg.Table.MaxAttackers,
			MaxDefenders: cfg.Table.MaxDefenders,
			Seed:         cfg.Simulation.Seed,
			Parallel:     cfg.Simulation.Goroutines,
			OutputDir:    cfg.Table.OutputDir,
		})
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s mode failed", *mode)
	}
}

// runOnce prints a single estimate next to the exact odds
func runOnce(cfg config.Config, attackers, defenders int) error {
	result, err := createSimulator(cfg).Simulate(cfg.Simulation.Simulations, attackers, defenders)
	if err != nil {
		return err
	}
	exact, err := odds.WinProbability(attackers, defenders)
	if err != nil {
		return err
	}

	fmt.Printf("Probability of victory is %f (exact %f)\n", result.Probability, exact)
	log.Info().Msgf("%d battles, %d rounds, %d goroutines in %s", result.Metric.Trials, result.Metric.Rounds, result.Metric.Goroutines, result.Metric.Duration)
	return nil
}

func createSimulator(cfg config.Config) *simulator.Simulator {
	options := []simulator.Option{
		simulator.WithGoroutines(cfg.Simulation.Goroutines),
		simulator.WithMetrics(),
	}
	if cfg.Simulation.Seed != 0 {
		options = append(options, simulator.WithSeed(cfg.Simulation.Seed))
	}
	return simulator.NewSimulator(options...)
}
