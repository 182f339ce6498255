package experiments

import (
	"fmt"
	"riskodds/experiments/metrics"
	"riskodds/odds"
	"riskodds/simulator"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const OddsTable = "odds_table"

type TableConfig struct {
	Simulations  int
	Goroutines   int
	MaxAttackers int
	MaxDefenders int
	// Seed fixes the dice of every cell; 0 seeds them from the clock.
	Seed uint64
	// Parallel bounds how many cells are simulated at once.
	Parallel  int
	OutputDir string
}

// RunOddsTable estimates every attackers x defenders matchup of the table,
// pairs each estimate with the exact odds and stores the records as CSV.
func RunOddsTable(cfg TableConfig) ([]metrics.EstimateRecord, error) {
	if cfg.MaxAttackers <= 0 || cfg.MaxDefenders <= 0 {
		return nil, fmt.Errorf("%w: table needs at least one attacker and one defender, got %dx%d", simulator.ErrInvalidArgument, cfg.MaxAttackers, cfg.MaxDefenders)
	}

	cells := cfg.MaxAttackers * cfg.MaxDefenders
	records := make([]metrics.EstimateRecord, cells)

	log.Info().Msgf("starting %s experiment with %d cells of %d simulations...", OddsTable, cells, cfg.Simulations)

	g := new(errgroup.Group)
	g.SetLimit(max(cfg.Parallel, 1))
	for i := 0; i < cells; i++ {
		i := i
		attackers := i/cfg.MaxDefenders + 1
		defenders := i%cfg.MaxDefenders + 1

		g.Go(func() error {
			record, err := runCell(cfg, i, attackers, defenders)
			if err != nil {
				return err
			}
			records[i] = record
			log.Info().Msgf("completed cell %d of %d: %d vs %d estimate=%f exact=%f", i+1, cells, attackers, defenders, record.Estimate, record.Exact)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Msgf("completed %s experiment", OddsTable)

	writer, err := metrics.NewWriter(cfg.OutputDir, OddsTable)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteEstimateRecords(records)
	if err != nil {
		return nil, fmt.Errorf("failed to write estimate records: %w", err)
	}
	log.Info().Msgf("stored estimate records in %s", writer.Dir())

	return records, nil
}

func runCell(cfg TableConfig, cell, attackers, defenders int) (metrics.EstimateRecord, error) {
	result, err := createSimulator(cfg, cell).Simulate(cfg.Simulations, attackers, defenders)
	if err != nil {
		return metrics.EstimateRecord{}, fmt.Errorf("failed to simulate %d vs %d: %w", attackers, defenders, err)
	}
	exact, err := odds.WinProbability(attackers, defenders)
	if err != nil {
		return metrics.EstimateRecord{}, fmt.Errorf("failed to compute odds for %d vs %d: %w", attackers, defenders, err)
	}

	return metrics.EstimateRecord{
		Attackers:   attackers,
		Defenders:   defenders,
		Simulations: result.Trials,
		Wins:        result.Wins,
		Estimate:    result.Probability,
		Exact:       exact,
		Duration:    result.Metric.Duration,
	}, nil
}

func createSimulator(cfg TableConfig, cell int) *simulator.Simulator {
	options := []simulator.Option{}

	if cfg.Goroutines > 0 {
		options = append(options, simulator.WithGoroutines(cfg.Goroutines))
	}
	if cfg.Seed != 0 {
		// Spread cells apart so no two share a worker seed
		options = append(options, simulator.WithSeed(cfg.Seed+uint64(cell)<<16))
	}

	options = append(options, simulator.WithMetrics())
	return simulator.NewSimulator(options...)
}
