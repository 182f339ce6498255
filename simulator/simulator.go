package simulator

import (
	"fmt"
	"riskodds/experiments/metrics"
	"riskodds/game"
	"riskodds/meta"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(s *Simulator)

// DiceFactory returns the die owned by a single worker.
type DiceFactory func(worker int) game.Die

type Result struct {
	Trials      int
	Wins        int
	Probability float64
	Metric      metrics.SimulationMetric
}

type Simulator struct {
	goroutines int
	dice       DiceFactory
	rules      game.Rules
	metrics    metrics.Collector
}

func WithGoroutines(goroutines int) Option {
	return func(s *Simulator) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

// WithSeed makes every worker roll a die seeded from seed and its worker index,
// so the same seed and goroutine count always produce the same estimate.
func WithSeed(seed uint64) Option {
	return func(s *Simulator) {
		s.dice = func(worker int) game.Die {
			return game.NewSeededDie(seed + uint64(worker))
		}
	}
}

func WithDice(dice DiceFactory) Option {
	return func(s *Simulator) {
		if dice != nil {
			s.dice = dice
		}
	}
}

// WithMetrics collects trial statistics into Result.Metric. The collector is
// reset per call, so a simulator with metrics must not run concurrent calls.
func WithMetrics() Option {
	return func(s *Simulator) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSimulator(options ...Option) *Simulator {
	s := &Simulator{ // Default values
		goroutines: 1,
		dice: func(int) game.Die {
			return game.NewDie()
		},
		rules:   game.NewStandardRules(),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

var defaultSimulator = NewSimulator(WithGoroutines(meta.GO_ROUTINES))

// EstimateVictoryProbability estimates the attacker's chance of winning with
// a time-seeded simulator running meta.GO_ROUTINES workers.
func EstimateVictoryProbability(simulations, attackers, defenders int) (float64, error) {
	return defaultSimulator.EstimateVictoryProbability(simulations, attackers, defenders)
}

// EstimateVictoryProbability runs simulations independent battles from the
// given army sizes and returns the fraction the attacker won.
func (s *Simulator) EstimateVictoryProbability(simulations, attackers, defenders int) (float64, error) {
	result, err := s.Simulate(simulations, attackers, defenders)
	if err != nil {
		return 0, err
	}
	return result.Probability, nil
}

func (s *Simulator) Simulate(simulations, attackers, defenders int) (Result, error) {
	if err := validate(simulations, attackers, defenders); err != nil {
		return Result{}, err
	}

	goroutines := min(s.goroutines, simulations)
	log.Debug().Msgf("simulating %d battles of %d attackers vs %d defenders on %d goroutines...", simulations, attackers, defenders, goroutines)

	start := game.ArmyState{Attackers: attackers, Defenders: defenders}
	s.metrics.Start(goroutines)
	startTime := time.Now()
	wins := s.iterate(start, simulations, goroutines)
	metric := s.metrics.Complete()

	result := Result{
		Trials:      simulations,
		Wins:        wins,
		Probability: float64(wins) / float64(simulations),
		Metric:      metric,
	}
	log.Debug().Msgf("completed %d battles in %s with estimate %f", simulations, time.Since(startTime), result.Probability)
	return result, nil
}

// iterate splits the trials into contiguous chunks, one per worker, each
// rolling its own die.
func (s *Simulator) iterate(start game.ArmyState, simulations, goroutines int) int {
	var wins atomic.Int64
	var wg sync.WaitGroup

	chunk, extra := simulations/goroutines, simulations%goroutines
	for i := 0; i < goroutines; i++ {
		trials := chunk
		if i < extra {
			trials++
		}

		wg.Add(1)
		go func(worker, trials int) {
			defer wg.Done()

			die := s.dice(worker)
			won := 0
			for j := 0; j < trials; j++ {
				end, rounds := game.Fight(start, s.rules, die)
				if end.AttackerWon() {
					won++
				}
				s.metrics.AddTrial(rounds, end.AttackerWon())
			}
			wins.Add(int64(won))
		}(i, trials)
	}

	wg.Wait()
	return int(wins.Load())
}

func validate(simulations, attackers, defenders int) error {
	if simulations <= 0 {
		return fmt.Errorf("%w: number of simulations must be positive, got %d", ErrInvalidArgument, simulations)
	}
	if attackers < 0 {
		return fmt.Errorf("%w: number of attackers cannot be negative, got %d", ErrInvalidArgument, attackers)
	}
	if defenders < 0 {
		return fmt.Errorf("%w: number of defenders cannot be negative, got %d", ErrInvalidArgument, defenders)
	}
	return nil
}
