package metrics

import (
	"sync/atomic"
	"time"
)

type SimulationMetric struct {
	Goroutines int
	Duration   time.Duration
	Trials     int
	Rounds     int
	Wins       int
}

type Collector interface {
	Start(goroutines int)
	AddTrial(rounds int, won bool)
	Complete() SimulationMetric
}

type collector struct {
	goroutines int
	startTime  time.Time
	trials     atomic.Int64
	rounds     atomic.Int64
	wins       atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters so a collector can be reused across simulations.
func (m *collector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.trials.Store(0)
	m.rounds.Store(0)
	m.wins.Store(0)
}

func (m *collector) AddTrial(rounds int, won bool) {
	m.trials.Add(1)
	m.rounds.Add(int64(rounds))
	if won {
		m.wins.Add(1)
	}
}

func (m *collector) Complete() SimulationMetric {
	return SimulationMetric{
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Trials:     int(m.trials.Load()),
		Rounds:     int(m.rounds.Load()),
		Wins:       int(m.wins.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int)          {}
func (m *dummyCollector) AddTrial(rounds int, won bool) {}
func (m *dummyCollector) Complete() SimulationMetric    { return SimulationMetric{} }
