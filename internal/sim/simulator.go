package sim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/san-kum/life1d/internal/life"
)

type Simulator struct {
	metrics   []Metric
	observers []Observer
	logger    *slog.Logger
}

func New(logger *slog.Logger) *Simulator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Simulator{
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		logger:    logger,
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run advances b cfg.Generations times, recording each generation. The board
// is mutated in place and holds the last generation when Run returns.
func (s *Simulator) Run(ctx context.Context, b *life.Board, cfg Config) (*Result, error) {
	if err := s.validateConfig(b, cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Seed:        cfg.Seed,
		Generations: make([][]life.Cell, 0, cfg.Generations+1),
		Populations: make([]int, 0, cfg.Generations+1),
		Metrics:     make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	s.logger.Debug("run started", "size", b.Len(), "generations", cfg.Generations, "seed", cfg.Seed)

	if err := s.record(result, 0, b); err != nil {
		return result, err
	}

	for gen := 1; gen <= cfg.Generations; gen++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		prev := b.Key()
		b.Advance()
		result.StepsTaken++

		if err := s.record(result, gen, b); err != nil {
			return result, err
		}

		if cfg.StopWhenStable && b.Key() == prev {
			result.Stable = true
			s.logger.Debug("board stable", "generation", gen)
			break
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	s.logger.Debug("run finished", "steps", result.StepsTaken, "population", b.Population())

	return result, nil
}

func (s *Simulator) record(result *Result, gen int, b *life.Board) error {
	result.Generations = append(result.Generations, b.Cells())
	result.Populations = append(result.Populations, b.Population())

	for _, m := range s.metrics {
		m.Observe(gen, b)
	}
	for _, obs := range s.observers {
		if err := obs.OnGeneration(gen, b); err != nil {
			return &StepError{Generation: gen, Wrapped: err}
		}
	}
	return nil
}

func (s *Simulator) validateConfig(b *life.Board, cfg Config) error {
	if b == nil {
		return fmt.Errorf("board must not be nil")
	}
	if cfg.Generations < 0 {
		return fmt.Errorf("generations must not be negative, got %d", cfg.Generations)
	}
	return nil
}
