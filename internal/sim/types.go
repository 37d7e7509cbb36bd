package sim

import (
	"fmt"

	"github.com/san-kum/life1d/internal/life"
)

// Metric accumulates a single number over the generations of a run.
type Metric interface {
	Name() string
	Observe(gen int, b *life.Board)
	Value() float64
	Reset()
}

// Observer is notified of every generation. Returning an error aborts the run.
type Observer interface {
	OnGeneration(gen int, b *life.Board) error
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(gen int, b *life.Board) error

func (f ObserverFunc) OnGeneration(gen int, b *life.Board) error { return f(gen, b) }

type Config struct {
	Generations    int
	StopWhenStable bool
	Seed           int64
}

func DefaultConfig() Config {
	return Config{Generations: 10}
}

// Result holds every generation of a run, starting with the initial board.
type Result struct {
	Seed        int64
	Generations [][]life.Cell
	Populations []int
	Metrics     map[string]float64
	StepsTaken  int
	Stable      bool
}

// Final returns the last recorded generation.
func (r *Result) Final() []life.Cell {
	if len(r.Generations) == 0 {
		return nil
	}
	return r.Generations[len(r.Generations)-1]
}

// StepError reports the generation at which an observer aborted a run.
type StepError struct {
	Generation int
	Wrapped    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("generation %d: %v", e.Generation, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
