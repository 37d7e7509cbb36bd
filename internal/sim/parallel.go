package sim

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/life1d/internal/life"
)

// Ensemble runs one independent random board per seed.
type Ensemble struct {
	size      int
	numRuns   int
	seedStart int64
	metrics   func() []Metric
	logger    *slog.Logger
}

// NewEnsemble prepares numRuns boards of the given size seeded seedStart,
// seedStart+1, ... . metrics is called once per run so metric state is never
// shared between goroutines; it may be nil.
func NewEnsemble(size, numRuns int, seedStart int64, metrics func() []Metric, logger *slog.Logger) *Ensemble {
	return &Ensemble{size: size, numRuns: numRuns, seedStart: seedStart, metrics: metrics, logger: logger}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)

	eg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < e.numRuns; i++ {
		eg.Go(func() error {
			seed := e.seedStart + int64(i)
			board, err := life.NewBoard(e.size, life.NewRNG(seed))
			if err != nil {
				return err
			}

			s := New(e.logger)
			if e.metrics != nil {
				for _, m := range e.metrics() {
					s.AddMetric(m)
				}
			}

			cfgCopy := cfg
			cfgCopy.Seed = seed
			res, err := s.Run(ctx, board, cfgCopy)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
