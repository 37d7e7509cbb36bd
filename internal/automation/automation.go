package automation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/life1d/internal/config"
	"github.com/san-kum/life1d/internal/metrics"
	"github.com/san-kum/life1d/internal/sim"
)

// Scenario defines a scripted sequence of runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run in a scenario. Preset, when set, supplies the
// defaults that the inline fields override.
type ScenarioStep struct {
	Name          string `yaml:"name"`
	Preset        string `yaml:"preset"`
	config.Config `yaml:",inline"`
}

// StepResult pairs a scenario step with its outcome.
type StepResult struct {
	Step   ScenarioStep
	Result *sim.Result
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read scenario: %s", path)
	}

	return ParseScenario(data)
}

// ParseScenario decodes a scenario, resolving presets and defaults per step.
func ParseScenario(data []byte) (*Scenario, error) {
	var raw struct {
		Name        string      `yaml:"name"`
		Description string      `yaml:"description"`
		Steps       []yaml.Node `yaml:"steps"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to parse scenario")
	}

	scenario := &Scenario{Name: raw.Name, Description: raw.Description}
	for i, node := range raw.Steps {
		var head struct {
			Preset string `yaml:"preset"`
		}
		if err := node.Decode(&head); err != nil {
			return nil, errors.Wrapf(err, "step %d", i+1)
		}

		base := config.DefaultConfig()
		if head.Preset != "" {
			if base = config.GetPreset(head.Preset); base == nil {
				return nil, fmt.Errorf("step %d: unknown preset: %s", i+1, head.Preset)
			}
		}

		step := ScenarioStep{Config: *base}
		if err := node.Decode(&step); err != nil {
			return nil, errors.Wrapf(err, "step %d", i+1)
		}
		if err := step.Validate(); err != nil {
			return nil, errors.Wrapf(err, "step %d", i+1)
		}
		scenario.Steps = append(scenario.Steps, step)
	}

	return scenario, nil
}

// RunScenario executes all steps in a scenario, reporting progress to out.
func RunScenario(ctx context.Context, scenario *Scenario, out io.Writer, logger *slog.Logger) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		name := step.Name
		if name == "" {
			name = fmt.Sprintf("step-%d", i+1)
		}
		fmt.Fprintf(out, "Running step %d/%d: %s\n", i+1, len(scenario.Steps), name)

		board, err := step.NewBoard()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		s := sim.New(logger)
		s.AddMetric(metrics.NewPopulation())
		s.AddMetric(metrics.NewDensity())
		s.AddMetric(metrics.NewStability())

		result, err := s.Run(ctx, board, sim.Config{
			Generations:    step.Generations,
			StopWhenStable: step.StopWhenStable,
			Seed:           step.Seed,
		})
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		results = append(results, StepResult{Step: step, Result: result})
	}

	return results, nil
}

// SizeSweep runs one seeded board per size in [MinSize, MaxSize].
type SizeSweep struct {
	MinSize     int
	MaxSize     int
	Stride      int
	Generations int
	Seed        int64
}

// SweepResult holds results from a size sweep
type SweepResult struct {
	Size            int
	FinalPopulation int
	SettledAt       int
	Period          int
}

// RunSweep executes a size sweep
func RunSweep(ctx context.Context, sweep *SizeSweep, logger *slog.Logger) ([]SweepResult, error) {
	if sweep.MinSize < 0 || sweep.MaxSize < sweep.MinSize {
		return nil, fmt.Errorf("invalid size range [%d, %d]", sweep.MinSize, sweep.MaxSize)
	}
	stride := sweep.Stride
	if stride <= 0 {
		stride = 1
	}

	results := make([]SweepResult, 0, (sweep.MaxSize-sweep.MinSize)/stride+1)

	for size := sweep.MinSize; size <= sweep.MaxSize; size += stride {
		cfg := config.DefaultConfig()
		cfg.Size = size
		cfg.Seed = sweep.Seed

		board, err := cfg.NewBoard()
		if err != nil {
			return nil, err
		}

		stability := metrics.NewStability()
		s := sim.New(logger)
		s.AddMetric(stability)

		result, err := s.Run(ctx, board, sim.Config{Generations: sweep.Generations, Seed: sweep.Seed})
		if err != nil {
			return nil, err
		}

		results = append(results, SweepResult{
			Size:            size,
			FinalPopulation: result.Populations[len(result.Populations)-1],
			SettledAt:       int(stability.Value()),
			Period:          stability.Period(),
		})
	}

	return results, nil
}
