package config

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/life1d/internal/life"
)

const (
	DefaultSize        = 10
	DefaultGenerations = 10
	DefaultFrameRate   = 8
	DefaultTheme       = "retro"
)

type Config struct {
	Size           int    `yaml:"size"`
	Generations    int    `yaml:"generations"`
	Seed           int64  `yaml:"seed"`
	Initial        string `yaml:"initial,omitempty"`
	StopWhenStable bool   `yaml:"stop_when_stable"`
	Theme          string `yaml:"theme"`
	FrameRate      int    `yaml:"frame_rate"`
}

func DefaultConfig() *Config {
	return &Config{
		Size:        DefaultSize,
		Generations: DefaultGenerations,
		Theme:       DefaultTheme,
		FrameRate:   DefaultFrameRate,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of base, so keys missing from the file keep the
// values of base. base is modified and returned.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file: %s", path)
	}
	cfg := base
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file: %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file: %s", path)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "failed to write config file: %s", path)
}

// Validate checks value ranges. A pinned initial generation overrides Size.
func (c *Config) Validate() error {
	if c.Size < 0 {
		return fmt.Errorf("%w: size must not be negative, got %d", life.ErrInvalidArgument, c.Size)
	}
	if c.Generations < 0 {
		return fmt.Errorf("%w: generations must not be negative, got %d", life.ErrInvalidArgument, c.Generations)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("%w: frame rate must be positive, got %d", life.ErrInvalidArgument, c.FrameRate)
	}
	if c.Initial != "" {
		if _, err := life.Parse(c.Initial); err != nil {
			return err
		}
	}
	return nil
}

// NewBoard builds the first generation: the pinned Initial cells when set,
// otherwise a random board of Size cells seeded with Seed.
func (c *Config) NewBoard() (*life.Board, error) {
	if c.Initial != "" {
		return life.Parse(c.Initial)
	}
	return life.NewBoard(c.Size, life.NewRNG(c.Seed))
}
