package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/life1d/internal/config"
	"github.com/san-kum/life1d/internal/viz"
)

var (
	dataDir    string
	logLevel   string
	configFile string
	preset     string

	size           int
	generations    int
	seed           int64
	initial        string
	stopWhenStable bool
	theme          string
	frameRate      int

	// batch and sweep
	runs    int
	minSize int
	maxSize int
	stride  int

	sweepGenerations int
	sweepSeed        int64

	svgKind  string
	svgScale int

	logger *slog.Logger
)

// main registers commands and flags and executes the root command. With no
// subcommand it runs the plain print loop: the initial board followed by one
// line per generation. It exits with status 1 if a command fails.
func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "life1d",
		Short: "one-dimensional game of life",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(logLevel)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		RunE: printLoop,
	}
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".life1d", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	addBoardFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and store it",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addBoardFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate a board in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addBoardFlags(liveCmd)
	liveCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	liveCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFrameRate, "generations per second")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print the generations of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot population of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a run as an svg space-time diagram",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgKind, "kind", "spacetime", "diagram kind (spacetime, population)")
	exportSVGCmd.Flags().IntVar(&svgScale, "scale", 8, "pixels per cell")
	exportSVGCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "run many random boards in parallel",
		Args:  cobra.NoArgs,
		RunE:  runBatch,
	}
	addBoardFlags(batchCmd)
	batchCmd.Flags().IntVar(&runs, "runs", 8, "number of seeds")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "compare settling behaviour across board sizes",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&minSize, "min", 2, "smallest board")
	sweepCmd.Flags().IntVar(&maxSize, "max", 32, "largest board")
	sweepCmd.Flags().IntVar(&stride, "stride", 2, "size increment")
	sweepCmd.Flags().IntVar(&sweepGenerations, "generations", 64, "generations per board")
	sweepCmd.Flags().Int64Var(&sweepSeed, "seed", 1, "random seed")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a yaml scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, showCmd, plotCmd, exportJSONCmd, exportSVGCmd, presetsCmd, batchCmd, sweepCmd, scenarioCmd)
	return rootCmd
}

func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&size, "size", config.DefaultSize, "number of cells")
	cmd.Flags().IntVar(&generations, "generations", config.DefaultGenerations, "generations to advance")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().StringVar(&initial, "initial", "", "pinned first generation, e.g. 0,0,1,0,0")
	cmd.Flags().BoolVar(&stopWhenStable, "stop-when-stable", false, "stop once a generation repeats the previous one")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers defaults, preset, config file and explicitly set flags,
// in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = size
		if !flags.Changed("initial") {
			cfg.Initial = ""
		}
	}
	if flags.Changed("generations") {
		cfg.Generations = generations
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("initial") {
		cfg.Initial = initial
	}
	if flags.Changed("stop-when-stable") {
		cfg.StopWhenStable = stopWhenStable
	}
	if flags.Lookup("theme") != nil && flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Lookup("fps") != nil && flags.Changed("fps") {
		cfg.FrameRate = frameRate
	}

	if cfg.Seed == 0 && cfg.Initial == "" {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid log level: %s", level)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
