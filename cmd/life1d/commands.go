package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/life1d/internal/automation"
	"github.com/san-kum/life1d/internal/config"
	"github.com/san-kum/life1d/internal/export"
	"github.com/san-kum/life1d/internal/life"
	"github.com/san-kum/life1d/internal/metrics"
	"github.com/san-kum/life1d/internal/sim"
	"github.com/san-kum/life1d/internal/storage"
	"github.com/san-kum/life1d/internal/viz"
)

func printLoop(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	board, err := cfg.NewBoard()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, board)
	for i := 0; i < cfg.Generations; i++ {
		fmt.Fprintln(out, board.Advance())
	}
	return nil
}

func defaultMetrics() []sim.Metric {
	return []sim.Metric{
		metrics.NewPopulation(),
		metrics.NewDensity(),
		metrics.NewStability(),
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir).WithLogger(logger)
	if err := st.Init(); err != nil {
		return err
	}

	board, err := cfg.NewBoard()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	s := sim.New(logger)
	for _, m := range defaultMetrics() {
		s.AddMetric(m)
	}
	s.AddObserver(sim.ObserverFunc(func(gen int, b *life.Board) error {
		_, err := fmt.Fprintf(out, "%4d  %s\n", gen, b)
		return err
	}))

	result, err := s.Run(cmd.Context(), board, sim.Config{
		Generations:    cfg.Generations,
		StopWhenStable: cfg.StopWhenStable,
		Seed:           cfg.Seed,
	})
	if err != nil {
		return err
	}

	runID, err := st.Save(storage.RunMetadata{
		Seed:        cfg.Seed,
		Size:        board.Len(),
		Generations: cfg.Generations,
		Initial:     cfg.Initial,
	}, result)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nrun id: %s\n", runID)
	fmt.Fprintf(out, "steps: %d\n", result.StepsTaken)
	if result.Stable {
		fmt.Fprintln(out, "stopped: board stable")
	}
	fmt.Fprintln(out, "\nmetrics:")
	printMetrics(cmd, result.Metrics)

	return nil
}

func printMetrics(cmd *cobra.Command, m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %.4f\n", name, m[name])
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	board, err := cfg.NewBoard()
	if err != nil {
		return err
	}

	m := viz.NewModel(board, cfg.Seed, cfg.Generations, cfg.FrameRate, viz.GetTheme(cfg.Theme))

	p := tea.NewProgram(m, tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir).WithLogger(logger)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSIZE\tGENS\tSTEPS\tSEED\tSTABLE")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%v\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Size,
			run.Generations,
			run.StepsTaken,
			run.Seed,
			run.Stable,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir).WithLogger(logger)
	records, err := st.LoadGenerations(args[0])
	if err != nil {
		return err
	}

	th := viz.GetTheme(theme)
	out := cmd.OutOrStdout()
	for _, rec := range records {
		b, err := rec.Board()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%4d  %s\n", rec.Generation, viz.RenderBoard(b.Cells(), th))
	}
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir).WithLogger(logger)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	records, err := st.LoadGenerations(runID)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		return fmt.Errorf("no data to plot")
	}

	data := make([]float64, len(records))
	for i, rec := range records {
		data[i] = float64(rec.Population)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "size: %d\n", meta.Size)
	fmt.Fprintf(out, "generations: %d\n\n", len(records))

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("population per generation"),
	)
	fmt.Fprintln(out, graph)

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir).WithLogger(logger)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	records, err := st.LoadGenerations(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSON(cmd.OutOrStdout(), meta, records)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir).WithLogger(logger)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	records, err := st.LoadGenerations(runID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no data to export")
	}

	th := viz.GetTheme(theme)
	var svg string
	if svgKind == "population" {
		if len(records) < 2 {
			return fmt.Errorf("need at least two generations to plot population")
		}
		pops := make([]int, len(records))
		for i, rec := range records {
			pops[i] = rec.Population
		}
		svg = export.PopulationSVG(pops, meta.Size, 800, 300, string(th.Accent))
	} else {
		rows := make([][]life.Cell, len(records))
		for i, rec := range records {
			b, err := rec.Board()
			if err != nil {
				return err
			}
			rows[i] = b.Cells()
		}
		svg = export.SpaceTimeSVG(rows, svgScale, string(th.Alive), string(th.Dead))
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), svg)
	return err
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "presets:")
	for _, name := range config.ListPresets() {
		p := config.Presets[name]
		start := p.Initial
		if start == "" {
			start = fmt.Sprintf("random x%d", p.Size)
		}
		fmt.Fprintf(out, "  %-8s %s, %d generations\n", name, start, p.Generations)
	}
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", runs)
	}
	if cfg.Initial != "" {
		return fmt.Errorf("batch needs random boards, got pinned initial generation %q", cfg.Initial)
	}

	ens := sim.NewEnsemble(cfg.Size, runs, cfg.Seed, defaultMetrics, logger)
	results, err := ens.Run(cmd.Context(), sim.Config{
		Generations:    cfg.Generations,
		StopWhenStable: cfg.StopWhenStable,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tSTEPS\tPOPULATION\tDENSITY\tSETTLED")
	for _, r := range results {
		settled := "-"
		if at := r.Metrics["settled_at"]; at >= 0 {
			settled = fmt.Sprintf("%.0f", at)
		}
		fmt.Fprintf(w, "%d\t%d\t%.0f\t%.3f\t%s\n",
			r.Seed, r.StepsTaken, r.Metrics["population"], r.Metrics["mean_density"], settled)
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	results, err := automation.RunSweep(cmd.Context(), &automation.SizeSweep{
		MinSize:     minSize,
		MaxSize:     maxSize,
		Stride:      stride,
		Generations: sweepGenerations,
		Seed:        sweepSeed,
	}, logger)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tPOPULATION\tSETTLED\tPERIOD")
	for _, r := range results {
		settled := "-"
		if r.SettledAt >= 0 {
			settled = fmt.Sprintf("%d", r.SettledAt)
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%d\n", r.Size, r.FinalPopulation, settled, r.Period)
	}
	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if sc.Name != "" {
		fmt.Fprintf(out, "scenario: %s\n", sc.Name)
	}

	results, err := automation.RunScenario(cmd.Context(), sc, out, logger)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	for i, r := range results {
		final, err := life.FromCells(r.Result.Final())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d. %s after %d steps\n", i+1, final, r.Result.StepsTaken)
	}
	return nil
}
