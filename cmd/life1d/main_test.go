package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/life1d/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPrintLoop(t *testing.T) {
	out, err := execute(t, "--initial", "0,0,1,0,0", "--generations", "2")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	want := "[0, 0, 1, 0, 0]\n[0, 1, 1, 1, 0]\n[1, 1, 0, 1, 1]\n"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestPrintLoopRandomSeed(t *testing.T) {
	a, err := execute(t, "--size", "12", "--seed", "5", "--generations", "3")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	b, _ := execute(t, "--size", "12", "--seed", "5", "--generations", "3")
	if a != b {
		t.Error("same seed should print the same run")
	}
	if lines := strings.Count(a, "\n"); lines != 4 {
		t.Errorf("expected 4 lines, got %d", lines)
	}
}

func TestPrintLoopPreset(t *testing.T) {
	out, err := execute(t, "--preset", "edges", "--generations", "1")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.HasSuffix(out, "[1, 1, 0, 1, 1]\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestInvalidInput(t *testing.T) {
	tests := [][]string{
		{"--size", "-1"},
		{"--preset", "nope"},
		{"--initial", "0,3"},
		{"--log-level", "loud"},
		{"--config", "/does/not/exist.yaml"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			if _, err := execute(t, args...); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestConfigFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("initial: \"1,0,1\"\ngenerations: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--config", path, "--generations", "1")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if out != "[1, 0, 1]\n[1, 1, 1]\n" {
		t.Errorf("flag should override file, got:\n%s", out)
	}
}

func TestRunStoreAndInspect(t *testing.T) {
	data := t.TempDir()

	out, err := execute(t, "run", "--data", data, "--initial", "0,0,1,0,0", "--generations", "3")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "   1  [0, 1, 1, 1, 0]") {
		t.Errorf("run should print generations, got:\n%s", out)
	}
	if !strings.Contains(out, "settled_at") {
		t.Errorf("run should print metrics, got:\n%s", out)
	}

	entries, err := os.ReadDir(data)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one stored run, got %v (%v)", entries, err)
	}
	runID := entries[0].Name()

	out, err = execute(t, "list", "--data", data)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, runID) {
		t.Errorf("list should show %s, got:\n%s", runID, out)
	}

	out, err = execute(t, "export-json", runID, "--data", data)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	var exported struct {
		Size    int `json:"size"`
		Records []struct {
			Cells string `json:"cells"`
		} `json:"records"`
	}
	if err := json.Unmarshal([]byte(out), &exported); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if exported.Size != 5 || len(exported.Records) != 4 || exported.Records[1].Cells != "01110" {
		t.Errorf("unexpected export %+v", exported)
	}

	out, err = execute(t, "plot", runID, "--data", data)
	if err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	if !strings.Contains(out, "population per generation") {
		t.Errorf("plot missing caption:\n%s", out)
	}

	out, err = execute(t, "export-svg", runID, "--data", data, "--scale", "8")
	if err != nil {
		t.Fatalf("export-svg failed: %v", err)
	}
	if !strings.Contains(out, `width="40" height="32"`) {
		t.Errorf("unexpected svg size:\n%s", out)
	}
	if got := strings.Count(out, "<rect x="); got != 13 {
		t.Errorf("expected 13 live squares, got %d", got)
	}

	out, err = execute(t, "export-svg", runID, "--data", data, "--kind", "population")
	if err != nil {
		t.Fatalf("export-svg population failed: %v", err)
	}
	if !strings.Contains(out, "<path") {
		t.Errorf("population svg missing path:\n%s", out)
	}

	out, err = execute(t, "show", runID, "--data", data)
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if strings.Count(out, "\n") != 4 {
		t.Errorf("show should print 4 generations, got:\n%s", out)
	}
}

func TestExportSVGSingleGeneration(t *testing.T) {
	data := t.TempDir()

	if _, err := execute(t, "run", "--data", data, "--initial", "0,1,0", "--generations", "0"); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	entries, err := os.ReadDir(data)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one stored run, got %v (%v)", entries, err)
	}
	runID := entries[0].Name()

	out, err := execute(t, "export-svg", runID, "--data", data, "--kind", "population")
	if err == nil {
		t.Fatalf("expected error for a single generation, got %q", out)
	}
	if !strings.Contains(err.Error(), "at least two generations") {
		t.Errorf("unexpected error: %v", err)
	}

	out, err = execute(t, "export-svg", runID, "--data", data)
	if err != nil {
		t.Fatalf("spacetime export failed: %v", err)
	}
	if got := strings.Count(out, "<rect x="); got != 1 {
		t.Errorf("expected 1 live square, got %d", got)
	}
}

func TestListEmpty(t *testing.T) {
	out, err := execute(t, "list", "--data", filepath.Join(t.TempDir(), "none"))
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "no runs found") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatalf("presets failed: %v", err)
	}
	for _, name := range []string{"demo", "pulse", "edges", "blinker", "wide"} {
		if !strings.Contains(out, name) {
			t.Errorf("missing preset %s in:\n%s", name, out)
		}
	}
}

func TestBatchCommand(t *testing.T) {
	out, err := execute(t, "batch", "--size", "16", "--runs", "3", "--seed", "10", "--generations", "4")
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	for _, s := range []string{"10", "11", "12"} {
		if !strings.Contains(out, "\n"+s+" ") {
			t.Errorf("missing seed %s in:\n%s", s, out)
		}
	}

	if _, err := execute(t, "batch", "--runs", "0"); err == nil {
		t.Error("expected error for zero runs")
	}
}

func TestBatchRejectsPinnedBoard(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"initial", []string{"batch", "--initial", strings.Repeat("0", 20), "--runs", "2", "--seed", "3", "--generations", "0"}},
		{"pinned preset", []string{"batch", "--preset", "pulse", "--runs", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err == nil {
				t.Fatalf("expected error for pinned board, got:\n%s", out)
			}
			if !strings.Contains(err.Error(), "random boards") {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}

	// a resized preset drops its pinned board and is random again
	out, err := execute(t, "batch", "--preset", "pulse", "--size", "12", "--runs", "2", "--seed", "4")
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if !strings.Contains(out, "\n4 ") || !strings.Contains(out, "\n5 ") {
		t.Errorf("missing seeds in:\n%s", out)
	}
}

func TestSweepFlagsKeepBoardDefaults(t *testing.T) {
	newRootCmd(&bytes.Buffer{})
	if generations != config.DefaultGenerations {
		t.Errorf("board generations default = %d, want %d", generations, config.DefaultGenerations)
	}
	if seed != 0 {
		t.Errorf("board seed default = %d, want 0", seed)
	}

	a, err := execute(t, "sweep", "--min", "4", "--max", "8", "--seed", "5")
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	b, _ := execute(t, "sweep", "--min", "4", "--max", "8", "--seed", "5")
	if a != b {
		t.Errorf("same sweep seed should give the same table:\n%s\n%s", a, b)
	}

	out, err := execute(t, "--initial", "0,0,1,0,0")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if lines := strings.Count(out, "\n"); lines != config.DefaultGenerations+1 {
		t.Errorf("expected %d lines after a sweep, got %d", config.DefaultGenerations+1, lines)
	}
}

func TestSweepCommand(t *testing.T) {
	out, err := execute(t, "sweep", "--min", "2", "--max", "6", "--stride", "2", "--generations", "10")
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if lines := strings.Count(out, "\n"); lines != 4 {
		t.Errorf("expected header and 3 rows, got:\n%s", out)
	}
}

func TestScenarioCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	scenario := "name: demo\nsteps:\n  - name: pulse\n    preset: pulse\n    generations: 1\n"
	if err := os.WriteFile(path, []byte(scenario), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "scenario", path)
	if err != nil {
		t.Fatalf("scenario failed: %v", err)
	}
	if !strings.Contains(out, "1. [0, 1, 1, 1, 0] after 1 steps") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
