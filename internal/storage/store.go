package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/san-kum/life1d/internal/life"
	"github.com/san-kum/life1d/internal/sim"
)

const (
	metadataFile    = "metadata.json"
	generationsFile = "generations.csv"
)

type Store struct {
	baseDir string
	logger  *slog.Logger
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, logger: slog.Default()}
}

// WithLogger returns the store with its debug logger replaced.
func (s *Store) WithLogger(logger *slog.Logger) *Store {
	if logger != nil {
		s.logger = logger
	}
	return s
}

func (s *Store) Init() error {
	return errors.Wrapf(os.MkdirAll(s.baseDir, 0755), "failed to create data dir: %s", s.baseDir)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Timestamp   time.Time          `json:"timestamp"`
	Seed        int64              `json:"seed"`
	Size        int                `json:"size"`
	Generations int                `json:"generations"`
	StepsTaken  int                `json:"steps_taken"`
	Initial     string             `json:"initial,omitempty"`
	Stable      bool               `json:"stable"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Record is one stored generation.
type Record struct {
	Generation int    `json:"generation"`
	Population int    `json:"population"`
	Cells      string `json:"cells"`
}

// Board rebuilds the stored generation.
func (r Record) Board() (*life.Board, error) {
	return life.Parse(r.Cells)
}

// Save writes meta and every generation of result under a new run directory.
// ID, Timestamp, StepsTaken, Stable and Metrics are filled from result.
func (s *Store) Save(meta RunMetadata, result *sim.Result) (string, error) {
	now := time.Now()
	meta.ID = fmt.Sprintf("life_%d", now.UnixNano())
	meta.Timestamp = now
	meta.StepsTaken = result.StepsTaken
	meta.Stable = result.Stable
	meta.Metrics = result.Metrics

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", errors.Wrapf(err, "failed to create run dir: %s", runDir)
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}

	if err := writeGenerations(filepath.Join(runDir, generationsFile), result); err != nil {
		return "", err
	}

	s.logger.Debug("run saved", "id", meta.ID, "dir", runDir, "generations", len(result.Generations))
	return meta.ID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create file: %s", path)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return errors.Wrapf(enc.Encode(v), "failed to encode file: %s", path)
}

func writeGenerations(path string, result *sim.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create file: %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"generation", "population", "cells"}); err != nil {
		return err
	}

	for i, cells := range result.Generations {
		b, err := life.FromCells(cells)
		if err != nil {
			return err
		}
		row := []string{strconv.Itoa(i), strconv.Itoa(b.Population()), b.Key()}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return errors.Wrapf(w.Error(), "failed to write file: %s", path)
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			s.logger.Debug("skipping run", "dir", entry.Name(), "err", err)
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, metadataFile)
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read run: %s", runID)
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, errors.Wrapf(err, "failed to decode run: %s", runID)
	}

	return &meta, nil
}

func (s *Store) LoadGenerations(runID string) ([]Record, error) {
	csvPath := filepath.Join(s.baseDir, runID, generationsFile)
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open generations: %s", runID)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 3

	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read generations: %s", runID)
	}

	if len(rows) < 2 {
		return []Record{}, nil
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		gen, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, errors.Wrapf(err, "bad generation in run %s", runID)
		}
		pop, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, errors.Wrapf(err, "bad population in run %s", runID)
		}
		if _, err := life.Parse(row[2]); err != nil {
			return nil, errors.Wrapf(err, "bad cells in run %s", runID)
		}
		records = append(records, Record{Generation: gen, Population: pop, Cells: row[2]})
	}

	return records, nil
}
