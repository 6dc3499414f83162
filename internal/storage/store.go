package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/mandelscope/internal/fractal"
)

const manifestName = "manifest.json"

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Run records one invocation that produced artifacts.
type Run struct {
	ID        string         `json:"id"`
	Command   string         `json:"command"`
	Timestamp time.Time      `json:"timestamp"`
	Bounds    fractal.Bounds `json:"bounds"`
	Xn        int            `json:"xn"`
	Yn        int            `json:"yn"`
	MaxIter   int            `json:"max_iter"`
	Horizon   float64        `json:"horizon"`
	Precision string         `json:"precision"`
	Backend   string         `json:"backend"`
	Artifacts []string       `json:"artifacts"`
	Elapsed   float64        `json:"elapsed_seconds"`
	Masked    int            `json:"masked"`
}

// NewRun fills the parameter fields of a run record.
func NewRun(command string, p fractal.Params, backend string) *Run {
	return &Run{
		Command:   command,
		Timestamp: time.Now(),
		Bounds:    p.Bounds,
		Xn:        p.Resolution.Xn,
		Yn:        p.Resolution.Yn,
		MaxIter:   p.MaxIter,
		Horizon:   p.Horizon,
		Precision: string(p.Precision),
		Backend:   backend,
	}
}

// Save assigns an ID to run and writes its manifest under
// <baseDir>/runs/<id>/manifest.json.
func (s *Store) Save(run *Run) (string, error) {
	if run.Timestamp.IsZero() {
		run.Timestamp = time.Now()
	}
	base := fmt.Sprintf("%s_%s", run.Command, run.Timestamp.Format("20060102T150405"))
	runID := base
	for k := 2; ; k++ {
		if _, err := os.Stat(s.runDir(runID)); os.IsNotExist(err) {
			break
		}
		runID = fmt.Sprintf("%s_%d", base, k)
	}
	run.ID = runID

	if err := os.MkdirAll(s.runDir(runID), 0755); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(s.runDir(runID), manifestName))
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(run); err != nil {
		return "", err
	}

	return runID, f.Close()
}

// List returns recorded runs, oldest first. Unreadable manifests are skipped.
func (s *Store) List() ([]Run, error) {
	entries, err := os.ReadDir(filepath.Join(s.baseDir, "runs"))
	if err != nil {
		if os.IsNotExist(err) {
			return []Run{}, nil
		}
		return nil, err
	}

	runs := make([]Run, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		run, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *run)
	}

	sort.Slice(runs, func(a, b int) bool {
		return runs[a].Timestamp.Before(runs[b].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*Run, error) {
	data, err := os.ReadFile(filepath.Join(s.runDir(runID), manifestName))
	if err != nil {
		return nil, err
	}

	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	return &run, nil
}

func (s *Store) runDir(runID string) string {
	return filepath.Join(s.baseDir, "runs", runID)
}
