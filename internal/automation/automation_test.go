package automation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/mandelscope/internal/config"
	"github.com/san-kum/mandelscope/internal/fractal"
)

const scenarioYAML = `
name: tour
description: two small renders
steps:
  - preset: seahorse
    resolution: {xn: 8, yn: 6}
    max_iter: 50
  - bounds: {xmin: -2, xmax: 1, ymin: -1, ymax: 1}
    resolution: {xn: 5, yn: 5}
    palette: gray
    save_as: custom.png
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "tour" || len(s.Steps) != 2 {
		t.Fatalf("got %+v", s)
	}
	if s.Steps[1].Bounds == nil || s.Steps[1].Bounds.Xmin != -2 {
		t.Errorf("bounds not parsed: %+v", s.Steps[1].Bounds)
	}
}

func TestLoadScenarioEmpty(t *testing.T) {
	if _, err := LoadScenario(writeScenario(t, "name: empty\n")); err == nil {
		t.Error("expected error for scenario without steps")
	}
}

func TestStepParams(t *testing.T) {
	base := config.DefaultConfig()
	step := Step{Preset: "seahorse", MaxIter: 50}
	cfg, err := step.Params(base)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Bounds != config.GetPreset("seahorse").Bounds {
		t.Errorf("bounds = %v", cfg.Bounds)
	}
	if cfg.MaxIter != 50 {
		t.Errorf("max iter = %d, want explicit 50", cfg.MaxIter)
	}
	if base.Bounds != fractal.ClassicBounds {
		t.Error("base config was modified")
	}

	if _, err := (Step{Preset: "nowhere"}).Params(base); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestRunScenario(t *testing.T) {
	s, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	base := config.DefaultConfig()
	base.OutputDir = t.TempDir()

	calls := 0
	results, err := RunScenario(context.Background(), s, base, func(step, total int) { calls++ })
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 || calls != 2 {
		t.Fatalf("got %d results, %d progress calls", len(results), calls)
	}

	want := []string{"01_seahorse.png", "custom.png"}
	for k, r := range results {
		if filepath.Base(r.Path) != want[k] {
			t.Errorf("step %d path = %s, want %s", k, r.Path, want[k])
		}
		if _, err := os.Stat(r.Path); err != nil {
			t.Errorf("step %d: %v", k, err)
		}
	}
	if results[0].Summary.Cells != 48 {
		t.Errorf("first step cells = %d, want 48", results[0].Summary.Cells)
	}
}

func TestRunScenarioStopsOnError(t *testing.T) {
	s := &Scenario{Steps: []Step{
		{Resolution: &fractal.Resolution{Xn: 4, Yn: 4}},
		{Palette: "nope"},
	}}
	base := config.DefaultConfig()
	base.OutputDir = t.TempDir()

	results, err := RunScenario(context.Background(), s, base, nil)
	if err == nil {
		t.Fatal("expected error for unknown palette")
	}
	if len(results) != 1 {
		t.Errorf("got %d results before failure, want 1", len(results))
	}
}
