package automation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mandelscope/internal/analysis"
	"github.com/san-kum/mandelscope/internal/compute"
	"github.com/san-kum/mandelscope/internal/config"
	"github.com/san-kum/mandelscope/internal/fractal"
	"github.com/san-kum/mandelscope/internal/palette"
	"github.com/san-kum/mandelscope/internal/render"
)

// Scenario is a scripted sequence of renders.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step renders one view. Preset fills bounds and budget; explicit fields
// override it.
type Step struct {
	Preset     string              `yaml:"preset"`
	Bounds     *fractal.Bounds     `yaml:"bounds"`
	Resolution *fractal.Resolution `yaml:"resolution"`
	MaxIter    int                 `yaml:"max_iter"`
	Palette    string              `yaml:"palette"`
	SaveAs     string              `yaml:"save_as"`
}

// StepResult describes one rendered step.
type StepResult struct {
	Path    string
	Params  fractal.Params
	Summary analysis.Summary
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s has no steps", path)
	}

	return &scenario, nil
}

// Params resolves the step against base.
func (s Step) Params(base *config.Config) (*config.Config, error) {
	cfg := *base
	if s.Preset != "" {
		if err := cfg.ApplyPreset(s.Preset); err != nil {
			return nil, err
		}
	}
	if s.Bounds != nil {
		cfg.Bounds = *s.Bounds
	}
	if s.Resolution != nil {
		cfg.Resolution = *s.Resolution
	}
	if s.MaxIter > 0 {
		cfg.MaxIter = s.MaxIter
	}
	if s.Palette != "" {
		cfg.Palette = s.Palette
	}
	return &cfg, nil
}

func (s Step) fileName(index int) string {
	if s.SaveAs != "" {
		return s.SaveAs
	}
	if s.Preset != "" {
		return fmt.Sprintf("%02d_%s.png", index+1, s.Preset)
	}
	return fmt.Sprintf("%02d.png", index+1)
}

// RunScenario renders every step into base.OutputDir, stopping at the first
// failure. progress, if set, is called before each step.
func RunScenario(ctx context.Context, scenario *Scenario, base *config.Config, progress func(step, total int)) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		if progress != nil {
			progress(i+1, len(scenario.Steps))
		}

		cfg, err := step.Params(base)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		p, err := cfg.Params()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		cm, err := palette.Get(cfg.Palette)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		res, err := compute.ComputeGridContext(ctx, p)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		path := filepath.Join(cfg.OutputDir, step.fileName(i))
		if err := render.WriteImage(path, res.N, cm); err != nil {
			return results, fmt.Errorf("step %d write: %w", i+1, err)
		}

		results = append(results, StepResult{
			Path:    path,
			Params:  p,
			Summary: analysis.Summarize(res.N),
		})
	}

	return results, nil
}
