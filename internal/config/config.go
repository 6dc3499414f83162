package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mandelscope/internal/fractal"
)

const (
	DefaultResolution = 3000
	DefaultMaxIter    = 80
	DefaultFrames     = 80
	DefaultFPS        = 20
	// DefaultAnimationResolution keeps 80 paletted frames in memory at once.
	DefaultAnimationResolution = 1000
)

type Config struct {
	Bounds     fractal.Bounds     `yaml:"bounds"`
	Resolution fractal.Resolution `yaml:"resolution"`
	MaxIter    int                `yaml:"max_iter"`
	Horizon    float64            `yaml:"horizon"`
	Precision  string             `yaml:"precision"`
	Backend    string             `yaml:"backend"`
	Workers    int                `yaml:"workers"`
	Palette    string             `yaml:"palette"`
	OutputDir  string             `yaml:"output_dir"`
	Files      FilesConfig        `yaml:"files"`
	Heatmap    HeatmapConfig      `yaml:"heatmap"`
	Animation  AnimationConfig    `yaml:"animation"`
}

type FilesConfig struct {
	Image     string `yaml:"image"`
	Data      string `yaml:"data"`
	Heatmap   string `yaml:"heatmap"`
	Animation string `yaml:"animation"`
}

type HeatmapConfig struct {
	Palette string `yaml:"palette"`
	Size    int    `yaml:"size"`
}

type AnimationConfig struct {
	Frames     int                `yaml:"frames"`
	FPS        int                `yaml:"fps"`
	Resolution fractal.Resolution `yaml:"resolution"`
}

func DefaultConfig() *Config {
	return &Config{
		Bounds:     fractal.ClassicBounds,
		Resolution: fractal.Resolution{Xn: DefaultResolution, Yn: DefaultResolution},
		MaxIter:    DefaultMaxIter,
		Horizon:    fractal.DefaultHorizon,
		Precision:  string(fractal.Double),
		Backend:    "auto",
		Palette:    "hot",
		OutputDir:  ".",
		Files: FilesConfig{
			Image:     "mandelbrot.png",
			Data:      "mandelbrot.csv",
			Heatmap:   "mandelbrot_heatmap.png",
			Animation: "mandelbrot_animation.gif",
		},
		Heatmap: HeatmapConfig{
			Palette: "rocket",
			Size:    1000,
		},
		Animation: AnimationConfig{
			Frames:     DefaultFrames,
			FPS:        DefaultFPS,
			Resolution: fractal.Resolution{Xn: DefaultAnimationResolution, Yn: DefaultAnimationResolution},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the grid section of the config into core params.
func (c *Config) Params() (fractal.Params, error) {
	prec, err := fractal.ParsePrecision(c.Precision)
	if err != nil {
		return fractal.Params{}, err
	}
	p := fractal.NewParams(c.Bounds, c.Resolution, c.MaxIter)
	p.Horizon = c.Horizon
	p.Precision = prec
	return p, p.Validate()
}

// AnimationParams is Params at the animation resolution. The budget is
// replaced per frame.
func (c *Config) AnimationParams() (fractal.Params, error) {
	p, err := c.Params()
	if err != nil {
		return p, err
	}
	if c.Animation.Resolution.Xn > 0 && c.Animation.Resolution.Yn > 0 {
		p.Resolution = c.Animation.Resolution
	}
	return p, p.Validate()
}

// ApplyPreset copies a region preset's bounds into c.
func (c *Config) ApplyPreset(name string) error {
	r := GetPreset(name)
	if r == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", name, ListPresets())
	}
	c.Bounds = r.Bounds
	if r.MaxIter > 0 {
		c.MaxIter = r.MaxIter
	}
	return nil
}
