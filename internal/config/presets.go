package config

import (
	"sort"

	"github.com/san-kum/mandelscope/internal/fractal"
)

// Region is a named view of the plane with a budget deep enough to resolve it.
type Region struct {
	Bounds  fractal.Bounds
	MaxIter int
	About   string
}

var Presets = map[string]*Region{
	"classic": {
		Bounds:  fractal.ClassicBounds,
		MaxIter: DefaultMaxIter,
		About:   "the whole set",
	},
	"seahorse": {
		Bounds:  fractal.Bounds{Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15},
		MaxIter: 400,
		About:   "dense filaments and repeating curls",
	},
	"elephant": {
		Bounds:  fractal.Bounds{Xmin: -1.85, Xmax: -1.75, Ymin: -0.10, Ymax: -0.02},
		MaxIter: 300,
		About:   "large bulb with trunk-like tendrils",
	},
	"spiral": {
		Bounds:  fractal.Bounds{Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325},
		MaxIter: 1000,
		About:   "small copy of the set with tight spiral arms",
	},
	"triple-spiral": {
		Bounds:  fractal.Bounds{Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980},
		MaxIter: 800,
		About:   "threefold symmetric spiral",
	},
	"dragon": {
		Bounds:  fractal.Bounds{Xmin: -0.7400, Xmax: -0.7350, Ymin: 0.1800, Ymax: 0.1850},
		MaxIter: 800,
		About:   "deep spiral filaments",
	},
	"mini-spiral": {
		Bounds:  fractal.Bounds{Xmin: -1.7390, Xmax: -1.7375, Ymin: -0.0235, Ymax: -0.0220},
		MaxIter: 1000,
		About:   "self-similar copy inside a spiral arm",
	},
}

func GetPreset(name string) *Region {
	r, ok := Presets[name]
	if !ok {
		return nil
	}
	return r
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
