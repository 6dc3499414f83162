package palette

import "github.com/lucasb-eyer/go-colorful"

type stop struct {
	pos float64
	hex string
}

// gradient blends between color stops in CIE L*a*b* space.
type gradient struct {
	name  string
	pos   []float64
	color []colorful.Color
}

func newGradient(name string, stops ...stop) *gradient {
	g := &gradient{name: name}
	for _, s := range stops {
		c, err := colorful.Hex(s.hex)
		if err != nil {
			panic("palette: bad stop color " + s.hex)
		}
		g.pos = append(g.pos, s.pos)
		g.color = append(g.color, c)
	}
	return g
}

func (g *gradient) Name() string { return g.name }

func (g *gradient) At(t float64) colorful.Color {
	t = clamp01(t)
	if t <= g.pos[0] {
		return g.color[0]
	}
	if last := len(g.pos) - 1; t >= g.pos[last] {
		return g.color[last]
	}
	for k := 1; k < len(g.pos); k++ {
		if t <= g.pos[k] {
			f := (t - g.pos[k-1]) / (g.pos[k] - g.pos[k-1])
			return g.color[k-1].BlendLab(g.color[k], f).Clamped()
		}
	}
	return g.color[len(g.pos)-1]
}

// Rocket is the heatmap scale: near-black navy through purple and red to cream.
var Rocket Colormap = newGradient("rocket",
	stop{0.00, "#03051a"},
	stop{0.20, "#4c1d4b"},
	stop{0.40, "#a11a5b"},
	stop{0.60, "#e83f3f"},
	stop{0.80, "#f6a47c"},
	stop{1.00, "#faebdd"},
)

// Ocean is a cool alternative for the terminal preview.
var Ocean Colormap = newGradient("ocean",
	stop{0.0, "#001a33"},
	stop{0.4, "#0077be"},
	stop{0.7, "#00a8cc"},
	stop{1.0, "#ffd700"},
)

func init() {
	register(Rocket)
	register(Ocean)
}
