package palette

import "github.com/lucasb-eyer/go-colorful"

// anchor is one breakpoint of a piecewise linear channel.
type anchor struct {
	x, y float64
}

// segmented interpolates each RGB channel independently.
type segmented struct {
	name    string
	r, g, b []anchor
}

func (s *segmented) Name() string { return s.name }

func (s *segmented) At(t float64) colorful.Color {
	t = clamp01(t)
	return colorful.Color{R: channel(s.r, t), G: channel(s.g, t), B: channel(s.b, t)}
}

func channel(anchors []anchor, t float64) float64 {
	if t <= anchors[0].x {
		return anchors[0].y
	}
	for k := 1; k < len(anchors); k++ {
		a, b := anchors[k-1], anchors[k]
		if t <= b.x {
			return a.y + (t-a.x)/(b.x-a.x)*(b.y-a.y)
		}
	}
	return anchors[len(anchors)-1].y
}

// Hot is the black, red, yellow, white ramp.
var Hot Colormap = &segmented{
	name: "hot",
	r:    []anchor{{0, 0.0416}, {0.365079, 1}, {1, 1}},
	g:    []anchor{{0, 0}, {0.365079, 0}, {0.746032, 1}, {1, 1}},
	b:    []anchor{{0, 0}, {0.746032, 0}, {1, 1}},
}

var Gray Colormap = &segmented{
	name: "gray",
	r:    []anchor{{0, 0}, {1, 1}},
	g:    []anchor{{0, 0}, {1, 1}},
	b:    []anchor{{0, 0}, {1, 1}},
}

func init() {
	register(Hot)
	register(Gray)
}
