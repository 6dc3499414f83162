package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/mandelscope/internal/fractal"
	"github.com/san-kum/mandelscope/internal/palette"
)

const (
	upperHalf = "▀"
	lowerHalf = "▄"
)

// PreviewResolution is the grid size that fills cols x lines terminal cells.
func PreviewResolution(cols, lines int) fractal.Resolution {
	return fractal.Resolution{Xn: max(cols, 1), Yn: max(2*lines, 2)}
}

// Preview draws n with two grid rows per line: the upper half block takes
// the even row as foreground and the odd row as background. Masked cells
// keep the terminal background.
func Preview(n *fractal.Grid, cm palette.Colormap) string {
	lo, hi, ok := n.Range()
	var colors []lipgloss.Color
	if ok {
		colors = make([]lipgloss.Color, hi-lo+1)
		for v := lo; v <= hi; v++ {
			colors[v-lo] = hex(cm.At(palette.Normalize(v, lo, hi)))
		}
	}

	var b strings.Builder
	for j := 0; j < n.Yn; j += 2 {
		for i := 0; i < n.Xn; i++ {
			top := n.At(i, j)
			bottom := 0
			if j+1 < n.Yn {
				bottom = n.At(i, j+1)
			}
			b.WriteString(cell(top, bottom, lo, colors))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cell(top, bottom, lo int, colors []lipgloss.Color) string {
	switch {
	case top == 0 && bottom == 0:
		return " "
	case bottom == 0:
		return lipgloss.NewStyle().Foreground(colors[top-lo]).Render(upperHalf)
	case top == 0:
		return lipgloss.NewStyle().Foreground(colors[bottom-lo]).Render(lowerHalf)
	}
	return lipgloss.NewStyle().Foreground(colors[top-lo]).Background(colors[bottom-lo]).Render(upperHalf)
}

// Legend renders a one-line swatch of cm.
func Legend(cm palette.Colormap, width int) string {
	var b strings.Builder
	for k := 0; k < width; k++ {
		t := 0.0
		if width > 1 {
			t = float64(k) / float64(width-1)
		}
		b.WriteString(lipgloss.NewStyle().Foreground(hex(cm.At(t))).Render("█"))
	}
	return b.String()
}

func hex(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Clamped().Hex())
}
