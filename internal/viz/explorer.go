package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/mandelscope/internal/analysis"
	"github.com/san-kum/mandelscope/internal/compute"
	"github.com/san-kum/mandelscope/internal/fractal"
	"github.com/san-kum/mandelscope/internal/palette"
)

const (
	panStep  = 0.1
	zoomStep = 0.8
	// chromeLines is the header plus status lines around the preview.
	chromeLines = 4
)

// Explorer is the interactive view. Every change recomputes the grid at
// the terminal's resolution.
type Explorer struct {
	params   fractal.Params
	initial  fractal.Params
	palettes []string
	palette  int
	width    int
	height   int
	grid     *fractal.Grid
	err      error
}

func NewExplorer(p fractal.Params, paletteName string) *Explorer {
	names := palette.Names()
	idx := 0
	for k, n := range names {
		if n == paletteName {
			idx = k
		}
	}
	e := &Explorer{
		params:   p,
		initial:  p,
		palettes: names,
		palette:  idx,
		width:    80,
		height:   24,
	}
	e.recompute()
	return e
}

func (e *Explorer) Init() tea.Cmd { return nil }

func (e *Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width, e.height = msg.Width, msg.Height
		e.recompute()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return e, tea.Quit
		case "left", "h":
			e.params.Bounds = e.params.Bounds.Pan(-panStep, 0)
		case "right", "l":
			e.params.Bounds = e.params.Bounds.Pan(panStep, 0)
		case "up", "k":
			e.params.Bounds = e.params.Bounds.Pan(0, -panStep)
		case "down", "j":
			e.params.Bounds = e.params.Bounds.Pan(0, panStep)
		case "+", "=":
			e.params.Bounds = e.params.Bounds.Zoom(zoomStep)
		case "-", "_":
			e.params.Bounds = e.params.Bounds.Zoom(1 / zoomStep)
		case "]":
			e.params.MaxIter += budgetStep(e.params.MaxIter)
		case "[":
			e.params.MaxIter = max(1, e.params.MaxIter-budgetStep(e.params.MaxIter))
		case "p":
			e.palette = (e.palette + 1) % len(e.palettes)
			return e, nil
		case "t":
			SetTheme(NextTheme(CurrentTheme.Name))
			return e, nil
		case "r":
			e.params = e.initial
		default:
			return e, nil
		}
		e.recompute()
	}
	return e, nil
}

// budgetStep grows with the budget so deep zooms stay responsive.
func budgetStep(budget int) int {
	return max(1, budget/10)
}

func (e *Explorer) recompute() {
	p := e.params
	p.Resolution = PreviewResolution(e.width, e.height-chromeLines)
	res, err := compute.ComputeGrid(p)
	if err != nil {
		e.err = err
		return
	}
	e.grid, e.err = res.N, nil
}

func (e *Explorer) View() string {
	var b strings.Builder
	b.WriteString(Header("mandelscope") + "  " + e.params.Bounds.String() + "\n")

	cm, _ := palette.Get(e.palettes[e.palette])
	if e.grid != nil {
		b.WriteString(Preview(e.grid, cm))
	}

	if e.err != nil {
		b.WriteString(Failed(e.err) + "\n")
	} else if e.grid != nil {
		s := analysis.Summarize(e.grid)
		b.WriteString(fmt.Sprintf("budget %d  palette %s  masked %.1f%%  range %d..%d\n",
			e.params.MaxIter, cm.Name(), 100*s.MaskedFraction(), s.Min, s.Max))
	}
	b.WriteString(KV("keys", "arrows pan  +/- zoom  [/] budget  p palette  t theme  r reset  q quit"))
	return b.String()
}

// Params returns the current view.
func (e *Explorer) Params() fractal.Params { return e.params }

// RunExplorer blocks until the user quits.
func RunExplorer(p fractal.Params, paletteName string) (fractal.Params, error) {
	e := NewExplorer(p, paletteName)
	final, err := tea.NewProgram(e, tea.WithAltScreen()).Run()
	if err != nil {
		return p, err
	}
	return final.(*Explorer).Params(), nil
}
