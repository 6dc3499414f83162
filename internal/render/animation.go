package render

import (
	"context"
	"image"
	"image/color"
	"image/gif"
	"os"

	"github.com/san-kum/mandelscope/internal/compute"
	"github.com/san-kum/mandelscope/internal/fractal"
	"github.com/san-kum/mandelscope/internal/palette"
)

// FrameSource produces the grid for one iteration budget.
type FrameSource func(ctx context.Context, budget int) (*fractal.Grid, error)

// BudgetFrames recomputes p's grid from scratch at each budget. A budget
// below 1 yields an all-masked grid, which is what the kernel would return.
func BudgetFrames(p fractal.Params) FrameSource {
	return func(ctx context.Context, budget int) (*fractal.Grid, error) {
		if budget < 1 {
			return fractal.NewGrid(p.Resolution.Xn, p.Resolution.Yn), nil
		}
		q := p
		q.MaxIter = budget
		res, err := compute.ComputeGridContext(ctx, q)
		if err != nil {
			return nil, err
		}
		return res.N, nil
	}
}

type AnimationOptions struct {
	// Frames uses budgets 0 .. Frames-1.
	Frames int
	FPS    int
	// Progress is called after each frame, if set.
	Progress func(frame, total int)
}

func DefaultAnimationOptions() AnimationOptions {
	return AnimationOptions{Frames: 80, FPS: 20}
}

// Palette returns a 256-entry GIF palette: index 0 is transparent, the rest
// sample cm from 0 to 1.
func Palette(cm palette.Colormap) color.Palette {
	pal := make(color.Palette, 256)
	pal[0] = color.NRGBA{}
	for k, c := range palette.Table(cm, 255) {
		pal[k+1] = c
	}
	return pal
}

// Frame maps n onto pal with a fixed scale: value v in [0, top] lands on
// index 1 + v*254/top, masked cells on the transparent index 0.
func Frame(n *fractal.Grid, pal color.Palette, top int) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, n.Xn, n.Yn), pal)
	for j := 0; j < n.Yn; j++ {
		row := n.Row(j)
		line := img.Pix[j*img.Stride : j*img.Stride+n.Xn]
		for i, v := range row {
			if v == 0 {
				continue
			}
			line[i] = uint8(1 + palette.Normalize(int(v), 0, top)*254 + 0.5)
		}
	}
	return img
}

// Animate renders one frame per budget and assembles a looping GIF.
func Animate(ctx context.Context, src FrameSource, cm palette.Colormap, opts AnimationOptions) (*gif.GIF, error) {
	if opts.Frames <= 0 {
		opts.Frames = DefaultAnimationOptions().Frames
	}
	if opts.FPS <= 0 {
		opts.FPS = DefaultAnimationOptions().FPS
	}
	delay := 100 / opts.FPS
	if delay < 1 {
		delay = 1
	}

	pal := Palette(cm)
	top := max(opts.Frames-1, 1)

	anim := &gif.GIF{LoopCount: 0}
	for budget := 0; budget < opts.Frames; budget++ {
		n, err := src(ctx, budget)
		if err != nil {
			return nil, err
		}
		anim.Image = append(anim.Image, Frame(n, pal, top))
		anim.Delay = append(anim.Delay, delay)
		anim.Disposal = append(anim.Disposal, gif.DisposalBackground)
		if opts.Progress != nil {
			opts.Progress(budget+1, opts.Frames)
		}
	}
	return anim, nil
}

func WriteAnimation(ctx context.Context, path string, src FrameSource, cm palette.Colormap, opts AnimationOptions) error {
	anim, err := Animate(ctx, src, cm, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := gif.EncodeAll(f, anim); err != nil {
		return err
	}
	return f.Close()
}
