package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/san-kum/mandelscope/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	outDir     string
	xn         int
	yn         int
	maxIter    int
	horizon    float64
	precision  string
	backend    string
	workers    int
	paletteArg string
	theme      string
	// animation
	frames int
	fps    int
	// heatmap
	heatmapPalette string
	heatmapSize    int
	// preview and stats
	previewWidth int
	sampleSize   int
	profileSteps int
)

// main registers the commands and exits with status 1 if any of them fails.
// Interrupts cancel the command context so long renders stop early.
func main() {
	rootCmd := &cobra.Command{
		Use:           "mandelscope",
		Short:         "mandelbrot escape-time grids, images and animations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			viz.SetTheme(theme)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".mandelscope", "run history directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "region preset (see presets)")
	pf.StringVar(&outDir, "out", ".", "output directory for artifacts")
	pf.IntVar(&xn, "xn", 3000, "samples along the real axis")
	pf.IntVar(&yn, "yn", 3000, "samples along the imaginary axis")
	pf.IntVar(&maxIter, "max-iter", 80, "iteration budget")
	pf.Float64Var(&horizon, "horizon", 2.0, "escape radius")
	pf.StringVar(&precision, "precision", "double", "recurrence precision: double or single")
	pf.StringVar(&backend, "backend", "auto", "compute backend: auto, cpu or serial")
	pf.IntVar(&workers, "workers", 0, "cpu backend workers (0 = all cores)")
	pf.StringVar(&paletteArg, "palette", "hot", "colormap for images and animations")
	pf.StringVar(&theme, "theme", "ember", "terminal theme")

	imageCmd := &cobra.Command{
		Use:   "image",
		Short: "render the grid to a PNG",
		RunE:  runImage,
	}

	dataCmd := &cobra.Command{
		Use:   "data",
		Short: "export the grid as x,y,n CSV",
		RunE:  runData,
	}

	heatmapCmd := &cobra.Command{
		Use:   "heatmap",
		Short: "render a heatmap from the exported CSV",
		RunE:  runHeatmap,
	}
	heatmapCmd.Flags().StringVar(&heatmapPalette, "heatmap-palette", "rocket", "heatmap colormap")
	heatmapCmd.Flags().IntVar(&heatmapSize, "size", 1000, "heatmap cell area in pixels")

	animateCmd := &cobra.Command{
		Use:   "animate",
		Short: "render one GIF frame per iteration budget",
		RunE:  runAnimate,
	}
	animateCmd.Flags().IntVar(&frames, "frames", 80, "frame count (budgets 0..frames-1)")
	animateCmd.Flags().IntVar(&fps, "fps", 20, "frames per second")

	allCmd := &cobra.Command{
		Use:   "all",
		Short: "image, data, heatmap and animation in order",
		RunE:  runAll,
	}
	allCmd.Flags().IntVar(&frames, "frames", 80, "frame count (budgets 0..frames-1)")
	allCmd.Flags().IntVar(&fps, "fps", 20, "frames per second")
	allCmd.Flags().StringVar(&heatmapPalette, "heatmap-palette", "rocket", "heatmap colormap")
	allCmd.Flags().IntVar(&heatmapSize, "size", 1000, "heatmap cell area in pixels")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "draw the grid in the terminal",
		RunE:  runPreview,
	}
	previewCmd.Flags().IntVar(&previewWidth, "width", 80, "preview width in columns")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "escape-count histogram and budget profile",
		RunE:  runStats,
	}
	statsCmd.Flags().IntVar(&sampleSize, "sample", 400, "grid edge used unless --xn/--yn are set")
	statsCmd.Flags().IntVar(&profileSteps, "steps", 16, "budgets in the profile")

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive terminal explorer",
		RunE:  runExplore,
	}

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "render every step of a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list region presets",
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(imageCmd, dataCmd, heatmapCmd, animateCmd, allCmd, previewCmd, statsCmd, exploreCmd, batchCmd, listCmd, presetsCmd, configCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, viz.Failed(err))
		stop()
		os.Exit(1)
	}
}
