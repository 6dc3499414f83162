package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/mandelscope/internal/analysis"
	"github.com/san-kum/mandelscope/internal/automation"
	"github.com/san-kum/mandelscope/internal/compute"
	"github.com/san-kum/mandelscope/internal/config"
	"github.com/san-kum/mandelscope/internal/export"
	"github.com/san-kum/mandelscope/internal/fractal"
	"github.com/san-kum/mandelscope/internal/palette"
	"github.com/san-kum/mandelscope/internal/render"
	"github.com/san-kum/mandelscope/internal/storage"
	"github.com/san-kum/mandelscope/internal/viz"
)

// loadConfig layers defaults, the config file, the preset and finally any
// flag the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("xn") {
		cfg.Resolution.Xn = xn
	}
	if flags.Changed("yn") {
		cfg.Resolution.Yn = yn
	}
	if flags.Changed("max-iter") {
		cfg.MaxIter = maxIter
	}
	if flags.Changed("horizon") {
		cfg.Horizon = horizon
	}
	if flags.Changed("precision") {
		cfg.Precision = precision
	}
	if flags.Changed("backend") {
		cfg.Backend = backend
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("palette") {
		cfg.Palette = paletteArg
	}
	if flags.Changed("out") {
		cfg.OutputDir = outDir
	}
	if flags.Changed("frames") {
		cfg.Animation.Frames = frames
	}
	if flags.Changed("fps") {
		cfg.Animation.FPS = fps
	}
	if flags.Changed("heatmap-palette") {
		cfg.Heatmap.Palette = heatmapPalette
	}
	if flags.Changed("size") {
		cfg.Heatmap.Size = heatmapSize
	}

	b, err := compute.Lookup(cfg.Backend, cfg.Workers)
	if err != nil {
		return nil, err
	}
	compute.SetBackend(b)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, err
	}
	return cfg, nil
}

func artifactPath(cfg *config.Config, name string) string {
	return filepath.Join(cfg.OutputDir, name)
}

// record saves a run manifest; history is best effort.
func record(command string, p fractal.Params, masked int, start time.Time, artifacts ...string) {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: run not recorded: %v\n", err)
		return
	}
	run := storage.NewRun(command, p, compute.GetBackend().Name())
	run.Artifacts = artifacts
	run.Masked = masked
	run.Elapsed = time.Since(start).Seconds()
	if _, err := st.Save(run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: run not recorded: %v\n", err)
	}
}

func computeGrid(ctx context.Context, cfg *config.Config) (*fractal.Result, error) {
	p, err := cfg.Params()
	if err != nil {
		return nil, err
	}
	fmt.Printf("computing %s grid over %s, budget %d (%s backend)...\n",
		p.Resolution, p.Bounds, p.MaxIter, compute.GetBackend().Name())
	start := time.Now()
	res, err := compute.ComputeGridContext(ctx, p)
	if err != nil {
		return nil, err
	}
	fmt.Printf("computed in %v\n", time.Since(start).Round(time.Millisecond))
	return res, nil
}

func writeImage(cfg *config.Config, res *fractal.Result) (string, error) {
	cm, err := palette.Get(cfg.Palette)
	if err != nil {
		return "", err
	}
	path := artifactPath(cfg, cfg.Files.Image)
	if err := render.WriteImage(path, res.N, cm); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	fmt.Println(viz.Done("image saved to %s", path))
	return path, nil
}

func writeData(cfg *config.Config, res *fractal.Result) (string, error) {
	path := artifactPath(cfg, cfg.Files.Data)
	if err := export.WriteCSVFile(path, res); err != nil {
		return "", fmt.Errorf("write data: %w", err)
	}
	fmt.Println(viz.Done("data saved to %s", path))
	return path, nil
}

func writeHeatmap(cfg *config.Config) (string, *export.Table, error) {
	cm, err := palette.Get(cfg.Heatmap.Palette)
	if err != nil {
		return "", nil, err
	}
	opts := render.DefaultHeatmapOptions()
	opts.Size = cfg.Heatmap.Size
	path := artifactPath(cfg, cfg.Files.Heatmap)
	table, err := render.WriteHeatmapFromCSV(artifactPath(cfg, cfg.Files.Data), path, cm, opts)
	if err != nil {
		return "", nil, fmt.Errorf("write heatmap: %w", err)
	}
	fmt.Println(viz.Done("heatmap saved to %s", path))
	return path, table, nil
}

func writeAnimation(ctx context.Context, cfg *config.Config) (string, fractal.Params, error) {
	p, err := cfg.AnimationParams()
	if err != nil {
		return "", p, err
	}
	cm, err := palette.Get(cfg.Palette)
	if err != nil {
		return "", p, err
	}

	opts := render.AnimationOptions{
		Frames: cfg.Animation.Frames,
		FPS:    cfg.Animation.FPS,
		Progress: func(frame, total int) {
			fmt.Printf("\r%s %d/%d", viz.ProgressBar(float64(frame)/float64(total), 40), frame, total)
		},
	}
	path := artifactPath(cfg, cfg.Files.Animation)
	err = render.WriteAnimation(ctx, path, render.BudgetFrames(p), cm, opts)
	fmt.Println()
	if err != nil {
		return "", p, fmt.Errorf("write animation: %w", err)
	}
	fmt.Println(viz.Done("animation saved to %s", path))
	p.MaxIter = max(cfg.Animation.Frames-1, 1)
	return path, p, nil
}

func runImage(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	start := time.Now()
	res, err := computeGrid(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	path, err := writeImage(cfg, res)
	if err != nil {
		return err
	}
	record("image", res.Params, res.N.MaskedCount(), start, path)
	return nil
}

func runData(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	start := time.Now()
	res, err := computeGrid(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	path, err := writeData(cfg, res)
	if err != nil {
		return err
	}
	record("data", res.Params, res.N.MaskedCount(), start, path)
	return nil
}

func runHeatmap(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p, err := cfg.Params()
	if err != nil {
		return err
	}
	start := time.Now()
	path, table, err := writeHeatmap(cfg)
	if err != nil {
		return err
	}
	p.Resolution = fractal.Resolution{Xn: table.N.Xn, Yn: table.N.Yn}
	record("heatmap", p, table.N.MaskedCount(), start, path)
	return nil
}

func runAnimate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	start := time.Now()
	path, p, err := writeAnimation(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	record("animate", p, 0, start, path)
	return nil
}

func runAll(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	start := time.Now()
	res, err := computeGrid(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	imagePath, err := writeImage(cfg, res)
	if err != nil {
		return err
	}
	dataPath, err := writeData(cfg, res)
	if err != nil {
		return err
	}
	heatmapPath, _, err := writeHeatmap(cfg)
	if err != nil {
		return err
	}
	animationPath, _, err := writeAnimation(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	record("all", res.Params, res.N.MaskedCount(), start, imagePath, dataPath, heatmapPath, animationPath)
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cm, err := palette.Get(cfg.Palette)
	if err != nil {
		return err
	}
	p, err := cfg.Params()
	if err != nil {
		return err
	}
	// Two rows per line keep cells roughly square on screen.
	rows := int(math.Round(float64(previewWidth) * p.Bounds.Height() / p.Bounds.Width()))
	p.Resolution = fractal.Resolution{Xn: max(previewWidth, 1), Yn: max(rows, 1)}

	res, err := compute.ComputeGridContext(cmd.Context(), p)
	if err != nil {
		return err
	}
	fmt.Println(viz.Header(fmt.Sprintf("%s  budget %d", p.Bounds, p.MaxIter)))
	fmt.Print(viz.Preview(res.N, cm))
	fmt.Println(viz.Legend(cm, p.Resolution.Xn))
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("xn") && !cmd.Flags().Changed("yn") {
		cfg.Resolution = fractal.Resolution{Xn: sampleSize, Yn: sampleSize}
	}
	res, err := computeGrid(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	p := res.Params

	s := analysis.Summarize(res.N)
	fmt.Println(viz.Header("grid"))
	fmt.Println(viz.KV("bounds", p.Bounds))
	fmt.Println(viz.KV("resolution", p.Resolution))
	fmt.Println(viz.KV("budget", p.MaxIter))
	fmt.Println(viz.KV("cells", s.Cells))
	fmt.Println(viz.KV("masked", fmt.Sprintf("%d (%.2f%%)", s.Masked, 100*s.MaskedFraction())))
	fmt.Println(viz.KV("range", fmt.Sprintf("%d..%d", s.Min, s.Max)))
	fmt.Println(viz.KV("mean", fmt.Sprintf("%.3f", s.Mean)))

	hist := analysis.Histogram(res.N, p.MaxIter)
	if len(hist) > 1 {
		data := make([]float64, len(hist)-1)
		for k, c := range hist[1:] {
			data[k] = math.Log10(1 + float64(c))
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("log10(1 + cells) by escape iteration"),
		))
	}

	points, err := analysis.BudgetProfile(cmd.Context(), p, analysis.Budgets(1, p.MaxIter, profileSteps))
	if err != nil {
		return err
	}
	if len(points) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(analysis.MaskedSeries(points),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("masked fraction for budgets %d..%d", points[0].Budget, points[len(points)-1].Budget)),
		))
	}
	return nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p, err := cfg.Params()
	if err != nil {
		return err
	}
	final, err := viz.RunExplorer(p, cfg.Palette)
	if err != nil {
		return err
	}
	fmt.Printf("last view: %s  budget %d\n", final.Bounds, final.MaxIter)
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	if scenario.Name != "" {
		fmt.Println(viz.Header(scenario.Name))
	}

	start := time.Now()
	results, err := automation.RunScenario(cmd.Context(), scenario, cfg, func(step, total int) {
		fmt.Printf("running step %d/%d\n", step, total)
	})
	for _, r := range results {
		fmt.Println(viz.Done("%s  %s  masked %.1f%%", r.Path, r.Params.Bounds, 100*r.Summary.MaskedFraction()))
		record("batch", r.Params, r.Summary.Masked, start, r.Path)
	}
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCOMMAND\tTIME\tGRID\tBUDGET\tBACKEND\tELAPSED\tARTIFACTS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%s\t%.2fs\t%d\n",
			run.ID,
			run.Command,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Xn, run.Yn,
			run.MaxIter,
			run.Backend,
			run.Elapsed,
			len(run.Artifacts),
		)
	}

	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBOUNDS\tBUDGET\tABOUT")
	for _, name := range config.ListPresets() {
		r := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", name, r.Bounds, r.MaxIter, r.About)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "mandelscope.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Println(viz.Done("config written to %s", path))
	return nil
}
