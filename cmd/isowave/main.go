package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/isowave/internal/config"
	"github.com/san-kum/isowave/internal/experiment"
	"github.com/san-kum/isowave/internal/export"
	"github.com/san-kum/isowave/internal/server"
	"github.com/san-kum/isowave/internal/stencil"
	"github.com/san-kum/isowave/internal/storage"
	"github.com/san-kum/isowave/internal/validate"
	"github.com/san-kum/isowave/internal/viz"
	"github.com/spf13/cobra"
)

var (
	outDir     string
	tolerance  float64
	workers    int
	configFile string
	preset     string
	// Snapshot inspection parameters
	rows, cols int
	plotRow    int
	plotWidth  int
	plotHeight int
	svgScale   float64
	// Live view / server
	iterations int
	frameRate  int
	serveAddr  string
	frameMs    int
)

// main registers the command tree. The root command itself is the
// benchmark: isowave n1 n2 Iterations.
func main() {
	rootCmd := &cobra.Command{
		Use:   "isowave n1 n2 Iterations",
		Short: "2D acoustic wave benchmark: parallel stencil vs serial reference",
		Long: `isowave propagates a 2D acoustic wave with a 2nd-order finite
difference stencil, once with a grid-parallel driver and once with a
serial reference, then cross-validates the final wavefields.

  n1 n2      : Grid sizes for the stencil
  Iterations : No. of timesteps.`,
		Args: cobra.ExactArgs(3),
		RunE: runBenchmark,
	}
	rootCmd.Flags().StringVar(&outDir, "out", config.DefaultOutDir, "output directory for snapshots")
	rootCmd.Flags().Float64Var(&tolerance, "delta", config.DefaultTolerance, "per-point validation tolerance")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "parallel driver workers (0 = NumCPU)")
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration (grid sizes from preset)")

	plotCmd := &cobra.Command{
		Use:   "plot [snapshot.bin]",
		Short: "plot a cross-section of a saved wavefield",
		Args:  cobra.ExactArgs(1),
		RunE:  plotSnapshot,
	}
	plotCmd.Flags().IntVar(&rows, "rows", config.DefaultRows, "snapshot rows")
	plotCmd.Flags().IntVar(&cols, "cols", config.DefaultCols, "snapshot columns")
	plotCmd.Flags().IntVar(&plotRow, "row", -1, "grid row to plot (-1 = center)")
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "chart width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 12, "chart height")

	compareCmd := &cobra.Command{
		Use:   "compare [output.bin] [reference.bin]",
		Short: "validate two saved wavefields against each other",
		Args:  cobra.ExactArgs(2),
		RunE:  compareSnapshots,
	}
	compareCmd.Flags().IntVar(&rows, "rows", config.DefaultRows, "snapshot rows")
	compareCmd.Flags().IntVar(&cols, "cols", config.DefaultCols, "snapshot columns")
	compareCmd.Flags().Float64Var(&tolerance, "delta", config.DefaultTolerance, "per-point tolerance")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [snapshot.bin]",
		Short: "render a saved wavefield as an SVG heatmap on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&rows, "rows", config.DefaultRows, "snapshot rows")
	exportSVGCmd.Flags().IntVar(&cols, "cols", config.DefaultCols, "snapshot columns")
	exportSVGCmd.Flags().Float64Var(&svgScale, "scale", 2.0, "pixels per grid cell")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch the wave propagate in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&rows, "rows", 200, "grid rows")
	liveCmd.Flags().IntVar(&cols, "cols", 200, "grid columns")
	liveCmd.Flags().IntVar(&iterations, "iterations", 1000, "time steps to run")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "stream wavefield frames to websocket clients",
		RunE:  runServe,
	}
	serveCmd.Flags().IntVar(&rows, "rows", 200, "grid rows")
	serveCmd.Flags().IntVar(&cols, "cols", 200, "grid columns")
	serveCmd.Flags().IntVar(&iterations, "iterations", 1000, "time steps before the loop reseeds")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost:8080", "listen address")
	serveCmd.Flags().IntVar(&frameMs, "interval", 50, "milliseconds between frames")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				cfg := config.GetPreset(p)
				fmt.Printf("  %-10s %dx%d, %d iterations\n", p, cfg.Rows, cfg.Cols, cfg.Iterations)
			}
		},
	}

	rootCmd.AddCommand(plotCmd, compareCmd, exportSVGCmd, liveCmd, serveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	n1, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("n1 must be a positive integer, got %q", args[0])
	}
	n2, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, fmt.Errorf("n2 must be a positive integer, got %q", args[1])
	}
	nIter, err := strconv.Atoi(args[2])
	if err != nil {
		return nil, fmt.Errorf("Iterations must be a non-negative integer, got %q", args[2])
	}
	cfg.Rows, cfg.Cols, cfg.Iterations = n1, n2, nIter

	if cmd.Flags().Changed("delta") {
		cfg.Tolerance = tolerance
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	if cmd.Flags().Changed("out") {
		cfg.OutDir = outDir
	}

	return cfg, cfg.Validate()
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	fmt.Printf("Grid Sizes: %d %d\n", cfg.Rows, cfg.Cols)
	fmt.Printf("Iterations: %d\n\n", cfg.Iterations)

	exp := experiment.New(cfg)
	exp.Progress = os.Stdout

	report, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "parallel time\t%v\n", report.ParallelTime)
	fmt.Fprintf(w, "serial time\t%v\n", report.SerialTime)
	fmt.Fprintf(w, "workers\t%d\n", report.Workers)
	fmt.Fprintf(w, "error norm\t%.9e\n", report.Validation.Norm)
	fmt.Fprintf(w, "points beyond delta\t%d\n", len(report.Validation.Diffs))
	w.Flush()

	fmt.Printf("\nFinal wavefields written to %s and %s\n", report.SnapshotPath, report.RefPath)
	fmt.Println(viz.Verdict(report.Passed()))

	// Validation failure is a reportable outcome, not a usage error.
	if !report.Passed() {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("wavefields differ beyond tolerance %g", cfg.Tolerance)
	}
	return nil
}

func plotSnapshot(cmd *cobra.Command, args []string) error {
	g, err := storage.LoadGrid(args[0], rows, cols)
	if err != nil {
		return err
	}
	fmt.Println(viz.RenderCrossSection(g, plotRow, plotWidth, plotHeight))
	return nil
}

func compareSnapshots(cmd *cobra.Command, args []string) error {
	output, err := storage.LoadGrid(args[0], rows, cols)
	if err != nil {
		return err
	}
	reference, err := storage.LoadGrid(args[1], rows, cols)
	if err != nil {
		return err
	}

	params := stencil.DefaultParams()
	rep := validate.Compare(output, reference, params.HalfLength, tolerance)
	if err := rep.WriteDiffs(os.Stdout); err != nil {
		return err
	}
	fmt.Printf("error (Euclidean norm): %.9e\n", rep.Norm)
	fmt.Println(viz.Verdict(rep.Passed()))

	if !rep.Passed() {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("wavefields differ beyond tolerance %g", tolerance)
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	g, err := storage.LoadGrid(args[0], rows, cols)
	if err != nil {
		return err
	}
	_, err = fmt.Print(export.FieldToSVG(g, svgScale))
	return err
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Iterations = rows, cols, iterations
	if err := cfg.Validate(); err != nil {
		return err
	}

	m, err := viz.NewModel(cfg, frameRate)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Iterations = rows, cols, iterations
	if err := cfg.Validate(); err != nil {
		return err
	}

	srv := server.New(cfg, time.Duration(frameMs)*time.Millisecond)
	return srv.ListenAndServe(context.Background(), serveAddr)
}
