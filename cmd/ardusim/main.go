package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/san-kum/ardusim/internal/blockly"
	"github.com/san-kum/ardusim/internal/config"
	"github.com/san-kum/ardusim/internal/metrics"
	"github.com/san-kum/ardusim/internal/script"
	"github.com/san-kum/ardusim/internal/storage"
	"github.com/san-kum/ardusim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	frameNum   int
	noColor    bool
	plotHeight int
	plotWidth  int
	cfg        = config.DefaultConfig()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ardusim",
		Short: "arduino block program frame simulator",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run [script.yaml]",
		Short: "build frames from a step script",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScript,
	}
	runCmd.Flags().StringVar(&preset, "preset", "", "use a built-in script")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print the frames of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().IntVar(&frameNum, "frame", 0, "show only this frame number")
	showCmd.Flags().BoolVar(&noColor, "no-color", false, "disable styling")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id] [variable]",
		Short: "plot a numeric variable across frames",
		Args:  cobra.ExactArgs(2),
		RunE:  plotVariable,
	}
	plotCmd.Flags().IntVar(&plotHeight, "height", config.DefaultPlotHeight, "plot height")
	plotCmd.Flags().IntVar(&plotWidth, "width", config.DefaultPlotWidth, "plot width")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a run and its frames as json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(cfg.DataDir).Export(os.Stdout, args[0])
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scripts",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	blocksCmd := &cobra.Command{
		Use:   "blocks [blocks.yaml] [block_id] [input]",
		Short: "resolve the block plugged into an input socket",
		Args:  cobra.ExactArgs(3),
		RunE:  findInput,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, showCmd, plotCmd, exportCmd, presetsCmd, blocksCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig applies the config file, then any flags set on the command line.
func loadConfig(cmd *cobra.Command) error {
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("data") || configFile == "" {
		cfg.DataDir = dataDir
	}
	if cmd.Flags().Changed("no-color") {
		cfg.Show.Color = !noColor
	}
	if cmd.Flags().Changed("height") {
		cfg.Plot.Height = plotHeight
	}
	if cmd.Flags().Changed("width") {
		cfg.Plot.Width = plotWidth
	}
	return nil
}

func runScript(cmd *cobra.Command, args []string) error {
	var (
		s   *script.Script
		err error
	)
	switch {
	case preset != "":
		s, err = script.GetPreset(preset)
	case len(args) == 1:
		s, err = script.Load(args[0])
	default:
		return fmt.Errorf("need a script file or --preset (available: %v)", script.ListPresets())
	}
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runner := script.NewRunner()
	if cfg.Metrics {
		for _, m := range metrics.Default() {
			runner.AddMetric(m)
		}
	}

	fmt.Printf("running %s (%d steps)...\n", s.Name, len(s.Steps))
	start := time.Now()

	result, err := runner.Run(context.Background(), s)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", len(result.Frames))
	if len(result.Metrics) > 0 {
		fmt.Println("\nmetrics:")
		for _, name := range metricNames(result.Metrics) {
			fmt.Printf("  %s: %.3f\n", name, result.Metrics[name])
		}
	}

	return nil
}

func metricNames(m map[string]float64) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(cfg.DataDir).List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCRIPT\tTIME\tFRAMES\tDELAY")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.0fms\n",
			run.ID,
			run.Script,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Metrics["total_delay_ms"],
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	history, err := storage.New(cfg.DataDir).LoadFrames(args[0])
	if err != nil {
		return err
	}

	r := viz.NewRenderer(cfg.Show.Color)
	if frameNum == 0 {
		fmt.Print(r.Frames(history))
		return nil
	}

	for _, f := range history {
		if f.FrameNumber == frameNum {
			fmt.Print(r.Frame(f))
			return nil
		}
	}
	return fmt.Errorf("run %s has no frame %d (frames: %d)", args[0], frameNum, len(history))
}

func plotVariable(cmd *cobra.Command, args []string) error {
	history, err := storage.New(cfg.DataDir).LoadFrames(args[0])
	if err != nil {
		return err
	}

	graph, err := viz.Plot(history, args[1], cfg.Plot.Height, cfg.Plot.Width)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", args[0])
	fmt.Printf("frames: %d\n\n", len(history))
	fmt.Println(graph)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTEPS\tDESCRIPTION")
	for _, name := range script.ListPresets() {
		s, err := script.GetPreset(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", name, len(s.Steps), s.Description)
	}
	return w.Flush()
}

func findInput(cmd *cobra.Command, args []string) error {
	blocks, err := blockly.LoadBlocks(args[0])
	if err != nil {
		return err
	}

	parent, ok := blockly.FindBlockByID(blocks, args[1])
	if !ok {
		return fmt.Errorf("no block with id %s", args[1])
	}

	child, ok := blockly.FindBlockInput(blocks, parent, args[2])
	if !ok {
		fmt.Printf("%s.%s: not connected\n", parent.ID, args[2])
		return nil
	}
	fmt.Printf("%s.%s -> %s (%s)\n", parent.ID, args[2], child.ID, child.Name)
	return nil
}
