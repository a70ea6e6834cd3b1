package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	dataDir     string
	configFile  string
	preset      string
	speedMs     int
	seed        int64
	values      string
	sorted      bool
	target      int
	source      int
	swap        string
	edges       string
	theme       string
	logLevel    string
	metricsAddr string
	instant     bool
	save        bool
	outFile     string
	stepIndex   int
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

// newRootCmd registers the commands. Without a subcommand it opens the
// interactive menu.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "algoviz",
		Short:         "step by step algorithm playback",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runMenu,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".algoviz", "data directory for saved runs")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.IntVar(&speedMs, "speed", 0, "delay between steps in milliseconds")
	pf.Int64Var(&seed, "seed", 0, "random seed for generated input (0 picks one)")
	pf.StringVar(&values, "values", "", "comma separated input values")
	pf.BoolVar(&sorted, "sorted", false, "sort the input values")
	pf.IntVar(&target, "target", 0, "search target")
	pf.IntVar(&source, "source", 0, "source node for graph algorithms")
	pf.StringVar(&swap, "swap", "", "two indices to swap, e.g. 0,3")
	pf.StringVar(&edges, "edges", "", "graph edges as from-to:weight, comma separated")
	pf.StringVar(&theme, "theme", "", "color theme")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "play an algorithm as text",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runText,
	}
	runCmd.Flags().BoolVar(&instant, "instant", false, "deliver steps without delay")
	runCmd.Flags().BoolVar(&save, "save", false, "save the run to the data directory")

	liveCmd := &cobra.Command{
		Use:   "live [algorithm]",
		Short: "play an algorithm full screen",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		RunE:  listAlgorithms,
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the counters of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list available presets for an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := listPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for algorithm: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [algorithm]",
		Short: "export every step of a run as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportJSON,
	}
	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [algorithm]",
		Short: "export every step of a run as CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportCSV,
	}
	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [algorithm]",
		Short: "export one step of a run as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&stepIndex, "step", -1, "step to draw, -1 for the last")
	for _, c := range []*cobra.Command{exportJSONCmd, exportCSVCmd, exportSVGCmd} {
		c.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	}

	compareCmd := &cobra.Command{
		Use:   "compare [algorithm...]",
		Short: "run several algorithms on the same input (default: every sort)",
		RunE:  compareAlgorithms,
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, runsCmd, plotCmd, presetsCmd, compareCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd)
	return rootCmd
}
