package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/export"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/step"
	"github.com/san-kum/algoviz/internal/storage"
	"github.com/san-kum/algoviz/internal/viz"
)

func runMenu(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd, "", true)
	if err != nil {
		return err
	}
	defer e.close()

	return viz.RunInteractive(cmd.Context(), catalog.NewRegistry(), viz.Options{
		Theme:    e.theme,
		Rand:     e.rand(),
		Playback: e.playbackOptions(),
	})
}

func runLive(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args, true)
	if err != nil {
		return err
	}
	defer s.close()

	ctrl := s.controller()
	if err := ctrl.Reset(); err != nil {
		return err
	}
	return viz.RunLive(cmd.Context(), viz.NewModel(cmd.Context(), s.alg, ctrl, s.src, s.theme))
}

func runText(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args, false)
	if err != nil {
		return err
	}
	defer s.close()

	out := cmd.OutOrStdout()
	sink := viz.NewTextSink(out)
	var steps []step.Step
	opts := []playback.Option{playback.WithSink(playback.SinkFunc(func(st step.Step) {
		sink.Render(st)
		steps = append(steps, st)
	}))}
	if instant {
		opts = append(opts, playback.WithSleep(func(context.Context, time.Duration) error { return nil }))
	}

	ctrl := s.controller(opts...)
	if err := ctrl.Start(cmd.Context()); err != nil {
		return err
	}
	if err := ctrl.Wait(context.Background()); err != nil {
		return err
	}
	if err := sink.Err(); err != nil {
		return err
	}

	snap := ctrl.Snapshot()
	fmt.Fprintf(out, "%s %s after %d steps\n", s.alg.Name, snap.Outcome, len(steps))

	if !save {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	tr := export.NewTrace(s.alg.Name, s.alg.Producer().Kind(), snap.Input, snap.Params, steps)
	runID, err := st.Save(tr, s.seed)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "run id: %s\n", runID)
	return nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	reg := catalog.NewRegistry()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tLEVEL\tKIND\tNEEDS")

	for _, l := range catalog.Levels {
		for _, a := range reg.ByLevel(l) {
			var needs []string
			if a.NeedsTarget {
				needs = append(needs, "target")
			}
			if a.NeedsSorted {
				needs = append(needs, "sorted input")
			}
			if len(needs) == 0 {
				needs = append(needs, "-")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", a.Name, a.Title, a.Level, a.Producer().Kind(), strings.Join(needs, ", "))
		}
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tTIME\tSTEPS\tDONE\tCMP\tSWP\tWEIGHT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%t\t%d\t%d\t%d\n",
			run.ID,
			run.Algorithm,
			run.Timestamp.Local().Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Completed,
			run.Comparisons,
			run.Swaps,
			run.TotalWeight,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	tr, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	if len(tr.Steps) == 0 {
		return fmt.Errorf("no data to plot")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", tr.ID)
	fmt.Fprintf(out, "algorithm: %s\n", tr.Algorithm)
	fmt.Fprintf(out, "steps: %d\n\n", len(tr.Steps))

	for _, series := range plotSeries(tr.Steps) {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}
	return nil
}

type series struct {
	caption string
	data    []float64
}

// plotSeries picks the counters worth plotting for the kind of run.
func plotSeries(steps []step.Step) []series {
	if steps[0].Graph != nil {
		settled := series{caption: "settled nodes per step", data: make([]float64, len(steps))}
		weight := series{caption: "tree weight per step", data: make([]float64, len(steps))}
		for i, s := range steps {
			for _, n := range s.Graph.Nodes {
				if n.Role == step.RoleVisited || n.Role == step.RoleInMST {
					settled.data[i]++
				}
			}
			weight.data[i] = float64(s.Graph.TotalWeight)
		}
		return []series{settled, weight}
	}

	cmp := series{caption: "comparisons per step", data: make([]float64, len(steps))}
	swp := series{caption: "swaps per step", data: make([]float64, len(steps))}
	for i, s := range steps {
		cmp.data[i] = float64(s.Stats.Comparisons)
		swp.data[i] = float64(s.Stats.Swaps)
	}
	return []series{cmp, swp}
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	reg := catalog.NewRegistry()
	names := args
	if len(names) == 0 {
		for _, a := range reg.ByLevel(catalog.Intermediate) {
			if a.Producer().Kind() == step.KindArray && !a.NeedsTarget {
				names = append(names, a.Name)
			}
		}
	}

	s, err := newSession(cmd, names[:1], false)
	if err != nil {
		return err
	}
	defer s.close()

	producers := make([]step.Producer, len(names))
	for i, name := range names {
		a, err := reg.Get(name)
		if err != nil {
			return err
		}
		if a.Producer().Kind() != s.alg.Producer().Kind() {
			return fmt.Errorf("cannot compare %s with %s", a.Name, s.alg.Name)
		}
		producers[i] = a.Producer()
	}

	in, err := s.src.Load()
	if err != nil {
		return err
	}
	out, err := playback.Compare(cmd.Context(), producers, in, s.params)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSTEPS\tCMP\tSWP\tWEIGHT\tTIME")
	for _, r := range out {
		var weight int
		if r.Final.Graph != nil {
			weight = r.Final.Graph.TotalWeight
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\n", r.Algorithm, r.Steps, r.Final.Stats.Comparisons, r.Final.Stats.Swaps, weight, r.Elapsed.Round(time.Microsecond))
	}
	return w.Flush()
}

func listPresets(algorithm string) []string {
	return config.ListPresets(algorithm)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args, false)
	if err != nil {
		return err
	}
	defer s.close()

	in, steps, err := s.collect(cmd.Context())
	if err != nil {
		return err
	}
	w, done, err := output(cmd)
	if err != nil {
		return err
	}
	if err := export.WriteJSON(w, export.NewTrace(s.alg.Name, s.alg.Producer().Kind(), in, s.params, steps)); err != nil {
		done()
		return err
	}
	return done()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args, false)
	if err != nil {
		return err
	}
	defer s.close()

	_, steps, err := s.collect(cmd.Context())
	if err != nil {
		return err
	}
	w, done, err := output(cmd)
	if err != nil {
		return err
	}
	if err := export.WriteCSV(w, steps); err != nil {
		done()
		return err
	}
	return done()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args, false)
	if err != nil {
		return err
	}
	defer s.close()

	_, steps, err := s.collect(cmd.Context())
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		return fmt.Errorf("%s produced no steps", s.alg.Name)
	}
	i := stepIndex
	if i < 0 {
		i = len(steps) - 1
	}
	if i >= len(steps) {
		return fmt.Errorf("step %d out of range, run has %d steps", i, len(steps))
	}

	width, height := 640, 360
	if steps[i].Graph != nil {
		height = 520
	}
	w, done, err := output(cmd)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, export.StepToSVG(steps[i], width, height, s.theme)); err != nil {
		done()
		return err
	}
	return done()
}
