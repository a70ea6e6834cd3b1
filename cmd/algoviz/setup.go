package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/input"
	"github.com/san-kum/algoviz/internal/logging"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/step"
	"github.com/san-kum/algoviz/internal/viz"
)

// env is the ambient setup shared by every command.
type env struct {
	cfg   *config.Config
	log   *slog.Logger
	hooks playback.Hooks
	theme viz.Theme
	seed  int64
	close func()
}

// session adds the algorithm and input a playback command works on.
type session struct {
	*env
	alg    *catalog.Algorithm
	src    input.Source
	params step.Params
	speed  time.Duration
}

// loadConfig layers the config file, the preset and finally any flag the
// user set explicitly.
func loadConfig(cmd *cobra.Command, name string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		alg := name
		if alg == "" {
			alg = cfg.Algorithm
		}
		p := config.GetPreset(alg, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(alg))
		}
		if p.Theme == "" {
			p.Theme = cfg.Theme
		}
		if p.LogLevel == "" {
			p.LogLevel = cfg.LogLevel
		}
		cfg = p
	}
	if name != "" {
		cfg.Algorithm = name
	}

	flags := cmd.Flags()
	if flags.Changed("speed") {
		cfg.SpeedMs = speedMs
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("values") {
		// an explicit list with nothing usable in it is still the user's input
		cfg.Values = append([]int{}, input.ParseValues(values)...)
	}
	if flags.Changed("sorted") {
		cfg.Sorted = sorted
	}
	if flags.Changed("target") {
		t := target
		cfg.Target = &t
	}
	if flags.Changed("source") {
		cfg.Source = source
	}
	if flags.Changed("swap") {
		cfg.Swap = input.ParseValues(swap)
	}
	if flags.Changed("edges") {
		es, err := input.ParseEdges(edges)
		if err != nil {
			return nil, err
		}
		g := &step.Graph{Edges: es}
		for _, e := range es {
			g.Nodes = max(g.Nodes, e.From+1, e.To+1)
		}
		cfg.Graph = g
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg, cfg.Validate()
}

// newEnv builds the logger, theme and metrics for a command. A full screen
// command logs to a file in the data directory instead of stderr.
func newEnv(cmd *cobra.Command, name string, fullScreen bool) (*env, error) {
	cfg, err := loadConfig(cmd, name)
	if err != nil {
		return nil, err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, theme: viz.GetTheme(cfg.Theme), seed: cfg.Seed, close: func() {}}
	if e.seed == 0 {
		e.seed = time.Now().UnixNano()
	}

	e.log = logging.New(level)
	if fullScreen {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(filepath.Join(dataDir, "algoviz.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		e.log = logging.NewWriter(f, level)
		e.close = func() { f.Close() }
	}

	if metricsAddr != "" {
		if err := e.serveMetrics(cmd.Context()); err != nil {
			e.close()
			return nil, err
		}
	}
	return e, nil
}

func (e *env) serveMetrics(ctx context.Context) error {
	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	if err != nil {
		return err
	}
	e.hooks = rec.Hooks(e.hooks)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.log.Error("metrics server failed", "error", err)
		}
	}()
	context.AfterFunc(ctx, func() { srv.Close() })
	e.log.Info("serving metrics", "addr", metricsAddr)
	return nil
}

func (e *env) rand() *rand.Rand {
	return rand.New(rand.NewSource(e.seed))
}

func (e *env) playbackOptions() []playback.Option {
	return []playback.Option{playback.WithLogger(e.log), playback.WithHooks(e.hooks)}
}

func newSession(cmd *cobra.Command, args []string, fullScreen bool) (*session, error) {
	var name string
	if len(args) > 0 {
		name = args[0]
	}
	e, err := newEnv(cmd, name, fullScreen)
	if err != nil {
		return nil, err
	}
	alg, err := catalog.NewRegistry().Get(e.cfg.Algorithm)
	if err != nil {
		e.close()
		return nil, err
	}

	s := &session{
		env:    e,
		alg:    alg,
		src:    e.cfg.InputSource(alg.Producer().Kind(), alg.Default(e.rand())),
		params: e.cfg.Params(alg.Params),
		speed:  alg.Speed,
	}
	if configFile != "" || preset != "" || cmd.Flags().Changed("speed") {
		s.speed = e.cfg.Speed()
	}
	return s, nil
}

func (s *session) controller(opts ...playback.Option) *playback.Controller {
	base := append(s.playbackOptions(), playback.WithParams(s.params), playback.WithSpeed(s.speed))
	return s.alg.Controller(s.src, append(base, opts...)...)
}

// collect runs the producer to completion without pacing.
func (s *session) collect(ctx context.Context) (step.Input, []step.Step, error) {
	in, err := s.src.Load()
	if err != nil {
		return step.Input{}, nil, err
	}
	steps, err := playback.Collect(ctx, s.alg.Producer(), in, s.params, nil)
	return in, steps, err
}

// output opens outFile, or returns stdout when it is empty.
func output(cmd *cobra.Command) (io.Writer, func() error, error) {
	if outFile == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
