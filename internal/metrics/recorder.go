package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/step"
)

// Recorder counts playback activity per algorithm.
type Recorder struct {
	runsStarted    *prometheus.CounterVec
	runsFinished   *prometheus.CounterVec
	stepsDelivered *prometheus.CounterVec
	runSteps       *prometheus.HistogramVec
	runDuration    *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		runsStarted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "algoviz_runs_started_total",
				Help: "Total number of playback runs started",
			},
			[]string{"algorithm"},
		),
		runsFinished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "algoviz_runs_finished_total",
				Help: "Total number of playback runs finished, by outcome",
			},
			[]string{"algorithm", "outcome"},
		),
		stepsDelivered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "algoviz_steps_delivered_total",
				Help: "Total number of steps handed to a renderer",
			},
			[]string{"algorithm"},
		),
		runSteps: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "algoviz_run_steps",
				Help:    "Steps delivered per finished run",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
			[]string{"algorithm"},
		),
		runDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "algoviz_run_duration_seconds",
				Help: "Wall time of finished runs",
			},
			[]string{"algorithm"},
		),
	}

	for _, c := range []prometheus.Collector{r.runsStarted, r.runsFinished, r.stepsDelivered, r.runSteps, r.runDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Hooks returns playback hooks feeding the recorder. next, if set, is
// called after each hook.
func (r *Recorder) Hooks(next playback.Hooks) playback.Hooks {
	return playback.Hooks{
		OnStart: func(e playback.Event) {
			r.runsStarted.WithLabelValues(e.Algorithm).Inc()
			if next.OnStart != nil {
				next.OnStart(e)
			}
		},
		OnStep: func(e playback.Event, s step.Step) {
			r.stepsDelivered.WithLabelValues(e.Algorithm).Inc()
			if next.OnStep != nil {
				next.OnStep(e, s)
			}
		},
		OnFinish: func(e playback.Event) {
			r.runsFinished.WithLabelValues(e.Algorithm, string(e.Outcome)).Inc()
			r.runSteps.WithLabelValues(e.Algorithm).Observe(float64(e.Index))
			r.runDuration.WithLabelValues(e.Algorithm).Observe(e.Elapsed.Seconds())
			if next.OnFinish != nil {
				next.OnFinish(e)
			}
		},
	}
}
