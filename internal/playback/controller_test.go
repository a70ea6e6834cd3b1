package playback_test

import (
	"context"
	"maps"
	"math/rand"
	"slices"
	"sync"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/input"
	"github.com/san-kum/algoviz/internal/logging"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/step"
)

func TestPlayback(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Playback Suite")
}

type recorder struct {
	mu    sync.Mutex
	steps []step.Step
}

func (r *recorder) Render(s step.Step) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = append(r.steps, s)
}

func (r *recorder) Steps() []step.Step {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.steps)
}

func (r *recorder) Len() int { return len(r.Steps()) }

// clock records every requested delay. Until opened it blocks each sleep.
type clock struct {
	mu      sync.Mutex
	calls   []time.Duration
	blocked bool
	release chan struct{}
	onSleep func(n int)
}

func instantClock() *clock { return &clock{release: make(chan struct{})} }

func gatedClock() *clock { return &clock{blocked: true, release: make(chan struct{})} }

func (c *clock) sleep(ctx context.Context, d time.Duration) error {
	c.mu.Lock()
	c.calls = append(c.calls, d)
	n, blocked, hook := len(c.calls), c.blocked, c.onSleep
	c.mu.Unlock()

	if hook != nil {
		hook(n)
	}
	if !blocked {
		return nil
	}
	select {
	case <-c.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *clock) open() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.blocked {
		c.blocked = false
		close(c.release)
	}
}

func (c *clock) Calls() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.calls)
}

func (c *clock) Count() int { return len(c.Calls()) }

var scenarioA = []int{5, 1, 4, 2, 8}

var _ = Describe("Controller", func() {
	var (
		ctx context.Context
		rec *recorder
	)

	BeforeEach(func() {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
		DeferCleanup(cancel)
		rec = &recorder{}
	})

	newController := func(p step.Producer, src input.Source, clk *clock, opts ...playback.Option) *playback.Controller {
		opts = append([]playback.Option{
			playback.WithSink(rec),
			playback.WithSleep(clk.sleep),
			playback.WithLogger(logging.NewNop()),
		}, opts...)
		return playback.New(p, src, opts...)
	}

	It("delivers every step, pacing all but the first", func() {
		clk := instantClock()
		c := newController(algorithms.Bubble{}, input.Fixed{Values: scenarioA}, clk,
			playback.WithSpeed(300*time.Millisecond))

		Expect(c.Start(ctx)).To(Succeed())
		Expect(c.Wait(ctx)).To(Succeed())

		want, err := playback.Collect(ctx, algorithms.Bubble{}, step.Input{Values: scenarioA}, step.Params{}, nil)
		Expect(err).NotTo(HaveOccurred())

		steps := rec.Steps()
		Expect(steps).To(HaveLen(len(want)))
		Expect(steps[len(steps)-1].Terminal).To(BeTrue())
		Expect(steps[len(steps)-1].Values()).To(Equal([]int{1, 2, 4, 5, 8}))

		calls := clk.Calls()
		Expect(calls).To(HaveLen(len(want) - 1))
		for _, d := range calls {
			Expect(d).To(Equal(300 * time.Millisecond))
		}

		snap := c.Snapshot()
		Expect(snap.Status).To(Equal(playback.Idle))
		Expect(snap.Outcome).To(Equal(playback.Completed))
		Expect(snap.Index).To(Equal(len(want) - 1))
		Expect(snap.RunID).NotTo(BeEmpty())
		Expect(snap.Step.Terminal).To(BeTrue())
	})

	It("rejects Start while running", func() {
		clk := gatedClock()
		c := newController(algorithms.Bubble{}, input.Fixed{Values: scenarioA}, clk)

		Expect(c.Start(ctx)).To(Succeed())
		Eventually(rec.Len).Should(Equal(1))

		Expect(c.Start(ctx)).To(MatchError(playback.ErrAlreadyRunning))
		Expect(c.CanStart()).To(MatchError(playback.ErrAlreadyRunning))
		Expect(c.Status()).To(Equal(playback.Running))

		clk.open()
		Expect(c.Wait(ctx)).To(Succeed())
		Expect(c.Status()).To(Equal(playback.Idle))
	})

	It("delivers nothing after Stop", func() {
		clk := gatedClock()
		c := newController(algorithms.Bubble{}, input.Fixed{Values: scenarioA}, clk)

		Expect(c.Start(ctx)).To(Succeed())
		Eventually(clk.Count).Should(Equal(1))
		Expect(rec.Len()).To(Equal(1))

		c.Stop()
		Expect(c.Status()).To(Equal(playback.Stopped))

		clk.open()
		Expect(c.Wait(ctx)).To(Succeed())
		Expect(rec.Len()).To(Equal(1))
		Expect(rec.Steps()[0].Terminal).To(BeFalse())

		snap := c.Snapshot()
		Expect(snap.Status).To(Equal(playback.Stopped))
		Expect(snap.Outcome).To(Equal(playback.Halted))
	})

	It("replays from the first step when started after Stop", func() {
		clk := gatedClock()
		c := newController(algorithms.Quick{}, input.Fixed{Values: scenarioA}, clk)

		Expect(c.Start(ctx)).To(Succeed())
		Eventually(clk.Count).Should(Equal(1))
		c.Stop()
		clk.open()
		Expect(c.Wait(ctx)).To(Succeed())

		Expect(c.Start(ctx)).To(Succeed())
		Expect(c.Wait(ctx)).To(Succeed())

		steps := rec.Steps()
		Expect(steps[1]).To(Equal(steps[0]))
		Expect(steps[len(steps)-1].Terminal).To(BeTrue())
		Expect(c.Status()).To(Equal(playback.Idle))
	})

	It("ignores Stop unless running", func() {
		c := newController(algorithms.Bubble{}, input.Fixed{Values: scenarioA}, instantClock())
		c.Stop()
		Expect(c.Status()).To(Equal(playback.Idle))
	})

	It("applies a speed change at the next pacing point", func() {
		clk := instantClock()
		var c *playback.Controller
		clk.onSleep = func(n int) {
			if n == 1 {
				c.SetSpeed(200 * time.Millisecond)
			}
		}
		c = newController(algorithms.Bubble{}, input.Fixed{Values: scenarioA}, clk)

		Expect(c.Start(ctx)).To(Succeed())
		Expect(c.Wait(ctx)).To(Succeed())

		calls := clk.Calls()
		Expect(len(calls)).To(BeNumerically(">", 2))
		Expect(calls[0]).To(Equal(input.DefaultSpeed))
		for _, d := range calls[1:] {
			Expect(d).To(Equal(200 * time.Millisecond))
		}
	})

	It("returns to idle with fresh input on Reset", func() {
		clk := gatedClock()
		src := input.RandomArray{Size: 8, Min: 0, Max: 999, Rand: rand.New(rand.NewSource(9))}
		c := newController(algorithms.Bubble{}, src, clk)

		Expect(c.Start(ctx)).To(Succeed())
		Eventually(clk.Count).Should(Equal(1))
		before := slices.Clone(c.Snapshot().Input.Values)
		c.Stop()

		Expect(c.Reset()).To(Succeed())
		snap := c.Snapshot()
		Expect(snap.Status).To(Equal(playback.Idle))
		Expect(snap.Index).To(Equal(-1))
		Expect(snap.RunID).To(BeEmpty())
		Expect(snap.Input.Values).To(HaveLen(8))
		Expect(snap.Input.Values).NotTo(Equal(before))

		clk.open()
		Expect(c.Wait(ctx)).To(Succeed())
		Expect(rec.Len()).To(Equal(1))
		Expect(c.Status()).To(Equal(playback.Idle))
	})

	It("discards a running playback on Reset", func() {
		clk := gatedClock()
		var mu sync.Mutex
		var finished []playback.Event
		hooks := playback.Hooks{OnFinish: func(e playback.Event) {
			mu.Lock()
			defer mu.Unlock()
			finished = append(finished, e)
		}}
		c := newController(algorithms.Merge{}, input.Fixed{Values: scenarioA}, clk, playback.WithHooks(hooks))

		Expect(c.Start(ctx)).To(Succeed())
		Eventually(clk.Count).Should(Equal(1))
		Expect(c.Reset()).To(Succeed())
		Expect(c.Status()).To(Equal(playback.Idle))

		clk.open()
		Expect(c.Wait(ctx)).To(Succeed())
		Expect(rec.Len()).To(Equal(1))
		Expect(c.Status()).To(Equal(playback.Idle))

		mu.Lock()
		defer mu.Unlock()
		Expect(finished).To(HaveLen(1))
		Expect(finished[0].Outcome).To(Equal(playback.Discarded))
	})

	It("reports a stopped run as halted when a new run starts before it exits", func() {
		clk := gatedClock()
		var mu sync.Mutex
		outcomes := map[string]playback.Outcome{}
		hooks := playback.Hooks{OnFinish: func(e playback.Event) {
			mu.Lock()
			defer mu.Unlock()
			outcomes[e.RunID] = e.Outcome
		}}
		finished := func() map[string]playback.Outcome {
			mu.Lock()
			defer mu.Unlock()
			return maps.Clone(outcomes)
		}
		c := newController(algorithms.Bubble{}, input.Fixed{Values: scenarioA}, clk, playback.WithHooks(hooks))

		Expect(c.Start(ctx)).To(Succeed())
		Eventually(clk.Count).Should(Equal(1))
		first := c.Snapshot().RunID
		c.Stop()

		Expect(c.Start(ctx)).To(Succeed())
		second := c.Snapshot().RunID
		Expect(second).NotTo(Equal(first))

		clk.open()
		Expect(c.Wait(ctx)).To(Succeed())
		Eventually(finished).Should(HaveLen(2))

		got := finished()
		Expect(got[first]).To(Equal(playback.Halted))
		Expect(got[second]).To(Equal(playback.Completed))
		Expect(c.Status()).To(Equal(playback.Idle))
	})

	It("refuses to start a search without a target", func() {
		c := newController(algorithms.Binary{}, input.Stepped{Size: 10, Start: 10, Step: 10}, instantClock())

		Expect(c.Start(ctx)).To(MatchError(step.ErrMissingTarget))
		Expect(c.Status()).To(Equal(playback.Idle))
		Expect(rec.Len()).To(BeZero())

		c.SetParams(step.Params{}.WithTarget(70))
		Expect(c.CanStart()).To(Succeed())
		Expect(c.Start(ctx)).To(Succeed())
		Expect(c.Wait(ctx)).To(Succeed())

		steps := rec.Steps()
		Expect(steps[len(steps)-1].Index).To(Equal(6))
	})

	It("refuses to start on empty input", func() {
		c := newController(algorithms.Bubble{}, input.Fixed{}, instantClock())
		Expect(c.Start(ctx)).To(MatchError(step.ErrEmptyInput))
		Expect(c.Status()).To(Equal(playback.Idle))
	})

	It("stops when the context is cancelled", func() {
		clk := gatedClock()
		c := newController(algorithms.Bubble{}, input.Fixed{Values: scenarioA}, clk)

		runCtx, cancel := context.WithCancel(ctx)
		Expect(c.Start(runCtx)).To(Succeed())
		Eventually(clk.Count).Should(Equal(1))
		cancel()

		Expect(c.Wait(ctx)).To(Succeed())
		Expect(rec.Len()).To(Equal(1))
		Expect(c.Snapshot().Outcome).To(Equal(playback.Halted))
		Expect(c.Status()).To(Equal(playback.Stopped))
	})

	It("reports lifecycle hooks", func() {
		var started, finished []playback.Event
		var stepped int
		hooks := playback.Hooks{
			OnStart:  func(e playback.Event) { started = append(started, e) },
			OnStep:   func(e playback.Event, s step.Step) { stepped++ },
			OnFinish: func(e playback.Event) { finished = append(finished, e) },
		}
		c := newController(algorithms.Selection{}, input.Fixed{Values: scenarioA}, instantClock(),
			playback.WithHooks(hooks), playback.WithName("selection-demo"))

		Expect(c.Start(ctx)).To(Succeed())
		Expect(c.Wait(ctx)).To(Succeed())

		Expect(started).To(HaveLen(1))
		Expect(started[0].Algorithm).To(Equal("selection-demo"))
		Expect(started[0].RunID).To(Equal(c.Snapshot().RunID))
		Expect(stepped).To(Equal(rec.Len()))
		Expect(finished).To(HaveLen(1))
		Expect(finished[0].Outcome).To(Equal(playback.Completed))
		Expect(finished[0].Index).To(Equal(rec.Len()))
	})

	It("swaps the source and resets", func() {
		c := newController(algorithms.Bubble{}, input.Fixed{Values: scenarioA}, instantClock())
		Expect(c.SetSource(input.Fixed{Values: []int{3, 2, 1}})).To(Succeed())
		Expect(c.Snapshot().Input.Values).To(Equal([]int{3, 2, 1}))

		Expect(c.Start(ctx)).To(Succeed())
		Expect(c.Wait(ctx)).To(Succeed())
		steps := rec.Steps()
		Expect(steps[len(steps)-1].Values()).To(Equal([]int{1, 2, 3}))
	})
})

var _ = Describe("Collect", func() {
	It("drains a producer", func() {
		steps, err := playback.Collect(context.Background(), algorithms.Quick{}, step.Input{Values: scenarioA}, step.Params{}, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(steps).NotTo(BeEmpty())
		Expect(steps[len(steps)-1].Terminal).To(BeTrue())
	})

	It("checks preconditions", func() {
		_, err := playback.Collect(context.Background(), algorithms.Binary{}, step.Input{Values: scenarioA}, step.Params{}, nil)
		Expect(err).To(MatchError(step.ErrMissingTarget))
	})

	It("stops on a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		tok := step.NewToken()

		steps, err := playback.Collect(ctx, algorithms.Bubble{}, step.Input{Values: scenarioA}, step.Params{}, tok)
		Expect(err).To(MatchError(context.Canceled))
		Expect(steps).To(BeEmpty())
		Expect(tok.Cancelled()).To(BeTrue())
	})
})
