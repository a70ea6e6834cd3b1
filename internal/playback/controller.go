package playback

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/algoviz/internal/input"
	"github.com/san-kum/algoviz/internal/step"
)

var ErrAlreadyRunning = errors.New("playback: already running")

type Status int

const (
	Idle Status = iota
	Running
	Stopped
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "idle"
	}
}

type Outcome string

const (
	Completed Outcome = "completed"
	Halted    Outcome = "stopped"
	Discarded Outcome = "reset"
)

// Sink receives delivered steps on the playback goroutine. A Sink may call
// Stop or SetSpeed but must not call Reset, which waits for Render to return.
type Sink interface {
	Render(s step.Step)
}

type SinkFunc func(step.Step)

func (f SinkFunc) Render(s step.Step) { f(s) }

// Event describes a run to lifecycle hooks.
type Event struct {
	RunID     string
	Algorithm string
	// Index is the position of the delivered step, or the number of
	// delivered steps when the run finishes.
	Index   int
	Outcome Outcome
	Elapsed time.Duration
}

type Hooks struct {
	OnStart  func(Event)
	OnStep   func(Event, step.Step)
	OnFinish func(Event)
}

// Snapshot is a consistent view of the controller for polling renderers.
// Input and Step are shared with the controller and must not be modified.
type Snapshot struct {
	Status    Status
	RunID     string
	Algorithm string
	// Index is the position of Step in the run, -1 before the first step.
	Index   int
	Step    step.Step
	Speed   time.Duration
	Input   step.Input
	Params  step.Params
	Outcome Outcome
	LoadErr error
}

// Controller plays the steps of one producer at a configurable speed. One
// goroutine per run both pulls steps and paces them; every exported method
// is safe for concurrent use.
type Controller struct {
	producer step.Producer
	name     string
	sink     Sink
	hooks    Hooks
	log      *slog.Logger
	sleep    func(context.Context, time.Duration) error

	mu      sync.Mutex
	source  input.Source
	status  Status
	speed   time.Duration
	params  step.Params
	in      step.Input
	loaded  bool
	loadErr error
	tok     *step.Token
	gen     uint64
	halted  uint64 // gen of the last run ended by Stop
	runID   string
	index   int
	current step.Step
	outcome Outcome
	done    chan struct{}

	// deliverMu is held while a step is handed to the sink, so Reset can
	// wait for an in-flight delivery.
	deliverMu sync.Mutex
}

type Option func(*Controller)

func WithSpeed(d time.Duration) Option { return func(c *Controller) { c.speed = d } }
func WithSink(s Sink) Option           { return func(c *Controller) { c.sink = s } }
func WithParams(p step.Params) Option  { return func(c *Controller) { c.params = p } }
func WithHooks(h Hooks) Option         { return func(c *Controller) { c.hooks = h } }
func WithName(name string) Option      { return func(c *Controller) { c.name = name } }
func WithLogger(l *slog.Logger) Option { return func(c *Controller) { c.log = l } }

// WithSleep replaces the pacing clock. sleep must return early with an
// error only when ctx is done.
func WithSleep(sleep func(context.Context, time.Duration) error) Option {
	return func(c *Controller) { c.sleep = sleep }
}

func New(producer step.Producer, source input.Source, opts ...Option) *Controller {
	c := &Controller{
		producer: producer,
		name:     producer.Name(),
		source:   source,
		speed:    input.DefaultSpeed,
		log:      slog.Default(),
		sleep:    sleepContext,
		index:    -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Start begins playback from the first step. It fails without changing
// state when a run is in progress or the input does not satisfy the
// producer's preconditions. Cancelling ctx stops the run.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.startableLocked(); err != nil {
		return err
	}

	c.gen++
	c.tok = step.NewToken()
	c.runID = uuid.NewString()
	c.index = -1
	c.current = step.Step{}
	c.outcome = ""
	c.status = Running
	c.done = make(chan struct{})

	r := run{
		gen:    c.gen,
		tok:    c.tok,
		in:     c.in,
		params: c.params,
		done:   c.done,
		ev:     Event{RunID: c.runID, Algorithm: c.name, Index: -1},
	}
	go c.play(ctx, r)
	return nil
}

// CanStart reports why Start would fail, or nil if it would succeed.
func (c *Controller) CanStart() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.startableLocked()
}

func (c *Controller) startableLocked() error {
	if c.status == Running {
		return ErrAlreadyRunning
	}
	if !c.loaded {
		if err := c.loadLocked(); err != nil {
			return err
		}
	}
	return c.producer.Validate(c.in, c.params)
}

func (c *Controller) loadLocked() error {
	if c.source == nil {
		return step.ErrEmptyInput
	}
	in, err := c.source.Load()
	if err != nil {
		c.loaded, c.loadErr = false, err
		return err
	}
	c.in, c.loaded, c.loadErr = in, true, nil
	return nil
}

// Stop ends a running playback. The pending delay is not interrupted but no
// further step is delivered. Stop is a no-op unless running.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status != Running {
		return
	}
	c.tok.Cancel()
	c.halted = c.gen
	c.status = Stopped
	c.outcome = Halted
}

// Reset cancels any run, loads fresh input from the source and returns to
// idle with no current step. It waits for a step being delivered.
func (c *Controller) Reset() error {
	c.mu.Lock()
	c.gen++
	tok := c.tok
	c.mu.Unlock()
	tok.Cancel()

	c.deliverMu.Lock()
	defer c.deliverMu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = Idle
	c.runID = ""
	c.index = -1
	c.current = step.Step{}
	c.outcome = ""
	return c.loadLocked()
}

// SetSpeed changes the delay between steps. A running playback uses it
// from its next pacing point on.
func (c *Controller) SetSpeed(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.speed = max(d, 0)
}

func (c *Controller) Speed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speed
}

// SetParams replaces the producer arguments used by the next Start.
func (c *Controller) SetParams(p step.Params) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.params = p
}

// SetSource replaces the input source and resets.
func (c *Controller) SetSource(src input.Source) error {
	c.mu.Lock()
	c.source = src
	c.mu.Unlock()
	return c.Reset()
}

// Wait blocks until the latest run's goroutine has exited.
func (c *Controller) Wait(ctx context.Context) error {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Status:    c.status,
		RunID:     c.runID,
		Algorithm: c.name,
		Index:     c.index,
		Step:      c.current,
		Speed:     c.speed,
		Input:     c.in,
		Params:    c.params,
		Outcome:   c.outcome,
		LoadErr:   c.loadErr,
	}
}

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *Controller) Producer() step.Producer { return c.producer }
